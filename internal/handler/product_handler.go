package handler

import (
	"errors"
	"fmt"

	"github.com/boost-marketplace/internal/repository"
	"github.com/boost-marketplace/internal/service"
	"github.com/boost-marketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product API requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProduct handles product creation
// POST /api/products/createProduct
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to create product")
		return
	}

	response.Created(c, product)
}

// GetAllProducts handles listing all products
// GET /api/products/getAllProducts
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productService.GetAll(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to list products")
		return
	}

	response.Success(c, products)
}

// GetProductByID handles getting a single product
// GET /api/products/getProductById/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			response.NotFound(c, fmt.Sprintf("Product %d does not exist", id))
			return
		}
		response.InternalError(c, "failed to get product")
		return
	}

	response.Success(c, product)
}

// UpdateProduct handles a full-overwrite product update
// PUT /api/products/updateProduct/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			response.NotFound(c, fmt.Sprintf("Product %d does not exist", id))
			return
		}
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to update product")
		return
	}

	response.Success(c, product)
}

// DeleteProduct handles deleting a product
// DELETE /api/products/deleteProduct/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			response.NotFound(c, fmt.Sprintf("Product %d does not exist", id))
			return
		}
		response.InternalError(c, "failed to delete product")
		return
	}

	response.Success(c, gin.H{"message": fmt.Sprintf("Product %d deleted successfully", id)})
}

// GetProductsByUser handles listing products owned by a user
// GET /api/products/getProductsByUser/:userId
func (h *ProductHandler) GetProductsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	products, err := h.productService.GetByUserID(userID)
	if err != nil {
		response.InternalError(c, "failed to list products")
		return
	}

	response.Success(c, products)
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	products := rg.Group("/products")
	{
		products.POST("/createProduct", authMiddleware, h.CreateProduct)
		products.GET("/getAllProducts", h.GetAllProducts)
		products.GET("/getProductById/:id", h.GetProductByID)
		products.PUT("/updateProduct/:id", authMiddleware, h.UpdateProduct)
		products.DELETE("/deleteProduct/:id", authMiddleware, h.DeleteProduct)
		products.GET("/getProductsByUser/:userId", h.GetProductsByUser)
	}
}
