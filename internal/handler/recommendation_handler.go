package handler

import (
	"errors"

	"github.com/boost-marketplace/internal/repository"
	"github.com/boost-marketplace/internal/service"
	"github.com/boost-marketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

// RecommendationHandler handles recommendation API requests
type RecommendationHandler struct {
	recService *service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(recService *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
	}
}

// CreateRecommendation handles recommendation creation
// POST /api/recommendations/create
func (h *RecommendationHandler) CreateRecommendation(c *gin.Context) {
	var req service.CreateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "user_id and product_id are required")
		return
	}

	rec, err := h.recService.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrReferenceNotFound) {
			response.BadRequest(c, "user or product not found")
			return
		}
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to create recommendation")
		return
	}

	response.Created(c, rec)
}

// GetAllRecommendations handles listing all recommendations
// GET /api/recommendations
func (h *RecommendationHandler) GetAllRecommendations(c *gin.Context) {
	recs, err := h.recService.GetAll()
	if err != nil {
		response.InternalError(c, "failed to list recommendations")
		return
	}

	response.Success(c, recs)
}

// GetRecommendationByID handles getting a single recommendation
// GET /api/recommendations/:id
func (h *RecommendationHandler) GetRecommendationByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	rec, err := h.recService.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			response.NotFound(c, "Recommendation not found")
			return
		}
		response.InternalError(c, "failed to get recommendation")
		return
	}

	response.Success(c, rec)
}

// GetRecommendationsByUser handles listing recommendations for a user
// GET /api/recommendations/user/:userId
func (h *RecommendationHandler) GetRecommendationsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	recs, err := h.recService.GetByUserID(userID)
	if err != nil {
		response.InternalError(c, "failed to list recommendations")
		return
	}

	response.Success(c, recs)
}

// GetRecommendationsByProduct handles listing recommendations for a product
// GET /api/recommendations/product/:productId
func (h *RecommendationHandler) GetRecommendationsByProduct(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	recs, err := h.recService.GetByProductID(productID)
	if err != nil {
		response.InternalError(c, "failed to list recommendations")
		return
	}

	response.Success(c, recs)
}

// DeleteRecommendation handles deleting a recommendation
// DELETE /api/recommendations/:id
func (h *RecommendationHandler) DeleteRecommendation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.recService.Delete(id); err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			response.NotFound(c, "Recommendation not found")
			return
		}
		response.InternalError(c, "failed to delete recommendation")
		return
	}

	response.Success(c, gin.H{"message": "Recommendation deleted"})
}

// RegisterRoutes registers recommendation routes
func (h *RecommendationHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	recs := rg.Group("/recommendations")
	{
		recs.POST("/create", authMiddleware, h.CreateRecommendation)
		recs.GET("", h.GetAllRecommendations)
		recs.GET("/:id", h.GetRecommendationByID)
		recs.GET("/user/:userId", h.GetRecommendationsByUser)
		recs.GET("/product/:productId", h.GetRecommendationsByProduct)
		recs.DELETE("/:id", authMiddleware, h.DeleteRecommendation)
	}
}
