package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/boost-marketplace/internal/models"
	"github.com/boost-marketplace/internal/repository"
	"github.com/redis/go-redis/v9"
)

const (
	productsCacheKey = "products:all"
	productCacheTTL  = 5 * time.Minute
)

// ProductStore is the product persistence contract
type ProductStore interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetAll() ([]models.Product, error)
	GetByUserID(userID uint) ([]models.Product, error)
	ExistsByID(id uint) (bool, error)
	Update(product *models.Product) error
	Delete(id uint) error
}

// ProductService handles product catalog operations. Catalog reads go
// through a best-effort Redis cache; cache errors never fail a request.
type ProductService struct {
	products ProductStore
	rdb      *redis.Client
}

// NewProductService creates a new ProductService. rdb may be nil to
// disable caching.
func NewProductService(products ProductStore, rdb *redis.Client) *ProductService {
	return &ProductService{
		products: products,
		rdb:      rdb,
	}
}

// CreateProductRequest represents the create product request
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
	UserID      *uint   `json:"user_id"`
}

// UpdateProductRequest represents the update product request. Unlike
// user updates this is a full overwrite: every field replaces the
// stored value, including zero values.
type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Status:      req.Status,
		Date:        date,
		UserID:      req.UserID,
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, product.ID)
	return product, nil
}

// GetAll retrieves all products, serving from cache when possible
func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	if s.rdb != nil {
		var cached []models.Product
		if ok := s.cacheGet(ctx, productsCacheKey, &cached); ok {
			return cached, nil
		}
	}

	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, productsCacheKey, products)
	return products, nil
}

// GetByID retrieves a product by ID, serving from cache when possible
func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	key := productKey(id)
	if s.rdb != nil {
		var cached models.Product
		if ok := s.cacheGet(ctx, key, &cached); ok {
			return &cached, nil
		}
	}

	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, product)
	return product, nil
}

// GetByUserID retrieves all products owned by a user
func (s *ProductService) GetByUserID(userID uint) ([]models.Product, error) {
	return s.products.GetByUserID(userID)
}

// Update overwrites every updatable field of an existing product from
// the request
func (s *ProductService) Update(ctx context.Context, id uint, req *UpdateProductRequest) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Image = req.Image
	product.Category = req.Category
	product.Status = req.Status
	product.Date = date

	if err := s.products.Update(product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return product, nil
}

// Delete removes a product after checking existence
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	exists, err := s.products.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrProductNotFound
	}
	if err := s.products.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// cacheGet loads a cached value; a miss or any Redis error reads through
func (s *ProductService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// cacheSet stores a value best-effort
func (s *ProductService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.rdb.Set(ctx, key, b, productCacheTTL)
}

// invalidate drops the cached catalog and the cached product
func (s *ProductService) invalidate(ctx context.Context, id uint) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, productsCacheKey, productKey(id))
}
