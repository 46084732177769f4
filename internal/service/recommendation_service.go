package service

import (
	"errors"

	"github.com/boost-marketplace/internal/models"
	"github.com/boost-marketplace/internal/repository"
)

// ErrReferenceNotFound is returned when a recommendation names a user
// or product that does not exist
var ErrReferenceNotFound = errors.New("user or product not found")

// RecommendationStore is the recommendation persistence contract
type RecommendationStore interface {
	Create(rec *models.Recommendation) error
	GetByID(id uint) (*models.Recommendation, error)
	GetAll() ([]models.Recommendation, error)
	GetByUserID(userID uint) ([]models.Recommendation, error)
	GetByProductID(productID uint) ([]models.Recommendation, error)
	ExistsByID(id uint) (bool, error)
	Delete(id uint) error
}

// RecommendationService handles product recommendations
type RecommendationService struct {
	recs     RecommendationStore
	users    UserStore
	products ProductStore
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(recs RecommendationStore, users UserStore, products ProductStore) *RecommendationService {
	return &RecommendationService{
		recs:     recs,
		users:    users,
		products: products,
	}
}

// CreateRecommendationRequest represents the create request
type CreateRecommendationRequest struct {
	UserID        uint   `json:"user_id" binding:"required"`
	ProductID     uint   `json:"product_id" binding:"required"`
	Message       string `json:"message"`
	DateGenerated string `json:"date_generated"`
	Rating        *int   `json:"rating"`
}

// Create links an existing user and product. Both references must
// resolve or nothing is persisted.
func (s *RecommendationService) Create(req *CreateRecommendationRequest) (*models.Recommendation, error) {
	userExists, err := s.users.ExistsByID(req.UserID)
	if err != nil {
		return nil, err
	}
	productExists, err := s.products.ExistsByID(req.ProductID)
	if err != nil {
		return nil, err
	}
	if !userExists || !productExists {
		return nil, ErrReferenceNotFound
	}

	date, err := parseDate(req.DateGenerated)
	if err != nil {
		return nil, err
	}

	rec := &models.Recommendation{
		UserID:        req.UserID,
		ProductID:     req.ProductID,
		Message:       req.Message,
		DateGenerated: date,
		Rating:        req.Rating,
	}

	if err := s.recs.Create(rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// GetAll retrieves all recommendations
func (s *RecommendationService) GetAll() ([]models.Recommendation, error) {
	return s.recs.GetAll()
}

// GetByID retrieves a recommendation by ID
func (s *RecommendationService) GetByID(id uint) (*models.Recommendation, error) {
	return s.recs.GetByID(id)
}

// GetByUserID retrieves all recommendations for a user
func (s *RecommendationService) GetByUserID(userID uint) ([]models.Recommendation, error) {
	return s.recs.GetByUserID(userID)
}

// GetByProductID retrieves all recommendations for a product
func (s *RecommendationService) GetByProductID(productID uint) ([]models.Recommendation, error) {
	return s.recs.GetByProductID(productID)
}

// Delete removes a recommendation after checking existence
func (s *RecommendationService) Delete(id uint) error {
	exists, err := s.recs.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrRecommendationNotFound
	}
	return s.recs.Delete(id)
}
