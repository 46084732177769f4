package repository

import (
	"errors"

	"github.com/boost-marketplace/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// RecommendationRepository handles recommendation data access
type RecommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new RecommendationRepository
func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// Create creates a new recommendation
func (r *RecommendationRepository) Create(rec *models.Recommendation) error {
	return r.db.Create(rec).Error
}

// GetByID retrieves a recommendation by ID
func (r *RecommendationRepository) GetByID(id uint) (*models.Recommendation, error) {
	var rec models.Recommendation
	result := r.db.First(&rec, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, result.Error
	}
	return &rec, nil
}

// GetAll retrieves all recommendations
func (r *RecommendationRepository) GetAll() ([]models.Recommendation, error) {
	var recs []models.Recommendation
	result := r.db.Find(&recs)
	if result.Error != nil {
		return nil, result.Error
	}
	return recs, nil
}

// GetByUserID retrieves all recommendations made for a user
func (r *RecommendationRepository) GetByUserID(userID uint) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	result := r.db.Where("user_id = ?", userID).Find(&recs)
	if result.Error != nil {
		return nil, result.Error
	}
	return recs, nil
}

// GetByProductID retrieves all recommendations for a product
func (r *RecommendationRepository) GetByProductID(productID uint) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	result := r.db.Where("product_id = ?", productID).Find(&recs)
	if result.Error != nil {
		return nil, result.Error
	}
	return recs, nil
}

// ExistsByID checks whether a recommendation with the given ID exists
func (r *RecommendationRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Recommendation{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete deletes a recommendation
func (r *RecommendationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Recommendation{}, id).Error
}
