package repository

import (
	"errors"

	"github.com/boost-marketplace/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository handles product data access
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	result := r.db.First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, result.Error
	}
	return &product, nil
}

// GetAll retrieves all products
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	result := r.db.Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return products, nil
}

// GetByUserID retrieves all products owned by a user
func (r *ProductRepository) GetByUserID(userID uint) ([]models.Product, error) {
	var products []models.Product
	result := r.db.Where("user_id = ?", userID).Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return products, nil
}

// ExistsByID checks whether a product with the given ID exists
func (r *ProductRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update updates a product
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete deletes a product
func (r *ProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}
