package repository

import (
	"errors"

	"github.com/boost-marketplace/internal/models"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("seller application not found")
)

// ApplicationRepository handles seller application data access
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new seller application
func (r *ApplicationRepository) Create(app *models.SellerApplication) error {
	return r.db.Create(app).Error
}

// GetByID retrieves a seller application by ID
func (r *ApplicationRepository) GetByID(id uint) (*models.SellerApplication, error) {
	var app models.SellerApplication
	result := r.db.First(&app, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, result.Error
	}
	return &app, nil
}

// GetByUserID retrieves the seller application owned by a user
func (r *ApplicationRepository) GetByUserID(userID uint) (*models.SellerApplication, error) {
	var app models.SellerApplication
	result := r.db.Where("user_id = ?", userID).First(&app)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, result.Error
	}
	return &app, nil
}

// GetAll retrieves all seller applications
func (r *ApplicationRepository) GetAll() ([]models.SellerApplication, error) {
	var apps []models.SellerApplication
	result := r.db.Find(&apps)
	if result.Error != nil {
		return nil, result.Error
	}
	return apps, nil
}

// ExistsByID checks whether a seller application with the given ID exists
func (r *ApplicationRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.SellerApplication{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update updates a seller application
func (r *ApplicationRepository) Update(app *models.SellerApplication) error {
	return r.db.Save(app).Error
}

// SaveWithUser persists an application change and a user change as one
// unit. The approval workflow uses this so the status write and the
// role write cannot partially apply. user may be nil.
func (r *ApplicationRepository) SaveWithUser(app *models.SellerApplication, user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if user != nil {
			if err := tx.Save(user).Error; err != nil {
				return err
			}
		}
		return tx.Save(app).Error
	})
}

// Delete deletes a seller application
func (r *ApplicationRepository) Delete(id uint) error {
	return r.db.Delete(&models.SellerApplication{}, id).Error
}
