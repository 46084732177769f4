package service

import (
	"errors"

	"github.com/boost-marketplace/internal/models"
	"github.com/boost-marketplace/internal/repository"
)

// ApplicationStore is the seller application persistence contract
type ApplicationStore interface {
	Create(app *models.SellerApplication) error
	GetByID(id uint) (*models.SellerApplication, error)
	GetAll() ([]models.SellerApplication, error)
	ExistsByID(id uint) (bool, error)
	Update(app *models.SellerApplication) error
	SaveWithUser(app *models.SellerApplication, user *models.User) error
	Delete(id uint) error
}

// ApplicationService handles the seller application lifecycle.
// Applications are created Pending and move to Approved or Rejected by
// an admin decision; approving is the only transition that touches the
// owning user's role.
type ApplicationService struct {
	apps  ApplicationStore
	users UserStore
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(apps ApplicationStore, users UserStore) *ApplicationService {
	return &ApplicationService{
		apps:  apps,
		users: users,
	}
}

// CreateApplicationRequest represents the create application request
type CreateApplicationRequest struct {
	Status string `json:"status"`
	Date   string `json:"date"`
	UserID *uint  `json:"user_id"`
}

// UpdateApplicationRequest represents the generic application update.
// Status and date are overwritten; the user reference only when given.
type UpdateApplicationRequest struct {
	Status string `json:"status"`
	Date   string `json:"date"`
	UserID *uint  `json:"user_id"`
}

// Create persists a new application. Creation is role-neutral: the
// owning user's role only changes through an explicit Approve.
func (s *ApplicationService) Create(req *CreateApplicationRequest) (*models.SellerApplication, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.ApplicationPending
	}

	app := &models.SellerApplication{
		Status: status,
		Date:   date,
		UserID: req.UserID,
	}

	if err := s.apps.Create(app); err != nil {
		return nil, err
	}

	return app, nil
}

// GetAll retrieves all seller applications
func (s *ApplicationService) GetAll() ([]models.SellerApplication, error) {
	return s.apps.GetAll()
}

// GetByID retrieves a seller application by ID
func (s *ApplicationService) GetByID(id uint) (*models.SellerApplication, error) {
	return s.apps.GetByID(id)
}

// Approve marks an application Approved and elevates the owning user
// to SELLER. Both writes commit as one unit so the approval can never
// partially apply.
func (s *ApplicationService) Approve(id uint) (*models.SellerApplication, error) {
	app, err := s.apps.GetByID(id)
	if err != nil {
		return nil, err
	}

	var user *models.User
	if app.UserID != nil {
		user, err = s.users.GetByID(*app.UserID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return nil, err
			}
			// Dangling reference: approve the application alone
			user = nil
		}
	}
	if user != nil {
		user.Role = models.RoleSeller
	}

	app.Status = models.ApplicationApproved

	if err := s.apps.SaveWithUser(app, user); err != nil {
		return nil, err
	}

	return app, nil
}

// Reject marks an application Rejected. The owning user's role is
// never touched.
func (s *ApplicationService) Reject(id uint) (*models.SellerApplication, error) {
	app, err := s.apps.GetByID(id)
	if err != nil {
		return nil, err
	}

	app.Status = models.ApplicationRejected

	if err := s.apps.Update(app); err != nil {
		return nil, err
	}

	return app, nil
}

// Update overwrites status and date of an existing application, and
// the user reference when one is supplied
func (s *ApplicationService) Update(id uint, req *UpdateApplicationRequest) (*models.SellerApplication, error) {
	app, err := s.apps.GetByID(id)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	app.Status = req.Status
	app.Date = date
	if req.UserID != nil {
		app.UserID = req.UserID
	}

	if err := s.apps.Update(app); err != nil {
		return nil, err
	}

	return app, nil
}

// Delete removes a seller application after checking existence
func (s *ApplicationService) Delete(id uint) error {
	exists, err := s.apps.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrApplicationNotFound
	}
	return s.apps.Delete(id)
}
