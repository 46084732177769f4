package handler_test

import (
	"net/http"
	"testing"

	"github.com/boost-marketplace/internal/config"
	"github.com/boost-marketplace/internal/handler"
	"github.com/boost-marketplace/internal/middleware"
	"github.com/boost-marketplace/internal/models"
	"github.com/boost-marketplace/internal/repository"
	"github.com/boost-marketplace/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memAppStore is a minimal in-memory service.ApplicationStore
type memAppStore struct {
	apps   map[uint]*models.SellerApplication
	nextID uint
	users  *memUserStore
}

func newMemAppStore(users *memUserStore) *memAppStore {
	return &memAppStore{apps: make(map[uint]*models.SellerApplication), nextID: 1, users: users}
}

func (m *memAppStore) Create(app *models.SellerApplication) error {
	app.ID = m.nextID
	m.nextID++
	cp := *app
	m.apps[app.ID] = &cp
	return nil
}

func (m *memAppStore) GetByID(id uint) (*models.SellerApplication, error) {
	a, ok := m.apps[id]
	if !ok {
		return nil, repository.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAppStore) GetAll() ([]models.SellerApplication, error) {
	out := make([]models.SellerApplication, 0, len(m.apps))
	for _, a := range m.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (m *memAppStore) ExistsByID(id uint) (bool, error) {
	_, ok := m.apps[id]
	return ok, nil
}

func (m *memAppStore) Update(app *models.SellerApplication) error {
	cp := *app
	m.apps[app.ID] = &cp
	return nil
}

func (m *memAppStore) SaveWithUser(app *models.SellerApplication, user *models.User) error {
	if user != nil {
		if err := m.users.Update(user); err != nil {
			return err
		}
	}
	return m.Update(app)
}

func (m *memAppStore) Delete(id uint) error {
	delete(m.apps, id)
	return nil
}

type appFixture struct {
	router     *gin.Engine
	users      *memUserStore
	userSvc    *service.UserService
	appSvc     *service.ApplicationService
	adminToken string
	userToken  string
	userID     uint
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()

	users := newMemUserStore()
	apps := newMemAppStore(users)

	userSvc := service.NewUserService(users, config.JWTConfig{Secret: "test-secret", ExpireHours: 1})
	appSvc := service.NewApplicationService(apps, users)
	appHandler := handler.NewApplicationHandler(appSvc)

	router := gin.New()
	api := router.Group("/api")
	appHandler.RegisterRoutes(api, middleware.AuthMiddleware(userSvc), middleware.AdminMiddleware())

	_, err := userSvc.Create(&service.CreateUserRequest{Username: "root", Email: "root@example.com", Password: "s3cretpw", Role: models.RoleAdmin})
	require.NoError(t, err)
	adminLogin, err := userSvc.Login(&service.LoginRequest{Email: "root@example.com", Password: "s3cretpw"})
	require.NoError(t, err)

	applicant, err := userSvc.Create(&service.CreateUserRequest{Username: "bob", Email: "bob@example.com", Password: "s3cretpw"})
	require.NoError(t, err)
	userLogin, err := userSvc.Login(&service.LoginRequest{Email: "bob@example.com", Password: "s3cretpw"})
	require.NoError(t, err)

	return &appFixture{
		router:     router,
		users:      users,
		userSvc:    userSvc,
		appSvc:     appSvc,
		adminToken: adminLogin.Token,
		userToken:  userLogin.Token,
		userID:     applicant.ID,
	}
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestApproveFlowOverHTTP(t *testing.T) {
	f := newAppFixture(t)

	// Applicant files an application
	w := doJSON(t, f.router, http.MethodPost, "/api/seller-applications/createSellerApplication", gin.H{
		"user_id": f.userID,
	}, bearer(f.userToken))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), models.ApplicationPending)

	// Filing alone never elevates
	stored, err := f.users.GetByID(f.userID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, stored.Role)

	// Admin approves: status and role flip together
	w = doJSON(t, f.router, http.MethodPut, "/api/seller-applications/approve/1", nil, bearer(f.adminToken))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.ApplicationApproved)

	stored, err = f.users.GetByID(f.userID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSeller, stored.Role)
}

func TestApproveRequiresAdmin(t *testing.T) {
	f := newAppFixture(t)

	w := doJSON(t, f.router, http.MethodPut, "/api/seller-applications/approve/1", nil, bearer(f.userToken))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestApproveNotFoundOverHTTP(t *testing.T) {
	f := newAppFixture(t)

	w := doJSON(t, f.router, http.MethodPut, "/api/seller-applications/approve/42", nil, bearer(f.adminToken))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Seller application with ID 42 does not exist.")
}

func TestRejectLeavesRoleOverHTTP(t *testing.T) {
	f := newAppFixture(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/seller-applications/createSellerApplication", gin.H{
		"user_id": f.userID,
	}, bearer(f.userToken))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, f.router, http.MethodPut, "/api/seller-applications/reject/1", nil, bearer(f.adminToken))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.ApplicationRejected)

	stored, err := f.users.GetByID(f.userID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, stored.Role)
}

func TestDeleteApplicationMessages(t *testing.T) {
	f := newAppFixture(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/seller-applications/createSellerApplication", gin.H{}, bearer(f.userToken))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, f.router, http.MethodDelete, "/api/seller-applications/deleteApplication/1", nil, bearer(f.userToken))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Seller application with ID 1 deleted successfully.")

	w = doJSON(t, f.router, http.MethodDelete, "/api/seller-applications/deleteApplication/1", nil, bearer(f.userToken))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Seller application with ID 1 does not exist.")
}
