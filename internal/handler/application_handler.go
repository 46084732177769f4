package handler

import (
	"errors"
	"fmt"

	"github.com/boost-marketplace/internal/repository"
	"github.com/boost-marketplace/internal/service"
	"github.com/boost-marketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles seller application API requests
type ApplicationHandler struct {
	appService *service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(appService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		appService: appService,
	}
}

// CreateApplication handles application creation
// POST /api/seller-applications/createSellerApplication
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req service.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	app, err := h.appService.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to create seller application")
		return
	}

	response.Created(c, app)
}

// GetAllApplications handles listing all applications
// GET /api/seller-applications/getAllApplications
func (h *ApplicationHandler) GetAllApplications(c *gin.Context) {
	apps, err := h.appService.GetAll()
	if err != nil {
		response.InternalError(c, "failed to list seller applications")
		return
	}

	response.Success(c, apps)
}

// GetApplicationByID handles getting a single application
// GET /api/seller-applications/getApplicationById/:id
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	app, err := h.appService.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			response.NotFound(c, fmt.Sprintf("Seller application with ID %d does not exist.", id))
			return
		}
		response.InternalError(c, "failed to get seller application")
		return
	}

	response.Success(c, app)
}

// ApproveApplication handles the admin approval decision
// PUT /api/seller-applications/approve/:id
func (h *ApplicationHandler) ApproveApplication(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	app, err := h.appService.Approve(id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			response.NotFound(c, fmt.Sprintf("Seller application with ID %d does not exist.", id))
			return
		}
		response.InternalError(c, "failed to approve seller application")
		return
	}

	response.Success(c, app)
}

// RejectApplication handles the admin rejection decision
// PUT /api/seller-applications/reject/:id
func (h *ApplicationHandler) RejectApplication(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	app, err := h.appService.Reject(id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			response.NotFound(c, fmt.Sprintf("Seller application with ID %d does not exist.", id))
			return
		}
		response.InternalError(c, "failed to reject seller application")
		return
	}

	response.Success(c, app)
}

// UpdateApplication handles the generic application update
// PUT /api/seller-applications/updateApplication/:id
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	app, err := h.appService.Update(id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			response.NotFound(c, fmt.Sprintf("Seller application with ID %d does not exist.", id))
			return
		}
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to update seller application")
		return
	}

	response.Success(c, app)
}

// DeleteApplication handles deleting an application
// DELETE /api/seller-applications/deleteApplication/:id
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.appService.Delete(id); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			response.NotFound(c, fmt.Sprintf("Seller application with ID %d does not exist.", id))
			return
		}
		response.InternalError(c, "failed to delete seller application")
		return
	}

	response.Success(c, gin.H{"message": fmt.Sprintf("Seller application with ID %d deleted successfully.", id)})
}

// RegisterRoutes registers seller application routes
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware, adminMiddleware gin.HandlerFunc) {
	apps := rg.Group("/seller-applications")
	{
		apps.POST("/createSellerApplication", authMiddleware, h.CreateApplication)
		apps.GET("/getAllApplications", authMiddleware, adminMiddleware, h.GetAllApplications)
		apps.GET("/getApplicationById/:id", authMiddleware, h.GetApplicationByID)
		apps.PUT("/approve/:id", authMiddleware, adminMiddleware, h.ApproveApplication)
		apps.PUT("/reject/:id", authMiddleware, adminMiddleware, h.RejectApplication)
		apps.PUT("/updateApplication/:id", authMiddleware, adminMiddleware, h.UpdateApplication)
		apps.DELETE("/deleteApplication/:id", authMiddleware, h.DeleteApplication)
	}
}
