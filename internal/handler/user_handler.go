package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/boost-marketplace/internal/repository"
	"github.com/boost-marketplace/internal/service"
	"github.com/boost-marketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user API requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Login handles user login
// POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password required")
		return
	}

	result, err := h.userService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same message whether the email or the password was wrong
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		response.InternalError(c, "failed to login")
		return
	}

	response.Success(c, result)
}

// Register handles user registration
// POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	h.CreateUser(c)
}

// CreateUser handles user creation
// POST /api/users/createUser
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, "email already taken")
			return
		}
		response.InternalError(c, "failed to create user")
		return
	}

	response.Created(c, user)
}

// GetAllUsers handles listing all users
// GET /api/users/getAllUsers
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAll()
	if err != nil {
		response.InternalError(c, "failed to list users")
		return
	}

	response.Success(c, users)
}

// GetUserByID handles getting a single user
// GET /api/users/getUserById/:id
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, fmt.Sprintf("User with id %d not found", id))
			return
		}
		response.InternalError(c, "failed to get user")
		return
	}

	response.Success(c, user)
}

// UpdateUser handles a partial user update
// PUT /api/users/updateUser/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, fmt.Sprintf("User with id %d not found", id))
			return
		}
		response.InternalError(c, "failed to update user")
		return
	}

	response.Success(c, user)
}

// DeleteUser handles deleting a user
// DELETE /api/users/deleteUser/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, fmt.Sprintf("User with id %d not found", id))
			return
		}
		response.InternalError(c, "failed to delete user")
		return
	}

	response.Success(c, gin.H{"message": "User deleted successfully"})
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware, adminMiddleware gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("/login", h.Login)
		users.POST("/register", h.Register)
		users.POST("/createUser", h.CreateUser)
		users.GET("/getAllUsers", authMiddleware, adminMiddleware, h.GetAllUsers)
		users.GET("/getUserById/:id", h.GetUserByID)
		users.PUT("/updateUser/:id", authMiddleware, h.UpdateUser)
		users.DELETE("/deleteUser/:id", authMiddleware, h.DeleteUser)
	}
}

// parseID parses a numeric path parameter, answering 400 on garbage
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
