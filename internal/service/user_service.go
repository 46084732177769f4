package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/boost-marketplace/internal/config"
	"github.com/boost-marketplace/internal/models"
	"github.com/boost-marketplace/internal/repository"
	"github.com/boost-marketplace/pkg/crypto"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStore is the user persistence contract
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	ExistsByID(id uint) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Update(user *models.User) error
	Delete(id uint) error
}

// UserService handles user accounts and authentication
type UserService struct {
	users     UserStore
	jwtConfig config.JWTConfig
}

// NewUserService creates a new UserService
func NewUserService(users UserStore, jwtConfig config.JWTConfig) *UserService {
	return &UserService{
		users:     users,
		jwtConfig: jwtConfig,
	}
}

// CreateUserRequest represents the registration / create-user request
type CreateUserRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6,max=100"`
	Phone      string `json:"phone"`
	Firstname  string `json:"firstname"`
	Middlename string `json:"middlename"`
	Lastname   string `json:"lastname"`
	Role       string `json:"role"`
}

// UpdateUserRequest represents a partial user update; only fields
// present in the payload overwrite the stored record
type UpdateUserRequest struct {
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Phone      *string `json:"phone"`
	Firstname  *string `json:"firstname"`
	Middlename *string `json:"middlename"`
	Lastname   *string `json:"lastname"`
	Role       *string `json:"role"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResult carries the authenticated user and a signed token
type LoginResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// JWTClaims represents the JWT claims
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Create registers a new user. The plaintext password is hashed
// before it is stored.
func (s *UserService) Create(req *CreateUserRequest) (*models.User, error) {
	exists, err := s.users.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Username:   req.Username,
		Email:      req.Email,
		Password:   hash,
		Phone:      req.Phone,
		Firstname:  req.Firstname,
		Middlename: req.Middlename,
		Lastname:   req.Lastname,
		Role:       role,
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetAll retrieves all users
func (s *UserService) GetAll() ([]models.User, error) {
	return s.users.GetAll()
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.users.GetByID(id)
}

// Update applies a partial patch to an existing user. Fields absent
// from the patch are left untouched; a patched password is re-hashed.
func (s *UserService) Update(id uint, req *UpdateUserRequest) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := crypto.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hash
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Firstname != nil {
		user.Firstname = *req.Firstname
	}
	if req.Middlename != nil {
		user.Middlename = *req.Middlename
	}
	if req.Lastname != nil {
		user.Lastname = *req.Lastname
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user after checking existence. Owned products and
// the seller application go with it.
func (s *UserService) Delete(id uint) error {
	exists, err := s.users.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrUserNotFound
	}
	return s.users.Delete(id)
}

// Login authenticates a user by email and password. Any failure maps
// to the same ErrInvalidCredentials so the response does not reveal
// whether the email or the password was wrong.
func (s *UserService) Login(req *LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	// Never hand the hash back to the caller
	user.Password = ""

	return &LoginResult{User: user, Token: token}, nil
}

// ValidateToken validates a JWT token and returns the claims
func (s *UserService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// generateToken signs a JWT for a user
func (s *UserService) generateToken(user *models.User) (string, error) {
	expiresIn := time.Duration(s.jwtConfig.ExpireHours) * time.Hour

	claims := &JWTClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "boost-marketplace",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtConfig.Secret))
}
