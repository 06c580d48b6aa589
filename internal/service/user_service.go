package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"schedly-be/internal/entities"
	"schedly-be/internal/jwt"
	"schedly-be/internal/models"
	"schedly-be/internal/repository"
)

// ErrInvalidCredentials is returned when login email/password verification
// fails. It deliberately does not distinguish an unknown email from a wrong
// password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService defines the interface for account business logic
type UserService interface {
	Register(req *models.CreateUserRequest) (*entities.User, error)
	Login(req *models.LoginRequest) (string, error)
	GetByID(id int64) (*entities.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, jwtService *jwt.JWTService) UserService {
	return &userService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account. The password is hashed before it
// reaches the repository; a duplicate email surfaces as
// repository.ErrDuplicateEmail.
func (s *userService) Register(req *models.CreateUserRequest) (*entities.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Name, req.Email, string(hashedPassword))
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a signed JWT token
func (s *userService) Login(req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// GetByID fetches a user by ID
func (s *userService) GetByID(id int64) (*entities.User, error) {
	return s.userRepo.FindByID(id)
}
