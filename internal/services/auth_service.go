package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/halisaha-api/internal/constants"
	"github.com/yukikurage/halisaha-api/internal/models"
	"github.com/yukikurage/halisaha-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("Hatalı Kullanıcı Adı veya Şifre")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// ValidationError reports invalid input with a message meant for the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username       string
	Password       string
	FullName       string
	Phone          string
	Position       string
	Height         *int
	Weight         *int
	Age            *int
	ProfilePicture *string
}

func (in RegisterInput) validate() error {
	switch {
	case len([]rune(in.Username)) < constants.MinUsernameLength:
		return invalid(fmt.Sprintf("Kullanıcı adı en az %d karakter olmalıdır", constants.MinUsernameLength))
	case len(in.Password) < constants.MinPasswordLength:
		return invalid(fmt.Sprintf("Şifre en az %d karakter olmalıdır", constants.MinPasswordLength))
	case len(in.Password) > constants.MaxPasswordLength:
		return invalid(fmt.Sprintf("Şifre en fazla %d karakter olabilir", constants.MaxPasswordLength))
	case strings.EqualFold(in.Username, constants.SeedOrganizerUsername):
		return invalid("Bu kullanıcı adı kullanılamaz")
	case len([]rune(in.FullName)) < constants.MinFullNameLength:
		return invalid("Ad soyad gereklidir")
	case len(in.Phone) < constants.MinPhoneLength:
		return invalid("Geçerli bir telefon numarası giriniz")
	case in.Position == "":
		return invalid("Mevki seçiniz")
	}
	return nil
}

// Register creates a new user with a hashed password.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.FullName = strings.TrimSpace(input.FullName)
	input.Phone = strings.TrimSpace(input.Phone)
	if err := input.validate(); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constants.BcryptCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user, err := s.userRepo.Create(ctx, models.User{
		Username:       input.Username,
		Password:       string(hashedPassword),
		FullName:       input.FullName,
		Phone:          input.Phone,
		Position:       input.Position,
		Height:         positiveOrNil(input.Height),
		Weight:         positiveOrNil(input.Weight),
		Age:            positiveOrNil(input.Age),
		ProfilePicture: nonEmptyOrNil(input.ProfilePicture),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func positiveOrNil(v *int) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

func nonEmptyOrNil(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}
