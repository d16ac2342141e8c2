package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Skar710/CID/internal/auth"
	"github.com/Skar710/CID/internal/models"
)

// AuthService covers the two unauthenticated operations: account
// creation and login.
type AuthService interface {
	// Register stores a new user with a one-way hashed password.
	// ErrConflict when the email is already taken.
	Register(ctx context.Context, email, password string) error
	// Login checks the password and issues a bearer token.
	// ErrNotFound for an unknown email, ErrInvalidCredentials when the
	// hash check fails.
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	db     *gorm.DB
	tokens *auth.Manager
}

// NewAuthService injects the *gorm.DB and the token manager and returns
// a ready-to-use AuthService.
func NewAuthService(db *gorm.DB, tokens *auth.Manager) AuthService {
	return &authService{db: db, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{Email: email, Password: string(hash)}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID, user.Email)
}
