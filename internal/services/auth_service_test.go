package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Skar710/CID/internal/auth"
	"github.com/Skar710/CID/internal/models"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	db := setupTestDB(t)
	return NewAuthService(db, auth.NewManager("test-secret", time.Hour))
}

// TestRegisterAndLogin verifies the happy path issues a token.
func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	if err := svc.Register(context.Background(), "user@x.com", "pw123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, err := svc.Login(context.Background(), "user@x.com", "pw123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
}

// TestRegisterDuplicateEmail verifies the uniqueness constraint.
func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	if err := svc.Register(context.Background(), "user@x.com", "pw123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := svc.Register(context.Background(), "user@x.com", "other"); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

// TestLoginFailures covers the unknown-email and bad-password paths.
func TestLoginFailures(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Login(context.Background(), "nobody@x.com", "pw"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := svc.Register(context.Background(), "user@x.com", "pw123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "user@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// TestPasswordStoredHashed verifies the stored password is a one-way
// hash, not the plaintext.
func TestPasswordStoredHashed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, auth.NewManager("test-secret", time.Hour))

	if err := svc.Register(context.Background(), "user@x.com", "pw123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	var user models.User
	if err := db.First(&user, "email = ?", "user@x.com").Error; err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if user.Password == "pw123" || user.Password == "" {
		t.Errorf("password not stored as a hash: %q", user.Password)
	}
}

// TestRegisterValidation verifies empty credentials are rejected.
func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)

	if err := svc.Register(context.Background(), "", "pw"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty email, got %v", err)
	}
	if err := svc.Register(context.Background(), "user@x.com", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty password, got %v", err)
	}
}
