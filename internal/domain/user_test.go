package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	t.Parallel() // Enable parallel execution
	user, err := NewUser("Ana", "ana@example.com", "secret-password")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Name != "Ana" {
		t.Errorf("Expected name %q, got %q", "Ana", user.Name)
	}

	if user.Email != "ana@example.com" {
		t.Errorf("Expected email %q, got %q", "ana@example.com", user.Email)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}
}

func TestNewUserLowercasesEmail(t *testing.T) {
	t.Parallel()
	user, err := NewUser("Ana", "Ana@Example.COM", "secret-password")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Email != "ana@example.com" {
		t.Errorf("Expected lowercased email, got %q", user.Email)
	}
}

func TestUserInputErrorsWrapValidation(t *testing.T) {
	t.Parallel()
	inputErrs := []error{
		ErrEmptyUserName,
		ErrInvalidEmail,
		ErrEmptyEmail,
		ErrPasswordTooShort,
		ErrPasswordTooLong,
		ErrEmptyPassword,
	}
	for _, err := range inputErrs {
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Expected %v to wrap ErrValidation", err)
		}
	}

	// Server-side invariants stay outside ErrValidation
	if errors.Is(ErrEmptyUserID, ErrValidation) {
		t.Error("Expected ErrEmptyUserID to stay outside ErrValidation")
	}
	if errors.Is(ErrEmptyHashedPassword, ErrValidation) {
		t.Error("Expected ErrEmptyHashedPassword to stay outside ErrValidation")
	}
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"empty name", "", "ana@example.com", "secret-password", ErrEmptyUserName},
		{"empty email", "Ana", "", "secret-password", ErrEmptyEmail},
		{"missing at sign", "Ana", "ana.example.com", "secret-password", ErrInvalidEmail},
		{"missing domain dot", "Ana", "ana@example", "secret-password", ErrInvalidEmail},
		{"short password", "Ana", "ana@example.com", "abc", ErrPasswordTooShort},
		{"long password", "Ana", "ana@example.com", strings.Repeat("a", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.userName, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUserValidateWithHashOnly(t *testing.T) {
	t.Parallel()
	// Users loaded from the store have no plaintext password.
	user := User{
		ID:             uuid.New(),
		Name:           "Ana",
		Email:          "ana@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}

	if err := user.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	user.HashedPassword = ""
	if err := user.Validate(); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}
