// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	Addresses   []entity.Address
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's business identifier.
type RegisterOutput struct {
	UserID string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    string
}

// RefreshOutput returns the replacement token pair after a rotation.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    string
}

// AuthUsecase defines the interface for identity and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will
// depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh consumes the presented refresh token and, if it was an
	// outstanding one, issues a replacement pair. Each refresh token works
	// exactly once.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout revokes the refresh token if it is outstanding. It never
	// reports whether the token existed.
	Logout(ctx context.Context, refreshToken string) error
}
