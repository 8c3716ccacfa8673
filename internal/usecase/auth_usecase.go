// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"leyenda/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account. The
// profile and credential halves are created together or not at all.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	Name      string
	LastName  string
	Address   string
	Birthdate time.Time
	Phone     string
	TaxID     string
	IsAdmin   bool
}

// LoginInput defines the data required for a user to log in. Login is by
// username, not email.
type LoginInput struct {
	Username string
	Password string
}

// RefreshInput carries the refresh token presented for rotation. The caller's
// identity comes from the verified access token, not from the body.
type RefreshInput struct {
	Principal    entity.Principal
	RefreshToken string
}

// ChangePasswordInput defines the data required to change a password while
// knowing the current one.
type ChangePasswordInput struct {
	Principal       entity.Principal
	CurrentPassword string
	NewPassword     string
}

// RequestResetInput identifies the caller asking for a password reset token.
type RequestResetInput struct {
	Principal entity.Principal
}

// ResetPasswordInput defines the data required to consume a reset token. It
// is a public flow: the user id travels with the token.
type ResetPasswordInput struct {
	UserID          string
	ResetToken      string
	NewPassword     string
	ConfirmPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// TokenPairOutput returns a freshly issued access/refresh token pair.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// RequestResetOutput returns the raw reset token exactly once, with its
// validity window. Only the token's digest is ever persisted.
type RequestResetOutput struct {
	ResetToken       string
	ExpiresInMinutes int
}

// AuthUsecase defines the interface for account and token lifecycle
// operations. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// Register creates the user profile and its credential atomically.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies a username/password pair and issues a token pair,
	// storing the refresh token's digest.
	Login(ctx context.Context, input LoginInput) (*TokenPairOutput, error)

	// Refresh rotates the caller's refresh token. Each refresh token is
	// single-use: of two concurrent presentations, at most one succeeds.
	Refresh(ctx context.Context, input RefreshInput) (*TokenPairOutput, error)

	// Logout discards the caller's outstanding refresh token, ending the
	// session server-side. Access tokens expire on their own.
	Logout(ctx context.Context, principal entity.Principal) error

	// ChangePassword replaces the password after verifying the current one.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error

	// RequestPasswordReset issues a time-boxed reset token and returns the
	// raw value once.
	RequestPasswordReset(ctx context.Context, input RequestResetInput) (*RequestResetOutput, error)

	// ResetPassword consumes a reset token and sets the new password.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
