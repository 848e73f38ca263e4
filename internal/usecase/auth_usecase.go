// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/domain/service"
)

// AuthUsecase defines the interface for authentication-related business operations.
type AuthUsecase interface {
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// Refresh re-issues a token for the already-verified claims.
	Refresh(ctx context.Context, claims *service.Claims) (*TokenOutput, error)

	// ChangePassword verifies the current password and stores a new hash.
	ChangePassword(ctx context.Context, verdict entity.Verdict, input *ChangePasswordInput) error

	// Profile returns the account behind an authenticated verdict.
	Profile(ctx context.Context, verdict entity.Verdict) (*entity.User, error)
}

// --- Input DTOs ---

// LoginInput defines the credentials accepted by login. Identifier matches
// either username or email.
type LoginInput struct {
	Identifier string `json:"identifier" validate:"required,max=255"`
	Password   string `json:"password" validate:"required,max=255"`
}

// ChangePasswordInput defines the data required to rotate a password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required,max=255"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=255"`
}

// --- Output DTOs ---

// TokenOutput is the issued-token response shape.
type TokenOutput struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      *entity.User `json:"user"`
}
