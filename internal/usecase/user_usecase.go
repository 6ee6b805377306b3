// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"market/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new account.
type RegisterUserInput struct {
	Email    string
	Password string
	Role     entity.Role // Empty means buyer.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the token pair minted on a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account and token operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates an active account. The email must not belong to any account, active or not.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Authenticate returns the active user matching the credentials. Unknown email and
	// wrong password yield the same error.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)

	// Login authenticates and mints an access/refresh token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ResolveRefreshToken returns the active user a refresh token was issued to.
	ResolveRefreshToken(ctx context.Context, refreshToken string) (*entity.User, error)

	// ResolveAccessToken returns the active user an access token was issued to.
	ResolveAccessToken(ctx context.Context, accessToken string) (*entity.User, error)

	// RefreshRefreshToken mints a new refresh token. The presented one stays valid.
	RefreshRefreshToken(ctx context.Context, refreshToken string) (string, error)

	// RefreshAccessToken mints a new access token from a refresh token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
}
