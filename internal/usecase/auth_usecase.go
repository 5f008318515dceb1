package usecase

import (
	"context"
	"time"
)

// LoginInput represents the input for user login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput represents the issued session token
type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthUsecase defines the interface for session handling.
type AuthUsecase interface {
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate resolves an access token to the id of an existing, active user.
	Authenticate(ctx context.Context, token string) (uint, error)
}
