// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"boutique/internal/domain/entity"
)

// AuthUsecase defines login and logout for the storefront.
type AuthUsecase interface {
	// Login verifies the credentials and returns the principal with a
	// signed access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout ends the principal's session. Tokens are stateless, so this
	// is an audit point rather than a revocation.
	Logout(ctx context.Context, username string) error
}

// LoginInput carries the submitted credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Principal *entity.Principal `json:"principal"`
	Token     string            `json:"token"`
}
