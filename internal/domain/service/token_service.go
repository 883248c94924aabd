package service

import (
	"github.com/golang-jwt/jwt/v5"

	"boutique/internal/domain/entity"
)

// Claims defines the custom claims carried by session access tokens.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session
// tokens. This abstracts the token format from the use cases; the delivery
// layer only ever sees opaque strings.
type TokenService interface {
	// GenerateToken creates a signed access token for an authenticated principal.
	GenerateToken(principal *entity.Principal) (string, error)

	// ValidateToken checks a token string and returns its claims when valid.
	ValidateToken(tokenString string) (*Claims, error)
}
