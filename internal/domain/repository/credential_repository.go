package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential exists for a username.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines lookup of stored login credentials.
// Verification itself happens through the PasswordHasher service so the
// storage never needs to see a plaintext password.
type CredentialRepository interface {
	// FindByUsername retrieves the credential for a username.
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)
}
