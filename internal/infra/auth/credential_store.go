// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
)

// demo accounts of the storefront; the store only ever keeps their bcrypt
// hashes, produced once at construction time.
var seedAccounts = []struct {
	username string
	password string
	role     entity.Role
}{
	{username: "admin", password: "admin123", role: entity.RoleManager},
	{username: "user", password: "user123", role: entity.RoleCustomer},
}

// credentialStore is an in-memory CredentialRepository seeded with the demo
// accounts. Swapping it for a database-backed implementation only requires
// providing another repository.CredentialRepository.
type credentialStore struct {
	mu          sync.RWMutex
	credentials map[string]entity.Credential
}

// NewCredentialStore builds the in-memory credential store, hashing the demo
// account passwords through the injected hasher.
func NewCredentialStore(hasher service.PasswordHasher) (repository.CredentialRepository, error) {
	store := &credentialStore{
		credentials: make(map[string]entity.Credential, len(seedAccounts)),
	}

	for _, account := range seedAccounts {
		hash, err := hasher.Hash(account.password)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash credential for %s", account.username)
		}
		store.credentials[account.username] = entity.Credential{
			Username:     account.username,
			PasswordHash: hash,
			Role:         account.role,
		}
	}

	return store, nil
}

// FindByUsername retrieves the credential for a username.
func (s *credentialStore) FindByUsername(_ context.Context, username string) (*entity.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	credential, ok := s.credentials[username]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}

	return &credential, nil
}
