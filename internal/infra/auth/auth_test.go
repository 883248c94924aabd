package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique/config"
	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{
		BcryptCost:     4, // Minimum cost keeps the test fast.
		AccessTokenTTL: time.Minute,
	}

	return cfg
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(testConfig())

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, hasher.Check("admin123", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestJWTService_RoundTripsRoleClaims(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := svc.GenerateToken(&entity.Principal{Username: "admin", Role: entity.RoleManager})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "manager", claims.Role)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := svc.GenerateToken(&entity.Principal{Username: "user", Role: entity.RoleCustomer})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.AccessTokenTTL = -time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateToken(&entity.Principal{Username: "user", Role: entity.RoleCustomer})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestCredentialStore_SeedAccounts(t *testing.T) {
	hasher := NewBcryptHasher(testConfig())
	store, err := NewCredentialStore(hasher)
	require.NoError(t, err)

	ctx := context.Background()

	admin, err := store.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, admin.Role)
	assert.True(t, hasher.Check("admin123", admin.PasswordHash))
	assert.False(t, hasher.Check("user123", admin.PasswordHash))

	user, err := store.FindByUsername(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, user.Role)

	_, err = store.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}
