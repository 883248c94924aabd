package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique/config"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/infra/auth"
	"boutique/internal/usecase"
)

func newAuthService(t *testing.T) usecase.AuthUsecase {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Minute}

	hasher := auth.NewBcryptHasher(cfg)
	credentials, err := auth.NewCredentialStore(hasher)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthService(credentials, hasher, tokens, discardLogger())
}

func TestAuthService_Login_Manager(t *testing.T) {
	svc := newAuthService(t)

	output, err := svc.Login(context.Background(), &usecase.LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", output.Principal.Username)
	assert.Equal(t, entity.RoleManager, output.Principal.Role)
	assert.True(t, output.Principal.IsManager())
	assert.NotEmpty(t, output.Token)
}

func TestAuthService_Login_Customer(t *testing.T) {
	svc := newAuthService(t)

	output, err := svc.Login(context.Background(), &usecase.LoginInput{Username: "user", Password: "user123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, output.Principal.Role)
	assert.False(t, output.Principal.IsManager())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), &usecase.LoginInput{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), &usecase.LoginInput{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Username: "admin"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.Login(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Logout(t *testing.T) {
	svc := newAuthService(t)

	assert.NoError(t, svc.Logout(context.Background(), "admin"))
}
