package impl

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	credentials repository.CredentialRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		credentials: credentials,
		hasher:      hasher,
		tokens:      tokens,
		validate:    validator.New(),
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues a signed access token. An unknown
// username and a wrong password produce the same error, so the response never
// reveals which accounts exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing credentials")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	credential, err := srv.credentials.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	principal := &entity.Principal{
		Username: credential.Username,
		Role:     credential.Role,
	}
	token, err := srv.tokens.GenerateToken(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.log(ctx).Info("Login succeeded",
		slog.String("username", principal.Username),
		slog.String("role", principal.Role.String()),
	)

	return &usecase.LoginOutput{
		Principal: principal,
		Token:     token,
	}, nil
}

// Logout records the end of the principal's session. Access tokens are
// stateless, so nothing is revoked here.
func (srv *authService) Logout(ctx context.Context, username string) error {
	srv.log(ctx).Info("Logout", slog.String("username", username))

	return nil
}
