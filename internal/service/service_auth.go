package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/media"
	"github.com/MKhiriev/go-linkup/internal/store"
	"github.com/MKhiriev/go-linkup/models"
)

// authService composes the credential and token services into the
// register, login and authenticate flows used by the HTTP layer.
type authService struct {
	credentials CredentialService
	tokens      TokenService
	projector   *profileProjector

	logger *logger.Logger
}

func NewAuthService(credentials CredentialService, tokens TokenService, resolver media.Resolver, logger *logger.Logger) AuthService {
	return &authService{
		credentials: credentials,
		tokens:      tokens,
		projector:   newProfileProjector(resolver),
		logger:      logger,
	}
}

// Register creates the account and immediately issues a token for it.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	user, err := a.credentials.Register(ctx, req)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return a.respond(ctx, user)
}

// Login verifies the credentials and issues a token. The token is created
// before the response is shaped, so a failed issue never yields a partial
// response.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	user, err := a.credentials.Verify(ctx, req)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return a.respond(ctx, user)
}

func (a *authService) respond(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := a.tokens.Issue(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("token issue failed")
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		User:  a.projector.project(ctx, user),
		Token: token.String(),
	}, nil
}

// Authenticate verifies the token and loads its subject. A token whose
// subject no longer exists is reported as ErrTokenIsInvalid.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	userID, err := a.tokens.Verify(ctx, tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	user, err := a.credentials.Lookup(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Identity{}, ErrTokenIsInvalid
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("error loading token subject: %w", err)
	}

	return user.Identity(), nil
}
