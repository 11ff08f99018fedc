package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-linkup/internal/config"
	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/utils"
	"github.com/MKhiriev/go-linkup/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService issues HS256 JWT tokens. All state is read-only after
// construction.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewTokenService fails when no sign key is configured; there is no
// built-in fallback secret.
func NewTokenService(cfg config.App, logger *logger.Logger) (TokenService, error) {
	return newTokenService(cfg, time.Now, logger)
}

func newTokenService(cfg config.App, now func() time.Time, logger *logger.Logger) (*tokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrTokenSignKeyIsNotSet
	}
	if cfg.TokenDuration <= 0 {
		return nil, ErrTokenDurationIsNotValid
	}

	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           now,
		logger:        logger,
	}, nil
}

// Issue signs a token for userID that expires after the configured duration.
func (t *tokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.tokenIssuer, userID, t.now(), t.tokenDuration, t.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("user_id", userID).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks the signature first, then issuer and expiry. Low-level JWT
// errors are collapsed into ErrTokenIsExpired or ErrTokenIsInvalid.
func (t *tokenService) Verify(ctx context.Context, tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.tokenSignKey, t.tokenIssuer, t.now)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		logger.FromContext(ctx).Debug().Err(err).Msg("expired token")
		return "", ErrTokenIsExpired
	case err != nil:
		logger.FromContext(ctx).Debug().Err(err).Msg("invalid token")
		return "", ErrTokenIsInvalid
	}

	return token.UserID, nil
}
