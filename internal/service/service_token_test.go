package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-linkup/internal/config"
	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "go-linkup",
	TokenDuration: time.Hour,
}

// newTestTokenService returns the service and a pointer to its clock.
func newTestTokenService(t *testing.T, cfg config.App) (*tokenService, *time.Time) {
	t.Helper()

	now := fixedTime
	svc, err := newTokenService(cfg, func() time.Time { return now }, logger.Nop())
	require.NoError(t, err)

	return svc, &now
}

// ─────────────────────────────────────────────
// NewTokenService
// ─────────────────────────────────────────────

func TestNewTokenService_RequiresSignKey(t *testing.T) {
	cfg := testAppConfig
	cfg.TokenSignKey = ""

	svc, err := NewTokenService(cfg, logger.Nop())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrTokenSignKeyIsNotSet)
}

func TestNewTokenService_RequiresPositiveDuration(t *testing.T) {
	cfg := testAppConfig
	cfg.TokenDuration = 0

	_, err := NewTokenService(cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrTokenDurationIsNotValid)
}

// ─────────────────────────────────────────────
// Issue / Verify
// ─────────────────────────────────────────────

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc, _ := newTestTokenService(t, testAppConfig)
	ctx := context.Background()

	token, err := svc.Issue(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token.String())
	assert.Equal(t, "user-1", token.Subject)
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), token.ExpiresAt.Unix())

	userID, err := svc.Verify(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestIssue_TwoTokensDiffer(t *testing.T) {
	svc, _ := newTestTokenService(t, testAppConfig)

	first, err := svc.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	second, err := svc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first.String(), second.String())
}

func TestIssue_EmptySubjectFails(t *testing.T) {
	svc, _ := newTestTokenService(t, testAppConfig)

	_, err := svc.Issue(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestIssue_FailureIsLoggedToRequestLogger(t *testing.T) {
	svc, _ := newTestTokenService(t, testAppConfig)

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	_, err := svc.Issue(ctx, "")
	require.ErrorIs(t, err, ErrTokenCreationFailed)
	assert.Contains(t, buf.String(), "token signing failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestVerify_Expired(t *testing.T) {
	svc, now := newTestTokenService(t, testAppConfig)

	token, err := svc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	*now = now.Add(time.Hour + time.Second)

	_, err = svc.Verify(context.Background(), token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestVerify_Invalid(t *testing.T) {
	issuer, _ := newTestTokenService(t, testAppConfig)
	token, err := issuer.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	otherKey := testAppConfig
	otherKey.TokenSignKey = "another-key"
	otherIssuer := testAppConfig
	otherIssuer.TokenIssuer = "someone-else"

	claims := jwt.RegisteredClaims{
		Issuer:    testAppConfig.TokenIssuer,
		Subject:   "user-1",
		IssuedAt:  jwt.NewNumericDate(fixedTime),
		ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testAppConfig.TokenSignKey))
	require.NoError(t, err)

	noExpiry := claims
	noExpiry.ExpiresAt = nil
	withoutExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, noExpiry).SignedString([]byte(testAppConfig.TokenSignKey))
	require.NoError(t, err)

	raw := token.String()
	sigStart := strings.LastIndex(raw, ".") + 1
	flipped := byte('A')
	if raw[sigStart] == 'A' {
		flipped = 'B'
	}
	tampered := raw[:sigStart] + string(flipped) + raw[sigStart+1:]

	tests := []struct {
		name  string
		cfg   config.App
		token string
	}{
		{name: "garbage", cfg: testAppConfig, token: "not-a-token"},
		{name: "empty", cfg: testAppConfig, token: ""},
		{name: "tampered signature", cfg: testAppConfig, token: tampered},
		{name: "other sign key", cfg: otherKey, token: raw},
		{name: "other issuer", cfg: otherIssuer, token: raw},
		{name: "alg none", cfg: testAppConfig, token: unsigned},
		{name: "HS512", cfg: testAppConfig, token: hs512},
		{name: "no expiry", cfg: testAppConfig, token: withoutExp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestTokenService(t, tt.cfg)

			userID, err := svc.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrTokenIsInvalid)
			assert.Empty(t, userID)
		})
	}
}
