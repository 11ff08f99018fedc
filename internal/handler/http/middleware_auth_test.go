package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-linkup/internal/service"
	"github.com/MKhiriev/go-linkup/internal/store"
	"github.com/MKhiriev/go-linkup/internal/utils"
	"github.com/MKhiriev/go-linkup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- getTokenFromAuthHeader ----

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme with blank token", header: "Bearer   ", wantErr: ErrInvalidAuthorizationHeader},
		{name: "token without scheme", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware ----

func TestAuth_PassesIdentityToNext(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.auth.EXPECT().Authenticate(gomock.Any(), "good-token").Return(alice, nil)

	var got models.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		require.True(t, ok)
		got = identity
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, alice, got)
}

func TestAuth_UniformRejection(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		authErr error
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Token abc"},
		{name: "empty token", header: "Bearer "},
		{name: "expired token", header: "Bearer expired", authErr: service.ErrTokenIsExpired},
		{name: "invalid token", header: "Bearer forged", authErr: service.ErrTokenIsInvalid},
		{name: "subject lookup failure", header: "Bearer orphan", authErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			if tt.authErr != nil {
				ts.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Identity{}, tt.authErr)
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.False(t, called, "protected handler must not run")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"error":"unauthenticated"}`, rr.Body.String())
		})
	}
}

// ---- callerIdentity ----

func TestCallerIdentity(t *testing.T) {
	req := asCaller(httptest.NewRequest(http.MethodGet, "/", nil), alice)

	identity, err := callerIdentity(req)
	require.NoError(t, err)
	assert.Equal(t, alice, identity)

	_, err = callerIdentity(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoIdentityInContext)
}
