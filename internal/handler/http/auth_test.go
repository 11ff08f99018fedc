package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-linkup/internal/service"
	"github.com/MKhiriev/go-linkup/internal/store"
	"github.com/MKhiriev/go-linkup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var aliceResponse = models.AuthResponse{
	User: models.PublicProfile{
		ID:       "alice-id",
		Username: "alice",
		Name:     "Alice",
	},
	Token: "signed.jwt.token",
}

// ---- register ----

func TestRegister_Created(t *testing.T) {
	h, ts := newTestHandler(t)
	req := models.RegisterRequest{Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "s3cret-pass"}

	ts.auth.EXPECT().Register(gomock.Any(), req).Return(aliceResponse, nil)

	rr := httptest.NewRecorder()
	h.register(rr, jsonRequest(t, http.MethodPost, "/api/user/register", req))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, aliceResponse, got)
}

func TestRegister_PasswordNeverEchoed(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(aliceResponse, nil)

	rr := httptest.NewRecorder()
	h.register(rr, jsonRequest(t, http.MethodPost, "/api/user/register", models.RegisterRequest{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "s3cret-pass",
	}))

	assert.NotContains(t, rr.Body.String(), "s3cret-pass")
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid data",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("email is invalid")),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided: email is invalid",
		},
		{"username taken", store.ErrUsernameAlreadyExists, http.StatusConflict, "username is already taken"},
		{"email taken", store.ErrEmailAlreadyExists, http.StatusConflict, "email is already registered"},
		{"lost race", fmt.Errorf("user creation ended with error: %w", store.ErrUserAlreadyExists), http.StatusConflict, "user already exists"},
		{"token failure", service.ErrTokenCreationFailed, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			ts.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, tt.err)

			rr := httptest.NewRecorder()
			h.register(rr, jsonRequest(t, http.MethodPost, "/api/user/register", models.RegisterRequest{Username: "alice"}))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, errorBody(t, rr))
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.register(rr, jsonRequest(t, http.MethodPost, "/api/user/register", "{broken"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid JSON was passed", errorBody(t, rr))
}

// ---- login ----

func TestLogin_OK(t *testing.T) {
	h, ts := newTestHandler(t)
	req := models.LoginRequest{Username: "alice", Password: "s3cret-pass"}

	ts.auth.EXPECT().Login(gomock.Any(), req).Return(aliceResponse, nil)

	rr := httptest.NewRecorder()
	h.login(rr, jsonRequest(t, http.MethodPost, "/api/user/login", req))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))

	var got models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "signed.jwt.token", got.Token)
	assert.Equal(t, "alice-id", got.User.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, service.ErrInvalidCredentials)

	rr := httptest.NewRecorder()
	h.login(rr, jsonRequest(t, http.MethodPost, "/api/user/login", models.LoginRequest{Email: "ghost@example.com", Password: "x"}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid credentials", errorBody(t, rr))
	assert.Empty(t, rr.Header().Get("Authorization"))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.login(rr, jsonRequest(t, http.MethodPost, "/api/user/login", `[]`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- me ----

func TestMe(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.me(rr, asCaller(httptest.NewRequest(http.MethodGet, "/api/user/me", nil), alice))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.Identity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, alice, got)
}

func TestMe_NoIdentity(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.me(rr, httptest.NewRequest(http.MethodGet, "/api/user/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "unauthenticated", errorBody(t, rr))
}
