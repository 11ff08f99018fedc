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

func TestUpdateProfile(t *testing.T) {
	h, ts := newTestHandler(t)

	headline := "Gopher"
	update := models.ProfileUpdate{
		Headline: &headline,
		WorkHistory: &models.WorkHistoryChange{
			Action: models.WorkHistoryAdd,
			Entry:  models.WorkHistoryEntry{Company: "Acme", Position: "Engineer"},
		},
	}
	updated := models.PublicProfile{
		ID:       "alice-id",
		Username: "alice",
		Profile: models.Profile{
			Headline:    "Gopher",
			WorkHistory: []models.WorkHistoryEntry{{ID: "w-1", Company: "Acme", Position: "Engineer"}},
		},
	}
	ts.profiles.EXPECT().UpdateProfile(gomock.Any(), "alice-id", update).Return(updated, nil)

	rr := httptest.NewRecorder()
	h.updateProfile(rr, asCaller(jsonRequest(t, http.MethodPatch, "/api/user/profile", update), alice))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.PublicProfile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, updated, got)
}

func TestUpdateProfile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "username taken",
			err:        store.ErrUsernameAlreadyExists,
			wantStatus: http.StatusConflict,
			wantBody:   "username is already taken",
		},
		{
			name:       "invalid field",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("username is too short")),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided: username is too short",
		},
		{
			name:       "account removed",
			err:        store.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			ts.profiles.EXPECT().UpdateProfile(gomock.Any(), "alice-id", gomock.Any()).Return(models.PublicProfile{}, tt.err)

			rr := httptest.NewRecorder()
			h.updateProfile(rr, asCaller(jsonRequest(t, http.MethodPatch, "/api/user/profile", `{"username":"al"}`), alice))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, errorBody(t, rr))
		})
	}
}

func TestUpdateProfile_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.updateProfile(rr, asCaller(jsonRequest(t, http.MethodPatch, "/api/user/profile", `{"bio": [}`), alice))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSetAvatar(t *testing.T) {
	h, ts := newTestHandler(t)

	update := models.AvatarUpdate{Avatar: "avatars/alice.png"}
	ts.profiles.EXPECT().SetAvatar(gomock.Any(), "alice-id", update).Return(models.PublicProfile{
		ID:        "alice-id",
		Profile:   models.Profile{Avatar: "avatars/alice.png"},
		AvatarURL: "/uploads/avatars/alice.png",
	}, nil)

	rr := httptest.NewRecorder()
	h.setAvatar(rr, asCaller(jsonRequest(t, http.MethodPut, "/api/user/profile/avatar", update), alice))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.PublicProfile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "/uploads/avatars/alice.png", got.AvatarURL)
}

func TestSetAvatar_NoIdentity(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.setAvatar(rr, jsonRequest(t, http.MethodPut, "/api/user/profile/avatar", models.AvatarUpdate{Avatar: "a.png"}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
