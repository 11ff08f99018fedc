package http

import (
	"net/http"

	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/utils"
	"github.com/MKhiriev/go-linkup/models"
)

// register creates an account and answers 201 with the public user view
// and a bearer token. The token is also set in the Authorization header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", resp.User.ID).Msg("user registered")
	w.Header().Set("Authorization", "Bearer "+resp.Token)
	_, _ = utils.WriteJSON(w, resp, http.StatusCreated)
}

// login answers 200 with the same body as register. Every credential
// failure is the same 401.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+resp.Token)
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

// me returns the identity resolved by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, identity, http.StatusOK)
}
