package http

import (
	"net/http"

	"github.com/MKhiriev/go-linkup/internal/utils"
	"github.com/MKhiriev/go-linkup/models"
)

// updateProfile applies a partial update to the caller's own profile.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProfileUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(r.Context(), identity.ID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}

// setAvatar stores a new avatar media reference for the caller.
func (h *Handler) setAvatar(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.AvatarUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	profile, err := h.services.ProfileService.SetAvatar(r.Context(), identity.ID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}
