package http

import (
	"net/http"

	"github.com/MKhiriev/go-linkup/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.ProfileService.ListPublicProfiles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetPublicProfile(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetPublicProfileByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}

// listUserConnections lists the connections of any user by id.
func (h *Handler) listUserConnections(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.ConnectionService.ListConnections(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, profiles, http.StatusOK)
}
