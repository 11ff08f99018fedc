// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-linkup/internal/service"
	"github.com/MKhiriev/go-linkup/internal/utils"
	"github.com/MKhiriev/go-linkup/models"
)

// sendRequest asks req.To to connect with the caller. req.From may be
// omitted; when present it must be the caller.
func (h *Handler) sendRequest(w http.ResponseWriter, r *http.Request) {
	identity, req, ok := h.connectionRequest(w, r)
	if !ok {
		return
	}
	if req.From == "" {
		req.From = identity.ID
	}
	if req.From != identity.ID {
		writeError(w, r, service.ErrNotOwner)
		return
	}

	if err := h.services.ConnectionService.SendRequest(r.Context(), req.From, req.To); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// acceptRequest accepts the pending request from req.From. req.To may be
// omitted; when present it must be the caller.
func (h *Handler) acceptRequest(w http.ResponseWriter, r *http.Request) {
	h.answerRequest(w, r, h.services.ConnectionService.Accept)
}

// declineRequest drops the pending request from req.From.
func (h *Handler) declineRequest(w http.ResponseWriter, r *http.Request) {
	h.answerRequest(w, r, h.services.ConnectionService.Decline)
}

func (h *Handler) answerRequest(w http.ResponseWriter, r *http.Request, answer func(ctx context.Context, targetID, requesterID string) error) {
	identity, req, ok := h.connectionRequest(w, r)
	if !ok {
		return
	}
	if req.To == "" {
		req.To = identity.ID
	}
	if req.To != identity.ID {
		writeError(w, r, service.ErrNotOwner)
		return
	}

	if err := answer(r.Context(), req.To, req.From); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) connectionRequest(w http.ResponseWriter, r *http.Request) (models.Identity, models.ConnectionRequest, bool) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, r, err)
		return models.Identity{}, models.ConnectionRequest{}, false
	}

	var req models.ConnectionRequest
	if !decodeJSON(w, r, &req) {
		return models.Identity{}, models.ConnectionRequest{}, false
	}
	req.From = strings.TrimSpace(req.From)
	req.To = strings.TrimSpace(req.To)

	return identity, req, true
}

// listPendingRequests lists who is waiting for the caller's answer.
func (h *Handler) listPendingRequests(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ids, err := h.services.ConnectionService.ListPending(r.Context(), identity.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PendingRequests{UserID: identity.ID, From: ids}, http.StatusOK)
}

func (h *Handler) listMyConnections(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profiles, err := h.services.ConnectionService.ListConnections(r.Context(), identity.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, profiles, http.StatusOK)
}
