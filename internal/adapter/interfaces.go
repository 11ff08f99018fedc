// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the go-linkup HTTP API.
//
// [ServerAdapter] hides the transport from the CLI. Non-2xx responses are
// mapped to the sentinel errors in errors.go, so callers can use
// [errors.Is] (for example [ErrUnauthorized] for 401 or [ErrConflict] for
// 409) without looking at status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-linkup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the go-linkup server on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the stored token, or "" if there is none.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates by email or username and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	Me(ctx context.Context) (models.Identity, error)
	Version(ctx context.Context) (string, error)

	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.PublicProfile, error)
	SetAvatar(ctx context.Context, update models.AvatarUpdate) (models.PublicProfile, error)

	ListUsers(ctx context.Context) ([]models.PublicProfile, error)
	GetUser(ctx context.Context, userID string) (models.PublicProfile, error)
	GetUserByUsername(ctx context.Context, username string) (models.PublicProfile, error)
	ListUserConnections(ctx context.Context, userID string) ([]models.PublicProfile, error)

	// SendRequest asks toID to connect with the current user.
	SendRequest(ctx context.Context, toID string) error

	// Accept and Decline answer the pending request from requesterID.
	Accept(ctx context.Context, requesterID string) error
	Decline(ctx context.Context, requesterID string) error

	ListPending(ctx context.Context) (models.PendingRequests, error)
	ListConnections(ctx context.Context) ([]models.PublicProfile, error)
}
