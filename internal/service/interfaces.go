package service

import (
	"context"

	"github.com/MKhiriev/go-linkup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialService owns password hashing and the identity fields of an
// account.
type CredentialService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Verify returns the account matching the credentials or
	// ErrInvalidCredentials.
	Verify(ctx context.Context, req models.LoginRequest) (models.User, error)
	Lookup(ctx context.Context, userID string) (models.User, error)
}

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	Issue(ctx context.Context, userID string) (models.Token, error)
	// Verify returns the subject of a valid token, or ErrTokenIsExpired /
	// ErrTokenIsInvalid.
	Verify(ctx context.Context, tokenString string) (string, error)
}

// AuthService ties credentials and tokens together for the transport layer.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	// Authenticate resolves a bearer token to the identity of its owner.
	Authenticate(ctx context.Context, tokenString string) (models.Identity, error)
}

// ConnectionService drives the pending -> connected workflow between users.
type ConnectionService interface {
	SendRequest(ctx context.Context, fromID, toID string) error
	Accept(ctx context.Context, targetID, requesterID string) error
	Decline(ctx context.Context, targetID, requesterID string) error
	ListPending(ctx context.Context, userID string) ([]string, error)
	ListConnections(ctx context.Context, userID string) ([]models.PublicProfile, error)
}

// ProfileService edits and projects the profile part of an account.
type ProfileService interface {
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.PublicProfile, error)
	SetAvatar(ctx context.Context, userID string, update models.AvatarUpdate) (models.PublicProfile, error)
	GetPublicProfile(ctx context.Context, userID string) (models.PublicProfile, error)
	GetPublicProfileByUsername(ctx context.Context, username string) (models.PublicProfile, error)
	ListPublicProfiles(ctx context.Context) ([]models.PublicProfile, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces identifiers for new accounts and work history
// entries.
type IDGenerator interface {
	Generate() string
}
