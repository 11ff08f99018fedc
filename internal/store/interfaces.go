package store

import (
	"context"

	"github.com/MKhiriev/go-linkup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts together with their profile.
type UserRepository interface {
	// CreateUser inserts a new account. A username or email collision is
	// reported as [ErrUsernameAlreadyExists] or [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindCollision returns nil when neither username nor email is taken.
	FindCollision(ctx context.Context, username, email string) error
	FindUsersByIDs(ctx context.Context, ids []string) ([]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser loads the user inside a transaction, applies mutate and
	// writes the result back. Nothing is written when mutate fails.
	UpdateUser(ctx context.Context, id string, mutate func(user *models.User) error) (models.User, error)
}

// ConnectionRepository persists the relation edges between users.
//
// Edge (owner, peer, pending) means peer asked owner to connect.
// Edge (owner, peer, connected) always has a (peer, owner, connected) twin.
type ConnectionRepository interface {
	// AddPendingRequest records that requesterID asked targetID to connect.
	// An existing pending request or connection makes it a no-op.
	AddPendingRequest(ctx context.Context, requesterID, targetID string) error
	// AcceptPendingRequest turns the pending request into a connection on
	// both sides atomically.
	AcceptPendingRequest(ctx context.Context, targetID, requesterID string) error
	// RemovePendingRequest drops the pending request only.
	RemovePendingRequest(ctx context.Context, targetID, requesterID string) error
	ListPendingRequests(ctx context.Context, userID string) ([]string, error)
	ListConnections(ctx context.Context, userID string) ([]string, error)
}

// HealthChecker reports whether the underlying database is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
