package client

import "context"

// Client is a runnable command line application.
type Client interface {
	// Run executes the command selected by args and returns its error.
	Run(ctx context.Context, args []string) error
}

// TokenStore persists the bearer token between invocations.
type TokenStore interface {
	// Load returns "" without error when no token was saved.
	Load() (string, error)
	Save(token string) error
	Clear() error
}
