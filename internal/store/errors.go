package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a new or updated account would
	// share its username or email with another account.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUsernameAlreadyExists narrows [ErrUserAlreadyExists] to the username.
	ErrUsernameAlreadyExists = fmt.Errorf("username is taken: %w", ErrUserAlreadyExists)

	// ErrEmailAlreadyExists narrows [ErrUserAlreadyExists] to the email.
	ErrEmailAlreadyExists = fmt.Errorf("email is taken: %w", ErrUserAlreadyExists)

	// ErrUserNotFound is returned when no account matches the lookup key.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPendingRequestNotFound is returned when accept or decline targets
	// a pending request that does not exist.
	ErrPendingRequestNotFound = errors.New("pending connection request was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewStorages] for a driver name
	// other than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
