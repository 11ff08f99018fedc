package service

import "errors"

var (
	// ErrInvalidDataProvided wraps a validators error describing the
	// offending field.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the only error a failed login produces.
	// Whether the account is unknown or the password is wrong is logged,
	// never returned.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsInvalid          = errors.New("token is invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenSignKeyIsNotSet    = errors.New("token sign key is not set")
	ErrTokenDurationIsNotValid = errors.New("token duration must be positive")

	// ErrSelfConnection is returned when a user addresses a connection
	// request to themselves.
	ErrSelfConnection = errors.New("cannot connect to yourself")

	// ErrNotOwner is returned when the caller acts on behalf of another user.
	ErrNotOwner = errors.New("operation is allowed to the owner only")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
