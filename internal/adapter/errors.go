package adapter

import "errors"

// Errors mapped from the server's HTTP status codes. The server message is
// appended to the wrapped error.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("request cannot be processed")
	ErrInternalServerError = errors.New("internal server error")
)
