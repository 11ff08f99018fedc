// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-linkup server handlers and the CLI client.
//
// All Msg* constants are human-readable message strings written into HTTP
// error bodies as {"error": "<message>"}. The client matches on the status
// code, never on these strings.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided prefixes validation failures; the offending
	// field is appended by the handler.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is the single answer to every failed login.
	MsgInvalidCredentials = "invalid credentials"

	// MsgUnauthenticated is the uniform body of every 401 produced by the
	// auth middleware, whatever the reason.
	MsgUnauthenticated = "unauthenticated"

	MsgUserAlreadyExists     = "user already exists"
	MsgUsernameAlreadyExists = "username is already taken"
	MsgEmailAlreadyExists    = "email is already registered"

	MsgUserNotFound           = "user not found"
	MsgPendingRequestNotFound = "pending connection request not found"

	// MsgSelfConnection is returned when a user addresses a connection
	// request to themselves.
	MsgSelfConnection = "cannot connect to yourself"

	// MsgAccessDenied is returned when the caller acts on behalf of another
	// user.
	MsgAccessDenied = "access denied"

	// MsgNotFound answers unknown routes and unsupported methods alike.
	MsgNotFound = "not found"

	// MsgInternalServerError hides every unexpected server-side failure.
	MsgInternalServerError = "internal server error"
)
