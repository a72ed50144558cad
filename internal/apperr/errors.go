// Package apperr defines the error taxonomy shared by the service and
// handler layers. Services return these sentinel values (optionally
// wrapped with %w) and the HTTP boundary maps each one to a fixed
// status code and response code; see handler.ErrorHandler. Anything
// that is not one of these sentinels is treated as an internal failure
// and surfaced as an opaque 500.
package apperr

import "errors"

// ErrUnauthenticated covers every credential failure: unknown login id,
// wrong password, wrong session secret, missing/expired/forged token.
// The kinds are deliberately indistinguishable at the boundary so that
// login ids cannot be enumerated. Handlers translate this into 401.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrUnauthorized means the caller presented a valid token but lacks a
// required permission. Handlers translate this into 403.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is returned when a referenced resource does not exist.
// Handlers translate this into 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidParameters marks a well-formed request that is semantically
// inapplicable, such as signing out a session that is already revoked.
// Handlers translate this into 400.
var ErrInvalidParameters = errors.New("invalid parameters")

// Response codes returned in the error payload `{"code": "..."}`.
const (
	CodeUnknown           = "ERR1000"
	CodeUnauthenticated   = "ERR1001"
	CodeUnauthorized      = "ERR1002"
	CodeNotFound          = "ERR1003"
	CodeInvalidParameters = "ERR1004"
)
