// Package common contains shared constants and sentinel errors used across
// the console. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Authentication: the server rejected the credential token. Observing
	// this on any protected endpoint ends the session.
	ErrUnauthorized = errors.New("unauthorized")

	// Authorization: the principal lacks the capability gating an action.
	// Raised client-side; no request is attempted.
	ErrForbidden = errors.New("forbidden")

	// Validation: the server (or a client-side pre-check) rejected the
	// submitted payload. The message, when present, is user-facing.
	ErrValidation = errors.New("validation error")

	// Resource errors.
	ErrNotFound = errors.New("not found")
	ErrServer   = errors.New("server error")

	// Transport: no usable response at all (refused, timeout, DNS).
	ErrUnavailable = errors.New("server unavailable")

	// Token lifecycle.
	ErrInvalidToken = errors.New("invalid token")
)
