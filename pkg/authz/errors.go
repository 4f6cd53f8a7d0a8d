package authz

import "errors"

var (
	// ErrUnauthorized indicates no acting session is present.
	// Surfaced to the user as a "please sign in" state, never retried.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates a session is present but lacks ownership or
	// the required role. Surfaced as a rejected action, never retried.
	ErrForbidden = errors.New("forbidden")
)
