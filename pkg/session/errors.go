package session

import "errors"

var (
	// ErrSessionNotFound indicates no session was found for the request.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session has passed its expiry.
	ErrSessionExpired = errors.New("session.expired")

	// ErrInvalidToken indicates the cookie signature did not verify.
	ErrInvalidToken = errors.New("session.invalid_token")

	// ErrTokenGeneration indicates random token generation failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrMissingSecret indicates the manager was configured without a
	// signing secret.
	ErrMissingSecret = errors.New("session.signing_secret_required")
)
