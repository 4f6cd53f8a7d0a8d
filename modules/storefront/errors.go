package storefront

import "errors"

var (
	// ErrInvalidRequest marks malformed or incomplete request payloads.
	ErrInvalidRequest = errors.New("invalid request")
)
