package entitlement

import "errors"

var (
	// ErrProvider wraps failures of the underlying billing record lookups.
	// Resolution never degrades to the free fallback on lookup failure;
	// it surfaces this error instead so callers can distinguish "no
	// lifetime found" from "could not check".
	ErrProvider = errors.New("entitlement: billing lookup failed")

	// ErrNoFetcher indicates a Cache was constructed without a fetch function.
	ErrNoFetcher = errors.New("entitlement: fetch function is required")
)
