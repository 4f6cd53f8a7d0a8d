package routegate

import "errors"

var (
	ErrInvalidRoutePattern = errors.New("invalid route pattern")
	ErrInvalidLocale       = errors.New("invalid locale tag")
	ErrNoLocales           = errors.New("at least one locale is required")
)
