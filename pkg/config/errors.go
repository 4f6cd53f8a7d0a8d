package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrMissingEnvFile is returned when an explicitly requested env file
	// does not exist or cannot be read.
	ErrMissingEnvFile = errors.New("env file could not be loaded")
)
