package httpserver

import "errors"

var (
	// ErrAlreadyRunning is returned by Run when the server was started twice.
	ErrAlreadyRunning = errors.New("http server already running")
	// ErrServe wraps listener failures that stopped the server.
	ErrServe = errors.New("http server stopped unexpectedly")
	// ErrShutdown wraps failures to drain the server within the shutdown timeout.
	ErrShutdown = errors.New("http server shutdown failed")
)
