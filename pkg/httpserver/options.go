package httpserver

import (
	"log/slog"
	"net/http"
)

// Option configures a Server beyond what Config carries.
type Option func(*Server)

// WithLogger sets the logger for lifecycle and readiness events.
// Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	if log == nil {
		panic("httpserver: nil logger")
	}
	return func(s *Server) { s.log = log }
}

// WithBaseServer serves through the provided http.Server. Run replaces
// its Handler; Addr and timeouts already set on it win over the Config
// values.
func WithBaseServer(srv *http.Server) Option {
	if srv == nil {
		panic("httpserver: nil base server")
	}
	return func(s *Server) { s.base = srv }
}

// WithReadiness registers dependency checks for the health endpoint,
// typically pg.Healthcheck and redis.Healthcheck.
func WithReadiness(checks ...Check) Option {
	for _, c := range checks {
		if c == nil {
			panic("httpserver: nil readiness check")
		}
	}
	return func(s *Server) { s.checks = append(s.checks, checks...) }
}
