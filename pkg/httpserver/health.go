package httpserver

import (
	"context"
	"io"
	"net/http"

	"github.com/wegnite/storefrontkit/pkg/logger"
)

// Check reports whether a dependency is ready to serve traffic.
type Check func(context.Context) error

// withHealth answers Config.HealthPath ahead of the application handler.
// With no registered checks the endpoint is a pure liveness probe; with
// checks it reports readiness, failing with 503 when any dependency is
// down.
func (s *Server) withHealth(next http.Handler) http.Handler {
	if s.cfg.HealthPath == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != s.cfg.HealthPath {
			next.ServeHTTP(w, r)
			return
		}
		s.handleHealth(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	for _, check := range s.checks {
		if err := check(r.Context()); err != nil {
			s.log.ErrorContext(r.Context(), "readiness check failed",
				logger.Error(err), logger.Component("httpserver"))
			w.WriteHeader(http.StatusServiceUnavailable)
			io.WriteString(w, "unavailable")
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "ok")
}
