package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/wegnite/storefrontkit/pkg/logger"
)

// Server hosts the storefront HTTP surface: the application handler
// (typically a chi router with the storefront module mounted) plus a
// health endpoint served ahead of it for liveness/readiness probes.
type Server struct {
	cfg    Config
	log    *slog.Logger
	base   *http.Server
	checks []Check

	mu  sync.Mutex
	srv *http.Server
}

// New returns a Server configured from cfg. The zero-value Config is
// usable in tests; production deployments load it from the environment.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Run serves handler until ctx is cancelled, an interrupt/TERM signal
// arrives, or the listener fails. A nil handler serves 404 for
// everything except the health endpoint. Run blocks; it returns nil on
// a clean shutdown and an error wrapped with ErrServe otherwise.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	srv := s.base
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = s.cfg.Addr
	}
	if srv.ReadTimeout == 0 {
		srv.ReadTimeout = s.cfg.ReadTimeout
	}
	if srv.WriteTimeout == 0 {
		srv.WriteTimeout = s.cfg.WriteTimeout
	}
	if srv.IdleTimeout == 0 {
		srv.IdleTimeout = s.cfg.IdleTimeout
	}
	srv.Handler = s.withHealth(handler)
	s.srv = srv
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.InfoContext(ctx, "http server listening",
		slog.String("addr", srv.Addr), logger.Component("httpserver"))

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.Shutdown(context.Background())
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = errors.Join(runErr, err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = errors.Join(ErrServe, err)
		}
	}
	if runErr == nil {
		s.log.InfoContext(ctx, "http server stopped", logger.Component("httpserver"))
	}
	return runErr
}

// Shutdown drains in-flight requests within the configured shutdown
// timeout and unblocks Run. Calling it before Run, or more than once,
// is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
	}
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
