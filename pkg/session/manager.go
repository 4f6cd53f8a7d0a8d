package session

import (
	"context"
	"errors"
	"net/http"
)

// Manager handles session operations behind one interface with two named
// cost tiers. Probe is the edge-safe presence check for latency-critical
// request filters; Load is the DB-aware full lookup for server actions.
// Call sites are forced to pick the correct cost/correctness tradeoff
// rather than accidentally using the heavy path in the filter.
type Manager struct {
	store      Store
	transport  *CookieTransport
	config     Config
	probeStore bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore sets the session store. Defaults to an in-memory store.
func WithStore(store Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// WithExistenceProbe makes Probe issue one lightweight store existence
// check on top of the cookie signature verification. Acceptable when the
// store's Exists is a single cheap round trip (Redis EXISTS); the full
// session load stays off-limits in the probe path either way.
func WithExistenceProbe() Option {
	return func(m *Manager) {
		m.probeStore = true
	}
}

// New creates a session manager.
// Panics if the signing secret is empty to fail fast on misconfiguration.
func New(cfg Config, opts ...Option) *Manager {
	if cfg.Secret == "" {
		panic(ErrMissingSecret.Error())
	}

	m := &Manager{
		config:    cfg,
		transport: NewCookieTransport(cfg.CookieName, cfg.Secret, cfg.SecureCookies),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.store = NewMemoryStore(cfg.CleanupInterval)
	}
	return m
}

// Probe reports whether the request plausibly carries a live session.
// It only verifies the signed cookie (plus, when configured, one
// existence round trip) and never loads the session record, so it is
// safe to call in the request-path filter.
func (m *Manager) Probe(ctx context.Context, r *http.Request) bool {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return false
	}
	if !m.probeStore {
		return true
	}
	exists, err := m.store.Exists(ctx, token)
	return err == nil && exists
}

// Load retrieves and validates the full session for the request.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		_ = m.store.Delete(ctx, token)
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Authenticate creates a session for the user and sets the signed
// session cookie.
func (m *Manager) Authenticate(ctx context.Context, w http.ResponseWriter, user User) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	session := NewSession(token, user, m.config.TTL)
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}

	m.transport.SetToken(w, token, m.config.TTL)
	return session, nil
}

// Logout removes the session and clears the cookie. A request without a
// session is not an error.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer m.transport.ClearToken(w)

	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}
