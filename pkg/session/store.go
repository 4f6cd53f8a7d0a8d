package session

import "context"

// Store defines the interface for session persistence.
//
// Exists is deliberately separate from Get: it backs the edge-safe
// presence probe and must stay cheap (a key existence check, never a
// full record load).
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by token.
	// Returns ErrSessionNotFound if no session exists.
	Get(ctx context.Context, token string) (*Session, error)

	// Exists reports whether a live session exists for the token without
	// loading it.
	Exists(ctx context.Context, token string) (bool, error)

	// Delete removes a session by token.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all expired sessions.
	DeleteExpired(ctx context.Context) error
}
