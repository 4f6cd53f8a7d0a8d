package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/wegnite/storefrontkit/pkg/authz"
)

// User is the identity snapshot a session carries. The identity
// subsystem owns the full user record; sessions only keep what access
// decisions and billing actions need.
type User struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email,omitempty"`
	Role       authz.Role `json:"role"`
	CustomerID string     `json:"customer_id,omitempty"` // external billing reference
}

// Session represents an authenticated user session.
type Session struct {
	ID             uuid.UUID `json:"id"`
	Token          string    `json:"token"`
	User           User      `json:"user"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewSession creates a session for the given user with the given token
// and lifetime.
func NewSession(token string, user User, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:             uuid.New(),
		Token:          token,
		User:           user,
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

// IsExpired reports whether the session has passed its expiry time.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().UTC().After(s.ExpiresAt)
}

// Actor returns the acting identity for authorization checks.
func (s *Session) Actor() *authz.Actor {
	if s == nil {
		return nil
	}
	return &authz.Actor{ID: s.User.ID, Role: s.User.Role}
}

// Touch updates the last activity time.
func (s *Session) Touch() {
	if s == nil {
		return
	}
	s.LastActivityAt = time.Now().UTC()
}
