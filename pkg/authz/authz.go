package authz

import (
	"github.com/google/uuid"
)

// Role is the coarse-grained user role carried by every session.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Actor is the authenticated identity performing an action, extracted
// from an already-verified session. It intentionally carries no more
// than authorization needs.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// Authorize enforces the uniform self-or-role rule used by every action
// that touches a specific user's billing or profile data: the actor must
// be the subject, or hold one of the allowed roles (typically admin).
//
// A nil actor always fails with ErrUnauthorized, distinct from a role or
// ownership mismatch which fails with ErrForbidden. Authorize is a pure
// function over already-fetched session data and performs no I/O.
func Authorize(actor *Actor, subjectID uuid.UUID, allowed ...Role) error {
	if actor == nil {
		return ErrUnauthorized
	}

	if actor.ID == subjectID {
		return nil
	}

	for _, role := range allowed {
		if actor.Role == role {
			return nil
		}
	}

	return ErrForbidden
}

// AuthorizeSelfOrAdmin is the common case of Authorize with the admin
// role as the only override.
func AuthorizeSelfOrAdmin(actor *Actor, subjectID uuid.UUID) error {
	return Authorize(actor, subjectID, RoleAdmin)
}
