// Package authz centralizes the self-or-admin authorization rule used by
// every server action operating on a specific user's data.
//
// Instead of duck-typed ownership checks scattered per action, each
// action calls Authorize (or AuthorizeSelfOrAdmin) before touching
// storage:
//
//	actor, err := authz.RequireActor(ctx)
//	if err != nil {
//		return err // unauthorized: no session
//	}
//	if err := authz.AuthorizeSelfOrAdmin(actor, subjectUserID); err != nil {
//		return err // forbidden: not the owner, not an admin
//	}
//
// The absence of a session (ErrUnauthorized) is deliberately distinct
// from an ownership or role mismatch (ErrForbidden) so callers can map
// them to different user-facing outcomes.
package authz
