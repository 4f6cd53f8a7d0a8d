package entitlement

import "context"

type ctxKey struct{}

// SetToContext stores a resolved entitlement in the context so downstream
// handlers can reuse it without re-resolving.
func SetToContext(ctx context.Context, e *Entitlement) context.Context {
	return context.WithValue(ctx, ctxKey{}, e)
}

// FromContext retrieves the entitlement stored in the context.
func FromContext(ctx context.Context) (*Entitlement, bool) {
	e, ok := ctx.Value(ctxKey{}).(*Entitlement)
	return e, ok
}
