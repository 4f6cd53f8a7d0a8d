package authz

import "context"

type actorCtxKey struct{}

// SetActorToContext stores the acting identity in the context.
func SetActorToContext(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

// ActorFromContext retrieves the acting identity from the context.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(*Actor)
	return actor, ok
}

// RequireActor retrieves the acting identity or fails with
// ErrUnauthorized when none is attached.
func RequireActor(ctx context.Context) (*Actor, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok || actor == nil {
		return nil, ErrUnauthorized
	}
	return actor, nil
}
