// Package entitlement resolves what a user is currently entitled to,
// merging three independent sources of truth: one-time payment records,
// recurring subscription records, and the static plan catalog.
//
// # Resolution
//
// Resolver.Resolve applies a strict priority order. A completed one-time
// payment mapping to a lifetime plan outranks everything, including a
// simultaneously live subscription. Next comes a live (active or
// trialing) subscription, mapped to its plan through the provider price
// ID. Finally resolution falls back to the catalog's free plan, or to no
// plan when none is configured. The fallback never errors, but a failed
// record lookup is never mistaken for an empty one: it surfaces as
// ErrProvider.
//
//	resolver := entitlement.NewResolver(catalog, store)
//	ent, err := resolver.Resolve(ctx, userID)
//
// Two historical ambiguities are kept explicit instead of silently
// changed. The tie-break between multiple live subscriptions defaults to
// provider order (FirstMatch) and is swappable via
// WithSubscriptionSelector. Lifetime grants referencing prices removed
// from the catalog are revoked by default; WithRetiredLifetimePrices
// restores them.
//
// # Client-side cache
//
// Cache wraps remote resolution for UI sessions: single-flight per user,
// invalidated on identity change, cleared to a configurable logged-out
// state without a network call on logout.
//
//	cache := entitlement.NewCache(fetchFn, entitlement.WithLoggedOutState(freeEnt))
//	ent, err := cache.FetchOnce(ctx, userID)
package entitlement
