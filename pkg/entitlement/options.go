package entitlement

import (
	"maps"

	"github.com/wegnite/storefrontkit/pkg/billing"
)

// SubscriptionSelector picks one subscription when a user holds several
// live ones at once. It is only ever called with a non-empty slice of
// live subscriptions.
type SubscriptionSelector func(live []billing.Subscription) *billing.Subscription

// FirstMatch takes the first subscription in provider-returned order.
// This is the default and matches the historically observed behavior,
// which is not guaranteed to pick the most recent subscription. Kept as
// an explicit, swappable policy rather than silently changed.
func FirstMatch(live []billing.Subscription) *billing.Subscription {
	return &live[0]
}

// MostRecent takes the subscription with the latest creation time,
// falling back to provider order on ties.
func MostRecent(live []billing.Subscription) *billing.Subscription {
	selected := 0
	for i := 1; i < len(live); i++ {
		if live[i].CreatedAt.After(live[selected].CreatedAt) {
			selected = i
		}
	}
	return &live[selected]
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithSubscriptionSelector sets the tie-break policy for users holding
// multiple live subscriptions. Nil selectors are ignored.
func WithSubscriptionSelector(selector SubscriptionSelector) ResolverOption {
	return func(r *Resolver) {
		if selector != nil {
			r.selector = selector
		}
	}
}

// WithRetiredLifetimePrices registers price IDs that were removed from
// the catalog but whose historical purchasers keep their lifetime grant.
// Each retired price ID maps to the lifetime plan ID it should still
// grant; the plan must remain in the catalog. Without this mapping a
// catalog edit silently revokes entitlement for historical purchasers.
func WithRetiredLifetimePrices(prices map[string]string) ResolverOption {
	return func(r *Resolver) {
		if len(prices) == 0 {
			return
		}
		if r.retired == nil {
			r.retired = make(map[string]string, len(prices))
		}
		maps.Copy(r.retired, prices)
	}
}
