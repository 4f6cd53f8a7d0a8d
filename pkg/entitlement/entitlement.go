package entitlement

import (
	"github.com/wegnite/storefrontkit/pkg/billing"
	"github.com/wegnite/storefrontkit/pkg/plan"
)

// Entitlement is the resolved plan and subscription state currently
// granted to a user. It is derived on every resolution call and never
// persisted server-side; only the client-side Cache may hold it for the
// lifetime of a UI session.
//
// A nil Plan means the user holds no plan at all (catalog without a free
// plan). Subscription is set only when the plan was derived from a live
// recurring subscription; lifetime grants always carry a nil
// Subscription, even when a live subscription co-exists.
type Entitlement struct {
	Plan         *plan.PricePlan
	Subscription *billing.Subscription
}

// HasPlan reports whether any plan is granted.
func (e *Entitlement) HasPlan() bool {
	return e != nil && e.Plan != nil
}

// IsLifetime reports whether the granted plan is a lifetime plan.
func (e *Entitlement) IsLifetime() bool {
	return e.HasPlan() && e.Plan.IsLifetime
}

// IsFree reports whether the granted plan is the catalog's free plan.
func (e *Entitlement) IsFree() bool {
	return e.HasPlan() && e.Plan.IsFree
}

// IsPaid reports whether the user holds a paid plan, lifetime or
// subscription-derived.
func (e *Entitlement) IsPaid() bool {
	return e.HasPlan() && !e.Plan.IsFree
}
