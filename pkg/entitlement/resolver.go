package entitlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wegnite/storefrontkit/pkg/billing"
	"github.com/wegnite/storefrontkit/pkg/plan"
)

// BillingSource is the read surface the resolver needs from the billing
// record store. billing.Store satisfies it.
type BillingSource interface {
	ListPayments(ctx context.Context, userID uuid.UUID, filter billing.PaymentFilter) ([]billing.Payment, error)
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]billing.Subscription, error)
}

// Resolver merges payment records, subscription records and the static
// plan catalog into one authoritative Entitlement per user.
//
// Resolution is read-only and referentially transparent: re-running it
// for the same inputs always yields the same result. Authorization is
// the caller's job; the resolver trusts that the invoking layer has
// already verified the acting session.
type Resolver struct {
	catalog  *plan.Catalog
	source   BillingSource
	selector SubscriptionSelector
	retired  map[string]string // retired lifetime price ID -> plan ID still in catalog
}

// NewResolver creates a Resolver over the given catalog and billing
// records. Panics on nil dependencies to fail fast during initialization.
func NewResolver(catalog *plan.Catalog, source BillingSource, opts ...ResolverOption) *Resolver {
	if catalog == nil {
		panic("entitlement: plan catalog is required")
	}
	if source == nil {
		panic("entitlement: billing source is required")
	}

	r := &Resolver{
		catalog:  catalog,
		source:   source,
		selector: FirstMatch,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve computes the user's current entitlement.
//
// Priority order, first match wins:
//  1. A completed one-time payment whose price resolves to a lifetime
//     plan grants that plan, with no subscription attached. Skipped
//     entirely when the catalog defines no lifetime plan.
//  2. A live (active or trialing) subscription grants the plan its price
//     resolves to. When several are live the configured selector picks
//     one. A price that no longer resolves to any plan degrades to the
//     fallback rather than erroring.
//  3. Fallback: the catalog's free plan, or no plan if none is
//     configured. Never an error.
//
// Lookup failures surface as ErrProvider; resolution never silently
// falls through to the fallback on a failed check.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID) (*Entitlement, error) {
	if lifetime, err := r.resolveLifetime(ctx, userID); err != nil {
		return nil, err
	} else if lifetime != nil {
		return lifetime, nil
	}

	subs, err := r.source.ListSubscriptions(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrProvider, fmt.Errorf("list subscriptions for %s: %w", userID, err))
	}

	live := make([]billing.Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.IsLive() {
			live = append(live, sub)
		}
	}

	if len(live) > 0 {
		selected := r.selector(live)
		if p, ok := r.catalog.ByPriceID(selected.PriceID); ok {
			return &Entitlement{Plan: &p, Subscription: selected}, nil
		}
		// The subscription references a price that was removed from the
		// catalog. Treated as "no plan", not an error.
	}

	return r.fallback(), nil
}

// resolveLifetime runs step 1. Returns (nil, nil) when no lifetime grant
// applies. Skips the payment lookup entirely when nothing in the catalog
// could match, so catalogs without lifetime plans never pay for it.
func (r *Resolver) resolveLifetime(ctx context.Context, userID uuid.UUID) (*Entitlement, error) {
	if !r.catalog.HasLifetime() && len(r.retired) == 0 {
		return nil, nil
	}

	payments, err := r.source.ListPayments(ctx, userID, billing.PaymentFilter{
		Type:   billing.PaymentTypeOneTime,
		Status: billing.PaymentStatusCompleted,
	})
	if err != nil {
		return nil, errors.Join(ErrProvider, fmt.Errorf("list payments for %s: %w", userID, err))
	}

	for _, payment := range payments {
		if p, ok := r.catalog.ByPriceID(payment.PriceID); ok && p.IsLifetime {
			return &Entitlement{Plan: &p}, nil
		}
		if planID, ok := r.retired[payment.PriceID]; ok {
			if p, ok := r.catalog.ByID(planID); ok && p.IsLifetime {
				return &Entitlement{Plan: &p}, nil
			}
		}
	}

	return nil, nil
}

func (r *Resolver) fallback() *Entitlement {
	if free, ok := r.catalog.FreePlan(); ok {
		return &Entitlement{Plan: &free}
	}
	return &Entitlement{}
}
