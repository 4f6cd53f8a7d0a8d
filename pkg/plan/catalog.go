package plan

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Source defines how plans are loaded into the catalog.
// Load is called exactly once, during catalog construction.
type Source interface {
	Load(ctx context.Context) ([]PricePlan, error)
}

// Catalog is the static, process-wide table of price plans, indexed by
// plan ID and by provider price ID. It is built once at startup and is
// read-only afterwards, so all lookups are safe for concurrent use
// without locking.
type Catalog struct {
	plans     []PricePlan
	byID      map[string]PricePlan
	byPriceID map[string]PricePlan
	freeID    string
	lifetime  []string
}

// New builds a catalog from the given source and validates it.
// Validation catches configuration mistakes early: duplicate plan or
// price IDs, more than one free plan, free plans carrying prices, and
// lifetime plans carrying recurring prices.
func New(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		panic("plan: Source is required")
	}

	plans, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}
	if len(plans) == 0 {
		return nil, errors.Join(ErrInvalidCatalog, ErrNoPlans)
	}

	c := &Catalog{
		plans:     slices.Clone(plans),
		byID:      make(map[string]PricePlan, len(plans)),
		byPriceID: make(map[string]PricePlan),
	}

	for _, p := range c.plans {
		if p.ID == "" {
			return nil, errors.Join(ErrInvalidCatalog, errors.New("plan with empty ID"))
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, errors.Join(ErrInvalidCatalog, ErrDuplicatePlanID,
				fmt.Errorf("plan ID %q", p.ID))
		}
		c.byID[p.ID] = p

		if p.IsFree {
			if c.freeID != "" {
				return nil, errors.Join(ErrInvalidCatalog, ErrMultipleFreePlans,
					fmt.Errorf("plans %q and %q", c.freeID, p.ID))
			}
			if len(p.Prices) > 0 {
				return nil, errors.Join(ErrInvalidCatalog, ErrFreePlanWithPrices,
					fmt.Errorf("plan %q", p.ID))
			}
			c.freeID = p.ID
			continue
		}

		if len(p.Prices) == 0 {
			return nil, errors.Join(ErrInvalidCatalog, ErrPlanWithoutPrices,
				fmt.Errorf("plan %q", p.ID))
		}

		for _, price := range p.Prices {
			if _, exists := c.byPriceID[price.ID]; exists {
				return nil, errors.Join(ErrInvalidCatalog, ErrDuplicatePriceID,
					fmt.Errorf("price ID %q", price.ID))
			}
			if p.IsLifetime && price.Interval != IntervalOneTime {
				return nil, errors.Join(ErrInvalidCatalog, ErrLifetimeWithRecurring,
					fmt.Errorf("plan %q price %q has interval %q", p.ID, price.ID, price.Interval))
			}
			c.byPriceID[price.ID] = p
		}

		if p.IsLifetime {
			c.lifetime = append(c.lifetime, p.ID)
		}
	}

	return c, nil
}

// ByID returns the plan with the given plan ID.
func (c *Catalog) ByID(planID string) (PricePlan, bool) {
	p, ok := c.byID[planID]
	return p, ok
}

// ByPriceID returns the plan that carries the given provider price ID.
func (c *Catalog) ByPriceID(priceID string) (PricePlan, bool) {
	p, ok := c.byPriceID[priceID]
	return p, ok
}

// FreePlan returns the catalog's free plan, if one is configured.
// A catalog without a free plan is valid.
func (c *Catalog) FreePlan() (PricePlan, bool) {
	if c.freeID == "" {
		return PricePlan{}, false
	}
	return c.byID[c.freeID], true
}

// HasLifetime reports whether the catalog currently defines any lifetime
// plan. Absence of lifetime plans is valid and lets callers skip lifetime
// payment matching entirely.
func (c *Catalog) HasLifetime() bool {
	return len(c.lifetime) > 0
}

// LifetimePlans returns all lifetime plans in catalog order.
func (c *Catalog) LifetimePlans() []PricePlan {
	out := make([]PricePlan, 0, len(c.lifetime))
	for _, id := range c.lifetime {
		out = append(out, c.byID[id])
	}
	return out
}

// Plans returns all plans in catalog order.
// The returned slice is a copy and may be modified by the caller.
func (c *Catalog) Plans() []PricePlan {
	return slices.Clone(c.plans)
}
