package plan

import (
	"context"
	"slices"
)

type staticSource struct {
	plans []PricePlan
}

// NewStaticSource returns a Source backed by the given plans.
// Panics if no plans are provided to ensure the catalog always has at
// least one valid plan. The plans are copied so later modifications of
// the caller's slice do not leak into the catalog.
func NewStaticSource(plans ...PricePlan) Source {
	if len(plans) == 0 {
		panic("plan: at least one plan is required")
	}
	return &staticSource{plans: deepCopy(plans)}
}

func (s *staticSource) Load(_ context.Context) ([]PricePlan, error) {
	return deepCopy(s.plans), nil
}

func deepCopy(plans []PricePlan) []PricePlan {
	out := make([]PricePlan, len(plans))
	for i, p := range plans {
		p.Prices = slices.Clone(p.Prices)
		out[i] = p
	}
	return out
}
