// Package plan provides the static price plan catalog used by entitlement
// resolution and billing.
//
// The catalog is loaded once at process start from a Source (static values
// or a YAML file) and is immutable afterwards, so lookups by plan ID or
// provider price ID are pure, allocation-free and safe for concurrent use.
//
// # Usage
//
//	catalog, err := plan.New(ctx, plan.NewStaticSource(
//		plan.PricePlan{ID: "free", Name: "Free", IsFree: true},
//		plan.PricePlan{
//			ID:   "pro",
//			Name: "Pro",
//			Prices: []plan.Price{
//				{ID: "pri_pro_monthly", Interval: plan.IntervalMonth, Amount: plan.Money{Amount: 990, Currency: "USD"}},
//			},
//		},
//		plan.PricePlan{
//			ID:         "lifetime",
//			Name:       "Lifetime",
//			IsLifetime: true,
//			Prices: []plan.Price{
//				{ID: "pri_lifetime", Interval: plan.IntervalOneTime, Amount: plan.Money{Amount: 19900, Currency: "USD"}},
//			},
//		},
//	))
//	if err != nil {
//		// Handle invalid catalog configuration
//	}
//
//	if p, ok := catalog.ByPriceID("pri_pro_monthly"); ok {
//		// p.ID == "pro"
//	}
//
// Catalog construction validates the configuration: plan IDs and price IDs
// must be unique, at most one plan may be free, free plans carry no prices,
// and lifetime plans may only carry one-time prices.
package plan
