package plan

// Interval represents the billing frequency attached to a single price.
type Interval string

const (
	IntervalMonth   Interval = "month"
	IntervalYear    Interval = "year"
	IntervalOneTime Interval = "one_time" // single charge, used by lifetime plans
)

// Money represents a monetary amount in the smallest currency unit.
// For example, $10.99 USD would be Amount: 1099, Currency: "USD".
type Money struct {
	Amount   int64  `yaml:"amount" json:"amount"`
	Currency string `yaml:"currency" json:"currency"`
}

// Price is one purchasable price point of a plan. The ID must be the
// payment provider's price ID (e.g. pri_xxx for Paddle) so payment and
// subscription records can be mapped back to their plan.
type Price struct {
	ID       string   `yaml:"id" json:"id"`
	Interval Interval `yaml:"interval" json:"interval"`
	Amount   Money    `yaml:"amount" json:"amount"`
}

// PricePlan describes one entry of the static plan catalog.
// Plans are immutable after the catalog is built.
type PricePlan struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	IsFree      bool    `yaml:"is_free,omitempty" json:"is_free,omitempty"`
	IsLifetime  bool    `yaml:"is_lifetime,omitempty" json:"is_lifetime,omitempty"`
	Prices      []Price `yaml:"prices,omitempty" json:"prices,omitempty"`
}

// HasPrice reports whether the plan carries the given provider price ID.
func (p PricePlan) HasPrice(priceID string) bool {
	for _, price := range p.Prices {
		if price.ID == priceID {
			return true
		}
	}
	return false
}
