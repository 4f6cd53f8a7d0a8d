package billing

// PaymentType distinguishes one-time charges from recurring subscription
// charges. Only completed one-time payments count toward lifetime
// entitlement.
type PaymentType string

const (
	PaymentTypeOneTime      PaymentType = "one_time"
	PaymentTypeSubscription PaymentType = "subscription"
)

// PaymentStatus represents the provider-reported state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// SubscriptionStatus represents the provider-reported state of a
// recurring subscription.
type SubscriptionStatus string

const (
	StatusTrialing  SubscriptionStatus = "trialing"
	StatusActive    SubscriptionStatus = "active"
	StatusPastDue   SubscriptionStatus = "past_due"
	StatusPaused    SubscriptionStatus = "paused"
	StatusCancelled SubscriptionStatus = "canceled"
	StatusExpired   SubscriptionStatus = "expired"
)

// PaymentFilter narrows payment list queries.
// Zero-value fields are ignored.
type PaymentFilter struct {
	Type   PaymentType
	Status PaymentStatus
}

// Match reports whether a payment satisfies the filter.
func (f PaymentFilter) Match(p Payment) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}

// CheckoutOptions contains options for creating a checkout session.
type CheckoutOptions struct {
	Email      string // Pre-fill billing email if known
	SuccessURL string // Redirect after successful payment
	CancelURL  string // Redirect if customer cancels
}
