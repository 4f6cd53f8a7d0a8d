package billing

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is one recurring subscription record ingested from the
// billing provider's webhooks. Read-only to the storefront core.
type Subscription struct {
	ID          string // provider's subscription ID (sub_xxx)
	UserID      uuid.UUID
	PriceID     string // provider's price ID, maps to a plan via the catalog
	CustomerID  string // provider's customer ID (ctm_xxx)
	Status      SubscriptionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time // set when the subscription is cancelled
}

// IsLive reports whether the subscription currently grants access:
// active or trialing. Past-due, paused, cancelled and expired
// subscriptions do not.
func (s *Subscription) IsLive() bool {
	return s.Status == StatusActive || s.Status == StatusTrialing
}

func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive
}

func (s *Subscription) IsTrialing() bool {
	return s.Status == StatusTrialing
}

func (s *Subscription) IsCancelled() bool {
	return s.Status == StatusCancelled
}
