package billing

import (
	"time"

	"github.com/google/uuid"
)

// Payment is one payment record ingested from the billing provider's
// webhooks. Records are append-only from the storefront core's view:
// the provider creates and updates them, the core only reads.
type Payment struct {
	ID         string // provider's transaction ID (txn_xxx)
	UserID     uuid.UUID
	PriceID    string // provider's price ID, maps to a plan via the catalog
	CustomerID string // provider's customer ID (ctm_xxx)
	Type       PaymentType
	Status     PaymentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsCompleted reports whether the payment has settled.
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}

// GrantsLifetime reports whether the payment can grant lifetime
// entitlement on its own: a completed one-time charge. Whether it
// actually does depends on the plan its price ID resolves to.
func (p *Payment) GrantsLifetime() bool {
	return p.Type == PaymentTypeOneTime && p.Status == PaymentStatusCompleted
}
