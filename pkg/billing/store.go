package billing

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the persistence interface for webhook-ingested payment
// and subscription records. List queries return records in insertion
// order, which mirrors the order the provider delivered them in.
type Store interface {
	// ListPayments returns all payments for a user matching the filter.
	ListPayments(ctx context.Context, userID uuid.UUID, filter PaymentFilter) ([]Payment, error)

	// ListSubscriptions returns all subscriptions for a user.
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]Subscription, error)

	// SavePayment creates or updates a payment record keyed by its
	// provider transaction ID.
	SavePayment(ctx context.Context, payment *Payment) error

	// SaveSubscription creates or updates a subscription record keyed by
	// its provider subscription ID.
	SaveSubscription(ctx context.Context, sub *Subscription) error
}
