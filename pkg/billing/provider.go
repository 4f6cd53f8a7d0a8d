package billing

import (
	"context"
	"time"
)

// Provider defines the minimal interface for payment provider
// integrations. The provider handles all payment complexity through
// hosted checkouts and customer portals; the storefront core never
// touches card data. Implementations should use the official provider
// SDK and absorb provider-specific quirks internally.
//
// Payment and subscription records themselves are not read through the
// provider API at request time: webhooks ingest them into a Store and
// all entitlement reads go against that local copy.
type Provider interface {
	// CreateCheckoutLink creates a hosted checkout session for a price.
	CreateCheckoutLink(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error)

	// CustomerPortalLink returns a temporary pre-authenticated link to the
	// provider's customer portal for the given subscription.
	CustomerPortalLink(ctx context.Context, sub *Subscription) (*PortalLink, error)

	// ParseWebhook validates the webhook signature and returns the
	// normalized event. Must reject payloads with invalid signatures to
	// prevent webhook spoofing.
	ParseWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error)
}

// CheckoutRequest contains data needed to create a checkout session.
type CheckoutRequest struct {
	PriceID    string // provider's price identifier
	UserID     string // internal user ID, round-tripped via custom data
	Email      string // optional billing email
	SuccessURL string // redirect after successful payment
	CancelURL  string // redirect if customer cancels
}

// CheckoutLink represents a hosted checkout session.
type CheckoutLink struct {
	URL       string
	SessionID string
	ExpiresAt time.Time
}

// PortalLink represents a customer portal session.
type PortalLink struct {
	URL              string
	CancelURL        string // direct link to the cancel flow, when available
	UpdatePaymentURL string // direct link to the payment method flow, when available
	ExpiresAt        time.Time
}

// EventType represents the normalized billing event type.
// Each provider implementation maps its specific events to these types.
type EventType string

const (
	EventSubscriptionCreated   EventType = "subscription_created"
	EventSubscriptionUpdated   EventType = "subscription_updated"
	EventSubscriptionCancelled EventType = "subscription_cancelled"
	EventSubscriptionResumed   EventType = "subscription_resumed"

	EventPaymentSucceeded EventType = "payment_succeeded"
	EventPaymentFailed    EventType = "payment_failed"
)

// WebhookEvent represents a normalized webhook event from the billing
// provider.
type WebhookEvent struct {
	Type           EventType // normalized event type
	ProviderEvent  string    // original provider event name
	TransactionID  string    // provider's transaction ID, for payment events
	SubscriptionID string    // provider's subscription ID, for subscription events
	CustomerID     string    // provider's customer ID
	UserID         string    // internal user ID from custom data
	Status         string    // provider-reported status
	PriceID        string    // the price the customer paid for
	OneTime        bool      // true for one-time (non-subscription) transactions
	Raw            map[string]any
}
