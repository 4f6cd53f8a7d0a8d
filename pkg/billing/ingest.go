package billing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Ingestor turns verified provider webhook events into local payment and
// subscription records. The local copy is the only read path for
// entitlement resolution, so every relevant event must land here.
type Ingestor struct {
	provider Provider
	store    Store
	log      *slog.Logger
}

// NewIngestor creates a webhook ingestor.
// Panics on nil dependencies to fail fast during initialization.
func NewIngestor(provider Provider, store Store, log *slog.Logger) *Ingestor {
	if provider == nil {
		panic("billing: Provider is required")
	}
	if store == nil {
		panic("billing: Store is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Ingestor{provider: provider, store: store, log: log}
}

// HandleWebhook verifies, parses and applies one webhook delivery.
// Events that carry no internal user ID are logged and skipped rather
// than failing the delivery: the provider sends events for flows the
// storefront did not initiate (manual dashboard operations, migrations).
func (i *Ingestor) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := i.provider.ParseWebhook(ctx, payload, signature)
	if err != nil {
		return err
	}

	if event.UserID == "" {
		i.log.InfoContext(ctx, "skipping webhook event without user attribution",
			slog.String("event", event.ProviderEvent))
		return nil
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return fmt.Errorf("invalid user ID in webhook custom data: %w", err)
	}

	switch event.Type {
	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionResumed:
		return i.saveSubscription(ctx, event, userID, SubscriptionStatus(event.Status), nil)

	case EventSubscriptionCancelled:
		now := time.Now().UTC()
		return i.saveSubscription(ctx, event, userID, StatusCancelled, &now)

	case EventPaymentSucceeded:
		return i.savePayment(ctx, event, userID, PaymentStatusCompleted)

	case EventPaymentFailed:
		return i.savePayment(ctx, event, userID, PaymentStatusFailed)

	default:
		i.log.DebugContext(ctx, "ignoring unmapped webhook event",
			slog.String("event", event.ProviderEvent))
		return nil
	}
}

func (i *Ingestor) saveSubscription(ctx context.Context, event *WebhookEvent, userID uuid.UUID, status SubscriptionStatus, cancelledAt *time.Time) error {
	if event.SubscriptionID == "" {
		return fmt.Errorf("%s event without subscription ID", event.ProviderEvent)
	}

	sub := &Subscription{
		ID:          event.SubscriptionID,
		UserID:      userID,
		PriceID:     event.PriceID,
		CustomerID:  event.CustomerID,
		Status:      status,
		CancelledAt: cancelledAt,
	}
	if err := i.store.SaveSubscription(ctx, sub); err != nil {
		return fmt.Errorf("ingest %s: %w", event.ProviderEvent, err)
	}

	i.log.InfoContext(ctx, "subscription record ingested",
		slog.String("subscription_id", sub.ID),
		slog.String("user_id", userID.String()),
		slog.String("status", string(status)))
	return nil
}

func (i *Ingestor) savePayment(ctx context.Context, event *WebhookEvent, userID uuid.UUID, status PaymentStatus) error {
	if event.TransactionID == "" {
		return fmt.Errorf("%s event without transaction ID", event.ProviderEvent)
	}

	paymentType := PaymentTypeSubscription
	if event.OneTime {
		paymentType = PaymentTypeOneTime
	}

	payment := &Payment{
		ID:         event.TransactionID,
		UserID:     userID,
		PriceID:    event.PriceID,
		CustomerID: event.CustomerID,
		Type:       paymentType,
		Status:     status,
	}
	if err := i.store.SavePayment(ctx, payment); err != nil {
		return fmt.Errorf("ingest %s: %w", event.ProviderEvent, err)
	}

	i.log.InfoContext(ctx, "payment record ingested",
		slog.String("transaction_id", payment.ID),
		slog.String("user_id", userID.String()),
		slog.String("type", string(paymentType)),
		slog.String("status", string(status)))
	return nil
}
