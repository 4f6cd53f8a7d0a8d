package storefront

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wegnite/storefrontkit/pkg/authz"
	"github.com/wegnite/storefrontkit/pkg/billing"
	"github.com/wegnite/storefrontkit/pkg/entitlement"
	"github.com/wegnite/storefrontkit/pkg/plan"
)

// Service is the storefront action boundary. Every method that acts on
// behalf of a user takes the acting identity explicitly and enforces the
// self-or-admin rule before touching billing state.
type Service struct {
	cfg      Config
	catalog  *plan.Catalog
	resolver *entitlement.Resolver
	provider billing.Provider
	store    billing.Store
	ingestor *billing.Ingestor
	log      *slog.Logger
}

// NewService wires the storefront module. Panics on nil dependencies to
// fail fast during initialization.
func NewService(cfg Config, catalog *plan.Catalog, resolver *entitlement.Resolver, provider billing.Provider, store billing.Store, log *slog.Logger) *Service {
	if catalog == nil {
		panic("storefront: plan catalog is required")
	}
	if resolver == nil {
		panic("storefront: entitlement resolver is required")
	}
	if provider == nil {
		panic("storefront: billing provider is required")
	}
	if store == nil {
		panic("storefront: billing store is required")
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		cfg:      cfg,
		catalog:  catalog,
		resolver: resolver,
		provider: provider,
		store:    store,
		ingestor: billing.NewIngestor(provider, store, log),
		log:      log,
	}
}

// Entitlement resolves the subject's current entitlement. Allowed for the
// subject themselves or an admin.
func (s *Service) Entitlement(ctx context.Context, actor *authz.Actor, userID uuid.UUID) (*entitlement.Entitlement, error) {
	if err := authz.AuthorizeSelfOrAdmin(actor, userID); err != nil {
		return nil, err
	}
	return s.resolver.Resolve(ctx, userID)
}

// CheckoutParams describes a hosted checkout request.
type CheckoutParams struct {
	UserID     uuid.UUID
	PriceID    string
	Email      string
	SuccessURL string
	CancelURL  string
}

// Checkout creates a hosted checkout link for a catalog price. The price
// must belong to a paid plan; redirect URLs default to the module config.
func (s *Service) Checkout(ctx context.Context, actor *authz.Actor, params CheckoutParams) (*billing.CheckoutLink, error) {
	if err := authz.AuthorizeSelfOrAdmin(actor, params.UserID); err != nil {
		return nil, err
	}
	if params.PriceID == "" {
		return nil, fmt.Errorf("%w: price_id is required", ErrInvalidRequest)
	}
	if _, ok := s.catalog.ByPriceID(params.PriceID); !ok {
		return nil, plan.ErrPriceNotFound
	}

	successURL := params.SuccessURL
	if successURL == "" {
		successURL = s.cfg.CheckoutSuccessURL
	}
	cancelURL := params.CancelURL
	if cancelURL == "" {
		cancelURL = s.cfg.CheckoutCancelURL
	}

	link, err := s.provider.CreateCheckoutLink(ctx, billing.CheckoutRequest{
		PriceID:    params.PriceID,
		UserID:     params.UserID.String(),
		Email:      params.Email,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "checkout link created",
		"user_id", params.UserID, "price_id", params.PriceID)
	return link, nil
}

// Portal returns a pre-authenticated customer portal link for the
// subject's live subscription. Users without a live subscription get
// billing.ErrSubscriptionNotFound.
func (s *Service) Portal(ctx context.Context, actor *authz.Actor, userID uuid.UUID) (*billing.PortalLink, error) {
	if err := authz.AuthorizeSelfOrAdmin(actor, userID); err != nil {
		return nil, err
	}

	subs, err := s.store.ListSubscriptions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	for i := range subs {
		if subs[i].IsLive() {
			return s.provider.CustomerPortalLink(ctx, &subs[i])
		}
	}
	return nil, billing.ErrSubscriptionNotFound
}

// Webhook verifies and ingests a provider webhook payload. The webhook
// endpoint is unauthenticated; the signature is the only trust anchor.
func (s *Service) Webhook(ctx context.Context, payload []byte, signature string) error {
	return s.ingestor.HandleWebhook(ctx, payload, signature)
}
