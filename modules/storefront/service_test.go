package storefront_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wegnite/storefrontkit/modules/storefront"
	"github.com/wegnite/storefrontkit/pkg/authz"
	"github.com/wegnite/storefrontkit/pkg/billing"
	"github.com/wegnite/storefrontkit/pkg/entitlement"
	"github.com/wegnite/storefrontkit/pkg/plan"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) CreateCheckoutLink(ctx context.Context, req billing.CheckoutRequest) (*billing.CheckoutLink, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.CheckoutLink), args.Error(1)
}

func (m *mockProvider) CustomerPortalLink(ctx context.Context, sub *billing.Subscription) (*billing.PortalLink, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PortalLink), args.Error(1)
}

func (m *mockProvider) ParseWebhook(ctx context.Context, payload []byte, signature string) (*billing.WebhookEvent, error) {
	args := m.Called(ctx, payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.WebhookEvent), args.Error(1)
}

func testCatalog(t *testing.T) *plan.Catalog {
	t.Helper()

	catalog, err := plan.New(context.Background(), plan.NewStaticSource(
		plan.PricePlan{ID: "free", Name: "Free", IsFree: true},
		plan.PricePlan{ID: "pro", Name: "Pro", Prices: []plan.Price{
			{ID: "pri_pro_month", Interval: plan.IntervalMonth, Amount: plan.Money{Amount: 1500, Currency: "USD"}},
		}},
		plan.PricePlan{ID: "lifetime", Name: "Lifetime", IsLifetime: true, Prices: []plan.Price{
			{ID: "pri_lifetime", Interval: plan.IntervalOneTime, Amount: plan.Money{Amount: 29900, Currency: "USD"}},
		}},
	))
	require.NoError(t, err)
	return catalog
}

func newTestService(t *testing.T, provider billing.Provider, store billing.Store) *storefront.Service {
	t.Helper()

	catalog := testCatalog(t)
	resolver := entitlement.NewResolver(catalog, store)
	return storefront.NewService(storefront.Config{
		CheckoutSuccessURL:     "https://example.com/thanks",
		CheckoutCancelURL:      "https://example.com/pricing",
		WebhookSignatureHeader: "Paddle-Signature",
	}, catalog, resolver, provider, store, nil)
}

func TestService_Entitlement(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	store := billing.NewMemoryStore()
	require.NoError(t, store.SaveSubscription(ctx, &billing.Subscription{
		ID: "sub_1", UserID: userID, PriceID: "pri_pro_month",
		Status: billing.StatusActive, CreatedAt: time.Now(),
	}))

	svc := newTestService(t, new(mockProvider), store)

	t.Run("self can resolve", func(t *testing.T) {
		t.Parallel()

		ent, err := svc.Entitlement(ctx, &authz.Actor{ID: userID, Role: authz.RoleUser}, userID)
		require.NoError(t, err)
		require.NotNil(t, ent.Plan)
		assert.Equal(t, "pro", ent.Plan.ID)
	})

	t.Run("admin can resolve for anyone", func(t *testing.T) {
		t.Parallel()

		ent, err := svc.Entitlement(ctx, &authz.Actor{ID: otherID, Role: authz.RoleAdmin}, userID)
		require.NoError(t, err)
		assert.Equal(t, "pro", ent.Plan.ID)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Entitlement(ctx, &authz.Actor{ID: otherID, Role: authz.RoleUser}, userID)
		require.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("nil actor is unauthorized", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Entitlement(ctx, nil, userID)
		require.ErrorIs(t, err, authz.ErrUnauthorized)
	})
}

func TestService_Checkout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	actor := &authz.Actor{ID: userID, Role: authz.RoleUser}

	t.Run("creates link with config defaults", func(t *testing.T) {
		t.Parallel()

		provider := new(mockProvider)
		svc := newTestService(t, provider, billing.NewMemoryStore())

		provider.On("CreateCheckoutLink", ctx, billing.CheckoutRequest{
			PriceID:    "pri_pro_month",
			UserID:     userID.String(),
			SuccessURL: "https://example.com/thanks",
			CancelURL:  "https://example.com/pricing",
		}).Return(&billing.CheckoutLink{URL: "https://pay.example.com/c/1"}, nil)

		link, err := svc.Checkout(ctx, actor, storefront.CheckoutParams{
			UserID:  userID,
			PriceID: "pri_pro_month",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example.com/c/1", link.URL)
		provider.AssertExpectations(t)
	})

	t.Run("unknown price is rejected before the provider call", func(t *testing.T) {
		t.Parallel()

		provider := new(mockProvider)
		svc := newTestService(t, provider, billing.NewMemoryStore())

		_, err := svc.Checkout(ctx, actor, storefront.CheckoutParams{
			UserID:  userID,
			PriceID: "pri_gone",
		})
		require.ErrorIs(t, err, plan.ErrPriceNotFound)
		provider.AssertNotCalled(t, "CreateCheckoutLink", mock.Anything, mock.Anything)
	})

	t.Run("missing price id is invalid", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, new(mockProvider), billing.NewMemoryStore())

		_, err := svc.Checkout(ctx, actor, storefront.CheckoutParams{UserID: userID})
		require.ErrorIs(t, err, storefront.ErrInvalidRequest)
	})

	t.Run("acting for another user requires admin", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, new(mockProvider), billing.NewMemoryStore())

		_, err := svc.Checkout(ctx, actor, storefront.CheckoutParams{
			UserID:  uuid.New(),
			PriceID: "pri_pro_month",
		})
		require.ErrorIs(t, err, authz.ErrForbidden)
	})
}

func TestService_Portal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	actor := &authz.Actor{ID: userID, Role: authz.RoleUser}

	t.Run("returns portal link for the live subscription", func(t *testing.T) {
		t.Parallel()

		store := billing.NewMemoryStore()
		require.NoError(t, store.SaveSubscription(ctx, &billing.Subscription{
			ID: "sub_old", UserID: userID, PriceID: "pri_pro_month",
			Status: billing.StatusExpired, CreatedAt: time.Now().Add(-time.Hour),
		}))
		require.NoError(t, store.SaveSubscription(ctx, &billing.Subscription{
			ID: "sub_live", UserID: userID, PriceID: "pri_pro_month",
			Status: billing.StatusActive, CreatedAt: time.Now(),
		}))

		provider := new(mockProvider)
		provider.On("CustomerPortalLink", ctx, mock.MatchedBy(func(sub *billing.Subscription) bool {
			return sub.ID == "sub_live"
		})).Return(&billing.PortalLink{URL: "https://pay.example.com/p/1"}, nil)

		svc := newTestService(t, provider, store)

		link, err := svc.Portal(ctx, actor, userID)
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example.com/p/1", link.URL)
		provider.AssertExpectations(t)
	})

	t.Run("no live subscription is not found", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, new(mockProvider), billing.NewMemoryStore())

		_, err := svc.Portal(ctx, actor, userID)
		require.ErrorIs(t, err, billing.ErrSubscriptionNotFound)
	})
}
