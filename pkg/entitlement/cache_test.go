package entitlement_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wegnite/storefrontkit/pkg/entitlement"
	"github.com/wegnite/storefrontkit/pkg/plan"
)

func TestCache_SingleFlight(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	proPlan := &plan.PricePlan{ID: "pro"}

	var calls int32
	release := make(chan struct{})
	cache := entitlement.NewCache(func(ctx context.Context, id uuid.UUID) (*entitlement.Entitlement, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return &entitlement.Entitlement{Plan: proPlan}, nil
	})

	const callers = 5
	results := make([]*entitlement.Entitlement, callers)
	errs := make([]error, callers)

	var started, done sync.WaitGroup
	started.Add(callers)
	done.Add(callers)
	for i := range callers {
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i], errs[i] = cache.FetchOnce(context.Background(), userID)
		}(i)
	}

	started.Wait()
	close(release)
	done.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "exactly one underlying resolution call")
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i], "all callers observe the identical result")
	}

	// Subsequent call is served from cache.
	again, err := cache.FetchOnce(context.Background(), userID)
	require.NoError(t, err)
	assert.Same(t, results[0], again)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestCache_ErrorSharedNotCached(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	fetchErr := errors.New("provider unavailable")

	var calls int32
	cache := entitlement.NewCache(func(ctx context.Context, id uuid.UUID) (*entitlement.Entitlement, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, fetchErr
		}
		return &entitlement.Entitlement{Plan: &plan.PricePlan{ID: "pro"}}, nil
	})

	_, err := cache.FetchOnce(context.Background(), userID)
	assert.ErrorIs(t, err, fetchErr)

	snap := cache.Snapshot()
	assert.ErrorIs(t, snap.Err, fetchErr)
	assert.False(t, snap.Loading)

	// The error is surfaced, not retried automatically; the next explicit
	// call is the manual re-trigger.
	ent, err := cache.FetchOnce(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "pro", ent.Plan.ID)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestCache_IdentityChangeInvalidates(t *testing.T) {
	t.Parallel()

	var calls int32
	cache := entitlement.NewCache(func(ctx context.Context, id uuid.UUID) (*entitlement.Entitlement, error) {
		atomic.AddInt32(&calls, 1)
		return &entitlement.Entitlement{Plan: &plan.PricePlan{ID: id.String()}}, nil
	})

	alice, bob := uuid.New(), uuid.New()

	entA, err := cache.FetchOnce(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, alice.String(), entA.Plan.ID)

	entB, err := cache.FetchOnce(context.Background(), bob)
	require.NoError(t, err)
	assert.Equal(t, bob.String(), entB.Plan.ID)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))

	// Switching back re-fetches: the cache holds one identity at a time.
	_, err = cache.FetchOnce(context.Background(), alice)
	require.NoError(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestCache_LogoutClearsWithoutFetch(t *testing.T) {
	t.Parallel()

	freePlan := &plan.PricePlan{ID: "free", IsFree: true}
	loggedOut := &entitlement.Entitlement{Plan: freePlan}

	var calls int32
	cache := entitlement.NewCache(func(ctx context.Context, id uuid.UUID) (*entitlement.Entitlement, error) {
		atomic.AddInt32(&calls, 1)
		return &entitlement.Entitlement{Plan: &plan.PricePlan{ID: "pro"}}, nil
	}, entitlement.WithLoggedOutState(loggedOut))

	userID := uuid.New()
	cache.SetUser(&userID)
	_, err := cache.FetchOnce(context.Background(), userID)
	require.NoError(t, err)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))

	cache.SetUser(nil)

	snap := cache.Snapshot()
	require.NotNil(t, snap.Entitlement)
	assert.True(t, snap.Entitlement.IsFree())
	assert.NoError(t, snap.Err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "logout must not trigger a fetch")
}

func TestCache_StaleFetchDiscarded(t *testing.T) {
	t.Parallel()

	alice := uuid.New()
	release := make(chan struct{})
	cache := entitlement.NewCache(func(ctx context.Context, id uuid.UUID) (*entitlement.Entitlement, error) {
		if id == alice {
			<-release
		}
		return &entitlement.Entitlement{Plan: &plan.PricePlan{ID: id.String()}}, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// Slow fetch for alice, still in flight when the session changes.
		_, _ = cache.FetchOnce(context.Background(), alice)
	}()

	// Wait until the alice fetch is committed as in-flight.
	for !cache.Snapshot().Loading {
		time.Sleep(time.Millisecond)
	}

	cache.SetUser(nil)
	close(release)
	wg.Wait()

	snap := cache.Snapshot()
	require.NotNil(t, snap.Entitlement)
	assert.Nil(t, snap.Entitlement.Plan, "stale result must not be applied after logout")
}
