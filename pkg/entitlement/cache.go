package entitlement

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// FetchFunc resolves an entitlement remotely. The Cache collapses
// concurrent calls for the same user into one invocation.
type FetchFunc func(ctx context.Context, userID uuid.UUID) (*Entitlement, error)

// Snapshot is the cache state exposed for UI consumption.
type Snapshot struct {
	Entitlement *Entitlement
	Loading     bool
	Err         error
}

// Cache is a session-scoped, single-flight cache in front of remote
// entitlement resolution. One Cache instance belongs to one client
// session; it tracks the identity of the signed-in user and is
// invalidated whenever that identity changes.
//
// Concurrency contract: for all concurrent FetchOnce callers requesting
// the same user within the window of one in-flight fetch, exactly one
// underlying resolution call is made and every caller observes the same
// result or the same error. A fetch that completes after the user has
// changed (or signed out) returns its result to its own callers but is
// never committed to the cache.
type Cache struct {
	fetch     FetchFunc
	loggedOut *Entitlement // state after logout, applied without a fetch

	mu       sync.Mutex
	userID   uuid.UUID
	hasUser  bool
	gen      uint64 // bumped on every identity change, guards stale commits
	snap     Snapshot
	inflight *inflightFetch
}

type inflightFetch struct {
	done   chan struct{}
	result *Entitlement
	err    error
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLoggedOutState sets the entitlement exposed while no user is
// signed in, typically the catalog's free plan. Defaults to an empty
// entitlement with no plan.
func WithLoggedOutState(e *Entitlement) CacheOption {
	return func(c *Cache) {
		if e != nil {
			c.loggedOut = e
		}
	}
}

// NewCache creates a Cache over the given fetch function.
// Panics if fetch is nil to fail fast during initialization.
func NewCache(fetch FetchFunc, opts ...CacheOption) *Cache {
	if fetch == nil {
		panic(ErrNoFetcher.Error())
	}
	c := &Cache{
		fetch:     fetch,
		loggedOut: &Entitlement{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.snap = Snapshot{Entitlement: c.loggedOut}
	return c
}

// SetUser records the identity of the signed-in user. A change of
// identity drops the cached value and any in-flight fetch result. A nil
// userID represents logout: the cache resets to the logged-out state
// without making a network call.
func (c *Cache) SetUser(userID *uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if userID == nil {
		if !c.hasUser {
			return
		}
		c.hasUser = false
		c.userID = uuid.Nil
		c.gen++
		c.inflight = nil
		c.snap = Snapshot{Entitlement: c.loggedOut}
		return
	}

	if c.hasUser && c.userID == *userID {
		return
	}
	c.hasUser = true
	c.userID = *userID
	c.gen++
	c.inflight = nil
	c.snap = Snapshot{Loading: true}
}

// FetchOnce returns the entitlement for the given user, fetching at most
// once per cached value. Calling it with a different user than the last
// SetUser/FetchOnce implicitly switches identity and invalidates the
// cache. A call after a failed fetch re-triggers resolution; errors are
// surfaced but never retried automatically.
func (c *Cache) FetchOnce(ctx context.Context, userID uuid.UUID) (*Entitlement, error) {
	c.mu.Lock()

	if !c.hasUser || c.userID != userID {
		c.hasUser = true
		c.userID = userID
		c.gen++
		c.inflight = nil
		c.snap = Snapshot{Loading: true}
	}

	if c.snap.Entitlement != nil && !c.snap.Loading {
		snap := c.snap
		c.mu.Unlock()
		return snap.Entitlement, nil
	}

	if c.inflight != nil {
		flight := c.inflight
		c.mu.Unlock()
		<-flight.done
		return flight.result, flight.err
	}

	flight := &inflightFetch{done: make(chan struct{})}
	c.inflight = flight
	gen := c.gen
	c.snap = Snapshot{Loading: true}
	c.mu.Unlock()

	result, err := c.fetch(ctx, userID)
	flight.result = result
	flight.err = err

	c.mu.Lock()
	// Commit only if the session identity has not changed underneath the
	// fetch; stale results are handed to their callers and discarded.
	if c.gen == gen {
		c.inflight = nil
		c.snap = Snapshot{Entitlement: result, Err: err}
	}
	c.mu.Unlock()

	close(flight.done)
	return result, err
}

// Snapshot returns the current cache state for UI consumption.
func (c *Cache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}
