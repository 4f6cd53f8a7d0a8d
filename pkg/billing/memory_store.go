package billing

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store implementation for development and
// testing. Records are kept in insertion order per user to mirror the
// provider-delivery order guarantee of real stores.
type MemoryStore struct {
	mu            sync.RWMutex
	payments      map[string]*Payment
	paymentOrder  []string
	subscriptions map[string]*Subscription
	subOrder      []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		payments:      make(map[string]*Payment),
		subscriptions: make(map[string]*Subscription),
	}
}

func (s *MemoryStore) ListPayments(_ context.Context, userID uuid.UUID, filter PaymentFilter) ([]Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Payment
	for _, id := range s.paymentOrder {
		p := s.payments[id]
		if p.UserID != userID || !filter.Match(*p) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *MemoryStore) ListSubscriptions(_ context.Context, userID uuid.UUID) ([]Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Subscription
	for _, id := range s.subOrder {
		sub := s.subscriptions[id]
		if sub.UserID != userID {
			continue
		}
		out = append(out, *sub)
	}
	return out, nil
}

func (s *MemoryStore) SavePayment(_ context.Context, payment *Payment) error {
	if payment == nil || payment.ID == "" {
		return ErrPaymentNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := *payment
	if existing, ok := s.payments[payment.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		s.paymentOrder = append(s.paymentOrder, payment.ID)
	}
	stored.UpdatedAt = now
	s.payments[payment.ID] = &stored
	return nil
}

func (s *MemoryStore) SaveSubscription(_ context.Context, sub *Subscription) error {
	if sub == nil || sub.ID == "" {
		return ErrSubscriptionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := *sub
	if existing, ok := s.subscriptions[sub.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		s.subOrder = append(s.subOrder, sub.ID)
	}
	stored.UpdatedAt = now
	s.subscriptions[sub.ID] = &stored
	return nil
}
