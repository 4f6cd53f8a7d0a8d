package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool used by PgStore.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PgStore is a PostgreSQL-backed Store using pgx.
// Schema is managed by the migrations in pkg/pg.
type PgStore struct {
	db DB
}

// NewPgStore creates a Store backed by the given database pool.
func NewPgStore(db DB) *PgStore {
	if db == nil {
		panic("billing: db is required")
	}
	return &PgStore{db: db}
}

func (s *PgStore) ListPayments(ctx context.Context, userID uuid.UUID, filter PaymentFilter) ([]Payment, error) {
	query := `SELECT id, user_id, price_id, customer_id, type, status, created_at, updated_at
		FROM payments WHERE user_id = $1`
	args := []any{userID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.PriceID, &p.CustomerID,
			&p.Type, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return out, nil
}

func (s *PgStore) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]Subscription, error) {
	rows, err := s.db.Query(ctx, `SELECT id, user_id, price_id, customer_id, status, created_at, updated_at, cancelled_at
		FROM subscriptions WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var out []Subscription
	for rows.Next() {
		var sub Subscription
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.PriceID, &sub.CustomerID,
			&sub.Status, &sub.CreatedAt, &sub.UpdatedAt, &sub.CancelledAt); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	return out, nil
}

func (s *PgStore) SavePayment(ctx context.Context, payment *Payment) error {
	if payment == nil || payment.ID == "" {
		return ErrPaymentNotFound
	}

	_, err := s.db.Exec(ctx, `INSERT INTO payments (id, user_id, price_id, customer_id, type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, updated_at = now()`,
		payment.ID, payment.UserID, payment.PriceID, payment.CustomerID, payment.Type, payment.Status)
	if err != nil {
		return fmt.Errorf("save payment %s: %w", payment.ID, err)
	}
	return nil
}

func (s *PgStore) SaveSubscription(ctx context.Context, sub *Subscription) error {
	if sub == nil || sub.ID == "" {
		return ErrSubscriptionNotFound
	}

	_, err := s.db.Exec(ctx, `INSERT INTO subscriptions (id, user_id, price_id, customer_id, status, created_at, updated_at, cancelled_at)
		VALUES ($1, $2, $3, $4, $5, now(), now(), $6)
		ON CONFLICT (id) DO UPDATE SET
			price_id = EXCLUDED.price_id,
			status = EXCLUDED.status,
			cancelled_at = EXCLUDED.cancelled_at,
			updated_at = now()`,
		sub.ID, sub.UserID, sub.PriceID, sub.CustomerID, sub.Status, sub.CancelledAt)
	if err != nil {
		return fmt.Errorf("save subscription %s: %w", sub.ID, err)
	}
	return nil
}
