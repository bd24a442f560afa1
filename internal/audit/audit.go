// Package audit persists a durable record of payment attempts. The sheet
// holds only the final status cell; the audit trail is the operator's
// answer to "what happened to order X at 3pm". Recording is best effort
// and never blocks or fails a payment.
package audit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Event is one payment/writeback attempt.
type Event struct {
	ID               uuid.UUID
	OrderNo          string
	Status           string
	AuthorizationRef string
	RowIndex         int
	WritebackSkipped bool
	WritebackFailed  bool
	Reason           string
	CreatedAt        time.Time
}

// NewEvent builds an event with a fresh ID and timestamp.
func NewEvent(orderNo, status, authRef string) Event {
	return Event{
		ID:               uuid.New(),
		OrderNo:          orderNo,
		Status:           status,
		AuthorizationRef: authRef,
		CreatedAt:        time.Now().UTC(),
	}
}

// Recorder stores payment events. Satisfied by *PGRecorder and
// NopRecorder; narrow so handlers can be tested with a fn mock.
type Recorder interface {
	RecordPayment(ctx context.Context, ev Event) error
}

// NopRecorder is used when no DATABASE_URL is configured; events go to the
// operator log only.
type NopRecorder struct{}

func (NopRecorder) RecordPayment(_ context.Context, ev Event) error {
	log.Printf("payment recorded: order %s status %q ref %s (no audit store configured)",
		ev.OrderNo, ev.Status, ev.AuthorizationRef)
	return nil
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS payment_events (
	id                 UUID PRIMARY KEY,
	order_no           TEXT NOT NULL,
	status             TEXT NOT NULL,
	authorization_ref  TEXT NOT NULL DEFAULT '',
	row_index          INT NOT NULL DEFAULT 0,
	writeback_skipped  BOOLEAN NOT NULL DEFAULT FALSE,
	writeback_failed   BOOLEAN NOT NULL DEFAULT FALSE,
	reason             TEXT NOT NULL DEFAULT '',
	created_at         TIMESTAMPTZ NOT NULL
)`

const insertEventSQL = `
INSERT INTO payment_events
	(id, order_no, status, authorization_ref, row_index,
	 writeback_skipped, writeback_failed, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// PGRecorder persists events to Postgres.
type PGRecorder struct {
	pool *pgxpool.Pool
}

// NewPGRecorder connects to the audit database and ensures the events
// table exists.
func NewPGRecorder(ctx context.Context, databaseURL string) (*PGRecorder, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect audit store: %w", err)
	}
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure payment_events table: %w", err)
	}
	return &PGRecorder{pool: pool}, nil
}

// RecordPayment inserts one event row.
func (r *PGRecorder) RecordPayment(ctx context.Context, ev Event) error {
	_, err := r.pool.Exec(ctx, insertEventSQL,
		ev.ID, ev.OrderNo, ev.Status, ev.AuthorizationRef, ev.RowIndex,
		ev.WritebackSkipped, ev.WritebackFailed, ev.Reason, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment event: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *PGRecorder) Close() {
	r.pool.Close()
}
