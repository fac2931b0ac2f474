package pg

import (
	"context"
	"database/sql"

	"authgrid.org/internal/outbox"
)

// OutboxStore appends domain events for the downstream relay.
type OutboxStore struct {
	db *sql.DB
}

var _ outbox.Store = (*OutboxStore)(nil)

// Outbox returns the event-appending view of the store.
func (s *Store) Outbox() *OutboxStore { return &OutboxStore{db: s.db} }

func (s *OutboxStore) Append(ctx context.Context, e *outbox.Event) error {
	_, err := s.db.ExecContext(ctx, `
		insert into outbox_events (id, topic, key, payload, created_at)
		values ($1, $2, $3, $4, $5)
	`, e.ID, e.Topic, e.Key, e.Payload, e.CreatedAt)
	return err
}
