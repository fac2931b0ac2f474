// Package outbox appends domain events to an append-only table for
// at-least-once delivery by a downstream relay.
package outbox

import (
	"context"
	"encoding/json"
	"time"

	"authgrid.org/internal/ids"
	"authgrid.org/internal/obs"
)

// Event is one outbox row. Payload is marshaled JSON.
type Event struct {
	ID        string
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// Store appends immutable event rows.
type Store interface {
	Append(ctx context.Context, e *Event) error
}

// Publisher writes events fire-and-forget: failures are logged, never
// surfaced, so a broken outbox cannot block a login.
type Publisher struct {
	store Store
	now   func() time.Time
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) Option {
	return func(p *Publisher) {
		if fn != nil {
			p.now = fn
		}
	}
}

// NewPublisher builds a Publisher over the given store.
func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish appends one event. Marshal or store failures are logged and
// swallowed.
func (p *Publisher) Publish(ctx context.Context, topic, key string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		obs.Error("outbox marshal failed", map[string]any{"topic": topic, "error": err.Error()})
		return
	}
	e := &Event{
		ID:        ids.New(),
		Topic:     topic,
		Key:       key,
		Payload:   data,
		CreatedAt: p.now().UTC(),
	}
	if err := p.store.Append(ctx, e); err != nil {
		obs.Error("outbox append failed", map[string]any{"topic": topic, "error": err.Error()})
	}
}
