package session

import (
	"context"
	"time"
)

// Store persists session rows.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Find(ctx context.Context, id string) (*Session, error)
	ListActiveByAdmin(ctx context.Context, adminID string) ([]*Session, error)
	UpdateRefresh(ctx context.Context, id, refreshHash string, expiresAt, lastSeenAt time.Time) error
	MarkRevoked(ctx context.Context, id string) error
	MarkRevokedByAdmin(ctx context.Context, adminID string) error
}
