package adminauth

import (
	"context"
	"time"

	"authgrid.org/internal/session"
)

// Store persists admin rows and the append-only attempt trail.
type Store interface {
	// FindByEmail loads an admin by email, excluding soft-deleted rows.
	// Returns ErrNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	Find(ctx context.Context, id string) (*Admin, error)

	// UpdateLoginState persists the failed-attempt counter and lock
	// expiry. Concurrent logins race here; last writer wins.
	UpdateLoginState(ctx context.Context, id string, failedAttempts int, lockedUntil *time.Time) error

	StampLastLogin(ctx context.Context, id string, at time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string, forceChange bool) error

	// AppendAttempt records one login or MFA attempt. Append-only.
	AppendAttempt(ctx context.Context, attempt *LoginAttempt) error
}

// ChallengeCache is the TTL key-value store holding MFA challenges.
// Update rewrites a value without extending the remaining TTL.
type ChallengeCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Update(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Sessions issues session credentials once authentication completes.
type Sessions interface {
	Create(ctx context.Context, p session.Params) (*session.Session, session.TokenPair, error)
}

// MfaVerifier checks second factors for admins with MFA enabled.
type MfaVerifier interface {
	Enabled(ctx context.Context, adminID string) (bool, error)
	Verify(ctx context.Context, adminID, method, code string) (bool, error)
}

// EventPublisher emits fire-and-forget domain events.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload any)
}
