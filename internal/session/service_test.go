package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

type memStore struct {
	sessions map[string]*Session
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]*Session{}}
}

func (m *memStore) Create(_ context.Context, s *Session) error {
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *memStore) Find(_ context.Context, id string) (*Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memStore) ListActiveByAdmin(_ context.Context, adminID string) ([]*Session, error) {
	out := []*Session{}
	for _, s := range m.sessions {
		if s.AdminID == adminID && !s.Revoked {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) UpdateRefresh(_ context.Context, id, refreshHash string, expiresAt, lastSeenAt time.Time) error {
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.RefreshHash = refreshHash
	s.ExpiresAt = expiresAt
	s.LastSeenAt = lastSeenAt
	return nil
}

func (m *memStore) MarkRevoked(_ context.Context, id string) error {
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.Revoked = true
	return nil
}

func (m *memStore) MarkRevokedByAdmin(_ context.Context, adminID string) error {
	for _, s := range m.sessions {
		if s.AdminID == adminID {
			s.Revoked = true
		}
	}
	return nil
}

func testService(store Store, now func() time.Time) *Service {
	return NewService(store, "test-secret", "authgrid-test", 15*time.Minute, 24*time.Hour, WithClock(now))
}

func TestCreateAndValidate(t *testing.T) {
	store := newMemStore()
	svc := testService(store, time.Now)

	sess, pair, err := svc.Create(context.Background(), Params{
		AdminID: "adm-1", Email: "root@example.com", IP: "10.0.0.1", MfaVerified: true, MfaMethod: "totp",
	})
	if err != nil {
		t.Fatal(err)
	}
	got, claims, err := svc.Validate(context.Background(), pair.AccessToken)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != sess.ID || claims.Subject != "adm-1" || !claims.MfaVerified {
		t.Fatalf("session=%+v claims=%+v", got, claims)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := testService(newMemStore(), time.Now)
	if _, _, err := svc.Validate(context.Background(), "not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateRevokedSession(t *testing.T) {
	store := newMemStore()
	svc := testService(store, time.Now)

	sess, pair, err := svc.Create(context.Background(), Params{AdminID: "adm-1", Email: "a@b.c"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Revoke(context.Background(), sess.ID); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Validate(context.Background(), pair.AccessToken); !errors.Is(err, ErrRevoked) {
		t.Fatalf("expected ErrRevoked, got %v", err)
	}
}

func TestRefreshRotatesSecret(t *testing.T) {
	store := newMemStore()
	svc := testService(store, time.Now)

	_, pair, err := svc.Create(context.Background(), Params{AdminID: "adm-1", Email: "a@b.c"})
	if err != nil {
		t.Fatal(err)
	}
	_, next, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatal(err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}
	// Old token must be dead, and using it kills the session.
	if _, _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for stale token, got %v", err)
	}
	if _, _, err := svc.Refresh(context.Background(), next.RefreshToken); !errors.Is(err, ErrRevoked) {
		t.Fatalf("expected ErrRevoked after reuse, got %v", err)
	}
}

func TestRefreshExpiredSession(t *testing.T) {
	store := newMemStore()
	created := time.Now()
	current := created
	svc := testService(store, func() time.Time { return current })

	_, pair, err := svc.Create(context.Background(), Params{AdminID: "adm-1", Email: "a@b.c"})
	if err != nil {
		t.Fatal(err)
	}
	current = created.Add(25 * time.Hour)
	if _, _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestRevokeAllAndList(t *testing.T) {
	store := newMemStore()
	svc := testService(store, time.Now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, _, err := svc.Create(ctx, Params{AdminID: "adm-1", Email: "a@b.c"}); err != nil {
			t.Fatal(err)
		}
	}
	live, err := svc.List(ctx, "adm-1")
	if err != nil || len(live) != 3 {
		t.Fatalf("live=%d err=%v", len(live), err)
	}
	if err := svc.RevokeAll(ctx, "adm-1"); err != nil {
		t.Fatal(err)
	}
	live, err = svc.List(ctx, "adm-1")
	if err != nil || len(live) != 0 {
		t.Fatalf("after revoke-all live=%d err=%v", len(live), err)
	}
}
