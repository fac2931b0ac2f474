package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"authgrid.org/internal/session"
)

// SessionStore persists admin session rows.
type SessionStore struct {
	db *sql.DB
}

var _ session.Store = (*SessionStore)(nil)

// Sessions returns the session view of the store.
func (s *Store) Sessions() *SessionStore { return &SessionStore{db: s.db} }

const sessionColumns = `
	id, admin_id, email, role_id, ip, user_agent, fingerprint,
	mfa_verified, mfa_method, refresh_hash, expires_at, created_at, last_seen_at, revoked`

func (s *SessionStore) Create(ctx context.Context, row *session.Session) error {
	_, err := s.db.ExecContext(ctx, `
		insert into sessions (id, admin_id, email, role_id, ip, user_agent, fingerprint,
			mfa_verified, mfa_method, refresh_hash, expires_at, created_at, last_seen_at, revoked)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, row.ID, row.AdminID, row.Email, nullIfEmpty(row.RoleID), row.IP, row.UserAgent, nullIfEmpty(row.Fingerprint),
		row.MfaVerified, nullIfEmpty(row.MfaMethod), row.RefreshHash, row.ExpiresAt, row.CreatedAt, row.LastSeenAt, row.Revoked)
	return err
}

func (s *SessionStore) Find(ctx context.Context, id string) (*session.Session, error) {
	row := s.db.QueryRowContext(ctx, `select`+sessionColumns+` from sessions where id = $1`, id)
	sess, err := scanSession(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SessionStore) ListActiveByAdmin(ctx context.Context, adminID string) ([]*session.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		select`+sessionColumns+`
		from sessions
		where admin_id = $1 and not revoked and expires_at > now()
		order by last_seen_at desc
	`, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*session.Session{}
	for rows.Next() {
		sess, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SessionStore) UpdateRefresh(ctx context.Context, id, refreshHash string, expiresAt, lastSeenAt time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		update sessions
		set refresh_hash = $2, expires_at = $3, last_seen_at = $4
		where id = $1 and not revoked
	`, id, refreshHash, expiresAt, lastSeenAt)
	if err != nil {
		return err
	}
	return requireRow(res, session.ErrNotFound)
}

func (s *SessionStore) MarkRevoked(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `update sessions set revoked = true where id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, session.ErrNotFound)
}

// MarkRevokedByAdmin kills every live session; zero rows is not an
// error, there may simply be nothing to revoke.
func (s *SessionStore) MarkRevokedByAdmin(ctx context.Context, adminID string) error {
	_, err := s.db.ExecContext(ctx, `update sessions set revoked = true where admin_id = $1 and not revoked`, adminID)
	return err
}

func scanSession(scan func(dest ...any) error) (*session.Session, error) {
	var (
		sess        session.Session
		roleID      sql.NullString
		fingerprint sql.NullString
		mfaMethod   sql.NullString
	)
	if err := scan(&sess.ID, &sess.AdminID, &sess.Email, &roleID, &sess.IP, &sess.UserAgent, &fingerprint,
		&sess.MfaVerified, &mfaMethod, &sess.RefreshHash, &sess.ExpiresAt, &sess.CreatedAt, &sess.LastSeenAt, &sess.Revoked); err != nil {
		return nil, err
	}
	if roleID.Valid {
		sess.RoleID = roleID.String
	}
	if fingerprint.Valid {
		sess.Fingerprint = fingerprint.String
	}
	if mfaMethod.Valid {
		sess.MfaMethod = mfaMethod.String
	}
	return &sess, nil
}
