package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"authgrid.org/internal/adminauth"
	"authgrid.org/internal/mfa"
)

// AdminStore persists admin principals, the login attempt trail and
// MFA state.
type AdminStore struct {
	db *sql.DB
}

var (
	_ adminauth.Store = (*AdminStore)(nil)
	_ mfa.Store       = (*AdminStore)(nil)
)

// Admins returns the admin-authentication view of the store.
func (s *Store) Admins() *AdminStore { return &AdminStore{db: s.db} }

const adminColumns = `
	id, email, name, password_hash, role_id, is_active, mfa_enabled,
	force_password_change, failed_login_attempts, locked_until, last_login_at,
	created_at, updated_at`

func (s *AdminStore) FindByEmail(ctx context.Context, email string) (*adminauth.Admin, error) {
	return s.scanAdmin(s.db.QueryRowContext(ctx, `
		select`+adminColumns+`
		from admins
		where email = $1 and deleted_at is null
	`, email))
}

func (s *AdminStore) Find(ctx context.Context, id string) (*adminauth.Admin, error) {
	return s.scanAdmin(s.db.QueryRowContext(ctx, `
		select`+adminColumns+`
		from admins
		where id = $1 and deleted_at is null
	`, id))
}

func (s *AdminStore) scanAdmin(row *sql.Row) (*adminauth.Admin, error) {
	var (
		a           adminauth.Admin
		roleID      sql.NullString
		lockedUntil sql.NullTime
		lastLogin   sql.NullTime
	)
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &roleID, &a.Active, &a.MfaEnabled,
		&a.ForcePasswordChange, &a.FailedLoginAttempts, &lockedUntil, &lastLogin, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, adminauth.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if roleID.Valid {
		a.RoleID = roleID.String
	}
	a.LockedUntil = timePtr(lockedUntil)
	a.LastLoginAt = timePtr(lastLogin)
	return &a, nil
}

func (s *AdminStore) UpdateLoginState(ctx context.Context, id string, failedAttempts int, lockedUntil *time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		update admins
		set failed_login_attempts = $2, locked_until = $3, updated_at = now()
		where id = $1 and deleted_at is null
	`, id, failedAttempts, nullTime(lockedUntil))
	if err != nil {
		return err
	}
	return requireRow(res, adminauth.ErrNotFound)
}

func (s *AdminStore) StampLastLogin(ctx context.Context, id string, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		update admins set last_login_at = $2, updated_at = now()
		where id = $1 and deleted_at is null
	`, id, at)
	if err != nil {
		return err
	}
	return requireRow(res, adminauth.ErrNotFound)
}

func (s *AdminStore) UpdatePassword(ctx context.Context, id, passwordHash string, forceChange bool) error {
	res, err := s.db.ExecContext(ctx, `
		update admins
		set password_hash = $2, force_password_change = $3, updated_at = now()
		where id = $1 and deleted_at is null
	`, id, passwordHash, forceChange)
	if err != nil {
		return err
	}
	return requireRow(res, adminauth.ErrNotFound)
}

func (s *AdminStore) AppendAttempt(ctx context.Context, attempt *adminauth.LoginAttempt) error {
	_, err := s.db.ExecContext(ctx, `
		insert into login_attempts (id, admin_id, email, ip, user_agent, success, failure_reason, mfa_attempted, created_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, attempt.ID, nullIfEmpty(attempt.AdminID), attempt.Email, attempt.IP, attempt.UserAgent,
		attempt.Success, nullIfEmpty(attempt.FailureReason), attempt.MfaAttempted, attempt.CreatedAt)
	if pgErr, ok := maybePgError(err); ok && pgErr.Code == pgErrForeignKeyViolation {
		return adminauth.ErrNotFound
	}
	return err
}

// --- MFA state ---

func (s *AdminStore) Settings(ctx context.Context, adminID string) (*mfa.Settings, error) {
	var (
		set    mfa.Settings
		secret sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		select id, mfa_secret, mfa_enabled
		from admins
		where id = $1 and deleted_at is null
	`, adminID).Scan(&set.AdminID, &secret, &set.Enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mfa.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if secret.Valid {
		set.Secret = secret.String
	}
	return &set, nil
}

func (s *AdminStore) SaveSecret(ctx context.Context, adminID, secret string) error {
	res, err := s.db.ExecContext(ctx, `
		update admins set mfa_secret = $2, mfa_enabled = false, updated_at = now()
		where id = $1 and deleted_at is null
	`, adminID, secret)
	if err != nil {
		return err
	}
	return requireRow(res, mfa.ErrNotFound)
}

func (s *AdminStore) SetEnabled(ctx context.Context, adminID string, enabled bool) error {
	res, err := s.db.ExecContext(ctx, `
		update admins set mfa_enabled = $2, updated_at = now()
		where id = $1 and deleted_at is null
	`, adminID, enabled)
	if err != nil {
		return err
	}
	return requireRow(res, mfa.ErrNotFound)
}

func (s *AdminStore) ReplaceBackupCodes(ctx context.Context, adminID string, hashes []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `delete from admin_backup_codes where admin_id = $1`, adminID); err != nil {
		return err
	}
	for _, hash := range hashes {
		if _, err := tx.ExecContext(ctx, `
			insert into admin_backup_codes (admin_id, code_hash)
			values ($1, $2)
		`, adminID, hash); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *AdminStore) ConsumeBackupCode(ctx context.Context, adminID, hash string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		update admin_backup_codes
		set used_at = now()
		where admin_id = $1 and code_hash = $2 and used_at is null
	`, adminID, hash)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return aff > 0, nil
}

func requireRow(res sql.Result, notFound error) error {
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return notFound
	}
	return nil
}
