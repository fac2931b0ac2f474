package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"authgrid.org/internal/assignment"
)

// AssignmentStore persists operator assignments. The permission subset
// lives in a jsonb column; assignments are few and always read whole.
type AssignmentStore struct {
	db *sql.DB
}

var _ assignment.Store = (*AssignmentStore)(nil)

// Assignments returns the assignment view of the store.
func (s *Store) Assignments() *AssignmentStore { return &AssignmentStore{db: s.db} }

const assignmentColumns = `
	id, account_id, service_code, country_code, status, permission_ids,
	assigned_by, assigned_at, revoked_by, revoked_at, revoke_reason, created_at, updated_at`

func (s *AssignmentStore) Create(ctx context.Context, a *assignment.Assignment) error {
	perms, err := json.Marshal(a.PermissionIDs)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		insert into operator_assignments (id, account_id, service_code, country_code, status, permission_ids,
			assigned_by, assigned_at, created_at, updated_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, a.ID, a.AccountID, a.ServiceCode, a.CountryCode, a.Status, perms,
		a.AssignedBy, a.AssignedAt, a.CreatedAt, a.UpdatedAt)
	if pgErr, ok := maybePgError(err); ok && pgErr.Code == pgErrUniqueViolation {
		return assignment.ErrDuplicate
	}
	return err
}

func (s *AssignmentStore) Find(ctx context.Context, id string) (*assignment.Assignment, error) {
	row := s.db.QueryRowContext(ctx, `select`+assignmentColumns+` from operator_assignments where id = $1`, id)
	a, err := scanAssignment(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, assignment.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssignmentStore) ListByService(ctx context.Context, serviceCode, countryCode string) ([]*assignment.Assignment, error) {
	rows, err := s.db.QueryContext(ctx, `
		select`+assignmentColumns+`
		from operator_assignments
		where service_code = $1
		  and ($2 = '' or country_code = $2)
		order by assigned_at desc
	`, serviceCode, countryCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*assignment.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AssignmentStore) UpdateStatus(ctx context.Context, id, status, revokedBy, revokeReason string, revokedAt *time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		update operator_assignments
		set status = $2, revoked_by = $3, revoke_reason = $4, revoked_at = $5, updated_at = now()
		where id = $1
	`, id, status, nullIfEmpty(revokedBy), nullIfEmpty(revokeReason), nullTime(revokedAt))
	if err != nil {
		return err
	}
	return requireRow(res, assignment.ErrNotFound)
}

func (s *AssignmentStore) UpdatePermissions(ctx context.Context, id string, permissionIDs []string) error {
	perms, err := json.Marshal(permissionIDs)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
		update operator_assignments
		set permission_ids = $2, updated_at = now()
		where id = $1
	`, id, perms)
	if err != nil {
		return err
	}
	return requireRow(res, assignment.ErrNotFound)
}

func scanAssignment(scan func(dest ...any) error) (*assignment.Assignment, error) {
	var (
		a            assignment.Assignment
		perms        []byte
		revokedBy    sql.NullString
		revokedAt    sql.NullTime
		revokeReason sql.NullString
	)
	if err := scan(&a.ID, &a.AccountID, &a.ServiceCode, &a.CountryCode, &a.Status, &perms,
		&a.AssignedBy, &a.AssignedAt, &revokedBy, &revokedAt, &revokeReason, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if len(perms) > 0 {
		if err := json.Unmarshal(perms, &a.PermissionIDs); err != nil {
			return nil, err
		}
	}
	if revokedBy.Valid {
		a.RevokedBy = revokedBy.String
	}
	if revokeReason.Valid {
		a.RevokeReason = revokeReason.String
	}
	a.RevokedAt = timePtr(revokedAt)
	return &a, nil
}
