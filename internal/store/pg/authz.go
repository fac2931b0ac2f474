package pg

import (
	"context"
	"database/sql"
	"errors"

	"authgrid.org/internal/authz"
)

// AuthzStore serves the permission resolver and readers.
type AuthzStore struct {
	db *sql.DB
}

var _ authz.Store = (*AuthzStore)(nil)

// Authz returns the authorization view of the store.
func (s *Store) Authz() *AuthzStore { return &AuthzStore{db: s.db} }

func (s *AuthzStore) Operator(ctx context.Context, id string) (*authz.Operator, error) {
	var (
		op        authz.Operator
		roleID    sql.NullString
		lastLogin sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, `
		select id, account_id, email, display_name, status, is_active, role_id, last_login_at, created_at, updated_at
		from operators
		where id = $1
	`, id).Scan(&op.ID, &op.AccountID, &op.Email, &op.DisplayName, &op.Status, &op.Active, &roleID, &lastLogin, &op.CreatedAt, &op.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, authz.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if roleID.Valid {
		op.RoleID = roleID.String
	}
	op.LastLoginAt = timePtr(lastLogin)
	return &op, nil
}

// OperatorGrants gathers direct and role-inherited grants in one
// prioritized query; the source column keeps direct grants first so the
// resolver's precedence is stable.
func (s *AuthzStore) OperatorGrants(ctx context.Context, operatorID string) ([]authz.Grant, error) {
	rows, err := s.db.QueryContext(ctx, `
		select p.id, p.resource, p.action, 1 as source
		from operator_permissions op
		join permissions p on p.id = op.permission_id
		where op.operator_id = $1
		union all
		select p.id, p.resource, p.action, 2 as source
		from operators o
		join role_permissions rp on rp.role_id = o.role_id
		join permissions p on p.id = rp.permission_id
		where o.id = $1
		order by source, 1
	`, operatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []authz.Grant
	for rows.Next() {
		var g authz.Grant
		var source int
		if err := rows.Scan(&g.PermissionID, &g.Resource, &g.Action, &source); err != nil {
			return nil, err
		}
		g.Source = authz.GrantSource(source)
		grants = append(grants, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return grants, nil
}

func (s *AuthzStore) DirectPermissions(ctx context.Context, operatorID string) ([]authz.Permission, error) {
	return s.queryPermissions(ctx, `
		select p.id, p.resource, p.action, p.category, p.description, p.is_system, p.created_at
		from operator_permissions op
		join permissions p on p.id = op.permission_id
		where op.operator_id = $1
		order by p.resource, p.action
	`, operatorID)
}

func (s *AuthzStore) RolePermissionsByOperator(ctx context.Context, operatorID string) ([]authz.Permission, error) {
	return s.queryPermissions(ctx, `
		select p.id, p.resource, p.action, p.category, p.description, p.is_system, p.created_at
		from operators o
		join role_permissions rp on rp.role_id = o.role_id
		join permissions p on p.id = rp.permission_id
		where o.id = $1
		order by p.resource, p.action
	`, operatorID)
}

func (s *AuthzStore) Role(ctx context.Context, id string) (*authz.Role, error) {
	return s.roleWithPermissions(ctx, `
		select r.id, r.name, r.description, r.level, r.scope, r.created_at, r.updated_at,
		       p.id, p.resource, p.action, p.category, p.description, p.is_system, p.created_at
		from roles r
		left join role_permissions rp on rp.role_id = r.id
		left join permissions p on p.id = rp.permission_id
		where r.id = $1
	`, id)
}

func (s *AuthzStore) RoleByOperator(ctx context.Context, operatorID string) (*authz.Role, error) {
	return s.roleWithPermissions(ctx, `
		select r.id, r.name, r.description, r.level, r.scope, r.created_at, r.updated_at,
		       p.id, p.resource, p.action, p.category, p.description, p.is_system, p.created_at
		from operators o
		join roles r on r.id = o.role_id
		left join role_permissions rp on rp.role_id = r.id
		left join permissions p on p.id = rp.permission_id
		where o.id = $1
	`, operatorID)
}

// roleWithPermissions aggregates a single role and its permission rows
// from one joined result set.
func (s *AuthzStore) roleWithPermissions(ctx context.Context, query, arg string) (*authz.Role, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var role *authz.Role
	for rows.Next() {
		var (
			r        authz.Role
			desc     sql.NullString
			permID   sql.NullString
			resource sql.NullString
			action   sql.NullString
			category sql.NullString
			permDesc sql.NullString
			system   sql.NullBool
			permAt   sql.NullTime
		)
		if err := rows.Scan(&r.ID, &r.Name, &desc, &r.Level, &r.Scope, &r.CreatedAt, &r.UpdatedAt,
			&permID, &resource, &action, &category, &permDesc, &system, &permAt); err != nil {
			return nil, err
		}
		if role == nil {
			if desc.Valid {
				r.Description = desc.String
			}
			role = &r
		}
		if permID.Valid {
			p := authz.Permission{
				ID:       permID.String,
				Resource: resource.String,
				Action:   action.String,
				Category: category.String,
				System:   system.Bool,
			}
			if permDesc.Valid {
				p.Description = permDesc.String
			}
			if permAt.Valid {
				p.CreatedAt = permAt.Time
			}
			role.Permissions = append(role.Permissions, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if role == nil {
		return nil, authz.ErrNotFound
	}
	return role, nil
}

func (s *AuthzStore) queryPermissions(ctx context.Context, query string, args ...any) ([]authz.Permission, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := []authz.Permission{}
	for rows.Next() {
		var (
			p    authz.Permission
			desc sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Resource, &p.Action, &p.Category, &desc, &p.System, &p.CreatedAt); err != nil {
			return nil, err
		}
		if desc.Valid {
			p.Description = desc.String
		}
		perms = append(perms, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return perms, nil
}
