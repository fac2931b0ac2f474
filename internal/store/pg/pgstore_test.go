package pg

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"authgrid.org/internal/adminauth"
	"authgrid.org/internal/authz"
	"authgrid.org/internal/session"
)

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewWithDB(db), mock
}

func TestOperatorGrantsKeepsDirectFirst(t *testing.T) {
	store, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "resource", "action", "source"}).
		AddRow("perm-1", "accounts", "read", 1).
		AddRow("perm-2", "*", "*", 2).
		AddRow("perm-3", "transfers", "write", 2)
	mock.ExpectQuery("from operator_permissions op.*union all.*from operators o").
		WithArgs("op-1").
		WillReturnRows(rows)

	grants, err := store.Authz().OperatorGrants(context.Background(), "op-1")
	if err != nil {
		t.Fatalf("OperatorGrants: %v", err)
	}
	if len(grants) != 3 {
		t.Fatalf("expected 3 grants, got %d", len(grants))
	}
	if grants[0].Source != authz.GrantDirect || grants[1].Source != authz.GrantRole {
		t.Fatalf("unexpected ordering: %+v", grants)
	}
	if grants[1].Resource != "*" || grants[1].Action != "*" {
		t.Fatalf("wildcard grant lost: %+v", grants[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOperatorMapsNoRows(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectQuery("from operators").WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := store.Authz().Operator(context.Background(), "missing")
	if !errors.Is(err, authz.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOperatorScansNullableColumns(t *testing.T) {
	store, mock := newMock(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "account_id", "email", "display_name", "status", "is_active",
		"role_id", "last_login_at", "created_at", "updated_at",
	}).AddRow("op-1", "acc-1", "op@authgrid.org", "Operator One", "ACTIVE", true, nil, nil, now, now)
	mock.ExpectQuery("from operators").WithArgs("op-1").WillReturnRows(rows)

	op, err := store.Authz().Operator(context.Background(), "op-1")
	if err != nil {
		t.Fatalf("Operator: %v", err)
	}
	if op.RoleID != "" || op.LastLoginAt != nil {
		t.Fatalf("expected empty nullable fields: %+v", op)
	}
}

func TestRoleAggregatesPermissionRows(t *testing.T) {
	store, mock := newMock(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "level", "scope", "created_at", "updated_at",
		"perm_id", "resource", "action", "category", "perm_description", "is_system", "perm_created_at",
	}).
		AddRow("role-1", "support", "support staff", 10, "GLOBAL", now, now, "perm-1", "accounts", "read", "accounts", nil, false, now).
		AddRow("role-1", "support", "support staff", 10, "GLOBAL", now, now, "perm-2", "accounts", "write", "accounts", nil, false, now)
	mock.ExpectQuery("from roles r.*left join role_permissions").WithArgs("role-1").WillReturnRows(rows)

	role, err := store.Authz().Role(context.Background(), "role-1")
	if err != nil {
		t.Fatalf("Role: %v", err)
	}
	if role.Name != "support" || len(role.Permissions) != 2 {
		t.Fatalf("role: %+v", role)
	}
}

func TestRoleWithoutPermissionsIsNotAnError(t *testing.T) {
	store, mock := newMock(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "level", "scope", "created_at", "updated_at",
		"perm_id", "resource", "action", "category", "perm_description", "is_system", "perm_created_at",
	}).AddRow("role-2", "auditor", nil, 5, "GLOBAL", now, now, nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("from roles r.*left join role_permissions").WithArgs("role-2").WillReturnRows(rows)

	role, err := store.Authz().Role(context.Background(), "role-2")
	if err != nil {
		t.Fatalf("Role: %v", err)
	}
	if len(role.Permissions) != 0 {
		t.Fatalf("expected empty permission set, got %+v", role.Permissions)
	}
}

func TestSanctionsBySubjectDecodesEvidence(t *testing.T) {
	store, mock := newMock(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "subject_id", "subject_type", "sanction_type", "severity", "reason", "evidence",
		"issued_by", "start_at", "end_at", "status", "created_at", "updated_at",
	}).AddRow("sanc-1", "user-1", "USER", "TEMPORARY_BAN", "HIGH", "fraud signals",
		[]byte(`["report:C-17","chargeback:CB-3"]`), "adm-1", now.Add(-time.Hour), nil, "ACTIVE", now, now)
	mock.ExpectQuery("from sanctions").WithArgs("user-1", "USER", "").WillReturnRows(rows)

	got, err := store.Sanctions().SanctionsBySubject(context.Background(), "user-1", "USER", "")
	if err != nil {
		t.Fatalf("SanctionsBySubject: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 sanction, got %d", len(got))
	}
	if len(got[0].Evidence) != 2 || got[0].Evidence[0] != "report:C-17" {
		t.Fatalf("evidence lost: %+v", got[0].Evidence)
	}
	if got[0].EndAt != nil {
		t.Fatalf("open-ended sanction should keep nil end: %+v", got[0])
	}
}

func TestFindAdminByEmail(t *testing.T) {
	store, mock := newMock(t)

	now := time.Now().UTC()
	lock := now.Add(10 * time.Minute)
	rows := sqlmock.NewRows([]string{
		"id", "email", "name", "password_hash", "role_id", "is_active", "mfa_enabled",
		"force_password_change", "failed_login_attempts", "locked_until", "last_login_at",
		"created_at", "updated_at",
	}).AddRow("adm-1", "root@authgrid.org", "Root", "$2a$12$hash", "role-1", true, true,
		false, 3, lock, nil, now, now)
	mock.ExpectQuery("from admins").WithArgs("root@authgrid.org").WillReturnRows(rows)

	admin, err := store.Admins().FindByEmail(context.Background(), "root@authgrid.org")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if admin.FailedLoginAttempts != 3 || admin.LockedUntil == nil || !admin.LockedUntil.Equal(lock) {
		t.Fatalf("lock state lost: %+v", admin)
	}

	mock.ExpectQuery("from admins").WithArgs("ghost@authgrid.org").WillReturnError(sql.ErrNoRows)
	if _, err := store.Admins().FindByEmail(context.Background(), "ghost@authgrid.org"); !errors.Is(err, adminauth.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateLoginStateRequiresRow(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectExec("update admins").
		WithArgs("adm-404", 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Admins().UpdateLoginState(context.Background(), "adm-404", 1, nil)
	if !errors.Is(err, adminauth.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConsumeBackupCodeIsSingleUse(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectExec("update admin_backup_codes").
		WithArgs("adm-1", "hash-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	ok, err := store.Admins().ConsumeBackupCode(context.Background(), "adm-1", "hash-1")
	if err != nil || !ok {
		t.Fatalf("first use: ok=%v err=%v", ok, err)
	}

	mock.ExpectExec("update admin_backup_codes").
		WithArgs("adm-1", "hash-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	ok, err = store.Admins().ConsumeBackupCode(context.Background(), "adm-1", "hash-1")
	if err != nil || ok {
		t.Fatalf("second use: ok=%v err=%v", ok, err)
	}
}

func TestSessionFindMapsNoRows(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectQuery("from sessions").WithArgs("sess-404").WillReturnError(sql.ErrNoRows)
	if _, err := store.Sessions().Find(context.Background(), "sess-404"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssignmentPermissionsRoundTrip(t *testing.T) {
	store, mock := newMock(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "account_id", "service_code", "country_code", "status", "permission_ids",
		"assigned_by", "assigned_at", "revoked_by", "revoked_at", "revoke_reason",
		"created_at", "updated_at",
	}).AddRow("asg-1", "acc-1", "payments", "KZ", "ACTIVE", []byte(`["perm-1","perm-2"]`),
		"adm-1", now, nil, nil, nil, now, now)
	mock.ExpectQuery("from operator_assignments").WithArgs("asg-1").WillReturnRows(rows)

	a, err := store.Assignments().Find(context.Background(), "asg-1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(a.PermissionIDs) != 2 || a.PermissionIDs[1] != "perm-2" {
		t.Fatalf("permission ids: %v", a.PermissionIDs)
	}
}
