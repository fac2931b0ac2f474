package grpcapi

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"authgrid.org/api/authv1"
	"authgrid.org/internal/adminauth"
	"authgrid.org/internal/assignment"
	"authgrid.org/internal/authz"
	"authgrid.org/internal/mfa"
	"authgrid.org/internal/outbox"
	"authgrid.org/internal/sanction"
	"authgrid.org/internal/session"
)

const bufSize = 1024 * 1024

// --- in-memory stores ---

type authzStore struct {
	operators map[string]*authz.Operator
	grants    map[string][]authz.Grant
	roles     map[string]*authz.Role
}

func (f *authzStore) Operator(_ context.Context, id string) (*authz.Operator, error) {
	op, ok := f.operators[id]
	if !ok {
		return nil, authz.ErrNotFound
	}
	return op, nil
}

func (f *authzStore) OperatorGrants(_ context.Context, operatorID string) ([]authz.Grant, error) {
	return f.grants[operatorID], nil
}

func (f *authzStore) DirectPermissions(context.Context, string) ([]authz.Permission, error) {
	return nil, nil
}

func (f *authzStore) RolePermissionsByOperator(context.Context, string) ([]authz.Permission, error) {
	return nil, nil
}

func (f *authzStore) Role(_ context.Context, id string) (*authz.Role, error) {
	r, ok := f.roles[id]
	if !ok {
		return nil, authz.ErrNotFound
	}
	return r, nil
}

func (f *authzStore) RoleByOperator(_ context.Context, operatorID string) (*authz.Role, error) {
	op, ok := f.operators[operatorID]
	if !ok || op.RoleID == "" {
		return nil, authz.ErrNotFound
	}
	return f.Role(context.Background(), op.RoleID)
}

type sanctionStore struct {
	rows []sanction.Sanction
}

func (f *sanctionStore) SanctionsBySubject(_ context.Context, subjectID, subjectType, typeFilter string) ([]sanction.Sanction, error) {
	out := []sanction.Sanction{}
	for _, s := range f.rows {
		if s.SubjectID != subjectID || s.SubjectType != subjectType {
			continue
		}
		if typeFilter != "" && s.Type != typeFilter {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type adminStore struct {
	mu       sync.Mutex
	admins   map[string]*adminauth.Admin
	settings map[string]*mfa.Settings
	codes    map[string][]string
}

func newAdminStore() *adminStore {
	return &adminStore{
		admins:   map[string]*adminauth.Admin{},
		settings: map[string]*mfa.Settings{},
		codes:    map[string][]string{},
	}
}

func (f *adminStore) FindByEmail(_ context.Context, email string) (*adminauth.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, adminauth.ErrNotFound
}

func (f *adminStore) Find(_ context.Context, id string) (*adminauth.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[id]
	if !ok {
		return nil, adminauth.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *adminStore) UpdateLoginState(_ context.Context, id string, failed int, lockedUntil *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[id]
	if !ok {
		return adminauth.ErrNotFound
	}
	a.FailedLoginAttempts = failed
	a.LockedUntil = lockedUntil
	return nil
}

func (f *adminStore) StampLastLogin(_ context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.admins[id]; ok {
		a.LastLoginAt = &at
	}
	return nil
}

func (f *adminStore) UpdatePassword(_ context.Context, id, hash string, force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[id]
	if !ok {
		return adminauth.ErrNotFound
	}
	a.PasswordHash = hash
	a.ForcePasswordChange = force
	return nil
}

func (f *adminStore) AppendAttempt(context.Context, *adminauth.LoginAttempt) error { return nil }

func (f *adminStore) Settings(_ context.Context, adminID string) (*mfa.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.settings[adminID]
	if !ok {
		if _, known := f.admins[adminID]; known {
			return &mfa.Settings{AdminID: adminID}, nil
		}
		return nil, mfa.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *adminStore) SaveSecret(_ context.Context, adminID, secret string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings[adminID] = &mfa.Settings{AdminID: adminID, Secret: secret}
	return nil
}

func (f *adminStore) SetEnabled(_ context.Context, adminID string, enabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.settings[adminID]
	if !ok {
		return mfa.ErrNotFound
	}
	s.Enabled = enabled
	return nil
}

func (f *adminStore) ReplaceBackupCodes(_ context.Context, adminID string, hashes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes[adminID] = append([]string{}, hashes...)
	return nil
}

func (f *adminStore) ConsumeBackupCode(_ context.Context, adminID, hash string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, h := range f.codes[adminID] {
		if h == hash {
			f.codes[adminID] = append(f.codes[adminID][:i], f.codes[adminID][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Update(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

type sessionStore struct {
	mu   sync.Mutex
	rows map[string]*session.Session
}

func newSessionStore() *sessionStore { return &sessionStore{rows: map[string]*session.Session{}} }

func (f *sessionStore) Create(_ context.Context, s *session.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *sessionStore) Find(_ context.Context, id string) (*session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *sessionStore) ListActiveByAdmin(_ context.Context, adminID string) ([]*session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*session.Session{}
	for _, s := range f.rows {
		if s.AdminID == adminID && !s.Revoked {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *sessionStore) UpdateRefresh(_ context.Context, id, hash string, expiresAt, lastSeenAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[id]
	if !ok {
		return session.ErrNotFound
	}
	s.RefreshHash = hash
	s.ExpiresAt = expiresAt
	s.LastSeenAt = lastSeenAt
	return nil
}

func (f *sessionStore) MarkRevoked(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[id]
	if !ok {
		return session.ErrNotFound
	}
	s.Revoked = true
	return nil
}

func (f *sessionStore) MarkRevokedByAdmin(_ context.Context, adminID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.rows {
		if s.AdminID == adminID {
			s.Revoked = true
		}
	}
	return nil
}

type assignmentStore struct {
	mu   sync.Mutex
	rows map[string]*assignment.Assignment
}

func newAssignmentStore() *assignmentStore {
	return &assignmentStore{rows: map[string]*assignment.Assignment{}}
}

func (f *assignmentStore) Create(_ context.Context, a *assignment.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

func (f *assignmentStore) Find(_ context.Context, id string) (*assignment.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return nil, assignment.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *assignmentStore) ListByService(_ context.Context, serviceCode, countryCode string) ([]*assignment.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*assignment.Assignment{}
	for _, a := range f.rows {
		if a.ServiceCode != serviceCode {
			continue
		}
		if countryCode != "" && a.CountryCode != countryCode {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (f *assignmentStore) UpdateStatus(_ context.Context, id, st, revokedBy, reason string, revokedAt *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return assignment.ErrNotFound
	}
	a.Status = st
	a.RevokedBy = revokedBy
	a.RevokeReason = reason
	a.RevokedAt = revokedAt
	return nil
}

func (f *assignmentStore) UpdatePermissions(_ context.Context, id string, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return assignment.ErrNotFound
	}
	a.PermissionIDs = append([]string{}, ids...)
	return nil
}

type eventSink struct{}

func (eventSink) Append(context.Context, *outbox.Event) error { return nil }

// --- fixture ---

type fixture struct {
	authz       *authzStore
	sanctions   *sanctionStore
	admins      *adminStore
	assignments *assignmentStore
	client      authv1.AuthServiceClient
}

func startServer(t *testing.T, loginPerMinute int) *fixture {
	t.Helper()

	f := &fixture{
		authz:       &authzStore{operators: map[string]*authz.Operator{}, grants: map[string][]authz.Grant{}, roles: map[string]*authz.Role{}},
		sanctions:   &sanctionStore{},
		admins:      newAdminStore(),
		assignments: newAssignmentStore(),
	}
	sessSvc := session.NewService(newSessionStore(), "test-secret", "authgrid", 15*time.Minute, 720*time.Hour)
	mfaSvc := mfa.NewService(f.admins, "authgrid")
	adminSvc := adminauth.NewService(f.admins, newMemCache(), sessSvc, mfaSvc, outbox.NewPublisher(eventSink{}))
	srv := NewServer(
		authz.NewResolver(f.authz),
		authz.NewReader(f.authz),
		sanction.NewEvaluator(f.sanctions),
		adminSvc,
		sessSvc,
		mfaSvc,
		assignment.NewManager(f.assignments),
	)

	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		MetricsInterceptor(),
		NewLoginLimiter(loginPerMinute).Interceptor(),
	))
	authv1.RegisterAuthServiceServer(server, srv)

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			t.Logf("grpc serve error: %v", err)
		}
	}()

	dialer := func(ctx context.Context, _ string) (net.Conn, error) {
		return listener.Dial()
	}
	conn, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufnet: %v", err)
	}
	t.Cleanup(func() {
		server.GracefulStop()
		_ = conn.Close()
		_ = listener.Close()
	})

	f.client = authv1.NewAuthServiceClient(conn)
	return f
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// --- tests ---

func TestCheckPermissionOverWire(t *testing.T) {
	f := startServer(t, 100)
	f.authz.operators["op-1"] = &authz.Operator{ID: "op-1", Status: "ACTIVE", Active: true}
	f.authz.grants["op-1"] = []authz.Grant{
		{PermissionID: "perm-1", Resource: "accounts", Action: "read", Source: authz.GrantDirect},
	}

	resp, err := f.client.CheckPermission(testCtx(t), &authv1.CheckPermissionRequest{
		OperatorId: "op-1", Resource: "accounts", Action: "read",
	})
	if err != nil {
		t.Fatalf("CheckPermission: %v", err)
	}
	if !resp.Allowed || resp.Reason != "Permission granted via direct assignment" {
		t.Fatalf("decision: %+v", resp)
	}

	// Missing operators deny softly, never error.
	resp, err = f.client.CheckPermission(testCtx(t), &authv1.CheckPermissionRequest{
		OperatorId: "ghost", Resource: "accounts", Action: "read",
	})
	if err != nil {
		t.Fatalf("CheckPermission ghost: %v", err)
	}
	if resp.Allowed || resp.Reason != "Operator not found" {
		t.Fatalf("ghost decision: %+v", resp)
	}
}

func TestGetRoleNotFoundIsHardError(t *testing.T) {
	f := startServer(t, 100)

	_, err := f.client.GetRole(testCtx(t), &authv1.GetRoleRequest{Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestAdminLoginSessionLifecycle(t *testing.T) {
	f := startServer(t, 100)
	hash, err := adminauth.HashPassword("correct horse battery")
	if err != nil {
		t.Fatal(err)
	}
	f.admins.admins["adm-1"] = &adminauth.Admin{
		ID: "adm-1", Email: "root@authgrid.org", Name: "Root",
		PasswordHash: hash, Active: true,
	}

	login, err := f.client.AdminLogin(testCtx(t), &authv1.AdminLoginRequest{
		Email: "root@authgrid.org", Password: "correct horse battery", IpAddress: "10.0.0.1",
	})
	if err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}
	if !login.Success || login.Tokens == nil {
		t.Fatalf("login: %+v", login)
	}

	validate, err := f.client.AdminValidateSession(testCtx(t), &authv1.AdminValidateSessionRequest{
		AccessToken: login.Tokens.AccessToken,
	})
	if err != nil {
		t.Fatalf("AdminValidateSession: %v", err)
	}
	if !validate.Valid || validate.AdminId != "adm-1" || validate.Email != "root@authgrid.org" {
		t.Fatalf("validate: %+v", validate)
	}

	refresh, err := f.client.AdminRefreshSession(testCtx(t), &authv1.AdminRefreshSessionRequest{
		RefreshToken: login.Tokens.RefreshToken,
	})
	if err != nil {
		t.Fatalf("AdminRefreshSession: %v", err)
	}
	if !refresh.Success || refresh.Tokens == nil {
		t.Fatalf("refresh: %+v", refresh)
	}

	// The pre-rotation refresh token is dead, and its reuse kills the
	// session entirely.
	reuse, err := f.client.AdminRefreshSession(testCtx(t), &authv1.AdminRefreshSessionRequest{
		RefreshToken: login.Tokens.RefreshToken,
	})
	if err != nil {
		t.Fatalf("AdminRefreshSession reuse: %v", err)
	}
	if reuse.Success {
		t.Fatal("reused refresh token must fail")
	}
	validate, err = f.client.AdminValidateSession(testCtx(t), &authv1.AdminValidateSessionRequest{
		AccessToken: login.Tokens.AccessToken,
	})
	if err != nil {
		t.Fatalf("AdminValidateSession after reuse: %v", err)
	}
	if validate.Valid {
		t.Fatal("session must be revoked after refresh token reuse")
	}
}

func TestAdminLoginWrongPasswordIsSoft(t *testing.T) {
	f := startServer(t, 100)
	hash, _ := adminauth.HashPassword("right password")
	f.admins.admins["adm-1"] = &adminauth.Admin{
		ID: "adm-1", Email: "root@authgrid.org", PasswordHash: hash, Active: true,
	}

	resp, err := f.client.AdminLogin(testCtx(t), &authv1.AdminLoginRequest{
		Email: "root@authgrid.org", Password: "wrong", IpAddress: "10.0.0.1",
	})
	if err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}
	if resp.Success || resp.Message != "Invalid credentials" {
		t.Fatalf("response: %+v", resp)
	}
}

func TestLoginRateLimitPerIP(t *testing.T) {
	f := startServer(t, 2)

	req := &authv1.AdminLoginRequest{Email: "root@authgrid.org", Password: "x", IpAddress: "10.9.9.9"}
	for i := 0; i < 2; i++ {
		if _, err := f.client.AdminLogin(testCtx(t), req); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}
	_, err := f.client.AdminLogin(testCtx(t), req)
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("expected ResourceExhausted, got %v", err)
	}

	// A different source IP is unaffected.
	other := &authv1.AdminLoginRequest{Email: "root@authgrid.org", Password: "x", IpAddress: "10.9.9.10"}
	if _, err := f.client.AdminLogin(testCtx(t), other); err != nil {
		t.Fatalf("other ip: %v", err)
	}
}

func TestAssignmentLifecycleOverWire(t *testing.T) {
	f := startServer(t, 100)
	ctx := testCtx(t)

	created, err := f.client.AssignOperator(ctx, &authv1.AssignOperatorRequest{
		AccountId: "acc-1", ServiceCode: "payments", CountryCode: "kz",
		Permissions: []string{"perm-1"}, AssignedBy: "adm-1",
	})
	if err != nil {
		t.Fatalf("AssignOperator: %v", err)
	}
	a := created.Assignment
	if a.Status != authv1.OperatorStatusActive || a.CountryCode != "KZ" {
		t.Fatalf("assignment: %+v", a)
	}

	if _, err := f.client.RevokeOperatorAssignment(ctx, &authv1.RevokeOperatorAssignmentRequest{
		AssignmentId: a.Id, Reason: "policy breach", RevokedBy: "adm-1",
	}); err != nil {
		t.Fatalf("RevokeOperatorAssignment: %v", err)
	}

	got, err := f.client.GetOperatorAssignment(ctx, &authv1.GetOperatorAssignmentRequest{AssignmentId: a.Id})
	if err != nil {
		t.Fatalf("GetOperatorAssignment: %v", err)
	}
	if got.Assignment.Status != authv1.OperatorStatusRevoked || got.Assignment.RevokedReason != "policy breach" {
		t.Fatalf("revoked assignment: %+v", got.Assignment)
	}

	// Revocation is final.
	_, err = f.client.RevokeOperatorAssignment(ctx, &authv1.RevokeOperatorAssignmentRequest{
		AssignmentId: a.Id, Reason: "again", RevokedBy: "adm-1",
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("double revoke: %v", err)
	}
}

func TestCheckSanctionSubjectNormalization(t *testing.T) {
	f := startServer(t, 100)
	now := time.Now().UTC()
	f.sanctions.rows = []sanction.Sanction{{
		ID: "sanc-1", SubjectID: "adm-7", SubjectType: sanction.SubjectAdmin,
		Type: sanction.TypeTemporaryBan, Severity: sanction.SeverityHigh,
		Status: sanction.StatusActive, StartAt: now.Add(-time.Hour),
	}}

	// The wire speaks OPERATOR; storage says ADMIN.
	resp, err := f.client.CheckSanction(testCtx(t), &authv1.CheckSanctionRequest{
		SubjectId: "adm-7", SubjectType: authv1.SubjectTypeOperator,
	})
	if err != nil {
		t.Fatalf("CheckSanction: %v", err)
	}
	if !resp.IsSanctioned || resp.HighestSeverity != authv1.SanctionSeverityHigh {
		t.Fatalf("verdict: %+v", resp)
	}
	if len(resp.ActiveSanctions) != 1 || resp.ActiveSanctions[0].SubjectType != authv1.SubjectTypeOperator {
		t.Fatalf("sanctions: %+v", resp.ActiveSanctions)
	}

	_, err = f.client.CheckSanction(testCtx(t), &authv1.CheckSanctionRequest{SubjectId: ""})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing subject: %v", err)
	}
}

func TestMfaSetupEnableDisableOverWire(t *testing.T) {
	f := startServer(t, 100)
	ctx := testCtx(t)
	hash, _ := adminauth.HashPassword("right password")
	f.admins.admins["adm-1"] = &adminauth.Admin{
		ID: "adm-1", Email: "root@authgrid.org", PasswordHash: hash, Active: true,
	}

	setup, err := f.client.AdminSetupMfa(ctx, &authv1.AdminSetupMfaRequest{AdminId: "adm-1"})
	if err != nil {
		t.Fatalf("AdminSetupMfa: %v", err)
	}
	if setup.Secret == "" || setup.OtpauthUrl == "" || len(setup.BackupCodes) != 10 {
		t.Fatalf("enrollment: %+v", setup)
	}

	// Wrong password blocks disabling.
	_, err = f.client.AdminDisableMfa(ctx, &authv1.AdminDisableMfaRequest{AdminId: "adm-1", Password: "wrong"})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("disable with wrong password: %v", err)
	}
}
