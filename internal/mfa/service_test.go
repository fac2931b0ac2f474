package mfa

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
)

type memStore struct {
	settings map[string]*Settings
	codes    map[string][]string
}

func newMemStore() *memStore {
	return &memStore{settings: map[string]*Settings{}, codes: map[string][]string{}}
}

func (m *memStore) Settings(_ context.Context, adminID string) (*Settings, error) {
	s, ok := m.settings[adminID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memStore) SaveSecret(_ context.Context, adminID, secret string) error {
	s, ok := m.settings[adminID]
	if !ok {
		s = &Settings{AdminID: adminID}
		m.settings[adminID] = s
	}
	s.Secret = secret
	s.Enabled = false
	return nil
}

func (m *memStore) SetEnabled(_ context.Context, adminID string, enabled bool) error {
	s, ok := m.settings[adminID]
	if !ok {
		return ErrNotFound
	}
	s.Enabled = enabled
	return nil
}

func (m *memStore) ReplaceBackupCodes(_ context.Context, adminID string, hashes []string) error {
	m.codes[adminID] = append([]string{}, hashes...)
	return nil
}

func (m *memStore) ConsumeBackupCode(_ context.Context, adminID, hash string) (bool, error) {
	list := m.codes[adminID]
	for i, h := range list {
		if h == hash {
			m.codes[adminID] = append(list[:i], list[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func enroll(t *testing.T, svc *Service, store *memStore, adminID string) *Enrollment {
	t.Helper()
	enr, err := svc.Setup(context.Background(), adminID, adminID+"@example.com")
	if err != nil {
		t.Fatal(err)
	}
	code, err := totp.GenerateCode(enr.Secret, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.VerifySetup(context.Background(), adminID, code); err != nil {
		t.Fatal(err)
	}
	return enr
}

func TestSetupAndVerifySetup(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, "authgrid", WithClock(fixedClock))

	enr := enroll(t, svc, store, "adm-1")
	if enr.Secret == "" || enr.OtpauthURL == "" || len(enr.BackupCodes) != backupCodeCount {
		t.Fatalf("enrollment: %+v", enr)
	}
	if !store.settings["adm-1"].Enabled {
		t.Fatal("MFA should be enabled after VerifySetup")
	}
}

func TestVerifySetupRejectsWrongCode(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, "authgrid", WithClock(fixedClock))

	if _, err := svc.Setup(context.Background(), "adm-1", "a@b.c"); err != nil {
		t.Fatal(err)
	}
	if err := svc.VerifySetup(context.Background(), "adm-1", "000000"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if store.settings["adm-1"].Enabled {
		t.Fatal("MFA must not enable on a failed verification")
	}
}

func TestVerifyTOTP(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, "authgrid", WithClock(fixedClock))
	enr := enroll(t, svc, store, "adm-1")

	code, _ := totp.GenerateCode(enr.Secret, testNow)
	ok, err := svc.Verify(context.Background(), "adm-1", MethodTOTP, code)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	ok, err = svc.Verify(context.Background(), "adm-1", MethodTOTP, "123456")
	if err != nil || ok {
		t.Fatalf("wrong code accepted: ok=%v err=%v", ok, err)
	}
}

func TestBackupCodeIsSingleUse(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, "authgrid", WithClock(fixedClock))
	enr := enroll(t, svc, store, "adm-1")

	code := enr.BackupCodes[0]
	ok, err := svc.Verify(context.Background(), "adm-1", MethodBackupCode, code)
	if err != nil || !ok {
		t.Fatalf("first use: ok=%v err=%v", ok, err)
	}
	ok, err = svc.Verify(context.Background(), "adm-1", MethodBackupCode, code)
	if err != nil || ok {
		t.Fatalf("second use must fail: ok=%v err=%v", ok, err)
	}
}

func TestVerifyRequiresEnabled(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, "authgrid", WithClock(fixedClock))

	if _, err := svc.Setup(context.Background(), "adm-1", "a@b.c"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Verify(context.Background(), "adm-1", MethodTOTP, "111111"); !errors.Is(err, ErrNotEnabled) {
		t.Fatalf("expected ErrNotEnabled, got %v", err)
	}
}

func TestRegenerateInvalidatesOldCodes(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, "authgrid", WithClock(fixedClock))
	enr := enroll(t, svc, store, "adm-1")

	fresh, err := svc.RegenerateBackupCodes(context.Background(), "adm-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(fresh) != backupCodeCount {
		t.Fatalf("fresh count=%d", len(fresh))
	}
	ok, err := svc.Verify(context.Background(), "adm-1", MethodBackupCode, enr.BackupCodes[0])
	if err != nil || ok {
		t.Fatalf("old code still valid: ok=%v err=%v", ok, err)
	}
	ok, err = svc.Verify(context.Background(), "adm-1", MethodBackupCode, fresh[0])
	if err != nil || !ok {
		t.Fatalf("fresh code rejected: ok=%v err=%v", ok, err)
	}
}

func TestDisableClearsState(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, "authgrid", WithClock(fixedClock))
	enroll(t, svc, store, "adm-1")

	if err := svc.Disable(context.Background(), "adm-1"); err != nil {
		t.Fatal(err)
	}
	enabled, err := svc.Enabled(context.Background(), "adm-1")
	if err != nil || enabled {
		t.Fatalf("enabled=%v err=%v", enabled, err)
	}
	if len(store.codes["adm-1"]) != 0 {
		t.Fatal("backup codes not discarded")
	}
}
