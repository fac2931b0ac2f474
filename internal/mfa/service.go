// Package mfa provisions and verifies second factors: TOTP plus
// single-use backup codes.
package mfa

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var (
	ErrNotFound     = errors.New("mfa: not found")
	ErrNotEnabled   = errors.New("mfa: not enabled")
	ErrInvalidInput = errors.New("mfa: invalid input")
)

// Methods accepted by Verify.
const (
	MethodTOTP       = "totp"
	MethodBackupCode = "backup_code"
)

const backupCodeCount = 10

// Settings is the persisted MFA state of one admin. Secret is stored on
// setup but MFA only counts as enabled after a successful verification.
type Settings struct {
	AdminID string
	Secret  string
	Enabled bool
}

// Store persists MFA settings and backup code hashes.
type Store interface {
	Settings(ctx context.Context, adminID string) (*Settings, error)
	SaveSecret(ctx context.Context, adminID, secret string) error
	SetEnabled(ctx context.Context, adminID string, enabled bool) error
	ReplaceBackupCodes(ctx context.Context, adminID string, hashes []string) error
	// ConsumeBackupCode atomically burns a matching unused code hash and
	// reports whether one matched.
	ConsumeBackupCode(ctx context.Context, adminID, hash string) (bool, error)
}

// Service drives the MFA lifecycle.
type Service struct {
	store  Store
	issuer string
	now    func() time.Time
}

// Option configures Service behavior.
type Option func(*Service)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService constructs an MFA service. issuer names the otpauth
// provisioning entry in authenticator apps.
func NewService(store Store, issuer string, opts ...Option) *Service {
	s := &Service{store: store, issuer: issuer, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enrollment is returned by Setup; BackupCodes appear in plaintext
// exactly once.
type Enrollment struct {
	Secret      string
	OtpauthURL  string
	BackupCodes []string
}

// Setup provisions a new TOTP secret and backup codes for an admin.
// MFA stays disabled until VerifySetup confirms the authenticator.
func (s *Service) Setup(ctx context.Context, adminID, email string) (*Enrollment, error) {
	if adminID == "" || email == "" {
		return nil, fmt.Errorf("%w: admin id and email are required", ErrInvalidInput)
	}
	key, err := totp.Generate(totp.GenerateOpts{Issuer: s.issuer, AccountName: email})
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveSecret(ctx, adminID, key.Secret()); err != nil {
		return nil, err
	}
	codes, hashes, err := newBackupCodes(backupCodeCount)
	if err != nil {
		return nil, err
	}
	if err := s.store.ReplaceBackupCodes(ctx, adminID, hashes); err != nil {
		return nil, err
	}
	return &Enrollment{Secret: key.Secret(), OtpauthURL: key.URL(), BackupCodes: codes}, nil
}

// VerifySetup confirms the enrolled authenticator and enables MFA.
func (s *Service) VerifySetup(ctx context.Context, adminID, code string) error {
	set, err := s.store.Settings(ctx, adminID)
	if err != nil {
		return err
	}
	if set.Secret == "" {
		return ErrNotEnabled
	}
	if !s.validTOTP(code, set.Secret) {
		return fmt.Errorf("%w: invalid code", ErrInvalidInput)
	}
	return s.store.SetEnabled(ctx, adminID, true)
}

// Verify checks a code via the named method against enabled MFA state.
func (s *Service) Verify(ctx context.Context, adminID, method, code string) (bool, error) {
	set, err := s.store.Settings(ctx, adminID)
	if err != nil {
		return false, err
	}
	if !set.Enabled {
		return false, ErrNotEnabled
	}
	switch method {
	case MethodTOTP:
		return s.validTOTP(code, set.Secret), nil
	case MethodBackupCode:
		return s.store.ConsumeBackupCode(ctx, adminID, hashCode(code))
	default:
		return false, fmt.Errorf("%w: unknown method %q", ErrInvalidInput, method)
	}
}

// Disable turns MFA off and discards backup codes. Password
// verification happens in the caller before this point.
func (s *Service) Disable(ctx context.Context, adminID string) error {
	if err := s.store.ReplaceBackupCodes(ctx, adminID, nil); err != nil {
		return err
	}
	return s.store.SetEnabled(ctx, adminID, false)
}

// RegenerateBackupCodes replaces every backup code, invalidating unused
// ones, and returns the new plaintext set.
func (s *Service) RegenerateBackupCodes(ctx context.Context, adminID string) ([]string, error) {
	set, err := s.store.Settings(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !set.Enabled {
		return nil, ErrNotEnabled
	}
	codes, hashes, err := newBackupCodes(backupCodeCount)
	if err != nil {
		return nil, err
	}
	if err := s.store.ReplaceBackupCodes(ctx, adminID, hashes); err != nil {
		return nil, err
	}
	return codes, nil
}

// Enabled reports whether the admin has confirmed MFA.
func (s *Service) Enabled(ctx context.Context, adminID string) (bool, error) {
	set, err := s.store.Settings(ctx, adminID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return set.Enabled, nil
}

func (s *Service) validTOTP(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, s.now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

func newBackupCodes(n int) (codes, hashes []string, err error) {
	codes = make([]string, 0, n)
	hashes = make([]string, 0, n)
	for i := 0; i < n; i++ {
		buf := make([]byte, 5)
		if _, err := rand.Read(buf); err != nil {
			return nil, nil, err
		}
		code := hex.EncodeToString(buf)
		codes = append(codes, code)
		hashes = append(hashes, hashCode(code))
	}
	return codes, hashes, nil
}

func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
