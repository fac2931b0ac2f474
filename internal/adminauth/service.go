// Package adminauth drives the admin login state machine: password
// verification with progressive lockout, cache-backed MFA challenges
// with bounded attempts and IP binding, and session issuance.
package adminauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"authgrid.org/internal/ids"
	"authgrid.org/internal/obs"
	"authgrid.org/internal/session"
)

const (
	defaultLockoutThreshold = 5
	defaultLockoutDuration  = 15 * time.Minute
	defaultChallengeTTL     = 300 * time.Second
	maxChallengeAttempts    = 3
	minCodeLength           = 6

	challengeKeyPrefix = "mfa:challenge:"

	// Generic messages. Deliberately indistinguishable across causes so
	// responses leak nothing about account or challenge state.
	msgInvalidCredentials = "Invalid credentials"
	msgAccountLocked      = "Account is locked"
	msgAccountDisabled    = "Account is disabled"
	msgMfaRequired        = "MFA verification required"
	msgChallengeInvalid   = "Challenge expired or invalid"
	msgInvalidCode        = "Invalid verification code"
)

// Outbox topics.
const (
	topicAdminLoggedIn = "admin.logged_in"
)

// Service orchestrates admin authentication. Stateless apart from the
// injected collaborators; safe for concurrent use.
type Service struct {
	store    Store
	cache    ChallengeCache
	sessions Sessions
	mfa      MfaVerifier
	events   EventPublisher
	now      func() time.Time

	lockoutThreshold int
	lockoutDuration  time.Duration
	challengeTTL     time.Duration
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

// WithLockout overrides the failed-attempt threshold and lock duration.
func WithLockout(threshold int, duration time.Duration) Option {
	return func(s *Service) {
		if threshold > 0 {
			s.lockoutThreshold = threshold
		}
		if duration > 0 {
			s.lockoutDuration = duration
		}
	}
}

// WithChallengeTTL overrides the MFA challenge lifetime.
func WithChallengeTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.challengeTTL = ttl
		}
	}
}

// NewService wires the login state machine to its collaborators.
func NewService(store Store, cache ChallengeCache, sessions Sessions, mfa MfaVerifier, events EventPublisher, opts ...Option) *Service {
	s := &Service{
		store:            store,
		cache:            cache,
		sessions:         sessions,
		mfa:              mfa,
		events:           events,
		now:              time.Now,
		lockoutThreshold: defaultLockoutThreshold,
		lockoutDuration:  defaultLockoutDuration,
		challengeTTL:     defaultChallengeTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login runs the password half of the state machine. Soft outcomes
// (wrong password, lockout, MFA pending) come back in the result;
// only infrastructure failures return an error.
func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if !validEmail(in.Email) || in.Password == "" {
		obs.CountLoginOutcome("invalid_input")
		return &LoginResult{Message: msgInvalidCredentials}, nil
	}

	admin, err := s.store.FindByEmail(ctx, in.Email)
	if errors.Is(err, ErrNotFound) {
		// Unknown account: record and answer exactly like a bad password.
		s.recordAttempt(ctx, "", in, false, ReasonInvalidPassword, false)
		obs.CountLoginOutcome("invalid_credentials")
		return &LoginResult{Message: msgInvalidCredentials}, nil
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	if admin.LockedUntil != nil && admin.LockedUntil.After(now) {
		// No password comparison while locked. The timing difference
		// against the unlocked path is a known, accepted tradeoff.
		s.recordAttempt(ctx, admin.ID, in, false, ReasonAccountLocked, false)
		obs.CountLoginOutcome("locked")
		return &LoginResult{Message: msgAccountLocked, LockedUntil: admin.LockedUntil}, nil
	}

	if !admin.Active {
		s.recordAttempt(ctx, admin.ID, in, false, ReasonAccountDisabled, false)
		obs.CountLoginOutcome("disabled")
		return &LoginResult{Message: msgAccountDisabled}, nil
	}

	if err := VerifyPassword(admin.PasswordHash, in.Password); err != nil {
		failed := admin.FailedLoginAttempts + 1
		var lockedUntil *time.Time
		if failed >= s.lockoutThreshold {
			t := now.Add(s.lockoutDuration)
			lockedUntil = &t
		}
		if err := s.store.UpdateLoginState(ctx, admin.ID, failed, lockedUntil); err != nil {
			return nil, err
		}
		s.recordAttempt(ctx, admin.ID, in, false, ReasonInvalidPassword, false)
		obs.CountLoginOutcome("invalid_credentials")
		// The lock just placed is not disclosed yet; the caller learns
		// about it on the next attempt.
		return &LoginResult{Message: msgInvalidCredentials}, nil
	}

	if err := s.store.UpdateLoginState(ctx, admin.ID, 0, nil); err != nil {
		return nil, err
	}

	mfaEnabled, err := s.mfa.Enabled(ctx, admin.ID)
	if err != nil {
		return nil, err
	}
	if mfaEnabled {
		challengeID, err := s.createChallenge(ctx, admin, in)
		if err != nil {
			return nil, err
		}
		s.recordAttempt(ctx, admin.ID, in, false, ReasonMfaRequired, false)
		obs.CountLoginOutcome("mfa_required")
		return &LoginResult{
			Success:          false,
			Message:          msgMfaRequired,
			MfaRequired:      true,
			ChallengeID:      challengeID,
			AvailableMethods: []string{"totp", "backup_code"},
		}, nil
	}

	return s.completeLogin(ctx, admin, in, false, "")
}

// VerifyMfa runs the second half of the state machine against a cached
// challenge.
func (s *Service) VerifyMfa(ctx context.Context, in MfaInput) (*LoginResult, error) {
	// Shape checks happen before any cache or store I/O.
	if _, err := uuid.Parse(in.ChallengeID); err != nil || len(in.Code) < minCodeLength {
		obs.CountLoginOutcome("mfa_invalid_input")
		return &LoginResult{Message: msgChallengeInvalid}, nil
	}
	method := in.Method
	if method == "" {
		method = "totp"
	}

	key := challengeKeyPrefix + in.ChallengeID
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		obs.CountLoginOutcome("mfa_challenge_missing")
		return &LoginResult{Message: msgChallengeInvalid}, nil
	}
	var ch Challenge
	if err := json.Unmarshal(raw, &ch); err != nil {
		_ = s.cache.Delete(ctx, key)
		return &LoginResult{Message: msgChallengeInvalid}, nil
	}

	if ch.IP != in.IP {
		// A challenge redeemed from another network is treated as stolen
		// and burned immediately.
		if err := s.cache.Delete(ctx, key); err != nil {
			return nil, err
		}
		obs.CountLoginOutcome("mfa_ip_mismatch")
		return &LoginResult{Message: msgChallengeInvalid}, nil
	}

	if ch.Attempts >= maxChallengeAttempts {
		if err := s.cache.Delete(ctx, key); err != nil {
			return nil, err
		}
		obs.CountLoginOutcome("mfa_attempts_exhausted")
		return &LoginResult{Message: msgChallengeInvalid}, nil
	}

	ch.Attempts++
	updated, err := json.Marshal(&ch)
	if err != nil {
		return nil, err
	}
	// Rewrite keeps the original TTL; attempts never extend a
	// challenge's life.
	if err := s.cache.Update(ctx, key, updated); err != nil {
		return nil, err
	}

	ok, err = s.mfa.Verify(ctx, ch.AdminID, method, in.Code)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.recordAttempt(ctx, ch.AdminID, LoginInput{Email: ch.Email, IP: in.IP, UserAgent: in.UserAgent}, false, ReasonInvalidMfaCode, true)
		obs.CountLoginOutcome("mfa_invalid_code")
		return &LoginResult{Message: msgInvalidCode}, nil
	}

	if err := s.cache.Delete(ctx, key); err != nil {
		return nil, err
	}
	admin, err := s.store.Find(ctx, ch.AdminID)
	if err != nil {
		return nil, err
	}
	login := LoginInput{Email: ch.Email, IP: in.IP, UserAgent: in.UserAgent, Fingerprint: in.Fingerprint}
	return s.completeLogin(ctx, admin, login, true, method)
}

// Admin fetches a single admin row.
func (s *Service) Admin(ctx context.Context, id string) (*Admin, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: admin id is required", ErrInvalidInput)
	}
	return s.store.Find(ctx, id)
}

// Reauthenticate confirms the admin's password for sensitive operations
// such as disabling MFA. Wrong password comes back as ErrUnauthorized.
func (s *Service) Reauthenticate(ctx context.Context, adminID, password string) error {
	if adminID == "" || password == "" {
		return fmt.Errorf("%w: admin id and password are required", ErrInvalidInput)
	}
	admin, err := s.store.Find(ctx, adminID)
	if err != nil {
		return err
	}
	if err := VerifyPassword(admin.PasswordHash, password); err != nil {
		return ErrUnauthorized
	}
	return nil
}

// ChangePassword verifies the current password and installs a new hash,
// clearing any force-change flag.
func (s *Service) ChangePassword(ctx context.Context, adminID, current, next string) error {
	if adminID == "" || len(next) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	admin, err := s.store.Find(ctx, adminID)
	if err != nil {
		return err
	}
	if err := VerifyPassword(admin.PasswordHash, current); err != nil {
		return ErrUnauthorized
	}
	hash, err := HashPassword(next)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, adminID, hash, false)
}

func (s *Service) createChallenge(ctx context.Context, admin *Admin, in LoginInput) (string, error) {
	ch := Challenge{
		ID:          uuid.NewString(),
		AdminID:     admin.ID,
		Email:       admin.Email,
		IP:          in.IP,
		UserAgent:   in.UserAgent,
		Fingerprint: in.Fingerprint,
		CreatedAt:   s.now().UTC(),
	}
	raw, err := json.Marshal(&ch)
	if err != nil {
		return "", err
	}
	if err := s.cache.Set(ctx, challengeKeyPrefix+ch.ID, raw, s.challengeTTL); err != nil {
		return "", err
	}
	return ch.ID, nil
}

func (s *Service) completeLogin(ctx context.Context, admin *Admin, in LoginInput, mfaVerified bool, mfaMethod string) (*LoginResult, error) {
	now := s.now()
	_, pair, err := s.sessions.Create(ctx, session.Params{
		AdminID:     admin.ID,
		Email:       admin.Email,
		RoleID:      admin.RoleID,
		IP:          in.IP,
		UserAgent:   in.UserAgent,
		Fingerprint: in.Fingerprint,
		MfaVerified: mfaVerified,
		MfaMethod:   mfaMethod,
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.StampLastLogin(ctx, admin.ID, now); err != nil {
		return nil, err
	}
	s.recordAttempt(ctx, admin.ID, in, true, "", mfaVerified)
	s.events.Publish(ctx, topicAdminLoggedIn, admin.ID, map[string]any{
		"admin_id":     admin.ID,
		"email":        admin.Email,
		"ip":           in.IP,
		"mfa_verified": mfaVerified,
		"at":           now.UTC().Format(time.RFC3339Nano),
	})
	obs.CountLoginOutcome("success")
	return &LoginResult{
		Success:             true,
		AccessToken:         pair.AccessToken,
		RefreshToken:        pair.RefreshToken,
		ExpiresIn:           int64(pair.AccessExpiresAt.Sub(now).Seconds()),
		ForcePasswordChange: admin.ForcePasswordChange,
	}, nil
}

// recordAttempt appends to the audit trail best-effort: a failed append
// must not block the login decision.
func (s *Service) recordAttempt(ctx context.Context, adminID string, in LoginInput, success bool, reason string, mfaAttempted bool) {
	attempt := &LoginAttempt{
		ID:            ids.New(),
		AdminID:       adminID,
		Email:         in.Email,
		IP:            in.IP,
		UserAgent:     in.UserAgent,
		Success:       success,
		FailureReason: reason,
		MfaAttempted:  mfaAttempted,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.store.AppendAttempt(ctx, attempt); err != nil {
		obs.Error("login attempt append failed", map[string]any{"email": in.Email, "error": err.Error()})
	}
	obs.Log(map[string]any{
		"type":          "audit",
		"event":         "admin.login_attempt",
		"email":         in.Email,
		"success":       success,
		"reason":        reason,
		"mfa_attempted": mfaAttempted,
		"ip":            in.IP,
	})
}

func validEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
