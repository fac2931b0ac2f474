// Package session issues and validates admin sessions: short-lived JWT
// access tokens paired with opaque rotating refresh tokens.
package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Service mints, validates and rotates session credentials.
type Service struct {
	store      Store
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
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

// NewService constructs a session service. secret signs access tokens
// with HS256.
func NewService(store Store, secret, issuer string, accessTTL, refreshTTL time.Duration, opts ...Option) *Service {
	s := &Service{
		store:      store,
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create persists a new session and returns its token pair.
func (s *Service) Create(ctx context.Context, p Params) (*Session, TokenPair, error) {
	now := s.now()
	refreshSecret, refreshHash, err := newRefreshSecret()
	if err != nil {
		return nil, TokenPair{}, err
	}
	sess := &Session{
		ID:          uuid.NewString(),
		AdminID:     p.AdminID,
		Email:       p.Email,
		RoleID:      p.RoleID,
		IP:          p.IP,
		UserAgent:   p.UserAgent,
		Fingerprint: p.Fingerprint,
		MfaVerified: p.MfaVerified,
		MfaMethod:   p.MfaMethod,
		RefreshHash: refreshHash,
		ExpiresAt:   now.Add(s.refreshTTL),
		CreatedAt:   now,
		LastSeenAt:  now,
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, TokenPair{}, err
	}
	access, accessExp, err := s.signAccessToken(sess, now)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return sess, TokenPair{
		AccessToken:      access,
		RefreshToken:     sess.ID + "." + refreshSecret,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: sess.ExpiresAt,
	}, nil
}

// Validate checks an access token and its backing session row. Revoked
// or expired sessions invalidate otherwise well-formed tokens.
func (s *Service) Validate(ctx context.Context, accessToken string) (*Session, *Claims, error) {
	claims, err := s.parseAccessToken(accessToken)
	if err != nil {
		return nil, nil, ErrInvalidToken
	}
	sess, err := s.store.Find(ctx, claims.SessionID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil, ErrInvalidToken
	}
	if err != nil {
		return nil, nil, err
	}
	if sess.Revoked {
		return nil, nil, ErrRevoked
	}
	if s.now().After(sess.ExpiresAt) {
		return nil, nil, ErrExpired
	}
	return sess, claims, nil
}

// Refresh rotates the refresh secret and mints a new access token. The
// old refresh token stops working immediately.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Session, TokenPair, error) {
	id, secret, err := splitRefreshToken(refreshToken)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidToken
	}
	sess, err := s.store.Find(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, TokenPair{}, ErrInvalidToken
	}
	if err != nil {
		return nil, TokenPair{}, err
	}
	now := s.now()
	if sess.Revoked {
		return nil, TokenPair{}, ErrRevoked
	}
	if now.After(sess.ExpiresAt) {
		return nil, TokenPair{}, ErrExpired
	}
	if !compareHash(sess.RefreshHash, secret) {
		// A wrong secret for a live session id means the token leaked or
		// was already rotated; kill the session.
		_ = s.store.MarkRevoked(ctx, sess.ID)
		return nil, TokenPair{}, ErrInvalidToken
	}

	newSecret, newHash, err := newRefreshSecret()
	if err != nil {
		return nil, TokenPair{}, err
	}
	expiresAt := now.Add(s.refreshTTL)
	if err := s.store.UpdateRefresh(ctx, sess.ID, newHash, expiresAt, now); err != nil {
		return nil, TokenPair{}, err
	}
	sess.RefreshHash = newHash
	sess.ExpiresAt = expiresAt
	sess.LastSeenAt = now

	access, accessExp, err := s.signAccessToken(sess, now)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return sess, TokenPair{
		AccessToken:      access,
		RefreshToken:     sess.ID + "." + newSecret,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: expiresAt,
	}, nil
}

// Revoke terminates a single session.
func (s *Service) Revoke(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidToken
	}
	return s.store.MarkRevoked(ctx, sessionID)
}

// RevokeAll terminates every session of an admin.
func (s *Service) RevokeAll(ctx context.Context, adminID string) error {
	if adminID == "" {
		return ErrInvalidToken
	}
	return s.store.MarkRevokedByAdmin(ctx, adminID)
}

// List returns the admin's live sessions.
func (s *Service) List(ctx context.Context, adminID string) ([]*Session, error) {
	return s.store.ListActiveByAdmin(ctx, adminID)
}

func (s *Service) signAccessToken(sess *Session, now time.Time) (string, time.Time, error) {
	exp := now.Add(s.accessTTL)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.AdminID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
		Email:       sess.Email,
		RoleID:      sess.RoleID,
		SessionID:   sess.ID,
		TokenType:   "access",
		MfaVerified: sess.MfaVerified,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func (s *Service) parseAccessToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != "access" || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func newRefreshSecret() (secret, hash string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	secret = base64.RawURLEncoding.EncodeToString(buf)
	sum := sha256.Sum256([]byte(secret))
	return secret, hex.EncodeToString(sum[:]), nil
}

func splitRefreshToken(raw string) (id, secret string, err error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidToken
	}
	return parts[0], parts[1], nil
}

func compareHash(expectedHash, secret string) bool {
	sum := sha256.Sum256([]byte(secret))
	actual := hex.EncodeToString(sum[:])
	if len(expectedHash) != len(actual) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expectedHash), []byte(actual)) == 1
}
