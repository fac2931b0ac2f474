package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("session: invalid token")
	ErrExpired      = errors.New("session: expired")
	ErrRevoked      = errors.New("session: revoked")
	ErrNotFound     = errors.New("session: not found")
)

// Session is one authenticated admin session. RefreshHash stores the
// sha256 of the refresh secret; the secret itself is never persisted.
type Session struct {
	ID          string
	AdminID     string
	Email       string
	RoleID      string
	IP          string
	UserAgent   string
	Fingerprint string
	MfaVerified bool
	MfaMethod   string
	RefreshHash string
	ExpiresAt   time.Time
	CreatedAt   time.Time
	LastSeenAt  time.Time
	Revoked     bool
}

// Claims is the typed access-token payload.
type Claims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	RoleID      string `json:"role_id,omitempty"`
	SessionID   string `json:"sid"`
	TokenType   string `json:"typ"`
	MfaVerified bool   `json:"mfa,omitempty"`
}

// TokenPair carries freshly minted credentials.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// Params describes the session to create.
type Params struct {
	AdminID     string
	Email       string
	RoleID      string
	IP          string
	UserAgent   string
	Fingerprint string
	MfaVerified bool
	MfaMethod   string
}
