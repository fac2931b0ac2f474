package adminauth

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("adminauth: not found")
	ErrInvalidInput = errors.New("adminauth: invalid input")
	ErrUnauthorized = errors.New("adminauth: unauthorized")
)

// LoginAttempt failure reasons, stored verbatim in the audit trail.
const (
	ReasonInvalidPassword = "INVALID_PASSWORD"
	ReasonAccountLocked   = "ACCOUNT_LOCKED"
	ReasonAccountDisabled = "ACCOUNT_DISABLED"
	ReasonMfaRequired     = "MFA_REQUIRED"
	ReasonInvalidMfaCode  = "INVALID_MFA_CODE"
)

// Admin is the authentication principal, distinct from Operator.
type Admin struct {
	ID                  string
	Email               string
	Name                string
	PasswordHash        string
	RoleID              string
	Active              bool
	MfaEnabled          bool
	ForcePasswordChange bool
	FailedLoginAttempts int
	LockedUntil         *time.Time
	LastLoginAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// LoginAttempt is an immutable audit row, appended per login or MFA
// attempt and never mutated.
type LoginAttempt struct {
	ID            string
	AdminID       string
	Email         string
	IP            string
	UserAgent     string
	Success       bool
	FailureReason string
	MfaAttempted  bool
	CreatedAt     time.Time
}

// Challenge is the cache-resident "password verified, awaiting second
// factor" state. It never touches the relational store.
type Challenge struct {
	ID          string    `json:"id"`
	AdminID     string    `json:"admin_id"`
	Email       string    `json:"email"`
	IP          string    `json:"ip"`
	UserAgent   string    `json:"user_agent"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
	Attempts    int       `json:"attempts"`
}

// LoginInput carries one AdminLogin request.
type LoginInput struct {
	Email       string
	Password    string
	IP          string
	UserAgent   string
	Fingerprint string
}

// MfaInput carries one AdminLoginMfa request.
type MfaInput struct {
	ChallengeID string
	Code        string
	Method      string
	IP          string
	UserAgent   string
	Fingerprint string
}

// LoginResult is the soft outcome of a login step. Infrastructure
// failures travel as errors; everything else lands here.
type LoginResult struct {
	Success             bool
	Message             string
	MfaRequired         bool
	ChallengeID         string
	AvailableMethods    []string
	AccessToken         string
	RefreshToken        string
	ExpiresIn           int64
	LockedUntil         *time.Time
	ForcePasswordChange bool
}
