// Package assignment manages scoped operator delegations: an account
// bound to a (service, country) pair with its own permission subset,
// separate from global role membership.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"authgrid.org/internal/ids"
)

var (
	ErrNotFound          = errors.New("assignment: not found")
	ErrDuplicate         = errors.New("assignment: duplicate")
	ErrInvalidInput      = errors.New("assignment: invalid input")
	ErrInvalidTransition = errors.New("assignment: invalid status transition")
)

// Stored status strings.
const (
	StatusPending   = "PENDING"
	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"
	StatusRevoked   = "REVOKED"
)

// Assignment binds an account to a (service, country) scope.
type Assignment struct {
	ID            string
	AccountID     string
	ServiceCode   string
	CountryCode   string
	Status        string
	PermissionIDs []string
	AssignedBy    string
	AssignedAt    time.Time
	RevokedBy     string
	RevokedAt     *time.Time
	RevokeReason  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Store persists assignments.
type Store interface {
	Create(ctx context.Context, a *Assignment) error
	Find(ctx context.Context, id string) (*Assignment, error)
	ListByService(ctx context.Context, serviceCode, countryCode string) ([]*Assignment, error)
	UpdateStatus(ctx context.Context, id, status, revokedBy, revokeReason string, revokedAt *time.Time) error
	UpdatePermissions(ctx context.Context, id string, permissionIDs []string) error
}

// Status transitions run one way only. A revoked assignment is final;
// re-delegation needs a fresh assignment.
var allowedTransitions = map[string][]string{
	StatusPending:   {StatusActive, StatusRevoked},
	StatusActive:    {StatusSuspended, StatusRevoked},
	StatusSuspended: {StatusRevoked},
	StatusRevoked:   {},
}

func canTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Manager drives assignment lifecycle.
type Manager struct {
	store Store
	now   func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) Option {
	return func(m *Manager) {
		if fn != nil {
			m.now = fn
		}
	}
}

// NewManager builds a Manager over the given store.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{store: store, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AssignInput describes a new delegation.
type AssignInput struct {
	AccountID     string
	ServiceCode   string
	CountryCode   string
	PermissionIDs []string
	AssignedBy    string
}

// Assign creates a new active assignment.
func (m *Manager) Assign(ctx context.Context, in AssignInput) (*Assignment, error) {
	in.AccountID = strings.TrimSpace(in.AccountID)
	in.ServiceCode = strings.TrimSpace(in.ServiceCode)
	in.CountryCode = strings.TrimSpace(strings.ToUpper(in.CountryCode))
	if in.AccountID == "" || in.ServiceCode == "" || in.CountryCode == "" {
		return nil, fmt.Errorf("%w: account id, service code and country code are required", ErrInvalidInput)
	}
	if in.AssignedBy == "" {
		return nil, fmt.Errorf("%w: assigning actor is required", ErrInvalidInput)
	}
	now := m.now().UTC()
	a := &Assignment{
		ID:            ids.New(),
		AccountID:     in.AccountID,
		ServiceCode:   in.ServiceCode,
		CountryCode:   in.CountryCode,
		Status:        StatusActive,
		PermissionIDs: append([]string{}, in.PermissionIDs...),
		AssignedBy:    in.AssignedBy,
		AssignedAt:    now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := m.store.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get fetches an assignment; absence is a hard error.
func (m *Manager) Get(ctx context.Context, id string) (*Assignment, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: assignment id is required", ErrInvalidInput)
	}
	return m.store.Find(ctx, id)
}

// ListByService returns assignments for a service, optionally narrowed
// to one country.
func (m *Manager) ListByService(ctx context.Context, serviceCode, countryCode string) ([]*Assignment, error) {
	if serviceCode == "" {
		return nil, fmt.Errorf("%w: service code is required", ErrInvalidInput)
	}
	return m.store.ListByService(ctx, serviceCode, strings.ToUpper(countryCode))
}

// Suspend moves an active assignment to SUSPENDED.
func (m *Manager) Suspend(ctx context.Context, id string) error {
	a, err := m.store.Find(ctx, id)
	if err != nil {
		return err
	}
	if !canTransition(a.Status, StatusSuspended) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, StatusSuspended)
	}
	return m.store.UpdateStatus(ctx, id, StatusSuspended, "", "", nil)
}

// Revoke terminates an assignment. Reason and actor are mandatory for
// the audit trail; revocation is final.
func (m *Manager) Revoke(ctx context.Context, id, reason, actorID string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" || actorID == "" {
		return fmt.Errorf("%w: revocation requires a reason and an actor", ErrInvalidInput)
	}
	a, err := m.store.Find(ctx, id)
	if err != nil {
		return err
	}
	if !canTransition(a.Status, StatusRevoked) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, StatusRevoked)
	}
	now := m.now().UTC()
	return m.store.UpdateStatus(ctx, id, StatusRevoked, actorID, reason, &now)
}

// UpdatePermissions replaces the permission subset of a live assignment.
func (m *Manager) UpdatePermissions(ctx context.Context, id string, permissionIDs []string) (*Assignment, error) {
	a, err := m.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status == StatusRevoked {
		return nil, fmt.Errorf("%w: revoked assignments are immutable", ErrInvalidTransition)
	}
	if err := m.store.UpdatePermissions(ctx, id, permissionIDs); err != nil {
		return nil, err
	}
	a.PermissionIDs = append([]string{}, permissionIDs...)
	return a, nil
}
