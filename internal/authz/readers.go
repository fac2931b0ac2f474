package authz

import (
	"context"
	"errors"
	"fmt"
)

// Reader serves role and operator introspection lookups. Unlike the
// resolver, absent entities surface as hard ErrNotFound errors.
type Reader struct {
	store Store
}

// NewReader builds a Reader over the given store.
func NewReader(store Store) *Reader {
	return &Reader{store: store}
}

// GetRole fetches a role with its full permission set.
func (r *Reader) GetRole(ctx context.Context, id string) (*Role, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: role id is required", ErrInvalidInput)
	}
	return r.store.Role(ctx, id)
}

// GetRolesByOperator returns the operator's roles. The model is
// single-role-per-operator, so the slice holds zero or one entries.
func (r *Reader) GetRolesByOperator(ctx context.Context, operatorID string) ([]Role, error) {
	if operatorID == "" {
		return nil, fmt.Errorf("%w: operator id is required", ErrInvalidInput)
	}
	role, err := r.store.RoleByOperator(ctx, operatorID)
	if errors.Is(err, ErrNotFound) {
		return []Role{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []Role{*role}, nil
}

// GetOperator hydrates an operator and, when a role is assigned, that
// role with its permissions.
func (r *Reader) GetOperator(ctx context.Context, id string) (*Operator, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: operator id is required", ErrInvalidInput)
	}
	op, err := r.store.Operator(ctx, id)
	if err != nil {
		return nil, err
	}
	if op.RoleID != "" {
		role, err := r.store.Role(ctx, op.RoleID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		op.Role = role
	}
	return op, nil
}

// ValidateOperator is the cheap existence+active check used on hot paths
// that only need a boolean. It never returns ErrNotFound.
func (r *Reader) ValidateOperator(ctx context.Context, id string) (Validation, error) {
	if id == "" {
		return Validation{Valid: false, Message: "operator id is required"}, nil
	}
	op, err := r.store.Operator(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Validation{Valid: false, Message: ReasonOperatorNotFound}, nil
	}
	if err != nil {
		return Validation{}, err
	}
	if !op.Active {
		return Validation{Valid: false, Status: op.Status, Message: ReasonOperatorInactive}, nil
	}
	return Validation{Valid: true, Status: op.Status, Message: "Operator is valid"}, nil
}
