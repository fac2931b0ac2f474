package authz

import "context"

// Store describes the persistence operations the resolver and readers need.
type Store interface {
	// Operator loads a single operator without role hydration.
	// Returns ErrNotFound when absent.
	Operator(ctx context.Context, id string) (*Operator, error)

	// OperatorGrants returns every permission the operator holds, direct
	// and role-inherited, ordered by source so direct grants come first.
	OperatorGrants(ctx context.Context, operatorID string) ([]Grant, error)

	// DirectPermissions returns the operator's direct grants as full rows.
	DirectPermissions(ctx context.Context, operatorID string) ([]Permission, error)

	// RolePermissionsByOperator returns the permissions attached to the
	// operator's assigned role, empty when no role is assigned.
	RolePermissionsByOperator(ctx context.Context, operatorID string) ([]Permission, error)

	// Role loads a role with its full permission set via one aggregating
	// join. Returns ErrNotFound when absent.
	Role(ctx context.Context, id string) (*Role, error)

	// RoleByOperator loads the operator's single assigned role with
	// permissions attached. Returns ErrNotFound when none is assigned.
	RoleByOperator(ctx context.Context, operatorID string) (*Role, error)
}
