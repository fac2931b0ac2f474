package authz

import "time"

// Wildcard is the literal token that matches any resource or action.
const Wildcard = "*"

// Stored enum strings for operator status and role scope.
const (
	OperatorPending   = "PENDING"
	OperatorActive    = "ACTIVE"
	OperatorSuspended = "SUSPENDED"
	OperatorRevoked   = "REVOKED"

	ScopeGlobal  = "GLOBAL"
	ScopeService = "SERVICE"
	ScopeTenant  = "TENANT"
)

// Permission is the atomic grant unit. Resource or Action may be the
// wildcard token.
type Permission struct {
	ID          string
	Resource    string
	Action      string
	Category    string
	Description string
	System      bool
	CreatedAt   time.Time
}

// Role is a named permission bundle. Higher Level means more privileged.
type Role struct {
	ID          string
	Name        string
	Description string
	Level       int
	Scope       string
	Permissions []Permission
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Operator is a human identity acting with elevated access. An operator
// holds at most one role; RoleID is empty when none is assigned.
type Operator struct {
	ID          string
	AccountID   string
	Email       string
	DisplayName string
	Status      string
	Active      bool
	RoleID      string
	Role        *Role
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GrantSource discriminates how an operator holds a permission.
// Lower values take precedence.
type GrantSource int

const (
	GrantDirect GrantSource = 1
	GrantRole   GrantSource = 2
)

// Grant is one resolvable permission an operator holds, tagged with its
// source. The store returns grants ordered by source so direct grants
// always come first.
type Grant struct {
	PermissionID string
	Resource     string
	Action       string
	Source       GrantSource
}

// Decision is the outcome of a single permission check.
type Decision struct {
	Allowed              bool
	Reason               string
	MatchedPermissionIDs []string
}

// Check is one (resource, action) pair inside a batched request.
type Check struct {
	Resource string
	Action   string
}

// CheckResult pairs a requested check with its decision.
type CheckResult struct {
	Resource string
	Action   string
	Decision
}

// BatchDecision is the outcome of a batched permission check.
type BatchDecision struct {
	AllAllowed bool
	Results    []CheckResult
}

// PermissionSet groups the three views GetOperatorPermissions returns.
// Permissions is the union of the other two, deduplicated by permission
// id with direct entries winning ties.
type PermissionSet struct {
	Permissions       []Permission
	DirectPermissions []Permission
	RolePermissions   []Permission
}

// Validation is the tri-state result of a cheap operator liveness check.
type Validation struct {
	Valid   bool
	Status  string
	Message string
}
