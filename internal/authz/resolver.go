package authz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"authgrid.org/internal/obs"
)

// Decision reason strings are asserted on by downstream services.
// Treat them as contract.
const (
	ReasonDirect           = "Permission granted via direct assignment"
	ReasonRole             = "Permission granted via role"
	ReasonWildcard         = "Permission granted via wildcard"
	ReasonOperatorNotFound = "Operator not found"
	ReasonOperatorInactive = "Operator is not active"
	ReasonNotFound         = "Permission not found"
)

// Resolver answers single and batched permission checks. It is stateless
// and safe for concurrent use.
type Resolver struct {
	store Store
}

// NewResolver builds a Resolver over the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// CheckPermission decides whether the operator may perform action on
// resource. Precedence is direct grant, then role grant, then wildcard.
// Absent or inactive operators fail closed with a denial, never an error.
func (r *Resolver) CheckPermission(ctx context.Context, operatorID, resource, action string) (Decision, error) {
	resource = strings.TrimSpace(resource)
	action = strings.TrimSpace(action)
	if operatorID == "" || resource == "" || action == "" {
		return Decision{}, fmt.Errorf("%w: operator id, resource and action are required", ErrInvalidInput)
	}

	op, err := r.store.Operator(ctx, operatorID)
	if errors.Is(err, ErrNotFound) {
		obs.CountPermissionDecision(false)
		return Decision{Allowed: false, Reason: ReasonOperatorNotFound}, nil
	}
	if err != nil {
		return Decision{}, err
	}
	if !op.Active {
		obs.CountPermissionDecision(false)
		return Decision{Allowed: false, Reason: ReasonOperatorInactive}, nil
	}

	grants, err := r.store.OperatorGrants(ctx, operatorID)
	if err != nil {
		return Decision{}, err
	}
	d := resolve(grants, resource, action)
	obs.CountPermissionDecision(d.Allowed)
	return d, nil
}

// CheckPermissions resolves a batch of checks against one grant fetch.
// AllAllowed is the logical AND over every result; an empty batch is
// vacuously allowed.
func (r *Resolver) CheckPermissions(ctx context.Context, operatorID string, checks []Check) (BatchDecision, error) {
	if len(checks) == 0 {
		return BatchDecision{AllAllowed: true, Results: []CheckResult{}}, nil
	}
	if operatorID == "" {
		return BatchDecision{}, fmt.Errorf("%w: operator id is required", ErrInvalidInput)
	}

	op, err := r.store.Operator(ctx, operatorID)
	if errors.Is(err, ErrNotFound) {
		return denyAll(checks, ReasonOperatorNotFound), nil
	}
	if err != nil {
		return BatchDecision{}, err
	}
	if !op.Active {
		return denyAll(checks, ReasonOperatorInactive), nil
	}

	grants, err := r.store.OperatorGrants(ctx, operatorID)
	if err != nil {
		return BatchDecision{}, err
	}

	out := BatchDecision{AllAllowed: true, Results: make([]CheckResult, 0, len(checks))}
	// Decisions are memoized by (resource, action) so duplicate checks in
	// one batch resolve identically.
	memo := make(map[Check]Decision, len(checks))
	for _, c := range checks {
		key := Check{Resource: strings.TrimSpace(c.Resource), Action: strings.TrimSpace(c.Action)}
		d, ok := memo[key]
		if !ok {
			d = resolve(grants, key.Resource, key.Action)
			memo[key] = d
		}
		obs.CountPermissionDecision(d.Allowed)
		out.AllAllowed = out.AllAllowed && d.Allowed
		out.Results = append(out.Results, CheckResult{Resource: c.Resource, Action: c.Action, Decision: d})
	}
	return out, nil
}

// OperatorPermissions returns the operator's direct, role and combined
// permission views. Role permissions are fetched only when requested.
func (r *Resolver) OperatorPermissions(ctx context.Context, operatorID string, includeRole bool) (*PermissionSet, error) {
	if operatorID == "" {
		return nil, fmt.Errorf("%w: operator id is required", ErrInvalidInput)
	}
	if _, err := r.store.Operator(ctx, operatorID); err != nil {
		return nil, err
	}

	direct, err := r.store.DirectPermissions(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	set := &PermissionSet{
		DirectPermissions: direct,
		RolePermissions:   []Permission{},
	}
	if includeRole {
		rolePerms, err := r.store.RolePermissionsByOperator(ctx, operatorID)
		if err != nil {
			return nil, err
		}
		set.RolePermissions = rolePerms
	}

	seen := make(map[string]bool, len(set.DirectPermissions)+len(set.RolePermissions))
	for _, p := range set.DirectPermissions {
		if !seen[p.ID] {
			seen[p.ID] = true
			set.Permissions = append(set.Permissions, p)
		}
	}
	for _, p := range set.RolePermissions {
		if !seen[p.ID] {
			seen[p.ID] = true
			set.Permissions = append(set.Permissions, p)
		}
	}
	return set, nil
}

// resolve evaluates grants against one (resource, action) pair in strict
// precedence order: direct exact, role exact, wildcard. Grants arrive
// ordered by source, so within the wildcard pass a direct wildcard still
// beats a role wildcard.
func resolve(grants []Grant, resource, action string) Decision {
	for _, g := range grants {
		if g.Source == GrantDirect && g.Resource == resource && g.Action == action {
			return Decision{Allowed: true, Reason: ReasonDirect, MatchedPermissionIDs: []string{g.PermissionID}}
		}
	}
	for _, g := range grants {
		if g.Source == GrantRole && g.Resource == resource && g.Action == action {
			return Decision{Allowed: true, Reason: ReasonRole, MatchedPermissionIDs: []string{g.PermissionID}}
		}
	}
	for _, g := range grants {
		if wildcardMatch(g, resource, action) {
			return Decision{Allowed: true, Reason: ReasonWildcard, MatchedPermissionIDs: []string{g.PermissionID}}
		}
	}
	return Decision{Allowed: false, Reason: ReasonNotFound}
}

func wildcardMatch(g Grant, resource, action string) bool {
	resourceOK := g.Resource == Wildcard || g.Resource == resource
	actionOK := g.Action == Wildcard || g.Action == action
	wild := g.Resource == Wildcard || g.Action == Wildcard
	return wild && resourceOK && actionOK
}

func denyAll(checks []Check, reason string) BatchDecision {
	out := BatchDecision{AllAllowed: false, Results: make([]CheckResult, 0, len(checks))}
	for _, c := range checks {
		obs.CountPermissionDecision(false)
		out.Results = append(out.Results, CheckResult{
			Resource: c.Resource,
			Action:   c.Action,
			Decision: Decision{Allowed: false, Reason: reason},
		})
	}
	return out
}
