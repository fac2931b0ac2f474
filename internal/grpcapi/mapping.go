package grpcapi

import (
	"time"

	"authgrid.org/api/authv1"
	"authgrid.org/internal/assignment"
	"authgrid.org/internal/authz"
	"authgrid.org/internal/sanction"
	"authgrid.org/internal/session"
)

// Stored enum strings and wire enum values meet only here. The maps are
// closed: unknown stored strings fall back to UNSPECIFIED rather than
// failing the RPC.

var operatorStatusToProto = map[string]authv1.OperatorStatus{
	assignment.StatusPending:   authv1.OperatorStatusPending,
	assignment.StatusActive:    authv1.OperatorStatusActive,
	assignment.StatusSuspended: authv1.OperatorStatusSuspended,
	assignment.StatusRevoked:   authv1.OperatorStatusRevoked,
}

var roleScopeToProto = map[string]authv1.RoleScope{
	"GLOBAL":  authv1.RoleScopeGlobal,
	"SERVICE": authv1.RoleScopeService,
	"TENANT":  authv1.RoleScopeTenant,
}

// Subject types are stored as USER/ADMIN/SERVICE; the wire speaks
// OPERATOR where the store says ADMIN. This pair is the only place that
// normalization happens.
var subjectTypeToProto = map[string]authv1.SubjectType{
	sanction.SubjectUser:    authv1.SubjectTypeUser,
	sanction.SubjectAdmin:   authv1.SubjectTypeOperator,
	sanction.SubjectService: authv1.SubjectTypeService,
}

var subjectTypeFromProto = map[authv1.SubjectType]string{
	authv1.SubjectTypeUser:     sanction.SubjectUser,
	authv1.SubjectTypeOperator: sanction.SubjectAdmin,
	authv1.SubjectTypeService:  sanction.SubjectService,
}

var sanctionTypeToProto = map[string]authv1.SanctionType{
	sanction.TypeWarning:            authv1.SanctionTypeWarning,
	sanction.TypeMute:               authv1.SanctionTypeMute,
	sanction.TypeTemporaryBan:       authv1.SanctionTypeTemporaryBan,
	sanction.TypePermanentBan:       authv1.SanctionTypePermanentBan,
	sanction.TypeFeatureRestriction: authv1.SanctionTypeFeatureRestriction,
}

var sanctionTypeFromProto = map[authv1.SanctionType]string{
	authv1.SanctionTypeWarning:            sanction.TypeWarning,
	authv1.SanctionTypeMute:               sanction.TypeMute,
	authv1.SanctionTypeTemporaryBan:       sanction.TypeTemporaryBan,
	authv1.SanctionTypePermanentBan:       sanction.TypePermanentBan,
	authv1.SanctionTypeFeatureRestriction: sanction.TypeFeatureRestriction,
}

var sanctionSeverityToProto = map[string]authv1.SanctionSeverity{
	sanction.SeverityLow:      authv1.SanctionSeverityLow,
	sanction.SeverityMedium:   authv1.SanctionSeverityMedium,
	sanction.SeverityHigh:     authv1.SanctionSeverityHigh,
	sanction.SeverityCritical: authv1.SanctionSeverityCritical,
}

var sanctionStatusToProto = map[string]authv1.SanctionStatus{
	sanction.StatusActive:   authv1.SanctionStatusActive,
	sanction.StatusExpired:  authv1.SanctionStatusExpired,
	sanction.StatusRevoked:  authv1.SanctionStatusRevoked,
	sanction.StatusAppealed: authv1.SanctionStatusAppealed,
}

func ts(t time.Time) *authv1.Timestamp {
	if t.IsZero() {
		return nil
	}
	return &authv1.Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

func tsPtr(t *time.Time) *authv1.Timestamp {
	if t == nil {
		return nil
	}
	return ts(*t)
}

func protoPermission(p authz.Permission) *authv1.Permission {
	return &authv1.Permission{
		Id:          p.ID,
		Resource:    p.Resource,
		Action:      p.Action,
		Category:    p.Category,
		Description: p.Description,
		IsSystem:    p.System,
	}
}

func protoPermissions(perms []authz.Permission) []*authv1.Permission {
	out := make([]*authv1.Permission, 0, len(perms))
	for _, p := range perms {
		out = append(out, protoPermission(p))
	}
	return out
}

func protoRole(r *authz.Role) *authv1.Role {
	if r == nil {
		return nil
	}
	return &authv1.Role{
		Id:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Level:       int32(r.Level),
		Scope:       roleScopeToProto[r.Scope],
		Permissions: protoPermissions(r.Permissions),
		CreatedAt:   ts(r.CreatedAt),
		UpdatedAt:   ts(r.UpdatedAt),
	}
}

func protoOperator(op *authz.Operator) *authv1.Operator {
	return &authv1.Operator{
		Id:          op.ID,
		AccountId:   op.AccountID,
		Email:       op.Email,
		Name:        op.DisplayName,
		IsActive:    op.Active,
		RoleId:      op.RoleID,
		Role:        protoRole(op.Role),
		LastLoginAt: tsPtr(op.LastLoginAt),
		CreatedAt:   ts(op.CreatedAt),
		UpdatedAt:   ts(op.UpdatedAt),
	}
}

func protoSanction(s sanction.Sanction) *authv1.Sanction {
	return &authv1.Sanction{
		Id:          s.ID,
		SubjectId:   s.SubjectID,
		SubjectType: subjectTypeToProto[s.SubjectType],
		Type:        sanctionTypeToProto[s.Type],
		Severity:    sanctionSeverityToProto[s.Severity],
		Status:      sanctionStatusToProto[s.Status],
		Reason:      s.Reason,
		Evidence:    s.Evidence,
		IssuedBy:    s.IssuedBy,
		StartsAt:    ts(s.StartAt),
		EndsAt:      tsPtr(s.EndAt),
	}
}

func protoSanctions(list []sanction.Sanction) []*authv1.Sanction {
	out := make([]*authv1.Sanction, 0, len(list))
	for _, s := range list {
		out = append(out, protoSanction(s))
	}
	return out
}

func protoAssignment(a *assignment.Assignment) *authv1.OperatorAssignment {
	return &authv1.OperatorAssignment{
		Id:            a.ID,
		AccountId:     a.AccountID,
		ServiceCode:   a.ServiceCode,
		CountryCode:   a.CountryCode,
		Status:        operatorStatusToProto[a.Status],
		Permissions:   a.PermissionIDs,
		AssignedBy:    a.AssignedBy,
		RevokedBy:     a.RevokedBy,
		RevokedReason: a.RevokeReason,
		CreatedAt:     ts(a.CreatedAt),
		UpdatedAt:     ts(a.UpdatedAt),
		RevokedAt:     tsPtr(a.RevokedAt),
	}
}

func protoSessionInfo(s *session.Session) *authv1.SessionInfo {
	return &authv1.SessionInfo{
		Id:          s.ID,
		IpAddress:   s.IP,
		UserAgent:   s.UserAgent,
		MfaVerified: s.MfaVerified,
		CreatedAt:   ts(s.CreatedAt),
		LastSeenAt:  ts(s.LastSeenAt),
		ExpiresAt:   ts(s.ExpiresAt),
	}
}
