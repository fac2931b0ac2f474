// Package grpcapi exposes the authgrid.v1.AuthService surface. Handlers
// translate wire messages to domain calls and map sentinel errors to
// status codes; internal error text never reaches the caller.
package grpcapi

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"authgrid.org/api/authv1"
	"authgrid.org/internal/adminauth"
	"authgrid.org/internal/assignment"
	"authgrid.org/internal/authz"
	"authgrid.org/internal/mfa"
	"authgrid.org/internal/obs"
	"authgrid.org/internal/sanction"
	"authgrid.org/internal/session"
)

// Server implements authv1.AuthServiceServer.
type Server struct {
	authv1.UnimplementedAuthServiceServer

	resolver    *authz.Resolver
	reader      *authz.Reader
	sanctions   *sanction.Evaluator
	admins      *adminauth.Service
	sessions    *session.Service
	mfa         *mfa.Service
	assignments *assignment.Manager
}

// NewServer wires the handlers to their domain services.
func NewServer(
	resolver *authz.Resolver,
	reader *authz.Reader,
	sanctions *sanction.Evaluator,
	admins *adminauth.Service,
	sessions *session.Service,
	mfaSvc *mfa.Service,
	assignments *assignment.Manager,
) *Server {
	return &Server{
		resolver:    resolver,
		reader:      reader,
		sanctions:   sanctions,
		admins:      admins,
		sessions:    sessions,
		mfa:         mfaSvc,
		assignments: assignments,
	}
}

// rpcError maps domain sentinels to status codes. Anything unrecognized
// is logged server-side and collapsed to a generic Internal.
func rpcError(method string, err error) error {
	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}
	switch {
	case errors.Is(err, authz.ErrNotFound),
		errors.Is(err, adminauth.ErrNotFound),
		errors.Is(err, session.ErrNotFound),
		errors.Is(err, mfa.ErrNotFound),
		errors.Is(err, assignment.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, authz.ErrInvalidInput),
		errors.Is(err, adminauth.ErrInvalidInput),
		errors.Is(err, mfa.ErrInvalidInput),
		errors.Is(err, assignment.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, assignment.ErrDuplicate):
		return status.Error(codes.AlreadyExists, "assignment already exists")
	case errors.Is(err, assignment.ErrInvalidTransition),
		errors.Is(err, mfa.ErrNotEnabled):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, adminauth.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, "invalid credentials")
	default:
		obs.Error("rpc failed", map[string]any{"method": method, "error": err.Error()})
		return status.Error(codes.Internal, "internal error")
	}
}

// --- Permission checks ---

func (s *Server) CheckPermission(ctx context.Context, req *authv1.CheckPermissionRequest) (*authv1.CheckPermissionResponse, error) {
	d, err := s.resolver.CheckPermission(ctx, req.OperatorId, req.Resource, req.Action)
	if err != nil {
		return nil, rpcError("CheckPermission", err)
	}
	return &authv1.CheckPermissionResponse{
		Allowed:              d.Allowed,
		Reason:               d.Reason,
		MatchedPermissionIds: d.MatchedPermissionIDs,
	}, nil
}

func (s *Server) CheckPermissions(ctx context.Context, req *authv1.CheckPermissionsRequest) (*authv1.CheckPermissionsResponse, error) {
	checks := make([]authz.Check, 0, len(req.Checks))
	for _, c := range req.Checks {
		checks = append(checks, authz.Check{Resource: c.Resource, Action: c.Action})
	}
	batch, err := s.resolver.CheckPermissions(ctx, req.OperatorId, checks)
	if err != nil {
		return nil, rpcError("CheckPermissions", err)
	}
	results := make([]*authv1.PermissionResult, 0, len(batch.Results))
	for _, r := range batch.Results {
		results = append(results, &authv1.PermissionResult{
			Resource:             r.Resource,
			Action:               r.Action,
			Allowed:              r.Allowed,
			Reason:               r.Reason,
			MatchedPermissionIds: r.MatchedPermissionIDs,
		})
	}
	return &authv1.CheckPermissionsResponse{AllAllowed: batch.AllAllowed, Results: results}, nil
}

func (s *Server) GetOperatorPermissions(ctx context.Context, req *authv1.GetOperatorPermissionsRequest) (*authv1.GetOperatorPermissionsResponse, error) {
	set, err := s.resolver.OperatorPermissions(ctx, req.OperatorId, req.IncludeRolePermissions)
	if err != nil {
		return nil, rpcError("GetOperatorPermissions", err)
	}
	return &authv1.GetOperatorPermissionsResponse{
		Permissions:       protoPermissions(set.Permissions),
		DirectPermissions: protoPermissions(set.DirectPermissions),
		RolePermissions:   protoPermissions(set.RolePermissions),
	}, nil
}

// --- Role / operator lookups ---

func (s *Server) GetRole(ctx context.Context, req *authv1.GetRoleRequest) (*authv1.GetRoleResponse, error) {
	role, err := s.reader.GetRole(ctx, req.Id)
	if err != nil {
		return nil, rpcError("GetRole", err)
	}
	return &authv1.GetRoleResponse{Role: protoRole(role)}, nil
}

func (s *Server) GetRolesByOperator(ctx context.Context, req *authv1.GetRolesByOperatorRequest) (*authv1.GetRolesByOperatorResponse, error) {
	roles, err := s.reader.GetRolesByOperator(ctx, req.OperatorId)
	if err != nil {
		return nil, rpcError("GetRolesByOperator", err)
	}
	out := make([]*authv1.Role, 0, len(roles))
	for i := range roles {
		out = append(out, protoRole(&roles[i]))
	}
	return &authv1.GetRolesByOperatorResponse{Roles: out}, nil
}

func (s *Server) GetOperator(ctx context.Context, req *authv1.GetOperatorRequest) (*authv1.GetOperatorResponse, error) {
	op, err := s.reader.GetOperator(ctx, req.Id)
	if err != nil {
		return nil, rpcError("GetOperator", err)
	}
	return &authv1.GetOperatorResponse{Operator: protoOperator(op)}, nil
}

func (s *Server) ValidateOperator(ctx context.Context, req *authv1.ValidateOperatorRequest) (*authv1.ValidateOperatorResponse, error) {
	v, err := s.reader.ValidateOperator(ctx, req.Id)
	if err != nil {
		return nil, rpcError("ValidateOperator", err)
	}
	return &authv1.ValidateOperatorResponse{
		Valid:   v.Valid,
		Status:  operatorStatusToProto[v.Status],
		Message: v.Message,
	}, nil
}

// --- Sanctions ---

func (s *Server) CheckSanction(ctx context.Context, req *authv1.CheckSanctionRequest) (*authv1.CheckSanctionResponse, error) {
	subjectType, ok := subjectTypeFromProto[req.SubjectType]
	if req.SubjectId == "" || !ok {
		return nil, status.Error(codes.InvalidArgument, "subject id and subject type are required")
	}
	verdict, err := s.sanctions.Check(ctx, req.SubjectId, subjectType, sanctionTypeFromProto[req.SanctionType])
	if err != nil {
		return nil, rpcError("CheckSanction", err)
	}
	return &authv1.CheckSanctionResponse{
		IsSanctioned:    verdict.Sanctioned,
		ActiveSanctions: protoSanctions(verdict.Active),
		HighestSeverity: sanctionSeverityToProto[verdict.HighestSeverity],
	}, nil
}

func (s *Server) GetActiveSanctions(ctx context.Context, req *authv1.GetActiveSanctionsRequest) (*authv1.GetActiveSanctionsResponse, error) {
	subjectType, ok := subjectTypeFromProto[req.SubjectType]
	if req.SubjectId == "" || !ok {
		return nil, status.Error(codes.InvalidArgument, "subject id and subject type are required")
	}
	verdict, total, err := s.sanctions.ActiveSanctions(ctx, req.SubjectId, subjectType)
	if err != nil {
		return nil, rpcError("GetActiveSanctions", err)
	}
	return &authv1.GetActiveSanctionsResponse{
		Sanctions:       protoSanctions(verdict.Active),
		TotalCount:      int32(total),
		HighestSeverity: sanctionSeverityToProto[verdict.HighestSeverity],
	}, nil
}

// --- Admin authentication ---

func loginTokens(r *adminauth.LoginResult) *authv1.TokenPair {
	if !r.Success {
		return nil
	}
	return &authv1.TokenPair{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresIn:    r.ExpiresIn,
	}
}

func (s *Server) AdminLogin(ctx context.Context, req *authv1.AdminLoginRequest) (*authv1.AdminLoginResponse, error) {
	res, err := s.admins.Login(ctx, adminauth.LoginInput{
		Email:       req.Email,
		Password:    req.Password,
		IP:          req.IpAddress,
		UserAgent:   req.UserAgent,
		Fingerprint: req.DeviceFingerprint,
	})
	if err != nil {
		return nil, rpcError("AdminLogin", err)
	}
	return &authv1.AdminLoginResponse{
		Success:             res.Success,
		Message:             res.Message,
		MfaRequired:         res.MfaRequired,
		ChallengeId:         res.ChallengeID,
		AvailableMethods:    res.AvailableMethods,
		Tokens:              loginTokens(res),
		LockedUntil:         tsPtr(res.LockedUntil),
		ForcePasswordChange: res.ForcePasswordChange,
	}, nil
}

func (s *Server) AdminLoginMfa(ctx context.Context, req *authv1.AdminLoginMfaRequest) (*authv1.AdminLoginMfaResponse, error) {
	res, err := s.admins.VerifyMfa(ctx, adminauth.MfaInput{
		ChallengeID: req.ChallengeId,
		Code:        req.Code,
		Method:      req.Method,
		IP:          req.IpAddress,
		UserAgent:   req.UserAgent,
		Fingerprint: req.DeviceFingerprint,
	})
	if err != nil {
		return nil, rpcError("AdminLoginMfa", err)
	}
	return &authv1.AdminLoginMfaResponse{
		Success: res.Success,
		Message: res.Message,
		Tokens:  loginTokens(res),
	}, nil
}

// --- Admin sessions ---

func (s *Server) AdminValidateSession(ctx context.Context, req *authv1.AdminValidateSessionRequest) (*authv1.AdminValidateSessionResponse, error) {
	sess, claims, err := s.sessions.Validate(ctx, req.AccessToken)
	if err != nil {
		if isSessionRejection(err) {
			return &authv1.AdminValidateSessionResponse{Valid: false, Message: "Invalid or expired session"}, nil
		}
		return nil, rpcError("AdminValidateSession", err)
	}
	return &authv1.AdminValidateSessionResponse{
		Valid:       true,
		AdminId:     sess.AdminID,
		Email:       claims.Email,
		RoleId:      claims.RoleID,
		MfaVerified: sess.MfaVerified,
	}, nil
}

func (s *Server) AdminRefreshSession(ctx context.Context, req *authv1.AdminRefreshSessionRequest) (*authv1.AdminRefreshSessionResponse, error) {
	_, pair, err := s.sessions.Refresh(ctx, req.RefreshToken)
	if err != nil {
		if isSessionRejection(err) {
			return &authv1.AdminRefreshSessionResponse{Success: false, Message: "Invalid refresh token"}, nil
		}
		return nil, rpcError("AdminRefreshSession", err)
	}
	return &authv1.AdminRefreshSessionResponse{
		Success: true,
		Tokens: &authv1.TokenPair{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			ExpiresIn:    int64(time.Until(pair.AccessExpiresAt).Seconds()),
		},
	}, nil
}

// isSessionRejection separates credential problems, answered softly,
// from infrastructure failures, which stay hard errors.
func isSessionRejection(err error) bool {
	return errors.Is(err, session.ErrInvalidToken) ||
		errors.Is(err, session.ErrExpired) ||
		errors.Is(err, session.ErrRevoked) ||
		errors.Is(err, session.ErrNotFound)
}

func (s *Server) AdminLogout(ctx context.Context, req *authv1.AdminLogoutRequest) (*authv1.StatusResponse, error) {
	if err := s.sessions.Revoke(ctx, req.SessionId); err != nil {
		return nil, rpcError("AdminLogout", err)
	}
	return &authv1.StatusResponse{Success: true, Message: "Session revoked"}, nil
}

func (s *Server) AdminRevokeAllSessions(ctx context.Context, req *authv1.AdminRevokeAllSessionsRequest) (*authv1.StatusResponse, error) {
	if err := s.sessions.RevokeAll(ctx, req.AdminId); err != nil {
		return nil, rpcError("AdminRevokeAllSessions", err)
	}
	return &authv1.StatusResponse{Success: true, Message: "All sessions revoked"}, nil
}

func (s *Server) AdminGetActiveSessions(ctx context.Context, req *authv1.AdminGetActiveSessionsRequest) (*authv1.AdminGetActiveSessionsResponse, error) {
	list, err := s.sessions.List(ctx, req.AdminId)
	if err != nil {
		return nil, rpcError("AdminGetActiveSessions", err)
	}
	out := make([]*authv1.SessionInfo, 0, len(list))
	for _, sess := range list {
		out = append(out, protoSessionInfo(sess))
	}
	return &authv1.AdminGetActiveSessionsResponse{Sessions: out}, nil
}

// --- Admin MFA management ---

func (s *Server) AdminSetupMfa(ctx context.Context, req *authv1.AdminSetupMfaRequest) (*authv1.AdminSetupMfaResponse, error) {
	admin, err := s.admins.Admin(ctx, req.AdminId)
	if err != nil {
		return nil, rpcError("AdminSetupMfa", err)
	}
	enrollment, err := s.mfa.Setup(ctx, admin.ID, admin.Email)
	if err != nil {
		return nil, rpcError("AdminSetupMfa", err)
	}
	return &authv1.AdminSetupMfaResponse{
		Secret:      enrollment.Secret,
		OtpauthUrl:  enrollment.OtpauthURL,
		BackupCodes: enrollment.BackupCodes,
	}, nil
}

func (s *Server) AdminVerifyMfa(ctx context.Context, req *authv1.AdminVerifyMfaRequest) (*authv1.StatusResponse, error) {
	if err := s.mfa.VerifySetup(ctx, req.AdminId, req.Code); err != nil {
		if errors.Is(err, mfa.ErrInvalidInput) {
			return &authv1.StatusResponse{Success: false, Message: "Invalid verification code"}, nil
		}
		return nil, rpcError("AdminVerifyMfa", err)
	}
	return &authv1.StatusResponse{Success: true, Message: "MFA enabled"}, nil
}

func (s *Server) AdminDisableMfa(ctx context.Context, req *authv1.AdminDisableMfaRequest) (*authv1.StatusResponse, error) {
	if err := s.admins.Reauthenticate(ctx, req.AdminId, req.Password); err != nil {
		return nil, rpcError("AdminDisableMfa", err)
	}
	if err := s.mfa.Disable(ctx, req.AdminId); err != nil {
		return nil, rpcError("AdminDisableMfa", err)
	}
	return &authv1.StatusResponse{Success: true, Message: "MFA disabled"}, nil
}

func (s *Server) AdminRegenerateBackupCodes(ctx context.Context, req *authv1.AdminRegenerateBackupCodesRequest) (*authv1.AdminRegenerateBackupCodesResponse, error) {
	if err := s.admins.Reauthenticate(ctx, req.AdminId, req.Password); err != nil {
		return nil, rpcError("AdminRegenerateBackupCodes", err)
	}
	backupCodes, err := s.mfa.RegenerateBackupCodes(ctx, req.AdminId)
	if err != nil {
		return nil, rpcError("AdminRegenerateBackupCodes", err)
	}
	return &authv1.AdminRegenerateBackupCodesResponse{BackupCodes: backupCodes}, nil
}

// --- Operator assignments ---

func (s *Server) AssignOperator(ctx context.Context, req *authv1.AssignOperatorRequest) (*authv1.AssignOperatorResponse, error) {
	a, err := s.assignments.Assign(ctx, assignment.AssignInput{
		AccountID:     req.AccountId,
		ServiceCode:   req.ServiceCode,
		CountryCode:   req.CountryCode,
		PermissionIDs: req.Permissions,
		AssignedBy:    req.AssignedBy,
	})
	if err != nil {
		return nil, rpcError("AssignOperator", err)
	}
	return &authv1.AssignOperatorResponse{Assignment: protoAssignment(a)}, nil
}

func (s *Server) RevokeOperatorAssignment(ctx context.Context, req *authv1.RevokeOperatorAssignmentRequest) (*authv1.StatusResponse, error) {
	if err := s.assignments.Revoke(ctx, req.AssignmentId, req.Reason, req.RevokedBy); err != nil {
		return nil, rpcError("RevokeOperatorAssignment", err)
	}
	return &authv1.StatusResponse{Success: true, Message: "Assignment revoked"}, nil
}

func (s *Server) GetOperatorAssignment(ctx context.Context, req *authv1.GetOperatorAssignmentRequest) (*authv1.GetOperatorAssignmentResponse, error) {
	a, err := s.assignments.Get(ctx, req.AssignmentId)
	if err != nil {
		return nil, rpcError("GetOperatorAssignment", err)
	}
	return &authv1.GetOperatorAssignmentResponse{Assignment: protoAssignment(a)}, nil
}

func (s *Server) GetServiceOperatorAssignments(ctx context.Context, req *authv1.GetServiceOperatorAssignmentsRequest) (*authv1.GetServiceOperatorAssignmentsResponse, error) {
	list, err := s.assignments.ListByService(ctx, req.ServiceCode, req.CountryCode)
	if err != nil {
		return nil, rpcError("GetServiceOperatorAssignments", err)
	}
	out := make([]*authv1.OperatorAssignment, 0, len(list))
	for _, a := range list {
		out = append(out, protoAssignment(a))
	}
	return &authv1.GetServiceOperatorAssignmentsResponse{Assignments: out, TotalCount: int32(len(out))}, nil
}

func (s *Server) UpdateOperatorAssignmentPermissions(ctx context.Context, req *authv1.UpdateOperatorAssignmentPermissionsRequest) (*authv1.GetOperatorAssignmentResponse, error) {
	a, err := s.assignments.UpdatePermissions(ctx, req.AssignmentId, req.Permissions)
	if err != nil {
		return nil, rpcError("UpdateOperatorAssignmentPermissions", err)
	}
	return &authv1.GetOperatorAssignmentResponse{Assignment: protoAssignment(a)}, nil
}
