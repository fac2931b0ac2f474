package authv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "authgrid.v1.AuthService"

// AuthServiceClient is the client API for the AuthService.
type AuthServiceClient interface {
	CheckPermission(ctx context.Context, in *CheckPermissionRequest, opts ...grpc.CallOption) (*CheckPermissionResponse, error)
	CheckPermissions(ctx context.Context, in *CheckPermissionsRequest, opts ...grpc.CallOption) (*CheckPermissionsResponse, error)
	GetOperatorPermissions(ctx context.Context, in *GetOperatorPermissionsRequest, opts ...grpc.CallOption) (*GetOperatorPermissionsResponse, error)
	GetRole(ctx context.Context, in *GetRoleRequest, opts ...grpc.CallOption) (*GetRoleResponse, error)
	GetRolesByOperator(ctx context.Context, in *GetRolesByOperatorRequest, opts ...grpc.CallOption) (*GetRolesByOperatorResponse, error)
	GetOperator(ctx context.Context, in *GetOperatorRequest, opts ...grpc.CallOption) (*GetOperatorResponse, error)
	ValidateOperator(ctx context.Context, in *ValidateOperatorRequest, opts ...grpc.CallOption) (*ValidateOperatorResponse, error)
	CheckSanction(ctx context.Context, in *CheckSanctionRequest, opts ...grpc.CallOption) (*CheckSanctionResponse, error)
	GetActiveSanctions(ctx context.Context, in *GetActiveSanctionsRequest, opts ...grpc.CallOption) (*GetActiveSanctionsResponse, error)
	AdminLogin(ctx context.Context, in *AdminLoginRequest, opts ...grpc.CallOption) (*AdminLoginResponse, error)
	AdminLoginMfa(ctx context.Context, in *AdminLoginMfaRequest, opts ...grpc.CallOption) (*AdminLoginMfaResponse, error)
	AdminValidateSession(ctx context.Context, in *AdminValidateSessionRequest, opts ...grpc.CallOption) (*AdminValidateSessionResponse, error)
	AdminRefreshSession(ctx context.Context, in *AdminRefreshSessionRequest, opts ...grpc.CallOption) (*AdminRefreshSessionResponse, error)
	AdminLogout(ctx context.Context, in *AdminLogoutRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	AdminRevokeAllSessions(ctx context.Context, in *AdminRevokeAllSessionsRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	AdminGetActiveSessions(ctx context.Context, in *AdminGetActiveSessionsRequest, opts ...grpc.CallOption) (*AdminGetActiveSessionsResponse, error)
	AdminSetupMfa(ctx context.Context, in *AdminSetupMfaRequest, opts ...grpc.CallOption) (*AdminSetupMfaResponse, error)
	AdminVerifyMfa(ctx context.Context, in *AdminVerifyMfaRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	AdminDisableMfa(ctx context.Context, in *AdminDisableMfaRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	AdminRegenerateBackupCodes(ctx context.Context, in *AdminRegenerateBackupCodesRequest, opts ...grpc.CallOption) (*AdminRegenerateBackupCodesResponse, error)
	AssignOperator(ctx context.Context, in *AssignOperatorRequest, opts ...grpc.CallOption) (*AssignOperatorResponse, error)
	RevokeOperatorAssignment(ctx context.Context, in *RevokeOperatorAssignmentRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	GetOperatorAssignment(ctx context.Context, in *GetOperatorAssignmentRequest, opts ...grpc.CallOption) (*GetOperatorAssignmentResponse, error)
	GetServiceOperatorAssignments(ctx context.Context, in *GetServiceOperatorAssignmentsRequest, opts ...grpc.CallOption) (*GetServiceOperatorAssignmentsResponse, error)
	UpdateOperatorAssignmentPermissions(ctx context.Context, in *UpdateOperatorAssignmentPermissionsRequest, opts ...grpc.CallOption) (*GetOperatorAssignmentResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAuthServiceClient wraps a client connection.
func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc: cc}
}

func invoke[T any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*T, error) {
	out := new(T)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) CheckPermission(ctx context.Context, in *CheckPermissionRequest, opts ...grpc.CallOption) (*CheckPermissionResponse, error) {
	return invoke[CheckPermissionResponse](ctx, c.cc, "CheckPermission", in, opts)
}

func (c *authServiceClient) CheckPermissions(ctx context.Context, in *CheckPermissionsRequest, opts ...grpc.CallOption) (*CheckPermissionsResponse, error) {
	return invoke[CheckPermissionsResponse](ctx, c.cc, "CheckPermissions", in, opts)
}

func (c *authServiceClient) GetOperatorPermissions(ctx context.Context, in *GetOperatorPermissionsRequest, opts ...grpc.CallOption) (*GetOperatorPermissionsResponse, error) {
	return invoke[GetOperatorPermissionsResponse](ctx, c.cc, "GetOperatorPermissions", in, opts)
}

func (c *authServiceClient) GetRole(ctx context.Context, in *GetRoleRequest, opts ...grpc.CallOption) (*GetRoleResponse, error) {
	return invoke[GetRoleResponse](ctx, c.cc, "GetRole", in, opts)
}

func (c *authServiceClient) GetRolesByOperator(ctx context.Context, in *GetRolesByOperatorRequest, opts ...grpc.CallOption) (*GetRolesByOperatorResponse, error) {
	return invoke[GetRolesByOperatorResponse](ctx, c.cc, "GetRolesByOperator", in, opts)
}

func (c *authServiceClient) GetOperator(ctx context.Context, in *GetOperatorRequest, opts ...grpc.CallOption) (*GetOperatorResponse, error) {
	return invoke[GetOperatorResponse](ctx, c.cc, "GetOperator", in, opts)
}

func (c *authServiceClient) ValidateOperator(ctx context.Context, in *ValidateOperatorRequest, opts ...grpc.CallOption) (*ValidateOperatorResponse, error) {
	return invoke[ValidateOperatorResponse](ctx, c.cc, "ValidateOperator", in, opts)
}

func (c *authServiceClient) CheckSanction(ctx context.Context, in *CheckSanctionRequest, opts ...grpc.CallOption) (*CheckSanctionResponse, error) {
	return invoke[CheckSanctionResponse](ctx, c.cc, "CheckSanction", in, opts)
}

func (c *authServiceClient) GetActiveSanctions(ctx context.Context, in *GetActiveSanctionsRequest, opts ...grpc.CallOption) (*GetActiveSanctionsResponse, error) {
	return invoke[GetActiveSanctionsResponse](ctx, c.cc, "GetActiveSanctions", in, opts)
}

func (c *authServiceClient) AdminLogin(ctx context.Context, in *AdminLoginRequest, opts ...grpc.CallOption) (*AdminLoginResponse, error) {
	return invoke[AdminLoginResponse](ctx, c.cc, "AdminLogin", in, opts)
}

func (c *authServiceClient) AdminLoginMfa(ctx context.Context, in *AdminLoginMfaRequest, opts ...grpc.CallOption) (*AdminLoginMfaResponse, error) {
	return invoke[AdminLoginMfaResponse](ctx, c.cc, "AdminLoginMfa", in, opts)
}

func (c *authServiceClient) AdminValidateSession(ctx context.Context, in *AdminValidateSessionRequest, opts ...grpc.CallOption) (*AdminValidateSessionResponse, error) {
	return invoke[AdminValidateSessionResponse](ctx, c.cc, "AdminValidateSession", in, opts)
}

func (c *authServiceClient) AdminRefreshSession(ctx context.Context, in *AdminRefreshSessionRequest, opts ...grpc.CallOption) (*AdminRefreshSessionResponse, error) {
	return invoke[AdminRefreshSessionResponse](ctx, c.cc, "AdminRefreshSession", in, opts)
}

func (c *authServiceClient) AdminLogout(ctx context.Context, in *AdminLogoutRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, "AdminLogout", in, opts)
}

func (c *authServiceClient) AdminRevokeAllSessions(ctx context.Context, in *AdminRevokeAllSessionsRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, "AdminRevokeAllSessions", in, opts)
}

func (c *authServiceClient) AdminGetActiveSessions(ctx context.Context, in *AdminGetActiveSessionsRequest, opts ...grpc.CallOption) (*AdminGetActiveSessionsResponse, error) {
	return invoke[AdminGetActiveSessionsResponse](ctx, c.cc, "AdminGetActiveSessions", in, opts)
}

func (c *authServiceClient) AdminSetupMfa(ctx context.Context, in *AdminSetupMfaRequest, opts ...grpc.CallOption) (*AdminSetupMfaResponse, error) {
	return invoke[AdminSetupMfaResponse](ctx, c.cc, "AdminSetupMfa", in, opts)
}

func (c *authServiceClient) AdminVerifyMfa(ctx context.Context, in *AdminVerifyMfaRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, "AdminVerifyMfa", in, opts)
}

func (c *authServiceClient) AdminDisableMfa(ctx context.Context, in *AdminDisableMfaRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, "AdminDisableMfa", in, opts)
}

func (c *authServiceClient) AdminRegenerateBackupCodes(ctx context.Context, in *AdminRegenerateBackupCodesRequest, opts ...grpc.CallOption) (*AdminRegenerateBackupCodesResponse, error) {
	return invoke[AdminRegenerateBackupCodesResponse](ctx, c.cc, "AdminRegenerateBackupCodes", in, opts)
}

func (c *authServiceClient) AssignOperator(ctx context.Context, in *AssignOperatorRequest, opts ...grpc.CallOption) (*AssignOperatorResponse, error) {
	return invoke[AssignOperatorResponse](ctx, c.cc, "AssignOperator", in, opts)
}

func (c *authServiceClient) RevokeOperatorAssignment(ctx context.Context, in *RevokeOperatorAssignmentRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, "RevokeOperatorAssignment", in, opts)
}

func (c *authServiceClient) GetOperatorAssignment(ctx context.Context, in *GetOperatorAssignmentRequest, opts ...grpc.CallOption) (*GetOperatorAssignmentResponse, error) {
	return invoke[GetOperatorAssignmentResponse](ctx, c.cc, "GetOperatorAssignment", in, opts)
}

func (c *authServiceClient) GetServiceOperatorAssignments(ctx context.Context, in *GetServiceOperatorAssignmentsRequest, opts ...grpc.CallOption) (*GetServiceOperatorAssignmentsResponse, error) {
	return invoke[GetServiceOperatorAssignmentsResponse](ctx, c.cc, "GetServiceOperatorAssignments", in, opts)
}

func (c *authServiceClient) UpdateOperatorAssignmentPermissions(ctx context.Context, in *UpdateOperatorAssignmentPermissionsRequest, opts ...grpc.CallOption) (*GetOperatorAssignmentResponse, error) {
	return invoke[GetOperatorAssignmentResponse](ctx, c.cc, "UpdateOperatorAssignmentPermissions", in, opts)
}

// AuthServiceServer is the server API for the AuthService.
type AuthServiceServer interface {
	CheckPermission(context.Context, *CheckPermissionRequest) (*CheckPermissionResponse, error)
	CheckPermissions(context.Context, *CheckPermissionsRequest) (*CheckPermissionsResponse, error)
	GetOperatorPermissions(context.Context, *GetOperatorPermissionsRequest) (*GetOperatorPermissionsResponse, error)
	GetRole(context.Context, *GetRoleRequest) (*GetRoleResponse, error)
	GetRolesByOperator(context.Context, *GetRolesByOperatorRequest) (*GetRolesByOperatorResponse, error)
	GetOperator(context.Context, *GetOperatorRequest) (*GetOperatorResponse, error)
	ValidateOperator(context.Context, *ValidateOperatorRequest) (*ValidateOperatorResponse, error)
	CheckSanction(context.Context, *CheckSanctionRequest) (*CheckSanctionResponse, error)
	GetActiveSanctions(context.Context, *GetActiveSanctionsRequest) (*GetActiveSanctionsResponse, error)
	AdminLogin(context.Context, *AdminLoginRequest) (*AdminLoginResponse, error)
	AdminLoginMfa(context.Context, *AdminLoginMfaRequest) (*AdminLoginMfaResponse, error)
	AdminValidateSession(context.Context, *AdminValidateSessionRequest) (*AdminValidateSessionResponse, error)
	AdminRefreshSession(context.Context, *AdminRefreshSessionRequest) (*AdminRefreshSessionResponse, error)
	AdminLogout(context.Context, *AdminLogoutRequest) (*StatusResponse, error)
	AdminRevokeAllSessions(context.Context, *AdminRevokeAllSessionsRequest) (*StatusResponse, error)
	AdminGetActiveSessions(context.Context, *AdminGetActiveSessionsRequest) (*AdminGetActiveSessionsResponse, error)
	AdminSetupMfa(context.Context, *AdminSetupMfaRequest) (*AdminSetupMfaResponse, error)
	AdminVerifyMfa(context.Context, *AdminVerifyMfaRequest) (*StatusResponse, error)
	AdminDisableMfa(context.Context, *AdminDisableMfaRequest) (*StatusResponse, error)
	AdminRegenerateBackupCodes(context.Context, *AdminRegenerateBackupCodesRequest) (*AdminRegenerateBackupCodesResponse, error)
	AssignOperator(context.Context, *AssignOperatorRequest) (*AssignOperatorResponse, error)
	RevokeOperatorAssignment(context.Context, *RevokeOperatorAssignmentRequest) (*StatusResponse, error)
	GetOperatorAssignment(context.Context, *GetOperatorAssignmentRequest) (*GetOperatorAssignmentResponse, error)
	GetServiceOperatorAssignments(context.Context, *GetServiceOperatorAssignmentsRequest) (*GetServiceOperatorAssignmentsResponse, error)
	UpdateOperatorAssignmentPermissions(context.Context, *UpdateOperatorAssignmentPermissionsRequest) (*GetOperatorAssignmentResponse, error)
}

// UnimplementedAuthServiceServer can be embedded for forward compatibility.
type UnimplementedAuthServiceServer struct{}

func errUnimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedAuthServiceServer) CheckPermission(context.Context, *CheckPermissionRequest) (*CheckPermissionResponse, error) {
	return nil, errUnimplemented("CheckPermission")
}

func (UnimplementedAuthServiceServer) CheckPermissions(context.Context, *CheckPermissionsRequest) (*CheckPermissionsResponse, error) {
	return nil, errUnimplemented("CheckPermissions")
}

func (UnimplementedAuthServiceServer) GetOperatorPermissions(context.Context, *GetOperatorPermissionsRequest) (*GetOperatorPermissionsResponse, error) {
	return nil, errUnimplemented("GetOperatorPermissions")
}

func (UnimplementedAuthServiceServer) GetRole(context.Context, *GetRoleRequest) (*GetRoleResponse, error) {
	return nil, errUnimplemented("GetRole")
}

func (UnimplementedAuthServiceServer) GetRolesByOperator(context.Context, *GetRolesByOperatorRequest) (*GetRolesByOperatorResponse, error) {
	return nil, errUnimplemented("GetRolesByOperator")
}

func (UnimplementedAuthServiceServer) GetOperator(context.Context, *GetOperatorRequest) (*GetOperatorResponse, error) {
	return nil, errUnimplemented("GetOperator")
}

func (UnimplementedAuthServiceServer) ValidateOperator(context.Context, *ValidateOperatorRequest) (*ValidateOperatorResponse, error) {
	return nil, errUnimplemented("ValidateOperator")
}

func (UnimplementedAuthServiceServer) CheckSanction(context.Context, *CheckSanctionRequest) (*CheckSanctionResponse, error) {
	return nil, errUnimplemented("CheckSanction")
}

func (UnimplementedAuthServiceServer) GetActiveSanctions(context.Context, *GetActiveSanctionsRequest) (*GetActiveSanctionsResponse, error) {
	return nil, errUnimplemented("GetActiveSanctions")
}

func (UnimplementedAuthServiceServer) AdminLogin(context.Context, *AdminLoginRequest) (*AdminLoginResponse, error) {
	return nil, errUnimplemented("AdminLogin")
}

func (UnimplementedAuthServiceServer) AdminLoginMfa(context.Context, *AdminLoginMfaRequest) (*AdminLoginMfaResponse, error) {
	return nil, errUnimplemented("AdminLoginMfa")
}

func (UnimplementedAuthServiceServer) AdminValidateSession(context.Context, *AdminValidateSessionRequest) (*AdminValidateSessionResponse, error) {
	return nil, errUnimplemented("AdminValidateSession")
}

func (UnimplementedAuthServiceServer) AdminRefreshSession(context.Context, *AdminRefreshSessionRequest) (*AdminRefreshSessionResponse, error) {
	return nil, errUnimplemented("AdminRefreshSession")
}

func (UnimplementedAuthServiceServer) AdminLogout(context.Context, *AdminLogoutRequest) (*StatusResponse, error) {
	return nil, errUnimplemented("AdminLogout")
}

func (UnimplementedAuthServiceServer) AdminRevokeAllSessions(context.Context, *AdminRevokeAllSessionsRequest) (*StatusResponse, error) {
	return nil, errUnimplemented("AdminRevokeAllSessions")
}

func (UnimplementedAuthServiceServer) AdminGetActiveSessions(context.Context, *AdminGetActiveSessionsRequest) (*AdminGetActiveSessionsResponse, error) {
	return nil, errUnimplemented("AdminGetActiveSessions")
}

func (UnimplementedAuthServiceServer) AdminSetupMfa(context.Context, *AdminSetupMfaRequest) (*AdminSetupMfaResponse, error) {
	return nil, errUnimplemented("AdminSetupMfa")
}

func (UnimplementedAuthServiceServer) AdminVerifyMfa(context.Context, *AdminVerifyMfaRequest) (*StatusResponse, error) {
	return nil, errUnimplemented("AdminVerifyMfa")
}

func (UnimplementedAuthServiceServer) AdminDisableMfa(context.Context, *AdminDisableMfaRequest) (*StatusResponse, error) {
	return nil, errUnimplemented("AdminDisableMfa")
}

func (UnimplementedAuthServiceServer) AdminRegenerateBackupCodes(context.Context, *AdminRegenerateBackupCodesRequest) (*AdminRegenerateBackupCodesResponse, error) {
	return nil, errUnimplemented("AdminRegenerateBackupCodes")
}

func (UnimplementedAuthServiceServer) AssignOperator(context.Context, *AssignOperatorRequest) (*AssignOperatorResponse, error) {
	return nil, errUnimplemented("AssignOperator")
}

func (UnimplementedAuthServiceServer) RevokeOperatorAssignment(context.Context, *RevokeOperatorAssignmentRequest) (*StatusResponse, error) {
	return nil, errUnimplemented("RevokeOperatorAssignment")
}

func (UnimplementedAuthServiceServer) GetOperatorAssignment(context.Context, *GetOperatorAssignmentRequest) (*GetOperatorAssignmentResponse, error) {
	return nil, errUnimplemented("GetOperatorAssignment")
}

func (UnimplementedAuthServiceServer) GetServiceOperatorAssignments(context.Context, *GetServiceOperatorAssignmentsRequest) (*GetServiceOperatorAssignmentsResponse, error) {
	return nil, errUnimplemented("GetServiceOperatorAssignments")
}

func (UnimplementedAuthServiceServer) UpdateOperatorAssignmentPermissions(context.Context, *UpdateOperatorAssignmentPermissionsRequest) (*GetOperatorAssignmentResponse, error) {
	return nil, errUnimplemented("UpdateOperatorAssignmentPermissions")
}

// RegisterAuthServiceServer registers srv on the given registrar.
func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](
	method string,
	call func(AuthServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AuthServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + method,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(AuthServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// AuthService_ServiceDesc is the grpc.ServiceDesc for the AuthService.
var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("CheckPermission", AuthServiceServer.CheckPermission),
		unaryHandler("CheckPermissions", AuthServiceServer.CheckPermissions),
		unaryHandler("GetOperatorPermissions", AuthServiceServer.GetOperatorPermissions),
		unaryHandler("GetRole", AuthServiceServer.GetRole),
		unaryHandler("GetRolesByOperator", AuthServiceServer.GetRolesByOperator),
		unaryHandler("GetOperator", AuthServiceServer.GetOperator),
		unaryHandler("ValidateOperator", AuthServiceServer.ValidateOperator),
		unaryHandler("CheckSanction", AuthServiceServer.CheckSanction),
		unaryHandler("GetActiveSanctions", AuthServiceServer.GetActiveSanctions),
		unaryHandler("AdminLogin", AuthServiceServer.AdminLogin),
		unaryHandler("AdminLoginMfa", AuthServiceServer.AdminLoginMfa),
		unaryHandler("AdminValidateSession", AuthServiceServer.AdminValidateSession),
		unaryHandler("AdminRefreshSession", AuthServiceServer.AdminRefreshSession),
		unaryHandler("AdminLogout", AuthServiceServer.AdminLogout),
		unaryHandler("AdminRevokeAllSessions", AuthServiceServer.AdminRevokeAllSessions),
		unaryHandler("AdminGetActiveSessions", AuthServiceServer.AdminGetActiveSessions),
		unaryHandler("AdminSetupMfa", AuthServiceServer.AdminSetupMfa),
		unaryHandler("AdminVerifyMfa", AuthServiceServer.AdminVerifyMfa),
		unaryHandler("AdminDisableMfa", AuthServiceServer.AdminDisableMfa),
		unaryHandler("AdminRegenerateBackupCodes", AuthServiceServer.AdminRegenerateBackupCodes),
		unaryHandler("AssignOperator", AuthServiceServer.AssignOperator),
		unaryHandler("RevokeOperatorAssignment", AuthServiceServer.RevokeOperatorAssignment),
		unaryHandler("GetOperatorAssignment", AuthServiceServer.GetOperatorAssignment),
		unaryHandler("GetServiceOperatorAssignments", AuthServiceServer.GetServiceOperatorAssignments),
		unaryHandler("UpdateOperatorAssignmentPermissions", AuthServiceServer.UpdateOperatorAssignmentPermissions),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/authv1",
}
