// Package authv1 holds hand-maintained protobuf bindings for the
// authgrid.v1.AuthService wire contract. Messages use legacy struct-tag
// encoding; the gRPC proto codec adapts them through the v1 compatibility
// layer, so field numbers and enum values here are the wire contract.
package authv1

import "fmt"

// Timestamp mirrors the proto (seconds, nanos) pair. A nil *Timestamp means
// the source date was absent, never a zero time.
type Timestamp struct {
	Seconds int64 `protobuf:"varint,1,opt,name=seconds,proto3" json:"seconds,omitempty"`
	Nanos   int32 `protobuf:"varint,2,opt,name=nanos,proto3" json:"nanos,omitempty"`
}

func (m *Timestamp) Reset()         { *m = Timestamp{} }
func (m *Timestamp) String() string { return fmt.Sprintf("%+v", *m) }
func (*Timestamp) ProtoMessage()    {}

// Permission ---------------------------------------------------------------

type Permission struct {
	Id          string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Resource    string `protobuf:"bytes,2,opt,name=resource,proto3" json:"resource,omitempty"`
	Action      string `protobuf:"bytes,3,opt,name=action,proto3" json:"action,omitempty"`
	Category    string `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Description string `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	IsSystem    bool   `protobuf:"varint,6,opt,name=is_system,json=isSystem,proto3" json:"is_system,omitempty"`
}

func (m *Permission) Reset()         { *m = Permission{} }
func (m *Permission) String() string { return fmt.Sprintf("%+v", *m) }
func (*Permission) ProtoMessage()    {}

type Role struct {
	Id          string        `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name        string        `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description string        `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Level       int32         `protobuf:"varint,4,opt,name=level,proto3" json:"level,omitempty"`
	Scope       RoleScope     `protobuf:"varint,5,opt,name=scope,proto3,enum=authgrid.v1.RoleScope" json:"scope,omitempty"`
	Permissions []*Permission `protobuf:"bytes,6,rep,name=permissions,proto3" json:"permissions,omitempty"`
	CreatedAt   *Timestamp    `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt   *Timestamp    `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *Role) Reset()         { *m = Role{} }
func (m *Role) String() string { return fmt.Sprintf("%+v", *m) }
func (*Role) ProtoMessage()    {}

type Operator struct {
	Id          string     `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AccountId   string     `protobuf:"bytes,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Email       string     `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Name        string     `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	IsActive    bool       `protobuf:"varint,5,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	RoleId      string     `protobuf:"bytes,6,opt,name=role_id,json=roleId,proto3" json:"role_id,omitempty"`
	Role        *Role      `protobuf:"bytes,7,opt,name=role,proto3" json:"role,omitempty"`
	LastLoginAt *Timestamp `protobuf:"bytes,8,opt,name=last_login_at,json=lastLoginAt,proto3" json:"last_login_at,omitempty"`
	CreatedAt   *Timestamp `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt   *Timestamp `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *Operator) Reset()         { *m = Operator{} }
func (m *Operator) String() string { return fmt.Sprintf("%+v", *m) }
func (*Operator) ProtoMessage()    {}

// Permission checks --------------------------------------------------------

type CheckPermissionRequest struct {
	OperatorId string `protobuf:"bytes,1,opt,name=operator_id,json=operatorId,proto3" json:"operator_id,omitempty"`
	Resource   string `protobuf:"bytes,2,opt,name=resource,proto3" json:"resource,omitempty"`
	Action     string `protobuf:"bytes,3,opt,name=action,proto3" json:"action,omitempty"`
}

func (m *CheckPermissionRequest) Reset()         { *m = CheckPermissionRequest{} }
func (m *CheckPermissionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CheckPermissionRequest) ProtoMessage()    {}

type CheckPermissionResponse struct {
	Allowed              bool     `protobuf:"varint,1,opt,name=allowed,proto3" json:"allowed,omitempty"`
	Reason               string   `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	MatchedPermissionIds []string `protobuf:"bytes,3,rep,name=matched_permission_ids,json=matchedPermissionIds,proto3" json:"matched_permission_ids,omitempty"`
}

func (m *CheckPermissionResponse) Reset()         { *m = CheckPermissionResponse{} }
func (m *CheckPermissionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CheckPermissionResponse) ProtoMessage()    {}

type PermissionCheck struct {
	Resource string `protobuf:"bytes,1,opt,name=resource,proto3" json:"resource,omitempty"`
	Action   string `protobuf:"bytes,2,opt,name=action,proto3" json:"action,omitempty"`
}

func (m *PermissionCheck) Reset()         { *m = PermissionCheck{} }
func (m *PermissionCheck) String() string { return fmt.Sprintf("%+v", *m) }
func (*PermissionCheck) ProtoMessage()    {}

type CheckPermissionsRequest struct {
	OperatorId string             `protobuf:"bytes,1,opt,name=operator_id,json=operatorId,proto3" json:"operator_id,omitempty"`
	Checks     []*PermissionCheck `protobuf:"bytes,2,rep,name=checks,proto3" json:"checks,omitempty"`
}

func (m *CheckPermissionsRequest) Reset()         { *m = CheckPermissionsRequest{} }
func (m *CheckPermissionsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CheckPermissionsRequest) ProtoMessage()    {}

type PermissionResult struct {
	Resource             string   `protobuf:"bytes,1,opt,name=resource,proto3" json:"resource,omitempty"`
	Action               string   `protobuf:"bytes,2,opt,name=action,proto3" json:"action,omitempty"`
	Allowed              bool     `protobuf:"varint,3,opt,name=allowed,proto3" json:"allowed,omitempty"`
	Reason               string   `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	MatchedPermissionIds []string `protobuf:"bytes,5,rep,name=matched_permission_ids,json=matchedPermissionIds,proto3" json:"matched_permission_ids,omitempty"`
}

func (m *PermissionResult) Reset()         { *m = PermissionResult{} }
func (m *PermissionResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*PermissionResult) ProtoMessage()    {}

type CheckPermissionsResponse struct {
	AllAllowed bool                `protobuf:"varint,1,opt,name=all_allowed,json=allAllowed,proto3" json:"all_allowed,omitempty"`
	Results    []*PermissionResult `protobuf:"bytes,2,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *CheckPermissionsResponse) Reset()         { *m = CheckPermissionsResponse{} }
func (m *CheckPermissionsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CheckPermissionsResponse) ProtoMessage()    {}

type GetOperatorPermissionsRequest struct {
	OperatorId             string `protobuf:"bytes,1,opt,name=operator_id,json=operatorId,proto3" json:"operator_id,omitempty"`
	IncludeRolePermissions bool   `protobuf:"varint,2,opt,name=include_role_permissions,json=includeRolePermissions,proto3" json:"include_role_permissions,omitempty"`
}

func (m *GetOperatorPermissionsRequest) Reset()         { *m = GetOperatorPermissionsRequest{} }
func (m *GetOperatorPermissionsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetOperatorPermissionsRequest) ProtoMessage()    {}

type GetOperatorPermissionsResponse struct {
	Permissions       []*Permission `protobuf:"bytes,1,rep,name=permissions,proto3" json:"permissions,omitempty"`
	DirectPermissions []*Permission `protobuf:"bytes,2,rep,name=direct_permissions,json=directPermissions,proto3" json:"direct_permissions,omitempty"`
	RolePermissions   []*Permission `protobuf:"bytes,3,rep,name=role_permissions,json=rolePermissions,proto3" json:"role_permissions,omitempty"`
}

func (m *GetOperatorPermissionsResponse) Reset()         { *m = GetOperatorPermissionsResponse{} }
func (m *GetOperatorPermissionsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetOperatorPermissionsResponse) ProtoMessage()    {}

// Role / operator lookups --------------------------------------------------

type GetRoleRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetRoleRequest) Reset()         { *m = GetRoleRequest{} }
func (m *GetRoleRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetRoleRequest) ProtoMessage()    {}

type GetRoleResponse struct {
	Role *Role `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"`
}

func (m *GetRoleResponse) Reset()         { *m = GetRoleResponse{} }
func (m *GetRoleResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetRoleResponse) ProtoMessage()    {}

type GetRolesByOperatorRequest struct {
	OperatorId string `protobuf:"bytes,1,opt,name=operator_id,json=operatorId,proto3" json:"operator_id,omitempty"`
}

func (m *GetRolesByOperatorRequest) Reset()         { *m = GetRolesByOperatorRequest{} }
func (m *GetRolesByOperatorRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetRolesByOperatorRequest) ProtoMessage()    {}

type GetRolesByOperatorResponse struct {
	Roles []*Role `protobuf:"bytes,1,rep,name=roles,proto3" json:"roles,omitempty"`
}

func (m *GetRolesByOperatorResponse) Reset()         { *m = GetRolesByOperatorResponse{} }
func (m *GetRolesByOperatorResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetRolesByOperatorResponse) ProtoMessage()    {}

type GetOperatorRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetOperatorRequest) Reset()         { *m = GetOperatorRequest{} }
func (m *GetOperatorRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetOperatorRequest) ProtoMessage()    {}

type GetOperatorResponse struct {
	Operator *Operator `protobuf:"bytes,1,opt,name=operator,proto3" json:"operator,omitempty"`
}

func (m *GetOperatorResponse) Reset()         { *m = GetOperatorResponse{} }
func (m *GetOperatorResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetOperatorResponse) ProtoMessage()    {}

type ValidateOperatorRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *ValidateOperatorRequest) Reset()         { *m = ValidateOperatorRequest{} }
func (m *ValidateOperatorRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ValidateOperatorRequest) ProtoMessage()    {}

type ValidateOperatorResponse struct {
	Valid   bool           `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	Status  OperatorStatus `protobuf:"varint,2,opt,name=status,proto3,enum=authgrid.v1.OperatorStatus" json:"status,omitempty"`
	Message string         `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *ValidateOperatorResponse) Reset()         { *m = ValidateOperatorResponse{} }
func (m *ValidateOperatorResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ValidateOperatorResponse) ProtoMessage()    {}

// Sanctions ----------------------------------------------------------------

type Sanction struct {
	Id          string           `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SubjectId   string           `protobuf:"bytes,2,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	SubjectType SubjectType      `protobuf:"varint,3,opt,name=subject_type,json=subjectType,proto3,enum=authgrid.v1.SubjectType" json:"subject_type,omitempty"`
	Type        SanctionType     `protobuf:"varint,4,opt,name=type,proto3,enum=authgrid.v1.SanctionType" json:"type,omitempty"`
	Severity    SanctionSeverity `protobuf:"varint,5,opt,name=severity,proto3,enum=authgrid.v1.SanctionSeverity" json:"severity,omitempty"`
	Status      SanctionStatus   `protobuf:"varint,6,opt,name=status,proto3,enum=authgrid.v1.SanctionStatus" json:"status,omitempty"`
	Reason      string           `protobuf:"bytes,7,opt,name=reason,proto3" json:"reason,omitempty"`
	Evidence    []string         `protobuf:"bytes,8,rep,name=evidence,proto3" json:"evidence,omitempty"`
	IssuedBy    string           `protobuf:"bytes,9,opt,name=issued_by,json=issuedBy,proto3" json:"issued_by,omitempty"`
	StartsAt    *Timestamp       `protobuf:"bytes,10,opt,name=starts_at,json=startsAt,proto3" json:"starts_at,omitempty"`
	EndsAt      *Timestamp       `protobuf:"bytes,11,opt,name=ends_at,json=endsAt,proto3" json:"ends_at,omitempty"`
}

func (m *Sanction) Reset()         { *m = Sanction{} }
func (m *Sanction) String() string { return fmt.Sprintf("%+v", *m) }
func (*Sanction) ProtoMessage()    {}

type CheckSanctionRequest struct {
	SubjectId    string       `protobuf:"bytes,1,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	SubjectType  SubjectType  `protobuf:"varint,2,opt,name=subject_type,json=subjectType,proto3,enum=authgrid.v1.SubjectType" json:"subject_type,omitempty"`
	SanctionType SanctionType `protobuf:"varint,3,opt,name=sanction_type,json=sanctionType,proto3,enum=authgrid.v1.SanctionType" json:"sanction_type,omitempty"`
}

func (m *CheckSanctionRequest) Reset()         { *m = CheckSanctionRequest{} }
func (m *CheckSanctionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CheckSanctionRequest) ProtoMessage()    {}

type CheckSanctionResponse struct {
	IsSanctioned    bool             `protobuf:"varint,1,opt,name=is_sanctioned,json=isSanctioned,proto3" json:"is_sanctioned,omitempty"`
	ActiveSanctions []*Sanction      `protobuf:"bytes,2,rep,name=active_sanctions,json=activeSanctions,proto3" json:"active_sanctions,omitempty"`
	HighestSeverity SanctionSeverity `protobuf:"varint,3,opt,name=highest_severity,json=highestSeverity,proto3,enum=authgrid.v1.SanctionSeverity" json:"highest_severity,omitempty"`
}

func (m *CheckSanctionResponse) Reset()         { *m = CheckSanctionResponse{} }
func (m *CheckSanctionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CheckSanctionResponse) ProtoMessage()    {}

type GetActiveSanctionsRequest struct {
	SubjectId   string      `protobuf:"bytes,1,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	SubjectType SubjectType `protobuf:"varint,2,opt,name=subject_type,json=subjectType,proto3,enum=authgrid.v1.SubjectType" json:"subject_type,omitempty"`
}

func (m *GetActiveSanctionsRequest) Reset()         { *m = GetActiveSanctionsRequest{} }
func (m *GetActiveSanctionsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetActiveSanctionsRequest) ProtoMessage()    {}

type GetActiveSanctionsResponse struct {
	Sanctions       []*Sanction      `protobuf:"bytes,1,rep,name=sanctions,proto3" json:"sanctions,omitempty"`
	TotalCount      int32            `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	HighestSeverity SanctionSeverity `protobuf:"varint,3,opt,name=highest_severity,json=highestSeverity,proto3,enum=authgrid.v1.SanctionSeverity" json:"highest_severity,omitempty"`
}

func (m *GetActiveSanctionsResponse) Reset()         { *m = GetActiveSanctionsResponse{} }
func (m *GetActiveSanctionsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetActiveSanctionsResponse) ProtoMessage()    {}

// Admin authentication -----------------------------------------------------

type TokenPair struct {
	AccessToken  string `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	RefreshToken string `protobuf:"bytes,2,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
	ExpiresIn    int64  `protobuf:"varint,3,opt,name=expires_in,json=expiresIn,proto3" json:"expires_in,omitempty"`
}

func (m *TokenPair) Reset()         { *m = TokenPair{} }
func (m *TokenPair) String() string { return fmt.Sprintf("%+v", *m) }
func (*TokenPair) ProtoMessage()    {}

type AdminLoginRequest struct {
	Email             string `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Password          string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	IpAddress         string `protobuf:"bytes,3,opt,name=ip_address,json=ipAddress,proto3" json:"ip_address,omitempty"`
	UserAgent         string `protobuf:"bytes,4,opt,name=user_agent,json=userAgent,proto3" json:"user_agent,omitempty"`
	DeviceFingerprint string `protobuf:"bytes,5,opt,name=device_fingerprint,json=deviceFingerprint,proto3" json:"device_fingerprint,omitempty"`
}

func (m *AdminLoginRequest) Reset()         { *m = AdminLoginRequest{} }
func (m *AdminLoginRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminLoginRequest) ProtoMessage()    {}

type AdminLoginResponse struct {
	Success             bool       `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message             string     `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	MfaRequired         bool       `protobuf:"varint,3,opt,name=mfa_required,json=mfaRequired,proto3" json:"mfa_required,omitempty"`
	ChallengeId         string     `protobuf:"bytes,4,opt,name=challenge_id,json=challengeId,proto3" json:"challenge_id,omitempty"`
	AvailableMethods    []string   `protobuf:"bytes,5,rep,name=available_methods,json=availableMethods,proto3" json:"available_methods,omitempty"`
	Tokens              *TokenPair `protobuf:"bytes,6,opt,name=tokens,proto3" json:"tokens,omitempty"`
	LockedUntil         *Timestamp `protobuf:"bytes,7,opt,name=locked_until,json=lockedUntil,proto3" json:"locked_until,omitempty"`
	ForcePasswordChange bool       `protobuf:"varint,8,opt,name=force_password_change,json=forcePasswordChange,proto3" json:"force_password_change,omitempty"`
}

func (m *AdminLoginResponse) Reset()         { *m = AdminLoginResponse{} }
func (m *AdminLoginResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminLoginResponse) ProtoMessage()    {}

type AdminLoginMfaRequest struct {
	ChallengeId       string `protobuf:"bytes,1,opt,name=challenge_id,json=challengeId,proto3" json:"challenge_id,omitempty"`
	Code              string `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Method            string `protobuf:"bytes,3,opt,name=method,proto3" json:"method,omitempty"`
	IpAddress         string `protobuf:"bytes,4,opt,name=ip_address,json=ipAddress,proto3" json:"ip_address,omitempty"`
	UserAgent         string `protobuf:"bytes,5,opt,name=user_agent,json=userAgent,proto3" json:"user_agent,omitempty"`
	DeviceFingerprint string `protobuf:"bytes,6,opt,name=device_fingerprint,json=deviceFingerprint,proto3" json:"device_fingerprint,omitempty"`
}

func (m *AdminLoginMfaRequest) Reset()         { *m = AdminLoginMfaRequest{} }
func (m *AdminLoginMfaRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminLoginMfaRequest) ProtoMessage()    {}

type AdminLoginMfaResponse struct {
	Success bool       `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string     `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Tokens  *TokenPair `protobuf:"bytes,3,opt,name=tokens,proto3" json:"tokens,omitempty"`
}

func (m *AdminLoginMfaResponse) Reset()         { *m = AdminLoginMfaResponse{} }
func (m *AdminLoginMfaResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminLoginMfaResponse) ProtoMessage()    {}

// Admin sessions -----------------------------------------------------------

type AdminValidateSessionRequest struct {
	AccessToken string `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
}

func (m *AdminValidateSessionRequest) Reset()         { *m = AdminValidateSessionRequest{} }
func (m *AdminValidateSessionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminValidateSessionRequest) ProtoMessage()    {}

type AdminValidateSessionResponse struct {
	Valid       bool   `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	AdminId     string `protobuf:"bytes,2,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
	Email       string `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	RoleId      string `protobuf:"bytes,4,opt,name=role_id,json=roleId,proto3" json:"role_id,omitempty"`
	MfaVerified bool   `protobuf:"varint,5,opt,name=mfa_verified,json=mfaVerified,proto3" json:"mfa_verified,omitempty"`
	Message     string `protobuf:"bytes,6,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *AdminValidateSessionResponse) Reset()         { *m = AdminValidateSessionResponse{} }
func (m *AdminValidateSessionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminValidateSessionResponse) ProtoMessage()    {}

type AdminRefreshSessionRequest struct {
	RefreshToken string `protobuf:"bytes,1,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
}

func (m *AdminRefreshSessionRequest) Reset()         { *m = AdminRefreshSessionRequest{} }
func (m *AdminRefreshSessionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminRefreshSessionRequest) ProtoMessage()    {}

type AdminRefreshSessionResponse struct {
	Success bool       `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string     `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Tokens  *TokenPair `protobuf:"bytes,3,opt,name=tokens,proto3" json:"tokens,omitempty"`
}

func (m *AdminRefreshSessionResponse) Reset()         { *m = AdminRefreshSessionResponse{} }
func (m *AdminRefreshSessionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminRefreshSessionResponse) ProtoMessage()    {}

type AdminLogoutRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (m *AdminLogoutRequest) Reset()         { *m = AdminLogoutRequest{} }
func (m *AdminLogoutRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminLogoutRequest) ProtoMessage()    {}

type AdminRevokeAllSessionsRequest struct {
	AdminId string `protobuf:"bytes,1,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
}

func (m *AdminRevokeAllSessionsRequest) Reset()         { *m = AdminRevokeAllSessionsRequest{} }
func (m *AdminRevokeAllSessionsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminRevokeAllSessionsRequest) ProtoMessage()    {}

type AdminGetActiveSessionsRequest struct {
	AdminId string `protobuf:"bytes,1,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
}

func (m *AdminGetActiveSessionsRequest) Reset()         { *m = AdminGetActiveSessionsRequest{} }
func (m *AdminGetActiveSessionsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminGetActiveSessionsRequest) ProtoMessage()    {}

type SessionInfo struct {
	Id          string     `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	IpAddress   string     `protobuf:"bytes,2,opt,name=ip_address,json=ipAddress,proto3" json:"ip_address,omitempty"`
	UserAgent   string     `protobuf:"bytes,3,opt,name=user_agent,json=userAgent,proto3" json:"user_agent,omitempty"`
	MfaVerified bool       `protobuf:"varint,4,opt,name=mfa_verified,json=mfaVerified,proto3" json:"mfa_verified,omitempty"`
	CreatedAt   *Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	LastSeenAt  *Timestamp `protobuf:"bytes,6,opt,name=last_seen_at,json=lastSeenAt,proto3" json:"last_seen_at,omitempty"`
	ExpiresAt   *Timestamp `protobuf:"bytes,7,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
}

func (m *SessionInfo) Reset()         { *m = SessionInfo{} }
func (m *SessionInfo) String() string { return fmt.Sprintf("%+v", *m) }
func (*SessionInfo) ProtoMessage()    {}

type AdminGetActiveSessionsResponse struct {
	Sessions []*SessionInfo `protobuf:"bytes,1,rep,name=sessions,proto3" json:"sessions,omitempty"`
}

func (m *AdminGetActiveSessionsResponse) Reset()         { *m = AdminGetActiveSessionsResponse{} }
func (m *AdminGetActiveSessionsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminGetActiveSessionsResponse) ProtoMessage()    {}

// Admin MFA management -----------------------------------------------------

type AdminSetupMfaRequest struct {
	AdminId string `protobuf:"bytes,1,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
}

func (m *AdminSetupMfaRequest) Reset()         { *m = AdminSetupMfaRequest{} }
func (m *AdminSetupMfaRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminSetupMfaRequest) ProtoMessage()    {}

type AdminSetupMfaResponse struct {
	Secret      string   `protobuf:"bytes,1,opt,name=secret,proto3" json:"secret,omitempty"`
	OtpauthUrl  string   `protobuf:"bytes,2,opt,name=otpauth_url,json=otpauthUrl,proto3" json:"otpauth_url,omitempty"`
	BackupCodes []string `protobuf:"bytes,3,rep,name=backup_codes,json=backupCodes,proto3" json:"backup_codes,omitempty"`
}

func (m *AdminSetupMfaResponse) Reset()         { *m = AdminSetupMfaResponse{} }
func (m *AdminSetupMfaResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminSetupMfaResponse) ProtoMessage()    {}

type AdminVerifyMfaRequest struct {
	AdminId string `protobuf:"bytes,1,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
	Code    string `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
}

func (m *AdminVerifyMfaRequest) Reset()         { *m = AdminVerifyMfaRequest{} }
func (m *AdminVerifyMfaRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminVerifyMfaRequest) ProtoMessage()    {}

type AdminDisableMfaRequest struct {
	AdminId  string `protobuf:"bytes,1,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *AdminDisableMfaRequest) Reset()         { *m = AdminDisableMfaRequest{} }
func (m *AdminDisableMfaRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminDisableMfaRequest) ProtoMessage()    {}

type AdminRegenerateBackupCodesRequest struct {
	AdminId  string `protobuf:"bytes,1,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *AdminRegenerateBackupCodesRequest) Reset()         { *m = AdminRegenerateBackupCodesRequest{} }
func (m *AdminRegenerateBackupCodesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminRegenerateBackupCodesRequest) ProtoMessage()    {}

type AdminRegenerateBackupCodesResponse struct {
	BackupCodes []string `protobuf:"bytes,1,rep,name=backup_codes,json=backupCodes,proto3" json:"backup_codes,omitempty"`
}

func (m *AdminRegenerateBackupCodesResponse) Reset()         { *m = AdminRegenerateBackupCodesResponse{} }
func (m *AdminRegenerateBackupCodesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AdminRegenerateBackupCodesResponse) ProtoMessage()    {}

// StatusResponse is the shared ack shape for state-changing admin calls.
type StatusResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *StatusResponse) Reset()         { *m = StatusResponse{} }
func (m *StatusResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatusResponse) ProtoMessage()    {}

// Operator assignments -----------------------------------------------------

type OperatorAssignment struct {
	Id            string         `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AccountId     string         `protobuf:"bytes,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	ServiceCode   string         `protobuf:"bytes,3,opt,name=service_code,json=serviceCode,proto3" json:"service_code,omitempty"`
	CountryCode   string         `protobuf:"bytes,4,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	Status        OperatorStatus `protobuf:"varint,5,opt,name=status,proto3,enum=authgrid.v1.OperatorStatus" json:"status,omitempty"`
	Permissions   []string       `protobuf:"bytes,6,rep,name=permissions,proto3" json:"permissions,omitempty"`
	AssignedBy    string         `protobuf:"bytes,7,opt,name=assigned_by,json=assignedBy,proto3" json:"assigned_by,omitempty"`
	RevokedBy     string         `protobuf:"bytes,8,opt,name=revoked_by,json=revokedBy,proto3" json:"revoked_by,omitempty"`
	RevokedReason string         `protobuf:"bytes,9,opt,name=revoked_reason,json=revokedReason,proto3" json:"revoked_reason,omitempty"`
	CreatedAt     *Timestamp     `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *Timestamp     `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	RevokedAt     *Timestamp     `protobuf:"bytes,12,opt,name=revoked_at,json=revokedAt,proto3" json:"revoked_at,omitempty"`
}

func (m *OperatorAssignment) Reset()         { *m = OperatorAssignment{} }
func (m *OperatorAssignment) String() string { return fmt.Sprintf("%+v", *m) }
func (*OperatorAssignment) ProtoMessage()    {}

type AssignOperatorRequest struct {
	AccountId   string   `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	ServiceCode string   `protobuf:"bytes,2,opt,name=service_code,json=serviceCode,proto3" json:"service_code,omitempty"`
	CountryCode string   `protobuf:"bytes,3,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	Permissions []string `protobuf:"bytes,4,rep,name=permissions,proto3" json:"permissions,omitempty"`
	AssignedBy  string   `protobuf:"bytes,5,opt,name=assigned_by,json=assignedBy,proto3" json:"assigned_by,omitempty"`
}

func (m *AssignOperatorRequest) Reset()         { *m = AssignOperatorRequest{} }
func (m *AssignOperatorRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AssignOperatorRequest) ProtoMessage()    {}

type AssignOperatorResponse struct {
	Assignment *OperatorAssignment `protobuf:"bytes,1,opt,name=assignment,proto3" json:"assignment,omitempty"`
}

func (m *AssignOperatorResponse) Reset()         { *m = AssignOperatorResponse{} }
func (m *AssignOperatorResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AssignOperatorResponse) ProtoMessage()    {}

type RevokeOperatorAssignmentRequest struct {
	AssignmentId string `protobuf:"bytes,1,opt,name=assignment_id,json=assignmentId,proto3" json:"assignment_id,omitempty"`
	Reason       string `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	RevokedBy    string `protobuf:"bytes,3,opt,name=revoked_by,json=revokedBy,proto3" json:"revoked_by,omitempty"`
}

func (m *RevokeOperatorAssignmentRequest) Reset()         { *m = RevokeOperatorAssignmentRequest{} }
func (m *RevokeOperatorAssignmentRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RevokeOperatorAssignmentRequest) ProtoMessage()    {}

type GetOperatorAssignmentRequest struct {
	AssignmentId string `protobuf:"bytes,1,opt,name=assignment_id,json=assignmentId,proto3" json:"assignment_id,omitempty"`
}

func (m *GetOperatorAssignmentRequest) Reset()         { *m = GetOperatorAssignmentRequest{} }
func (m *GetOperatorAssignmentRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetOperatorAssignmentRequest) ProtoMessage()    {}

type GetOperatorAssignmentResponse struct {
	Assignment *OperatorAssignment `protobuf:"bytes,1,opt,name=assignment,proto3" json:"assignment,omitempty"`
}

func (m *GetOperatorAssignmentResponse) Reset()         { *m = GetOperatorAssignmentResponse{} }
func (m *GetOperatorAssignmentResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetOperatorAssignmentResponse) ProtoMessage()    {}

type GetServiceOperatorAssignmentsRequest struct {
	ServiceCode string `protobuf:"bytes,1,opt,name=service_code,json=serviceCode,proto3" json:"service_code,omitempty"`
	CountryCode string `protobuf:"bytes,2,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
}

func (m *GetServiceOperatorAssignmentsRequest) Reset()         { *m = GetServiceOperatorAssignmentsRequest{} }
func (m *GetServiceOperatorAssignmentsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetServiceOperatorAssignmentsRequest) ProtoMessage()    {}

type GetServiceOperatorAssignmentsResponse struct {
	Assignments []*OperatorAssignment `protobuf:"bytes,1,rep,name=assignments,proto3" json:"assignments,omitempty"`
	TotalCount  int32                 `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
}

func (m *GetServiceOperatorAssignmentsResponse) Reset() {
	*m = GetServiceOperatorAssignmentsResponse{}
}
func (m *GetServiceOperatorAssignmentsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetServiceOperatorAssignmentsResponse) ProtoMessage()    {}

type UpdateOperatorAssignmentPermissionsRequest struct {
	AssignmentId string   `protobuf:"bytes,1,opt,name=assignment_id,json=assignmentId,proto3" json:"assignment_id,omitempty"`
	Permissions  []string `protobuf:"bytes,2,rep,name=permissions,proto3" json:"permissions,omitempty"`
	UpdatedBy    string   `protobuf:"bytes,3,opt,name=updated_by,json=updatedBy,proto3" json:"updated_by,omitempty"`
}

func (m *UpdateOperatorAssignmentPermissionsRequest) Reset() {
	*m = UpdateOperatorAssignmentPermissionsRequest{}
}
func (m *UpdateOperatorAssignmentPermissionsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UpdateOperatorAssignmentPermissionsRequest) ProtoMessage()    {}
