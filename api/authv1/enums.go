package authv1

// Wire enum values are frozen: downstream services compare raw integers.
// Do not renumber.

type OperatorStatus int32

const (
	OperatorStatusUnspecified OperatorStatus = 0
	OperatorStatusPending     OperatorStatus = 1
	OperatorStatusActive      OperatorStatus = 2
	OperatorStatusSuspended   OperatorStatus = 3
	OperatorStatusRevoked     OperatorStatus = 4
)

var operatorStatusName = map[OperatorStatus]string{
	OperatorStatusUnspecified: "OPERATOR_STATUS_UNSPECIFIED",
	OperatorStatusPending:     "OPERATOR_STATUS_PENDING",
	OperatorStatusActive:      "OPERATOR_STATUS_ACTIVE",
	OperatorStatusSuspended:   "OPERATOR_STATUS_SUSPENDED",
	OperatorStatusRevoked:     "OPERATOR_STATUS_REVOKED",
}

func (x OperatorStatus) String() string {
	if s, ok := operatorStatusName[x]; ok {
		return s
	}
	return operatorStatusName[OperatorStatusUnspecified]
}

type RoleScope int32

const (
	RoleScopeUnspecified RoleScope = 0
	RoleScopeGlobal      RoleScope = 1
	RoleScopeService     RoleScope = 2
	RoleScopeTenant      RoleScope = 3
)

var roleScopeName = map[RoleScope]string{
	RoleScopeUnspecified: "ROLE_SCOPE_UNSPECIFIED",
	RoleScopeGlobal:      "ROLE_SCOPE_GLOBAL",
	RoleScopeService:     "ROLE_SCOPE_SERVICE",
	RoleScopeTenant:      "ROLE_SCOPE_TENANT",
}

func (x RoleScope) String() string {
	if s, ok := roleScopeName[x]; ok {
		return s
	}
	return roleScopeName[RoleScopeUnspecified]
}

type SubjectType int32

const (
	SubjectTypeUnspecified SubjectType = 0
	SubjectTypeUser        SubjectType = 1
	SubjectTypeOperator    SubjectType = 2
	SubjectTypeService     SubjectType = 3
)

var subjectTypeName = map[SubjectType]string{
	SubjectTypeUnspecified: "SUBJECT_TYPE_UNSPECIFIED",
	SubjectTypeUser:        "SUBJECT_TYPE_USER",
	SubjectTypeOperator:    "SUBJECT_TYPE_OPERATOR",
	SubjectTypeService:     "SUBJECT_TYPE_SERVICE",
}

func (x SubjectType) String() string {
	if s, ok := subjectTypeName[x]; ok {
		return s
	}
	return subjectTypeName[SubjectTypeUnspecified]
}

type SanctionType int32

const (
	SanctionTypeUnspecified        SanctionType = 0
	SanctionTypeWarning            SanctionType = 1
	SanctionTypeMute               SanctionType = 2
	SanctionTypeTemporaryBan       SanctionType = 3
	SanctionTypePermanentBan       SanctionType = 4
	SanctionTypeFeatureRestriction SanctionType = 5
)

var sanctionTypeName = map[SanctionType]string{
	SanctionTypeUnspecified:        "SANCTION_TYPE_UNSPECIFIED",
	SanctionTypeWarning:            "SANCTION_TYPE_WARNING",
	SanctionTypeMute:               "SANCTION_TYPE_MUTE",
	SanctionTypeTemporaryBan:       "SANCTION_TYPE_TEMPORARY_BAN",
	SanctionTypePermanentBan:       "SANCTION_TYPE_PERMANENT_BAN",
	SanctionTypeFeatureRestriction: "SANCTION_TYPE_FEATURE_RESTRICTION",
}

func (x SanctionType) String() string {
	if s, ok := sanctionTypeName[x]; ok {
		return s
	}
	return sanctionTypeName[SanctionTypeUnspecified]
}

type SanctionSeverity int32

const (
	SanctionSeverityUnspecified SanctionSeverity = 0
	SanctionSeverityLow         SanctionSeverity = 1
	SanctionSeverityMedium      SanctionSeverity = 2
	SanctionSeverityHigh        SanctionSeverity = 3
	SanctionSeverityCritical    SanctionSeverity = 4
)

var sanctionSeverityName = map[SanctionSeverity]string{
	SanctionSeverityUnspecified: "SANCTION_SEVERITY_UNSPECIFIED",
	SanctionSeverityLow:         "SANCTION_SEVERITY_LOW",
	SanctionSeverityMedium:      "SANCTION_SEVERITY_MEDIUM",
	SanctionSeverityHigh:        "SANCTION_SEVERITY_HIGH",
	SanctionSeverityCritical:    "SANCTION_SEVERITY_CRITICAL",
}

func (x SanctionSeverity) String() string {
	if s, ok := sanctionSeverityName[x]; ok {
		return s
	}
	return sanctionSeverityName[SanctionSeverityUnspecified]
}

type SanctionStatus int32

const (
	SanctionStatusUnspecified SanctionStatus = 0
	SanctionStatusActive      SanctionStatus = 1
	SanctionStatusExpired     SanctionStatus = 2
	SanctionStatusRevoked     SanctionStatus = 3
	SanctionStatusAppealed    SanctionStatus = 4
)

var sanctionStatusName = map[SanctionStatus]string{
	SanctionStatusUnspecified: "SANCTION_STATUS_UNSPECIFIED",
	SanctionStatusActive:      "SANCTION_STATUS_ACTIVE",
	SanctionStatusExpired:     "SANCTION_STATUS_EXPIRED",
	SanctionStatusRevoked:     "SANCTION_STATUS_REVOKED",
	SanctionStatusAppealed:    "SANCTION_STATUS_APPEALED",
}

func (x SanctionStatus) String() string {
	if s, ok := sanctionStatusName[x]; ok {
		return s
	}
	return sanctionStatusName[SanctionStatusUnspecified]
}
