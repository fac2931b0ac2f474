package sanction

import "time"

// Stored enum strings. The persisted subject type ADMIN is presented on
// the wire as OPERATOR; that normalization lives at the gRPC boundary.
const (
	SubjectUser    = "USER"
	SubjectAdmin   = "ADMIN"
	SubjectService = "SERVICE"

	TypeWarning            = "WARNING"
	TypeMute               = "MUTE"
	TypeTemporaryBan       = "TEMPORARY_BAN"
	TypePermanentBan       = "PERMANENT_BAN"
	TypeFeatureRestriction = "FEATURE_RESTRICTION"

	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"

	StatusActive   = "ACTIVE"
	StatusExpired  = "EXPIRED"
	StatusRevoked  = "REVOKED"
	StatusAppealed = "APPEALED"
)

// Sanction is a restriction on a subject with a validity window.
// EndAt nil means open-ended.
type Sanction struct {
	ID          string
	SubjectID   string
	SubjectType string
	Type        string
	Severity    string
	Reason      string
	Evidence    []string
	IssuedBy    string
	StartAt     time.Time
	EndAt       *time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Verdict is the outcome of a sanction check. HighestSeverity is empty
// when no active sanctions exist.
type Verdict struct {
	Sanctioned      bool
	Active          []Sanction
	HighestSeverity string
}

// severityRank gives severities their total order. Unknown strings rank
// below LOW.
func severityRank(severity string) int {
	switch severity {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}
