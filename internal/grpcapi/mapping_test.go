package grpcapi

import (
	"testing"
	"time"

	"authgrid.org/api/authv1"
	"authgrid.org/internal/sanction"
)

func TestSubjectTypeNormalization(t *testing.T) {
	// Stored ADMIN travels the wire as OPERATOR.
	if got := subjectTypeToProto[sanction.SubjectAdmin]; got != authv1.SubjectTypeOperator {
		t.Fatalf("ADMIN maps to %v", got)
	}
	if got := subjectTypeFromProto[authv1.SubjectTypeOperator]; got != sanction.SubjectAdmin {
		t.Fatalf("OPERATOR maps to %q", got)
	}
	// Every known wire value round-trips through storage.
	for wire, stored := range subjectTypeFromProto {
		if subjectTypeToProto[stored] != wire {
			t.Fatalf("round trip broken for %v", wire)
		}
	}
}

func TestUnknownStoredStringsFallToUnspecified(t *testing.T) {
	if got := sanctionSeverityToProto["EXTREME"]; got != authv1.SanctionSeverityUnspecified {
		t.Fatalf("unknown severity: %v", got)
	}
	if got := operatorStatusToProto["frozen"]; got != authv1.OperatorStatusUnspecified {
		t.Fatalf("unknown status: %v", got)
	}
	if got := roleScopeToProto[""]; got != authv1.RoleScopeUnspecified {
		t.Fatalf("empty scope: %v", got)
	}
}

func TestSanctionEnumsCoverAllStoredValues(t *testing.T) {
	for _, typ := range []string{
		sanction.TypeWarning, sanction.TypeMute, sanction.TypeTemporaryBan,
		sanction.TypePermanentBan, sanction.TypeFeatureRestriction,
	} {
		if sanctionTypeToProto[typ] == authv1.SanctionTypeUnspecified {
			t.Fatalf("type %q unmapped", typ)
		}
	}
	for _, sev := range []string{
		sanction.SeverityLow, sanction.SeverityMedium, sanction.SeverityHigh, sanction.SeverityCritical,
	} {
		if sanctionSeverityToProto[sev] == authv1.SanctionSeverityUnspecified {
			t.Fatalf("severity %q unmapped", sev)
		}
	}
	for _, st := range []string{
		sanction.StatusActive, sanction.StatusExpired, sanction.StatusRevoked, sanction.StatusAppealed,
	} {
		if sanctionStatusToProto[st] == authv1.SanctionStatusUnspecified {
			t.Fatalf("status %q unmapped", st)
		}
	}
}

func TestTimestampAbsence(t *testing.T) {
	if ts(time.Time{}) != nil {
		t.Fatal("zero time must map to nil")
	}
	if tsPtr(nil) != nil {
		t.Fatal("nil pointer must map to nil")
	}
	at := time.Date(2026, 8, 1, 12, 0, 0, 500, time.UTC)
	got := ts(at)
	if got == nil || got.Seconds != at.Unix() || got.Nanos != 500 {
		t.Fatalf("timestamp: %+v", got)
	}
}
