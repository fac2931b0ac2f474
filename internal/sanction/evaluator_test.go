package sanction

import (
	"context"
	"testing"
	"time"
)

type fakeStore struct {
	rows []Sanction
}

func (f *fakeStore) SanctionsBySubject(_ context.Context, subjectID, subjectType, typeFilter string) ([]Sanction, error) {
	out := []Sanction{}
	for _, s := range f.rows {
		if s.SubjectID != subjectID || s.SubjectType != subjectType {
			continue
		}
		if typeFilter != "" && s.Type != typeFilter {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func ptr(t time.Time) *time.Time { return &t }

func TestCheckExcludesExpiredWindow(t *testing.T) {
	s := &fakeStore{rows: []Sanction{
		{ID: "s1", SubjectID: "u1", SubjectType: SubjectUser, Type: TypeMute, Severity: SeverityLow,
			Status: StatusActive, EndAt: ptr(testNow.Add(-time.Hour))},
		{ID: "s2", SubjectID: "u1", SubjectType: SubjectUser, Type: TypeWarning, Severity: SeverityLow,
			Status: StatusActive, EndAt: nil},
	}}
	e := NewEvaluator(s, WithClock(fixedClock))

	v, err := e.Check(context.Background(), "u1", SubjectUser, "")
	if err != nil {
		t.Fatal(err)
	}
	if !v.Sanctioned || len(v.Active) != 1 || v.Active[0].ID != "s2" {
		t.Fatalf("unexpected verdict: %+v", v)
	}
}

func TestCheckExcludesNonActiveStatus(t *testing.T) {
	s := &fakeStore{rows: []Sanction{
		{ID: "s1", SubjectID: "u1", SubjectType: SubjectUser, Status: StatusRevoked, Severity: SeverityHigh},
		{ID: "s2", SubjectID: "u1", SubjectType: SubjectUser, Status: StatusAppealed, Severity: SeverityHigh},
	}}
	e := NewEvaluator(s, WithClock(fixedClock))

	v, err := e.Check(context.Background(), "u1", SubjectUser, "")
	if err != nil {
		t.Fatal(err)
	}
	if v.Sanctioned || v.HighestSeverity != "" {
		t.Fatalf("unexpected verdict: %+v", v)
	}
}

func TestCheckHighestSeverity(t *testing.T) {
	s := &fakeStore{rows: []Sanction{
		{ID: "s1", SubjectID: "u1", SubjectType: SubjectUser, Severity: SeverityLow, Status: StatusActive},
		{ID: "s2", SubjectID: "u1", SubjectType: SubjectUser, Severity: SeverityCritical, Status: StatusActive},
	}}
	e := NewEvaluator(s, WithClock(fixedClock))

	v, err := e.Check(context.Background(), "u1", SubjectUser, "")
	if err != nil {
		t.Fatal(err)
	}
	if v.HighestSeverity != SeverityCritical {
		t.Fatalf("highest severity=%q, want CRITICAL", v.HighestSeverity)
	}
	if v.Active[0].ID != "s2" {
		t.Fatalf("ordering: %+v", v.Active)
	}
}

func TestCheckTypeFilter(t *testing.T) {
	s := &fakeStore{rows: []Sanction{
		{ID: "s1", SubjectID: "u1", SubjectType: SubjectUser, Type: TypeMute, Severity: SeverityLow, Status: StatusActive},
		{ID: "s2", SubjectID: "u1", SubjectType: SubjectUser, Type: TypePermanentBan, Severity: SeverityCritical, Status: StatusActive},
	}}
	e := NewEvaluator(s, WithClock(fixedClock))

	v, err := e.Check(context.Background(), "u1", SubjectUser, TypeMute)
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Active) != 1 || v.Active[0].Type != TypeMute {
		t.Fatalf("filter: %+v", v.Active)
	}
}

func TestActiveSanctionsTotalCount(t *testing.T) {
	s := &fakeStore{rows: []Sanction{
		{ID: "s1", SubjectID: "u1", SubjectType: SubjectUser, Severity: SeverityLow, Status: StatusActive},
		{ID: "s2", SubjectID: "u1", SubjectType: SubjectUser, Severity: SeverityMedium, Status: StatusActive},
	}}
	e := NewEvaluator(s, WithClock(fixedClock))

	v, total, err := e.ActiveSanctions(context.Background(), "u1", SubjectUser)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(v.Active) != 2 {
		t.Fatalf("total=%d active=%d", total, len(v.Active))
	}
}

func TestSeverityTieBreaksOnStartDescending(t *testing.T) {
	s := &fakeStore{rows: []Sanction{
		{ID: "older", SubjectID: "u1", SubjectType: SubjectUser, Severity: SeverityHigh, Status: StatusActive,
			StartAt: testNow.Add(-48 * time.Hour)},
		{ID: "newer", SubjectID: "u1", SubjectType: SubjectUser, Severity: SeverityHigh, Status: StatusActive,
			StartAt: testNow.Add(-1 * time.Hour)},
	}}
	e := NewEvaluator(s, WithClock(fixedClock))

	v, err := e.Check(context.Background(), "u1", SubjectUser, "")
	if err != nil {
		t.Fatal(err)
	}
	if v.Active[0].ID != "newer" {
		t.Fatalf("ordering: %+v", v.Active)
	}
}
