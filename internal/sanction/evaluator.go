// Package sanction decides whether a subject is currently restricted.
package sanction

import (
	"context"
	"fmt"
	"sort"
	"time"

	"authgrid.org/internal/obs"
)

// Store loads sanction rows for a subject. Implementations filter by
// type when typeFilter is non-empty and return only status=ACTIVE rows;
// the evaluator applies the time window on top.
type Store interface {
	SanctionsBySubject(ctx context.Context, subjectID, subjectType, typeFilter string) ([]Sanction, error)
}

// Evaluator answers "is subject X currently sanctioned". Stateless and
// safe for concurrent use.
type Evaluator struct {
	store Store
	now   func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithClock overrides the time source for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) { e.now = now }
}

// NewEvaluator builds an Evaluator over the given store.
func NewEvaluator(store Store, opts ...Option) *Evaluator {
	e := &Evaluator{store: store, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Check returns the active sanctions of the given type for a subject,
// ranked by severity. An empty typeFilter matches every type.
func (e *Evaluator) Check(ctx context.Context, subjectID, subjectType, typeFilter string) (Verdict, error) {
	if subjectID == "" || subjectType == "" {
		return Verdict{}, fmt.Errorf("sanction: subject id and type are required")
	}
	rows, err := e.store.SanctionsBySubject(ctx, subjectID, subjectType, typeFilter)
	if err != nil {
		return Verdict{}, err
	}

	now := e.now()
	active := make([]Sanction, 0, len(rows))
	for _, s := range rows {
		if s.Status != StatusActive {
			continue
		}
		if s.EndAt != nil && !s.EndAt.After(now) {
			continue
		}
		active = append(active, s)
	}
	sort.SliceStable(active, func(i, j int) bool {
		ri, rj := severityRank(active[i].Severity), severityRank(active[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return active[i].StartAt.After(active[j].StartAt)
	})

	v := Verdict{Sanctioned: len(active) > 0, Active: active}
	if len(active) > 0 {
		v.HighestSeverity = active[0].Severity
	}
	obs.CountSanctionCheck(v.Sanctioned)
	return v, nil
}

// ActiveSanctions is Check without a type filter, also reporting the
// total count.
func (e *Evaluator) ActiveSanctions(ctx context.Context, subjectID, subjectType string) (Verdict, int, error) {
	v, err := e.Check(ctx, subjectID, subjectType, "")
	if err != nil {
		return Verdict{}, 0, err
	}
	return v, len(v.Active), nil
}
