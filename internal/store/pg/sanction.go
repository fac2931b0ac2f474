package pg

import (
	"context"
	"database/sql"
	"encoding/json"

	"authgrid.org/internal/sanction"
)

// SanctionStore serves the sanction evaluator.
type SanctionStore struct {
	db *sql.DB
}

var _ sanction.Store = (*SanctionStore)(nil)

// Sanctions returns the sanction view of the store.
func (s *Store) Sanctions() *SanctionStore { return &SanctionStore{db: s.db} }

// SanctionsBySubject returns status=ACTIVE rows for a subject, ranked
// by severity then recency. The evaluator re-applies the time window.
func (s *SanctionStore) SanctionsBySubject(ctx context.Context, subjectID, subjectType, typeFilter string) ([]sanction.Sanction, error) {
	rows, err := s.db.QueryContext(ctx, `
		select id, subject_id, subject_type, sanction_type, severity, reason, evidence,
		       issued_by, start_at, end_at, status, created_at, updated_at
		from sanctions
		where subject_id = $1
		  and subject_type = $2
		  and status = 'ACTIVE'
		  and ($3 = '' or sanction_type = $3)
		order by array_position(array['CRITICAL','HIGH','MEDIUM','LOW'], severity), start_at desc
	`, subjectID, subjectType, typeFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []sanction.Sanction{}
	for rows.Next() {
		var (
			row      sanction.Sanction
			reason   sql.NullString
			evidence []byte
			endAt    sql.NullTime
		)
		if err := rows.Scan(&row.ID, &row.SubjectID, &row.SubjectType, &row.Type, &row.Severity,
			&reason, &evidence, &row.IssuedBy, &row.StartAt, &endAt, &row.Status, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		if reason.Valid {
			row.Reason = reason.String
		}
		if len(evidence) > 0 {
			if err := json.Unmarshal(evidence, &row.Evidence); err != nil {
				return nil, err
			}
		}
		row.EndAt = timePtr(endAt)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
