package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"compliance-monitoring/internal/domain/submissions"
)

type SubmissionsRepo struct {
	db *sql.DB
}

func NewSubmissionsRepo(db *sql.DB) *SubmissionsRepo {
	return &SubmissionsRepo{db: db}
}

func (r *SubmissionsRepo) Get(ctx context.Context, eventID, unitID string) (submissions.Submission, error) {
	eventID = strings.TrimSpace(eventID)
	unitID = strings.TrimSpace(unitID)
	if eventID == "" || unitID == "" {
		return submissions.Submission{}, submissions.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT event_id, unit_id, status, rating, updated_at
		FROM monitoring_submissions
		WHERE event_id = $1 AND unit_id = $2
	`, eventID, unitID)

	return scanSubmission(row.Scan)
}

func (r *SubmissionsRepo) Update(ctx context.Context, sub submissions.Submission) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE monitoring_submissions
		SET status = $3, rating = $4, updated_at = $5
		WHERE event_id = $1 AND unit_id = $2
	`,
		sub.EventID,
		sub.UnitID,
		string(sub.Status),
		ratingArg(sub.Rating),
		sub.UpdatedAt,
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return submissions.ErrNotFound
	}
	return nil
}

func (r *SubmissionsRepo) ListByEvent(ctx context.Context, eventID string) ([]submissions.Submission, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT event_id, unit_id, status, rating, updated_at
		FROM monitoring_submissions
		WHERE event_id = $1
		ORDER BY unit_id ASC
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

func (r *SubmissionsRepo) ListByUnitEvents(ctx context.Context, unitID string, eventIDs []string) ([]submissions.Submission, error) {
	unitID = strings.TrimSpace(unitID)
	if unitID == "" || len(eventIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, 0, len(eventIDs))
	args := []any{unitID}
	for i, id := range eventIDs {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT event_id, unit_id, status, rating, updated_at
		FROM monitoring_submissions
		WHERE unit_id = $1 AND event_id IN (`+strings.Join(placeholders, ",")+`)
		ORDER BY event_id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

// UpdateAllByEvent es un solo UPDATE: la transición masiva es atómica a
// nivel de statement, sin transacción explícita.
func (r *SubmissionsRepo) UpdateAllByEvent(ctx context.Context, eventID string, status submissions.Status, rating *int, updatedAt time.Time) (int, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return 0, nil
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE monitoring_submissions
		SET status = $2, rating = $3, updated_at = $4
		WHERE event_id = $1
	`,
		eventID,
		string(status),
		ratingArg(rating),
		updatedAt,
	)
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func scanSubmission(scan func(dest ...any) error) (submissions.Submission, error) {
	var sub submissions.Submission
	var status string
	var rating sql.NullInt64

	if err := scan(&sub.EventID, &sub.UnitID, &status, &rating, &sub.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return submissions.Submission{}, submissions.ErrNotFound
		}
		return submissions.Submission{}, err
	}

	sub.Status = submissions.Status(status)
	if rating.Valid {
		v := int(rating.Int64)
		sub.Rating = &v
	}
	return sub, nil
}

func collectSubmissions(rows *sql.Rows) ([]submissions.Submission, error) {
	out := make([]submissions.Submission, 0)
	for rows.Next() {
		sub, err := scanSubmission(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}
