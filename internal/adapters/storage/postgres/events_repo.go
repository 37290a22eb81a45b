package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"compliance-monitoring/internal/domain/events"
	"compliance-monitoring/internal/domain/submissions"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

// Create inserta el evento y todas sus submissions en una transacción.
// Si cualquier insert falla se hace rollback completo: un lector nunca ve
// un evento con fan-out parcial.
func (r *EventsRepo) Create(ctx context.Context, e events.Event, subs []submissions.Submission) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO monitoring_events (
			id, due_date, category, recurrence_label, created_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		e.ID,
		e.Date,
		string(e.Category),
		e.RecurrenceLabel,
		e.CreatedAt,
	)
	if err != nil {
		return err
	}

	for _, sub := range subs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO monitoring_submissions (
				event_id, unit_id, status, rating, updated_at
			) VALUES ($1,$2,$3,$4,$5)
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
	}

	return tx.Commit()
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.Event{}, events.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, due_date, category, recurrence_label, created_at
		FROM monitoring_events
		WHERE id = $1
	`, id)

	var e events.Event
	var category string
	if err := row.Scan(&e.ID, &e.Date, &category, &e.RecurrenceLabel, &e.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, err
	}

	e.Category = events.ServiceCategory(category)
	return e, nil
}

func (r *EventsRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]events.Event, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, due_date, category, recurrence_label, created_at
		FROM monitoring_events
		WHERE due_date >= $1 AND due_date < $2
		ORDER BY due_date ASC, id ASC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		var e events.Event
		var category string
		if err := rows.Scan(&e.ID, &e.Date, &category, &e.RecurrenceLabel, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Category = events.ServiceCategory(category)
		out = append(out, e)
	}

	return out, rows.Err()
}

// Delete borra evento + submissions en una transacción (cascada explícita;
// no dependemos del ON DELETE del schema).
func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.ErrNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM monitoring_submissions WHERE event_id = $1
	`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		DELETE FROM monitoring_events WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}

	return tx.Commit()
}

func ratingArg(rating *int) any {
	if rating == nil {
		return nil
	}
	return *rating
}
