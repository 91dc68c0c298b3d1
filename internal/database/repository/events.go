package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/rollcall/internal/database"
)

// EventRepo handles the roster change journal.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// Append stores e, filling in ID and CreatedAt when unset.
func (r *EventRepo) Append(ctx context.Context, e Event) (Event, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = database.Now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO roster_events(id, kind, name, active_count, removed_count, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID, e.Kind, e.Name, e.ActiveCount, e.RemovedCount, e.CreatedAt)
	if err != nil {
		return Event{}, err
	}
	return e, nil
}

// Recent returns up to limit events, newest first.
func (r *EventRepo) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, kind, name, active_count, removed_count, created_at
	FROM roster_events
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Kind, &e.Name, &e.ActiveCount, &e.RemovedCount, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roster_events`).Scan(&n)
	return n, err
}
