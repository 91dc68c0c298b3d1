package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jask/rollcall/internal/database"
)

// RosterRepo persists the current roster lists.
type RosterRepo struct {
	db *sql.DB
}

func NewRosterRepo(db *sql.DB) *RosterRepo { return &RosterRepo{db: db} }

// Save replaces the stored lists with s in a single transaction.
func (r *RosterRepo) Save(ctx context.Context, s RosterState) error {
	savedAt := s.SavedAt
	if savedAt.IsZero() {
		savedAt = database.Now()
	}
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM roster_entries`); err != nil {
			return fmt.Errorf("clear entries: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO roster_entries(list, position, name) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, l := range []struct {
			list  List
			names []string
		}{{ListActive, s.Active}, {ListRemoved, s.Removed}} {
			for pos, name := range l.names {
				if _, err := stmt.ExecContext(ctx, string(l.list), pos, name); err != nil {
					return fmt.Errorf("insert %s[%d]: %w", l.list, pos, err)
				}
			}
		}
		_, err = tx.ExecContext(ctx, `
		INSERT INTO roster_meta(id, saved_at) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET saved_at=excluded.saved_at;
		`, savedAt)
		return err
	})
}

// Load returns the stored lists. ok is false when nothing has been saved yet.
func (r *RosterRepo) Load(ctx context.Context) (state RosterState, ok bool, err error) {
	row := r.db.QueryRowContext(ctx, `SELECT saved_at FROM roster_meta WHERE id = 1`)
	if err := row.Scan(&state.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RosterState{}, false, nil
		}
		return RosterState{}, false, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT list, name FROM roster_entries ORDER BY list, position`)
	if err != nil {
		return RosterState{}, false, err
	}
	defer rows.Close()
	state.Active = []string{}
	state.Removed = []string{}
	for rows.Next() {
		var list, name string
		if err := rows.Scan(&list, &name); err != nil {
			return RosterState{}, false, err
		}
		switch List(list) {
		case ListActive:
			state.Active = append(state.Active, name)
		case ListRemoved:
			state.Removed = append(state.Removed, name)
		}
	}
	if err := rows.Err(); err != nil {
		return RosterState{}, false, err
	}
	return state, true, nil
}
