package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/rollcall/internal/database"
)

// MaintenanceService houses destructive/ops actions surfaced through the TUI.
type MaintenanceService struct {
	DB *sql.DB
}

// ClearHistory wipes the change journal. The saved roster state is kept.
func (s *MaintenanceService) ClearHistory(ctx context.Context) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, fmt.Errorf("maintenance: db not configured")
	}
	var n int64
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM roster_events")
		if err != nil {
			return fmt.Errorf("clear roster_events: %w", err)
		}
		n, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Forget drops the saved roster state so the next start begins from the seed.
func (s *MaintenanceService) Forget(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	return database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		for _, t := range []string{"roster_entries", "roster_meta"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	})
}
