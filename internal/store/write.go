package store

import (
	"context"
	"fmt"

	"github.com/quellex/greb/internal/engine"
)

// RecordRun inserts a run and its trace rows in a single transaction.
// Returns whether a new run was inserted.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency - re-recording an
// existing run ID leaves the stored rows untouched and reports
// inserted=false, and no trace rows are written.
//
// The trace usually comes from an engine.Result produced with tracing on;
// runs recorded without tracing pass nil.
func (s *Store) RecordRun(ctx context.Context, run Run, trace []engine.TraceEvent) (inserted bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("record run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, pattern, fingerprint, mode, input, matched, steps, final_expr, final_size, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Pattern,
		run.Fingerprint,
		run.Mode,
		run.Input,
		run.Matched,
		run.Steps,
		run.FinalExpr,
		run.FinalSize,
		run.CreatedAt.UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("record run: insert run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("record run: rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Conflict - run already recorded, nothing more to do
		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("record run: commit (existing): %w", err)
		}
		return false, nil
	}

	for _, ev := range trace {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO run_steps
			(run_id, seq, symbol, expr_before, expr_after, size, nullable)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			run.ID,
			ev.Seq,
			ev.Symbol,
			ev.Before,
			ev.After,
			ev.Size,
			ev.Nullable,
		)
		if err != nil {
			return false, fmt.Errorf("record run: insert step %d: %w", ev.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("record run: commit: %w", err)
	}

	return true, nil
}

// HasRun checks if a run with the given ID has been recorded.
func (s *Store) HasRun(ctx context.Context, id string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM runs WHERE id = ?
	`, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check run: %w", err)
	}
	return count > 0, nil
}
