package store

import (
	"context"
	"database/sql"
	"fmt"
)

const runColumns = "id, pattern, fingerprint, mode, input, matched, steps, final_expr, final_size, created_at"

// GetRun retrieves a single run by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+runColumns+`
		FROM runs
		WHERE id = ?
	`, id)

	return scanRunRow(row)
}

// ListRuns returns recorded runs matching the query, newest first.
// Ties on created_at break by id DESC COLLATE BINARY; since IDs are
// time-sortable UUIDv7, the listing order is stable across calls.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ListRuns(ctx context.Context, q RunQuery) ([]Run, error) {
	where, params := compileRunQuery(q)

	query := `
		SELECT ` + runColumns + `
		FROM runs` + where + `
		ORDER BY created_at DESC, id COLLATE BINARY DESC`
	if q.Limit > 0 {
		query += " LIMIT ?"
		params = append(params, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	// Return empty slice instead of nil
	if runs == nil {
		runs = []Run{}
	}

	return runs, nil
}

// RunTrace returns the recorded derivative steps of a run in step order.
// Runs recorded without tracing have no steps.
//
// Returns an empty slice (not nil) if the run has no steps.
func (s *Store) RunTrace(ctx context.Context, runID string) ([]Step, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, seq, symbol, expr_before, expr_after, size, nullable
		FROM run_steps
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run steps: %w", err)
	}
	defer rows.Close()

	var steps []Step
	for rows.Next() {
		var st Step
		if err := rows.Scan(&st.RunID, &st.Seq, &st.Symbol, &st.Before, &st.After, &st.Size, &st.Nullable); err != nil {
			return nil, fmt.Errorf("scan run step: %w", err)
		}
		steps = append(steps, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run steps: %w", err)
	}

	if steps == nil {
		steps = []Step{}
	}

	return steps, nil
}

// CountRuns returns the number of recorded runs matching the query.
// The query's Limit is ignored.
func (s *Store) CountRuns(ctx context.Context, q RunQuery) (int, error) {
	where, params := compileRunQuery(q)

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`+where, params...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return count, nil
}

// scanRun scans a row into a Run struct.
func scanRun(rows *sql.Rows) (Run, error) {
	var run Run
	if err := rows.Scan(
		&run.ID, &run.Pattern, &run.Fingerprint, &run.Mode, &run.Input,
		&run.Matched, &run.Steps, &run.FinalExpr, &run.FinalSize, &run.CreatedAt,
	); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	return run, nil
}

// scanRunRow scans a single row into a Run struct.
func scanRunRow(row *sql.Row) (Run, error) {
	var run Run
	if err := row.Scan(
		&run.ID, &run.Pattern, &run.Fingerprint, &run.Mode, &run.Input,
		&run.Matched, &run.Steps, &run.FinalExpr, &run.FinalSize, &run.CreatedAt,
	); err != nil {
		return Run{}, err
	}
	return run, nil
}
