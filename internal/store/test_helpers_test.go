package store

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

// createTestStore creates a store backed by a fresh database file.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run record with minimal required fields.
func createTestRun(id string, createdAt time.Time) Run {
	return Run{
		ID:          id,
		Pattern:     "ab*",
		Fingerprint: "test-fingerprint",
		Mode:        "exact",
		Input:       "abb",
		Matched:     true,
		Steps:       3,
		FinalExpr:   "[b]*",
		FinalSize:   1,
		CreatedAt:   createdAt,
	}
}

// insertRawRun inserts a bare runs row for constraint tests.
func insertRawRun(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO runs (id, pattern, fingerprint, mode, input, matched, steps, final_expr, final_size, created_at)
		VALUES (?, 'a', 'fp', 'exact', 'a', 1, 1, 'ε', 1, '2026-01-02 15:04:05+00:00')
	`, id)
	if err != nil {
		t.Fatalf("failed to insert run %q: %v", id, err)
	}
}
