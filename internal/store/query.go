package store

import (
	"strings"
	"time"
)

// RunQuery narrows and bounds run listings. Zero-valued fields do not
// filter; all set fields must hold (conjunction).
type RunQuery struct {
	// Fingerprint selects runs of one canonical expression, regardless of
	// the pattern text it was compiled from.
	Fingerprint string

	// Pattern selects runs by exact source text.
	Pattern string

	// Mode selects runs by matching mode ("exact" or "search").
	Mode string

	// Matched filters by verdict when non-nil.
	Matched *bool

	// Since keeps runs recorded at or after the given time.
	Since time.Time

	// Limit caps the number of rows returned. Zero means no limit.
	Limit int
}

// compileRunQuery renders a RunQuery to a WHERE clause and parameter
// list. Returns an empty clause when no fields filter.
//
// Values are always parameterized (never interpolated).
func compileRunQuery(q RunQuery) (string, []any) {
	var clauses []string
	var params []any

	if q.Fingerprint != "" {
		clauses = append(clauses, "fingerprint = ?")
		params = append(params, q.Fingerprint)
	}
	if q.Pattern != "" {
		clauses = append(clauses, "pattern = ?")
		params = append(params, q.Pattern)
	}
	if q.Mode != "" {
		clauses = append(clauses, "mode = ?")
		params = append(params, q.Mode)
	}
	if q.Matched != nil {
		clauses = append(clauses, "matched = ?")
		params = append(params, *q.Matched)
	}
	if !q.Since.IsZero() {
		clauses = append(clauses, "created_at >= ?")
		params = append(params, q.Since.UTC())
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), params
}
