package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/quellex/greb/internal/engine"
)

// Run is one recorded matching run.
type Run struct {
	ID          string    `json:"id"`          // UUIDv7, time-sortable
	Pattern     string    `json:"pattern"`     // source ERE text
	Fingerprint string    `json:"fingerprint"` // canonical-form digest
	Mode        string    `json:"mode"`        // exact | search
	Input       string    `json:"input"`
	Matched     bool      `json:"matched"`
	Steps       int       `json:"steps"`
	FinalExpr   string    `json:"final_expr"`
	FinalSize   int       `json:"final_size"`
	CreatedAt   time.Time `json:"created_at"`
}

// Step is one recorded derivative step of a run.
type Step struct {
	RunID    string `json:"run_id"`
	Seq      int64  `json:"seq"` // matcher clock sequence
	Symbol   string `json:"symbol"`
	Before   string `json:"before"`
	After    string `json:"after"`
	Size     int    `json:"size"`
	Nullable bool   `json:"nullable"`
}

// NewRun assembles a Run from a completed match, stamping a fresh ID and
// the current UTC time.
//
// IDs are UUIDv7, which embed a timestamp in the most significant bits,
// so run IDs sort by creation time. Pattern is the source text the
// expression was compiled from and fingerprint its canonical-form digest.
func NewRun(pattern, fingerprint, mode, input string, res *engine.Result) Run {
	return Run{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Pattern:     pattern,
		Fingerprint: fingerprint,
		Mode:        mode,
		Input:       input,
		Matched:     res.Matched,
		Steps:       res.Steps,
		FinalExpr:   res.Final,
		FinalSize:   res.FinalSize,
		CreatedAt:   time.Now().UTC(),
	}
}
