package engine

// TraceEvent records one derivative step of a matching run.
//
// Before and After hold the canonical rendering of the expression around
// the step; Size and Nullable describe the After expression. Seq comes
// from the logical clock and orders events within and across runs.
type TraceEvent struct {
	Seq      int64  `json:"seq"`
	Symbol   string `json:"symbol"`
	Before   string `json:"before"`
	After    string `json:"after"`
	Size     int    `json:"size"`
	Nullable bool   `json:"nullable"`
}

// Result is the outcome of a completed matching run.
//
// Steps counts derivative steps taken, which equals the number of input
// symbols. Final is the canonical rendering of the expression after the
// last step and FinalSize its node count; the final nullability is
// Matched. Trace is populated only when the matcher runs with tracing on.
type Result struct {
	Matched   bool         `json:"matched"`
	Steps     int          `json:"steps"`
	Final     string       `json:"final"`
	FinalSize int          `json:"final_size"`
	Trace     []TraceEvent `json:"trace,omitempty"`
}
