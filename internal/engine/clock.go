package engine

import "sync/atomic"

// Clock is the monotonic logical clock that stamps trace events.
//
// Every derivative step takes a strictly increasing seq number from this
// clock, never a wall-clock timestamp. This keeps traces deterministic:
// the same expression and input always produce the same event order, and
// replaying a recorded run lines up seq for seq.
//
// Thread-safety: safe for concurrent use (atomic operations), though a
// single matcher run only ever stamps from one goroutine.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock starting at a specific sequence number.
// Used when continuing a trace from a recorded run.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
