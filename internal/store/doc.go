// Package store provides SQLite-backed durable storage for recorded
// matching runs.
//
// The store keeps an append-only history with:
//   - Runs: one row per completed match (pattern, input, verdict)
//   - Run Steps: the per-symbol derivative trace of a run
//
// # Recording Rules
//
// Idempotent writes
//   - INSERT ... ON CONFLICT(id) DO NOTHING on the runs table
//   - Re-recording a run ID never rewrites history
//
// Deterministic reads
//   - Traces order by seq ASC (the matcher's logical clock)
//   - Listings order newest first with id COLLATE BINARY as tiebreaker,
//     so paging over time-sortable UUIDv7 ids is stable
//
// Parameterized values
//   - Query values are always bound, never interpolated into SQL
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Run fingerprints come from the regex package: SHA-256 with domain
// separation over the canonical rendering of the compiled expression.
package store
