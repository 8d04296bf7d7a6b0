// Package engine runs derivative matching as an observable, bounded process.
//
// The regex package answers membership in one call; this package answers it
// one symbol at a time, stamping every step so a run can be explained,
// recorded and replayed.
//
// PROCESSING MODEL:
//
// 1. The matcher holds the current canonical expression.
// 2. For each input symbol it takes one derivative step.
// 3. Each step is stamped with a logical clock sequence and, when tracing
//    is on, captured as a TraceEvent (expression before/after, size,
//    nullability).
// 4. After the last symbol, nullability of the final expression is the
//    match verdict.
//
// Ordering is by logical clock only. Wall-clock time never participates,
// so identical inputs always produce identical traces.
//
// RESOURCE BOUNDS:
//
// Derivatives of expressions that mix intersection and negation can grow
// faster than they shrink, and canonicalization alone does not bound the
// growth. The matcher therefore meters both step count and expression size
// against optional Limits and stops with a *QuotaError when a bound trips.
// A zero limit means unlimited.
package engine
