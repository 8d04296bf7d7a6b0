package regex

import "fmt"

// The quantifier builders expand counted repetition into the core algebra.
// All of them are iterative; a pathological count costs memory, not stack.

// ZeroOrOne returns an expression matching r or the empty string.
func ZeroOrOne(r Regex) Regex {
	return Union(EmptyString(), r)
}

// OneOrMore returns an expression matching one or more copies of r.
func OneOrMore(r Regex) Regex {
	return AtLeast(r, 1)
}

// Exactly returns the concatenation of n copies of r. Zero copies yield
// EmptyString. A negative count is a programming error and panics.
func Exactly(r Regex, n int) Regex {
	if n < 0 {
		panic(fmt.Sprintf("regex: Exactly with negative count %d", n))
	}
	copies := make([]Regex, n)
	for i := range copies {
		copies[i] = r
	}
	return ConcatList(copies)
}

// Bounded returns an expression matching at least min and at most max
// copies of r: min mandatory copies followed by max-min independently
// optional ones. The bounds must satisfy 0 <= min < max; a fixed count
// belongs to Exactly, and violating the precondition panics.
func Bounded(r Regex, min, max int) Regex {
	if min < 0 || min >= max {
		panic(fmt.Sprintf("regex: Bounded requires 0 <= min < max, got min=%d max=%d", min, max))
	}
	parts := make([]Regex, 0, max)
	for i := 0; i < min; i++ {
		parts = append(parts, r)
	}
	optional := ZeroOrOne(r)
	for i := min; i < max; i++ {
		parts = append(parts, optional)
	}
	return ConcatList(parts)
}

// AtLeast returns an expression matching n or more copies of r: n
// mandatory copies followed by the closure of r. A negative count is a
// programming error and panics.
func AtLeast(r Regex, n int) Regex {
	if n < 0 {
		panic(fmt.Sprintf("regex: AtLeast with negative count %d", n))
	}
	out := Star(r)
	for i := 0; i < n; i++ {
		out = Concat(r, out)
	}
	return out
}
