package regex

import "strings"

// The String methods render the canonical diagnostic notation used by
// traces, goldens and fingerprints: ∅ and ε for the empty language and
// empty string, . for any symbol, [abc] for a class, juxtaposition for
// sequence, postfix * for repetition, (a|b) for union, (a&b) for
// intersection and !(a) for negation. The rendering is deterministic for a
// given canonical value; it is not meant to be parsed back.

func (emptyLanguage) String() string { return "∅" }
func (emptyString) String() string   { return "ε" }
func (anyChar) String() string       { return "." }

func (c charClass) String() string {
	return "[" + string(c.symbols) + "]"
}

func (s sequence) String() string {
	var b strings.Builder
	for _, e := range s.elems {
		b.WriteString(e.String())
	}
	return b.String()
}

func (r repetition) String() string {
	switch r.inner.(type) {
	case sequence, negation:
		// Sequences and negations do not read as a single unit in
		// front of a postfix star, so wrap them.
		return "(" + r.inner.String() + ")*"
	}
	return r.inner.String() + "*"
}

func (u union) String() string        { return renderOperands(u.elems, "|") }
func (i intersection) String() string { return renderOperands(i.elems, "&") }

func (n negation) String() string {
	return "!(" + n.inner.String() + ")"
}

func renderOperands(elems []Regex, sep string) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range elems {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}
