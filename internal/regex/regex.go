package regex

import "fmt"

// Regex is a regular expression in canonical form.
//
// Regex is a sealed interface: the nine variants all live in this package
// and new values are built only through the exported constructors, which
// enforce the canonical-form invariants. Operations are attached to the
// variants as methods so that dispatch is exhaustive by construction.
type Regex interface {
	fmt.Stringer

	// isRegex seals the interface to this package.
	isRegex()

	// rank is the fixed variant rank used by Compare when two values
	// belong to different variants.
	rank() int

	// nullable reports whether the language contains the empty string.
	nullable() bool

	// derive returns the Brzozowski derivative with respect to one symbol.
	derive(sym rune) Regex

	// size is the node count of the expression tree.
	size() int
}

// emptyLanguage matches no string at all.
type emptyLanguage struct{}

// emptyString matches exactly the empty string.
type emptyString struct{}

// anyChar matches exactly one arbitrary symbol.
type anyChar struct{}

// charClass matches exactly one symbol drawn from a finite set.
// symbols is non-empty, duplicate-free and ascending by code point.
type charClass struct {
	symbols []rune
}

// sequence is concatenation. elems has at least two entries, none of which
// is an emptyString, emptyLanguage or nested sequence.
type sequence struct {
	elems []Regex
}

// repetition is Kleene closure. inner is never an emptyString,
// emptyLanguage or another repetition.
type repetition struct {
	inner Regex
}

// union is language union. elems has at least two entries, strictly sorted
// and duplicate-free under Compare, with at most one charClass among them.
type union struct {
	elems []Regex
}

// intersection is language intersection, with the same operand-list
// invariants as union.
type intersection struct {
	elems []Regex
}

// negation is language complement. inner is never another negation.
type negation struct {
	inner Regex
}

func (emptyLanguage) isRegex() {}
func (emptyString) isRegex()   {}
func (anyChar) isRegex()       {}
func (charClass) isRegex()     {}
func (sequence) isRegex()      {}
func (repetition) isRegex()    {}
func (union) isRegex()         {}
func (intersection) isRegex()  {}
func (negation) isRegex()      {}

// Size returns the node count of the expression tree. Derivatives can grow
// an expression, so callers that need bounded memory meter growth with Size
// (see the engine's limits).
func Size(r Regex) int { return r.size() }

func (emptyLanguage) size() int  { return 1 }
func (emptyString) size() int    { return 1 }
func (anyChar) size() int        { return 1 }
func (charClass) size() int      { return 1 }
func (s sequence) size() int     { return 1 + operandSize(s.elems) }
func (r repetition) size() int   { return 1 + r.inner.size() }
func (u union) size() int        { return 1 + operandSize(u.elems) }
func (i intersection) size() int { return 1 + operandSize(i.elems) }
func (n negation) size() int     { return 1 + n.inner.size() }

func operandSize(elems []Regex) int {
	total := 0
	for _, e := range elems {
		total += e.size()
	}
	return total
}
