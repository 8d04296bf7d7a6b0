package regex

import (
	"cmp"
	"fmt"
	"slices"
)

// Variant ranks used by Compare when two expressions belong to different
// variants. The ranking is part of the canonical form: changing it would
// silently invalidate every previously sorted operand list, so it is fixed.
const (
	rankEmptyString = iota
	rankAnyChar
	rankEmptyLanguage
	rankCharClass
	rankSequence
	rankRepetition
	rankUnion
	rankIntersection
	rankNegation
)

func (emptyString) rank() int   { return rankEmptyString }
func (anyChar) rank() int       { return rankAnyChar }
func (emptyLanguage) rank() int { return rankEmptyLanguage }
func (charClass) rank() int     { return rankCharClass }
func (sequence) rank() int      { return rankSequence }
func (repetition) rank() int    { return rankRepetition }
func (union) rank() int         { return rankUnion }
func (intersection) rank() int  { return rankIntersection }
func (negation) rank() int      { return rankNegation }

// Compare is a total order over canonical expressions, returning a negative
// number, zero, or a positive number as a orders before, equal to, or after
// b. It is the order that keeps union and intersection operand lists sorted
// and duplicate-free; Compare(a, b) == 0 exactly when a and b are
// structurally equal.
func Compare(a, b Regex) int {
	if c := cmp.Compare(a.rank(), b.rank()); c != 0 {
		return c
	}
	switch x := a.(type) {
	case emptyString, anyChar, emptyLanguage:
		return 0
	case charClass:
		// Symbol sets are stored ascending by code point, so plain
		// slice comparison is the deterministic member-wise order.
		return slices.Compare(x.symbols, b.(charClass).symbols)
	case sequence:
		return compareOperands(x.elems, b.(sequence).elems)
	case repetition:
		return Compare(x.inner, b.(repetition).inner)
	case union:
		return compareOperands(x.elems, b.(union).elems)
	case intersection:
		return compareOperands(x.elems, b.(intersection).elems)
	case negation:
		return Compare(x.inner, b.(negation).inner)
	default:
		panic(fmt.Sprintf("regex: Compare on unknown variant %T", a))
	}
}

// compareOperands orders operand lists element-wise; when one list is a
// strict prefix of the other, the shorter list orders first.
func compareOperands(a, b []Regex) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// Equal reports structural equality. For canonical expressions this is the
// equality notion the whole module uses: equal values denote the same
// language.
func Equal(a, b Regex) bool { return Compare(a, b) == 0 }
