package regex

import (
	"fmt"
	"slices"
)

// EmptyLanguage returns the expression matching no string at all.
func EmptyLanguage() Regex { return emptyLanguage{} }

// EmptyString returns the expression matching exactly the empty string.
func EmptyString() Regex { return emptyString{} }

// AnyChar returns the expression matching exactly one arbitrary symbol.
func AnyChar() Regex { return anyChar{} }

// universal is the language of all strings, the closure of the any-symbol
// expression. It is the identity of Intersect and the complement of
// EmptyLanguage.
func universal() Regex { return repetition{inner: anyChar{}} }

// Class returns the expression matching exactly one symbol drawn from the
// given set. Symbols are deduplicated and stored ascending by code point.
// An empty set matches nothing and collapses to EmptyLanguage, so a class
// value never wraps an empty set.
func Class(symbols ...rune) Regex {
	if len(symbols) == 0 {
		return EmptyLanguage()
	}
	return charClass{symbols: normalizeSymbols(symbols)}
}

// Concat returns the concatenation of a then b. EmptyString is the identity
// and vanishes; EmptyLanguage annihilates the whole concatenation; operands
// that are themselves sequences are spliced in flat, so sequences never
// nest.
func Concat(a, b Regex) Regex {
	if isEmptyLanguage(a) || isEmptyLanguage(b) {
		return EmptyLanguage()
	}
	if _, ok := a.(emptyString); ok {
		return b
	}
	if _, ok := b.(emptyString); ok {
		return a
	}
	left, right := sequenceOperands(a), sequenceOperands(b)
	elems := make([]Regex, 0, len(left)+len(right))
	elems = append(elems, left...)
	elems = append(elems, right...)
	return sequence{elems: elems}
}

// ConcatList concatenates the expressions in order, folding Concat from the
// right. The empty list yields EmptyString, the identity of concatenation.
func ConcatList(rs []Regex) Regex {
	out := EmptyString()
	for i := len(rs) - 1; i >= 0; i-- {
		out = Concat(rs[i], out)
	}
	return out
}

// Star returns the Kleene closure of r. The closure of the empty string or
// of the empty language is the empty string, and the closure of a closure
// collapses, so repetitions never nest and never wrap those two variants.
func Star(r Regex) Regex {
	switch r.(type) {
	case emptyString, emptyLanguage:
		return EmptyString()
	case repetition:
		return r
	}
	return repetition{inner: r}
}

// Union returns the language union of a and b. EmptyLanguage is the
// identity. Operands of nested unions are merged into one strictly sorted,
// duplicate-free list; multiple character classes fold into a single class
// via symbol-set union, which keeps at most one class per operand list.
func Union(a, b Regex) Regex {
	if isEmptyLanguage(a) {
		return b
	}
	if isEmptyLanguage(b) {
		return a
	}
	if ca, ok := a.(charClass); ok {
		if cb, ok := b.(charClass); ok {
			return Class(append(slices.Clone(ca.symbols), cb.symbols...)...)
		}
	}
	elems := foldUnionClasses(mergeOperands(unionOperands(a), unionOperands(b)))
	if len(elems) == 1 {
		return elems[0]
	}
	mustSingleClass(elems, "union")
	return union{elems: elems}
}

// Intersect returns the language intersection of a and b. EmptyLanguage
// annihilates the intersection and the universal language is its identity.
// Operand lists get the same treatment as in Union, with classes folding
// via symbol-set intersection; an empty folded set empties the whole
// intersection.
func Intersect(a, b Regex) Regex {
	if isEmptyLanguage(a) || isEmptyLanguage(b) {
		return EmptyLanguage()
	}
	if isUniversal(a) {
		return b
	}
	if isUniversal(b) {
		return a
	}
	if ca, ok := a.(charClass); ok {
		if cb, ok := b.(charClass); ok {
			return Class(intersectSymbols(ca.symbols, cb.symbols)...)
		}
	}
	elems, empty := foldIntersectionClasses(mergeOperands(intersectionOperands(a), intersectionOperands(b)))
	if empty {
		return EmptyLanguage()
	}
	if len(elems) == 1 {
		return elems[0]
	}
	mustSingleClass(elems, "intersection")
	return intersection{elems: elems}
}

// Complement returns the complement language of r. Double negation cancels,
// and the complement of EmptyLanguage is the universal language, so a
// negation never wraps another negation.
func Complement(r Regex) Regex {
	if n, ok := r.(negation); ok {
		return n.inner
	}
	if isEmptyLanguage(r) {
		return universal()
	}
	return negation{inner: r}
}

func isEmptyLanguage(r Regex) bool {
	_, ok := r.(emptyLanguage)
	return ok
}

// isUniversal recognizes the universal language in its canonical spelling,
// the closure of the any-symbol expression.
func isUniversal(r Regex) bool {
	rep, ok := r.(repetition)
	if !ok {
		return false
	}
	_, ok = rep.inner.(anyChar)
	return ok
}

// sequenceOperands views r as a flat operand list for concatenation.
func sequenceOperands(r Regex) []Regex {
	if s, ok := r.(sequence); ok {
		return s.elems
	}
	return []Regex{r}
}

// unionOperands views r as a flat operand list for union.
func unionOperands(r Regex) []Regex {
	if u, ok := r.(union); ok {
		return u.elems
	}
	return []Regex{r}
}

// intersectionOperands views r as a flat operand list for intersection.
func intersectionOperands(r Regex) []Regex {
	if i, ok := r.(intersection); ok {
		return i.elems
	}
	return []Regex{r}
}

// mergeOperands merges two lists that are already strictly sorted under
// Compare into one strictly sorted list, keeping a single copy of elements
// that compare equal. Idempotence of union and intersection falls out of
// the dedup here.
func mergeOperands(a, b []Regex) []Regex {
	out := make([]Regex, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := Compare(a[i], b[j]); {
		case c < 0:
			out = append(out, a[i])
			i++
		case c > 0:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// classRun returns the half-open index range of the character-class
// operands in a sorted operand list. Classes share one variant rank, so
// they always form a contiguous run; start == end when there is none.
func classRun(elems []Regex) (start, end int) {
	start = -1
	for i, e := range elems {
		if _, ok := e.(charClass); ok {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			return start, i
		}
	}
	if start < 0 {
		return 0, 0
	}
	return start, len(elems)
}

// foldUnionClasses merges every character-class operand into one class via
// symbol-set union and reinserts it at its sorted position. elems must be
// freshly allocated; it is consumed.
func foldUnionClasses(elems []Regex) []Regex {
	start, end := classRun(elems)
	if end-start <= 1 {
		return elems
	}
	var symbols []rune
	for _, e := range elems[start:end] {
		symbols = append(symbols, e.(charClass).symbols...)
	}
	return insertFolded(elems, start, end, Class(symbols...))
}

// foldIntersectionClasses merges every character-class operand into one
// class via symbol-set intersection. When no symbol satisfies every class
// the whole intersection is empty, reported through the second return.
// elems must be freshly allocated; it is consumed.
func foldIntersectionClasses(elems []Regex) ([]Regex, bool) {
	start, end := classRun(elems)
	if end-start <= 1 {
		return elems, false
	}
	symbols := elems[start].(charClass).symbols
	for _, e := range elems[start+1 : end] {
		symbols = intersectSymbols(symbols, e.(charClass).symbols)
	}
	if len(symbols) == 0 {
		return nil, true
	}
	return insertFolded(elems, start, end, Class(symbols...)), false
}

// insertFolded replaces elems[start:end] with the single folded class at
// its sorted position in the remainder.
func insertFolded(elems []Regex, start, end int, folded Regex) []Regex {
	rest := append(elems[:start], elems[end:]...)
	pos, _ := slices.BinarySearchFunc(rest, folded, Compare)
	return slices.Insert(rest, pos, folded)
}

// mustSingleClass aborts when an operand list still holds more than one
// character class after folding. Ordering and equality of operand lists
// assume the single-class invariant, so a violation is unrecoverable.
func mustSingleClass(elems []Regex, op string) {
	n := 0
	for _, e := range elems {
		if _, ok := e.(charClass); ok {
			n++
		}
	}
	if n > 1 {
		panic(fmt.Sprintf("regex: %s operand list holds %d character classes after folding", op, n))
	}
}

// normalizeSymbols copies, sorts and deduplicates a symbol set.
func normalizeSymbols(symbols []rune) []rune {
	out := slices.Clone(symbols)
	slices.Sort(out)
	return slices.Compact(out)
}

// intersectSymbols intersects two sorted, duplicate-free symbol sets.
func intersectSymbols(a, b []rune) []rune {
	var out []rune
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
