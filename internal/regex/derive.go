package regex

import "slices"

// Nullable reports whether r accepts the empty string.
func Nullable(r Regex) bool { return r.nullable() }

// Derive returns the Brzozowski derivative of r with respect to sym: the
// canonical expression for the set of suffixes w such that sym followed by
// w is accepted by r.
func Derive(r Regex, sym rune) Regex { return r.derive(sym) }

// DeriveString folds Derive over the symbols of s from left to right.
func DeriveString(r Regex, s string) Regex {
	for _, sym := range s {
		r = r.derive(sym)
	}
	return r
}

// Match reports whether s, taken in full, is in the language of r.
func Match(r Regex, s string) bool {
	return Nullable(DeriveString(r, s))
}

// nullabilityTerm promotes the nullability verdict of r back into the
// algebra: EmptyString when r is nullable, EmptyLanguage otherwise. The
// concatenation derivative multiplies by this term to drop or keep the
// tail derivative.
func nullabilityTerm(r Regex) Regex {
	if r.nullable() {
		return EmptyString()
	}
	return EmptyLanguage()
}

func (emptyLanguage) nullable() bool { return false }
func (emptyString) nullable() bool   { return true }
func (anyChar) nullable() bool       { return false }
func (charClass) nullable() bool     { return false }

func (s sequence) nullable() bool {
	for _, e := range s.elems {
		if !e.nullable() {
			return false
		}
	}
	return true
}

func (repetition) nullable() bool { return true }

func (u union) nullable() bool {
	for _, e := range u.elems {
		if e.nullable() {
			return true
		}
	}
	return false
}

func (i intersection) nullable() bool {
	for _, e := range i.elems {
		if !e.nullable() {
			return false
		}
	}
	return true
}

func (n negation) nullable() bool { return !n.inner.nullable() }

func (emptyLanguage) derive(rune) Regex { return EmptyLanguage() }
func (emptyString) derive(rune) Regex   { return EmptyLanguage() }
func (anyChar) derive(rune) Regex       { return EmptyString() }

func (c charClass) derive(sym rune) Regex {
	if _, ok := slices.BinarySearch(c.symbols, sym); ok {
		return EmptyString()
	}
	return EmptyLanguage()
}

// derive for a sequence splits it as head·tail: the derivative is the head
// derivative followed by the tail, plus the tail derivative when the head
// is nullable and may be skipped.
func (s sequence) derive(sym rune) Regex {
	head, tail := s.elems[0], ConcatList(s.elems[1:])
	viaHead := Concat(head.derive(sym), tail)
	viaTail := Concat(nullabilityTerm(head), tail.derive(sym))
	return Union(viaHead, viaTail)
}

func (r repetition) derive(sym rune) Regex {
	return Concat(r.inner.derive(sym), Star(r.inner))
}

func (u union) derive(sym rune) Regex {
	out := u.elems[0].derive(sym)
	for _, e := range u.elems[1:] {
		out = Union(out, e.derive(sym))
	}
	return out
}

func (i intersection) derive(sym rune) Regex {
	out := i.elems[0].derive(sym)
	for _, e := range i.elems[1:] {
		out = Intersect(out, e.derive(sym))
	}
	return out
}

func (n negation) derive(sym rune) Regex {
	return Complement(n.inner.derive(sym))
}
