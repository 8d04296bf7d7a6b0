package pattern

import (
	"fmt"
	"strings"

	"github.com/quellex/greb/internal/regex"
)

// Mode selects the membership question a compiled pattern answers.
type Mode int

const (
	// ModeExact accepts an input only when the whole input is in the
	// pattern's language.
	ModeExact Mode = iota

	// ModeSearch accepts an input when any substring is in the
	// pattern's language. Unanchored top-level branches are padded with
	// the universal language on the open sides.
	ModeSearch
)

// String returns the mode name used in configuration and output.
func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeSearch:
		return "search"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "exact":
		return ModeExact, nil
	case "search":
		return ModeSearch, nil
	}
	return ModeExact, fmt.Errorf("unknown mode %q (want exact or search)", s)
}

// maxRepeat bounds counted repetition. The quantifier builders expand
// counts linearly, so an unbounded count is a memory hazard.
const maxRepeat = 1000

// escapableMeta lists the metacharacters a backslash escape makes literal.
// Escaping anything else is an error.
const escapableMeta = `.[]()*+?{}|^$\`

// Compile parses a pattern and returns the canonical expression for it
// under the given mode. Errors are always *ParseError values.
func Compile(src string, mode Mode) (regex.Regex, error) {
	p := &parser{src: []rune(src), mode: mode}
	r, err := p.parseAlternation(true)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		// Only an unmatched closing parenthesis can stop the
		// top-level parse early.
		return nil, newParseError(ErrCodeUnbalancedParen, p.pos, ")")
	}
	return r, nil
}

// MustCompile is Compile for patterns known to be valid; it panics on a
// parse error.
func MustCompile(src string, mode Mode) regex.Regex {
	r, err := Compile(src, mode)
	if err != nil {
		panic(fmt.Sprintf("pattern: MustCompile(%q): %v", src, err))
	}
	return r
}

type parser struct {
	src  []rune
	pos  int
	mode Mode
}

// parseAlternation parses bar-separated branches. At the top level each
// branch carries its own anchors and search padding; inside a group the
// branches are plain subexpressions.
func (p *parser) parseAlternation(top bool) (regex.Regex, error) {
	if top && len(p.src) > 0 && p.src[0] == '|' {
		return nil, newParseError(ErrCodeDisallowedFirst, 0, "|")
	}
	out, err := p.parseBranch(top)
	if err != nil {
		return nil, err
	}
	for p.pos < len(p.src) && p.src[p.pos] == '|' {
		bar := p.pos
		p.pos++
		switch {
		case p.pos == len(p.src):
			return nil, newParseError(ErrCodeDisallowedLast, bar, "|")
		case p.src[p.pos] == '|':
			return nil, newParseError(ErrCodeDisallowedSequence, bar, "||")
		case p.src[p.pos] == ')':
			return nil, newParseError(ErrCodeDisallowedSequence, bar, "|)")
		}
		next, err := p.parseBranch(top)
		if err != nil {
			return nil, err
		}
		out = regex.Union(out, next)
	}
	return out, nil
}

// parseBranch parses one alternation branch. Top-level branches own their
// anchors: a leading ^ and a trailing $ bind to the branch, and in search
// mode every unanchored side is padded with the universal language.
func (p *parser) parseBranch(top bool) (regex.Regex, error) {
	anchoredStart := false
	if top && p.pos < len(p.src) && p.src[p.pos] == '^' {
		anchoredStart = true
		p.pos++
	}
	body, err := p.parseConcat(top)
	if err != nil {
		return nil, err
	}
	anchoredEnd := false
	if top && p.pos < len(p.src) && p.src[p.pos] == '$' {
		// parseConcat stops at $ only in branch-trailing position.
		anchoredEnd = true
		p.pos++
	}
	if p.mode != ModeSearch {
		return body, nil
	}
	pad := regex.Star(regex.AnyChar())
	if !anchoredStart && !anchoredEnd && regex.Equal(body, regex.EmptyString()) {
		return pad, nil
	}
	if !anchoredStart {
		body = regex.Concat(pad, body)
	}
	if !anchoredEnd {
		body = regex.Concat(body, pad)
	}
	return body, nil
}

func (p *parser) parseConcat(top bool) (regex.Regex, error) {
	var parts []regex.Regex
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		if ch == '|' || ch == ')' {
			break
		}
		if top && ch == '$' && p.trailingAnchor() {
			break
		}
		piece, err := p.parsePiece(len(parts) == 0)
		if err != nil {
			return nil, err
		}
		parts = append(parts, piece)
	}
	return regex.ConcatList(parts), nil
}

// trailingAnchor reports whether the $ at the current position closes its
// branch, meaning the next rune is an alternation bar or the pattern ends.
func (p *parser) trailingAnchor() bool {
	return p.pos+1 == len(p.src) || p.src[p.pos+1] == '|'
}

func (p *parser) parsePiece(first bool) (regex.Regex, error) {
	if first && isQuantifier(p.src[p.pos]) {
		// A quantifier needs a preceding atom; at the start of an
		// expression there is none.
		return nil, newParseError(ErrCodeDisallowedFirst, p.pos, string(p.src[p.pos]))
	}
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return p.applyQuantifier(atom)
}

func isQuantifier(ch rune) bool {
	return ch == '*' || ch == '+' || ch == '?' || ch == '{'
}

// applyQuantifier applies at most one quantifier to the atom. A second
// quantifier in a row has no defined reading here; non-greedy forms are
// out of scope.
func (p *parser) applyQuantifier(atom regex.Regex) (regex.Regex, error) {
	if p.pos == len(p.src) || !isQuantifier(p.src[p.pos]) {
		return atom, nil
	}
	var err error
	switch p.src[p.pos] {
	case '*':
		p.pos++
		atom = regex.Star(atom)
	case '+':
		p.pos++
		atom = regex.OneOrMore(atom)
	case '?':
		p.pos++
		atom = regex.ZeroOrOne(atom)
	case '{':
		atom, err = p.parseBraceQuantifier(atom)
		if err != nil {
			return nil, err
		}
	}
	if p.pos < len(p.src) && isQuantifier(p.src[p.pos]) {
		return nil, newParseError(ErrCodeDisallowedSequence, p.pos-1, string(p.src[p.pos-1:p.pos+1]))
	}
	return atom, nil
}

// parseBraceQuantifier parses {n}, {n,} and {n,m} and expands them through
// the quantifier builders. The position is on the opening brace.
func (p *parser) parseBraceQuantifier(atom regex.Regex) (regex.Regex, error) {
	brace := p.pos
	p.pos++
	min, err := p.parseCount(brace)
	if err != nil {
		return nil, err
	}
	switch {
	case p.pos == len(p.src):
		return nil, newParseError(ErrCodeUnbalancedBrace, brace, "{")
	case p.src[p.pos] == '}':
		p.pos++
		if min > maxRepeat {
			return nil, p.braceError(brace)
		}
		return regex.Exactly(atom, min), nil
	case p.src[p.pos] == ',':
		p.pos++
	default:
		return nil, newParseError(ErrCodeDisallowedSequence, brace, string(p.src[brace:p.pos+1]))
	}
	if p.pos == len(p.src) {
		return nil, newParseError(ErrCodeUnbalancedBrace, brace, "{")
	}
	if p.src[p.pos] == '}' {
		p.pos++
		if min > maxRepeat {
			return nil, p.braceError(brace)
		}
		return regex.AtLeast(atom, min), nil
	}
	max, err := p.parseCount(brace)
	if err != nil {
		return nil, err
	}
	switch {
	case p.pos == len(p.src):
		return nil, newParseError(ErrCodeUnbalancedBrace, brace, "{")
	case p.src[p.pos] != '}':
		return nil, newParseError(ErrCodeDisallowedSequence, brace, string(p.src[brace:p.pos+1]))
	}
	p.pos++
	switch {
	case min > maxRepeat || max > maxRepeat || min > max:
		return nil, p.braceError(brace)
	case min == max:
		// Bounded requires a strict min < max; a fixed count is
		// Exactly's case.
		return regex.Exactly(atom, min), nil
	}
	return regex.Bounded(atom, min, max), nil
}

// braceError rejects a structurally valid brace quantifier with
// unacceptable bounds, reporting the whole brace text.
func (p *parser) braceError(brace int) error {
	return newParseError(ErrCodeDisallowedSequence, brace, string(p.src[brace:p.pos]))
}

func (p *parser) parseCount(brace int) (int, error) {
	if p.pos == len(p.src) {
		return 0, newParseError(ErrCodeUnbalancedBrace, brace, "{")
	}
	if p.src[p.pos] < '0' || p.src[p.pos] > '9' {
		return 0, newParseError(ErrCodeExpectedInteger, p.pos, string(p.src[p.pos]))
	}
	n := 0
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		n = n*10 + int(p.src[p.pos]-'0')
		if n > maxRepeat {
			// Clamp to keep the arithmetic safe; the callers
			// reject anything past the cap.
			n = maxRepeat + 1
		}
		p.pos++
	}
	return n, nil
}

func (p *parser) parseAtom() (regex.Regex, error) {
	switch ch := p.src[p.pos]; ch {
	case '(':
		return p.parseGroup()
	case '[':
		return p.parseBracket()
	case '\\':
		return p.parseEscape()
	case '.':
		p.pos++
		return regex.AnyChar(), nil
	default:
		p.pos++
		return regex.Class(ch), nil
	}
}

func (p *parser) parseGroup() (regex.Regex, error) {
	open := p.pos
	p.pos++
	switch {
	case p.pos == len(p.src):
		return nil, newParseError(ErrCodeUnbalancedParen, open, "(")
	case p.src[p.pos] == ')':
		return nil, newParseError(ErrCodeEmptyGroup, open, "()")
	case p.src[p.pos] == '|':
		return nil, newParseError(ErrCodeDisallowedSequence, open, "(|")
	}
	inner, err := p.parseAlternation(false)
	if err != nil {
		return nil, err
	}
	if p.pos == len(p.src) || p.src[p.pos] != ')' {
		return nil, newParseError(ErrCodeUnbalancedParen, open, "(")
	}
	p.pos++
	return inner, nil
}

func (p *parser) parseEscape() (regex.Regex, error) {
	backslash := p.pos
	if p.pos+1 == len(p.src) {
		return nil, newParseError(ErrCodeEndOfPattern, backslash, `\`)
	}
	ch := p.src[p.pos+1]
	if !strings.ContainsRune(escapableMeta, ch) {
		return nil, newParseError(ErrCodeEscapedOrdinary, backslash, string(p.src[backslash:backslash+2]))
	}
	p.pos += 2
	return regex.Class(ch), nil
}

// parseBracket parses a bracket expression. A ] in first position is a
// literal member, a - in first or last position is a literal member, and
// a negated set compiles to the single-symbol complement: any one symbol
// outside the listed set.
func (p *parser) parseBracket() (regex.Regex, error) {
	open := p.pos
	p.pos++
	negated := false
	if p.pos < len(p.src) && p.src[p.pos] == '^' {
		negated = true
		p.pos++
	}
	var symbols []rune
	for first := true; ; first = false {
		if p.pos >= len(p.src) {
			return nil, newParseError(ErrCodeUnbalancedBracket, open, "[")
		}
		ch := p.src[p.pos]
		if ch == ']' && !first {
			p.pos++
			break
		}
		if ch == '[' && p.pos+1 < len(p.src) {
			switch p.src[p.pos+1] {
			case ':', '.', '=':
				// POSIX named classes, collating elements and
				// equivalence classes are locale machinery;
				// out of scope.
				return nil, newParseError(ErrCodeDisallowedSequence, p.pos, string(p.src[p.pos:p.pos+2]))
			}
		}
		if p.pos+2 < len(p.src) && p.src[p.pos+1] == '-' && p.src[p.pos+2] != ']' {
			lo, hi := ch, p.src[p.pos+2]
			if lo > hi {
				return nil, newParseError(ErrCodeDisallowedSequence, p.pos, string(p.src[p.pos:p.pos+3]))
			}
			for c := lo; c <= hi; c++ {
				symbols = append(symbols, c)
			}
			p.pos += 3
			continue
		}
		symbols = append(symbols, ch)
		p.pos++
	}
	if negated {
		return regex.Intersect(regex.AnyChar(), regex.Complement(regex.Class(symbols...))), nil
	}
	return regex.Class(symbols...), nil
}
