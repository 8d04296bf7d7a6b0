package pattern

import (
	"errors"
	"fmt"
)

// ParseErrorCode categorizes pattern parse errors.
type ParseErrorCode string

const (
	// ErrCodeEscapedOrdinary indicates a backslash before a character
	// that has no special meaning to escape.
	ErrCodeEscapedOrdinary ParseErrorCode = "ESCAPED_ORDINARY_CHARACTER"

	// ErrCodeUnbalancedParen indicates a group that never closes or a
	// closing parenthesis that never opened.
	ErrCodeUnbalancedParen ParseErrorCode = "UNBALANCED_PARENTHESIS"

	// ErrCodeUnbalancedBracket indicates a bracket expression that never
	// closes.
	ErrCodeUnbalancedBracket ParseErrorCode = "UNBALANCED_BRACKET"

	// ErrCodeUnbalancedBrace indicates a counted quantifier that never
	// closes.
	ErrCodeUnbalancedBrace ParseErrorCode = "UNBALANCED_BRACE"

	// ErrCodeEmptyGroup indicates a parenthesized expression with
	// nothing inside.
	ErrCodeEmptyGroup ParseErrorCode = "EMPTY_PARENTHESIZED_EXPRESSION"

	// ErrCodeDisallowedFirst indicates a character that cannot open an
	// expression, such as a quantifier with nothing to repeat.
	ErrCodeDisallowedFirst ParseErrorCode = "DISALLOWED_FIRST_CHARACTER"

	// ErrCodeDisallowedLast indicates a character that cannot close the
	// pattern, such as a trailing alternation bar.
	ErrCodeDisallowedLast ParseErrorCode = "DISALLOWED_LAST_CHARACTER"

	// ErrCodeDisallowedSequence indicates a character sequence with no
	// valid reading, such as double quantifiers or a reversed range.
	ErrCodeDisallowedSequence ParseErrorCode = "DISALLOWED_CHARACTER_SEQUENCE"

	// ErrCodeExpectedInteger indicates a counted quantifier whose bound
	// is not a decimal integer.
	ErrCodeExpectedInteger ParseErrorCode = "EXPECTED_INTEGER"

	// ErrCodeEndOfPattern indicates the pattern ended where more input
	// was required, such as after a trailing backslash.
	ErrCodeEndOfPattern ParseErrorCode = "END_OF_PATTERN"
)

// ParseError reports a syntax error in a pattern.
//
// Offset is the 0-based rune offset of the error in the pattern source.
// Text holds the offending substring when one exists.
type ParseError struct {
	Code   ParseErrorCode
	Offset int
	Text   string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%s at offset %d: %q", e.Code, e.Offset, e.Text)
	}
	return fmt.Sprintf("%s at offset %d", e.Code, e.Offset)
}

// IsParseError reports whether err is a pattern parse error.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func newParseError(code ParseErrorCode, offset int, text string) *ParseError {
	return &ParseError{Code: code, Offset: offset, Text: text}
}
