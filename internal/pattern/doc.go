// Package pattern compiles POSIX extended regular expression syntax into
// canonical regex values.
//
// The compiler is a recursive-descent parser that never builds an
// intermediate tree: every grammar production calls the regex package's
// constructors directly, so any expression it returns is canonical by
// construction.
//
// Two compilation modes cover the two membership questions the module
// answers. ModeExact asks whether the whole input is in the pattern's
// language. ModeSearch asks whether any substring is, grep style, by
// padding each unanchored top-level branch with the universal language.
// Anchors carry meaning only at the edges of a top-level branch; anywhere
// else ^ and $ are ordinary characters, because the algebra has no
// position assertions to compile them to.
//
// Errors are reported as *ParseError values with a stable code, the
// 0-based rune offset into the pattern, and the offending text.
package pattern
