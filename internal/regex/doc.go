// Package regex implements a canonical regular-expression algebra and the
// Brzozowski-derivative operations built on it.
//
// This is the foundational layer: every other internal package imports
// regex, and regex imports nothing internal. Expressions are immutable and
// structurally shared, and they exist only in canonical form. The exported
// constructors rewrite every value on construction, so structural equality
// (Compare == 0) is a sound, though not complete, test for language
// equivalence: canonically equal expressions always denote the same
// language, while some equivalent languages still render as distinct
// expressions.
//
// Design constraints the rest of the module relies on:
//
//   - The variant set is closed. Regex is a sealed interface; the concrete
//     variants are unexported and can only be produced by the constructors
//     in this package. Adding a variant without implementing every
//     operation fails to compile.
//   - Canonical form is established at construction time, never repaired
//     afterwards. Operand lists of union and intersection are strictly
//     sorted and duplicate-free under Compare, sequences are flat, and a
//     character class always holds a non-empty, ascending, duplicate-free
//     symbol set.
//   - No operation mutates an existing expression, so subtrees may be
//     shared freely across goroutines without synchronization.
package regex
