package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroOrOne(t *testing.T) {
	a := Class('a')
	r := ZeroOrOne(a)

	require.True(t, Equal(r, Union(EmptyString(), a)))
	assert.True(t, Match(r, ""))
	assert.True(t, Match(r, "a"))
	assert.False(t, Match(r, "aa"))
}

func TestExactly(t *testing.T) {
	a := Class('a')

	t.Run("zero copies is the empty string", func(t *testing.T) {
		require.True(t, Equal(Exactly(a, 0), EmptyString()))
	})

	t.Run("one copy is the expression itself", func(t *testing.T) {
		require.True(t, Equal(Exactly(a, 1), a))
	})

	t.Run("copies concatenate flat", func(t *testing.T) {
		r := Exactly(a, 3)
		assert.Equal(t, "[a][a][a]", r.String())
		assert.False(t, Match(r, "aa"))
		assert.True(t, Match(r, "aaa"))
		assert.False(t, Match(r, "aaaa"))
	})

	t.Run("negative count panics", func(t *testing.T) {
		require.Panics(t, func() { Exactly(a, -1) })
	})
}

func TestBounded(t *testing.T) {
	a := Class('a')

	t.Run("accepts counts inside the bounds", func(t *testing.T) {
		r := Bounded(a, 1, 3)
		assert.False(t, Match(r, ""))
		assert.True(t, Match(r, "a"))
		assert.True(t, Match(r, "aa"))
		assert.True(t, Match(r, "aaa"))
		assert.False(t, Match(r, "aaaa"))
	})

	t.Run("zero lower bound makes it optional", func(t *testing.T) {
		r := Bounded(a, 0, 2)
		assert.True(t, Match(r, ""))
		assert.True(t, Match(r, "aa"))
		assert.False(t, Match(r, "aaa"))
	})

	t.Run("bounds must be strictly increasing", func(t *testing.T) {
		require.Panics(t, func() { Bounded(a, 2, 2) })
		require.Panics(t, func() { Bounded(a, 3, 2) })
		require.Panics(t, func() { Bounded(a, -1, 2) })
	})
}

func TestAtLeast(t *testing.T) {
	a := Class('a')

	t.Run("zero copies is the closure", func(t *testing.T) {
		require.True(t, Equal(AtLeast(a, 0), Star(a)))
	})

	t.Run("mandatory prefix then closure", func(t *testing.T) {
		r := AtLeast(a, 2)
		assert.Equal(t, "[a][a][a]*", r.String())
		assert.False(t, Match(r, "a"))
		assert.True(t, Match(r, "aa"))
		assert.True(t, Match(r, "aaaaa"))
		assert.False(t, Match(r, "aab"))
	})

	t.Run("negative count panics", func(t *testing.T) {
		require.Panics(t, func() { AtLeast(a, -1) })
	})
}

func TestOneOrMore(t *testing.T) {
	a := Class('a')
	r := OneOrMore(a)

	require.True(t, Equal(r, AtLeast(a, 1)))
	assert.False(t, Match(r, ""))
	assert.True(t, Match(r, "a"))
	assert.True(t, Match(r, "aaaa"))
}
