package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVariantRank(t *testing.T) {
	// One representative per variant, listed in rank order.
	ranked := []Regex{
		EmptyString(),
		AnyChar(),
		EmptyLanguage(),
		Class('a'),
		Concat(Class('a'), Class('b')),
		Star(Class('a')),
		Union(Class('a'), Star(Class('a'))),
		Intersect(Star(Class('a')), Complement(Class('b'))),
		Complement(Class('a')),
	}
	for i, a := range ranked {
		require.Zero(t, Compare(a, a), "%v not equal to itself", a)
		for _, b := range ranked[i+1:] {
			assert.Negative(t, Compare(a, b), "want %v < %v", a, b)
			assert.Positive(t, Compare(b, a), "want %v > %v", b, a)
		}
	}
}

func TestCompareClasses(t *testing.T) {
	tests := []struct {
		name string
		a, b Regex
		want int
	}{
		{"equal sets", Class('a', 'b'), Class('b', 'a'), 0},
		{"first symbol decides", Class('a', 'z'), Class('b'), -1},
		{"prefix orders first", Class('a'), Class('a', 'b'), -1},
		{"longer set after", Class('a', 'b', 'c'), Class('a', 'b'), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(Compare(tt.a, tt.b)))
			assert.Equal(t, -tt.want, sign(Compare(tt.b, tt.a)))
		})
	}
}

func TestCompareOperandLists(t *testing.T) {
	a, b, c := Class('a'), Class('b'), Class('c')

	t.Run("element-wise before length", func(t *testing.T) {
		assert.Negative(t, Compare(Concat(a, b), Concat(a, c)))
		assert.Negative(t, Compare(Concat(a, c), Concat(b, b)))
	})

	t.Run("strict prefix orders first", func(t *testing.T) {
		assert.Negative(t, Compare(Concat(a, b), Concat(a, Concat(b, c))))
	})

	t.Run("wrapped variants compare by operand", func(t *testing.T) {
		assert.Negative(t, Compare(Star(a), Star(b)))
		assert.Negative(t, Compare(Complement(a), Complement(b)))
		assert.Negative(t, Compare(Union(a, Star(b)), Union(b, Star(b))))
	})
}

func TestEqualAcrossConstructionRoutes(t *testing.T) {
	a, b, c := Class('a'), Class('b'), Class('c')

	left := Union(Union(Star(a), Complement(b)), Concat(b, c))
	right := Union(Concat(b, c), Union(Complement(b), Star(a)))
	require.True(t, Equal(left, right))
	require.Zero(t, Compare(left, right))

	assert.False(t, Equal(left, Union(Star(a), Complement(b))))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
