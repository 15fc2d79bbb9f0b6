package lcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Actimia/aoc25/lcs"
)

// isSubsequence reports whether sub appears in s in order.
func isSubsequence[T comparable](sub, s []T) bool {
	i := 0
	for _, v := range s {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}

	return i == len(sub)
}

// TestLongestString_KnownValues pins textbook pairs with a unique answer.
func TestLongestString_KnownValues(t *testing.T) {
	assert.Equal(t, "GTAB", lcs.LongestString("AGGTAB", "GXTXAYB"))
	assert.Equal(t, "abc", lcs.LongestString("abc", "abc"))
	assert.Equal(t, "", lcs.LongestString("abc", "xyz"))
	assert.Equal(t, "", lcs.LongestString("", "anything"))
}

// TestLongest_IsCommonSubsequence verifies the structural contract on a
// pair with several maximal answers.
func TestLongest_IsCommonSubsequence(t *testing.T) {
	a := []rune("ABCBDAB")
	b := []rune("BDCABA")

	got := lcs.Longest(a, b)
	require.Len(t, got, 4)
	assert.True(t, isSubsequence(got, a))
	assert.True(t, isSubsequence(got, b))
}

// TestLongest_Deterministic: repeated calls return the identical slice.
func TestLongest_Deterministic(t *testing.T) {
	a := []rune("ABCBDAB")
	b := []rune("BDCABA")
	first := lcs.Longest(a, b)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, lcs.Longest(a, b))
	}
}

// TestLongest_Generic exercises a non-string element type.
func TestLongest_Generic(t *testing.T) {
	a := []int{1, 4, 5, 6, 9, 10}
	b := []int{4, 9, 6, 10}

	got := lcs.Longest(a, b)
	assert.Equal(t, []int{4, 6, 10}, got)
}

// TestLength_MatchesLongest: the rolling-row length agrees with the
// reconstructing variant.
func TestLength_MatchesLongest(t *testing.T) {
	pairs := [][2]string{
		{"AGGTAB", "GXTXAYB"},
		{"ABCBDAB", "BDCABA"},
		{"", ""},
		{"same", "same"},
		{"abc", "xyz"},
		{"banana", "ananas"},
	}
	for _, p := range pairs {
		want := len(lcs.Longest([]rune(p[0]), []rune(p[1])))
		assert.Equal(t, want, lcs.Length([]rune(p[0]), []rune(p[1])), "%q vs %q", p[0], p[1])
	}
}

// TestLongestString_Unicode keeps multi-byte runes whole.
func TestLongestString_Unicode(t *testing.T) {
	assert.Equal(t, "日本", lcs.LongestString("日本語", "日語本"))
}

// TestLongest_EmptyNotNil: no overlap still yields a usable slice.
func TestLongest_EmptyNotNil(t *testing.T) {
	got := lcs.Longest([]int{1}, []int{2})
	require.NotNil(t, got)
	assert.Empty(t, got)
}
