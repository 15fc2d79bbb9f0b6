// Package lcs computes longest common subsequences of slices over any
// comparable element type.
//
// A common subsequence preserves relative order but need not be
// contiguous. Longest reconstructs one maximal subsequence
// deterministically; Length answers only the length using two rolling
// rows.
package lcs

// Longest returns a longest common subsequence of a and b.
//
// When several subsequences of maximal length exist, ties in the
// backtrack prefer consuming elements of a first, so the result is
// deterministic for given inputs. No common elements yields an empty
// (non-nil) slice.
//
// Full DP table and backtrack.
// Complexity: O(|a|·|b|) time and space.
func Longest[T comparable](a, b []T) []T {
	table := buildTable(a, b)

	// Walk back from the far corner, collecting matches in reverse.
	out := make([]T, 0, table[len(a)][len(b)])
	i, j := len(a), len(b)
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out = append(out, a[i-1])
			i--
			j--
		case table[i-1][j] >= table[i][j-1]:
			i--
		default:
			j--
		}
	}

	// Reverse into forward order.
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}

// Length returns the length of a longest common subsequence of a and b
// without reconstructing it.
// Complexity: O(|a|·|b|) time, O(|b|) space.
func Length[T comparable](a, b []T) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}

	return prev[len(b)]
}

// LongestString returns a longest common subsequence of two strings,
// operating on runes so multi-byte characters stay intact.
func LongestString(a, b string) string {
	return string(Longest([]rune(a), []rune(b)))
}

// buildTable fills the classic (|a|+1)×(|b|+1) length table where
// table[i][j] is the LCS length of a[:i] and b[:j].
func buildTable[T comparable](a, b []T) [][]int {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}

	return table
}
