// Package editdist implements string edit distances: Levenshtein, the
// optimal string alignment variant (OSA), and the unrestricted
// Damerau–Levenshtein distance.
//
// All distances operate on runes, so multi-byte characters count as
// single symbols, and all are symmetric with distance 0 iff the inputs
// are equal.
//
// Which to pick?
//
//   - Levenshtein counts insertions, deletions and substitutions.
//   - OSA adds adjacent transposition but never edits a substring twice;
//     it is cheaper but violates the triangle inequality.
//   - DamerauLevenshtein is the true metric with transpositions; the
//     classic discriminating pair is ("ca", "abc"): OSA 3, Damerau 2.
package editdist

// Levenshtein returns the minimum number of single-rune insertions,
// deletions and substitutions transforming a into b.
//
// Rolling two-row DP.
// Complexity: O(|a|·|b|) time, O(min(|a|,|b|)) space.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	// Keep the shorter string on the row axis to minimize memory.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[len(rb)]
}

// OSA returns the optimal string alignment distance: Levenshtein plus
// adjacent transposition, under the restriction that no substring is
// edited more than once.
//
// Three-row DP (the transposition case looks two rows back).
// Complexity: O(|a|·|b|) time, O(|b|) space.
func OSA(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	prev2 := make([]int, len(rb)+1)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				cur[j] = min2(cur[j], prev2[j-2]+1)
			}
		}
		prev2, prev, cur = prev, cur, prev2
	}

	return prev[len(rb)]
}

// DamerauLevenshtein returns the unrestricted Damerau–Levenshtein
// distance: insertions, deletions, substitutions and transpositions of
// two adjacent runes, with no edit-once restriction. Unlike OSA this is
// a true metric.
//
// Full DP matrix with last-occurrence bookkeeping per rune.
// Complexity: O(|a|·|b|) time, O(|a|·|b|) space.
func DamerauLevenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	maxDist := la + lb

	// d has a sentinel row/column of maxDist guarding the transposition
	// lookups, hence the +2 dimensions and the +1 index shift.
	d := make([][]int, la+2)
	for i := range d {
		d[i] = make([]int, lb+2)
	}
	d[0][0] = maxDist
	for i := 0; i <= la; i++ {
		d[i+1][0] = maxDist
		d[i+1][1] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j+1] = maxDist
		d[1][j+1] = j
	}

	// lastRow[r] is the last row index where rune r occurred in a.
	lastRow := make(map[rune]int, la)

	for i := 1; i <= la; i++ {
		lastCol := 0 // last column where a[i-1] matched in b
		for j := 1; j <= lb; j++ {
			k := lastRow[rb[j-1]]
			l := lastCol

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
				lastCol = j
			}

			d[i+1][j+1] = min2(
				min3(d[i][j]+cost, d[i+1][j]+1, d[i][j+1]+1),
				// Transpose the matched pair, paying for everything
				// between the two occurrences.
				d[k][l]+(i-k-1)+1+(j-l-1),
			)
		}
		lastRow[ra[i-1]] = i
	}

	return d[la+1][lb+1]
}

func min2(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func min3(a, b, c int) int {
	return min2(min2(a, b), c)
}
