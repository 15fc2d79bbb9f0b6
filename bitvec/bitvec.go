// Package bitvec implements a fixed-length bit vector packed into 64-bit
// words.
//
// A BitVec of length n stores bits 0..n-1; out-of-range indices are
// reported with ErrOutOfRange rather than panicking. Set-algebra
// operations (Union, Intersect, Difference) work word-at-a-time and
// require both vectors to have the same length.
//
// Invariant: bits past the logical length in the final word are always
// zero, so Count and All can work on whole words.
package bitvec

import (
	"errors"
	"math/bits"
)

// wordBits is the number of bits per storage word.
const wordBits = 64

// Sentinel errors for bit-vector operations.
var (
	// ErrBadLength indicates a negative length was requested.
	ErrBadLength = errors.New("bitvec: length must be non-negative")

	// ErrOutOfRange indicates a bit index outside [0, Len).
	ErrOutOfRange = errors.New("bitvec: index out of range")

	// ErrLengthMismatch indicates a set operation between vectors of
	// different lengths.
	ErrLengthMismatch = errors.New("bitvec: vectors differ in length")
)

// BitVec is a fixed-length vector of bits. The zero value is an empty
// vector; construct sized vectors with New. BitVec is not safe for
// concurrent mutation.
type BitVec struct {
	n     int
	words []uint64
}

// New returns a vector of n bits, all zero.
// Returns ErrBadLength for n < 0.
// Complexity: O(n/64).
func New(n int) (*BitVec, error) {
	if n < 0 {
		return nil, ErrBadLength
	}

	return &BitVec{
		n:     n,
		words: make([]uint64, (n+wordBits-1)/wordBits),
	}, nil
}

// Len returns the number of bits in the vector.
func (b *BitVec) Len() int { return b.n }

// locate splits a bit index into word and in-word offsets.
func locate(i int) (word int, bit uint) {
	return i / wordBits, uint(i % wordBits)
}

// Set turns bit i on.
func (b *BitVec) Set(i int) error {
	if i < 0 || i >= b.n {
		return ErrOutOfRange
	}
	w, bit := locate(i)
	b.words[w] |= 1 << bit

	return nil
}

// Clear turns bit i off.
func (b *BitVec) Clear(i int) error {
	if i < 0 || i >= b.n {
		return ErrOutOfRange
	}
	w, bit := locate(i)
	b.words[w] &^= 1 << bit

	return nil
}

// Flip inverts bit i.
func (b *BitVec) Flip(i int) error {
	if i < 0 || i >= b.n {
		return ErrOutOfRange
	}
	w, bit := locate(i)
	b.words[w] ^= 1 << bit

	return nil
}

// Get reports whether bit i is set.
func (b *BitVec) Get(i int) (bool, error) {
	if i < 0 || i >= b.n {
		return false, ErrOutOfRange
	}
	w, bit := locate(i)

	return b.words[w]&(1<<bit) != 0, nil
}

// Count returns the number of set bits (population count).
// Complexity: O(n/64).
func (b *BitVec) Count() int {
	total := 0
	for _, w := range b.words {
		total += bits.OnesCount64(w)
	}

	return total
}

// Any reports whether at least one bit is set.
func (b *BitVec) Any() bool {
	for _, w := range b.words {
		if w != 0 {
			return true
		}
	}

	return false
}

// None reports whether no bit is set.
func (b *BitVec) None() bool { return !b.Any() }

// All reports whether every bit is set. An empty vector reports true.
func (b *BitVec) All() bool { return b.Count() == b.n }

// SetAll turns every bit on, keeping the tail of the final word zero.
func (b *BitVec) SetAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.maskTail()
}

// ClearAll turns every bit off.
func (b *BitVec) ClearAll() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Union sets b to the bitwise OR of b and other.
// Returns ErrLengthMismatch if the lengths differ.
func (b *BitVec) Union(other *BitVec) error {
	if other == nil || other.n != b.n {
		return ErrLengthMismatch
	}
	for i := range b.words {
		b.words[i] |= other.words[i]
	}

	return nil
}

// Intersect sets b to the bitwise AND of b and other.
// Returns ErrLengthMismatch if the lengths differ.
func (b *BitVec) Intersect(other *BitVec) error {
	if other == nil || other.n != b.n {
		return ErrLengthMismatch
	}
	for i := range b.words {
		b.words[i] &= other.words[i]
	}

	return nil
}

// Difference clears in b every bit set in other (b AND NOT other).
// Returns ErrLengthMismatch if the lengths differ.
func (b *BitVec) Difference(other *BitVec) error {
	if other == nil || other.n != b.n {
		return ErrLengthMismatch
	}
	for i := range b.words {
		b.words[i] &^= other.words[i]
	}

	return nil
}

// Clone returns an independent copy of the vector.
// Complexity: O(n/64).
func (b *BitVec) Clone() *BitVec {
	words := make([]uint64, len(b.words))
	copy(words, b.words)

	return &BitVec{n: b.n, words: words}
}

// NextSet returns the index of the first set bit at or after from, and
// whether one exists. A from past the end reports false.
// Complexity: O(n/64) worst case.
func (b *BitVec) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= b.n {
		return 0, false
	}

	w, bit := locate(from)
	// Mask off bits below from in the first word, then scan word-wise.
	cur := b.words[w] &^ ((1 << bit) - 1)
	for {
		if cur != 0 {
			idx := w*wordBits + bits.TrailingZeros64(cur)
			if idx >= b.n {
				return 0, false
			}

			return idx, true
		}
		w++
		if w >= len(b.words) {
			return 0, false
		}
		cur = b.words[w]
	}
}

// maskTail zeroes bits past the logical length in the final word.
func (b *BitVec) maskTail() {
	if b.n%wordBits == 0 || len(b.words) == 0 {
		return
	}
	last := len(b.words) - 1
	b.words[last] &= (1 << uint(b.n%wordBits)) - 1
}
