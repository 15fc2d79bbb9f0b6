// Package bloom implements a Bloom filter: a probabilistic set membership
// structure with no false negatives and a tunable false-positive rate.
//
// The filter stores k derived bit positions per inserted key in a
// bitvec.BitVec. Positions are derived by double hashing from two 64-bit
// FNV digests (Kirsch–Mitzenmacher: index_i = h1 + i·h2 mod m), so no
// per-hash re-digesting is needed.
//
// Besides membership, the filter estimates its own state from the number
// of set bits: ApproxItems approximates how many distinct keys were
// inserted, and FalsePositiveRate the current chance that Has lies.
//
// Complexity: Insert and Has are O(k); the estimates are O(m/64).
package bloom

import (
	"errors"
	"hash/fnv"
	"math"

	"github.com/Actimia/aoc25/bitvec"
)

// maxHashes caps the number of derived hash functions.
const maxHashes = 64

// Sentinel errors for filter construction.
var (
	// ErrBadBitCount indicates a non-positive filter size.
	ErrBadBitCount = errors.New("bloom: bit count must be positive")

	// ErrBadHashCount indicates a hash count outside [1, 64].
	ErrBadHashCount = errors.New("bloom: hash count must be in [1, 64]")

	// ErrBadItemCount indicates a non-positive expected item count.
	ErrBadItemCount = errors.New("bloom: expected item count must be positive")

	// ErrBadRate indicates a false-positive rate outside (0, 1).
	ErrBadRate = errors.New("bloom: false-positive rate must be in (0, 1)")
)

// Filter is a Bloom filter. The zero value is not usable; construct with
// New or Optimal. Filter is not safe for concurrent mutation.
type Filter struct {
	bits   *bitvec.BitVec
	hashes int
}

// New returns a filter of at least the given number of bits (rounded up to
// a whole number of 64-bit words) using the given number of derived hashes.
func New(bits, hashes int) (*Filter, error) {
	if bits <= 0 {
		return nil, ErrBadBitCount
	}
	if hashes < 1 || hashes > maxHashes {
		return nil, ErrBadHashCount
	}

	// Round up to a word multiple; partial words would waste the tail anyway.
	words := (bits + 63) / 64
	vec, err := bitvec.New(words * 64)
	if err != nil {
		return nil, err
	}

	return &Filter{bits: vec, hashes: hashes}, nil
}

// Optimal sizes a filter for an expected number of items and a target
// false-positive rate, using the standard sizing formulas
// (https://en.wikipedia.org/wiki/Bloom_filter#Optimal_number_of_hash_functions):
//
//	k = -ln(p) / ln(2)
//	m ≈ n · 2.08 · -ln(p)
func Optimal(expectedItems int, fpRate float64) (*Filter, error) {
	if expectedItems <= 0 {
		return nil, ErrBadItemCount
	}
	if fpRate <= 0 || fpRate >= 1 {
		return nil, ErrBadRate
	}

	hashes := int(-math.Log(fpRate) / math.Ln2)
	if hashes < 1 {
		hashes = 1
	}
	if hashes > maxHashes {
		hashes = maxHashes
	}
	bits := int(float64(expectedItems) * 2.08 * -math.Log(fpRate))
	if bits < 64 {
		bits = 64
	}

	return New(bits, hashes)
}

// Insert adds a key to the filter.
func (f *Filter) Insert(key []byte) {
	h1, h2 := digest(key)
	m := uint64(f.bits.Len())
	for i := 0; i < f.hashes; i++ {
		// Index is always in range, so the Set error cannot occur.
		_ = f.bits.Set(int((h1 + uint64(i)*h2) % m))
	}
}

// InsertString adds a string key to the filter.
func (f *Filter) InsertString(key string) {
	f.Insert([]byte(key))
}

// Has reports whether the key may have been inserted. A false result is
// definitive; a true result is wrong with probability ~FalsePositiveRate.
func (f *Filter) Has(key []byte) bool {
	h1, h2 := digest(key)
	m := uint64(f.bits.Len())
	for i := 0; i < f.hashes; i++ {
		on, _ := f.bits.Get(int((h1 + uint64(i)*h2) % m))
		if !on {
			return false
		}
	}

	return true
}

// HasString reports whether the string key may have been inserted.
func (f *Filter) HasString(key string) bool {
	return f.Has([]byte(key))
}

// Bits returns the filter size in bits.
func (f *Filter) Bits() int { return f.bits.Len() }

// Hashes returns the number of derived hash functions.
func (f *Filter) Hashes() int { return f.hashes }

// SetBits returns the number of bits currently set.
func (f *Filter) SetBits() int { return f.bits.Count() }

// ApproxItems estimates the number of distinct keys inserted so far, from
// the fill level of the bit array
// (https://en.wikipedia.org/wiki/Bloom_filter#Approximating_the_number_of_items_in_a_Bloom_filter):
//
//	n* = -(m/k) · ln(1 - x/m)
func (f *Filter) ApproxItems() int {
	k := float64(f.hashes)
	m := float64(f.bits.Len())
	x := float64(f.bits.Count())

	return int(math.Round(-(m / k) * math.Log(1.0-x/m)))
}

// FalsePositiveRate estimates the current probability that Has reports
// true for a key that was never inserted, from the observed fill level
// (https://en.wikipedia.org/wiki/Bloom_filter#Probability_of_false_positives).
func (f *Filter) FalsePositiveRate() float64 {
	k := float64(f.hashes)
	m := float64(f.bits.Len())
	n := float64(f.bits.Count())

	return math.Pow(1.0-math.Exp(-k*n/m), k)
}

// digest returns two independent 64-bit digests of the key. h2 is forced
// odd so the double-hashing stride never degenerates on power-of-two sizes.
func digest(key []byte) (h1, h2 uint64) {
	a := fnv.New64a()
	_, _ = a.Write(key)
	h1 = a.Sum64()

	b := fnv.New64()
	_, _ = b.Write(key)
	h2 = b.Sum64() | 1

	return h1, h2
}
