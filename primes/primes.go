// Package primes provides primality testing, prime sieving, and integer
// factorization over uint64.
//
// IsPrime is exact for the whole uint64 range: trial division by small
// primes first, then the deterministic Miller-Rabin test with the
// 12-base witness set {2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}. All
// modular arithmetic goes through 128-bit intermediates (math/bits), so
// no operand size overflows.
//
// Sieve enumerates primes up to a limit with an Eratosthenes sieve
// backed by bitvec. Factor splits composites with trial division plus
// Pollard's rho, both fully deterministic.
package primes

import (
	"errors"
	"math/bits"
	"sort"

	"github.com/Actimia/aoc25/bitvec"
)

// ErrNoFactorization indicates Factor was asked about 0 or 1, which have
// no prime factorization.
var ErrNoFactorization = errors.New("primes: no factorization for n < 2")

// smallPrimes are the trial-division primes, doubling as the
// Miller-Rabin witness set that is deterministic for all uint64.
var smallPrimes = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime. Exact for every uint64.
// Complexity: O(log³ n) via 12 Miller-Rabin rounds.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range smallPrimes {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	// No factor ≤ 37, so anything below 41² is prime.
	if n < 41*41 {
		return true
	}

	// Miller-Rabin: n-1 = d·2^s with d odd.
	d, s := n-1, 0
	for d%2 == 0 {
		d /= 2
		s++
	}

	for _, a := range smallPrimes {
		if !millerRabinRound(n, a, d, s) {
			return false
		}
	}

	return true
}

// millerRabinRound runs one witness round; false means n is composite.
func millerRabinRound(n, a, d uint64, s int) bool {
	x := powmod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 1; i < s; i++ {
		x = mulmod(x, x, n)
		if x == n-1 {
			return true
		}
	}

	return false
}

// Sieve returns all primes p with p <= limit, in ascending order.
// Returns an empty slice for limit < 2.
// Complexity: O(limit · log log limit) time, O(limit) bits of memory.
func Sieve(limit int) []uint64 {
	if limit < 2 {
		return []uint64{}
	}

	// composite[i] marks i as composite; 0 and 1 are pre-marked.
	composite, err := bitvec.New(limit + 1)
	if err != nil {
		return []uint64{}
	}
	_ = composite.Set(0)
	_ = composite.Set(1)

	for i := 2; i*i <= limit; i++ {
		if set, _ := composite.Get(i); set {
			continue
		}
		for j := i * i; j <= limit; j += i {
			_ = composite.Set(j)
		}
	}

	primes := make([]uint64, 0, limit/2)
	for i := 2; i <= limit; i++ {
		if set, _ := composite.Get(i); !set {
			primes = append(primes, uint64(i))
		}
	}

	return primes
}

// Factor returns the prime factorization of n in ascending order with
// multiplicity, so the product of the result equals n.
// Returns ErrNoFactorization for n < 2.
//
// Small factors fall to trial division; remaining composites are split
// with Pollard's rho (deterministic polynomial offsets) and certified
// by IsPrime.
func Factor(n uint64) ([]uint64, error) {
	if n < 2 {
		return nil, ErrNoFactorization
	}

	var factors []uint64
	for _, p := range smallPrimes {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	if n > 1 {
		factors = splitFactor(n, factors)
	}

	sort.Slice(factors, func(i, j int) bool { return factors[i] < factors[j] })

	return factors, nil
}

// splitFactor appends the prime factors of n (which has no factor ≤ 37)
// to acc, recursing on rho splits.
func splitFactor(n uint64, acc []uint64) []uint64 {
	if n == 1 {
		return acc
	}
	if IsPrime(n) {
		return append(acc, n)
	}
	d := pollardRho(n)
	acc = splitFactor(d, acc)

	return splitFactor(n/d, acc)
}

// pollardRho finds a non-trivial factor of an odd composite n using
// Floyd cycle detection over x² + c, trying offsets c = 1, 2, ... until
// a split appears. Deterministic for a given n.
func pollardRho(n uint64) uint64 {
	for c := uint64(1); ; c++ {
		f := func(x uint64) uint64 {
			return (mulmod(x, x, n) + c) % n
		}

		x, y, d := uint64(2), uint64(2), uint64(1)
		for d == 1 {
			x = f(x)
			y = f(f(y))
			d = gcd(absDiff(x, y), n)
		}
		if d != n {
			return d
		}
	}
}

// mulmod returns x·y mod m without overflow. Requires m > 0; the
// 128-bit product's high word is always < m, so Div64 cannot panic.
func mulmod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x%m, y%m)
	_, rem := bits.Div64(hi, lo, m)

	return rem
}

// powmod returns base^exp mod m by binary exponentiation.
func powmod(base, exp, m uint64) uint64 {
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulmod(result, base, m)
		}
		base = mulmod(base, base, m)
		exp >>= 1
	}

	return result
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}

	return b - a
}
