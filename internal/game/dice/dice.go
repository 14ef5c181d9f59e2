// Package dice provides the randomness abstraction used by enemy stat
// randomization and drop rolls. Every consumer receives a Source explicitly so
// tests can substitute a seeded generator.
package dice

import "math"

// Source is the randomness provider.
//
// Implementations are not required to be safe for concurrent use; callers that
// share a Source across goroutines must serialise access.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
	// Float64 returns a random float64 in [0.0, 1.0).
	Float64() float64
	// NormFloat64 returns a standard normally distributed float64
	// (mean 0, standard deviation 1).
	NormFloat64() float64
}

// Gaussian draws a value from a normal distribution with the given mean and
// standard deviation, rounded to the nearest integer and floored at zero.
//
// Precondition: src must be non-nil.
// Postcondition: the result is >= 0; when stdDev <= 0 the result is max(0, round(mean)).
func Gaussian(src Source, mean, stdDev float64) int64 {
	v := mean
	if stdDev > 0 {
		v += src.NormFloat64() * stdDev
	}
	r := int64(math.Round(v))
	if r < 0 {
		return 0
	}
	return r
}

// Chance performs a Bernoulli trial that succeeds with probability p.
//
// Postcondition: p <= 0 never succeeds; p >= 1 always succeeds.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}
