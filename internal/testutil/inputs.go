package testutil

import "math/rand"

// DeterministicInts generates n pseudo-random values in [0, max) with a
// fixed seed for reproducibility.
func DeterministicInts(seed int64, max, n int) []int {
	out := make([]int, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Intn(max)
	}
	return out
}

// Ramp returns [0, 1, ..., n-1].
func Ramp(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Repeat returns a slice of length n filled with value.
func Repeat[T any](value T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}
