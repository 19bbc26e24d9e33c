package rng

import "fmt"

// Pick returns an element at a uniformly drawn index.
// Panics with ErrEmptySequence if s is empty.
// Package-level because Go methods cannot take type parameters.
func Pick[T any](e *Engine, s []T) T {
	if len(s) == 0 {
		panic(fmt.Errorf("%w: pick", ErrEmptySequence))
	}
	return s[e.IntRange(0, len(s))]
}

// Shuffle permutes s in place with a Fisher–Yates shuffle: each element
// i swaps with a uniformly drawn index in [i, len). Slices of length
// <= 1 are left unchanged and consume no draws.
func Shuffle[T any](e *Engine, s []T) {
	for i := 0; i < len(s)-1; i++ {
		j := e.IntRange(i, len(s))
		s[i], s[j] = s[j], s[i]
	}
}
