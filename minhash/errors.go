package minhash

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMinHash is returned when a nil MinHash is provided.
	ErrNilMinHash = errors.New("minhash must not be nil")

	// ErrSeedMismatch is returned when comparing signatures produced under
	// different seeds.
	ErrSeedMismatch = errors.New("cannot compare signatures with different seeds")
)

// ErrTooFewPermutations indicates a configured permutation count below the
// minimum of 2.
type ErrTooFewPermutations struct {
	NumPerm int
}

func (e *ErrTooFewPermutations) Error() string {
	return fmt.Sprintf("too few permutation functions: %d", e.NumPerm)
}

// ErrInvalidAlgorithm indicates an unsupported hash algorithm.
type ErrInvalidAlgorithm struct {
	Algorithm Algorithm
}

func (e *ErrInvalidAlgorithm) Error() string {
	return fmt.Sprintf("invalid hash algorithm: %d", e.Algorithm)
}

// ErrNumPermMismatch indicates a signature length mismatch between two
// MinHashes.
type ErrNumPermMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrNumPermMismatch) Error() string {
	return fmt.Sprintf("signature length mismatch: expected %d, got %d", e.Expected, e.Actual)
}
