package lshtrie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidThreshold is returned when the threshold is outside [0, 1].
	ErrInvalidThreshold = errors.New("threshold must be in [0.0, 1.0]")

	// ErrInvalidWeights is returned when a weight is outside [0, 1] or the
	// weights do not sum to 1.0.
	ErrInvalidWeights = errors.New("weights must be in [0.0, 1.0] and sum to 1.0")

	// ErrTooFewPermutations is returned when the signature length is below 2.
	ErrTooFewPermutations = errors.New("too few permutation functions")

	// ErrDuplicateKey is returned by Insert when duplicate checking is
	// enabled and the key is already indexed.
	ErrDuplicateKey = errors.New("key already exists in index")
)

// ErrInvalidParams indicates explicit LSH parameters that are non-positive
// or do not fit the configured signature length.
type ErrInvalidParams struct {
	B       int
	R       int
	NumPerm int
}

func (e *ErrInvalidParams) Error() string {
	if e.B < 1 || e.R < 1 {
		return fmt.Sprintf("invalid params: b and r must be positive, got b=%d r=%d", e.B, e.R)
	}

	return fmt.Sprintf("invalid params: b*r = %d*%d = %d exceeds signature length %d",
		e.B, e.R, e.B*e.R, e.NumPerm)
}

// ErrSignatureLengthMismatch indicates a signature whose length does not
// match the length the index was configured for.
type ErrSignatureLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSignatureLengthMismatch) Error() string {
	return fmt.Sprintf("signature length mismatch: expected %d, got %d", e.Expected, e.Actual)
}
