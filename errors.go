package lshgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/lshgo/lshtrie"
)

var (
	// ErrDuplicateKey is returned by Insert when duplicate checking is
	// enabled and the key is already indexed.
	ErrDuplicateKey = errors.New("key already exists")

	// ErrInvalidConfig is returned by Build for invalid threshold, weights
	// or LSH parameters.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNilMinHash is returned when a nil MinHash is passed to Insert or
	// Query.
	ErrNilMinHash = errors.New("minhash must not be nil")

	// ErrBatchLengthMismatch is returned by InsertBatch when keys and
	// minhashes differ in length.
	ErrBatchLengthMismatch = errors.New("keys and minhashes must have the same length")
)

// ErrSignatureLengthMismatch indicates a signature whose length does not
// match the index configuration.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrSignatureLengthMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrSignatureLengthMismatch) Error() string {
	return fmt.Sprintf("signature length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrSignatureLengthMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, lshtrie.ErrDuplicateKey) {
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	}

	var slm *lshtrie.ErrSignatureLengthMismatch
	if errors.As(err, &slm) {
		return &ErrSignatureLengthMismatch{Expected: slm.Expected, Actual: slm.Actual, cause: err}
	}

	// Configuration normalization.
	if errors.Is(err, lshtrie.ErrInvalidThreshold) ||
		errors.Is(err, lshtrie.ErrInvalidWeights) ||
		errors.Is(err, lshtrie.ErrTooFewPermutations) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var ip *lshtrie.ErrInvalidParams
	if errors.As(err, &ip) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return err
}
