// Package lshgo provides MinHash LSH indexing for approximate set-similarity
// search.
//
// This file implements the fluent builder API for creating and configuring
// LSH instances. The builder is immutable - each method returns a new
// builder with the updated configuration.
package lshgo

import (
	"github.com/hupe1980/lshgo/lshtrie"
)

// Threshold creates a new index builder optimized for the given Jaccard
// similarity threshold.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents accidental
// state sharing.
//
// Example:
//
//	idx, err := lshgo.Threshold[string](0.8).
//	    NumPerm(256).
//	    Weights(0.4, 0.6).
//	    Build()
func Threshold[K comparable](threshold float64) Builder[K] {
	return Builder[K]{
		threshold: threshold,
		numPerm:   lshtrie.DefaultOptions.NumPerm,
		weights:   lshtrie.DefaultOptions.Weights,
	}
}

// Builder is an immutable fluent builder for creating LSH instances.
// Each method returns a new builder with the updated configuration.
type Builder[K comparable] struct {
	threshold float64
	numPerm   int
	weights   [2]float64
	params    *lshtrie.Params
	logger    *Logger
}

// NumPerm sets the signature length every inserted and queried MinHash must
// have. Default: 128.
func (b Builder[K]) NumPerm(numPerm int) Builder[K] {
	b.numPerm = numPerm
	return b
}

// Weights sets the relative importance of minimizing false positives vs
// false negatives when deriving the LSH parameters. The weights must each be
// in [0.0, 1.0] and sum to 1.0. Default: (0.5, 0.5).
//
// To favor recall, shift weight toward the false-negative side, e.g.
// Weights(0.4, 0.6).
func (b Builder[K]) Weights(falsePositive, falseNegative float64) Builder[K] {
	b.weights = [2]float64{falsePositive, falseNegative}
	return b
}

// Params bypasses parameter optimization with explicit (bands, rows) values.
// The threshold and weights are ignored when set. Build fails if
// bands*rows exceeds the signature length.
func (b Builder[K]) Params(bands, rows int) Builder[K] {
	b.params = &lshtrie.Params{B: bands, R: rows}
	return b
}

// Logger sets the logger used for operation logging. Default: NoopLogger.
func (b Builder[K]) Logger(logger *Logger) Builder[K] {
	b.logger = logger
	return b
}

// Build validates the configuration and creates the LSH instance.
func (b Builder[K]) Build() (*LSH[K], error) {
	idx, err := lshtrie.New[K](func(o *lshtrie.Options) {
		o.Threshold = b.threshold
		o.NumPerm = b.numPerm
		o.Weights = b.weights
		o.Params = b.params
	})
	if err != nil {
		return nil, translateError(err)
	}

	logger := b.logger
	if logger == nil {
		logger = NoopLogger()
	}

	bands, rows := idx.Params()

	return &LSH[K]{
		index:  idx,
		logger: logger.WithThreshold(b.threshold).WithNumPerm(b.numPerm).WithParams(bands, rows),
	}, nil
}
