// Package minhash provides MinHash signatures for Jaccard similarity estimation.
//
// A MinHash compresses a set of elements into a fixed-length signature of
// unsigned integers. The fraction of positions on which two signatures agree
// is an unbiased estimate of the Jaccard similarity of the underlying sets.
//
// Two signatures are comparable only if they were created with the same
// number of permutations, the same seed and the same hash algorithm.
package minhash

import (
	"math/bits"
)

const (
	// mersennePrime is the modulus of the universal hash family (2^61 - 1).
	mersennePrime = (uint64(1) << 61) - 1

	// maxHash caps permuted values to the 32-bit hash range.
	maxHash = (uint64(1) << 32) - 1
)

// Options contains configuration options for a MinHash.
type Options struct {
	// NumPerm is the number of permutation functions (the signature length).
	// It must be >= 2.
	NumPerm int

	// Seed determines the permutation parameters. Signatures produced with
	// different seeds are not comparable.
	Seed uint64

	// Algorithm selects the base hash applied to raw elements before
	// permutation.
	Algorithm Algorithm
}

// DefaultOptions contains the default configuration options for a MinHash.
var DefaultOptions = Options{
	NumPerm:   128,
	Seed:      1,
	Algorithm: XXHash64,
}

// MinHash is a MinHash signature under construction. It carries its full
// hash configuration (permutations, seed, algorithm) so that it can serve
// as a template for further signatures with identical configuration.
//
// A MinHash is not safe for concurrent use.
type MinHash struct {
	seed       uint64
	algorithm  Algorithm
	hashFunc   hashFunc
	a          []uint64 // multipliers in [1, mersennePrime)
	b          []uint64 // offsets in [0, mersennePrime)
	hashvalues []uint64
}

// New creates a new MinHash with every signature position initialized to the
// maximum hash value. The permutation parameters are derived
// deterministically from the seed, so two MinHashes created with equal
// options are interchangeable.
func New(optFns ...func(o *Options)) (*MinHash, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.NumPerm < 2 {
		return nil, &ErrTooFewPermutations{NumPerm: opts.NumPerm}
	}

	hf := opts.Algorithm.hashFunc()
	if hf == nil {
		return nil, &ErrInvalidAlgorithm{Algorithm: opts.Algorithm}
	}

	m := &MinHash{
		seed:       opts.Seed,
		algorithm:  opts.Algorithm,
		hashFunc:   hf,
		a:          make([]uint64, opts.NumPerm),
		b:          make([]uint64, opts.NumPerm),
		hashvalues: make([]uint64, opts.NumPerm),
	}

	// Derive the permutation parameters from the seed via splitmix64 so that
	// equal (seed, numPerm) pairs always yield equal configurations.
	state := opts.Seed
	for i := 0; i < opts.NumPerm; i++ {
		state = splitmix64(state)
		m.a[i] = state%(mersennePrime-1) + 1
		state = splitmix64(state)
		m.b[i] = state % mersennePrime

		m.hashvalues[i] = maxHash
	}

	return m, nil
}

// Update folds a single element into the signature.
func (m *MinHash) Update(data []byte) {
	hv := m.hashFunc(data) & maxHash

	for i, a := range m.a {
		phv := permute(a, m.b[i], hv)
		if phv < m.hashvalues[i] {
			m.hashvalues[i] = phv
		}
	}
}

// UpdateBatch folds a batch of elements into the signature. It is equivalent
// to calling Update for each element in order.
func (m *MinHash) UpdateBatch(data [][]byte) {
	for _, d := range data {
		m.Update(d)
	}
}

// Copy returns an independent MinHash with the same configuration and the
// same current signature values. Updating the copy never affects the
// original.
func (m *MinHash) Copy() *MinHash {
	c := &MinHash{
		seed:       m.seed,
		algorithm:  m.algorithm,
		hashFunc:   m.hashFunc,
		a:          m.a, // permutation parameters are immutable and shareable
		b:          m.b,
		hashvalues: make([]uint64, len(m.hashvalues)),
	}
	copy(c.hashvalues, m.hashvalues)

	return c
}

// Hashvalues returns a copy of the current signature values.
func (m *MinHash) Hashvalues() []uint64 {
	hv := make([]uint64, len(m.hashvalues))
	copy(hv, m.hashvalues)

	return hv
}

// Len returns the signature length (the number of permutation functions).
func (m *MinHash) Len() int {
	return len(m.hashvalues)
}

// Seed returns the seed this MinHash was configured with.
func (m *MinHash) Seed() uint64 {
	return m.seed
}

// Jaccard returns the estimated Jaccard similarity between the sets
// represented by m and other. It fails if the two signatures were produced
// under different configurations.
func (m *MinHash) Jaccard(other *MinHash) (float64, error) {
	if other == nil {
		return 0, ErrNilMinHash
	}

	if m.seed != other.seed {
		return 0, ErrSeedMismatch
	}

	if len(m.hashvalues) != len(other.hashvalues) {
		return 0, &ErrNumPermMismatch{Expected: len(m.hashvalues), Actual: len(other.hashvalues)}
	}

	matches := 0
	for i, v := range m.hashvalues {
		if v == other.hashvalues[i] {
			matches++
		}
	}

	return float64(matches) / float64(len(m.hashvalues)), nil
}

// permute computes ((a*hv + b) mod (2^61-1)) capped to the 32-bit hash
// range. The product a*hv can exceed 64 bits, so the reduction folds a
// 128-bit intermediate using 2^64 ≡ 8 (mod 2^61-1).
func permute(a, b, hv uint64) uint64 {
	hi, lo := bits.Mul64(a, hv)

	t := hi<<3 + (lo & mersennePrime) + lo>>61
	t += b

	t = (t & mersennePrime) + t>>61
	if t >= mersennePrime {
		t -= mersennePrime
	}

	return t & maxHash
}

// splitmix64 advances the state and returns the next value in the sequence.
func splitmix64(state uint64) uint64 {
	state += 0x9e3779b97f4a7c15
	z := state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31

	return z
}
