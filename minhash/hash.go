package minhash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Algorithm identifies the base hash applied to raw elements.
type Algorithm int

const (
	// XXHash64 uses the 64-bit xxHash algorithm.
	XXHash64 Algorithm = iota

	// XXH3 uses the XXH3 64-bit algorithm.
	XXH3

	// Murmur3 uses the 64-bit half of MurmurHash3 x64-128.
	Murmur3
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case XXHash64:
		return "xxhash64"
	case XXH3:
		return "xxh3"
	case Murmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

type hashFunc func(data []byte) uint64

func (a Algorithm) hashFunc() hashFunc {
	switch a {
	case XXHash64:
		return xxhash.Sum64
	case XXH3:
		return xxh3.Hash
	case Murmur3:
		return func(data []byte) uint64 {
			return murmur3.Sum64(data)
		}
	default:
		return nil
	}
}
