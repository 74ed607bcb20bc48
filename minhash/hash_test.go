package minhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithm(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "xxhash64", XXHash64.String())
		assert.Equal(t, "xxh3", XXH3.String())
		assert.Equal(t, "murmur3", Murmur3.String())
		assert.Equal(t, "unknown", Algorithm(42).String())
	})

	t.Run("DistinctSignatures", func(t *testing.T) {
		sigs := make(map[Algorithm][]uint64)

		for _, algo := range []Algorithm{XXHash64, XXH3, Murmur3} {
			m, err := New(func(o *Options) {
				o.Algorithm = algo
			})
			require.NoError(t, err)

			m.Update([]byte("hello"))
			m.Update([]byte("world"))
			sigs[algo] = m.Hashvalues()
		}

		// Different base hashes must not produce the same signature.
		assert.NotEqual(t, sigs[XXHash64], sigs[XXH3])
		assert.NotEqual(t, sigs[XXHash64], sigs[Murmur3])
		assert.NotEqual(t, sigs[XXH3], sigs[Murmur3])
	})

	t.Run("DeterministicPerAlgorithm", func(t *testing.T) {
		for _, algo := range []Algorithm{XXHash64, XXH3, Murmur3} {
			m1, err := New(func(o *Options) { o.Algorithm = algo })
			require.NoError(t, err)
			m2, err := New(func(o *Options) { o.Algorithm = algo })
			require.NoError(t, err)

			m1.Update([]byte("abc"))
			m2.Update([]byte("abc"))

			assert.Equal(t, m1.Hashvalues(), m2.Hashvalues(), algo.String())
		}
	})
}
