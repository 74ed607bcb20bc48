package lshtrie

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	benchNumPerm = 128
	benchBands   = 16
	benchRows    = 8
)

// benchSignatures produces n signatures. similarity controls how much of
// each signature is copied from a shared base: near-duplicate workloads are
// where the trie's prefix sharing pays off.
func benchSignatures(n int, similarity float64) [][]uint64 {
	rng := rand.New(rand.NewSource(42))

	base := make([]uint64, benchNumPerm)
	for i := range base {
		base[i] = rng.Uint64()
	}

	sigs := make([][]uint64, n)
	for i := range sigs {
		sig := make([]uint64, benchNumPerm)
		copy(sig, base)
		for j := range sig {
			if rng.Float64() >= similarity {
				sig[j] = rng.Uint64()
			}
		}
		sigs[i] = sig
	}

	return sigs
}

func newBenchIndex(b *testing.B) *Index[int] {
	b.Helper()

	idx, err := New[int](func(o *Options) {
		o.NumPerm = benchNumPerm
		o.Params = &Params{B: benchBands, R: benchRows}
	})
	require.NoError(b, err)

	return idx
}

func BenchmarkInsert(b *testing.B) {
	for _, similarity := range []float64{0.0, 0.9} {
		b.Run(fmt.Sprintf("similarity=%.1f", similarity), func(b *testing.B) {
			sigs := benchSignatures(b.N, similarity)
			idx := newBenchIndex(b)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = idx.Insert(i, sigs[i])
			}
		})
	}
}

func BenchmarkQuery(b *testing.B) {
	for _, size := range []int{1000, 10000} {
		b.Run(fmt.Sprintf("keys=%d", size), func(b *testing.B) {
			sigs := benchSignatures(size, 0.5)
			idx := newBenchIndex(b)
			for i, sig := range sigs {
				require.NoError(b, idx.Insert(i, sig))
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = idx.Query(sigs[i%size])
			}
		})
	}
}

// bucketIndex is the plain LSH layout: each band maps its full r-row slice
// to a posting list keyed by the joined row values. It exists only as the
// memory baseline the trie is measured against.
type bucketIndex struct {
	bands []map[string][]int
	rows  int
}

func newBucketIndex(bands, rows int) *bucketIndex {
	bs := make([]map[string][]int, bands)
	for i := range bs {
		bs[i] = make(map[string][]int)
	}
	return &bucketIndex{bands: bs, rows: rows}
}

func (bi *bucketIndex) insert(key int, sig []uint64) {
	for i := range bi.bands {
		slice := sig[i*bi.rows : (i+1)*bi.rows]
		bucket := fmt.Sprint(slice)
		bi.bands[i][bucket] = append(bi.bands[i][bucket], key)
	}
}

// BenchmarkMemoryNearDuplicates contrasts allocation volume of the trie and
// the bucket layout on a near-duplicate-heavy workload. The trie should
// allocate sub-linearly in the number of keys relative to the baseline.
func BenchmarkMemoryNearDuplicates(b *testing.B) {
	const numKeys = 2000

	sigs := benchSignatures(numKeys, 0.95)

	b.Run("trie", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			idx := newBenchIndex(b)
			for k, sig := range sigs {
				_ = idx.Insert(k, sig)
			}
		}
	})

	b.Run("buckets", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			bi := newBucketIndex(benchBands, benchRows)
			for k, sig := range sigs {
				bi.insert(k, sig)
			}
		}
	})
}
