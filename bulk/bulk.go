// Package bulk computes MinHash signatures in batches.
//
// Creating a MinHash is dominated by deriving its permutation parameters.
// The helpers in this package reuse the configuration of a single template
// MinHash for every produced signature, avoiding that setup cost per item.
//
// An item is the element batch of one set ([][]byte); every helper produces
// exactly one signature per item, in input order.
package bulk

import (
	"context"
	"errors"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/lshgo/minhash"
)

// ErrNilItems is returned when the item collection is nil.
var ErrNilItems = errors.New("items must not be nil")

// ComputeMinHash builds one signature from the elements of a single item
// using the template's configuration. The result shares no mutable state
// with the template.
func ComputeMinHash(item [][]byte, template *minhash.MinHash) *minhash.MinHash {
	mh := template.Copy()
	mh.UpdateBatch(item)

	return mh
}

// ComputeMinHashes eagerly builds one signature per item, preserving input
// order. A nil template is replaced by a MinHash with default options.
func ComputeMinHashes(items [][][]byte, template *minhash.MinHash) ([]*minhash.MinHash, error) {
	if items == nil {
		return nil, ErrNilItems
	}

	template, err := templateOrDefault(template)
	if err != nil {
		return nil, err
	}

	mhs := make([]*minhash.MinHash, 0, len(items))
	for mh := range ComputeMinHashesSeq(sliceSeq(items), template) {
		mhs = append(mhs, mh)
	}

	return mhs, nil
}

// ComputeMinHashesSeq lazily builds one signature per item, one at a time.
// The returned sequence is finite, single-pass and driven entirely by the
// consumer; no signature is computed before it is pulled. The template must
// not be nil.
func ComputeMinHashesSeq(items iter.Seq[[][]byte], template *minhash.MinHash) iter.Seq[*minhash.MinHash] {
	return func(yield func(*minhash.MinHash) bool) {
		for item := range items {
			if !yield(ComputeMinHash(item, template)) {
				return
			}
		}
	}
}

// ParallelOptions contains configuration options for
// ComputeMinHashesParallel.
type ParallelOptions struct {
	// MaxConcurrency bounds the number of concurrently computed signatures.
	// Values <= 0 select runtime.GOMAXPROCS(0).
	MaxConcurrency int
}

// ComputeMinHashesParallel builds one signature per item using a bounded
// number of goroutines. Output order matches input order. Each worker
// operates on its own copy of the template, so the template itself is never
// written.
func ComputeMinHashesParallel(ctx context.Context, items [][][]byte, template *minhash.MinHash, optFns ...func(o *ParallelOptions)) ([]*minhash.MinHash, error) {
	opts := ParallelOptions{}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = runtime.GOMAXPROCS(0)
	}

	if items == nil {
		return nil, ErrNilItems
	}

	template, err := templateOrDefault(template)
	if err != nil {
		return nil, err
	}

	mhs := make([]*minhash.MinHash, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.MaxConcurrency)

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			mhs[i] = ComputeMinHash(item, template)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return mhs, nil
}

func templateOrDefault(template *minhash.MinHash) (*minhash.MinHash, error) {
	if template != nil {
		return template, nil
	}

	return minhash.New()
}

func sliceSeq(items [][][]byte) iter.Seq[[][]byte] {
	return func(yield func([][]byte) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
