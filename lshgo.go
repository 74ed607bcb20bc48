package lshgo

import (
	"context"

	"github.com/hupe1980/lshgo/lshtrie"
	"github.com/hupe1980/lshgo/minhash"
)

// LSH is a MinHash LSH index over keys of type K. It wraps the banded trie
// index with MinHash-level validation and operation logging.
//
// LSH is single-writer: Insert must not run concurrently with itself or
// with Query on the same instance.
type LSH[K comparable] struct {
	index  *lshtrie.Index[K]
	logger *Logger
}

// InsertOptions contains per-call options for Insert.
type InsertOptions struct {
	// CheckDuplication rejects keys that are already indexed.
	// Default: true.
	CheckDuplication bool
}

// Insert adds a key to the index together with the MinHash of the set it
// references. The index stores the portion of the signature it needs; later
// mutation of mh does not affect indexed state.
func (l *LSH[K]) Insert(key K, mh *minhash.MinHash, optFns ...func(o *InsertOptions)) error {
	opts := InsertOptions{CheckDuplication: true}

	for _, fn := range optFns {
		fn(&opts)
	}

	if mh == nil {
		l.logger.LogInsert(context.Background(), key, ErrNilMinHash)
		return ErrNilMinHash
	}

	err := translateError(l.index.Insert(key, mh.Hashvalues(), func(o *lshtrie.InsertOptions) {
		o.CheckDuplication = opts.CheckDuplication
	}))

	l.logger.LogInsert(context.Background(), key, err)

	return err
}

// InsertBatch adds multiple keys with their MinHashes in one call. Keys and
// minhashes are matched by position. Entries are inserted in order; the
// first failing entry stops the batch and is reported, leaving the already
// inserted entries in place (there is no rollback).
func (l *LSH[K]) InsertBatch(keys []K, mhs []*minhash.MinHash, optFns ...func(o *InsertOptions)) error {
	if len(keys) != len(mhs) {
		l.logger.LogBatch(context.Background(), 0, ErrBatchLengthMismatch)
		return ErrBatchLengthMismatch
	}

	for i, key := range keys {
		if err := l.Insert(key, mhs[i], optFns...); err != nil {
			l.logger.LogBatch(context.Background(), i, err)
			return err
		}
	}

	l.logger.LogBatch(context.Background(), len(keys), nil)

	return nil
}

// Query returns the keys of all indexed sets whose estimated Jaccard
// similarity to mh exceeds the configured threshold. The result contains no
// duplicates and has no ordering guarantee; callers needing exact similarity
// re-verify candidates themselves.
func (l *LSH[K]) Query(mh *minhash.MinHash) ([]K, error) {
	if mh == nil {
		l.logger.LogQuery(context.Background(), 0, ErrNilMinHash)
		return nil, ErrNilMinHash
	}

	candidates, err := l.index.Query(mh.Hashvalues())
	err = translateError(err)

	l.logger.LogQuery(context.Background(), len(candidates), err)

	return candidates, err
}

// Contains reports whether key has been inserted into the index.
func (l *LSH[K]) Contains(key K) bool {
	return l.index.Contains(key)
}

// Len returns the number of distinct keys in the index.
func (l *LSH[K]) Len() int {
	return l.index.Len()
}

// Params returns the number of bands and rows per band the index operates
// with.
func (l *LSH[K]) Params() (b, r int) {
	return l.index.Params()
}
