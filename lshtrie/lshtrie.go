// Package lshtrie provides a banded trie index for MinHash LSH.
//
// The index slices each signature into b bands of r rows and stores every
// band slice as a path in a shared trie, with the band index as the leading
// edge so bands never collide. Keys whose signatures agree exactly on all r
// rows of at least one band end up in the same leaf posting list and are
// returned as candidates for each other.
//
// Compared to the common bucket-map LSH layout, the trie shares storage for
// common row-value prefixes within a band. On near-duplicate-heavy workloads
// memory grows with the number of distinct prefixes rather than with
// keys*bands; on uniformly random signatures the trie costs extra
// indirection and compresses nothing.
//
// The index is single-writer: Insert must not run concurrently with itself
// or with Query on the same instance. Callers needing concurrent access must
// serialize writers externally.
package lshtrie

// Options contains configuration options for the index.
type Options struct {
	// Threshold is the Jaccard similarity threshold in [0.0, 1.0] the index
	// is optimized for.
	Threshold float64

	// NumPerm is the signature length every inserted and queried signature
	// must have. It must be >= 2.
	NumPerm int

	// Weights adjusts the relative importance of minimizing false positives
	// vs false negatives when deriving the LSH parameters. The two weights
	// must each be in [0.0, 1.0] and sum to 1.0.
	Weights [2]float64

	// Params optionally bypasses parameter optimization with explicit
	// (bands, rows) values. Threshold and Weights are ignored if set.
	Params *Params
}

// DefaultOptions contains the default configuration options for the index.
var DefaultOptions = Options{
	Threshold: 0.9,
	NumPerm:   128,
	Weights:   [2]float64{0.5, 0.5},
}

// InsertOptions contains per-call options for Insert.
type InsertOptions struct {
	// CheckDuplication rejects keys that are already indexed. Disabling it
	// skips the membership check; a key inserted twice is then registered in
	// every matching posting list once per insertion.
	CheckDuplication bool
}

// Index is a MinHash LSH index backed by a banded trie. It retrieves, for a
// query signature, all indexed keys whose estimated Jaccard similarity to
// the query exceeds the configured threshold.
//
// Candidates are approximate: callers needing exact similarity must
// re-verify them externally.
type Index[K comparable] struct {
	b          int
	r          int
	numPerm    int
	hashranges [][2]int
	trie       *arena[K]
	keys       map[K]struct{}
}

// New creates a new index. The LSH parameters are either taken verbatim from
// Options.Params (validated against the signature length) or derived from
// the threshold and weights. The parameters are fixed for the lifetime of
// the index.
func New[K comparable](optFns ...func(o *Options)) (*Index[K], error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Threshold < 0.0 || opts.Threshold > 1.0 {
		return nil, ErrInvalidThreshold
	}

	if opts.NumPerm < 2 {
		return nil, ErrTooFewPermutations
	}

	for _, w := range opts.Weights {
		if w < 0.0 || w > 1.0 {
			return nil, ErrInvalidWeights
		}
	}

	if opts.Weights[0]+opts.Weights[1] != 1.0 {
		return nil, ErrInvalidWeights
	}

	var b, r int
	if opts.Params != nil {
		b, r = opts.Params.B, opts.Params.R
		if b < 1 || r < 1 || b*r > opts.NumPerm {
			return nil, &ErrInvalidParams{B: b, R: r, NumPerm: opts.NumPerm}
		}
	} else {
		b, r = optimalParams(opts.Threshold, opts.NumPerm, opts.Weights[0], opts.Weights[1])
	}

	hashranges := make([][2]int, b)
	for i := 0; i < b; i++ {
		hashranges[i] = [2]int{i * r, (i + 1) * r}
	}

	return &Index[K]{
		b:          b,
		r:          r,
		numPerm:    opts.NumPerm,
		hashranges: hashranges,
		trie:       newArena[K](),
		keys:       make(map[K]struct{}),
	}, nil
}

// Insert adds a key to the index together with the MinHash signature of the
// set it references. All validation runs before the first trie mutation, so
// a failed Insert leaves the index unchanged.
func (idx *Index[K]) Insert(key K, signature []uint64, optFns ...func(o *InsertOptions)) error {
	opts := InsertOptions{CheckDuplication: true}

	for _, fn := range optFns {
		fn(&opts)
	}

	if len(signature) != idx.numPerm {
		return &ErrSignatureLengthMismatch{Expected: idx.numPerm, Actual: len(signature)}
	}

	if opts.CheckDuplication {
		if _, ok := idx.keys[key]; ok {
			return ErrDuplicateKey
		}
	}

	for i, hr := range idx.hashranges {
		// Path: band index followed by the r row values. All labels but the
		// last select interior nodes; the last selects the leaf.
		cur := nodeRef(0)
		cur = idx.trie.descend(cur, uint64(i))

		rows := signature[hr[0]:hr[1]]
		for _, v := range rows[:len(rows)-1] {
			cur = idx.trie.descend(cur, v)
		}

		leaf := idx.trie.descend(cur, rows[len(rows)-1])
		idx.trie.appendPosting(leaf, key)
	}

	idx.keys[key] = struct{}{}

	return nil
}

// Query returns the keys of all indexed signatures that agree exactly with
// the query signature on all rows of at least one band. The result contains
// no duplicates and has no ordering guarantee.
func (idx *Index[K]) Query(signature []uint64) ([]K, error) {
	if len(signature) != idx.numPerm {
		return nil, &ErrSignatureLengthMismatch{Expected: idx.numPerm, Actual: len(signature)}
	}

	seen := make(map[K]struct{})

	var candidates []K

	for i, hr := range idx.hashranges {
		cur, ok := idx.trie.child(nodeRef(0), uint64(i))
		if !ok {
			continue
		}

		for _, v := range signature[hr[0]:hr[1]] {
			cur, ok = idx.trie.child(cur, v)
			if !ok {
				break
			}
		}

		if !ok {
			// A missing path segment is a normal no-match for this band.
			continue
		}

		for _, key := range idx.trie.postings(cur) {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			candidates = append(candidates, key)
		}
	}

	return candidates, nil
}

// Contains reports whether key has been inserted into the index.
func (idx *Index[K]) Contains(key K) bool {
	_, ok := idx.keys[key]
	return ok
}

// Len returns the number of distinct keys in the index.
func (idx *Index[K]) Len() int {
	return len(idx.keys)
}

// Params returns the number of bands and rows per band the index operates
// with.
func (idx *Index[K]) Params() (b, r int) {
	return idx.b, idx.r
}
