// Package lshgo provides MinHash LSH indexing for approximate set-similarity
// search.
//
// Lshgo retrieves, for a query signature, all indexed keys whose estimated
// Jaccard similarity to the query exceeds a configured threshold, without
// comparing the query against every stored set. Candidates are found via
// locality-sensitive hashing over banded MinHash signatures, stored in a
// prefix-sharing trie.
//
// # Quick Start
//
//	idx, _ := lshgo.Threshold[string](0.8).NumPerm(128).Build()
//
//	mh, _ := minhash.New()
//	mh.Update([]byte("hello"))
//	mh.Update([]byte("world"))
//
//	_ = idx.Insert("doc-1", mh)
//	candidates, _ := idx.Query(mh)
//
// # Batch Signatures
//
// Building many signatures under one configuration goes through the bulk
// package, which reuses a template MinHash instead of re-deriving the
// permutation machinery per item:
//
//	template, _ := minhash.New(func(o *minhash.Options) { o.NumPerm = 256 })
//	sigs, _ := bulk.ComputeMinHashes(items, template)
//
// # Accuracy Model
//
// Query results are candidates, not verified matches: a key is reported when
// its signature agrees with the query on every row of at least one band. The
// band/row split is chosen to minimize a weighted false-positive and
// false-negative cost at the configured threshold. Callers needing exact
// similarity re-rank candidates themselves, e.g. via minhash.Jaccard.
//
// # Concurrency
//
// The index is single-writer. Insert must not run concurrently with itself
// or with Query on the same index; concurrent Query calls are safe only
// while no Insert is in flight.
package lshgo
