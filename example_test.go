package lshgo_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/lshgo"
	"github.com/hupe1980/lshgo/bulk"
	"github.com/hupe1980/lshgo/minhash"
)

// Example_builder demonstrates creating an LSH index with the fluent builder.
func Example_builder() {
	idx, err := lshgo.Threshold[string](0.8). // Jaccard similarity threshold
							NumPerm(256).       // Signature length
							Weights(0.4, 0.6).  // Favor recall over precision
							Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("LSH index created successfully")
	fmt.Println("keys:", idx.Len())
	// Output:
	// LSH index created successfully
	// keys: 0
}

// Example_insertAndQuery demonstrates indexing two sets and retrieving
// candidates for a query signature.
func Example_insertAndQuery() {
	idx, err := lshgo.Threshold[string](0.5).Build()
	if err != nil {
		log.Fatal(err)
	}

	doc := func(words ...string) *minhash.MinHash {
		mh, err := minhash.New()
		if err != nil {
			log.Fatal(err)
		}
		for _, w := range words {
			mh.Update([]byte(w))
		}
		return mh
	}

	if err := idx.Insert("doc-1", doc("the", "quick", "brown", "fox")); err != nil {
		log.Fatal(err)
	}
	if err := idx.Insert("doc-2", doc("an", "entirely", "different", "text")); err != nil {
		log.Fatal(err)
	}

	candidates, err := idx.Query(doc("the", "quick", "brown", "fox"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(candidates)
	// Output: [doc-1]
}

// Example_bulk demonstrates batch signature computation from a shared
// template configuration.
func Example_bulk() {
	template, err := minhash.New(func(o *minhash.Options) {
		o.NumPerm = 32
	})
	if err != nil {
		log.Fatal(err)
	}

	items := [][][]byte{
		{[]byte("a"), []byte("b")},
		{[]byte("c"), []byte("d")},
		{[]byte("e"), []byte("f")},
	}

	sigs, err := bulk.ComputeMinHashes(items, template)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("signatures:", len(sigs))
	fmt.Println("length:", sigs[0].Len())
	// Output:
	// signatures: 3
	// length: 32
}
