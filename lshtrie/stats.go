package lshtrie

import "fmt"

// Stats prints statistics about the index.
func (idx *Index[K]) Stats() {
	fmt.Println("Parameters:")
	fmt.Printf("\tb = %d\n", idx.b)
	fmt.Printf("\tr = %d\n", idx.r)
	fmt.Printf("\tnumPerm = %d\n", idx.numPerm)

	fmt.Println("State:")
	fmt.Printf("\tkeys = %d\n", len(idx.keys))
	fmt.Printf("\ttrieNodes = %d\n", idx.trie.size())
}

// NodeCount returns the number of allocated trie nodes, including the root.
// It grows with the number of distinct row-value prefixes per band, not with
// the number of inserted keys.
func (idx *Index[K]) NodeCount() int {
	return idx.trie.size()
}
