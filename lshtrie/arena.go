package lshtrie

// nodeRef references a node by its index in the arena. The root is always
// node 0.
type nodeRef int32

// node is a single trie node. Every path through the trie has the same depth
// within a band, so a node is either interior (children populated) or a leaf
// (postings populated), never both.
type node[K comparable] struct {
	children map[uint64]nodeRef
	postings []K
}

// arena owns all trie nodes in a single slice. Nodes reference each other by
// index rather than by pointer, which keeps traversal cache-friendly and
// avoids aliasing between interior nodes.
type arena[K comparable] struct {
	nodes []node[K]
}

func newArena[K comparable]() *arena[K] {
	// Node 0 is the root.
	return &arena[K]{nodes: make([]node[K], 1)}
}

// child returns the node reachable from ref via label, or false when the
// edge does not exist.
func (a *arena[K]) child(ref nodeRef, label uint64) (nodeRef, bool) {
	c, ok := a.nodes[ref].children[label]
	return c, ok
}

// descend returns the node reachable from ref via label, creating it if the
// edge does not exist.
func (a *arena[K]) descend(ref nodeRef, label uint64) nodeRef {
	if c, ok := a.nodes[ref].children[label]; ok {
		return c
	}

	c := nodeRef(len(a.nodes))
	a.nodes = append(a.nodes, node[K]{})

	if a.nodes[ref].children == nil {
		a.nodes[ref].children = make(map[uint64]nodeRef)
	}
	a.nodes[ref].children[label] = c

	return c
}

// appendPosting appends key to the posting list of the given leaf.
func (a *arena[K]) appendPosting(ref nodeRef, key K) {
	a.nodes[ref].postings = append(a.nodes[ref].postings, key)
}

// postings returns the posting list of the given leaf.
func (a *arena[K]) postings(ref nodeRef) []K {
	return a.nodes[ref].postings
}

// size returns the number of allocated nodes, including the root.
func (a *arena[K]) size() int {
	return len(a.nodes)
}
