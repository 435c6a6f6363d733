package segtree

// NodeInfo describes a single node of a tree, as reported by Walk.
type NodeInfo[V, D any] struct {
	Index   int // position in implicit node storage
	Lo, Hi  int // span of array indices, inclusive
	Depth   int // root has depth 0
	Value   V   // cached aggregate, without a pending delta applied
	Delta   D   // pending delta, valid only if Pending is set
	Pending bool
}

// IsLeaf is true for nodes spanning a single index.
func (info NodeInfo[V, D]) IsLeaf() bool {
	return info.Lo == info.Hi
}

// Span returns the number of array indices the node is responsible for.
func (info NodeInfo[V, D]) Span() int {
	return info.Hi - info.Lo + 1
}

// Walk calls f for every node of the tree, in pre-order.
//
// Walk does not resolve pending deltas and leaves the tree untouched. It is
// meant for debugging and rendering purposes.
func (t *Tree[V, D]) Walk(f func(NodeInfo[V, D])) {
	if t == nil || t.n == 0 || f == nil {
		return
	}
	t.walk(0, 0, t.n-1, 0, f)
}

func (t *Tree[V, D]) walk(i, lo, hi, depth int, f func(NodeInfo[V, D])) {
	nd := t.nodes[i]
	f(NodeInfo[V, D]{
		Index:   i,
		Lo:      lo,
		Hi:      hi,
		Depth:   depth,
		Value:   nd.value,
		Delta:   nd.delta,
		Pending: nd.pending,
	})
	if lo == hi {
		return
	}
	mid := (lo + hi) / 2
	t.walk(2*i+1, lo, mid, depth+1, f)
	t.walk(2*i+2, mid+1, hi, depth+1, f)
}
