package segtree

import "fmt"

// Check validates internal tree invariants, without resolving any pending
// deltas. equal decides equality of aggregates.
//
// For every internal node without a pending delta, its aggregate has to
// equal the combination of its children's effective aggregates, where the
// effective aggregate of a node is its aggregate with its own pending delta
// (if any) applied. This holds only for algebras which uphold their contracts,
// which makes Check useful for testing client algebras as well.
//
// This checker is intended to be used in tests.
func (t *Tree[V, D]) Check(equal func(a, b V) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if equal == nil {
		return fmt.Errorf("%w: equality function is required", ErrIllegalArguments)
	}
	if len(t.nodes) != 4*t.n {
		return fmt.Errorf("%w: node storage has size %d, expected %d", ErrCorrupted,
			len(t.nodes), 4*t.n)
	}
	used := make([]bool, len(t.nodes))
	if t.n > 0 {
		if err := t.checkNode(0, 0, t.n-1, equal, used); err != nil {
			return err
		}
	}
	for i, u := range used {
		if !u && t.nodes[i].pending {
			return fmt.Errorf("%w: unused node %d carries a pending delta", ErrCorrupted, i)
		}
	}
	return nil
}

func (t *Tree[V, D]) checkNode(i, lo, hi int, equal func(a, b V) bool, used []bool) error {
	if i >= len(t.nodes) {
		return fmt.Errorf("%w: node %d for span [%d,%d] exceeds storage", ErrCorrupted, i, lo, hi)
	}
	used[i] = true
	if lo == hi {
		return nil
	}
	mid := (lo + hi) / 2
	l, r := 2*i+1, 2*i+2
	if !t.nodes[i].pending {
		want := t.cfg.Algebra.Combine(t.effective(l, lo, mid), t.effective(r, mid+1, hi))
		if !equal(t.nodes[i].value, want) {
			return fmt.Errorf("%w: node %d [%d,%d] has aggregate %v, children combine to %v",
				ErrCorrupted, i, lo, hi, t.nodes[i].value, want)
		}
	}
	if err := t.checkNode(l, lo, mid, equal, used); err != nil {
		return err
	}
	return t.checkNode(r, mid+1, hi, equal, used)
}

// effective returns the aggregate of node i with its pending delta applied,
// without modifying the node.
func (t *Tree[V, D]) effective(i, lo, hi int) V {
	nd := t.nodes[i]
	if nd.pending {
		return t.cfg.Algebra.Apply(nd.value, nd.delta, hi-lo+1)
	}
	return nd.value
}
