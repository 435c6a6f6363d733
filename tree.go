package segtree

import (
	"fmt"
	"iter"
	"slices"
)

// Tree is a segment tree over a fixed-size array of values of type V,
// supporting range queries and range updates with deltas of type D.
//
// Nodes are stored implicitly in a slice: the root is node 0, and the
// children of node i are 2i+1 and 2i+2. Node i is responsible for a span of
// indices which is not stored, but recomputed during descent by splitting the
// parent's span at its midpoint.
type Tree[V, D any] struct {
	cfg   Config[V, D]
	nodes []node[V, D]
	n     int // size of the logical array
}

// node holds the aggregate over its span, plus an optional pending delta.
// A pending delta has not yet been applied to value.
type node[V, D any] struct {
	value   V
	delta   D
	pending bool
}

// New creates a tree of size n with every value set to fill.
func New[V, D any](cfg Config[V, D], n int, fill V) (*Tree[V, D], error) {
	t, err := allocate(cfg, n)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		t.build(0, 0, n-1, func(int) V { return fill })
	}
	tracer().Debugf("segtree: created tree of size %d from fill value", n)
	return t, nil
}

// FromSlice creates a tree holding a copy of values, in order.
func FromSlice[V, D any](cfg Config[V, D], values []V) (*Tree[V, D], error) {
	t, err := allocate(cfg, len(values))
	if err != nil {
		return nil, err
	}
	if len(values) > 0 {
		t.build(0, 0, len(values)-1, func(i int) V { return values[i] })
	}
	tracer().Debugf("segtree: created tree of size %d from slice", len(values))
	return t, nil
}

// FromSeq creates a tree from a finite sequence of values, consumed in order.
func FromSeq[V, D any](cfg Config[V, D], seq iter.Seq[V]) (*Tree[V, D], error) {
	if seq == nil {
		return nil, fmt.Errorf("%w: nil sequence", ErrIllegalArguments)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return FromSlice(cfg, slices.Collect(seq))
}

func allocate[V, D any](cfg Config[V, D], n int) (*Tree[V, D], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrOutOfRange, n)
	}
	return &Tree[V, D]{
		cfg:   cfg,
		nodes: make([]node[V, D], 4*n),
		n:     n,
	}, nil
}

// build sets leaves from leaf(index) and internal nodes bottom-up.
func (t *Tree[V, D]) build(i, lo, hi int, leaf func(int) V) {
	if lo == hi {
		t.nodes[i].value = leaf(lo)
		return
	}
	mid := (lo + hi) / 2
	t.build(2*i+1, lo, mid, leaf)
	t.build(2*i+2, mid+1, hi, leaf)
	t.nodes[i].value = t.cfg.Algebra.Combine(t.nodes[2*i+1].value, t.nodes[2*i+2].value)
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V, D]) Config() Config[V, D] {
	return t.cfg
}

// Len returns the size of the array.
func (t *Tree[V, D]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// At returns the value at index i. It reflects all updates applied so far.
func (t *Tree[V, D]) At(i int) (V, error) {
	return t.Query(i, i)
}

// Query returns the aggregate of all values from index lo to hi, inclusive.
// For lo == hi the single value at lo is returned.
func (t *Tree[V, D]) Query(lo, hi int) (V, error) {
	if err := t.checkRange(lo, hi); err != nil {
		var zero V
		return zero, err
	}
	return t.query(0, 0, t.n-1, lo, hi), nil
}

// Update applies delta d to the value at index i.
func (t *Tree[V, D]) Update(i int, d D) error {
	return t.UpdateRange(i, i, d)
}

// UpdateRange applies delta d to every value from index lo to hi, inclusive.
func (t *Tree[V, D]) UpdateRange(lo, hi int, d D) error {
	if err := t.checkRange(lo, hi); err != nil {
		return err
	}
	t.update(0, 0, t.n-1, lo, hi, d)
	return nil
}

// Values returns a snapshot of all values, in index order.
func (t *Tree[V, D]) Values() []V {
	if t == nil || t.n == 0 {
		return nil
	}
	values := make([]V, t.n)
	t.collect(0, 0, t.n-1, values)
	return values
}

// collect resolves every node of a subtree and copies its leaves to out.
func (t *Tree[V, D]) collect(i, lo, hi int, out []V) {
	t.resolve(i, lo, hi)
	if lo == hi {
		out[lo] = t.nodes[i].value
		return
	}
	mid := (lo + hi) / 2
	t.collect(2*i+1, lo, mid, out)
	t.collect(2*i+2, mid+1, hi, out)
}

// checkRange validates [lo, hi] before any node is touched, so that rejected
// calls leave the tree unchanged.
func (t *Tree[V, D]) checkRange(lo, hi int) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if lo < 0 || hi >= t.n || lo > hi {
		tracer().Debugf("segtree: rejecting range [%d,%d] for size %d", lo, hi, t.n)
		return fmt.Errorf("%w: [%d,%d] for size %d", ErrOutOfRange, lo, hi, t.n)
	}
	return nil
}

// --- Lazy propagation ------------------------------------------------------

// resolve applies a pending delta of node i to its own aggregate and queues
// it onto the node's children, if any. i spans [lo, hi].
func (t *Tree[V, D]) resolve(i, lo, hi int) {
	nd := &t.nodes[i]
	if !nd.pending {
		return
	}
	nd.value = t.cfg.Algebra.Apply(nd.value, nd.delta, hi-lo+1)
	if lo != hi {
		t.push(2*i+1, nd.delta)
		t.push(2*i+2, nd.delta)
	}
	var zero D
	nd.delta = zero
	nd.pending = false
}

// push queues delta d onto node c, behind a delta which may already be
// pending there.
func (t *Tree[V, D]) push(c int, d D) {
	child := &t.nodes[c]
	if child.pending {
		child.delta = t.cfg.Algebra.Compose(child.delta, d)
		return
	}
	child.delta = d
	child.pending = true
}

func (t *Tree[V, D]) query(i, lo, hi, tlo, thi int) V {
	t.resolve(i, lo, hi)
	if lo == tlo && hi == thi {
		return t.nodes[i].value
	}
	mid := (lo + hi) / 2
	switch {
	case thi <= mid:
		return t.query(2*i+1, lo, mid, tlo, thi)
	case tlo > mid:
		return t.query(2*i+2, mid+1, hi, tlo, thi)
	}
	return t.cfg.Algebra.Combine(
		t.query(2*i+1, lo, mid, tlo, mid),
		t.query(2*i+2, mid+1, hi, mid+1, thi))
}

func (t *Tree[V, D]) update(i, lo, hi, tlo, thi int, d D) {
	t.resolve(i, lo, hi)
	if hi < tlo || lo > thi {
		return
	}
	if tlo <= lo && hi <= thi {
		// node is resolved, so nothing is pending here
		t.nodes[i].delta = d
		t.nodes[i].pending = true
		t.resolve(i, lo, hi)
		return
	}
	mid := (lo + hi) / 2
	t.update(2*i+1, lo, mid, tlo, thi, d)
	t.update(2*i+2, mid+1, hi, tlo, thi, d)
	t.nodes[i].value = t.cfg.Algebra.Combine(t.nodes[2*i+1].value, t.nodes[2*i+2].value)
}
