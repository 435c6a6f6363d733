package segtree

import "fmt"

// Algebra defines how values are aggregated and how deltas act on them.
//
// Combine must be associative:
//
//	Combine(a, Combine(b, c)) == Combine(Combine(a, b), c)
//
// Compose merges two deltas queued for the same node, where newer is
// logically applied after older. It must be associative, but is in general
// neither commutative nor order-independent.
//
// Apply applies a delta to an aggregate covering span elements. It has to
// distribute over Combine, i.e., for m copies of a value v
//
//	Apply(Combine(v, …(m times)…, v), d, m) == Combine(Apply(v, d, 1), …(m times)…)
//
// and a composed delta applied once must equal its parts applied in sequence:
//
//	Apply(v, Compose(d1, d2), 1) == Apply(Apply(v, d1, 1), d2, 1)
//
// None of these contracts is checked at runtime. Violating them yields
// silently incorrect aggregates.
type Algebra[V, D any] interface {
	Combine(left, right V) V
	Apply(value V, delta D, span int) V
	Compose(older, newer D) D
}

// AlgebraFuncs adapts three plain functions to the Algebra interface.
// All three have to be set.
type AlgebraFuncs[V, D any] struct {
	CombineFunc func(left, right V) V
	ApplyFunc   func(value V, delta D, span int) V
	ComposeFunc func(older, newer D) D
}

func (f AlgebraFuncs[V, D]) Combine(left, right V) V {
	return f.CombineFunc(left, right)
}

func (f AlgebraFuncs[V, D]) Apply(value V, delta D, span int) V {
	return f.ApplyFunc(value, delta, span)
}

func (f AlgebraFuncs[V, D]) Compose(older, newer D) D {
	return f.ComposeFunc(older, newer)
}

// Config configures a lazy segment tree.
type Config[V, D any] struct {
	// Algebra aggregates values and applies deltas. It is required.
	Algebra Algebra[V, D]
}

func (cfg Config[V, D]) validate() error {
	if cfg.Algebra == nil {
		return fmt.Errorf("%w: algebra is required", ErrInvalidConfig)
	}
	switch funcs := cfg.Algebra.(type) {
	case AlgebraFuncs[V, D]:
		return funcs.validate()
	case *AlgebraFuncs[V, D]:
		if funcs == nil {
			return fmt.Errorf("%w: algebra is required", ErrInvalidConfig)
		}
		return funcs.validate()
	}
	return nil
}

func (f AlgebraFuncs[V, D]) validate() error {
	if f.CombineFunc == nil || f.ApplyFunc == nil || f.ComposeFunc == nil {
		return fmt.Errorf("%w: algebra functions combine, apply and compose are all required",
			ErrInvalidConfig)
	}
	return nil
}
