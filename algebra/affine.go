package algebra

import "github.com/npillmayer/segtree"

// Affine is a delta which maps a value x to Mul*x + Add.
//
// Affine deltas subsume both "set" (Mul = 0) and "increment" (Mul = 1)
// updates, which makes it possible to mix both kinds on the same tree.
type Affine[T Number] struct {
	Mul, Add T
}

// Assign returns an affine delta which sets values to v.
func Assign[T Number](v T) Affine[T] {
	return Affine[T]{Mul: 0, Add: v}
}

// Increment returns an affine delta which increments values by d.
func Increment[T Number](d T) Affine[T] {
	return Affine[T]{Mul: 1, Add: d}
}

// Scale returns an affine delta which multiplies values by m.
func Scale[T Number](m T) Affine[T] {
	return Affine[T]{Mul: m, Add: 0}
}

// Of applies the delta to a single value.
func (a Affine[T]) Of(x T) T {
	return a.Mul*x + a.Add
}

// SumAffine aggregates range sums and updates with affine deltas.
type SumAffine[T Number] struct{}

func (SumAffine[T]) Combine(left, right T) T { return left + right }

// Apply maps a sum s of span values x_1…x_k to Σ(Mul*x_i + Add) = Mul*s + Add*k.
func (SumAffine[T]) Apply(value T, delta Affine[T], span int) T {
	return delta.Mul*value + delta.Add*T(span)
}

// Compose returns newer∘older, i.e. x ↦ newer.Mul*(older.Mul*x + older.Add) + newer.Add.
// Composition of affine deltas is not commutative.
func (SumAffine[T]) Compose(older, newer Affine[T]) Affine[T] {
	return Affine[T]{
		Mul: newer.Mul * older.Mul,
		Add: newer.Mul*older.Add + newer.Add,
	}
}

// SumAffineConfig returns a tree configuration for SumAffine.
func SumAffineConfig[T Number]() segtree.Config[T, Affine[T]] {
	return segtree.Config[T, Affine[T]]{Algebra: SumAffine[T]{}}
}
