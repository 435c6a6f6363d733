package algebra

import "github.com/npillmayer/segtree"

// SumAdd aggregates range sums and updates by incrementing values.
type SumAdd[T Number] struct{}

func (SumAdd[T]) Combine(left, right T) T { return left + right }

// Apply increments each of span values by delta.
func (SumAdd[T]) Apply(value T, delta T, span int) T {
	return value + delta*T(span)
}

func (SumAdd[T]) Compose(older, newer T) T { return older + newer }

// SumAddConfig returns a tree configuration for SumAdd.
func SumAddConfig[T Number]() segtree.Config[T, T] {
	return segtree.Config[T, T]{Algebra: SumAdd[T]{}}
}

// SumSet aggregates range sums and updates by setting values.
type SumSet[T Number] struct{}

func (SumSet[T]) Combine(left, right T) T { return left + right }

// Apply sets each of span values to delta.
func (SumSet[T]) Apply(_ T, delta T, span int) T {
	return delta * T(span)
}

// Compose lets the more recent delta prevail.
func (SumSet[T]) Compose(_, newer T) T { return newer }

// SumSetConfig returns a tree configuration for SumSet.
func SumSetConfig[T Number]() segtree.Config[T, T] {
	return segtree.Config[T, T]{Algebra: SumSet[T]{}}
}
