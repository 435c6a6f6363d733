package algebra

import (
	"cmp"

	"github.com/npillmayer/segtree"
)

// MinSet aggregates range minima and updates by setting values.
// Of two queued deltas the more recent one prevails.
type MinSet[T cmp.Ordered] struct{}

func (MinSet[T]) Combine(left, right T) T     { return min(left, right) }
func (MinSet[T]) Apply(_ T, delta T, _ int) T { return delta }
func (MinSet[T]) Compose(_, newer T) T        { return newer }

// MinSetConfig returns a tree configuration for MinSet.
func MinSetConfig[T cmp.Ordered]() segtree.Config[T, T] {
	return segtree.Config[T, T]{Algebra: MinSet[T]{}}
}

// MaxSet aggregates range maxima and updates by setting values.
// Of two queued deltas the more recent one prevails.
type MaxSet[T cmp.Ordered] struct{}

func (MaxSet[T]) Combine(left, right T) T     { return max(left, right) }
func (MaxSet[T]) Apply(_ T, delta T, _ int) T { return delta }
func (MaxSet[T]) Compose(_, newer T) T        { return newer }

// MaxSetConfig returns a tree configuration for MaxSet.
func MaxSetConfig[T cmp.Ordered]() segtree.Config[T, T] {
	return segtree.Config[T, T]{Algebra: MaxSet[T]{}}
}

// MinAdd aggregates range minima and updates by incrementing values.
// Incrementing every value of a range shifts its minimum by the same amount,
// independent of the span.
type MinAdd[T Number] struct{}

func (MinAdd[T]) Combine(left, right T) T         { return min(left, right) }
func (MinAdd[T]) Apply(value T, delta T, _ int) T { return value + delta }
func (MinAdd[T]) Compose(older, newer T) T        { return older + newer }

// MinAddConfig returns a tree configuration for MinAdd.
func MinAddConfig[T Number]() segtree.Config[T, T] {
	return segtree.Config[T, T]{Algebra: MinAdd[T]{}}
}

// MaxAdd aggregates range maxima and updates by incrementing values.
type MaxAdd[T Number] struct{}

func (MaxAdd[T]) Combine(left, right T) T         { return max(left, right) }
func (MaxAdd[T]) Apply(value T, delta T, _ int) T { return value + delta }
func (MaxAdd[T]) Compose(older, newer T) T        { return older + newer }

// MaxAddConfig returns a tree configuration for MaxAdd.
func MaxAddConfig[T Number]() segtree.Config[T, T] {
	return segtree.Config[T, T]{Algebra: MaxAdd[T]{}}
}
