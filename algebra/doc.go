/*
Package algebra provides some pre-manufactured algebras for segment trees.

An algebra bundles the three operations a segment tree needs: combining
aggregates, applying a delta to an aggregate, and composing deltas. Naming
follows the pattern <aggregate><delta>, e.g., MinSet aggregates the minimum of
a range and updates by overwriting ("setting") values, while SumAdd aggregates
the sum of a range and updates by incrementing values.

Every algebra comes with a constructor for a ready-made segtree.Config:

	tree, err := segtree.New(algebra.SumAddConfig[int64](), 1000, 0)

Delta composition is operator-specific: for "set" deltas the more recent delta
prevails, for increments deltas add up, and for affine deltas composition is
not even commutative. Clients writing their own algebras must not assume
composition to be order-independent.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package algebra

// Number is a constraint for the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
