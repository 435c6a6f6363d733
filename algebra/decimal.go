package algebra

import (
	"github.com/npillmayer/segtree"
	"github.com/shopspring/decimal"
)

// DecimalSumAdd aggregates sums of arbitrary-precision decimals and updates
// by incrementing values. Other than float64 sums, results do not depend on
// the order in which the tree happens to combine sub-aggregates.
type DecimalSumAdd struct{}

func (DecimalSumAdd) Combine(left, right decimal.Decimal) decimal.Decimal {
	return left.Add(right)
}

func (DecimalSumAdd) Apply(value decimal.Decimal, delta decimal.Decimal, span int) decimal.Decimal {
	return value.Add(delta.Mul(decimal.NewFromInt(int64(span))))
}

func (DecimalSumAdd) Compose(older, newer decimal.Decimal) decimal.Decimal {
	return older.Add(newer)
}

// DecimalSumAddConfig returns a tree configuration for DecimalSumAdd.
func DecimalSumAddConfig() segtree.Config[decimal.Decimal, decimal.Decimal] {
	return segtree.Config[decimal.Decimal, decimal.Decimal]{Algebra: DecimalSumAdd{}}
}

// DecimalMinSet aggregates minima of decimals and updates by setting values.
type DecimalMinSet struct{}

func (DecimalMinSet) Combine(left, right decimal.Decimal) decimal.Decimal {
	if right.LessThan(left) {
		return right
	}
	return left
}

func (DecimalMinSet) Apply(_ decimal.Decimal, delta decimal.Decimal, _ int) decimal.Decimal {
	return delta
}

// Compose lets the more recent delta prevail.
func (DecimalMinSet) Compose(_, newer decimal.Decimal) decimal.Decimal {
	return newer
}

// DecimalMinSetConfig returns a tree configuration for DecimalMinSet.
func DecimalMinSetConfig() segtree.Config[decimal.Decimal, decimal.Decimal] {
	return segtree.Config[decimal.Decimal, decimal.Decimal]{Algebra: DecimalMinSet{}}
}

// DecimalEqual reports whether two decimals are numerically equal,
// e.g. for use with (*segtree.Tree).Check.
func DecimalEqual(a, b decimal.Decimal) bool {
	return a.Equal(b)
}
