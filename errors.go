package segtree

// TreeError is an error type for the segtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrOutOfRange is flagged whenever an index or range bound lies outside
// [0, n-1], or a range has lo > hi.
const ErrOutOfRange = TreeError("segtree: index out of range")

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("segtree: invalid configuration")

// ErrCorrupted is reported by Check for violated internal tree invariants.
// It indicates either an implementation bug or an algebra which does not
// uphold its contracts.
const ErrCorrupted = TreeError("segtree: tree invariants violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("segtree: illegal arguments")
