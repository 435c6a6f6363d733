/*
Package textfile loads the initial values of a segment tree from a text file.

Files are read in fragments on a background goroutine, while values are
tokenized and parsed as fragments arrive. This is transparent to clients:
Load presents a synchronous API.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
