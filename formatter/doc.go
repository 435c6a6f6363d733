/*
Package formatter renders segment trees to consoles, for debugging and for
small demo programs.

Two renderings are offered: PrintValues outputs the logical array as a
single (wrapped) line of values, PrintNodes outputs the internal node table,
indented by tree depth and showing pending deltas. Output may be colored,
and is aligned with respect to the display width of values, i.e., values
containing East Asian wide characters are aligned correctly on fixed-width
terminals.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
