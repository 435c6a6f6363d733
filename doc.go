/*
Package segtree maintains a fixed-size array and answers aggregate queries
over contiguous ranges while applying bulk updates to contiguous ranges, both
in logarithmic time.

Segment Trees with Lazy Propagation

A segment tree overlays an array with a binary tree: every node is responsible
for a contiguous span of indices, the root spans the whole array and leaves span
single indices. Each node caches the aggregate of its span. Range updates do not
descend into subtrees which they fully cover; instead they leave a pending delta
at the subtree root, to be pushed further down only when a later operation
actually visits the subtree. Deltas meeting at a node are composed into a single
delta, in arrival order.

What counts as an aggregate and what counts as a delta is up to the client.
Clients supply an Algebra of three operations (Combine, Apply and Compose),
which together have to satisfy the contracts documented with type Algebra.
Package algebra offers pre-manufactured algebras for the common cases, e.g.,
range-minimum with "set" updates or range-sum with "increment" updates.

	cfg := algebra.MinSetConfig[int]()
	tree, _ := segtree.FromSlice(cfg, []int{6, -2, 1, 8, 10})
	tree.UpdateRange(2, 4, 4)          // values now 6 -2 4 4 4
	m, _ := tree.Query(0, 3)           // m = -2

Trees are not safe for concurrent use. Queries are read-only at the logical
level, but resolve pending deltas on their way down and therefore mutate
internal state. Clients needing concurrent access have to serialize all calls.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
