/*
Package ordbtree provides a positional B-tree: an ordered container whose
elements are addressed by cumulative offset instead of by key comparison.

Every key contributes a positive weight. The offset of an element is the sum of
the weights of all elements preceding it, and an element occupies the
half-open offset range [offset, offset+weight). With unit weights offsets
equal ranks and the tree behaves like an order-statistics sequence.

The package is intentionally not a map/set container. Keys are never compared;
order is the order of insertion positions.

Structure:
  - leaves are bounded element stores caching their total weight,
  - internal nodes hold separator elements and numElements+1 children,
  - children of a node are homogeneous: all leaves or all internal nodes,
  - all leaves sit at the same depth,
  - every non-root node holds between B-1 and 2B-1 elements.

Lookups, inserts and removals run in O(log n). Mutations descend with an
explicit path stack of (node, child index) frames and resolve overflow (split)
or underflow (borrow/merge) bottom-up along that path. Cached sizes of every
node on the path are adjusted before a mutation returns.

A Tree is not safe for concurrent mutation. Concurrent readers are fine as long
as no mutation runs at the same time.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ordbtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'dstructs'
func tracer() tracing.Trace {
	return tracing.Select("dstructs")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
