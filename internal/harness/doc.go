/*
Package harness validates and benchmarks positional B-trees from the outside.

The harness drives trees only through their public contract (Get, Insert,
Remove and iteration) and compares the results against independent reference
models. Reference computations use Fenwick and segment trees, in-order content
is fingerprinted with xxhash.

Progress of a running scenario is broadcast as Event values to all
subscribers of a Runner.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package harness

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dstructs'
func tracer() tracing.Trace {
	return tracing.Select("dstructs")
}

// ErrMismatch signals a difference between a tree and its reference model.
var ErrMismatch = errors.New("harness: tree differs from reference model")
