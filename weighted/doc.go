/*
Package weighted provides ready-made key types for positional B-trees.

Each key type implements

	Weight() int

with a positive result. The weight is the number of offset units an element
occupies in the tree it is stored in:

  - Unit always weighs 1, making offsets equal to ranks.
  - Bytes weighs the UTF-8 byte length of a string.
  - Text weighs the number of grapheme clusters of a string, as perceived by
    users.

Weights are computed once at construction time and never change.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package weighted

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dstructs'
func tracer() tracing.Trace {
	return tracing.Select("dstructs")
}

// ErrEmptyKey is returned when constructing a string key from an empty string.
var ErrEmptyKey = errors.New("weighted: empty key has no weight")
