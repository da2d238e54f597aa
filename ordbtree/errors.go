package ordbtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("ordbtree: invalid configuration")
	// ErrMisaligned signals an offset which is not an element boundary.
	ErrMisaligned = errors.New("ordbtree: offset is not an element boundary")
	// ErrCorrupted is reported by Check for violated structural invariants.
	ErrCorrupted = errors.New("ordbtree: invariant violated")
)

// InsertError is returned by Insert if the target offset does not coincide
// with an element boundary. It hands the rejected key/value pair back to the
// caller unchanged.
type InsertError[K Weighted, V any] struct {
	Offset int
	Key    K
	Value  V
}

func (e *InsertError[K, V]) Error() string {
	return fmt.Sprintf("%s: %d", ErrMisaligned.Error(), e.Offset)
}

// Unwrap makes errors.Is(err, ErrMisaligned) hold.
func (e *InsertError[K, V]) Unwrap() error {
	return ErrMisaligned
}
