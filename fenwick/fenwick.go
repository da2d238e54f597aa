/*
Package fenwick implements Fenwick trees (binary indexed trees) over
commutative monoids.

A Fenwick tree maintains a sequence x[0..n) and answers prefix sums
x[0] + … + x[i-1] in O(log n). Point updates adding to x[i] take O(log n) as
well. Over an abelian group elements can additionally be read and overwritten
individually.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package fenwick

import (
	"errors"
	"fmt"

	"github.com/npillmayer/dstructs/group"
)

// ErrIndexOutOfBounds is returned for indexes outside of the sequence.
var ErrIndexOutOfBounds = errors.New("fenwick: index out of bounds")

// lsb isolates the lowest set bit of n.
func lsb(n int) int {
	return n & -n
}

// rangeStart is the index of the first element covered by cell i.
func rangeStart(i int) int {
	return (i + 1) & i
}

// Tree is a Fenwick tree over a commutative monoid.
type Tree[T any] struct {
	m    group.Monoid[T]
	data []T
}

// New creates an empty Fenwick tree.
func New[T any](m group.Monoid[T]) *Tree[T] {
	return &Tree[T]{m: m}
}

// Len returns the length of the sequence.
func (t *Tree[T]) Len() int {
	return len(t.data)
}

// Push appends x to the sequence.
func (t *Tree[T]) Push(x T) {
	bottom := rangeStart(len(t.data))
	for i := len(t.data); bottom < i; i -= lsb(i) {
		x = t.m.Add(t.data[i-1], x)
	}
	t.data = append(t.data, x)
}

// Extend appends all of xs to the sequence.
func (t *Tree[T]) Extend(xs ...T) {
	t.data = append(make([]T, 0, len(t.data)+len(xs)), t.data...)
	for _, x := range xs {
		t.Push(x)
	}
}

// Pop removes the last element of the sequence.
func (t *Tree[T]) Pop() error {
	if len(t.data) == 0 {
		return fmt.Errorf("%w: pop from empty tree", ErrIndexOutOfBounds)
	}
	var zero T
	t.data[len(t.data)-1] = zero
	t.data = t.data[:len(t.data)-1]
	return nil
}

// Resize grows the sequence to length n by appending copies of x, or
// shrinks it by dropping trailing elements.
func (t *Tree[T]) Resize(n int, x T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrIndexOutOfBounds, n)
	}
	for len(t.data) < n {
		t.Push(x)
	}
	clear(t.data[n:])
	t.data = t.data[:n]
	return nil
}

// Add adds dx to element i.
func (t *Tree[T]) Add(i int, dx T) error {
	if i < 0 || i >= len(t.data) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, len(t.data))
	}
	for ; i < len(t.data); i |= i + 1 {
		t.data[i] = t.m.Add(t.data[i], dx)
	}
	return nil
}

// PrefixSum returns the sum of the first i elements. PrefixSum(0) is the
// neutral element and PrefixSum(Len()) is the total.
func (t *Tree[T]) PrefixSum(i int) (T, error) {
	ps := t.m.Zero()
	if i < 0 || i > len(t.data) {
		return ps, fmt.Errorf("%w: prefix %d not in [0,%d]", ErrIndexOutOfBounds, i, len(t.data))
	}
	for ; i != 0; i -= lsb(i) {
		ps = t.m.Add(t.data[i-1], ps)
	}
	return ps, nil
}

// GroupTree is a Fenwick tree over an abelian group. It supports reading and
// overwriting individual elements.
type GroupTree[T any] struct {
	*Tree[T]
	g group.Group[T]
}

// NewGroup creates an empty Fenwick tree over an abelian group.
func NewGroup[T any](g group.Group[T]) *GroupTree[T] {
	return &GroupTree[T]{Tree: New[T](g), g: g}
}

// Get returns element i.
func (t *GroupTree[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(t.data) {
		return t.g.Zero(), fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, len(t.data))
	}
	x := t.data[i]
	bottom := rangeStart(i)
	for ; bottom < i; i -= lsb(i) {
		x = group.Sub(t.g, x, t.data[i-1])
	}
	return x, nil
}

// Set overwrites element i with x.
func (t *GroupTree[T]) Set(i int, x T) error {
	old, err := t.Get(i)
	if err != nil {
		return err
	}
	return t.Add(i, group.Sub(t.g, x, old))
}

// RangeSum returns the sum of the elements in [l, r).
func (t *GroupTree[T]) RangeSum(l, r int) (T, error) {
	if l > r {
		return t.g.Zero(), fmt.Errorf("%w: empty range [%d,%d)", ErrIndexOutOfBounds, l, r)
	}
	lo, err := t.PrefixSum(l)
	if err != nil {
		return lo, err
	}
	hi, err := t.PrefixSum(r)
	if err != nil {
		return hi, err
	}
	return group.Sub(t.g, hi, lo), nil
}
