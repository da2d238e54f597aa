/*
Package segtree implements bottom-up segment trees over commutative monoids.

A segment tree of length n answers range sums over half-open ranges [l, r)
and performs point updates, both in O(log n). Leaves are stored at
data[n:2n], inner node i combines data[2i] and data[2i+1].

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segtree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/dstructs/group"
)

// ErrIndexOutOfBounds is returned for indexes or ranges outside of the tree.
var ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")

// Tree is a segment tree of fixed length.
type Tree[T any] struct {
	m    group.Monoid[T]
	n    int
	data []T
}

// New creates a segment tree of length n with all elements set to m.Zero().
func New[T any](m group.Monoid[T], n int) (*Tree[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrIndexOutOfBounds, n)
	}
	data := make([]T, 2*n)
	for i := range data {
		data[i] = m.Zero()
	}
	return &Tree[T]{m: m, n: n, data: data}, nil
}

// Len returns the number of elements.
func (t *Tree[T]) Len() int {
	return t.n
}

// Build replaces the leading elements with xs and recomputes all inner nodes
// in O(n).
func (t *Tree[T]) Build(xs []T) error {
	if len(xs) > t.n {
		return fmt.Errorf("%w: %d elements exceed length %d", ErrIndexOutOfBounds, len(xs), t.n)
	}
	copy(t.data[t.n:], xs)
	for i := t.n - 1; i > 0; i-- {
		t.data[i] = t.m.Add(t.data[2*i], t.data[2*i+1])
	}
	return nil
}

// Update sets element i to x.
func (t *Tree[T]) Update(i int, x T) error {
	if i < 0 || i >= t.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, t.n)
	}
	i += t.n
	t.data[i] = x
	for i > 1 {
		i /= 2
		t.data[i] = t.m.Add(t.data[2*i], t.data[2*i+1])
	}
	return nil
}

// Get returns element i.
func (t *Tree[T]) Get(i int) (T, error) {
	if i < 0 || i >= t.n {
		return t.m.Zero(), fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, t.n)
	}
	return t.data[t.n+i], nil
}

// Sum combines the elements in [l, r). An empty range yields m.Zero().
func (t *Tree[T]) Sum(l, r int) (T, error) {
	s := t.m.Zero()
	if l < 0 || r > t.n || l > r {
		return s, fmt.Errorf("%w: range [%d,%d) not within [0,%d)", ErrIndexOutOfBounds, l, r, t.n)
	}
	for l, r = l+t.n, r+t.n; l < r; l, r = l/2, r/2 {
		if l&1 == 1 {
			s = t.m.Add(s, t.data[l])
			l++
		}
		if r&1 == 1 {
			r--
			s = t.m.Add(s, t.data[r])
		}
	}
	return s, nil
}
