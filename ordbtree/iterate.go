package ordbtree

import "iter"

// iterFrame is a position on an iteration path. For the front path, idx is
// the next element to yield from the node; for the back path, idx is the
// number of elements not yet yielded from the back.
type iterFrame[K Weighted, V any] struct {
	c   child[K, V]
	idx int
}

// Iterator walks the elements of a tree in order, from the front, from the
// back, or from both ends at once. It yields every element exactly once;
// front and back cursors never cross.
//
// An Iterator is invalidated by any mutation of its tree.
type Iterator[K Weighted, V any] struct {
	front     []iterFrame[K, V]
	back      []iterFrame[K, V]
	remaining int
}

// Iter returns a fresh iterator positioned before the first and after the
// last element.
func (t *Tree[K, V]) Iter() *Iterator[K, V] {
	it := &Iterator[K, V]{
		front:     make([]iterFrame[K, V], 0, t.depth),
		back:      make([]iterFrame[K, V], 0, t.depth),
		remaining: t.len,
	}
	if t.len > 0 {
		it.front = descendFront(it.front, t.root)
		it.back = descendBack(it.back, t.root)
	}
	return it
}

// Len returns the number of elements not yet yielded.
func (it *Iterator[K, V]) Len() int {
	return it.remaining
}

// Next yields the next element from the front.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	if it.remaining == 0 {
		return key, value, false
	}
	for len(it.front) > 0 {
		top := &it.front[len(it.front)-1]
		if top.idx >= top.c.numElements() {
			it.front = it.front[:len(it.front)-1]
			continue
		}
		i := top.idx
		top.idx++
		key, value = top.c.keys()[i], top.c.values()[i]
		if node, isNode := top.c.asNode(); isNode {
			it.front = descendFront(it.front, node.children.get(i+1))
		}
		it.remaining--
		return key, value, true
	}
	panic("ordbtree: front iteration path exhausted early")
}

// NextBack yields the next element from the back.
func (it *Iterator[K, V]) NextBack() (key K, value V, ok bool) {
	if it.remaining == 0 {
		return key, value, false
	}
	for len(it.back) > 0 {
		top := &it.back[len(it.back)-1]
		if top.idx == 0 {
			it.back = it.back[:len(it.back)-1]
			continue
		}
		top.idx--
		i := top.idx
		key, value = top.c.keys()[i], top.c.values()[i]
		if node, isNode := top.c.asNode(); isNode {
			it.back = descendBack(it.back, node.children.get(i))
		}
		it.remaining--
		return key, value, true
	}
	panic("ordbtree: back iteration path exhausted early")
}

// descendFront pushes the leftmost path below c.
func descendFront[K Weighted, V any](path []iterFrame[K, V], c child[K, V]) []iterFrame[K, V] {
	for {
		path = append(path, iterFrame[K, V]{c: c, idx: 0})
		node, isNode := c.asNode()
		if !isNode {
			return path
		}
		c = node.children.get(0)
	}
}

// descendBack pushes the rightmost path below c.
func descendBack[K Weighted, V any](path []iterFrame[K, V], c child[K, V]) []iterFrame[K, V] {
	for {
		n := c.numElements()
		path = append(path, iterFrame[K, V]{c: c, idx: n})
		node, isNode := c.asNode()
		if !isNode {
			return path
		}
		c = node.children.get(n)
	}
}

// All returns an in-order sequence of all key/value pairs.
//
// Usage:
//
//	for k, v := range tree.All() {
//	    …
//	}
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iter()
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Backward returns a reverse-order sequence of all key/value pairs.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iter()
		for {
			k, v, ok := it.NextBack()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}
