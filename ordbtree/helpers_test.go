package ordbtree

import (
	"slices"
	"testing"
)

// unit is a key of weight 1; offsets equal ranks.
type unit int

func (unit) Weight() int { return 1 }

// span is a key with an explicit weight and an identity.
type span struct {
	id, w int
}

func (s span) Weight() int { return s.w }

func newTestTree[K Weighted, V any](t testing.TB, base int) *Tree[K, V] {
	t.Helper()
	tree, err := NewWithConfig[K, V](Config{Base: base})
	if err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	return tree
}

// model is a reference sequence the tree is compared against.
type model []span

func (m model) size() int {
	return weightOf([]span(m))
}

// starts returns the start offset of every element plus the end offset.
func (m model) starts() []int {
	offsets := make([]int, 0, len(m)+1)
	pos := 0
	for _, s := range m {
		offsets = append(offsets, pos)
		pos += s.w
	}
	return append(offsets, pos)
}

func (m model) insert(offset int, s span) (model, bool) {
	i := slices.Index(m.starts(), offset)
	if i < 0 {
		return m, false
	}
	return slices.Insert(m, i, s), true
}

func (m model) remove(offset int) (model, span, bool) {
	starts := m.starts()
	i := slices.Index(starts[:len(m)], offset)
	if i < 0 {
		return m, span{}, false
	}
	s := m[i]
	return slices.Delete(m, i, i+1), s, true
}

// verify compares a tree against a model, including every offset lookup.
func verify(t *testing.T, tree *Tree[span, int], m model) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid: %v", err)
	}
	if tree.Len() != len(m) {
		t.Fatalf("expected len %d, have %d", len(m), tree.Len())
	}
	if tree.Size() != m.size() {
		t.Fatalf("expected size %d, have %d", m.size(), tree.Size())
	}
	i := 0
	for k, v := range tree.All() {
		if k != m[i] || v != m[i].id {
			t.Fatalf("element %d: expected %v/%d, have %v/%d", i, m[i], m[i].id, k, v)
		}
		i++
	}
	if i != len(m) {
		t.Fatalf("iteration yielded %d of %d elements", i, len(m))
	}
	pos := 0
	for _, s := range m {
		for o := pos; o < pos+s.w; o++ {
			start, k, v, ok := tree.Get(o)
			if !ok || start != pos || k != s || v != s.id {
				t.Fatalf("Get(%d): expected %d/%v, have ok=%v %d/%v/%d", o, pos, s, ok, start, k, v)
			}
		}
		pos += s.w
	}
	if _, _, _, ok := tree.Get(pos); ok {
		t.Fatalf("Get(%d) past the end found an element", pos)
	}
}

// appendModel appends all elements of m to tree.
func appendModel(t *testing.T, tree *Tree[span, int], m model) {
	t.Helper()
	for _, s := range m {
		if err := tree.Insert(tree.Size(), s, s.id); err != nil {
			t.Fatalf("append of %v failed: %v", s, err)
		}
	}
}

// flatten returns the in-order keys below a child.
func flatten[K Weighted, V any](c child[K, V]) []K {
	node, isNode := c.asNode()
	if !isNode {
		return slices.Clone(c.keys())
	}
	var keys []K
	for i := range node.children.len() {
		keys = append(keys, flatten(node.children.get(i))...)
		if i < node.len() {
			keys = append(keys, node.keys[i])
		}
	}
	return keys
}

func leafOf(maxElements int, keys ...span) *leafNode[span, int] {
	leaf := newLeaf[span, int](maxElements)
	for _, k := range keys {
		leaf.push(k, k.id)
	}
	return leaf
}

func spans(from, to, w int) []span {
	var s []span
	for id := from; id < to; id++ {
		s = append(s, span{id: id, w: w})
	}
	return s
}
