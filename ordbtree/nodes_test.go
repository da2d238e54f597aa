package ordbtree

import (
	"slices"
	"testing"
)

func TestBoundedInsertOverflow(t *testing.T) {
	s := make([]int, 0, 3)
	s, _, overflow := boundedInsert(s, 0, 1)
	s, _, _ = boundedInsert(s, 1, 3)
	s, _, _ = boundedInsert(s, 1, 2)
	if overflow || !slices.Equal(s, []int{1, 2, 3}) {
		t.Fatalf("unexpected content %v", s)
	}
	s, x, overflow := boundedInsert(s, 0, 0)
	if !overflow || x != 3 || !slices.Equal(s, []int{0, 1, 2}) {
		t.Fatalf("expected overflow of 3, have %v/%d/%v", overflow, x, s)
	}
	s, x, overflow = boundedInsert(s, 3, 9)
	if !overflow || x != 9 || !slices.Equal(s, []int{0, 1, 2}) {
		t.Fatalf("expected appended item to overflow, have %v/%d/%v", overflow, x, s)
	}
	if cap(s) != 3 {
		t.Fatalf("capacity changed to %d", cap(s))
	}
}

func TestElementsInsertTracksSize(t *testing.T) {
	leaf := leafOf(5, span{1, 1}, span{2, 2}, span{3, 3}, span{4, 4}, span{5, 5})
	if leaf.size != 15 || !leaf.isFull() {
		t.Fatalf("expected full leaf of size 15, have %d", leaf.size)
	}
	k, v, overflow := leaf.insert(1, span{6, 6}, 6)
	if !overflow || k.id != 5 || v != 5 {
		t.Fatalf("expected element 5 to overflow, have %v/%d/%v", overflow, k, v)
	}
	if leaf.size != 16 {
		t.Fatalf("expected size 16 after overflow, have %d", leaf.size)
	}
	k, _ = leaf.remove(0)
	if k.id != 1 || leaf.size != 15 {
		t.Fatalf("unexpected removal %v, size %d", k, leaf.size)
	}
}

func TestElementsSplit(t *testing.T) {
	// B = 3
	leaf := leafOf(5, spans(0, 5, 1)...)
	right := newLeaf[span, int](5)
	sep, sepValue := leaf.split(span{5, 2}, 5, &right.elements)
	if sep.id != 3 || sepValue != 3 {
		t.Fatalf("expected separator 3, have %v", sep)
	}
	if leaf.len() != 3 || leaf.size != 3 {
		t.Fatalf("left: expected 3 elements of size 3, have %d/%d", leaf.len(), leaf.size)
	}
	if right.len() != 2 || right.size != 3 || right.keys[0].id != 4 || right.keys[1].id != 5 {
		t.Fatalf("right: unexpected content %v, size %d", right.keys, right.size)
	}
	if cap(right.keys) != 5 {
		t.Fatalf("right capacity is %d", cap(right.keys))
	}
}

func TestElementsMerge(t *testing.T) {
	left := leafOf(5, spans(0, 2, 1)...)
	right := leafOf(5, spans(3, 5, 2)...)
	left.merge(span{2, 3}, 2, &right.elements)
	if left.len() != 5 || left.size != 2+3+4 {
		t.Fatalf("unexpected merge result %v, size %d", left.keys, left.size)
	}
	if right.len() != 0 || right.size != 0 {
		t.Fatalf("right not drained: %v", right.keys)
	}
	for i, k := range left.keys {
		if k.id != i || left.values[i] != i {
			t.Fatalf("element %d out of order: %v", i, k)
		}
	}
}

func TestLocate(t *testing.T) {
	leaf := leafOf(5, span{0, 2}, span{1, 3}, span{2, 1})
	for offset, expect := range map[int]int{0: 0, 2: 1, 5: 2} {
		if i, ok := leaf.locateStart(offset); !ok || i != expect {
			t.Errorf("locateStart(%d): expected %d, have %d/%v", offset, expect, i, ok)
		}
	}
	for _, offset := range []int{1, 3, 4, 6, 7} {
		if _, ok := leaf.locateStart(offset); ok {
			t.Errorf("locateStart(%d) should fail", offset)
		}
	}
	if i, ok := leaf.locateInsert(6); !ok || i != 3 {
		t.Errorf("locateInsert at end: expected 3, have %d/%v", i, ok)
	}
	if _, ok := leaf.locateInsert(4); ok {
		t.Errorf("locateInsert(4) should fail")
	}
}

func twoLeafNode(left, right *leafNode[span, int], sep span) *innerNode[span, int] {
	return newRoot(leafChild(left), sep, sep.id, leafChild(right))
}

func TestResolveUnderflowRotateLeft(t *testing.T) {
	n := twoLeafNode(leafOf(5, span{0, 1}), leafOf(5, spans(2, 5, 1)...), span{1, 1})
	size := n.size
	n.resolveUnderflow(0)
	if n.children.leafs[0].len() != 2 || n.children.leafs[1].len() != 2 {
		t.Fatalf("expected 2/2 after rotation")
	}
	if n.size != size || n.keys[0].id != 2 {
		t.Fatalf("unexpected separator %v or size %d", n.keys[0], n.size)
	}
	assertOrder(t, nodeChild(n), 5)
}

func TestResolveUnderflowRotateRight(t *testing.T) {
	n := twoLeafNode(leafOf(5, spans(0, 3, 1)...), leafOf(5, span{4, 1}), span{3, 1})
	n.resolveUnderflow(1)
	if n.children.leafs[0].len() != 2 || n.children.leafs[1].len() != 2 {
		t.Fatalf("expected 2/2 after rotation")
	}
	if n.keys[0].id != 2 || n.size != 5 {
		t.Fatalf("unexpected separator %v or size %d", n.keys[0], n.size)
	}
	assertOrder(t, nodeChild(n), 5)
}

func TestResolveUnderflowMerge(t *testing.T) {
	n := twoLeafNode(leafOf(5, span{0, 1}), leafOf(5, spans(2, 4, 1)...), span{1, 1})
	n.resolveUnderflow(0)
	if n.len() != 0 || n.children.len() != 1 || n.size != 4 {
		t.Fatalf("expected single merged child, have %d elements, %d children", n.len(), n.children.len())
	}
	c := nodeChild(n)
	if !c.replaceWithChild() || !c.isLeaf() || c.size() != 4 {
		t.Fatalf("collapse failed")
	}
	assertOrder(t, c, 4)
}

func TestNodeSplit(t *testing.T) {
	// B = 2: nodes hold up to 3 elements and 4 children
	n := newRoot(leafChild(leafOf(3, span{0, 1})), span{1, 1}, 1, leafChild(leafOf(3, span{2, 1})))
	n.push(span{3, 1}, 3, leafChild(leafOf(3, span{4, 1})))
	n.push(span{5, 1}, 5, leafChild(leafOf(3, span{6, 1})))
	k, v, c, overflow := n.push(span{7, 1}, 7, leafChild(leafOf(3, span{8, 1})))
	if !overflow || k.id != 7 || v != 7 || c.keys()[0].id != 8 {
		t.Fatalf("expected overflow triple of 7")
	}
	if n.size != 7 {
		t.Fatalf("expected size 7 without overflow, have %d", n.size)
	}
	sep, _, right := n.split(k, v, c)
	if sep.id != 5 {
		t.Fatalf("expected separator 5, have %v", sep)
	}
	if n.len() != 2 || n.children.len() != 3 || n.size != 5 {
		t.Fatalf("left: %d elements, %d children, size %d", n.len(), n.children.len(), n.size)
	}
	if right.len() != 1 || right.children.len() != 2 || right.size != 3 {
		t.Fatalf("right: %d elements, %d children, size %d", right.len(), right.children.len(), right.size)
	}
	keys := append(flatten(nodeChild(n)), sep)
	keys = append(keys, flatten(nodeChild(right))...)
	for i, k := range keys {
		if k.id != i {
			t.Fatalf("element %d out of order: %v", i, keys)
		}
	}
}

func TestChildrenRejectMixedKinds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when mixing leaves and nodes")
		}
	}()
	cs := makeChildren[span, int](4, false)
	cs.push(nodeChild(newInner[span, int](3, false)))
}

func assertOrder(t *testing.T, c child[span, int], n int) {
	t.Helper()
	keys := flatten(c)
	if len(keys) != n {
		t.Fatalf("expected %d elements, have %d", n, len(keys))
	}
	for i, k := range keys {
		if k.id != i {
			t.Fatalf("element %d out of order: %v", i, keys)
		}
	}
}
