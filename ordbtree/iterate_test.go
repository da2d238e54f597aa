package ordbtree

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func buildUnitTree(t *testing.T, base, n int) *Tree[unit, int] {
	t.Helper()
	tree := newTestTree[unit, int](t, base)
	for i := range n {
		if err := tree.Insert(i, unit(i), i); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}
	return tree
}

func TestIterateEmpty(t *testing.T) {
	tree := New[unit, int]()
	it := tree.Iter()
	if it.Len() != 0 {
		t.Fatalf("expected empty iterator")
	}
	if _, _, ok := it.Next(); ok {
		t.Fatalf("Next on empty tree yielded an element")
	}
	if _, _, ok := it.NextBack(); ok {
		t.Fatalf("NextBack on empty tree yielded an element")
	}
}

func TestIterateForwardBackward(t *testing.T) {
	for _, base := range []int{2, 3, 6} {
		tree := buildUnitTree(t, base, 500)
		var forward, backward []int
		for _, v := range tree.All() {
			forward = append(forward, v)
		}
		for _, v := range tree.Backward() {
			backward = append(backward, v)
		}
		if len(forward) != tree.Len() {
			t.Fatalf("B=%d: forward yielded %d of %d", base, len(forward), tree.Len())
		}
		slices.Reverse(backward)
		if !slices.Equal(forward, backward) {
			t.Fatalf("B=%d: backward iteration is not the reverse of forward iteration", base)
		}
		for i, v := range forward {
			if v != i {
				t.Fatalf("B=%d: element %d out of order: %d", base, i, v)
			}
		}
	}
}

func TestIterateRestartable(t *testing.T) {
	tree := buildUnitTree(t, 3, 50)
	seq := tree.All()
	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 50 || b != 50 {
		t.Fatalf("expected two full passes of 50, have %d and %d", a, b)
	}
}

func TestIterateEarlyBreak(t *testing.T) {
	tree := buildUnitTree(t, 2, 30)
	var seen []int
	for k := range tree.All() {
		if k == 10 {
			break
		}
		seen = append(seen, int(k))
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 elements before break, have %d", len(seen))
	}
}

func TestIterateInterleaved(t *testing.T) {
	const n = 777
	rnd := rand.New(rand.NewPCG(7, 7))
	for _, base := range []int{2, 4, 6} {
		tree := buildUnitTree(t, base, n)
		it := tree.Iter()
		seen := make([]bool, n)
		lo, hi := 0, n-1
		for it.Len() > 0 {
			var v int
			var ok bool
			if rnd.IntN(2) == 0 {
				_, v, ok = it.Next()
				if v != lo {
					t.Fatalf("B=%d: Next yielded %d, expected %d", base, v, lo)
				}
				lo++
			} else {
				_, v, ok = it.NextBack()
				if v != hi {
					t.Fatalf("B=%d: NextBack yielded %d, expected %d", base, v, hi)
				}
				hi--
			}
			if !ok || seen[v] {
				t.Fatalf("B=%d: element %d yielded twice or not at all", base, v)
			}
			seen[v] = true
		}
		if _, _, ok := it.Next(); ok {
			t.Fatalf("B=%d: iterator continued after cursors met", base)
		}
		if _, _, ok := it.NextBack(); ok {
			t.Fatalf("B=%d: iterator continued after cursors met", base)
		}
		if slices.Contains(seen, false) {
			t.Fatalf("B=%d: not every element was yielded", base)
		}
	}
}
