package ordbtree

import (
	"math/rand/v2"
	"testing"
)

func benchTree(b *testing.B, n int) *Tree[unit, int] {
	tree := New[unit, int]()
	for i := range n {
		if err := tree.Insert(i, unit(i), i); err != nil {
			b.Fatalf("setup failed: %v", err)
		}
	}
	return tree
}

func BenchmarkInsertAppend(b *testing.B) {
	tree := New[unit, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tree.Insert(i, unit(i), i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	tree := New[unit, int]()
	rnd := rand.New(rand.NewPCG(1, 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tree.Insert(rnd.IntN(tree.Len()+1), unit(i), i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	const n = 100000
	tree := benchTree(b, n)
	rnd := rand.New(rand.NewPCG(2, 2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, ok := tree.Get(rnd.IntN(n)); !ok {
			b.Fatal("lookup failed")
		}
	}
}

func BenchmarkRemoveInsert(b *testing.B) {
	const n = 100000
	tree := benchTree(b, n)
	rnd := rand.New(rand.NewPCG(3, 3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		offset := rnd.IntN(n)
		k, v, ok := tree.Remove(offset)
		if !ok {
			b.Fatal("remove failed")
		}
		if err := tree.Insert(offset, k, v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	tree := benchTree(b, 100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for _, v := range tree.All() {
			sum += v
		}
		_ = sum
	}
}
