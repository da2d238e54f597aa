package harness

import (
	"context"
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/npillmayer/dstructs/fenwick"
	"github.com/npillmayer/dstructs/group"
	"github.com/npillmayer/dstructs/ordbtree"
	"github.com/npillmayer/dstructs/segtree"
	"github.com/npillmayer/dstructs/weighted"
)

type unitKey = weighted.Unit

func (r *Runner) rand(stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(r.cfg.Seed, stream))
}

// Build inserts the values 0…N-1 in random order, each at the offset equal
// to the number of smaller values already present. Afterwards value i must
// be found at offset i. The offsets are computed with a Fenwick tree over
// presence flags.
func (r *Runner) Build(ctx context.Context) (Report, error) {
	const scenario = "build"
	r.begin(scenario)
	n := r.cfg.N
	tree := r.newTree()
	present := fenwick.NewGroup[int](group.Additive[int]{})
	if err := present.Resize(n, 0); err != nil {
		return Report{}, err
	}
	rep := Report{Scenario: scenario, Elements: n}
	for done, v := range r.rand(1).Perm(n) {
		offset, _ := present.PrefixSum(v)
		if err := tree.Insert(offset, unitKey(v), v); err != nil {
			return rep, mismatch(scenario, "insert of %d at %d: %v", v, offset, err)
		}
		if err := present.Add(v, 1); err != nil {
			return rep, err
		}
		rep.Depth = max(rep.Depth, tree.Depth())
		if err := r.progress(ctx, scenario, "insert", done+1, n); err != nil {
			return rep, err
		}
	}
	if err := tree.Check(); err != nil {
		return rep, err
	}
	for i := range n {
		start, _, v, ok := tree.Get(i)
		if !ok || start != i || v != i {
			return rep, mismatch(scenario, "Get(%d) = %d@%d, ok=%v", i, v, start, ok)
		}
	}
	r.publish(scenario, "verified", n, n)
	model := make([]int, n)
	for i := range model {
		model[i] = i
	}
	return finish(r, rep, tree, sliceSeq(unitKeys(model), model))
}

// Drain builds a tree of N unit-weight elements and removes them at random
// offsets. Every removed value is checked against a Fenwick tree counting the
// values still present. A drained tree must be indistinguishable from a fresh
// one.
func (r *Runner) Drain(ctx context.Context) (Report, error) {
	const scenario = "drain"
	r.begin(scenario)
	n := r.cfg.N
	tree := r.newTree()
	present := fenwick.NewGroup[int](group.Additive[int]{})
	for i := range n {
		if err := tree.Insert(i, unitKey(i), i); err != nil {
			return Report{}, mismatch(scenario, "append %d: %v", i, err)
		}
		present.Push(1)
	}
	rep := Report{Scenario: scenario, Elements: n, Depth: tree.Depth()}
	rnd := r.rand(2)
	for done := 1; tree.Len() > 0; done++ {
		offset := rnd.IntN(tree.Len())
		_, v, ok := tree.Remove(offset)
		if !ok {
			return rep, mismatch(scenario, "Remove(%d) found nothing", offset)
		}
		x, err := present.Get(v)
		if err != nil {
			return rep, err
		}
		if rank, _ := present.PrefixSum(v); x != 1 || rank != offset {
			return rep, mismatch(scenario, "Remove(%d) returned %d of rank %d", offset, v, rank)
		}
		if err := present.Set(v, 0); err != nil {
			return rep, err
		}
		if err := r.progress(ctx, scenario, "remove", done, n); err != nil {
			return rep, err
		}
	}
	if err := tree.Check(); err != nil {
		return rep, err
	}
	if tree.Depth() != 1 || tree.Size() != 0 {
		return rep, mismatch(scenario, "drained tree has depth %d, size %d", tree.Depth(), tree.Size())
	}
	return finish(r, rep, tree, sliceSeq[unitKey](nil, nil))
}

// Mixed applies Ops random inserts and removals of byte-weighted keys to a
// tree and to a slice model. Misaligned offsets are part of the mix and must
// be rejected by both. Finally the element offsets are cross-checked against
// a segment tree over the model's weights.
func (r *Runner) Mixed(ctx context.Context) (Report, error) {
	const scenario = "mixed"
	r.begin(scenario)
	tree, err := ordbtree.NewWithConfig[weighted.Bytes, int](ordbtree.Config{Base: r.cfg.Base})
	if err != nil {
		return Report{}, err
	}
	var keys []weighted.Bytes
	var values []int
	rnd := r.rand(3)
	ops := r.cfg.Ops
	rep := Report{Scenario: scenario}
	for step := range ops {
		offset := rnd.IntN(tree.Size() + 1)
		i, aligned := modelIndex(keys, offset)
		if len(keys) == 0 || rnd.IntN(10) < 6 {
			key, _ := weighted.NewBytes(strings.Repeat("x", 1+rnd.IntN(4)))
			err := tree.Insert(offset, key, step)
			if aligned != (err == nil) {
				return rep, mismatch(scenario, "step %d: Insert(%d) err=%v, aligned=%v", step, offset, err, aligned)
			}
			if aligned {
				keys = insertAt(keys, i, key)
				values = insertAt(values, i, step)
				rep.Elements++
			}
		} else {
			aligned = aligned && i < len(keys)
			_, v, ok := tree.Remove(offset)
			if ok != aligned || ok && v != values[i] {
				return rep, mismatch(scenario, "step %d: Remove(%d) = %d/%v, aligned=%v", step, offset, v, ok, aligned)
			}
			if ok {
				keys = append(keys[:i], keys[i+1:]...)
				values = append(values[:i], values[i+1:]...)
			}
		}
		rep.Depth = max(rep.Depth, tree.Depth())
		if err := r.progress(ctx, scenario, "mutate", step+1, ops); err != nil {
			return rep, err
		}
	}
	if err := tree.Check(); err != nil {
		return rep, err
	}
	if err := crossCheckOffsets(tree, keys); err != nil {
		return rep, mismatch(scenario, "%v", err)
	}
	return finish(r, rep, tree, sliceSeq(keys, values))
}

// finish fingerprints tree and model and fails if their digests differ.
func finish[K ordbtree.Weighted](r *Runner, rep Report, tree *ordbtree.Tree[K, int], model iter.Seq2[K, int]) (Report, error) {
	rep.Digest = digest(tree.All())
	rep.ModelDigest = digest(model)
	rep.Elapsed = time.Since(r.start)
	r.publish(rep.Scenario, "done", rep.Elements, rep.Elements)
	if rep.Digest != rep.ModelDigest {
		return rep, mismatch(rep.Scenario, "digest %016x, model %016x", rep.Digest, rep.ModelDigest)
	}
	tracer().Infof("harness: scenario %s passed in %v, digest %016x", rep.Scenario, rep.Elapsed, rep.Digest)
	return rep, nil
}

// modelIndex finds the element of keys starting at offset, or len(keys) for
// the end offset. aligned is false if offset lies inside an element.
func modelIndex[K ordbtree.Weighted](keys []K, offset int) (i int, aligned bool) {
	pos := 0
	for i, k := range keys {
		if pos == offset {
			return i, true
		}
		if pos > offset {
			return i, false
		}
		pos += k.Weight()
	}
	return len(keys), pos == offset
}

func insertAt[T any](s []T, i int, x T) []T {
	var zero T
	s = append(s, zero)
	copy(s[i+1:], s[i:])
	s[i] = x
	return s
}

func unitKeys(values []int) []unitKey {
	keys := make([]unitKey, len(values))
	for i, v := range values {
		keys[i] = unitKey(v)
	}
	return keys
}

// crossCheckOffsets verifies that element i starts at the sum of the weights
// of elements [0, i).
func crossCheckOffsets(tree *ordbtree.Tree[weighted.Bytes, int], keys []weighted.Bytes) error {
	weights, err := segtree.New[int](group.Additive[int]{}, len(keys))
	if err != nil {
		return err
	}
	ws := make([]int, len(keys))
	for i, k := range keys {
		ws[i] = k.Weight()
	}
	if err := weights.Build(ws); err != nil {
		return err
	}
	for i, k := range keys {
		offset, _ := weights.Sum(0, i)
		for o := offset; o < offset+k.Weight(); o++ {
			start, key, _, ok := tree.Get(o)
			if !ok || start != offset || key != k {
				return fmt.Errorf("Get(%d) = %q@%d, ok=%v, expected %q@%d", o, key, start, ok, k, offset)
			}
		}
	}
	total, _ := weights.Sum(0, len(keys))
	if total != tree.Size() {
		return fmt.Errorf("tree size %d, weights sum to %d", tree.Size(), total)
	}
	return nil
}
