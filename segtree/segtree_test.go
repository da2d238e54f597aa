package segtree

import (
	"math/rand/v2"
	"testing"

	"github.com/npillmayer/dstructs/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 5))
	for _, n := range []int{1, 2, 7, 64, 100} {
		tree, err := New[int](group.Additive[int]{}, n)
		require.NoError(t, err)
		xs := make([]int, n)
		for i := range xs {
			xs[i] = rnd.IntN(1000)
		}
		require.NoError(t, tree.Build(xs))
		for range 50 {
			i, x := rnd.IntN(n), rnd.IntN(1000)
			require.NoError(t, tree.Update(i, x))
			xs[i] = x
		}
		for l := 0; l <= n; l++ {
			for r := l; r <= n; r++ {
				expect := 0
				for _, x := range xs[l:r] {
					expect += x
				}
				s, err := tree.Sum(l, r)
				require.NoError(t, err)
				require.Equal(t, expect, s, "n=%d sum [%d,%d)", n, l, r)
			}
		}
		for i, x := range xs {
			v, err := tree.Get(i)
			require.NoError(t, err)
			assert.Equal(t, x, v)
		}
	}
}

func TestRangeMax(t *testing.T) {
	tree, err := New[int](group.Max[int]{Min: -1}, 8)
	require.NoError(t, err)
	require.NoError(t, tree.Build([]int{3, 1, 4, 1, 5, 9, 2, 6}))
	m, err := tree.Sum(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, m)
	m, _ = tree.Sum(6, 6)
	assert.Equal(t, -1, m)
}

func TestSegtreeErrors(t *testing.T) {
	_, err := New[int](group.Additive[int]{}, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	tree, err := New[int](group.Additive[int]{}, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, tree.Build([]int{1, 2, 3, 4}), ErrIndexOutOfBounds)
	assert.ErrorIs(t, tree.Update(3, 0), ErrIndexOutOfBounds)
	_, err = tree.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = tree.Sum(2, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = tree.Sum(0, 4)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.Equal(t, 3, tree.Len())
}
