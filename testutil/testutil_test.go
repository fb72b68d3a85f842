package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Ops(100, 0.5)

	rng.Reset()
	v2 := rng.Ops(100, 0.5)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestZipf(t *testing.T) {
	rng := NewRNG(4711)

	counts := make([]int, 10)
	for i := 0; i < 10000; i++ {
		k := rng.Zipf(10, 1.5)
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, 10)
		counts[k]++
	}

	// Rank 0 dominates under a heavy-tailed distribution.
	assert.Greater(t, counts[0], counts[9])
	assert.Equal(t, 0, rng.Zipf(1, 1.5))
}

func TestOps(t *testing.T) {
	rng := NewRNG(4711)
	ops := rng.Ops(5000, 0.6)

	require.Len(t, ops, 5000)

	kinds := map[OpKind]int{}
	for _, op := range ops {
		kinds[op.Kind]++
		assert.GreaterOrEqual(t, op.Index, 0)
	}
	assert.Greater(t, kinds[OpPush], 0)
	assert.Greater(t, kinds[OpPop], 0)
	assert.Greater(t, kinds[OpGet]+kinds[OpReplace], 0)
	assert.Equal(t, "replace", OpReplace.String())
}

func TestModel(t *testing.T) {
	m := NewModel[int]()

	_, ok := m.PopFront()
	assert.False(t, ok)

	m.PushBack(1)
	m.PushBack(2)
	m.PushBack(3)
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = m.Get(3)
	assert.False(t, ok)

	assert.Equal(t, 2, m.Replace(1, 20))

	v, ok = m.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{20, 3}, m.Items())
}
