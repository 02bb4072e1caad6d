package blockmap

import (
	"math"
	"testing"

	"github.com/hupe1980/idtracker/internal/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitJoin(t *testing.T) {
	tests := []struct {
		id     uint64
		index  uint64
		offset uint32
	}{
		{0, 0, 0},
		{10, 0, 10},
		{65535, 0, 65535},
		{65536, 1, 0},
		{70000, 1, 4464},
		{math.MaxUint64, math.MaxUint64 >> 16, 65535},
	}

	for _, tt := range tests {
		index, offset := Split(tt.id)
		assert.Equal(t, tt.index, index, "Split(%d) index", tt.id)
		assert.Equal(t, tt.offset, offset, "Split(%d) offset", tt.id)
		assert.Equal(t, tt.id, Join(index, int(offset)))
	}
}

func TestMap_GetDoesNotAllocate(t *testing.T) {
	m := New()

	assert.False(t, m.Get(42))
	assert.False(t, m.Get(1<<40))
	assert.Equal(t, 0, m.Len())
}

func TestMap_Set(t *testing.T) {
	m := New()

	prev, created := m.Set(10, true)
	assert.False(t, prev)
	assert.True(t, created)

	prev, created = m.Set(10, true)
	assert.True(t, prev)
	assert.False(t, created)

	prev, created = m.Set(11, true)
	assert.False(t, prev)
	assert.False(t, created)

	assert.True(t, m.Get(10))
	assert.True(t, m.Get(11))
	assert.False(t, m.Get(12))
	assert.Equal(t, 1, m.Len())
}

func TestMap_ClearMaterializesBlock(t *testing.T) {
	m := New()

	prev, created := m.Set(200000, false)
	assert.False(t, prev)
	assert.True(t, created)
	require.Equal(t, 1, m.Len())

	index, b, ok := m.Min()
	require.True(t, ok)
	assert.Equal(t, uint64(200000>>16), index)
	assert.True(t, b.Empty())
}

func TestMap_MinOrdering(t *testing.T) {
	m := New()

	// Insert out of order, including the largest possible block.
	for _, id := range []uint64{math.MaxUint64, 5 << 16, 70000, 3 << 16, 9} {
		m.Set(id, true)
	}

	var got []uint64
	for {
		index, _, ok := m.Min()
		if !ok {
			break
		}
		got = append(got, index)
		require.True(t, m.Delete(index))
	}

	assert.Equal(t, []uint64{0, 1, 3, 5, math.MaxUint64 >> 16}, got)
	assert.Equal(t, 0, m.Len())
}

func TestMap_Delete(t *testing.T) {
	m := New()
	m.Set(1, true)

	assert.False(t, m.Delete(7))
	assert.True(t, m.Delete(0))
	assert.False(t, m.Delete(0))
	assert.False(t, m.Get(1))

	_, _, ok := m.Min()
	assert.False(t, ok)
}

func TestMap_Ascend(t *testing.T) {
	m := New()
	for _, id := range []uint64{3 << 16, 1 << 16, 2 << 16} {
		m.Set(id, true)
	}

	var got []uint64
	m.Ascend(func(index uint64, b *block.Block) bool {
		got = append(got, index)
		assert.Equal(t, 1, b.Count())
		return index < 2
	})

	assert.Equal(t, []uint64{1, 2}, got)
}
