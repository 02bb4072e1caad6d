package idtracker

import (
	"math"
	"testing"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkBitmap(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		tr := New()
		tr.MarkBitmap(nil)
		assert.True(t, tr.Empty())
	})

	t.Run("Empty", func(t *testing.T) {
		tr := New()
		tr.MarkBitmap(roaring64.New())
		assert.True(t, tr.Empty())
		assert.Equal(t, 0, tr.BlockCount())
	})

	t.Run("MarksAll", func(t *testing.T) {
		rb := roaring64.BitmapOf(0, 7, 65536, 1<<48, math.MaxUint64)

		tr := New()
		tr.MarkBitmap(rb)

		assert.Equal(t, int(rb.GetCardinality()), tr.Len())
		for _, id := range rb.ToArray() {
			assert.True(t, tr.IsMarked(id), "id %d", id)
		}
		assert.Equal(t, 4, tr.BlockCount())
	})

	t.Run("ResetsOrderCheck", func(t *testing.T) {
		tr := New()
		tr.Mark(500)
		require.Equal(t, ID(500), tr.PopMark())

		tr.MarkBitmap(roaring64.BitmapOf(1, 2))
		require.NotPanics(t, func() {
			assert.Equal(t, ID(1), tr.PopMark())
		})
	})
}

func TestPending(t *testing.T) {
	tr := New()
	assert.True(t, tr.Pending().IsEmpty())

	tr.Mark(70000)
	tr.Mark(10)
	tr.Mark(11)

	rb := tr.Pending()
	assert.Equal(t, []uint64{10, 11, 70000}, rb.ToArray())

	// Snapshot is detached from the tracker.
	tr.PopMark()
	assert.Equal(t, uint64(3), rb.GetCardinality())
	assert.Equal(t, []uint64{11, 70000}, tr.Pending().ToArray())
}
