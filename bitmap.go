package idtracker

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// MarkBitmap marks every id contained in rb.
func (t *Tracker) MarkBitmap(rb *roaring64.Bitmap) {
	if rb == nil || rb.IsEmpty() {
		return
	}

	it := rb.Iterator()
	for it.HasNext() {
		t.Mark(it.Next())
	}
}

// Pending returns a snapshot of the pending ids as a roaring bitmap.
// The tracker is not modified.
func (t *Tracker) Pending() *roaring64.Bitmap {
	rb := roaring64.New()
	for id := range t.All() {
		rb.Add(id)
	}
	return rb
}
