package idtracker

import (
	"iter"
	"math"

	"github.com/hupe1980/idtracker/internal/block"
	"github.com/hupe1980/idtracker/internal/blockmap"
)

// ID is a tracked identifier.
type ID = uint64

// NoID is returned by PopMark when no id is pending.
const NoID ID = math.MaxUint64

// Tracker is a sparse, ordered set of pending ids.
//
// Ids are stored in 65536-id blocks that are allocated on first mark and
// released once a pop finds them exhausted. Pops always return the smallest
// pending id.
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	pending *blockmap.Map
	count   int

	// nextStart caches the scan position inside the smallest block so
	// consecutive pops do not rescan its cleared prefix. Only valid while
	// hasNextStart is set; any mark clears it.
	nextStart    int
	hasNextStart bool

	// lastPopped is the previous pop result. The order check only applies
	// while guardArmed is set; a mark disarms it.
	lastPopped ID
	guardArmed bool

	logger     *Logger
	metrics    MetricsCollector
	orderCheck bool
}

// New creates an empty Tracker.
func New(optFns ...Option) *Tracker {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Tracker{
		pending:    blockmap.New(),
		logger:     opts.logger,
		metrics:    opts.metricsCollector,
		orderCheck: opts.orderCheck,
	}
}

// Mark adds id to the pending set. Marking a pending id is a no-op apart
// from resetting the pop order check.
func (t *Tracker) Mark(id ID) {
	prev := t.set(id, true)
	t.metrics.RecordMark(!prev)

	// Ids below the last pop may become pending again, so the order check
	// starts over.
	t.guardArmed = false
}

// IsMarked reports whether id is pending.
func (t *Tracker) IsMarked(id ID) bool {
	return t.pending.Get(id)
}

// PopMark removes and returns the smallest pending id, or NoID if none is
// pending.
//
// A pending id equal to math.MaxUint64 is indistinguishable from NoID here;
// use Pop when that id can occur.
func (t *Tracker) PopMark() ID {
	id, _ := t.Pop()
	return id
}

// Pop removes and returns the smallest pending id. ok is false if no id is
// pending.
func (t *Tracker) Pop() (id ID, ok bool) {
	id, ok = t.popMin()
	t.metrics.RecordPop(ok)

	if ok && t.guardArmed && id <= t.lastPopped {
		t.orderViolated(&OrderViolationError{Previous: t.lastPopped, Got: id})
	}
	t.lastPopped = id
	t.guardArmed = true

	return id, ok
}

// Commit is a lifecycle hook kept for callers that flush pending state
// between passes. The in-memory tracker has nothing to flush.
func (t *Tracker) Commit() {}

// ForceRelease is a lifecycle hook kept for callers that ask trackers to
// drop spillable resources. The in-memory tracker holds none.
func (t *Tracker) ForceRelease() {}

// Len returns the number of pending ids.
func (t *Tracker) Len() int {
	return t.count
}

// Empty reports whether no id is pending.
func (t *Tracker) Empty() bool {
	return t.count == 0
}

// BlockCount returns the number of allocated blocks. A block whose last id
// was popped stays allocated until the next pop visits it.
func (t *Tracker) BlockCount() int {
	return t.pending.Len()
}

// All returns an iterator over the pending ids in ascending order without
// removing them. The tracker must not be modified during iteration.
func (t *Tracker) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		t.pending.Ascend(func(index uint64, b *block.Block) bool {
			for o := b.NextSet(0); o != block.Size; o = b.NextSet(o + 1) {
				if !yield(blockmap.Join(index, o)) {
					return false
				}
			}
			return true
		})
	}
}

// set writes a flag and returns its previous value. The cached scan
// position is dropped because the write may land before it.
func (t *Tracker) set(id ID, value bool) bool {
	prev, created := t.pending.Set(id, value)
	if created {
		t.metrics.RecordBlockAllocated()
		index, _ := blockmap.Split(id)
		t.logger.LogBlockAllocated(index, t.pending.Len())
	}

	switch {
	case value && !prev:
		t.count++
	case !value && prev:
		t.count--
	}

	t.hasNextStart = false

	return prev
}

// popMin clears and returns the smallest set flag. Exhausted blocks met on
// the way are released.
func (t *Tracker) popMin() (ID, bool) {
	for {
		index, b, ok := t.pending.Min()
		if !ok {
			t.hasNextStart = false
			return NoID, false
		}

		start := 0
		if t.hasNextStart {
			start = t.nextStart
		}

		if o := b.NextSet(start); o != block.Size {
			b.Set(uint32(o), false)
			t.count--
			// Every offset below o in this block is now clear.
			t.nextStart = o
			t.hasNextStart = true
			return blockmap.Join(index, o), true
		}

		t.pending.Delete(index)
		t.hasNextStart = false
		t.metrics.RecordBlockReleased()
		t.logger.LogBlockReleased(index, t.pending.Len())
	}
}

func (t *Tracker) orderViolated(err *OrderViolationError) {
	t.logger.LogOrderViolation(err)
	if t.orderCheck {
		panic(err)
	}
}
