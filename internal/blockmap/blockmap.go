package blockmap

import (
	"github.com/google/btree"
	"github.com/hupe1980/idtracker/internal/block"
)

// degree is the B-tree branching factor for the block index.
const degree = 16

// Split partitions an identifier into its block index and in-block offset.
func Split(id uint64) (index uint64, offset uint32) {
	return id >> block.Bits, uint32(id & block.Mask)
}

// Join rebuilds an identifier from a block index and an in-block offset.
func Join(index uint64, offset int) uint64 {
	return index<<block.Bits | uint64(offset)
}

// Map is a sparse mapping from block index to block.
//
// Point lookups go through a hash map; a B-tree keeps the live block
// indices ordered so the smallest block is a cheap Min query.
// Map is not safe for concurrent use.
type Map struct {
	blocks map[uint64]*block.Block
	order  *btree.BTreeG[uint64]
}

// New creates an empty Map.
func New() *Map {
	return &Map{
		blocks: make(map[uint64]*block.Block),
		order:  btree.NewG[uint64](degree, func(a, b uint64) bool { return a < b }),
	}
}

// Get reports whether id is set. A missing block means unset; Get never
// allocates.
func (m *Map) Get(id uint64) bool {
	index, offset := Split(id)
	b, ok := m.blocks[index]
	if !ok {
		return false
	}
	return b.Get(offset)
}

// Set sets or clears id, creating its block if it does not exist yet.
// The block is created even when value is false.
//
// prev is the previous value of the flag; created reports whether a new
// block was allocated.
func (m *Map) Set(id uint64, value bool) (prev, created bool) {
	index, offset := Split(id)
	b, ok := m.blocks[index]
	if !ok {
		b = block.New()
		m.blocks[index] = b
		m.order.ReplaceOrInsert(index)
		created = true
	}
	prev = b.Get(offset)
	b.Set(offset, value)
	return prev, created
}

// Min returns the block with the smallest index.
func (m *Map) Min() (uint64, *block.Block, bool) {
	index, ok := m.order.Min()
	if !ok {
		return 0, nil, false
	}
	return index, m.blocks[index], true
}

// Delete removes the block at index. It reports whether a block was removed.
func (m *Map) Delete(index uint64) bool {
	if _, ok := m.blocks[index]; !ok {
		return false
	}
	delete(m.blocks, index)
	m.order.Delete(index)
	return true
}

// Ascend calls fn for each block in ascending index order until fn
// returns false.
func (m *Map) Ascend(fn func(index uint64, b *block.Block) bool) {
	m.order.Ascend(func(index uint64) bool {
		return fn(index, m.blocks[index])
	})
}

// Len returns the number of live blocks.
func (m *Map) Len() int {
	return len(m.blocks)
}
