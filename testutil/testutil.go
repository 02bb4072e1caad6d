package testutil

import (
	"math/rand"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Uint64n returns a pseudo-random uint64 in [0,n). n must be positive.
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64() % n
}

// IDs generates num ids in [0, span). Duplicates are possible.
// Uses a single lock for the whole batch.
func (r *RNG) IDs(num int, span uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint64, num)
	for i := range ids {
		ids[i] = r.rand.Uint64() % span
	}
	return ids
}

// ClusteredIDs generates num ids grouped around random centers spread over
// [0, span), each within radius of its center. Models workloads that touch
// a few dense ranges of a large id space.
func (r *RNG) ClusteredIDs(num, numClusters int, span, radius uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([]uint64, numClusters)
	for i := range centers {
		centers[i] = r.rand.Uint64() % span
	}

	ids := make([]uint64, num)
	for i := range ids {
		c := centers[r.rand.Intn(numClusters)]
		d := r.rand.Uint64() % (radius + 1)
		if c >= d && r.rand.Intn(2) == 0 {
			ids[i] = c - d
		} else if c+d >= c {
			ids[i] = c + d
		} else {
			ids[i] = c
		}
	}
	return ids
}

// Model is a reference pending-id set backed by a roaring bitmap.
// Tests drive it alongside a tracker and compare the results.
type Model struct {
	rb *roaring64.Bitmap
}

// NewModel creates an empty Model.
func NewModel() *Model {
	return &Model{rb: roaring64.New()}
}

// Mark adds id.
func (m *Model) Mark(id uint64) {
	m.rb.Add(id)
}

// IsMarked reports whether id is present.
func (m *Model) IsMarked(id uint64) bool {
	return m.rb.Contains(id)
}

// Pop removes and returns the smallest id.
func (m *Model) Pop() (uint64, bool) {
	if m.rb.IsEmpty() {
		return 0, false
	}
	id := m.rb.Minimum()
	m.rb.Remove(id)
	return id, true
}

// Len returns the number of ids.
func (m *Model) Len() int {
	return int(m.rb.GetCardinality())
}

// Bitmap returns the backing bitmap.
func (m *Model) Bitmap() *roaring64.Bitmap {
	return m.rb
}
