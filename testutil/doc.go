// Package testutil provides testing utilities for idtracker.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for reproducible id workloads and a reference
// model to check tracker behavior against.
//
// # Random Id Generation
//
//	rng := testutil.NewRNG(seed)
//	ids := rng.IDs(1000, 1<<20)                  // uniform in [0, 1<<20)
//	ids = rng.ClusteredIDs(1000, 4, 1<<40, 5000) // dense ranges in a wide space
//
// # Reference Model
//
//	m := testutil.NewModel()
//	m.Mark(42)
//	id, ok := m.Pop()
package testutil
