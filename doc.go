// Package idtracker provides a sparse, ordered set of pending uint64 ids.
//
// A data-processing pass marks ids it has to revisit and later drains them
// in ascending order:
//
//	t := idtracker.New()
//	t.Mark(5)
//	t.Mark(3)
//	t.Mark(70000)
//
//	for id := t.PopMark(); id != idtracker.NoID; id = t.PopMark() {
//	    fmt.Println(id) // 3, 5, 70000
//	}
//
// # Storage
//
// Ids are split into a block index (id >> 16) and an offset (id & 0xFFFF).
// Each block is a 65536-bit bitmap packed into uint32 words, allocated on
// the first mark in its range. Blocks are kept ordered by index, so the
// smallest pending id is found by scanning the first block only.
//
// A pop caches its position inside the smallest block and resumes from it
// on the next pop; any mark drops the cached position. A block is released
// when a pop finds it exhausted.
//
// # Ordering Check
//
// Without intervening marks, successive pops are strictly increasing. The
// tracker verifies this and panics with *OrderViolationError if it ever
// fails (see WithOrderCheck). A Mark resets the check, so callers may
// interleave marks and pops freely, including marking ids below the last
// popped one.
//
// # Observability
//
// Structured logging uses log/slog through *Logger (WithLogger). Metrics
// are reported through MetricsCollector (WithMetricsCollector); package
// prommetrics provides a Prometheus implementation.
//
// # Interop
//
// MarkBitmap and Pending convert to and from roaring64 bitmaps; All
// iterates the pending ids without removing them.
//
// Tracker is not safe for concurrent use.
package idtracker
