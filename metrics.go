package idtracker

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus (see package prommetrics).
//
// Collectors are invoked synchronously on the goroutine that owns the
// tracker; keep them cheap.
type MetricsCollector interface {
	// RecordMark is called after each mark. newlySet is false when the id
	// was already pending.
	RecordMark(newlySet bool)

	// RecordPop is called after each pop. found is false when the tracker
	// was empty.
	RecordPop(found bool)

	// RecordBlockAllocated is called when a new block is materialized.
	RecordBlockAllocated()

	// RecordBlockReleased is called when an exhausted block is removed.
	RecordBlockReleased()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordMark(bool)       {}
func (NoopMetricsCollector) RecordPop(bool)        {}
func (NoopMetricsCollector) RecordBlockAllocated() {}
func (NoopMetricsCollector) RecordBlockReleased()  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	MarkCount      atomic.Int64
	MarkDuplicates atomic.Int64
	PopCount       atomic.Int64
	PopEmpty       atomic.Int64
	BlocksAlloc    atomic.Int64
	BlocksReleased atomic.Int64
}

// RecordMark implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMark(newlySet bool) {
	b.MarkCount.Add(1)
	if !newlySet {
		b.MarkDuplicates.Add(1)
	}
}

// RecordPop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPop(found bool) {
	b.PopCount.Add(1)
	if !found {
		b.PopEmpty.Add(1)
	}
}

// RecordBlockAllocated implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBlockAllocated() {
	b.BlocksAlloc.Add(1)
}

// RecordBlockReleased implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBlockReleased() {
	b.BlocksReleased.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	alloc := b.BlocksAlloc.Load()
	released := b.BlocksReleased.Load()
	return BasicMetricsStats{
		MarkCount:      b.MarkCount.Load(),
		MarkDuplicates: b.MarkDuplicates.Load(),
		PopCount:       b.PopCount.Load(),
		PopEmpty:       b.PopEmpty.Load(),
		BlocksAlloc:    alloc,
		BlocksReleased: released,
		BlocksLive:     alloc - released,
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	MarkCount      int64
	MarkDuplicates int64
	PopCount       int64
	PopEmpty       int64
	BlocksAlloc    int64
	BlocksReleased int64
	BlocksLive     int64
}
