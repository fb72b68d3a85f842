package pinnedqueue

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// The queue calls the collector synchronously from its own goroutine;
// implementations shared between queues must be safe for concurrent use.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    pushCounter prometheus.Counter
//	    liveBlocks  prometheus.Gauge
//	}
//
//	func (p *PrometheusCollector) RecordBlockAllocated(capacity int) {
//	    p.liveBlocks.Inc()
//	}
type MetricsCollector interface {
	// RecordPush is called after each successful append.
	RecordPush()

	// RecordPop is called after each successful front removal.
	RecordPop()

	// RecordBlockAllocated is called when a block with the given number of
	// slots is appended to the block sequence.
	RecordBlockAllocated(capacity int)

	// RecordBlockRetired is called when a drained block leaves the sequence.
	RecordBlockRetired(capacity int)

	// RecordMemoryRefused is called when the memory budget refuses a block.
	RecordMemoryRefused(bytes int64)

	// RecordReset is called after Reset disposed of dropped elements.
	RecordReset(dropped int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPush()               {}
func (NoopMetricsCollector) RecordPop()                {}
func (NoopMetricsCollector) RecordBlockAllocated(int)  {}
func (NoopMetricsCollector) RecordBlockRetired(int)    {}
func (NoopMetricsCollector) RecordMemoryRefused(int64) {}
func (NoopMetricsCollector) RecordReset(int)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PushCount        atomic.Int64
	PopCount         atomic.Int64
	ResetCount       atomic.Int64
	DroppedCount     atomic.Int64
	BlocksAllocated  atomic.Int64
	BlocksRetired    atomic.Int64
	SlotsAllocated   atomic.Int64
	SlotsRetired     atomic.Int64
	MemoryRefusals   atomic.Int64
	RefusedBytes     atomic.Int64
	PeakLiveBlocks   atomic.Int64
	PeakLiveElements atomic.Int64
}

// RecordPush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPush() {
	live := b.PushCount.Add(1) - b.PopCount.Load() - b.DroppedCount.Load()
	storeMax(&b.PeakLiveElements, live)
}

// RecordPop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPop() {
	b.PopCount.Add(1)
}

// RecordBlockAllocated implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBlockAllocated(capacity int) {
	live := b.BlocksAllocated.Add(1) - b.BlocksRetired.Load()
	b.SlotsAllocated.Add(int64(capacity))
	storeMax(&b.PeakLiveBlocks, live)
}

// RecordBlockRetired implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBlockRetired(capacity int) {
	b.BlocksRetired.Add(1)
	b.SlotsRetired.Add(int64(capacity))
}

// RecordMemoryRefused implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMemoryRefused(bytes int64) {
	b.MemoryRefusals.Add(1)
	b.RefusedBytes.Add(bytes)
}

// RecordReset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReset(dropped int) {
	b.ResetCount.Add(1)
	b.DroppedCount.Add(int64(dropped))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	pushes, pops, dropped := b.PushCount.Load(), b.PopCount.Load(), b.DroppedCount.Load()
	allocated, retired := b.BlocksAllocated.Load(), b.BlocksRetired.Load()
	return BasicMetricsStats{
		PushCount:        pushes,
		PopCount:         pops,
		ResetCount:       b.ResetCount.Load(),
		DroppedCount:     dropped,
		LiveElements:     pushes - pops - dropped,
		PeakLiveElements: b.PeakLiveElements.Load(),
		BlocksAllocated:  allocated,
		BlocksRetired:    retired,
		LiveBlocks:       allocated - retired,
		PeakLiveBlocks:   b.PeakLiveBlocks.Load(),
		LiveSlots:        b.SlotsAllocated.Load() - b.SlotsRetired.Load(),
		MemoryRefusals:   b.MemoryRefusals.Load(),
		RefusedBytes:     b.RefusedBytes.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PushCount        int64
	PopCount         int64
	ResetCount       int64
	DroppedCount     int64
	LiveElements     int64
	PeakLiveElements int64
	BlocksAllocated  int64
	BlocksRetired    int64
	LiveBlocks       int64
	PeakLiveBlocks   int64
	LiveSlots        int64
	MemoryRefusals   int64
	RefusedBytes     int64
}

func storeMax(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n <= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}
