package pinnedqueue

import "context"

// MemoryAcquirer is an interface for acquiring memory.
//
// A queue configured with a MemoryAcquirer charges it for the storage of
// every block it allocates and credits it when the block is retired.
// resource.Controller implements it.
type MemoryAcquirer interface {
	AcquireMemory(ctx context.Context, amount int64) error
	TryAcquireMemory(amount int64) bool
	ReleaseMemory(amount int64)
}

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	memoryAcquirer   MemoryAcquirer
	release          any // func(T), checked by New
}

// Option configures a PinnedQueue.
type Option func(*options)

// WithLogger configures structured logging of block lifecycle events.
// Pass nil to disable logging (the default).
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &pinnedqueue.BasicMetricsCollector{}
//	q := pinnedqueue.New[int](pinnedqueue.WithMetricsCollector(metrics))
//	// ... use q ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithMemoryAcquirer charges block storage to a memory budget.
//
// With a budget configured, prefer TryPushBack or PushBackContext: PushBack
// panics with ErrMemoryBudgetExceeded when the budget refuses a block.
func WithMemoryAcquirer(a MemoryAcquirer) Option {
	return func(o *options) {
		o.memoryAcquirer = a
	}
}

// WithRelease registers fn to be called exactly once for every element the
// queue disposes of: on PopFront, for the value overwritten by Replace, and
// for every remaining element on Reset. Elements handed out by TakeFront are
// not passed to fn.
//
// T must match the element type of the queue; New panics otherwise.
func WithRelease[T any](fn func(T)) Option {
	return func(o *options) {
		if fn == nil {
			o.release = nil
			return
		}
		o.release = fn
	}
}
