package pinnedqueue

import (
	"context"
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/gammazero/deque"

	"github.com/hupe1980/pinnedqueue/internal/block"
	"github.com/hupe1980/pinnedqueue/internal/conv"
	"github.com/hupe1980/pinnedqueue/internal/layout"
)

// PinnedQueue is a FIFO queue whose elements never move in memory.
//
// Elements live in blocks of doubling capacity. A block is allocated once,
// filled from the back, drained from the front and dropped when empty; no
// element is ever copied between blocks. Pointers returned by Get, Front,
// Back and PushBack therefore stay valid until the element they point to is
// removed.
//
// A PinnedQueue is not safe for concurrent use. The zero value is not usable;
// create queues with New.
type PinnedQueue[T any] struct {
	blocks deque.Deque[*block.Block[T]]
	head   int // absolute position of the front element
	len    int

	elemSize uintptr
	release  func(T)
	logger   *Logger
	metrics  MetricsCollector
	memory   MemoryAcquirer
}

// New creates an empty queue.
func New[T any](opts ...Option) *PinnedQueue[T] {
	o := options{
		metricsCollector: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	q := &PinnedQueue[T]{
		elemSize: unsafe.Sizeof(zero),
		logger:   o.logger,
		metrics:  o.metricsCollector,
		memory:   o.memoryAcquirer,
	}

	if o.release != nil {
		fn, ok := o.release.(func(T))
		if !ok {
			panic(fmt.Sprintf("pinnedqueue: release hook of type %T, want func(%T)", o.release, zero))
		}
		q.release = fn
	}

	return q
}

// Len returns the number of elements in the queue.
func (q *PinnedQueue[T]) Len() int { return q.len }

// IsEmpty reports whether the queue holds no elements.
func (q *PinnedQueue[T]) IsEmpty() bool { return q.len == 0 }

// Head returns the absolute position of the front element: the number of
// elements removed from the front since the queue was created or last reset.
func (q *PinnedQueue[T]) Head() int { return q.head }

// Get returns a pointer to the element at index, counted from the front.
//
// The pointer may be used to read or modify the element in place. It remains
// valid, and keeps pointing at the same element, across any number of
// PushBack calls and across Get or Replace calls on other indices. It must
// not be used after the element has been removed by PopFront, TakeFront or
// Reset.
func (q *PinnedQueue[T]) Get(index int) (*T, bool) {
	if index < 0 || index >= q.len {
		return nil, false
	}
	outer, inner := layout.Locate(q.head, index)
	return q.blocks.At(outer).Get(inner)
}

// Value returns a copy of the element at index.
func (q *PinnedQueue[T]) Value(index int) (T, bool) {
	p, ok := q.Get(index)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// Front returns a pointer to the first element.
func (q *PinnedQueue[T]) Front() (*T, bool) { return q.Get(0) }

// Back returns a pointer to the last element.
func (q *PinnedQueue[T]) Back() (*T, bool) { return q.Get(q.len - 1) }

// PushBack appends item and returns a pointer to its slot.
//
// If the queue has a memory budget and the budget refuses the block the item
// needs, PushBack panics with ErrMemoryBudgetExceeded; use TryPushBack or
// PushBackContext to handle refusals.
func (q *PinnedQueue[T]) PushBack(item T) *T {
	p, err := q.pushBack(context.Background(), item, false)
	if err != nil {
		panic(err)
	}
	return p
}

// TryPushBack appends item unless the memory budget refuses the block it
// needs, in which case the queue is left unchanged and an error wrapping
// ErrMemoryBudgetExceeded is returned.
func (q *PinnedQueue[T]) TryPushBack(item T) (*T, error) {
	return q.pushBack(context.Background(), item, false)
}

// PushBackContext appends item, waiting for the memory budget to admit a new
// block until ctx is done.
func (q *PinnedQueue[T]) PushBackContext(ctx context.Context, item T) (*T, error) {
	return q.pushBack(ctx, item, true)
}

func (q *PinnedQueue[T]) pushBack(ctx context.Context, item T, wait bool) (*T, error) {
	pos := q.head + q.len
	level := layout.Level(pos)

	outer := level - layout.Level(q.head)
	if outer >= q.blocks.Len() {
		if err := q.grow(ctx, level, wait); err != nil {
			return nil, err
		}
	}

	p := q.blocks.At(outer).PushBack(item)
	q.len++
	q.metrics.RecordPush()
	return p, nil
}

// grow appends an empty block for the given level.
func (q *PinnedQueue[T]) grow(ctx context.Context, level int, wait bool) error {
	capacity := layout.Capacity(level)

	if q.memory != nil {
		bytes, err := conv.SizeBytes(capacity, q.elemSize)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMemoryBudgetExceeded, err)
		}

		if wait {
			err = q.memory.AcquireMemory(ctx, bytes)
		} else if !q.memory.TryAcquireMemory(bytes) {
			err = fmt.Errorf("block of %d bytes does not fit", bytes)
		}
		if err != nil {
			q.metrics.RecordMemoryRefused(bytes)
			if q.logger != nil {
				q.logger.LogMemoryRefused(ctx, level, bytes, err)
			}
			return fmt.Errorf("%w: %w", ErrMemoryBudgetExceeded, err)
		}
	}

	q.blocks.PushBack(block.New[T](capacity))

	q.metrics.RecordBlockAllocated(capacity)
	if q.logger != nil {
		q.logger.LogBlockAllocated(ctx, level, capacity, q.blocks.Len())
	}
	return nil
}

// retire hands a block that has left the sequence back to the budget.
func (q *PinnedQueue[T]) retire(b *block.Block[T]) {
	capacity := b.Cap()

	if q.memory != nil {
		// Cannot fail: the same size was charged in grow.
		bytes, _ := conv.SizeBytes(capacity, q.elemSize)
		q.memory.ReleaseMemory(bytes)
	}

	q.metrics.RecordBlockRetired(capacity)
	if q.logger != nil {
		level := bits.TrailingZeros(uint(capacity))
		q.logger.LogBlockRetired(context.Background(), level, capacity, q.blocks.Len())
	}
}

// PopFront removes the first element and reports whether there was one.
// The element is passed to the release hook, if any, and its slot is zeroed.
func (q *PinnedQueue[T]) PopFront() bool {
	item, ok := q.popFront()
	if ok && q.release != nil {
		q.release(item)
	}
	return ok
}

// TakeFront removes the first element and returns it. Ownership moves to the
// caller; the release hook is not called.
func (q *PinnedQueue[T]) TakeFront() (T, bool) {
	return q.popFront()
}

func (q *PinnedQueue[T]) popFront() (zero T, _ bool) {
	if q.len == 0 {
		return zero, false
	}

	front := q.blocks.Front()
	item := front.PopFront()
	q.head++
	q.len--

	if front.IsEmpty() {
		q.blocks.PopFront()
		q.retire(front)
	}

	q.metrics.RecordPop()
	return item, true
}

// Replace overwrites the element at index in place. The previous value is
// passed to the release hook, if any; pointers to the slot stay valid and
// observe the new value.
//
// Replace panics with an *ErrIndex (wrapping ErrIndexOutOfRange) unless
// 0 <= index < Len().
func (q *PinnedQueue[T]) Replace(index int, item T) {
	if index < 0 || index >= q.len {
		panic(&ErrIndex{Index: index, Len: q.len})
	}

	outer, inner := layout.Locate(q.head, index)
	old := q.blocks.At(outer).Replace(inner, item)
	if q.release != nil {
		q.release(old)
	}
}

// Reset removes every element, front to back, passing each to the release
// hook, retires all blocks and rewinds Head to zero. The queue behaves as if
// newly created with the same options.
func (q *PinnedQueue[T]) Reset() {
	dropped := q.len

	for q.blocks.Len() > 0 {
		b := q.blocks.PopFront()
		if q.release != nil {
			for i := 0; i < b.Len(); i++ {
				p, _ := b.Get(i)
				q.release(*p)
			}
		}
		b.Clear()
		q.retire(b)
	}
	q.head, q.len = 0, 0

	q.metrics.RecordReset(dropped)
	if q.logger != nil {
		q.logger.LogReset(context.Background(), dropped, 0)
	}
}

// Stats describes the storage of a queue at a point in time.
type Stats struct {
	Len      int // live elements
	Head     int // absolute position of the front element
	Blocks   int // blocks in the sequence
	Capacity int // total slots across all blocks, including drained ones
	Bytes    int64
}

// Stats returns a snapshot of the queue's storage.
func (q *PinnedQueue[T]) Stats() Stats {
	s := Stats{
		Len:    q.len,
		Head:   q.head,
		Blocks: q.blocks.Len(),
	}
	for i := 0; i < q.blocks.Len(); i++ {
		s.Capacity += q.blocks.At(i).Cap()
	}
	s.Bytes, _ = conv.SizeBytes(s.Capacity, q.elemSize)
	return s
}
