// Package pinnedqueue provides a growable FIFO queue with stable element
// addresses.
//
// Once an element is pushed, a pointer to it remains valid and keeps pointing
// at the same memory for as long as the element stays in the queue: appending
// more elements, growing the internal bookkeeping, and removing other elements
// from the front never move it. This lets callers hand out long-lived
// pointers into the queue (intrusive links, self-referential records,
// callbacks registered by address) without copying.
//
// # Quick Start
//
//	q := pinnedqueue.New[Task]()
//
//	t := q.PushBack(Task{ID: 1}) // *Task, stable until popped
//	q.PushBack(Task{ID: 2})
//
//	first, _ := q.Front() // same pointer as t
//	first.Done = true
//
//	q.PopFront() // t must not be used after this
//
// # Storage Layout
//
// Elements are stored in blocks whose capacities double: 1, 2, 4, 8, ...
// A block is allocated when the first element that belongs to it is pushed
// and retired when its last element is removed. Elements are never copied
// between blocks, so appends and front removals are amortized O(1) and
// indexed access is O(1).
//
// Block placement is derived from the absolute position of an element (the
// number of elements pushed before it since the queue was created or reset),
// so no bookkeeping is rewritten as the front advances. See Head.
//
// # Element Lifetime
//
// Removing an element zeroes its slot. A release hook registered with
// WithRelease is called exactly once for every element the queue disposes of
// (PopFront, the old value of Replace, Reset). TakeFront hands the element to
// the caller instead.
//
// A pointer obtained from Get, Front, Back or PushBack must not be used after
// its element has been removed.
//
// # Errors
//
// Get, Front, Back and Value report absence with a false result. Replace with
// an index outside [0, Len()) panics with an *ErrIndex. Internal contract
// violations panic with ErrBlockFull or ErrBlockEmpty; they indicate a bug,
// not a runtime condition.
//
// When a memory budget is configured (WithMemoryAcquirer, see package
// resource), TryPushBack and PushBackContext return an error wrapping
// ErrMemoryBudgetExceeded instead of allocating past the budget.
//
// # Concurrency
//
// A PinnedQueue has a single owner and no internal locking. No method may run
// concurrently with another method on the same queue.
package pinnedqueue
