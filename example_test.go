package pinnedqueue_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pinnedqueue"
	"github.com/hupe1980/pinnedqueue/resource"
)

// Example shows that pointers into the queue survive later appends.
func Example() {
	q := pinnedqueue.New[string]()

	first := q.PushBack("first")
	for i := 0; i < 100; i++ {
		q.PushBack(fmt.Sprintf("item-%d", i))
	}

	fmt.Println(*first)

	*first = "FIRST"
	v, _ := q.Value(0)
	fmt.Println(v)
	fmt.Println(q.Len())
	// Output:
	// first
	// FIRST
	// 101
}

// Example_releaseHook demonstrates which operations hand elements to the
// release hook.
func Example_releaseHook() {
	q := pinnedqueue.New[string](pinnedqueue.WithRelease(func(s string) {
		fmt.Println("released", s)
	}))

	q.PushBack("a")
	q.PushBack("b")
	q.PushBack("c")

	q.PopFront()      // a
	q.Replace(0, "B") // b

	// Ownership moves to the caller.
	took, _ := q.TakeFront()
	fmt.Println("took", took)

	q.Reset() // c
	// Output:
	// released a
	// released b
	// took B
	// released c
}

// Example_memoryBudget bounds block storage with a resource controller.
func Example_memoryBudget() {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64})
	q := pinnedqueue.New[int64](pinnedqueue.WithMemoryAcquirer(rc))

	// Blocks of 1, 2 and 4 slots: 56 bytes.
	for i := int64(0); i < 7; i++ {
		if _, err := q.TryPushBack(i); err != nil {
			fmt.Println(err)
		}
	}

	// The next block would hold 8 slots.
	_, err := q.TryPushBack(7)
	fmt.Println(errors.Is(err, pinnedqueue.ErrMemoryBudgetExceeded))
	fmt.Println(q.Len(), rc.MemoryUsage())
	// Output:
	// true
	// 7 56
}

// Example_stats inspects the block layout.
func Example_stats() {
	q := pinnedqueue.New[int]()
	for i := 0; i < 10; i++ {
		q.PushBack(i)
	}
	q.PopFront()

	s := q.Stats()
	fmt.Println(s.Len, s.Head, s.Blocks, s.Capacity)
	// Output: 9 1 3 14
}
