package pinnedqueue

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pinnedqueue/internal/block"
)

// Contract violations. The queue panics with these values (possibly wrapped)
// when its own invariants or the caller's preconditions are broken; test with
// errors.Is on the recovered value.
var (
	// ErrBlockFull is raised when an append would exceed a block's capacity.
	ErrBlockFull = block.ErrFull
	// ErrBlockEmpty is raised when a removal hits an empty block.
	ErrBlockEmpty = block.ErrEmpty
	// ErrIndexOutOfRange is raised by Replace for an index that holds no element.
	ErrIndexOutOfRange = errors.New("pinnedqueue: index out of range")
)

var (
	// ErrMemoryBudgetExceeded is returned when the configured MemoryAcquirer
	// refuses the storage for a new block.
	ErrMemoryBudgetExceeded = errors.New("pinnedqueue: memory budget exceeded")
)

// ErrIndex describes an out-of-range index.
//
// It unwraps to ErrIndexOutOfRange.
type ErrIndex struct {
	Index int
	Len   int
}

func (e *ErrIndex) Error() string {
	return fmt.Sprintf("pinnedqueue: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *ErrIndex) Unwrap() error { return ErrIndexOutOfRange }
