package block

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is the panic value for an append to a Block at capacity.
	ErrFull = errors.New("block: full")
	// ErrEmpty is the panic value for a removal from an empty Block.
	ErrEmpty = errors.New("block: empty")
	// ErrOutOfRange is the panic value for an offset that holds no element.
	ErrOutOfRange = errors.New("block: offset out of range")
)

// Block is a fixed-capacity run of elements with stable addresses.
type Block[T any] struct {
	items []T
	start int // first live slot
	end   int // one past the last live slot
}

// New creates an empty Block holding up to capacity elements.
func New[T any](capacity int) *Block[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("block: invalid capacity %d", capacity))
	}
	return &Block[T]{items: make([]T, capacity)}
}

// Len returns the number of live elements.
func (b *Block[T]) Len() int { return b.end - b.start }

// Cap returns the fixed capacity.
func (b *Block[T]) Cap() int { return len(b.items) }

// IsEmpty reports whether no live elements remain.
func (b *Block[T]) IsEmpty() bool { return b.start == b.end }

// IsFull reports whether every slot has been filled. A full Block stays full
// after removals; its freed slots are not reused.
func (b *Block[T]) IsFull() bool { return b.end == len(b.items) }

// Get returns a pointer to the element offset slots behind the current front.
func (b *Block[T]) Get(offset int) (*T, bool) {
	if offset < 0 || offset >= b.Len() {
		return nil, false
	}
	return &b.items[b.start+offset], true
}

// PushBack stores item after the last element and returns its slot.
func (b *Block[T]) PushBack(item T) *T {
	if b.IsFull() {
		panic(fmt.Errorf("%w: capacity %d", ErrFull, len(b.items)))
	}
	p := &b.items[b.end]
	*p = item
	b.end++
	return p
}

// PopFront removes the front element and returns it. The slot is zeroed so
// the Block no longer references anything the element pointed to.
func (b *Block[T]) PopFront() T {
	if b.IsEmpty() {
		panic(ErrEmpty)
	}
	var zero T
	item := b.items[b.start]
	b.items[b.start] = zero
	b.start++
	return item
}

// Replace stores item in the slot at offset and returns the previous value.
// The slot keeps its address.
func (b *Block[T]) Replace(offset int, item T) T {
	p, ok := b.Get(offset)
	if !ok {
		panic(fmt.Errorf("%w: offset %d, len %d", ErrOutOfRange, offset, b.Len()))
	}
	old := *p
	*p = item
	return old
}

// Clear zeroes every live slot and marks the Block as drained. The Block
// cannot be refilled afterwards.
func (b *Block[T]) Clear() {
	clear(b.items[b.start:b.end])
	b.start = b.end
}
