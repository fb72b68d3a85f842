package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// OpKind identifies a queue operation in a generated sequence.
type OpKind int

const (
	OpPush OpKind = iota
	OpPop
	OpGet
	OpReplace
)

func (k OpKind) String() string {
	switch k {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpGet:
		return "get"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Op is one step of a generated operation sequence. Index is a raw random
// number; callers reduce it modulo the current length for Get and Replace.
type Op struct {
	Kind  OpKind
	Index int
	Value int
}

// Ops generates n operations. Pushes and pops come in Zipf-distributed
// bursts so the queue repeatedly grows across several levels and drains back
// to a head in the middle of a block; pushBias is the probability that a
// burst is a push burst. Get and Replace are interleaved between bursts.
func (r *RNG) Ops(n int, pushBias float64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, 0, n)
	value := 0
	for len(ops) < n {
		kind := OpPop
		if r.rand.Float64() < pushBias {
			kind = OpPush
		}

		burst := r.zipfLocked(64, 1.2) + 1
		for i := 0; i < burst && len(ops) < n; i++ {
			ops = append(ops, Op{Kind: kind, Value: value})
			value++
		}

		if len(ops) < n {
			access := OpGet
			if r.rand.Intn(2) == 0 {
				access = OpReplace
			}
			ops = append(ops, Op{Kind: access, Index: r.rand.Intn(math.MaxInt32), Value: -value})
		}
	}
	return ops
}

// Model is a slice-backed FIFO used as the reference behavior in
// differential tests. It moves elements freely and makes no address
// guarantees.
type Model[T any] struct {
	items []T
}

// NewModel creates an empty Model.
func NewModel[T any]() *Model[T] {
	return &Model[T]{}
}

// Len returns the number of elements.
func (m *Model[T]) Len() int { return len(m.items) }

// PushBack appends item.
func (m *Model[T]) PushBack(item T) {
	m.items = append(m.items, item)
}

// PopFront removes the first element and returns it.
func (m *Model[T]) PopFront() (zero T, _ bool) {
	if len(m.items) == 0 {
		return zero, false
	}
	item := m.items[0]
	m.items[0] = zero
	m.items = m.items[1:]
	return item, true
}

// Get returns the element at index.
func (m *Model[T]) Get(index int) (zero T, _ bool) {
	if index < 0 || index >= len(m.items) {
		return zero, false
	}
	return m.items[index], true
}

// Replace overwrites the element at index and returns the previous value.
func (m *Model[T]) Replace(index int, item T) T {
	old := m.items[index]
	m.items[index] = item
	return old
}

// Items returns a copy of the elements, front first.
func (m *Model[T]) Items() []T {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}
