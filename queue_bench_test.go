package pinnedqueue

import (
	"fmt"
	"testing"

	"github.com/gammazero/deque"
)

type payload struct {
	id   int
	data [48]byte
}

func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()

	q := New[payload]()
	for i := 0; i < b.N; i++ {
		q.PushBack(payload{id: i})
	}
}

// BenchmarkSteadyState keeps a constant backlog and cycles elements through
// it, the pattern where retired blocks are replaced by ever larger ones.
func BenchmarkSteadyState(b *testing.B) {
	for _, backlog := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("pinnedqueue/backlog=%d", backlog), func(b *testing.B) {
			q := New[payload]()
			for i := 0; i < backlog; i++ {
				q.PushBack(payload{id: i})
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				q.PushBack(payload{id: i})
				q.PopFront()
			}
		})

		b.Run(fmt.Sprintf("deque/backlog=%d", backlog), func(b *testing.B) {
			var q deque.Deque[payload]
			for i := 0; i < backlog; i++ {
				q.PushBack(payload{id: i})
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				q.PushBack(payload{id: i})
				q.PopFront()
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	const n = 1 << 16

	q := New[payload]()
	for i := 0; i < n; i++ {
		q.PushBack(payload{id: i})
	}
	// Misalign head so lookups cross the borrow case.
	for i := 0; i < 1000; i++ {
		q.PopFront()
	}

	size := q.Len()
	b.ReportAllocs()
	b.ResetTimer()

	var sum int
	for i := 0; i < b.N; i++ {
		p, _ := q.Get(i % size)
		sum += p.id
	}
	_ = sum
}

func BenchmarkReset(b *testing.B) {
	q := New[payload]()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 1000; j++ {
			q.PushBack(payload{id: j})
		}
		q.Reset()
	}
}
