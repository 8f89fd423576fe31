// Package queue provides an unbounded MPMC blocking FIFO queue.
//
// BlockingQueue is a classic monitor: one mutex guarding a slice buffer
// plus a condition variable that parks consumers while the buffer is
// empty. Any number of producer and consumer goroutines may share one
// instance. The design targets correctness and simplicity, not maximal
// throughput; see the combined benchmarks for comparisons against
// channels and lock-free rings.
//
// # Blocking semantics (IMPORTANT)
//
// Pop blocks until an element is available. There is no close, timeout,
// or cancellation: a consumer blocked on a queue that never receives
// another Push blocks forever. Callers that need a liveness bound must
// layer their own shutdown signal on top, typically a sentinel element.
//
// Push never blocks on a data condition. The buffer is unbounded, so
// sustained pushing without matching pops grows memory without limit;
// callers that need bounded memory must rate-limit producers externally.
package queue

import "sync"

// compactFloor is the dead-prefix length below which Pop skips
// compaction unless dead slots already outnumber live ones.
const compactFloor = 1024

// BlockingQueue is an unbounded FIFO queue safe for any number of
// concurrent producers and consumers.
//
// A BlockingQueue must not be copied after first use: each instance is
// one synchronization domain, and a copy would carry an unsynchronized
// view of the same buffer. The contained mutex makes copies a vet error.
type BlockingQueue[T any] struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	items    []T
	head     int
}

// NewBlocking creates an empty BlockingQueue.
func NewBlocking[T any]() *BlockingQueue[T] {
	q := &BlockingQueue[T]{}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// Push appends v at the tail and wakes one blocked Pop, if any.
// It blocks only while acquiring the lock, never on a data condition.
func (q *BlockingQueue[T]) Push(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, v)
	q.nonEmpty.Signal()
}

// Pop removes and returns the head element, blocking while the queue is
// empty.
//
// The wait runs in a loop over the emptiness predicate: a woken waiter
// may find the buffer already drained by a faster consumer, and the
// runtime may wake waiters without a matching Signal.
func (q *BlockingQueue[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.head == len(q.items) {
		q.nonEmpty.Wait()
	}
	v := q.items[q.head]
	var zero T
	q.items[q.head] = zero // drop the reference so the element can be collected
	q.head++
	q.compact()
	return v
}

// Len returns the number of buffered elements at some instant.
// The snapshot may be stale as soon as it is taken.
func (q *BlockingQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Empty reports whether the queue held no elements at some instant.
// Like Len, the result is a snapshot only.
func (q *BlockingQueue[T]) Empty() bool {
	return q.Len() == 0
}

// compact reclaims the dead prefix left behind by Pop once it grows past
// compactFloor or outnumbers the live elements. Called with q.mu held.
func (q *BlockingQueue[T]) compact() {
	if q.head == 0 {
		return
	}
	if q.head < compactFloor && 2*q.head < len(q.items) {
		return
	}
	n := copy(q.items, q.items[q.head:])
	clear(q.items[n:])
	q.items = q.items[:n]
	q.head = 0
}
