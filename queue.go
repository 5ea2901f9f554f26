package priorityqueue

import (
	"fmt"
	"iter"
)

// Handle is an opaque token identifying one enqueued element. It is returned
// by [Queue.Enqueue] and accepted by [Queue.TryRemove]. A handle stays valid
// until its element leaves the queue, whether by dequeue or removal; after
// that it is stale and TryRemove reports false for it. The zero Handle never
// identifies an element.
type Handle struct {
	level Priority
	slot  int32
	gen   uint32
}

// MetricsHook defines hooks for monitoring enqueue, dequeue, and targeted
// removal events. Hooks fire after the mutation has committed.
type MetricsHook[T any] interface {
	OnEnqueue(value T, priority Priority)
	OnDequeue(value T, priority Priority)
	OnRemove(value T, priority Priority)
}

// Queue is a bounded-priority FIFO queue over [Levels] priority buckets.
// It supports the following operations, each in constant time:
//
//   - Enqueue with priority, returning a removal [Handle]
//   - Dequeue and Peek of the most urgent, earliest-inserted element
//   - TryRemove of an arbitrary element through its handle
//
// Elements with a lower priority value are dequeued first. Two elements at
// the same priority dequeue in the order they were enqueued.
//
// The queue maintains a cached minimum: the lowest level with a non-empty
// bucket, plus the slot of that bucket's front element. An insert can only
// move the minimum downward, directly onto the bucket inserted into, so no
// scan is ever needed on Enqueue; draining a bucket scans forward across at
// most [Levels] buckets, never across elements.
//
// A Queue must not be accessed concurrently without external serialization.
type Queue[T any] struct {
	buckets [Levels]bucket[T]
	count   int

	// Cached minimum. hasMin is the explicit empty state; min and head are
	// meaningful only while it is set.
	min    Priority
	head   int32
	hasMin bool

	metrics MetricsHook[T]
}

// New creates an empty [Queue] with the given options.
func New[T any](opts ...Option[T]) *Queue[T] {
	o := &Options[T]{}
	for _, opt := range opts {
		opt(o)
	}

	q := &Queue[T]{metrics: o.Metrics}
	for i := range q.buckets {
		q.buckets[i].init(o.CapacityHint)
	}
	return q
}

// Len returns the number of elements currently queued.
func (q *Queue[T]) Len() int {
	return q.count
}

// Peek returns the element that the next [Queue.Dequeue] will yield, without
// removing it. It returns [ErrEmptyQueue] if the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	if !q.hasMin {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.buckets[q.min].slots[q.head].value, nil
}

// Enqueue inserts value at the tail of the bucket for the given priority and
// returns a [Handle] for later targeted removal. It returns
// [ErrInvalidPriority], mutating nothing, if priority is outside
// [0, [Levels]).
func (q *Queue[T]) Enqueue(value T, priority Priority) (Handle, error) {
	if !priority.Valid() {
		return Handle{}, fmt.Errorf("%w: %d", ErrInvalidPriority, int(priority))
	}

	slot, gen := q.buckets[priority].push(value)
	q.count++

	// A new element can only improve the minimum, and an improved minimum is
	// always the bucket just inserted into.
	if !q.hasMin || priority < q.min {
		q.min = priority
		q.head = slot
		q.hasMin = true
	}

	if q.metrics != nil {
		q.metrics.OnEnqueue(value, priority)
	}
	return Handle{level: priority, slot: slot, gen: gen}, nil
}

// Dequeue removes and returns the front element of the minimum-priority
// bucket. It returns [ErrEmptyQueue] if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if !q.hasMin {
		var zero T
		return zero, ErrEmptyQueue
	}

	level := q.min
	value := q.buckets[level].popFront()
	q.count--
	q.refreshMin(level)

	if q.metrics != nil {
		q.metrics.OnDequeue(value, level)
	}
	return value, nil
}

// TryRemove removes the element identified by handle from the bucket for the
// given priority. It reports false, mutating nothing, when the handle is
// stale (its element already dequeued or removed) or when priority does not
// match the bucket the handle was issued for; this is the expected outcome
// for reused handles, not an error. It returns [ErrInvalidPriority] if
// priority is outside [0, [Levels]).
func (q *Queue[T]) TryRemove(handle Handle, priority Priority) (bool, error) {
	if !priority.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidPriority, int(priority))
	}
	if handle.level != priority {
		return false, nil
	}

	value, ok := q.buckets[priority].remove(handle.slot, handle.gen)
	if !ok {
		return false, nil
	}
	q.count--
	if q.hasMin && priority == q.min {
		q.refreshMin(priority)
	}

	if q.metrics != nil {
		q.metrics.OnRemove(value, priority)
	}
	return true, nil
}

// refreshMin recomputes the cached minimum after bucket[from] lost its front
// element. If that bucket still has elements the new head is simply its new
// front; otherwise scan forward across the remaining buckets, a walk bounded
// by [Levels] rather than by queue size.
func (q *Queue[T]) refreshMin(from Priority) {
	for p := from; p < Levels; p++ {
		if q.buckets[p].size > 0 {
			q.min = p
			q.head = q.buckets[p].head
			q.hasMin = true
			return
		}
	}
	q.min = invalidPriority
	q.head = noSlot
	q.hasMin = false
}

// All returns an iterator over the queued elements in dequeue order:
// ascending priority, FIFO within a priority. It does not mutate the queue;
// mutating the queue during iteration is undefined.
func (q *Queue[T]) All() iter.Seq2[Priority, T] {
	return func(yield func(Priority, T) bool) {
		for p := Priority(0); p < Levels; p++ {
			b := &q.buckets[p]
			for i := b.head; i != noSlot; i = b.slots[i].next {
				if !yield(p, b.slots[i].value) {
					return
				}
			}
		}
	}
}
