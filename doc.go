// Package priorityqueue implements a bounded-priority FIFO queue: a container
// holding elements tagged with one of a small, fixed set of priority levels
// that always yields the element with the numerically lowest level, ties
// broken by insertion order.
//
// Because the priority domain is bounded ([Levels] buckets, known up front),
// every operation runs in constant time: enqueue appends to the tail of the
// matching bucket, dequeue pops the front of the cached minimum bucket, and
// targeted removal uses the [Handle] returned at insertion to unlink an
// element without scanning. A handle outlives its element only as a token;
// once the element leaves the queue the handle is stale and removal attempts
// with it report false rather than corrupting state.
//
// The queue performs no internal locking and expects a single logical owner.
// When shared between goroutines, wrap every operation behind an external
// mutex; see examples/dispatch for a worked pattern.
package priorityqueue
