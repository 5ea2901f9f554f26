package priorityqueue

import "errors"

var (
	// ErrEmptyQueue is returned by Peek and Dequeue when the queue holds no
	// elements. The queue is left untouched; callers may retry after the next
	// Enqueue.
	ErrEmptyQueue = errors.New("priorityqueue: queue is empty")

	// ErrInvalidPriority is returned when a supplied priority lies outside
	// [0, Levels). It signals caller misuse; the operation that reports it
	// performs no mutation.
	ErrInvalidPriority = errors.New("priorityqueue: priority out of range")
)
