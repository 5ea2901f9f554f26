package priorityqueue

// Options holds configuration options for the [Queue].
type Options[T any] struct {
	CapacityHint int
	Metrics      MetricsHook[T]
}

// Option is a function that configures [Options].
type Option[T any] func(*Options[T])

// WithCapacityHint pre-sizes each priority bucket to hold n elements before
// its arena needs to grow.
func WithCapacityHint[T any](n int) Option[T] {
	return func(o *Options[T]) {
		o.CapacityHint = n
	}
}

// WithMetricsHook sets the metrics hook for the [Queue].
func WithMetricsHook[T any](hook MetricsHook[T]) Option[T] {
	return func(o *Options[T]) {
		o.Metrics = hook
	}
}
