package pollable

// Sink is the feed-only view of a Queue handed to callers outside a
// pipeline. It can push and close but cannot pop, so buffered input is only
// ever consumed by the stage that owns the queue.
type Sink[T any] struct {
	q *Queue[T]
}

// Restrict returns the feed-only view of q. The view shares q's lifetime.
func Restrict[T any](q *Queue[T]) *Sink[T] {
	return &Sink[T]{q: q}
}

// Push appends item; panics if the sink is closed.
func (s *Sink[T]) Push(item T) { s.q.Push(item) }

// PushAll appends items in order; panics if the sink is closed.
func (s *Sink[T]) PushAll(items ...T) { s.q.PushAll(items...) }

// Close signals the end of input. Idempotent.
func (s *Sink[T]) Close() { s.q.Close() }

// Closed reports whether Close has been called.
func (s *Sink[T]) Closed() bool { return s.q.Closed() }
