package pollable

import (
	"github.com/emirpasic/gods/lists/singlylinkedlist"

	"github.com/kbukum/pollkit/errors"
)

// Queue is a FIFO buffer that is both an input sink and a completion-aware
// source. It reports Done once it has been closed and fully drained.
//
// The zero value is an open, empty queue.
type Queue[T any] struct {
	items  *singlylinkedlist.List
	closed bool
	name   string
}

// NewQueue returns an open, empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{items: singlylinkedlist.New()}
}

// FromSlice returns a closed queue holding items in order.
func FromSlice[T any](items []T) *Queue[T] {
	q := NewQueue[T]()
	q.PushAll(items...)
	q.Close()
	return q
}

func newNamedQueue[T any](name string) *Queue[T] {
	q := NewQueue[T]()
	q.name = name
	return q
}

func (q *Queue[T]) list() *singlylinkedlist.List {
	if q.items == nil {
		q.items = singlylinkedlist.New()
	}
	return q.items
}

// Push appends item. Pushing into a closed queue is a programming error and
// panics with an *errors.AppError coded SINK_CLOSED.
func (q *Queue[T]) Push(item T) {
	q.mustBeOpen()
	q.list().Add(item)
}

// PushAll appends items in order. The closed check happens before anything is
// enqueued.
func (q *Queue[T]) PushAll(items ...T) {
	q.mustBeOpen()
	l := q.list()
	for _, item := range items {
		l.Add(item)
	}
}

// Close marks the end of input. Buffered items stay available. Idempotent.
func (q *Queue[T]) Close() {
	q.closed = true
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	return q.closed
}

// Len returns the number of buffered items.
func (q *Queue[T]) Len() int {
	if q.items == nil {
		return 0
	}
	return q.items.Size()
}

// Next pops the earliest buffered item.
func (q *Queue[T]) Next() (T, bool) {
	var zero T
	if q.items == nil {
		return zero, false
	}
	v, ok := q.items.Get(0)
	if !ok {
		return zero, false
	}
	q.items.Remove(0)
	item, _ := v.(T)
	return item, true
}

// Done reports whether the queue is closed and empty.
func (q *Queue[T]) Done() bool {
	return q.closed && q.Len() == 0
}

func (q *Queue[T]) mustBeOpen() {
	if q.closed {
		panic(errors.SinkClosed(q.name))
	}
}
