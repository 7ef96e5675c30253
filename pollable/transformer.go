package pollable

import (
	"iter"

	"github.com/kbukum/pollkit/logger"
)

// Phase is the externally visible lifecycle of a Transformer.
type Phase int

const (
	// PhaseOpenEmpty: accepting input, nothing buffered at the head.
	PhaseOpenEmpty Phase = iota
	// PhaseOpenBuffered: accepting input, unconsumed input buffered.
	PhaseOpenBuffered
	// PhaseDraining: closed, buffered input still to be consumed.
	PhaseDraining
	// PhaseFinalizing: closed and drained, stages are flushing.
	PhaseFinalizing
	// PhaseDone: every stage is done. Terminal.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseOpenEmpty:
		return "open_empty"
	case PhaseOpenBuffered:
		return "open_buffered"
	case PhaseDraining:
		return "draining"
	case PhaseFinalizing:
		return "finalizing"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Transformer is a pipeline that is fed at one end and polled at the other.
// Input goes into a closable queue; output comes from the last stage driven
// over that queue. Closing the transformer closes the queue, after which
// polling drains the remaining input and then each stage's finalize pass.
//
// A Transformer is an Iterator over its output.
type Transformer[I, O any] struct {
	queue *Queue[I]
	sink  *Sink[I]
	tail  Iterator[O]
	opts  options
}

// NewTransformer builds a single-stage transformer applying f to fed items.
func NewTransformer[I, O any](f Mapping[I, O], opts ...Option) *Transformer[I, O] {
	o := applyOptions(opts...)
	q := newNamedQueue[I](o.name)
	return &Transformer[I, O]{
		queue: q,
		sink:  Restrict(q),
		tail:  newStage[I, O](q, f, o),
		opts:  o,
	}
}

// Then appends a stage applying f to t's output. The returned transformer
// shares t's input queue; t itself must not be polled afterwards.
func Then[I, M, O any](t *Transformer[I, M], f Mapping[M, O], opts ...Option) *Transformer[I, O] {
	return &Transformer[I, O]{
		queue: t.queue,
		sink:  t.sink,
		tail:  Transform(t.tail, f, opts...),
		opts:  t.opts,
	}
}

// Feed pushes one input item. Feeding after Close panics with SINK_CLOSED.
func (t *Transformer[I, O]) Feed(item I) {
	t.sink.Push(item)
	if t.opts.metrics != nil {
		t.opts.metrics.RecordFed(t.opts.name, 1)
	}
}

// FeedAll pushes items in order. Feeding after Close panics with SINK_CLOSED.
func (t *Transformer[I, O]) FeedAll(items ...I) {
	t.sink.PushAll(items...)
	if t.opts.metrics != nil && len(items) > 0 {
		t.opts.metrics.RecordFed(t.opts.name, len(items))
	}
}

// Poll returns the next output if one can be produced now.
func (t *Transformer[I, O]) Poll() (O, bool) {
	return t.tail.Next()
}

// Next is Poll; it makes the Transformer an Iterator.
func (t *Transformer[I, O]) Next() (O, bool) {
	return t.tail.Next()
}

// Close signals that no more input is coming. Idempotent.
func (t *Transformer[I, O]) Close() {
	if t.sink.Closed() {
		return
	}
	t.sink.Close()
	t.opts.debug("input closed", "buffered", t.queue.Len())
}

// Done reports whether the transformer will never produce output again.
func (t *Transformer[I, O]) Done() bool {
	return t.tail.Done()
}

// Phase reports where the transformer is in its lifecycle.
func (t *Transformer[I, O]) Phase() Phase {
	switch {
	case t.tail.Done():
		return PhaseDone
	case !t.sink.Closed() && t.queue.Len() == 0:
		return PhaseOpenEmpty
	case !t.sink.Closed():
		return PhaseOpenBuffered
	case t.queue.Len() > 0:
		return PhaseDraining
	default:
		return PhaseFinalizing
	}
}

// Sink returns the feed-only view of the input queue.
func (t *Transformer[I, O]) Sink() *Sink[I] {
	return t.sink
}

// Name returns the label used in logs and metrics.
func (t *Transformer[I, O]) Name() string {
	return t.opts.name
}

// Drain polls until nothing more is available right now. After Close it
// returns everything left, finalize output included, and leaves the
// transformer done.
//
// Before Close, "available" stops at the first empty poll. Outputs a
// mapping has queued internally (FlatMap expansions, further lines of a
// multi-line chunk) are not available yet: they are released by the next
// Feed or by Close.
func (t *Transformer[I, O]) Drain() []O {
	return Collect[O](t)
}

// FeedSeq feeds each input in turn and yields every output available after
// it. The returned sequence stops when inputs is exhausted; it does not close
// the transformer.
func (t *Transformer[I, O]) FeedSeq(inputs iter.Seq[I]) iter.Seq[O] {
	return func(yield func(O) bool) {
		for in := range inputs {
			t.Feed(in)
			for out := range Seq[O](t) {
				if !yield(out) {
					return
				}
			}
		}
	}
}

// Run feeds every input, closes the transformer and returns all output.
func (t *Transformer[I, O]) Run(inputs iter.Seq[I]) []O {
	var result []O
	for out := range t.FeedSeq(inputs) {
		result = append(result, out)
	}
	t.Close()
	result = append(result, t.Drain()...)
	t.opts.debug("run finished", logger.FieldEmitted, len(result), logger.FieldPhase, t.Phase().String())
	return result
}
