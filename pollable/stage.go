package pollable

import "github.com/kbukum/pollkit/logger"

// Mapping is a stateful function applied by a Stage. It is called with
// ok=true for every input item and with ok=false once the input is done
// (the finalize call). It returns false when it has nothing to emit.
//
// During finalize a Stage keeps calling the mapping, one call per poll, until
// it returns false; a mapping must eventually do so or the stage never
// completes.
type Mapping[I, O any] func(in I, ok bool) (O, bool)

// State is the lifecycle of a Stage.
type State int

const (
	// StateActive: the source may still produce input.
	StateActive State = iota
	// StateFinalizing: the source is done; the mapping is being flushed.
	StateFinalizing
	// StateDone: the mapping returned nothing from a finalize call. Terminal.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateFinalizing:
		return "finalizing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Stage applies a Mapping to a completion-aware source. A Stage is itself an
// Iterator, so stages chain.
type Stage[I, O any] struct {
	source Iterator[I]
	f      Mapping[I, O]
	state  State
	opts   options

	emitted       int
	finalizeCalls int
}

// Transform returns a Stage that drives source through f. The stage takes
// exclusive ownership of source; nothing else should pull from it.
func Transform[I, O any](source Iterator[I], f Mapping[I, O], opts ...Option) *Stage[I, O] {
	return newStage(source, f, applyOptions(opts...))
}

func newStage[I, O any](source Iterator[I], f Mapping[I, O], o options) *Stage[I, O] {
	return &Stage[I, O]{source: source, f: f, opts: o}
}

// Next pulls input until the mapping yields a value, the source runs dry, or
// the source is done. Once the source is done each call makes one finalize
// call; the stage becomes done when a finalize call yields nothing.
func (s *Stage[I, O]) Next() (O, bool) {
	var zero O
	if s.state == StateDone {
		return zero, false
	}

	if s.state == StateActive {
		for !s.source.Done() {
			in, ok := s.source.Next()
			if !ok {
				// A chained source can become done on the very pull that
				// returned nothing; in that case fall through to finalize.
				if s.source.Done() {
					break
				}
				return zero, false
			}
			if out, ok := s.f(in, true); ok {
				s.emit()
				return out, true
			}
		}
		s.state = StateFinalizing
		s.opts.debug("stage finalizing", logger.FieldEmitted, s.emitted)
	}

	var none I
	s.finalizeCalls++
	if s.opts.metrics != nil {
		s.opts.metrics.RecordFinalize(s.opts.name)
	}
	out, ok := s.f(none, false)
	if !ok {
		s.state = StateDone
		s.opts.debug("stage done",
			logger.FieldEmitted, s.emitted,
			logger.FieldFinalizeCalls, s.finalizeCalls,
		)
		if s.opts.metrics != nil {
			s.opts.metrics.RecordDone(s.opts.name)
		}
		return zero, false
	}
	s.emit()
	return out, true
}

// Done reports whether the stage has reached StateDone.
func (s *Stage[I, O]) Done() bool {
	return s.state == StateDone
}

// State returns the current lifecycle state.
func (s *Stage[I, O]) State() State {
	return s.state
}

// Name returns the stage label used in logs and metrics.
func (s *Stage[I, O]) Name() string {
	return s.opts.name
}

// Emitted returns how many values the stage has yielded.
func (s *Stage[I, O]) Emitted() int {
	return s.emitted
}

// FinalizeCalls returns how many times the mapping was called with ok=false.
func (s *Stage[I, O]) FinalizeCalls() int {
	return s.finalizeCalls
}

func (s *Stage[I, O]) emit() {
	s.emitted++
	if s.opts.metrics != nil {
		s.opts.metrics.RecordEmitted(s.opts.name)
	}
}
