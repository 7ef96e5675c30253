package pipeline

import "github.com/kbukum/pollkit/pollable"

// Map transforms each value using fn.
func Map[I, O any](fn func(I) O) pollable.Mapping[I, O] {
	return func(in I, ok bool) (O, bool) {
		if !ok {
			var zero O
			return zero, false
		}
		return fn(in), true
	}
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](fn func(T) bool) pollable.Mapping[T, T] {
	return func(in T, ok bool) (T, bool) {
		if !ok || !fn(in) {
			var zero T
			return zero, false
		}
		return in, true
	}
}

// FlatMap transforms each value into a slice and emits its elements in order.
// A mapping emits at most one value per call, so only the first element
// leaves on the input's own call. The others stay queued inside the mapping
// and are released one per call when the next input arrives or after the
// transformer is closed.
func FlatMap[I, O any](fn func(I) []O) pollable.Mapping[I, O] {
	var pending []O
	return func(in I, ok bool) (O, bool) {
		if ok {
			pending = append(pending, fn(in)...)
		}
		if len(pending) == 0 {
			var zero O
			return zero, false
		}
		out := pending[0]
		var zero O
		pending[0] = zero
		pending = pending[1:]
		return out, true
	}
}

// Tap calls fn as a side-effect for each value, then passes the value through
// unchanged. Use for logging, metrics or mid-pipeline publishing.
func Tap[T any](fn func(T)) pollable.Mapping[T, T] {
	return func(in T, ok bool) (T, bool) {
		if ok {
			fn(in)
		}
		return in, ok
	}
}

// Reduce accumulates all values into a single result.
// The stage yields exactly one value, the final accumulator, on finalize.
func Reduce[T, R any](init R, fn func(R, T) R) pollable.Mapping[T, R] {
	acc := init
	emitted := false
	return func(in T, ok bool) (R, bool) {
		if ok {
			acc = fn(acc, in)
			var zero R
			return zero, false
		}
		if emitted {
			var zero R
			return zero, false
		}
		emitted = true
		return acc, true
	}
}

// Last emits only the final value seen, on finalize. Nothing is emitted for
// empty input.
func Last[T any]() pollable.Mapping[T, T] {
	var last T
	var have bool
	return func(in T, ok bool) (T, bool) {
		if ok {
			last, have = in, true
			var zero T
			return zero, false
		}
		if !have {
			var zero T
			return zero, false
		}
		out := last
		var zero T
		last, have = zero, false
		return out, true
	}
}
