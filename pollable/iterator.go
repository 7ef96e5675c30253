package pollable

import "iter"

// Iterator is a pull-based sequence that can report permanent exhaustion
// independently of pulling.
//
// Implementations must keep Done monotonic: once it returns true it returns
// true forever and every later Next returns (zero, false).
type Iterator[T any] interface {
	// Next returns the next value, or false when nothing is available. False
	// does not distinguish "momentarily empty" from "done".
	Next() (T, bool)
	// Done reports whether Next will never return a value again.
	Done() bool
}

// Seq returns an iterator over the values currently available from it. The
// sequence stops at the first empty poll; it does not wait for more input.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect polls it until it has nothing more to give right now and returns
// the values in order.
func Collect[T any](it Iterator[T]) []T {
	var result []T
	for v := range Seq(it) {
		result = append(result, v)
	}
	return result
}
