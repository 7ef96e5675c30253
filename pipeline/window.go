package pipeline

import "github.com/kbukum/pollkit/pollable"

// Sliding emits overlapping windows of the last size values, one window per
// input once size values have been seen.
//
// If the input ends before a full window is seen, the partial window is
// emitted on finalize. size <= 0 defaults to 1.
func Sliding[T any](size int) pollable.Mapping[T, []T] {
	if size <= 0 {
		size = 1
	}
	var window []T
	full := false
	return func(in T, ok bool) ([]T, bool) {
		if !ok {
			if full || len(window) == 0 {
				return nil, false
			}
			out := window
			window = nil
			return out, true
		}

		window = append(window, in)
		if len(window) > size {
			window = window[1:]
		}
		if len(window) < size {
			return nil, false
		}
		full = true
		out := make([]T, size)
		copy(out, window)
		return out, true
	}
}
