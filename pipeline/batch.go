package pipeline

import "github.com/kbukum/pollkit/pollable"

// Batch collects values into slices of size and emits each slice when it
// fills. The final partial batch is emitted on finalize.
//
// size <= 0 defaults to 1.
func Batch[T any](size int) pollable.Mapping[T, []T] {
	if size <= 0 {
		size = 1
	}
	var batch []T
	return func(in T, ok bool) ([]T, bool) {
		if ok {
			batch = append(batch, in)
			if len(batch) < size {
				return nil, false
			}
		}
		if len(batch) == 0 {
			return nil, false
		}
		out := batch
		batch = nil
		return out, true
	}
}
