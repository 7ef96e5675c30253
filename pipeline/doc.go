// Package pipeline provides reusable, stateful pollable.Mapping builders.
//
// Each builder returns a fresh Mapping that follows the finalize contract: it
// is called with ok=true for every input and with ok=false, once per poll,
// after the input is done. Builders that buffer (FlatMap, Batch, Sliding,
// Reduce, Last) flush from the finalize calls and then return false.
//
// A Mapping is called at most once per input and emits at most one value per
// call. FlatMap therefore queues expansions beyond the first and releases
// them on later inputs or during finalize.
//
// Mappings hold state; build a new one for every stage.
//
// # Operators
//
//   - Map: transform each value
//   - Filter: keep values matching a predicate
//   - FlatMap: transform each value into zero or more values
//   - Tap: side-effect without altering the value
//   - Batch: group values into fixed-size slices, partial batch on finalize
//   - Sliding: overlapping windows of the last n values
//   - Reduce: accumulate all values into one result, emitted on finalize
//   - Last: emit only the final value
//
// # Usage
//
//	words := pollable.NewTransformer(pipeline.Filter(func(s string) bool { return s != "" }))
//	lengths := pollable.Then(words, pipeline.Map(func(s string) int { return len(s) }))
//	total := pollable.Then(lengths, pipeline.Reduce(0, func(acc, n int) int { return acc + n }))
//	total.FeedAll("ab", "", "cde")
//	total.Close()
//	total.Drain() // [5]
package pipeline
