// Package pollable provides completion-aware iterators and the stages built
// on them.
//
// An Iterator can be polled for its next value and, separately, asked whether
// it is permanently exhausted. Next returning false only means "nothing right
// now"; Done is the only signal that nothing will ever come again. Stages
// wrap an Iterator with a stateful Mapping and drive it through a finalize
// pass once the input is done, so mappings that buffer (a parser holding a
// partial record, a batcher holding a partial batch) can flush.
//
// A Transformer pairs a closable Queue with a Stage: callers Feed input,
// Poll output and Close to announce the end of input. Callers only ever see
// the queue through a Sink, which can push and close but not pop.
//
// Everything in this package is synchronous and single-threaded. No call
// blocks; a Poll that finds nothing returns immediately and the caller polls
// again after feeding more.
//
// # Usage
//
//	t := pollable.NewTransformer(pipeline.Batch[int](2))
//	t.FeedAll(1, 2, 3)
//	batch, _ := t.Poll() // [1 2]
//	t.Close()
//	rest := t.Drain()    // [[3]]
//	t.Done()             // true
package pollable
