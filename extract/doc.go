// Package extract provides text record extractors for chunked string input.
//
// Input arrives in arbitrary chunks, so records routinely straddle chunk
// boundaries. Each extractor keeps the partial record between calls and
// flushes it when the input is closed.
//
//	words := extract.UpperWords()
//	words.FeedAll("  FooBA", "R; HEL", "L", "O  Wurld WORLD", "  !!")
//	words.Close()
//	words.Drain() // [HELLO WORLD]
package extract
