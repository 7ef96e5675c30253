package extract

import (
	"strings"

	"github.com/kbukum/pollkit/pollable"
)

// UpperWordExtractor recognizes words made only of ASCII uppercase letters.
//
// Words are separated by spaces. Any other character inside a word discards
// it, and nothing more is collected until the next space. The start of input
// counts as a separator; so does the end, once Finalize is called.
type UpperWordExtractor struct {
	words     []string
	working   strings.Builder
	receiving bool
}

// NewUpperWordExtractor returns an extractor positioned at a word boundary.
func NewUpperWordExtractor() *UpperWordExtractor {
	return &UpperWordExtractor{receiving: true}
}

// Process consumes one character.
func (e *UpperWordExtractor) Process(c rune) {
	switch {
	case c == ' ' && !e.receiving:
		e.receiving = true
	case c == ' ':
		if e.working.Len() > 0 {
			e.accept()
		}
	case !e.receiving:
	case c >= 'A' && c <= 'Z':
		e.working.WriteRune(c)
	default:
		e.reject()
	}
}

// ProcessString consumes every character of s in order.
func (e *UpperWordExtractor) ProcessString(s string) {
	for _, c := range s {
		e.Process(c)
	}
}

// Finalize ends the input: a word in progress is accepted and the extractor
// stops collecting. Calling it again is harmless.
func (e *UpperWordExtractor) Finalize() {
	e.Process(' ')
	e.receiving = false
}

// Pop removes and returns the oldest completed word.
func (e *UpperWordExtractor) Pop() (string, bool) {
	if len(e.words) == 0 {
		return "", false
	}
	w := e.words[0]
	e.words = e.words[1:]
	return w, true
}

// Pending returns the number of completed words not yet popped.
func (e *UpperWordExtractor) Pending() int {
	return len(e.words)
}

// Mapping adapts the extractor to a pollable stage over string chunks. Each
// call emits at most one completed word. Further words completed by the same
// chunk wait for the next chunk or for finalize calls.
func (e *UpperWordExtractor) Mapping() pollable.Mapping[string, string] {
	return func(chunk string, ok bool) (string, bool) {
		if ok {
			e.ProcessString(chunk)
		} else {
			e.Finalize()
		}
		return e.Pop()
	}
}

func (e *UpperWordExtractor) accept() {
	e.words = append(e.words, e.working.String())
	e.working.Reset()
}

func (e *UpperWordExtractor) reject() {
	e.working.Reset()
	e.receiving = false
}

// UpperWords returns a transformer that extracts uppercase words from string
// chunks.
func UpperWords(opts ...pollable.Option) *pollable.Transformer[string, string] {
	return pollable.NewTransformer(NewUpperWordExtractor().Mapping(), opts...)
}
