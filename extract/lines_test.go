package extract

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/pollkit/pipeline"
	"github.com/kbukum/pollkit/pollable"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   []string
	}{
		{"whole lines", []string{"a\nb\n"}, []string{"a", "b"}},
		{"straddling", []string{"he", "llo\nwor", "ld\n"}, []string{"hello", "world"}},
		{"trailing partial", []string{"a\nb"}, []string{"a", "b"}},
		{"crlf", []string{"a\r\n", "b\r", "\n"}, []string{"a", "b"}},
		{"empty lines kept", []string{"\n\nx\n"}, []string{"", "", "x"}},
		{"no input", nil, nil},
		{"no terminator", []string{"abc"}, []string{"abc"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lines().Run(slices.Values(tc.chunks))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLines_PartialHeldUntilClose(t *testing.T) {
	lines := Lines()
	lines.Feed("one\ntw")
	if diff := cmp.Diff([]string{"one"}, lines.Drain()); diff != "" {
		t.Errorf("open drain mismatch (-want +got):\n%s", diff)
	}
	lines.Feed("o")
	if _, ok := lines.Poll(); ok {
		t.Fatal("partial line must wait for a terminator or close")
	}
	lines.Close()
	if diff := cmp.Diff([]string{"two"}, lines.Drain()); diff != "" {
		t.Errorf("final drain mismatch (-want +got):\n%s", diff)
	}
}

func TestLines_MultiLineChunkReleasedByNextFeed(t *testing.T) {
	lines := Lines()
	lines.Feed("x\ny\n")
	if diff := cmp.Diff([]string{"x"}, lines.Drain()); diff != "" {
		t.Errorf("open drain mismatch (-want +got):\n%s", diff)
	}
	lines.Feed("")
	if diff := cmp.Diff([]string{"y"}, lines.Drain()); diff != "" {
		t.Errorf("drain after next feed mismatch (-want +got):\n%s", diff)
	}
	lines.Close()
	if got := lines.Drain(); len(got) != 0 || !lines.Done() {
		t.Errorf("expected done with nothing left, got %q", got)
	}
}

func TestLinesThenUpperWords(t *testing.T) {
	lines := Lines()
	spaced := pollable.Then(lines, pipeline.Map(func(l string) string { return l + " " }))
	words := pollable.Then(spaced, NewUpperWordExtractor().Mapping())

	got := words.Run(slices.Values([]string{"HELLO\nWOR", "LD\nnope NOPE", "\nLAST"}))
	if diff := cmp.Diff([]string{"HELLO", "WORLD", "NOPE", "LAST"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
