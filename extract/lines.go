package extract

import (
	"strings"

	"github.com/kbukum/pollkit/pollable"
)

// LinesMapping splits string chunks into lines. Line terminators ("\n" and a
// preceding "\r") are removed. A trailing line without a terminator is
// emitted on finalize.
//
// A chunk holding several lines yields only its first line on its own call.
// The remaining lines are held until the next chunk arrives or the input is
// closed; feed smaller chunks when every line must surface immediately.
func LinesMapping() pollable.Mapping[string, string] {
	var partial strings.Builder
	var lines []string
	return func(chunk string, ok bool) (string, bool) {
		if ok {
			for {
				i := strings.IndexByte(chunk, '\n')
				if i < 0 {
					partial.WriteString(chunk)
					break
				}
				partial.WriteString(chunk[:i])
				lines = append(lines, strings.TrimSuffix(partial.String(), "\r"))
				partial.Reset()
				chunk = chunk[i+1:]
			}
		} else if partial.Len() > 0 {
			lines = append(lines, strings.TrimSuffix(partial.String(), "\r"))
			partial.Reset()
		}

		if len(lines) == 0 {
			return "", false
		}
		line := lines[0]
		lines = lines[1:]
		return line, true
	}
}

// Lines returns a transformer that splits string chunks into lines.
func Lines(opts ...pollable.Option) *pollable.Transformer[string, string] {
	return pollable.NewTransformer(LinesMapping(), opts...)
}
