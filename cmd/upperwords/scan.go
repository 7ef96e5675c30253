package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/pollkit/extract"
	"github.com/kbukum/pollkit/logger"
	"github.com/kbukum/pollkit/observability"
	"github.com/kbukum/pollkit/pipeline"
	"github.com/kbukum/pollkit/pollable"
)

// scanner wires the upperwords pipeline:
// line breaks -> spaces -> uppercase words -> length filter.
//
// Input is fed one byte at a time. Each byte completes at most one word, so
// every stage releases its output on the same poll and words are printed as
// soon as their closing separator has been read.
type scanner struct {
	cfg     ScanConfig
	log     *logger.Logger
	metrics *observability.StageMetrics
}

// The extractor only splits on spaces.
var lineBreaks = strings.NewReplacer("\n", " ", "\r", " ")

func (s *scanner) stageOpts(name string) []pollable.Option {
	opts := []pollable.Option{pollable.WithName(name), pollable.WithLogger(s.log)}
	if s.metrics != nil {
		opts = append(opts, pollable.WithMetrics(s.metrics))
	}
	return opts
}

func (s *scanner) build() *pollable.Transformer[string, string] {
	blanks := pollable.NewTransformer(pipeline.Map(lineBreaks.Replace), s.stageOpts("blanks")...)
	words := pollable.Then(blanks, extract.NewUpperWordExtractor().Mapping(), s.stageOpts("words")...)
	minLen := s.cfg.MinWordLength
	return pollable.Then(words, pipeline.Filter(func(w string) bool { return len(w) >= minLen }), s.stageOpts("filter")...)
}

// Run reads r in ChunkSize chunks, feeds them through the pipeline and
// writes each word to w as soon as it is complete. It returns ctx.Err()
// when ctx is canceled, even while a Read is blocked.
func (s *scanner) Run(ctx context.Context, r io.Reader, w io.Writer) (err error) {
	ctx, span := observability.StartSpan(ctx, "upperwords.scan")
	var chunks, outputs int
	defer func() {
		span.SetAttributes(
			attribute.Int(observability.AttrChunks, chunks),
			attribute.Int(observability.AttrOutputs, outputs),
		)
		observability.EndSpan(span, err)
	}()

	out := bufio.NewWriter(w)
	defer func() {
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
	}()

	words := s.build()
	emit := func() error {
		wrote := false
		for word := range pollable.Seq[string](words) {
			outputs++
			wrote = true
			if _, werr := out.WriteString(word + "\n"); werr != nil {
				return werr
			}
		}
		if wrote {
			return out.Flush()
		}
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	reads := readChunks(ctx, r, s.cfg.ChunkSize)
	for {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		var c chunk
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c = <-reads:
		}
		if len(c.data) > 0 {
			chunks++
			for i := range len(c.data) {
				words.Feed(c.data[i : i+1])
				if err := emit(); err != nil {
					return err
				}
			}
		}
		if c.err == io.EOF {
			break
		}
		if c.err != nil {
			return c.err
		}
	}

	words.Close()
	if err := emit(); err != nil {
		return err
	}
	s.log.Debug("scan finished", logger.Fields(
		observability.AttrChunks, chunks,
		observability.AttrOutputs, outputs,
		logger.FieldPhase, words.Phase().String(),
	))
	return nil
}

type chunk struct {
	data string
	err  error
}

// readChunks reads r on its own goroutine until the first error or until
// ctx is done. A Read that never returns keeps the goroutine alive until
// the reader is closed.
func readChunks(ctx context.Context, r io.Reader, size int) <-chan chunk {
	ch := make(chan chunk)
	go func() {
		buf := make([]byte, size)
		for {
			n, err := r.Read(buf)
			select {
			case ch <- chunk{data: string(buf[:n]), err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}
