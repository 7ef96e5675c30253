package pollable

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/kbukum/pollkit/errors"
	"github.com/kbukum/pollkit/logger"
	"github.com/kbukum/pollkit/observability"
)

func double(in int, ok bool) (int, bool) { return in * 2, ok }

func TestTransformer_FeedPollClose(t *testing.T) {
	tr := NewTransformer(double)
	if _, ok := tr.Poll(); ok {
		t.Fatal("expected nothing before any input")
	}
	tr.Feed(1)
	tr.Feed(2)
	if v, ok := tr.Poll(); !ok || v != 2 {
		t.Fatalf("expected 2, got %v %v", v, ok)
	}
	tr.Close()
	if tr.Done() {
		t.Fatal("buffered input remains; must not be done")
	}
	if diff := cmp.Diff([]int{4}, tr.Drain()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !tr.Done() {
		t.Error("expected done after drain")
	}
}

func TestTransformer_Phase(t *testing.T) {
	tr := NewTransformer[int, int](holdAll[int]())
	steps := []struct {
		name   string
		action func()
		want   Phase
	}{
		{"initial", func() {}, PhaseOpenEmpty},
		{"fed", func() { tr.FeedAll(1, 2) }, PhaseOpenBuffered},
		{"closed", tr.Close, PhaseDraining},
		{"first poll", func() { tr.Poll() }, PhaseFinalizing},
		{"second poll", func() { tr.Poll() }, PhaseFinalizing},
		{"last poll", func() { tr.Poll() }, PhaseDone},
	}
	for _, step := range steps {
		step.action()
		if got := tr.Phase(); got != step.want {
			t.Fatalf("%s: phase = %s, want %s", step.name, got, step.want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseOpenEmpty, "open_empty"},
		{PhaseOpenBuffered, "open_buffered"},
		{PhaseDraining, "draining"},
		{PhaseFinalizing, "finalizing"},
		{PhaseDone, "done"},
		{Phase(-1), "unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.phase.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTransformer_CloseIdempotent(t *testing.T) {
	tr := NewTransformer[int, int](passThrough[int]())
	tr.Feed(7)
	tr.Close()
	tr.Close()
	if diff := cmp.Diff([]int{7}, tr.Drain()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	tr.Close()
	if !tr.Done() {
		t.Error("expected done")
	}
}

func TestTransformer_FeedAfterClosePanics(t *testing.T) {
	tr := NewTransformer[int, int](passThrough[int](), WithName("numbers"))
	tr.Close()
	for i := 0; i < 3; i++ {
		mustPanicClosed(t, func() { tr.Feed(i) })
	}
	mustPanicClosed(t, func() { tr.FeedAll(1, 2) })
	mustPanicClosed(t, func() { tr.Sink().Push(1) })

	defer func() {
		appErr, ok := errors.FromPanic(recover())
		if !ok {
			t.Fatal("expected AppError panic")
		}
		if appErr.Details["sink"] != "numbers" {
			t.Errorf("expected sink detail 'numbers', got %v", appErr.Details["sink"])
		}
	}()
	tr.Feed(1)
}

func TestTransformer_SinkFeedsQueue(t *testing.T) {
	tr := NewTransformer[string, string](passThrough[string]())
	sink := tr.Sink()
	sink.PushAll("a", "b")
	sink.Close()
	if !tr.Sink().Closed() {
		t.Fatal("sink close must close the transformer input")
	}
	if diff := cmp.Diff([]string{"a", "b"}, tr.Drain()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformer_Then(t *testing.T) {
	lengths := Then(NewTransformer[string, string](holdAll[string]()), func(in string, ok bool) (int, bool) {
		return len(in), ok
	})
	lengths.FeedAll("a", "bb", "ccc")
	if _, ok := lengths.Poll(); ok {
		t.Fatal("first stage holds everything until close")
	}
	lengths.Close()
	if diff := cmp.Diff([]int{1, 2, 3}, lengths.Drain()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if lengths.Phase() != PhaseDone {
		t.Errorf("expected done, got %s", lengths.Phase())
	}
}

func TestTransformer_FeedSeq(t *testing.T) {
	tr := NewTransformer[int, int](double)
	got := slices.Collect(tr.FeedSeq(slices.Values([]int{1, 2, 3})))
	if diff := cmp.Diff([]int{2, 4, 6}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if tr.Sink().Closed() {
		t.Error("FeedSeq must not close the input")
	}
}

func TestTransformer_FeedSeqStopsEarly(t *testing.T) {
	tr := NewTransformer[int, int](double)
	for v := range tr.FeedSeq(slices.Values([]int{1, 2, 3})) {
		if v == 2 {
			break
		}
	}
	tr.Close()
	if len(tr.Drain()) != 0 {
		t.Error("only the first input should have been fed")
	}
}

func TestTransformer_Run(t *testing.T) {
	tr := NewTransformer[int, int](holdAll[int]())
	got := tr.Run(slices.Values([]int{3, 1, 2}))
	if diff := cmp.Diff([]int{3, 1, 2}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !tr.Done() {
		t.Error("expected done after Run")
	}
}

func TestTransformer_NameDefaultsToID(t *testing.T) {
	a := NewTransformer[int, int](double)
	b := NewTransformer[int, int](double)
	if a.Name() == "" || a.Name() == b.Name() {
		t.Errorf("expected distinct generated names, got %q and %q", a.Name(), b.Name())
	}
	if got := NewTransformer[int, int](double, WithName("x")).Name(); got != "x" {
		t.Errorf("expected name x, got %q", got)
	}
}

func TestTransformer_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)

	tr := NewTransformer[int, int](holdAll[int](), WithName("held"), WithLogger(log))
	tr.FeedAll(1, 2)
	tr.Close()
	tr.Drain()

	var messages []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		if entry[logger.FieldStage] != "held" {
			t.Errorf("expected stage field 'held', got %v", entry[logger.FieldStage])
		}
		messages = append(messages, entry["message"].(string))
	}
	want := []string{"input closed", "stage finalizing", "stage done"}
	if diff := cmp.Diff(want, messages); diff != "" {
		t.Errorf("log messages mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformer_SilentAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "info", Format: "json"}, "test", &buf)
	tr := NewTransformer[int, int](double, WithLogger(log))
	tr.Run(slices.Values([]int{1}))
	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}

func TestTransformer_WithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := observability.NewStageMetrics(mp.Meter("pollable-test"))
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTransformer[int, int](holdAll[int](), WithName("held"), WithMetrics(metrics))
	tr.Feed(1)
	tr.FeedAll(2, 3)
	tr.Close()
	tr.Drain()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		want int64
	}{
		{"pollkit.fed", 3},
		{"pollkit.emitted", 3},
		{"pollkit.finalize_calls", 4},
		{"pollkit.completed", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := counterValue(rm, tc.name, "held"); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func counterValue(rm metricdata.ResourceMetrics, name, stage string) int64 {
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if m.Name != name || !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value(attribute.Key(observability.AttrStage)); ok && v.AsString() == stage {
					total += dp.Value
				}
			}
		}
	}
	return total
}
