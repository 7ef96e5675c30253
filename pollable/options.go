package pollable

import (
	"github.com/google/uuid"

	"github.com/kbukum/pollkit/logger"
	"github.com/kbukum/pollkit/observability"
)

// Option configures a Stage or Transformer.
type Option func(*options)

type options struct {
	name    string
	log     *logger.Logger
	metrics *observability.StageMetrics
}

// WithName sets the name used in logs, metrics and SINK_CLOSED details.
// Unnamed stages are labelled with a generated id.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger enables lifecycle logging (close, finalize, done) at debug level.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records fed, emitted, finalize and completion counters.
func WithMetrics(m *observability.StageMetrics) Option {
	return func(o *options) { o.metrics = m }
}

func applyOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = uuid.NewString()
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	return o
}

func (o *options) debug(msg string, kvs ...interface{}) {
	if !o.log.DebugEnabled() {
		return
	}
	o.log.Debug(msg, logger.Fields(append([]interface{}{logger.FieldStage, o.name}, kvs...)...))
}
