package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/pollkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// StageMetrics holds the instruments recorded by pipeline stages.
// Recording never blocks; instruments are created once and shared by every
// stage that is given the same StageMetrics.
type StageMetrics struct {
	fed           metric.Int64Counter
	emitted       metric.Int64Counter
	finalizeCalls metric.Int64Counter
	completed     metric.Int64Counter
}

// NewStageMetrics creates stage instruments on the given meter.
func NewStageMetrics(meter metric.Meter) (*StageMetrics, error) {
	fed, err := meter.Int64Counter("pollkit.fed",
		metric.WithDescription("Items pushed into a stage sink"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pollkit.fed counter: %w", err)
	}

	emitted, err := meter.Int64Counter("pollkit.emitted",
		metric.WithDescription("Items yielded by a stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pollkit.emitted counter: %w", err)
	}

	finalizeCalls, err := meter.Int64Counter("pollkit.finalize_calls",
		metric.WithDescription("Calls made to a mapping after its input was exhausted"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pollkit.finalize_calls counter: %w", err)
	}

	completed, err := meter.Int64Counter("pollkit.completed",
		metric.WithDescription("Stages that reached the done state"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pollkit.completed counter: %w", err)
	}

	return &StageMetrics{
		fed:           fed,
		emitted:       emitted,
		finalizeCalls: finalizeCalls,
		completed:     completed,
	}, nil
}

// RecordFed records n items pushed into the named stage.
func (m *StageMetrics) RecordFed(stage string, n int) {
	m.fed.Add(context.Background(), int64(n), stageAttr(stage))
}

// RecordEmitted records one item yielded by the named stage.
func (m *StageMetrics) RecordEmitted(stage string) {
	m.emitted.Add(context.Background(), 1, stageAttr(stage))
}

// RecordFinalize records one finalize call of the named stage.
func (m *StageMetrics) RecordFinalize(stage string) {
	m.finalizeCalls.Add(context.Background(), 1, stageAttr(stage))
}

// RecordDone records the named stage reaching its terminal state.
func (m *StageMetrics) RecordDone(stage string) {
	m.completed.Add(context.Background(), 1, stageAttr(stage))
}

func stageAttr(stage string) metric.AddOption {
	return metric.WithAttributes(attribute.String(AttrStage, stage))
}
