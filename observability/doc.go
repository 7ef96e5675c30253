// Package observability provides OpenTelemetry metrics and tracing for
// pollkit pipelines.
//
// Stage metrics:
//
//	metrics, err := observability.NewStageMetrics(observability.Meter("pollkit"))
//	t := pollable.NewTransformer(f, pollable.WithMetrics(metrics))
//
// Exporters (used by the CLI when an OTLP endpoint is configured):
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("upperwords"))
//	defer mp.Shutdown(ctx)
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("upperwords"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "upperwords.scan")
//	defer span.End()
package observability
