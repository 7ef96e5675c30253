package main

import (
	"context"

	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/pollkit/bootstrap"
	"github.com/kbukum/pollkit/logger"
	"github.com/kbukum/pollkit/observability"
	"github.com/kbukum/pollkit/version"
)

type rootFlags struct {
	configPath string
	chunkSize  int
	minLength  int
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Print the uppercase words found in stdin",
		Long:          "upperwords reads text from stdin in chunks and prints every space-separated\nword made only of ASCII uppercase letters, one per line.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.GetShortVersion(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			return run(cmd, cfg)
		},
	}

	f := root.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "config file (default: standard search locations)")
	f.IntVar(&flags.chunkSize, "chunk-size", 0, "bytes read from stdin per chunk")
	f.IntVar(&flags.minLength, "min-length", 0, "only print words at least this long")
	f.StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")

	root.AddCommand(newVersionCmd())
	return root
}

// apply overrides config values with flags the user set explicitly.
func (f *rootFlags) apply(cmd *cobra.Command, cfg *AppConfig) {
	if cmd.Flags().Changed("chunk-size") {
		cfg.Scan.ChunkSize = f.chunkSize
	}
	if cmd.Flags().Changed("min-length") {
		cfg.Scan.MinWordLength = f.minLength
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
}

func run(cmd *cobra.Command, cfg *AppConfig) error {
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}

	logger.RegisterDefaults("scan")
	s := &scanner{cfg: cfg.Scan, log: logger.Get("scan")}
	if cfg.Telemetry.Enabled() {
		startTelemetry(app, s)
	}

	return app.RunTask(cmd.Context(), func(ctx context.Context) error {
		return s.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	})
}

// startTelemetry registers hooks that start OTLP trace and metric export
// before the scan and flush it afterwards.
func startTelemetry(app *bootstrap.App[*AppConfig], s *scanner) {
	var (
		tp *sdktrace.TracerProvider
		mp *sdkmetric.MeterProvider
	)
	tel := app.Cfg.Telemetry

	app.OnStart(func(ctx context.Context) error {
		var err error
		tp, err = observability.InitTracer(ctx, observability.TracerConfig{
			ServiceName:    app.Name,
			ServiceVersion: version.GetShortVersion(),
			Environment:    app.Cfg.Environment,
			Endpoint:       tel.Endpoint,
			Insecure:       tel.Insecure,
			SampleRate:     tel.SampleRate,
		})
		if err != nil {
			return err
		}
		mp, err = observability.InitMeter(ctx, &observability.MeterConfig{
			ServiceName:    app.Name,
			ServiceVersion: version.GetShortVersion(),
			Environment:    app.Cfg.Environment,
			Endpoint:       tel.Endpoint,
			Insecure:       tel.Insecure,
			Interval:       tel.MetricInterval,
		})
		if err != nil {
			return err
		}
		s.metrics, err = observability.NewStageMetrics(observability.Meter(serviceName))
		return err
	})

	app.OnStop(func(ctx context.Context) error {
		if mp != nil {
			if err := mp.Shutdown(ctx); err != nil {
				return err
			}
		}
		if tp != nil {
			return tp.Shutdown(ctx)
		}
		return nil
	})
}
