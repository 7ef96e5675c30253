// Package bootstrap runs a pollkit binary's lifecycle.
//
// NewApp applies config defaults, validates the config and initializes the
// logger. RunTask then runs start hooks, configure callbacks, the task itself
// (canceled on SIGINT/SIGTERM) and finally stop hooks within a graceful
// timeout.
//
// # Quick Start
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.OnStart(startTelemetry)
//	app.OnStop(flushTelemetry)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    return scan(ctx, os.Stdin, os.Stdout)
//	})
package bootstrap
