package main

import (
	"time"

	"github.com/kbukum/pollkit/config"
	"github.com/kbukum/pollkit/validation"
)

const (
	serviceName      = "upperwords"
	defaultChunkSize = 4096
	maxChunkSize     = 1 << 20
)

// AppConfig is the upperwords configuration.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Scan                 ScanConfig      `yaml:"scan" mapstructure:"scan"`
	Telemetry            TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// ScanConfig controls how input is chunked and which words are printed.
type ScanConfig struct {
	ChunkSize     int `yaml:"chunk_size" mapstructure:"chunk_size"`
	MinWordLength int `yaml:"min_word_length" mapstructure:"min_word_length"`
}

// defaultScanConfig is applied by the loader underneath file, env and flag
// values, so an explicit zero reaches Validate unchanged.
func defaultScanConfig() ScanConfig {
	return ScanConfig{ChunkSize: defaultChunkSize, MinWordLength: 1}
}

// TelemetryConfig enables OTLP export when Endpoint is set.
type TelemetryConfig struct {
	Endpoint       string        `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure       bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	MetricInterval time.Duration `yaml:"metric_interval" mapstructure:"metric_interval"`
}

// Enabled reports whether telemetry should be exported.
func (t TelemetryConfig) Enabled() bool {
	return t.Endpoint != ""
}

// ApplyDefaults fills unset service and telemetry values. Scan values are
// defaulted by loadConfig.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Telemetry.MetricInterval == 0 {
		c.Telemetry.MetricInterval = 15 * time.Second
	}
}

// Validate checks the whole configuration.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.ValidateConfig(c); err != nil {
		return err
	}
	v := validation.New().
		Range("scan.chunk_size", c.Scan.ChunkSize, 1, maxChunkSize).
		Min("scan.min_word_length", c.Scan.MinWordLength, 0).
		Custom(!c.Telemetry.Enabled() || c.Telemetry.MetricInterval >= time.Second,
			"telemetry.metric_interval", "must be at least 1s when telemetry is enabled")
	if appErr := v.ValidateConfig(); appErr != nil {
		return appErr
	}
	return nil
}

// loadConfig reads the config file (explicit path or the standard search
// locations) and UPPERWORDS_* environment variables.
func loadConfig(path string) (*AppConfig, error) {
	opts := []config.LoaderOption{
		config.WithEnvPrefix(serviceName),
		config.WithDefaults(map[string]any{
			"scan.chunk_size":       defaultScanConfig().ChunkSize,
			"scan.min_word_length":  defaultScanConfig().MinWordLength,
			"telemetry.sample_rate": 1.0,
		}),
	}
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	var cfg AppConfig
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return nil, err
	}
	return &cfg, nil
}
