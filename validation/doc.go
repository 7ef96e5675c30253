// Package validation validates configuration and input structs.
//
// Struct tag validation uses go-playground/validator; failures become
// *errors.AppError values carrying a "fields" detail. Field names follow the
// mapstructure tag, so messages name the config key the user wrote.
//
// # Struct Tag Validation
//
//	type ScanConfig struct {
//	    ChunkSize int `mapstructure:"chunk_size" validate:"gte=1"`
//	}
//	err := validation.ValidateConfig(cfg) // INVALID_CONFIG
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(cfg.Endpoint != "" || !cfg.Enabled, "telemetry.endpoint", "is required when telemetry is enabled")
//	if appErr := v.ValidateConfig(); appErr != nil { ... }
package validation
