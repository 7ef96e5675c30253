// Package config loads configuration for pollkit binaries.
//
// It uses Viper to read a YAML config file and godotenv to load an optional
// .env file, then binds environment variables over both. Files are searched
// in standard locations (./cmd/<service>/config.yml, ./config/config.yml,
// ./config.yml) unless given explicitly.
//
// # Usage
//
//	var cfg AppConfig
//	err := config.LoadConfig("upperwords", &cfg,
//	    config.WithConfigFile(path),
//	    config.WithEnvPrefix("UPPERWORDS"),
//	)
//
// With a prefix, UPPERWORDS_SCAN_CHUNK_SIZE overrides scan.chunk_size.
// ServiceConfig carries the fields every binary shares and is meant to be
// embedded with `mapstructure:",squash"`.
package config
