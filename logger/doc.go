// Package logger provides structured logging for pollkit using zerolog.
//
// It supports JSON and console output, log level configuration and
// component-scoped loggers with structured fields. Pipeline stages take a
// *Logger through their options and stay silent when none is given.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("upperwords")
//	log.Info("scan finished", logger.Fields("words", 12))
package logger
