// Package errors provides the structured error type shared by pollkit
// packages. Errors carry a machine-readable code so callers can tell caller
// mistakes (fatal, surfaced by panic at the offending call) apart from
// ordinary configuration or input failures.
package errors
