package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Contract violations (fatal)
const (
	// ErrCodeSinkClosed indicates an item was pushed into a closed sink.
	ErrCodeSinkClosed ErrorCode = "SINK_CLOSED"
	// ErrCodeInternal indicates a broken internal invariant.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Configuration and input errors
const (
	// ErrCodeInvalidConfig indicates a configuration value failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

var fatalCodes = map[ErrorCode]bool{
	ErrCodeSinkClosed:    true,
	ErrCodeInternal:      true,
	ErrCodeInvalidConfig: false,
	ErrCodeInvalidInput:  false,
}

// IsFatalCode returns true if the code marks a programming error that must
// not be recovered from.
func IsFatalCode(code ErrorCode) bool {
	return fatalCodes[code]
}
