package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/pollkit/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// squashed names embedded structs whose fields live at the parent's level
// in the config file; it is dropped from reported field paths.
const squashed = "~"

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their config key, falling back to the json tag.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if fld.Anonymous && strings.Contains(fld.Tag.Get("mapstructure"), "squash") {
				return squashed
			}
			for _, tag := range []string{"mapstructure", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return toSnakeCase(fld.Name)
		})
	})
	return validate
}

// Validate validates a struct using struct tags and reports failures as
// INVALID_INPUT. Uses tags like `validate:"required,gte=1"`.
func Validate(s any) error {
	fields, err := check(s)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	return withFields(errors.Validation(joinFieldErrors(fields)), fields)
}

// ValidateConfig is Validate for configuration structs; failures are
// reported as INVALID_CONFIG.
func ValidateConfig(s any) error {
	fields, err := check(s)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	return withFields(errors.New(errors.ErrCodeInvalidConfig, "Invalid configuration: "+joinFieldErrors(fields)), fields)
}

func check(s any) ([]FieldError, error) {
	err := getValidator().Struct(s)
	if err == nil {
		return nil, nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, errors.Validation("validation failed").WithCause(err)
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldPath(e),
			Message: formatValidationError(e),
		})
	}
	return fieldErrors, nil
}

// fieldPath drops the top-level struct name and squashed structs from the
// namespace: "AppConfig.scan.chunk_size" becomes "scan.chunk_size".
func fieldPath(e validator.FieldError) string {
	parts := strings.Split(e.Namespace(), ".")
	if len(parts) < 2 {
		return e.Field()
	}
	path := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if p != squashed {
			path = append(path, p)
		}
	}
	return strings.Join(path, ".")
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.String {
			return "must be at least " + e.Param() + " characters"
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "must be at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	case "gte":
		return "must be at least " + e.Param()
	case "lte":
		return "must be at most " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "url":
		return "must be a valid URL"
	case "hostname_port":
		return "must be a host:port address"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// toSnakeCase converts a field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(r + 32) // lowercase
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
