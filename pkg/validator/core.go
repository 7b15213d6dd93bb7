package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// HasContentType is implemented by upload values that carry a declared MIME type.
type HasContentType interface {
	ContentType() string
}

// HasSize is implemented by upload values that know their size in bytes.
type HasSize interface {
	Size() int64
}

// ValidationError represents a single validation failure.
// Message is a template with %{name} placeholders, Params holds the values
// substituted into it, so callers can render or localize it on their own.
type ValidationError struct {
	Field   string
	Code    string
	Message string
	Params  map[string]any
}

// Matches %{name} placeholders, same syntax as the i18n translator.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Render substitutes Params into Message. Unknown placeholders are kept as is.
func (e ValidationError) Render() string {
	return paramRegex.ReplaceAllStringFunc(e.Message, func(match string) string {
		name := match[2 : len(match)-1]
		val, ok := e.Params[name]
		if !ok {
			return match
		}
		return formatParam(val)
	})
}

// TranslationKey returns the key used to look up a localized template for the error code.
func (e ValidationError) TranslationKey() string {
	return "validation." + e.Code
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Render()
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Render())
}

// Is reports ErrValidationFailed so that single failures match the sentinel.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func formatParam(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return FormatAmount(val)
	default:
		return fmt.Sprint(val)
	}
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Render()))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the rendered messages for a field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Render())
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Codes returns the error codes reported for a field, in order.
func (ve ValidationErrors) Codes(field string) []string {
	var codes []string
	for _, err := range ve {
		if err.Field == field {
			codes = append(codes, err.Code)
		}
	}
	return codes
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
// A lone ValidationError is returned as a single-element collection.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrValidationFailed)
}
