package validator

import (
	"fmt"
	"log/slog"
)

const (
	// CodeInvalidSize is the default error code of FileSizeValidator.
	CodeInvalidSize = "invalid_size"

	// DefaultSizeMessage is rendered with the "size", "unit" and "max_size" params.
	DefaultSizeMessage = "Size %{size} %{unit} is too large. Max size is %{max_size} %{unit}."
)

// FileSizeValidator rejects uploads larger than a maximum number of bytes.
// The display unit only changes the numbers put into the error params.
// It is immutable after construction and safe for concurrent use.
type FileSizeValidator struct {
	maxSize int64
	unit    Unit
	message string
	code    string
	logger  *slog.Logger
}

// NewFileSizeValidator builds a validator with maxSize in bytes.
// It fails with ErrImproperlyConfigured when maxSize is not positive or the
// display unit is unknown.
func NewFileSizeValidator(maxSize int64, opts ...Option) (*FileSizeValidator, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrImproperlyConfigured, ErrMaxSizeRequired)
	}

	o := applyOptions(DefaultSizeMessage, CodeInvalidSize, opts)

	unit, err := ParseUnit(o.unit)
	if err != nil {
		return nil, err
	}

	return &FileSizeValidator{
		maxSize: maxSize,
		unit:    unit,
		message: o.message,
		code:    o.code,
		logger:  o.logger,
	}, nil
}

// MustFileSizeValidator is like NewFileSizeValidator but panics on configuration errors.
// Meant for package-level schema definitions.
func MustFileSizeValidator(maxSize int64, opts ...Option) *FileSizeValidator {
	v, err := NewFileSizeValidator(maxSize, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate returns a ValidationError when the size strictly exceeds the maximum.
func (v *FileSizeValidator) Validate(f HasSize) error {
	if ok, verr := v.check("", f); !ok {
		return verr
	}
	return nil
}

// Rule adapts the validator for use with Apply.
func (v *FileSizeValidator) Rule(field string, f HasSize) Rule {
	ok, verr := v.check(field, f)
	return Rule{
		Check: func() bool { return ok },
		Error: verr,
	}
}

func (v *FileSizeValidator) check(field string, f HasSize) (bool, ValidationError) {
	size := f.Size()
	verr := ValidationError{
		Field:   field,
		Code:    v.code,
		Message: v.message,
		Params: map[string]any{
			"size":     v.unit.Convert(size),
			"unit":     string(v.unit),
			"max_size": v.unit.Convert(v.maxSize),
		},
	}

	if size <= v.maxSize {
		return true, verr
	}

	logRejection(v.logger, verr)
	return false, verr
}

func (v *FileSizeValidator) MaxSize() int64  { return v.maxSize }
func (v *FileSizeValidator) Unit() Unit      { return v.unit }
func (v *FileSizeValidator) Code() string    { return v.code }
func (v *FileSizeValidator) Message() string { return v.message }

// Equal reports whether both validators have the same max size, message and code.
// The display unit is not compared.
func (v *FileSizeValidator) Equal(other *FileSizeValidator) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.maxSize == other.maxSize &&
		v.message == other.message &&
		v.code == other.code
}
