package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationError and ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrImproperlyConfigured marks errors raised while building a validator.
	// They indicate a programming mistake, not bad input.
	ErrImproperlyConfigured = errors.New("validator improperly configured")

	// ErrMaxSizeRequired is returned when a size validator is built without a positive maximum.
	ErrMaxSizeRequired = errors.New("max size must be stated in bytes")

	// ErrUnknownUnit is returned for a display unit outside B, kB, MB, GB.
	ErrUnknownUnit = errors.New("display unit not recognized")
)
