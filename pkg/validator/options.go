package validator

import "log/slog"

// Option configures a MIMEValidator or FileSizeValidator.
type Option func(*options)

type options struct {
	message string
	code    string
	unit    string
	logger  *slog.Logger
}

// WithMessage overrides the default message template. Empty values are ignored.
func WithMessage(message string) Option {
	return func(o *options) {
		if message != "" {
			o.message = message
		}
	}
}

// WithCode overrides the default error code. Empty values are ignored.
func WithCode(code string) Option {
	return func(o *options) {
		if code != "" {
			o.code = code
		}
	}
}

// WithDisplayUnit sets the unit sizes are shown in. Only FileSizeValidator uses it;
// an unknown unit makes NewFileSizeValidator fail. Empty values keep bytes.
func WithDisplayUnit(unit string) Option {
	return func(o *options) {
		if unit != "" {
			o.unit = unit
		}
	}
}

// WithLogger enables a debug record for every rejected value.
// Validators are silent without it.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(defaultMessage, defaultCode string, opts []Option) *options {
	o := &options{
		message: defaultMessage,
		code:    defaultCode,
		unit:    string(UnitB),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
