package validator

import (
	"log/slog"
	"strings"
)

const (
	// CodeInvalidMIME is the default error code of MIMEValidator.
	CodeInvalidMIME = "invalid_mime"

	// DefaultMIMEMessage is rendered with the "mime" and "allowed_mimes" params.
	DefaultMIMEMessage = "MIME type '%{mime}' is not allowed. Allowed types are: '%{allowed_mimes}'."
)

// MIMEValidator rejects uploads whose declared content type is not in an allow-list.
// The type is taken from the upload metadata; file content is never inspected.
// It is immutable after construction and safe for concurrent use.
type MIMEValidator struct {
	allowed []string
	set     map[string]struct{}
	message string
	code    string
	logger  *slog.Logger
}

// NewMIMEValidator builds a validator for the given allow-list.
// A nil list means no restriction and every type passes.
// Entries are lowercased and deduplicated, keeping the first-seen order.
func NewMIMEValidator(allowed []string, opts ...Option) *MIMEValidator {
	o := applyOptions(DefaultMIMEMessage, CodeInvalidMIME, opts)

	v := &MIMEValidator{
		message: o.message,
		code:    o.code,
		logger:  o.logger,
	}

	if allowed != nil {
		v.allowed = make([]string, 0, len(allowed))
		v.set = make(map[string]struct{}, len(allowed))
		for _, mime := range allowed {
			mime = strings.ToLower(mime)
			if _, ok := v.set[mime]; ok {
				continue
			}
			v.set[mime] = struct{}{}
			v.allowed = append(v.allowed, mime)
		}
	}

	return v
}

// Validate returns a ValidationError with the configured code when the lowercased
// content type is not allowed.
func (v *MIMEValidator) Validate(f HasContentType) error {
	if ok, verr := v.check("", f); !ok {
		return verr
	}
	return nil
}

// Rule adapts the validator for use with Apply.
func (v *MIMEValidator) Rule(field string, f HasContentType) Rule {
	ok, verr := v.check(field, f)
	return Rule{
		Check: func() bool { return ok },
		Error: verr,
	}
}

func (v *MIMEValidator) check(field string, f HasContentType) (bool, ValidationError) {
	mime := strings.ToLower(f.ContentType())
	verr := ValidationError{
		Field:   field,
		Code:    v.code,
		Message: v.message,
		Params: map[string]any{
			"mime":          mime,
			"allowed_mimes": strings.Join(v.allowed, ", "),
		},
	}

	if v.set == nil {
		return true, verr
	}
	if _, ok := v.set[mime]; ok {
		return true, verr
	}

	logRejection(v.logger, verr)
	return false, verr
}

// AllowedTypes returns a copy of the normalized allow-list, or nil if none is configured.
func (v *MIMEValidator) AllowedTypes() []string {
	if v.allowed == nil {
		return nil
	}
	return append([]string{}, v.allowed...)
}

func (v *MIMEValidator) Code() string    { return v.code }
func (v *MIMEValidator) Message() string { return v.message }

// Equal reports whether both validators have the same allow-list (compared as a set),
// message and code. An absent list never equals a configured one, even an empty one.
func (v *MIMEValidator) Equal(other *MIMEValidator) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.message != other.message || v.code != other.code {
		return false
	}
	if (v.set == nil) != (other.set == nil) || len(v.set) != len(other.set) {
		return false
	}
	for mime := range v.set {
		if _, ok := other.set[mime]; !ok {
			return false
		}
	}
	return true
}
