package file

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"

	"github.com/dmitrymomot/uploadguard/pkg/validator"
)

// UploadedFile is the metadata both validators need.
type UploadedFile interface {
	validator.HasContentType
	validator.HasSize
}

// Guard checks uploads for one field against a Policy.
// It is immutable and safe for concurrent use.
type Guard struct {
	mime *validator.MIMEValidator
	size *validator.FileSizeValidator
}

// GuardOption configures a Guard.
type GuardOption func(*guardOptions)

type guardOptions struct {
	logger *slog.Logger
}

// WithLogger passes a logger to both validators of the guard.
func WithLogger(l *slog.Logger) GuardOption {
	return func(o *guardOptions) {
		o.logger = l
	}
}

// NewGuard builds the validators described by p.
// Configuration errors wrap ErrInvalidPolicy and validator.ErrImproperlyConfigured.
func NewGuard(p Policy, opts ...GuardOption) (*Guard, error) {
	o := &guardOptions{}
	for _, opt := range opts {
		opt(o)
	}

	size, err := validator.NewFileSizeValidator(p.MaxSize,
		validator.WithDisplayUnit(p.SizeUnit),
		validator.WithMessage(p.SizeMessage),
		validator.WithCode(p.SizeCode),
		validator.WithLogger(o.logger),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidPolicy, err)
	}

	mime := validator.NewMIMEValidator(p.allowedTypes(),
		validator.WithMessage(p.MIMEMessage),
		validator.WithCode(p.MIMECode),
		validator.WithLogger(o.logger),
	)

	return &Guard{mime: mime, size: size}, nil
}

// Check validates f and returns validator.ValidationErrors with every failed rule
// under field, or nil.
func (g *Guard) Check(field string, f UploadedFile) error {
	return validator.Apply(
		g.mime.Rule(field, f),
		g.size.Rule(field, f),
	)
}

// CheckHeader is Check for a multipart file header.
func (g *Guard) CheckHeader(field string, fh *multipart.FileHeader) error {
	u, err := FromHeader(fh)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return g.Check(field, u)
}

func (g *Guard) MIME() *validator.MIMEValidator     { return g.mime }
func (g *Guard) Size() *validator.FileSizeValidator { return g.size }
