package file

import "errors"

var (
	ErrNilFileHeader = errors.New("file header is nil")

	// ErrInvalidPolicy wraps configuration errors raised while building a Guard.
	ErrInvalidPolicy = errors.New("invalid upload policy")

	ErrFailedToLoadPolicy = errors.New("failed to load upload policy")
)
