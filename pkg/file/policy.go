package file

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/uploadguard/pkg/config"
)

// Policy describes the restrictions for one upload field.
// Variables are read with a prefix, e.g. AVATAR_MAX_SIZE for prefix "AVATAR_".
type Policy struct {
	// Comma separated; empty means any type is accepted.
	AllowedMIMETypes []string `env:"ALLOWED_MIME_TYPES" envSeparator:","`
	MaxSize          int64    `env:"MAX_SIZE,required"`
	SizeUnit         string   `env:"SIZE_UNIT" envDefault:"B"`
	MIMEMessage      string   `env:"MIME_MESSAGE"`
	MIMECode         string   `env:"MIME_CODE"`
	SizeMessage      string   `env:"SIZE_MESSAGE"`
	SizeCode         string   `env:"SIZE_CODE"`
}

// LoadPolicy reads a Policy from environment variables with the given prefix.
func LoadPolicy(prefix string) (Policy, error) {
	var p Policy
	if err := config.LoadWithPrefix(&p, prefix); err != nil {
		return Policy{}, errors.Join(ErrFailedToLoadPolicy, err)
	}
	return p, nil
}

// allowedTypes trims entries and drops blanks. Nil means no restriction.
func (p Policy) allowedTypes() []string {
	var out []string
	for _, t := range p.AllowedMIMETypes {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
