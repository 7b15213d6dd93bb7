package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is the unit used to display sizes in error messages.
// Comparisons are always done in raw bytes.
type Unit string

const (
	UnitB  Unit = "B"
	UnitKB Unit = "kB"
	UnitMB Unit = "MB"
	UnitGB Unit = "GB"
)

var units = []Unit{UnitB, UnitKB, UnitMB, UnitGB}

// Units returns the supported display units in ascending order.
func Units() []Unit {
	return append([]Unit(nil), units...)
}

// ParseUnit returns the Unit named by s. Names are case-sensitive.
func ParseUnit(s string) (Unit, error) {
	for _, u := range units {
		if string(u) == s {
			return u, nil
		}
	}

	names := make([]string, len(units))
	for i, u := range units {
		names[i] = string(u)
	}
	return "", fmt.Errorf("%w: %w: %q, allowed values are '%s'",
		ErrImproperlyConfigured, ErrUnknownUnit, s, strings.Join(names, ", "))
}

// Convert scales bytes to the unit, rounding up to one decimal place.
// Rounding up can make a size one byte over the limit display the same as the limit.
func (u Unit) Convert(bytes int64) float64 {
	v := float64(bytes)
	switch u {
	case UnitKB:
		return math.Ceil(v/1e2) / 10
	case UnitMB:
		return math.Ceil(v/1e4) / 10
	case UnitGB:
		return math.Ceil(v/1e8) / 10
	default:
		return v
	}
}

// FormatAmount renders a converted size without trailing zeros: 1500, 1.5, 0.2.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
