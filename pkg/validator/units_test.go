package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploadguard/pkg/validator"
)

func TestParseUnit(t *testing.T) {
	t.Parallel()

	for _, u := range validator.Units() {
		got, err := validator.ParseUnit(string(u))
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}

	for _, name := range []string{"", "TB", "kb", "mb", "bytes"} {
		_, err := validator.ParseUnit(name)
		assert.ErrorIs(t, err, validator.ErrUnknownUnit, "unit should be rejected: %q", name)
		assert.ErrorIs(t, err, validator.ErrImproperlyConfigured)
	}
}

func TestUnits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []validator.Unit{"B", "kB", "MB", "GB"}, validator.Units())

	// returned slice is a copy
	us := validator.Units()
	us[0] = "TB"
	assert.Equal(t, validator.UnitB, validator.Units()[0])
}

func TestUnit_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		unit  validator.Unit
		bytes int64
		want  float64
	}{
		{"bytes identity", validator.UnitB, 1234, 1234},
		{"bytes zero", validator.UnitB, 0, 0},
		{"kB exact", validator.UnitKB, 1500, 1.5},
		{"kB rounds up", validator.UnitKB, 1600, 1.6},
		{"kB one byte over", validator.UnitKB, 1501, 1.6},
		{"kB small", validator.UnitKB, 1, 0.1},
		{"MB", validator.UnitMB, 1_500_000, 15},
		{"MB rounds up", validator.UnitMB, 10_001, 0.2},
		{"GB", validator.UnitGB, 2_000_000_000, 2},
		// 150 000 000 / 1e8 = 1.5, ceil -> 2, / 10 -> 0.2
		{"GB ceiling", validator.UnitGB, 150_000_000, 0.2},
		{"zero in kB", validator.UnitKB, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.unit.Convert(tt.bytes))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1500", validator.FormatAmount(1500))
	assert.Equal(t, "1.5", validator.FormatAmount(1.5))
	assert.Equal(t, "0.2", validator.FormatAmount(0.2))
	assert.Equal(t, "0", validator.FormatAmount(0))
}
