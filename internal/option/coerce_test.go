package option

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/optionkit/internal/apperrors"
	"github.com/ytget/optionkit/internal/slider"
)

func ptr(v float64) *float64 { return &v }

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		bounds  Bounds
		want    float64
		invalid bool
	}{
		{"verbatim", "7.5", Bounds{0, 10}, 7.5, false},
		{"above max", "15", Bounds{0, 10}, 10, false},
		{"below min", "-3", Bounds{0, 10}, 0, false},
		{"below positive min", "1", Bounds{5, 10}, 5, false},
		{"whitespace", "  4 ", Bounds{0, 10}, 4, false},
		{"unparsable", "abc", Bounds{0, 10}, 0, true},
		{"unparsable positive min", "abc", Bounds{5, 10}, 5, true},
		{"empty", "", DefaultBounds, 0, true},
		{"nan", "NaN", Bounds{0, 10}, 0, true},
		{"infinity", "Inf", DefaultBounds, 0, true},
		{"negative min", "x", Bounds{-5, 5}, 0, true},
		{"unbounded", "1e9", DefaultBounds, 1e9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceNumber(tt.raw, tt.bounds)
			assert.Equal(t, tt.want, got)
			if tt.invalid {
				assert.True(t, apperrors.IsInvalidInput(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCoerceNumber_AlwaysInBounds(t *testing.T) {
	inputs := []string{"-1e308", "-1", "0", "0.5", "3", "9.999", "10", "11", "1e308", "junk", "NaN", "-Inf", ""}
	bounds := []Bounds{{0, 10}, {2, 3}, {-5, -1}, {0, 0}, DefaultBounds}
	for _, b := range bounds {
		for _, raw := range inputs {
			v, _ := CoerceNumber(raw, b)
			assert.GreaterOrEqual(t, v, b.Min, "raw=%q bounds=%v", raw, b)
			assert.LessOrEqual(t, v, b.Max, "raw=%q bounds=%v", raw, b)
			assert.False(t, math.IsNaN(v))
		}
	}
}

func TestCoerce(t *testing.T) {
	c := Constraints{Min: ptr(0), Max: ptr(10)}

	v, err := Coerce(KindNumber, "15", c)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	v, err = Coerce(KindSlider, "150", Constraints{})
	require.NoError(t, err)
	assert.Equal(t, 100.0, v, "sliders default to 0..100")

	v, err = Coerce(KindSlider, "-2", Constraints{Min: ptr(-1)})
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)

	v, err = Coerce(KindString, " any text ", c)
	require.NoError(t, err)
	assert.Equal(t, " any text ", v)

	v, err = Coerce(KindBoolean, "true", c)
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = Coerce(KindBoolean, "maybe", c)
	assert.True(t, apperrors.IsInvalidInput(err))

	for _, k := range []Kind{KindFile, KindColour} {
		_, err = Coerce(k, "/tmp", c)
		kind, ok := apperrors.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.KindUnsupported, kind)
	}

	_, err = Coerce(Kind("dropdown"), "x", c)
	assert.True(t, apperrors.IsUnknownKind(err))
}

func TestConstraints(t *testing.T) {
	assert.Equal(t, DefaultBounds, Constraints{}.Bounds())
	assert.Equal(t, slider.DefaultRange, Constraints{}.SliderRange())
	assert.Equal(t, slider.Range{Min: 0, Max: 4}, Constraints{Max: ptr(4)}.SliderRange())
	assert.True(t, math.IsInf(Constraints{}.Bounds().Max, 1))

	assert.NoError(t, Constraints{Min: ptr(1), Max: ptr(2), Extensions: []string{"png"}}.Validate())
	assert.Error(t, Constraints{Min: ptr(3), Max: ptr(2)}.Validate())
	assert.Error(t, Constraints{Step: -1}.Validate())
	assert.Error(t, Constraints{Extensions: []string{".png"}}.Validate())
	assert.Error(t, Constraints{Palette: []string{""}}.Validate())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "10", FormatNumber(10))
	assert.Equal(t, "0.25", FormatNumber(0.25))
	assert.Equal(t, "-3", FormatNumber(-3))
	assert.Equal(t, "Infinity", FormatNumber(math.Inf(1)))
	assert.Equal(t, "1e+21", FormatNumber(1e21))
	assert.Equal(t, "62.50", FormatFixed(62.5))
	assert.Equal(t, "0.33", FormatFixed(1.0/3))
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" Color ")
	require.NoError(t, err)
	assert.Equal(t, KindColour, got)

	_, err = ParseKind("dropdown")
	assert.True(t, apperrors.IsUnknownKind(err))
	assert.Equal(t, "Invalid Type", apperrors.PublicMessage(err))
}
