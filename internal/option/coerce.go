package option

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ytget/optionkit/internal/apperrors"
	"github.com/ytget/optionkit/internal/slider"
	"github.com/ytget/optionkit/internal/validate"
)

// Constraints is the loosely typed form of binding constraints as it arrives
// from configuration.
type Constraints struct {
	Min        *float64  `yaml:"min"`
	Max        *float64  `yaml:"max"`
	Step       float64   `yaml:"step" validate:"gte=0"`
	Values     []float64 `yaml:"values"`
	Extensions []string  `yaml:"extensions" validate:"dive,extension"`
	Palette    []string  `yaml:"palette" validate:"dive,required"`
	Gradient   bool      `yaml:"gradient"`
}

// Bounds returns the numeric range, defaulting to [0, +Inf).
func (c Constraints) Bounds() Bounds {
	b := DefaultBounds
	if c.Min != nil {
		b.Min = *c.Min
	}
	if c.Max != nil {
		b.Max = *c.Max
	}
	return b
}

// SliderRange returns the slider track range, defaulting each missing end to
// slider.DefaultRange.
func (c Constraints) SliderRange() slider.Range {
	r := slider.DefaultRange
	if c.Min != nil {
		r.Min = *c.Min
	}
	if c.Max != nil {
		r.Max = *c.Max
	}
	return r
}

// Validate checks struct tags and that the bounds are ordered.
func (c Constraints) Validate() error {
	if err := validate.Struct(c); err != nil {
		return apperrors.Config(err)
	}
	b := c.Bounds()
	if math.IsNaN(b.Min) || math.IsNaN(b.Max) || b.Min > b.Max {
		return apperrors.Config(fmt.Errorf("invalid bounds [%v, %v]", b.Min, b.Max))
	}
	return nil
}

// Coerce turns raw text into a value of the given kind. On invalid number
// input the returned value is the fallback that must be committed, together
// with an invalid_input error.
func Coerce(kind Kind, raw string, c Constraints) (any, error) {
	switch kind {
	case KindNumber:
		return CoerceNumber(raw, c.Bounds())
	case KindSlider:
		r := c.SliderRange()
		return CoerceNumber(raw, Bounds{Min: r.Min, Max: r.Max})
	case KindString:
		return raw, nil
	case KindBoolean:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return false, apperrors.InvalidInput(err)
		}
		return v, nil
	case KindFile, KindColour:
		return nil, apperrors.Unsupported(fmt.Errorf("%s values come from a picker", kind))
	default:
		return nil, apperrors.UnknownKind(fmt.Errorf("unknown option kind %q", kind))
	}
}

// CoerceNumber parses raw and clamps it into b. Unparsable or non-finite input
// yields 0 clamped into b and an invalid_input error; the value is still the
// one to commit.
func CoerceNumber(raw string, b Bounds) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = fmt.Errorf("non-finite number %q", raw)
	}
	if err != nil {
		return b.Clamp(0), apperrors.InvalidInput(err)
	}
	return b.Clamp(v), nil
}

// FormatNumber renders v with the shortest representation that round-trips.
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= 1e21:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// FormatFixed renders v with two decimals, as shown by slider tooltips.
func FormatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
