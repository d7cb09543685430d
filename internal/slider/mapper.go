package slider

import "math"

// Range is the closed interval of values a slider covers.
type Range struct {
	Min float64
	Max float64
}

// DefaultRange is used when a slider is configured without bounds.
var DefaultRange = Range{Min: 0, Max: 100}

// Span returns Max-Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Valid reports whether the range is finite and non-empty.
func (r Range) Valid() bool {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return false
	}
	return r.Max > r.Min
}

// Geometry is the pixel layout of a track, measured at the latest layout pass.
type Geometry struct {
	TrackLeft   float32
	TrackWidth  float32
	HandleWidth float32
}

// Usable is the distance the handle can travel.
func (g Geometry) Usable() float32 {
	return g.TrackWidth - g.HandleWidth
}

// Normalize converts a pointer x coordinate into a track fraction in [0,1].
func Normalize(x float32, g Geometry) float64 {
	usable := g.Usable()
	if usable <= 0 {
		return 0
	}
	p := float64(x-g.TrackLeft) / float64(usable)
	return math.Max(0, math.Min(1, p))
}

// Mapper converts track fractions to values and snaps them.
type Mapper struct {
	Range Range
	// Step is the rounding increment when Values is empty. Zero or negative
	// means one hundredth of the range.
	Step float64
	// Values, when non-empty, is the exhaustive set of allowed values.
	Values []float64
}

// NewMapper returns a mapper, substituting DefaultRange for an invalid range.
func NewMapper(r Range, step float64, values []float64) Mapper {
	if !r.Valid() {
		r = DefaultRange
	}
	return Mapper{Range: r, Step: step, Values: values}
}

// EffectiveStep returns the step used for rounding.
func (m Mapper) EffectiveStep() float64 {
	if m.Step > 0 {
		return m.Step
	}
	return m.Range.Span() / 100
}

// Raw maps a fraction to an unsnapped value.
func (m Mapper) Raw(p float64) float64 {
	return m.Range.Min + p*m.Range.Span()
}

// Snap returns the allowed value closest to raw. With an explicit value set
// the first member at minimal distance wins, so ties resolve in declaration
// order. Snap(Snap(x)) == Snap(x).
func (m Mapper) Snap(raw float64) float64 {
	if len(m.Values) > 0 {
		best := m.Values[0]
		bestDist := math.Abs(best - raw)
		for _, v := range m.Values[1:] {
			if d := math.Abs(v - raw); d < bestDist {
				best, bestDist = v, d
			}
		}
		return best
	}

	step := m.EffectiveStep()
	if step <= 0 {
		return m.Range.Clamp(raw)
	}
	// Grid points are Min + k*step up to the last one inside the range. Max is
	// a target of its own when the span is not a multiple of step.
	raw = m.Range.Clamp(raw)
	last := math.Floor(m.Range.Span()/step + 1e-9)
	k := math.Min(math.Round((raw-m.Range.Min)/step), last)
	v := m.Range.Min + k*step
	if math.Abs(m.Range.Max-raw) < math.Abs(v-raw) {
		v = m.Range.Max
	}
	return v
}

// ValueAt maps a pointer x coordinate to a snapped value.
func (m Mapper) ValueAt(x float32, g Geometry) float64 {
	return m.Snap(m.Raw(Normalize(x, g)))
}

// Position returns the track fraction at which v is drawn.
func (m Mapper) Position(v float64) float64 {
	span := m.Range.Span()
	if span <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, (v-m.Range.Min)/span))
}

// Ticks returns the fractions at which explicit values are marked on the
// track. It is empty for step-based sliders.
func (m Mapper) Ticks() []float64 {
	if len(m.Values) == 0 {
		return nil
	}
	out := make([]float64, 0, len(m.Values))
	for _, v := range m.Values {
		out = append(out, m.Position(v))
	}
	return out
}
