package option

import (
	"math"

	"github.com/ytget/optionkit/internal/slider"
)

// Binding pairs a current value with the function that writes it back. The
// set of implementations is closed: one per Kind plus InvalidBinding.
type Binding interface {
	Kind() Kind
	binding()
}

// State is the read/write pair shared by every binding. Commit is fire and
// forget; the store reflects the write on the next read.
type State[T any] struct {
	Current T
	Commit  func(T)
}

// Set commits v when a commit function is present.
func (s State[T]) Set(v T) {
	if s.Commit != nil {
		s.Commit(v)
	}
}

// Bounds is the inclusive numeric range of a number control.
type Bounds struct {
	Min float64
	Max float64
}

// DefaultBounds is [0, +Inf).
var DefaultBounds = Bounds{Min: 0, Max: math.Inf(1)}

// Clamp limits v to the bounds.
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// DefaultImageExtensions are offered by the boolean image attachment.
var DefaultImageExtensions = []string{"jpg", "jpeg", "png"}

// Attachment is the optional file side-channel of a boolean control, e.g. a
// background image next to its enable toggle.
type Attachment struct {
	Path       string
	Commit     func(string)
	Extensions []string
}

// BooleanBinding is a toggle.
type BooleanBinding struct {
	State[bool]
	Attachment *Attachment
}

// StringBinding is free text committed on every change.
type StringBinding struct {
	State[string]
	Placeholder string
}

// NumberBinding is a numeric entry coerced into Bounds on blur.
type NumberBinding struct {
	State[float64]
	Bounds Bounds
	Suffix string
}

// FileBinding holds a path chosen through a Picker. Without extensions the
// picker selects a directory.
type FileBinding struct {
	State[string]
	Extensions []string
}

// ColourBinding holds one token from Palette.
type ColourBinding struct {
	State[string]
	Palette  []string
	Gradient bool
}

// SliderBinding is a draggable value committed after a quiet period.
type SliderBinding struct {
	State[float64]
	Range  slider.Range
	Step   float64
	Values []float64
}

// InvalidBinding stands in for configuration whose kind is not recognised.
type InvalidBinding struct {
	Raw string
}

func (BooleanBinding) Kind() Kind { return KindBoolean }
func (StringBinding) Kind() Kind  { return KindString }
func (NumberBinding) Kind() Kind  { return KindNumber }
func (FileBinding) Kind() Kind    { return KindFile }
func (ColourBinding) Kind() Kind  { return KindColour }
func (SliderBinding) Kind() Kind  { return KindSlider }
func (InvalidBinding) Kind() Kind { return "" }

func (BooleanBinding) binding() {}
func (StringBinding) binding()  {}
func (NumberBinding) binding()  {}
func (FileBinding) binding()    {}
func (ColourBinding) binding()  {}
func (SliderBinding) binding()  {}
func (InvalidBinding) binding() {}

// Option is one titled setting on a page.
type Option struct {
	ID          string
	Title       string
	Description string
	// Icon is a Fyne theme icon name such as "folderOpen"; empty for none.
	Icon    string
	Binding Binding
}
