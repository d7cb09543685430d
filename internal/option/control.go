package option

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/optionkit/internal/apperrors"
)

// Control is a rendered binding.
type Control interface {
	fyne.Widget

	// Kind is empty for the invalid-type indicator.
	Kind() Kind
	// Rebind replaces the bound value after an external store change. It
	// returns false when b is of a different kind.
	Rebind(b Binding) bool
	// Destroy cancels timers and releases pointer captures.
	Destroy()
}

// NewControl renders b. Every Binding variant has a control; anything else,
// including InvalidBinding and nil, becomes the "Invalid Type" indicator.
func NewControl(b Binding, env Env) Control {
	env = env.withDefaults()
	switch v := b.(type) {
	case BooleanBinding:
		return newBooleanControl(v, env)
	case StringBinding:
		return newStringControl(v, env)
	case NumberBinding:
		return newNumberControl(v, env)
	case FileBinding:
		return newFileControl(v, env)
	case ColourBinding:
		return newColourControl(v, env)
	case SliderBinding:
		return newSliderControl(v, env)
	case InvalidBinding:
		err := apperrors.UnknownKind(fmt.Errorf("unknown option kind %q", v.Raw))
		env.Logger.Warn("rendering invalid option", "kind", v.Raw, "error", err)
		return newInvalidControl(v.Raw, err)
	default:
		err := apperrors.UnknownKind(fmt.Errorf("unsupported binding %T", b))
		env.Logger.Warn("rendering invalid option", "binding", fmt.Sprintf("%T", b))
		return newInvalidControl("", err)
	}
}

// invalidControl is the inline error shown for unrecognised kinds.
type invalidControl struct {
	widget.BaseWidget

	raw  string
	err  error
	text *canvas.Text
}

func newInvalidControl(raw string, err error) *invalidControl {
	c := &invalidControl{raw: raw, err: err}
	c.text = canvas.NewText(apperrors.PublicMessage(err), theme.Color(theme.ColorNameError))
	c.text.TextStyle = fyne.TextStyle{Bold: true}
	c.text.TextSize = theme.Size(theme.SizeNameCaptionText)
	c.ExtendBaseWidget(c)
	return c
}

func (c *invalidControl) Kind() Kind          { return "" }
func (c *invalidControl) Destroy()            {}

// Rebind keeps the indicator for another invalid binding so a malformed entry
// does not force its siblings to be rebuilt.
func (c *invalidControl) Rebind(b Binding) bool {
	v, ok := b.(InvalidBinding)
	if !ok {
		return false
	}
	if v.Raw != c.raw {
		c.raw = v.Raw
		c.err = apperrors.UnknownKind(fmt.Errorf("unknown option kind %q", v.Raw))
	}
	return true
}

// Err returns the unknown_kind error being displayed.
func (c *invalidControl) Err() error { return c.err }

// Text returns the displayed message.
func (c *invalidControl) Text() string { return c.text.Text }

func (c *invalidControl) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.text)
}
