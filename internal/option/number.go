package option

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// blurEntry is an Entry that reports focus loss.
type blurEntry struct {
	widget.Entry

	onBlur func()
}

func newBlurEntry() *blurEntry {
	e := &blurEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// FocusLost implements fyne.Focusable.
func (e *blurEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onBlur != nil {
		e.onBlur()
	}
}

type numberControl struct {
	widget.BaseWidget

	binding NumberBinding
	env     Env

	entry  *blurEntry
	shown  string // last text written by the control, not the user
	suffix *widget.Label
	box    *fyne.Container
}

func newNumberControl(b NumberBinding, env Env) *numberControl {
	c := &numberControl{binding: b, env: env}
	c.entry = newBlurEntry()
	c.setText(FormatNumber(b.Current))
	c.entry.onBlur = c.apply
	c.entry.OnSubmitted = func(string) { c.apply() }
	c.suffix = widget.NewLabel(b.Suffix)
	c.suffix.TextStyle = fyne.TextStyle{Monospace: true}
	if b.Suffix == "" {
		c.suffix.Hide()
	}
	c.box = container.NewBorder(nil, nil, nil, c.suffix, c.entry)
	c.ExtendBaseWidget(c)
	return c
}

func (c *numberControl) Kind() Kind { return KindNumber }

// apply coerces the entry text, shows the result and commits it. Rejected
// input always writes the fallback so the store never keeps a value the
// control could not display.
func (c *numberControl) apply() {
	raw := c.entry.Text
	v, err := CoerceNumber(raw, c.binding.Bounds)
	if err != nil {
		c.env.Logger.Debug("number input rejected", "input", raw, "fallback", v, "error", err)
	} else if FormatNumber(v) != raw {
		c.env.Logger.Debug("number input clamped", "input", raw, "value", v)
	}

	if text := FormatNumber(v); c.entry.Text != text {
		c.setText(text)
	} else {
		c.shown = text
	}
	if err == nil && v == c.binding.Current {
		return
	}
	c.binding.Current = v
	c.binding.Set(v)
}

// Submit coerces and commits the current text, as a blur would.
func (c *numberControl) Submit() { c.apply() }

// Text returns the displayed text.
func (c *numberControl) Text() string { return c.entry.Text }

func (c *numberControl) Rebind(b Binding) bool {
	v, ok := b.(NumberBinding)
	if !ok {
		return false
	}
	c.binding = v
	c.suffix.SetText(v.Suffix)
	if v.Suffix == "" {
		c.suffix.Hide()
	} else {
		c.suffix.Show()
	}
	if c.editing() {
		// Uncommitted input wins until blur or submit.
		return true
	}
	if text := FormatNumber(v.Current); c.entry.Text != text {
		c.setText(text)
	}
	return true
}

// editing reports whether the entry holds text the user has not committed.
func (c *numberControl) editing() bool { return c.entry.Text != c.shown }

func (c *numberControl) setText(text string) {
	c.shown = text
	c.entry.SetText(text)
}

func (c *numberControl) Destroy() {}

func (c *numberControl) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.box)
}
