package option

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// DefaultPlaceholder is shown by empty string controls.
const DefaultPlaceholder = "String option"

type stringControl struct {
	widget.BaseWidget

	binding StringBinding
	entry   *widget.Entry
}

func newStringControl(b StringBinding, _ Env) *stringControl {
	c := &stringControl{binding: b}
	c.entry = widget.NewEntry()
	c.entry.SetPlaceHolder(placeholder(b.Placeholder))
	c.entry.SetText(b.Current)
	c.entry.OnChanged = c.changed
	c.ExtendBaseWidget(c)
	return c
}

func placeholder(p string) string {
	if p == "" {
		return DefaultPlaceholder
	}
	return p
}

func (c *stringControl) Kind() Kind { return KindString }

// changed commits every edit. Text fields are cheap and need no debounce.
func (c *stringControl) changed(s string) {
	if s == c.binding.Current {
		return
	}
	c.binding.Current = s
	c.binding.Set(s)
}

func (c *stringControl) Rebind(b Binding) bool {
	v, ok := b.(StringBinding)
	if !ok {
		return false
	}
	c.binding = v
	c.entry.SetPlaceHolder(placeholder(v.Placeholder))
	if c.entry.Text != v.Current {
		c.entry.SetText(v.Current)
	}
	return true
}

func (c *stringControl) Destroy() {}

func (c *stringControl) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.entry)
}
