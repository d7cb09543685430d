package option

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type fileControl struct {
	widget.BaseWidget

	binding FileBinding
	env     Env
	button  *widget.Button
}

func newFileControl(b FileBinding, env Env) *fileControl {
	c := &fileControl{binding: b, env: env}
	icon := theme.FolderOpenIcon()
	if len(b.Extensions) > 0 {
		icon = theme.DocumentIcon()
	}
	c.button = widget.NewButtonWithIcon("", icon, c.pick)
	c.button.Alignment = widget.ButtonAlignLeading
	c.ExtendBaseWidget(c)
	c.sync()
	return c
}

func (c *fileControl) Kind() Kind { return KindFile }

// Request returns what the picker is asked for.
func (c *fileControl) Request() PickRequest {
	return PickRequest{
		AllowDirectories: len(c.binding.Extensions) == 0,
		Extensions:       c.binding.Extensions,
	}
}

func (c *fileControl) pick() {
	if c.env.Picker == nil {
		c.env.Logger.Warn("no picker configured for file option")
		return
	}
	c.env.Picker.Pick(c.Request(), func(path string, ok bool) {
		// Cancellation and re-selecting the same path leave the value alone.
		if !ok || path == "" || path == c.binding.Current {
			return
		}
		c.binding.Current = path
		c.binding.Set(path)
		c.env.Logger.Debug("path changed", "path", path)
		c.sync()
	})
}

// Label returns the button text.
func (c *fileControl) Label() string { return c.button.Text }

func (c *fileControl) sync() {
	c.button.SetText(PathLabel(c.binding.Current, 2, FileLabelWidth))
}

func (c *fileControl) Rebind(b Binding) bool {
	v, ok := b.(FileBinding)
	if !ok {
		return false
	}
	c.binding = v
	c.sync()
	return true
}

func (c *fileControl) Destroy() {}

func (c *fileControl) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.button)
}
