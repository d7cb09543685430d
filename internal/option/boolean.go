package option

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type booleanControl struct {
	widget.BaseWidget

	binding BooleanBinding
	env     Env

	toggle *widget.Button
	attach *widget.Button
	box    *fyne.Container
}

func newBooleanControl(b BooleanBinding, env Env) *booleanControl {
	c := &booleanControl{binding: b, env: env}
	c.toggle = widget.NewButtonWithIcon("", nil, c.flip)
	c.box = container.NewHBox()
	if b.Attachment != nil {
		c.attach = widget.NewButtonWithIcon("", theme.FileImageIcon(), c.pickAttachment)
		c.box.Add(c.attach)
	}
	c.box.Add(c.toggle)
	c.ExtendBaseWidget(c)
	c.sync()
	return c
}

func (c *booleanControl) Kind() Kind { return KindBoolean }

func (c *booleanControl) flip() {
	next := !c.binding.Current
	c.binding.Current = next
	c.binding.Set(next)
	c.sync()
}

func (c *booleanControl) pickAttachment() {
	a := c.binding.Attachment
	if a == nil {
		return
	}
	if c.env.Picker == nil {
		c.env.Logger.Warn("no picker configured for attachment")
		return
	}
	exts := a.Extensions
	if len(exts) == 0 {
		exts = DefaultImageExtensions
	}
	c.env.Picker.Pick(PickRequest{Extensions: exts}, func(path string, ok bool) {
		if !ok || path == "" || path == a.Path {
			return
		}
		a.Path = path
		if a.Commit != nil {
			a.Commit(path)
		}
		c.env.Logger.Debug("attachment changed", "image", path)
		c.sync()
	})
}

func (c *booleanControl) Rebind(b Binding) bool {
	v, ok := b.(BooleanBinding)
	if !ok {
		return false
	}
	if c.binding.Attachment != nil && v.Attachment == nil {
		v.Attachment = c.binding.Attachment
	}
	c.binding = v
	c.sync()
	return true
}

func (c *booleanControl) Destroy() {}

// Checked reports the displayed state.
func (c *booleanControl) Checked() bool { return c.binding.Current }

// AttachmentLabel returns the text on the attachment button.
func (c *booleanControl) AttachmentLabel() string {
	if c.attach == nil {
		return ""
	}
	return c.attach.Text
}

func (c *booleanControl) sync() {
	if c.binding.Current {
		c.toggle.SetIcon(theme.ConfirmIcon())
		c.toggle.Importance = widget.SuccessImportance
	} else {
		c.toggle.SetIcon(theme.CancelIcon())
		c.toggle.Importance = widget.LowImportance
	}
	c.toggle.Refresh()

	if c.attach != nil {
		// The attachment name is only meaningful while the toggle is on.
		label := EmptyPath
		if c.binding.Current && c.binding.Attachment.Path != "" {
			label = PathLabel(c.binding.Attachment.Path, 1, AttachmentLabelWidth)
		}
		c.attach.SetText(label)
	}
}

func (c *booleanControl) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.box)
}
