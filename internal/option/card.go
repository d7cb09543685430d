package option

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Card shows one option: icon, title and description beside its control.
// Slider cards stack the control under the text so the track gets the full
// width.
type Card struct {
	widget.BaseWidget

	option  Option
	control Control
	content fyne.CanvasObject
}

// NewCard renders opt with env.
func NewCard(opt Option, env Env) *Card {
	c := &Card{option: opt, control: NewControl(opt.Binding, env)}

	title := widget.NewLabel(opt.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis
	desc := widget.NewLabel(opt.Description)
	desc.Truncation = fyne.TextTruncateEllipsis
	desc.Importance = widget.LowImportance

	titleRow := fyne.CanvasObject(title)
	if res := iconResource(opt.Icon); res != nil {
		titleRow = container.NewBorder(nil, nil, widget.NewIcon(res), nil, title)
	}
	text := container.NewVBox(titleRow, desc)

	var body fyne.CanvasObject
	if c.control.Kind() == KindSlider {
		body = container.NewVBox(text, c.control)
	} else {
		body = container.NewBorder(nil, nil, nil, container.NewCenter(c.control), text)
	}

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	bg.CornerRadius = 2 * theme.Size(theme.SizeNameInputRadius)
	c.content = container.NewStack(bg, container.NewPadded(body))
	c.ExtendBaseWidget(c)
	return c
}

func iconResource(name string) fyne.Resource {
	if name == "" {
		return nil
	}
	return theme.DefaultTheme().Icon(fyne.ThemeIconName(name))
}

// Option returns the rendered option.
func (c *Card) Option() Option { return c.option }

// Control returns the embedded control.
func (c *Card) Control() Control { return c.control }

func (c *Card) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.content)
}

// Section is a titled run of options.
type Section struct {
	Title           string
	Hideable        bool
	HiddenByDefault bool
	Options         []Option
}

// Group is a collapsible section of cards.
type Group struct {
	widget.BaseWidget

	hideable bool
	open     bool

	hint    *widget.Label
	chevron *widget.Button
	body    *fyne.Container
	content *fyne.Container
}

// Section header hints.
const (
	CollapseHint = "Collapse Section"
	ExpandHint   = "Expand Section"
)

// NewGroup lays items out under a title. A hideable group can be collapsed
// and starts collapsed when hiddenByDefault is set.
func NewGroup(title string, hideable, hiddenByDefault bool, items ...fyne.CanvasObject) *Group {
	g := &Group{hideable: hideable, open: !(hideable && hiddenByDefault)}
	g.body = container.NewVBox(items...)

	header := container.NewVBox()
	if title != "" {
		heading := widget.NewLabel(title)
		heading.TextStyle = fyne.TextStyle{Bold: true}
		heading.SizeName = theme.SizeNameSubHeadingText
		header.Add(heading)
	}
	var top fyne.CanvasObject = header
	if hideable {
		g.hint = widget.NewLabel("")
		g.hint.Importance = widget.LowImportance
		g.hint.SizeName = theme.SizeNameCaptionText
		header.Add(g.hint)
		g.chevron = widget.NewButtonWithIcon("", theme.MenuDropDownIcon(), g.Toggle)
		g.chevron.Importance = widget.LowImportance
		top = container.NewBorder(nil, nil, nil, container.NewCenter(g.chevron), header)
	}

	g.content = container.NewVBox(top, g.body, widget.NewSeparator())
	g.ExtendBaseWidget(g)
	g.sync()
	return g
}

// Toggle opens or collapses a hideable group.
func (g *Group) Toggle() {
	if !g.hideable {
		return
	}
	g.open = !g.open
	g.sync()
}

// Open reports whether the body is shown.
func (g *Group) Open() bool { return g.open }

func (g *Group) sync() {
	if g.open {
		g.body.Show()
	} else {
		g.body.Hide()
	}
	if g.hint != nil {
		if g.open {
			g.hint.SetText(CollapseHint)
			g.chevron.SetIcon(theme.MenuDropDownIcon())
		} else {
			g.hint.SetText(ExpandHint)
			g.chevron.SetIcon(theme.MenuExpandIcon())
		}
	}
	g.content.Refresh()
}

func (g *Group) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(g.content)
}
