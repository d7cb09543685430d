package drawer

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// View renders a drawer projection as a fixed-width column of buttons.
type View struct {
	widget.BaseWidget

	onSelect func(Entry)

	mode  Mode
	items Items
	route string
	rows  []*row

	top     *fyne.Container
	bottom  *fyne.Container
	content *fyne.Container
}

type row struct {
	entry  Entry
	button *widget.Button
	badge  *widget.Label
	obj    fyne.CanvasObject
}

// NewView returns an empty drawer. onSelect runs for every tapped entry.
func NewView(onSelect func(Entry)) *View {
	v := &View{onSelect: onSelect, mode: Disabled}
	v.top = container.NewVBox()
	v.bottom = container.NewVBox()
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameMenuBackground))
	v.content = container.NewStack(bg, container.NewBorder(v.top, v.bottom, nil, nil))
	v.ExtendBaseWidget(v)
	v.Hide()
	return v
}

// Apply projects ctx with the given mode and redraws.
func (v *View) Apply(ctx Context, mode Mode) {
	if Hidden(ctx) || mode == Disabled {
		v.mode = Disabled
		v.items = Items{}
		v.rows = nil
		v.top.RemoveAll()
		v.bottom.RemoveAll()
		v.Hide()
		return
	}
	v.mode = mode
	v.route = ctx.Route
	v.items = Build(ctx)
	v.rebuild()
	v.Show()
	v.Refresh()
}

// Mode returns the mode currently drawn.
func (v *View) Mode() Mode { return v.mode }

// Items returns the entries currently drawn.
func (v *View) Items() Items { return v.items }

// Labels returns the visible button texts, top then bottom. Collapsed
// drawers draw icons only, so their labels are empty.
func (v *View) Labels() []string {
	out := make([]string, 0, len(v.rows))
	for _, r := range v.rows {
		out = append(out, r.button.Text)
	}
	return out
}

// Select taps the entry with the given label.
func (v *View) Select(label string) bool {
	for _, r := range v.rows {
		if r.entry.Label == label {
			r.button.OnTapped()
			return true
		}
	}
	return false
}

func (v *View) rebuild() {
	v.rows = v.rows[:0]
	v.top.RemoveAll()
	v.bottom.RemoveAll()
	for _, e := range v.items.Top {
		v.top.Add(v.newRow(e).obj)
	}
	for _, e := range v.items.Bottom {
		v.bottom.Add(v.newRow(e).obj)
	}
}

func (v *View) newRow(e Entry) *row {
	r := &row{entry: e}
	label := ""
	if v.mode.ShowsLabels() {
		label = e.Label
	}
	r.button = widget.NewButtonWithIcon(label, theme.DefaultTheme().Icon(fyne.ThemeIconName(e.Icon)), func() {
		if v.onSelect != nil {
			v.onSelect(e)
		}
	})
	r.button.Alignment = widget.ButtonAlignLeading
	r.button.Importance = importance(e, v.route)

	r.obj = r.button
	if e.Badge != nil {
		r.badge = widget.NewLabel(strconv.Itoa(e.Badge.Count))
		r.badge.TextStyle = fyne.TextStyle{Bold: true}
		r.badge.SizeName = theme.SizeNameCaptionText
		r.obj = container.NewBorder(nil, nil, nil, r.badge, r.button)
	}
	v.rows = append(v.rows, r)
	return r
}

// Badges returns the badge count per entry label.
func (v *View) Badges() map[string]int {
	out := make(map[string]int)
	for _, r := range v.rows {
		if r.entry.Badge != nil {
			out[r.entry.Label] = r.entry.Badge.Count
		}
	}
	return out
}

func importance(e Entry, route string) widget.Importance {
	switch {
	case IsActive(e, route):
		return widget.HighImportance
	case e.Colour == "yellow":
		return widget.WarningImportance
	case e.Colour == "blue":
		return widget.HighImportance
	default:
		return widget.LowImportance
	}
}

// MinSize pins the width to the mode width.
func (v *View) MinSize() fyne.Size {
	v.ExtendBaseWidget(v)
	inner := v.BaseWidget.MinSize()
	return fyne.NewSize(Width(v.mode), inner.Height)
}

func (v *View) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}
