package option

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/optionkit/internal/debounce"
	"github.com/ytget/optionkit/internal/slider"
)

// Slider layout, in device independent pixels.
const (
	sliderHandleSize  = 12
	sliderTrackHeight = 6
	sliderTickWidth   = 2
	sliderHitPadding  = 6
	sliderMinWidth    = 120
)

// sliderControl is a draggable track. Drags update a local value that drives
// the handle and tooltip; the store only sees the value through the debounce
// channel.
type sliderControl struct {
	widget.BaseWidget

	binding SliderBinding
	env     Env

	machine *slider.Machine
	channel *debounce.Channel[float64]

	local    float64
	hovered  bool
	geometry slider.Geometry

	// Installed by the machine for the duration of a drag.
	capMove    func(x float32)
	capRelease func()
	// Set for a drag that started off the handle, until it ends.
	ignoreDrag bool
}

func newSliderControl(b SliderBinding, env Env) *sliderControl {
	c := &sliderControl{binding: b, env: env, local: b.Current}
	c.machine = slider.NewMachine(slider.NewMapper(b.Range, b.Step, b.Values), c.onValue)
	c.channel = debounce.New(env.Quiet, c.commit,
		debounce.WithClock(env.Clock),
		debounce.WithDispatcher(env.Dispatch),
		debounce.WithLogger(env.Logger),
	)
	env.Arena.Track(c.channel.ID(), c.channel)
	c.ExtendBaseWidget(c)
	return c
}

func (c *sliderControl) Kind() Kind { return KindSlider }

// Local returns the in-flight value shown by the handle.
func (c *sliderControl) Local() float64 { return c.local }

// Tooltip returns the two-decimal text shown above the handle.
func (c *sliderControl) Tooltip() string { return FormatFixed(c.local) }

// Dragging reports whether a drag session is active.
func (c *sliderControl) Dragging() bool { return c.machine.Phase() == slider.Dragging }

func (c *sliderControl) onValue(v float64) {
	if v == c.local {
		return
	}
	c.local = v
	c.channel.Update(v)
	c.Refresh()
}

func (c *sliderControl) commit(v float64) {
	c.binding.Current = v
	c.binding.Set(v)
}

func (c *sliderControl) capture(onMove func(float32), onRelease func()) slider.Release {
	c.capMove, c.capRelease = onMove, onRelease
	c.Refresh()
	return func() {
		c.capMove, c.capRelease = nil, nil
		c.Refresh()
	}
}

func (c *sliderControl) setGeometry(size fyne.Size) {
	c.geometry = slider.Geometry{TrackWidth: size.Width, HandleWidth: sliderHandleSize}
	c.machine.Resize(c.geometry)
}

func (c *sliderControl) handleX() float32 {
	usable := c.geometry.Usable()
	if usable < 0 {
		usable = 0
	}
	return float32(c.machine.Mapper().Position(c.local)) * usable
}

func (c *sliderControl) onHandle(x float32) bool {
	left := c.handleX()
	return x >= left-sliderHitPadding && x <= left+sliderHandleSize+sliderHitPadding
}

// MouseDown implements desktop.Mouseable.
func (c *sliderControl) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || !c.onHandle(ev.Position.X) {
		return
	}
	c.machine.Begin(c.geometry, c.capture)
}

// MouseUp implements desktop.Mouseable.
func (c *sliderControl) MouseUp(*desktop.MouseEvent) {
	c.release()
}

// Dragged implements fyne.Draggable. Drag events keep arriving after the
// pointer leaves the track, which is what makes the capture window-wide.
func (c *sliderControl) Dragged(ev *fyne.DragEvent) {
	if c.capMove == nil {
		if c.ignoreDrag {
			return
		}
		// Touch input has no MouseDown; start from where the drag began.
		start := ev.Position.Subtract(ev.Dragged)
		if !c.onHandle(start.X) {
			c.ignoreDrag = true
			return
		}
		c.machine.Begin(c.geometry, c.capture)
	}
	if c.capMove != nil {
		c.capMove(ev.Position.X)
	}
}

// DragEnd implements fyne.Draggable.
func (c *sliderControl) DragEnd() {
	c.release()
}

func (c *sliderControl) release() {
	c.ignoreDrag = false
	if c.capRelease != nil {
		c.capRelease()
	}
}

// MouseIn implements desktop.Hoverable.
func (c *sliderControl) MouseIn(*desktop.MouseEvent) {
	c.hovered = true
	c.Refresh()
}

// MouseMoved implements desktop.Hoverable.
func (c *sliderControl) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable.
func (c *sliderControl) MouseOut() {
	c.hovered = false
	c.Refresh()
}

func (c *sliderControl) Rebind(b Binding) bool {
	v, ok := b.(SliderBinding)
	if !ok {
		return false
	}
	c.binding = v
	if c.Dragging() || c.channel.Pending() {
		// The in-flight value wins until it has been committed.
		return true
	}
	c.machine = slider.NewMachine(slider.NewMapper(v.Range, v.Step, v.Values), c.onValue)
	c.machine.Resize(c.geometry)
	c.local = v.Current
	c.Refresh()
	return true
}

func (c *sliderControl) Destroy() {
	c.machine.Teardown()
	c.env.Arena.Release(c.channel.ID())
}

func (c *sliderControl) CreateRenderer() fyne.WidgetRenderer {
	r := &sliderRenderer{c: c}
	r.track = canvas.NewRectangle(color.Transparent)
	r.track.CornerRadius = sliderTrackHeight / 2
	r.fill = canvas.NewRectangle(color.Transparent)
	r.fill.CornerRadius = sliderTrackHeight / 2
	r.handle = canvas.NewCircle(color.Transparent)
	r.tipBg = canvas.NewRectangle(color.Transparent)
	r.tipBg.CornerRadius = theme.Size(theme.SizeNameInputRadius)
	r.tip = canvas.NewText("", color.Transparent)
	r.tip.TextStyle = fyne.TextStyle{Monospace: true}
	r.tip.TextSize = theme.Size(theme.SizeNameCaptionText)
	r.tip.Alignment = fyne.TextAlignCenter
	r.Refresh()
	return r
}

type sliderRenderer struct {
	c *sliderControl

	track  *canvas.Rectangle
	fill   *canvas.Rectangle
	handle *canvas.Circle
	ticks  []*canvas.Rectangle
	tipBg  *canvas.Rectangle
	tip    *canvas.Text
	size   fyne.Size
}

func (r *sliderRenderer) tipHeight() float32 {
	return fyne.MeasureText("0", r.tip.TextSize, r.tip.TextStyle).Height + 4
}

func (r *sliderRenderer) Layout(size fyne.Size) {
	r.size = size
	r.c.setGeometry(size)

	tipH := r.tipHeight()
	centre := tipH + theme.Padding() + sliderHandleSize/2
	r.track.Move(fyne.NewPos(0, centre-sliderTrackHeight/2))
	r.track.Resize(fyne.NewSize(size.Width, sliderTrackHeight))

	x := r.c.handleX()
	r.fill.Move(r.track.Position())
	r.fill.Resize(fyne.NewSize(x+sliderHandleSize/2, sliderTrackHeight))
	r.handle.Move(fyne.NewPos(x, centre-sliderHandleSize/2))
	r.handle.Resize(fyne.NewSize(sliderHandleSize, sliderHandleSize))

	ticks := r.c.machine.Mapper().Ticks()
	for i, t := range r.ticks {
		if i >= len(ticks) {
			t.Hide()
			continue
		}
		t.Show()
		t.Move(fyne.NewPos(float32(ticks[i])*(size.Width-sliderTickWidth), centre-sliderTrackHeight/2))
		t.Resize(fyne.NewSize(sliderTickWidth, sliderTrackHeight))
	}

	textW := fyne.MeasureText(r.tip.Text, r.tip.TextSize, r.tip.TextStyle).Width + 2*theme.Padding()
	tipX := x + sliderHandleSize/2 - textW/2
	if tipX+textW > size.Width {
		tipX = size.Width - textW
	}
	if tipX < 0 {
		tipX = 0
	}
	r.tipBg.Move(fyne.NewPos(tipX, 0))
	r.tipBg.Resize(fyne.NewSize(textW, tipH))
	r.tip.Move(fyne.NewPos(tipX, 0))
	r.tip.Resize(fyne.NewSize(textW, tipH))
}

func (r *sliderRenderer) MinSize() fyne.Size {
	return fyne.NewSize(sliderMinWidth, r.tipHeight()+2*theme.Padding()+sliderHandleSize)
}

func (r *sliderRenderer) Refresh() {
	r.track.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.fill.FillColor = theme.Color(theme.ColorNamePrimary)
	r.handle.FillColor = theme.Color(theme.ColorNameForeground)
	r.tipBg.FillColor = theme.Color(theme.ColorNameOverlayBackground)
	r.tip.Color = theme.Color(theme.ColorNameForeground)
	r.tip.Text = r.c.Tooltip()

	if r.c.hovered || r.c.Dragging() {
		r.tip.Show()
		r.tipBg.Show()
	} else {
		r.tip.Hide()
		r.tipBg.Hide()
	}

	n := len(r.c.machine.Mapper().Ticks())
	for len(r.ticks) < n {
		r.ticks = append(r.ticks, canvas.NewRectangle(color.Transparent))
	}
	for _, t := range r.ticks {
		t.FillColor = theme.Color(theme.ColorNameDisabled)
	}

	if !r.size.IsZero() {
		r.Layout(r.size)
	}
	canvas.Refresh(r.c)
}

func (r *sliderRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.track, r.fill}
	for _, t := range r.ticks {
		objs = append(objs, t)
	}
	return append(objs, r.handle, r.tipBg, r.tip)
}

func (r *sliderRenderer) Destroy() {}
