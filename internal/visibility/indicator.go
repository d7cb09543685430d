package visibility

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Indicator shows its content while the guard reports it rendered.
type Indicator struct {
	widget.BaseWidget

	content fyne.CanvasObject
	guard   *Guard
}

// NewIndicator wraps content, typically a spinner. Timer callbacks are
// delivered on the Fyne goroutine unless opts override the dispatcher.
func NewIndicator(content fyne.CanvasObject, min time.Duration, opts ...Option) *Indicator {
	ind := &Indicator{content: content}
	all := append([]Option{WithDispatcher(fyne.Do)}, opts...)
	ind.guard = New(min, ind.apply, all...)
	ind.apply(ind.guard.Rendered())
	ind.ExtendBaseWidget(ind)
	return ind
}

// SetActive forwards the desired visibility to the guard.
func (i *Indicator) SetActive(active bool) {
	i.guard.Set(active)
}

// Showing reports whether the content is currently drawn.
func (i *Indicator) Showing() bool {
	return i.content.Visible()
}

// Guard exposes the underlying guard.
func (i *Indicator) Guard() *Guard { return i.guard }

// Close cancels the guard timer.
func (i *Indicator) Close() { i.guard.Close() }

func (i *Indicator) apply(rendered bool) {
	if rendered {
		i.content.Show()
	} else {
		i.content.Hide()
	}
}

// CreateRenderer implements fyne.Widget.
func (i *Indicator) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(i.content)
}
