package option

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type colourControl struct {
	widget.BaseWidget

	binding  ColourBinding
	env      Env
	swatches []*swatch
	box      *fyne.Container
}

func newColourControl(b ColourBinding, env Env) *colourControl {
	c := &colourControl{binding: b, env: env}
	c.box = container.NewHBox()
	c.build()
	c.ExtendBaseWidget(c)
	return c
}

func (c *colourControl) Kind() Kind { return KindColour }

func (c *colourControl) build() {
	c.box.RemoveAll()
	c.swatches = c.swatches[:0]
	for _, token := range c.binding.Palette {
		if _, err := ParseColours(token); err != nil && !neutralTokens[token] {
			c.env.Logger.Warn("palette entry has no colour", "token", token)
		}
		s := newSwatch(token, c.binding.Gradient, func() { c.choose(token) })
		s.selected = token == c.binding.Current
		c.swatches = append(c.swatches, s)
		c.box.Add(s)
	}
}

func (c *colourControl) choose(token string) {
	if token == c.binding.Current {
		return
	}
	c.binding.Current = token
	c.binding.Set(token)
	c.sync()
}

// Choose selects a palette entry as a tap would.
func (c *colourControl) Choose(i int) {
	if i >= 0 && i < len(c.swatches) {
		c.swatches[i].Tapped(nil)
	}
}

// Selected returns the index of the current token, or -1.
func (c *colourControl) Selected() int {
	for i, s := range c.swatches {
		if s.selected {
			return i
		}
	}
	return -1
}

func (c *colourControl) sync() {
	for _, s := range c.swatches {
		s.setSelected(s.token == c.binding.Current)
	}
}

func (c *colourControl) Rebind(b Binding) bool {
	v, ok := b.(ColourBinding)
	if !ok {
		return false
	}
	rebuild := v.Gradient != c.binding.Gradient || !slices.Equal(v.Palette, c.binding.Palette)
	c.binding = v
	if rebuild {
		c.build()
		c.box.Refresh()
		return true
	}
	c.sync()
	return true
}

func (c *colourControl) Destroy() {}

func (c *colourControl) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.box)
}
