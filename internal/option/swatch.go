package option

import (
	"fmt"
	"image/color"
	"regexp"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ytget/optionkit/internal/apperrors"
)

var hexColour = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)

// Neutral tokens are drawn as translucent white instead of a tint.
var neutralTokens = map[string]bool{"#4f4f4f": true, "#1f1f1f": true}

// Tint is the pair of colours a flat swatch is drawn with.
type Tint struct {
	Fill   color.NRGBA
	Border color.NRGBA
}

// ParseColours extracts the hex colours in a token, in order. A flat token is
// a single colour; gradient tokens may be CSS-like, e.g.
// "linear-gradient(90deg, #f03171, #6b21a8)".
func ParseColours(token string) ([]colorful.Color, error) {
	matches := hexColour.FindAllString(token, -1)
	if len(matches) == 0 {
		return nil, apperrors.InvalidInput(fmt.Errorf("no colour in token %q", token))
	}
	out := make([]colorful.Color, 0, len(matches))
	for _, m := range matches {
		c, err := colorful.Hex(m)
		if err != nil {
			return nil, apperrors.InvalidInput(err)
		}
		out = append(out, c)
	}
	return out, nil
}

// FlatTint computes the fill and border of a flat swatch. Selected swatches
// use half opacity, unselected ones a faint wash.
func FlatTint(token string, selected bool) (Tint, error) {
	if neutralTokens[strings.ToLower(token)] {
		fill, border := uint8(0x20), uint8(0x10)
		if selected {
			fill, border = 0x40, 0x20
		}
		return Tint{
			Fill:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: fill},
			Border: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: border},
		}, nil
	}

	cs, err := ParseColours(token)
	if err != nil {
		return Tint{}, err
	}
	fill, border := 0.10, 0.15
	if selected {
		fill, border = 0.50, 0.50
	}
	return Tint{Fill: withAlpha(cs[0], fill), Border: withAlpha(cs[0], border)}, nil
}

// GradientEnds returns the first and last colours of a gradient token. A
// single-colour token fades into a darker shade of itself.
func GradientEnds(token string) (start, end color.Color, err error) {
	cs, err := ParseColours(token)
	if err != nil {
		return nil, nil, err
	}
	first, last := cs[0], cs[len(cs)-1]
	if len(cs) == 1 {
		last = first.BlendRgb(colorful.Color{}, 0.6)
	}
	return withAlpha(first, 1), withAlpha(last, 1), nil
}

func withAlpha(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// swatch is one tappable palette entry.
type swatch struct {
	widget.BaseWidget

	token    string
	gradient bool
	selected bool
	onTap    func()
}

func newSwatch(token string, gradient bool, onTap func()) *swatch {
	s := &swatch{token: token, gradient: gradient, onTap: onTap}
	s.ExtendBaseWidget(s)
	return s
}

// Tapped implements fyne.Tappable.
func (s *swatch) Tapped(*fyne.PointEvent) {
	if s.onTap != nil {
		s.onTap()
	}
}

func (s *swatch) setSelected(v bool) {
	if s.selected == v {
		return
	}
	s.selected = v
	s.Refresh()
}

func (s *swatch) CreateRenderer() fyne.WidgetRenderer {
	r := &swatchRenderer{s: s}
	r.frame = canvas.NewRectangle(color.Transparent)
	r.frame.StrokeWidth = 1
	r.frame.CornerRadius = theme.Size(theme.SizeNameInputRadius)
	r.fill = canvas.NewRectangle(color.Transparent)
	r.fill.CornerRadius = r.frame.CornerRadius
	r.grad = canvas.NewHorizontalGradient(color.Transparent, color.Transparent)
	r.Refresh()
	return r
}

type swatchRenderer struct {
	s     *swatch
	frame *canvas.Rectangle
	fill  *canvas.Rectangle
	grad  *canvas.LinearGradient
}

const swatchSize = 28

func (r *swatchRenderer) Layout(size fyne.Size) {
	for _, o := range r.Objects() {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
	inset := float32(3)
	r.grad.Move(fyne.NewPos(inset, inset))
	r.grad.Resize(size.SubtractWidthHeight(2*inset, 2*inset))
}

func (r *swatchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(swatchSize, swatchSize)
}

func (r *swatchRenderer) Refresh() {
	if r.s.gradient {
		r.fill.Hide()
		r.grad.Show()
		start, end, err := GradientEnds(r.s.token)
		if err != nil {
			start, end = color.Transparent, color.Transparent
		}
		r.grad.StartColor, r.grad.EndColor = start, end
		r.frame.FillColor = color.Transparent
		r.frame.StrokeColor = color.NRGBA{R: 0x2f, G: 0x2f, B: 0x2f, A: 0xff}
		if r.s.selected {
			r.frame.StrokeColor = theme.Color(theme.ColorNameForeground)
			r.frame.StrokeWidth = 2
		} else {
			r.frame.StrokeWidth = 1
		}
	} else {
		r.grad.Hide()
		r.fill.Show()
		tint, err := FlatTint(r.s.token, r.s.selected)
		if err != nil {
			tint = Tint{Border: color.NRGBA{R: 0xff, A: 0x80}}
		}
		r.fill.FillColor = tint.Fill
		r.frame.FillColor = color.Transparent
		r.frame.StrokeColor = tint.Border
		r.frame.StrokeWidth = 1
	}
	r.frame.Refresh()
	r.fill.Refresh()
	r.grad.Refresh()
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fill, r.grad, r.frame}
}

func (r *swatchRenderer) Destroy() {}
