package option

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/optionkit/internal/clock/clocktest"
	"github.com/ytget/optionkit/internal/slider"
)

func sampleSections(blur float64, commit func(float64)) []Section {
	return []Section{
		{
			Title: "Appearance",
			Options: []Option{
				{ID: "wide_drawer", Title: "Wide drawer", Binding: BooleanBinding{}},
				{ID: "background_blur", Title: "Background blur", Icon: "visibility", Binding: SliderBinding{
					State: State[float64]{Current: blur, Commit: commit},
					Range: slider.DefaultRange,
				}},
			},
		},
		{
			Title:           "Advanced",
			Hideable:        true,
			HiddenByDefault: true,
			Options: []Option{
				{ID: "broken", Title: "Broken", Binding: InvalidBinding{Raw: "dropdown"}},
			},
		},
	}
}

func TestPage_RendersSections(t *testing.T) {
	test.NewApp()
	p := NewPage(sampleSections(10, nil), testEnv(clocktest.NewManual()))
	defer p.Destroy()
	test.WidgetRenderer(p)

	require.Len(t, p.Groups(), 2)
	assert.True(t, p.Groups()[0].Open())
	assert.False(t, p.Groups()[1].Open())

	ctrl, ok := p.Control("broken")
	require.True(t, ok)
	assert.Equal(t, Kind(""), ctrl.Kind(), "invalid option does not stop its siblings")

	ctrl, ok = p.Control("background_blur")
	require.True(t, ok)
	assert.Equal(t, KindSlider, ctrl.Kind())
	assert.Equal(t, 1, p.TrackedTimers())

	_, ok = p.Control("missing")
	assert.False(t, ok)
}

func TestPage_RebindKeepsControls(t *testing.T) {
	test.NewApp()
	p := NewPage(sampleSections(10, nil), testEnv(clocktest.NewManual()))
	defer p.Destroy()

	before, _ := p.Control("background_blur")
	p.Rebind(sampleSections(33, nil))
	after, _ := p.Control("background_blur")

	assert.Same(t, before, after)
	assert.Equal(t, 33.0, after.(*sliderControl).Local())
}

func TestPage_InvalidSiblingKeepsPendingCommit(t *testing.T) {
	test.NewApp()
	clk := clocktest.NewManual()
	rec := &commits[float64]{}
	p := NewPage(sampleSections(0, rec.commit), testEnv(clk))
	defer p.Destroy()

	broken, _ := p.Control("broken")
	ctrl, _ := p.Control("background_blur")
	s := newTestSliderFrom(ctrl)
	s.MouseDown(press(0))
	s.Dragged(drag(0, 55))
	s.DragEnd()

	p.Rebind(sampleSections(0, rec.commit))
	clk.Advance(time.Second)

	after, _ := p.Control("background_blur")
	assert.Same(t, ctrl, after)
	brokenAfter, _ := p.Control("broken")
	assert.Same(t, broken, brokenAfter)
	assert.Len(t, rec.got, 1, "the pending slider commit survives the rebind")
}

func TestPage_RebindRebuildsOnShapeChange(t *testing.T) {
	test.NewApp()
	p := NewPage(sampleSections(10, nil), testEnv(clocktest.NewManual()))
	defer p.Destroy()

	before, _ := p.Control("background_blur")
	next := sampleSections(10, nil)
	next[0].Options = next[0].Options[1:]
	p.Rebind(next)

	after, _ := p.Control("background_blur")
	assert.NotSame(t, before, after)
	assert.Equal(t, 1, p.TrackedTimers(), "old slider timer released")

	_, ok := p.Control("wide_drawer")
	assert.False(t, ok)
}

func TestPage_DestroyDropsPendingCommits(t *testing.T) {
	test.NewApp()
	clk := clocktest.NewManual()
	rec := &commits[float64]{}
	p := NewPage(sampleSections(0, rec.commit), testEnv(clk))

	ctrl, _ := p.Control("background_blur")
	s := newTestSliderFrom(ctrl)
	s.MouseDown(press(0))
	s.Dragged(drag(0, 55))
	s.DragEnd()

	p.Destroy()
	clk.Advance(time.Second)
	assert.Empty(t, rec.got)
	assert.Zero(t, p.TrackedTimers())
}

func newTestSliderFrom(c Control) *sliderControl {
	s := c.(*sliderControl)
	s.Resize(sliderTestSize)
	return s
}

func TestGroup_Toggle(t *testing.T) {
	test.NewApp()

	g := NewGroup("Snow", true, false)
	assert.True(t, g.Open())
	assert.Equal(t, CollapseHint, g.hint.Text)
	test.Tap(g.chevron)
	assert.False(t, g.Open())
	assert.Equal(t, ExpandHint, g.hint.Text)

	fixed := NewGroup("Always", false, true)
	assert.True(t, fixed.Open(), "hiddenByDefault only applies to hideable groups")
	fixed.Toggle()
	assert.True(t, fixed.Open())
}

func TestCard_SliderStacksVertically(t *testing.T) {
	test.NewApp()
	env := testEnv(clocktest.NewManual())
	card := NewCard(Option{ID: "x", Title: "X", Binding: SliderBinding{Range: slider.DefaultRange}}, env)
	defer card.Control().Destroy()
	test.WidgetRenderer(card)

	assert.Equal(t, "x", card.Option().ID)
	assert.Equal(t, KindSlider, card.Control().Kind())
}
