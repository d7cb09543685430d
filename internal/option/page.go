package option

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/optionkit/internal/debounce"
)

// Page renders sections of options and owns the timers of their controls.
// Rebind pushes fresh store values into the existing controls; a change in
// page structure destroys them and renders the page again.
type Page struct {
	widget.BaseWidget

	env      Env
	sections []Section
	cards    map[string]*Card
	order    []*Card
	groups   []*Group
	box      *fyne.Container
	scroll   *container.Scroll
}

// NewPage renders sections. Controls share env; a private timer arena is
// created when env has none.
func NewPage(sections []Section, env Env) *Page {
	if env.Arena == nil {
		env.Arena = debounce.NewArena()
	}
	p := &Page{env: env.withDefaults(), box: container.NewVBox()}
	p.scroll = container.NewVScroll(p.box)
	p.build(sections)
	p.ExtendBaseWidget(p)
	return p
}

func (p *Page) build(sections []Section) {
	p.sections = sections
	p.cards = make(map[string]*Card)
	p.order = nil
	p.groups = nil
	p.box.RemoveAll()

	for _, s := range sections {
		items := make([]fyne.CanvasObject, 0, len(s.Options))
		for _, opt := range s.Options {
			card := NewCard(opt, p.env)
			if opt.ID != "" {
				p.cards[opt.ID] = card
			}
			p.order = append(p.order, card)
			items = append(items, card)
		}
		g := NewGroup(s.Title, s.Hideable, s.HiddenByDefault, items...)
		p.groups = append(p.groups, g)
		p.box.Add(g)
	}
	p.box.Refresh()
}

// Rebind updates every control with the bindings in sections.
func (p *Page) Rebind(sections []Section) {
	if !sameShape(p.sections, sections) {
		p.env.Logger.Debug("option page layout changed, rebuilding")
		p.destroyControls()
		p.build(sections)
		return
	}
	i := 0
	for _, s := range sections {
		for _, opt := range s.Options {
			if !p.order[i].control.Rebind(opt.Binding) {
				p.env.Logger.Debug("option kind changed, rebuilding", "option", opt.ID)
				p.destroyControls()
				p.build(sections)
				return
			}
			i++
		}
	}
	p.sections = sections
}

func sameShape(a, b []Section) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Title != b[i].Title || a[i].Hideable != b[i].Hideable || len(a[i].Options) != len(b[i].Options) {
			return false
		}
		for j := range a[i].Options {
			if a[i].Options[j].ID != b[i].Options[j].ID {
				return false
			}
		}
	}
	return true
}

// Control returns the control rendering the option with the given ID.
func (p *Page) Control(id string) (Control, bool) {
	c, ok := p.cards[id]
	if !ok {
		return nil, false
	}
	return c.control, true
}

// Groups returns the rendered sections in order.
func (p *Page) Groups() []*Group { return p.groups }

// TrackedTimers is the number of slider commit channels owned by the page.
func (p *Page) TrackedTimers() int { return p.env.Arena.Len() }

func (p *Page) destroyControls() {
	for _, c := range p.order {
		c.control.Destroy()
	}
}

// Destroy cancels every timer and capture held by the page's controls.
func (p *Page) Destroy() {
	p.destroyControls()
	p.env.Arena.CloseAll()
}

func (p *Page) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.scroll)
}
