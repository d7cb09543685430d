package visibility

import (
	"sync"
	"time"

	"github.com/ytget/optionkit/internal/clock"
)

// State is a snapshot of the guard flags. Rendered only becomes false when
// DesiredVisible is false and MinTimeElapsed is true.
type State struct {
	DesiredVisible bool
	Rendered       bool
	MinTimeElapsed bool
}

type options struct {
	clock    clock.Clock
	dispatch func(func())
	initial  bool
}

// Option configures a Guard.
type Option func(*options)

// WithClock sets the clock used for the minimum-duration timer.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithDispatcher routes timer callbacks through d, e.g. fyne.Do.
func WithDispatcher(d func(func())) Option {
	return func(o *options) { o.dispatch = d }
}

// WithInitial starts the guard visible, with its minimum window running.
func WithInitial(visible bool) Option {
	return func(o *options) { o.initial = visible }
}

// Guard wraps a desired-visibility signal and guarantees that once shown the
// rendered flag stays true for at least the minimum duration.
type Guard struct {
	min      time.Duration
	onChange func(rendered bool)
	opts     options

	mu     sync.Mutex
	state  State
	timer  clock.Timer
	gen    uint64
	closed bool
}

// New creates a guard. onChange is called whenever the rendered flag flips.
func New(min time.Duration, onChange func(rendered bool), opts ...Option) *Guard {
	o := options{
		clock:    clock.Real(),
		dispatch: func(f func()) { f() },
	}
	for _, opt := range opts {
		opt(&o)
	}
	if min < 0 {
		min = 0
	}
	g := &Guard{min: min, onChange: onChange, opts: o}
	g.state.MinTimeElapsed = true
	if o.initial {
		g.mu.Lock()
		g.showLocked()
		g.mu.Unlock()
	}
	return g
}

// Set updates the desired visibility.
func (g *Guard) Set(desired bool) {
	g.mu.Lock()
	if g.closed || g.state.DesiredVisible == desired {
		g.mu.Unlock()
		return
	}

	was := g.state.Rendered
	if desired {
		// Re-entry cancels any deferred hide and restarts the window.
		g.showLocked()
	} else {
		g.state.DesiredVisible = false
		if g.state.MinTimeElapsed {
			g.state.Rendered = false
		}
	}
	now := g.state.Rendered
	g.mu.Unlock()

	g.notify(was, now)
}

// Rendered reports whether the guarded element should be drawn.
func (g *Guard) Rendered() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Rendered
}

// State returns a snapshot of the guard flags.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Close cancels the pending timer. The guard ignores all input afterwards.
func (g *Guard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	g.gen++
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

func (g *Guard) showLocked() {
	if g.timer != nil {
		g.timer.Stop()
	}
	g.gen++
	gen := g.gen
	g.state = State{DesiredVisible: true, Rendered: true, MinTimeElapsed: false}
	g.timer = g.opts.clock.AfterFunc(g.min, func() { g.elapsed(gen) })
}

func (g *Guard) elapsed(gen uint64) {
	g.opts.dispatch(func() {
		g.mu.Lock()
		if g.closed || gen != g.gen {
			g.mu.Unlock()
			return
		}
		g.timer = nil
		g.state.MinTimeElapsed = true
		was := g.state.Rendered
		if !g.state.DesiredVisible {
			g.state.Rendered = false
		}
		now := g.state.Rendered
		g.mu.Unlock()

		g.notify(was, now)
	})
}

func (g *Guard) notify(was, now bool) {
	if was != now && g.onChange != nil {
		g.onChange(now)
	}
}
