package debounce

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/optionkit/internal/clock"
)

// DefaultQuiet is the quiet period used by slider controls.
const DefaultQuiet = 100 * time.Millisecond

type options struct {
	clock    clock.Clock
	dispatch func(func())
	log      *slog.Logger
}

// Option configures a Channel.
type Option func(*options)

// WithClock sets the clock used to schedule commits.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithDispatcher routes the commit call through d, e.g. fyne.Do so the setter
// runs on the UI goroutine.
func WithDispatcher(d func(func())) Option {
	return func(o *options) { o.dispatch = d }
}

// WithLogger sets the logger for dropped commits.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Channel buffers the latest value and commits it once no Update has arrived
// for the quiet period. At most one timer is live at any time.
type Channel[T any] struct {
	id     uuid.UUID
	quiet  time.Duration
	commit func(T)
	opts   options

	mu      sync.Mutex
	value   T
	pending bool
	timer   clock.Timer
	gen     uint64
	closed  bool
}

// New creates a channel that calls commit with the latest value after quiet.
// A non-positive quiet period falls back to DefaultQuiet.
func New[T any](quiet time.Duration, commit func(T), opts ...Option) *Channel[T] {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	o := options{
		clock:    clock.Real(),
		dispatch: func(f func()) { f() },
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Channel[T]{
		id:     uuid.New(),
		quiet:  quiet,
		commit: commit,
		opts:   o,
	}
}

// ID identifies the channel within an Arena.
func (c *Channel[T]) ID() uuid.UUID { return c.id }

// Update records v as the value to commit and restarts the quiet period.
func (c *Channel[T]) Update(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.value = v
	c.pending = true
	c.timer = c.opts.clock.AfterFunc(c.quiet, func() { c.fire(gen) })
}

// Pending reports whether a value is waiting for its quiet period to end.
func (c *Channel[T]) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Flush commits the pending value immediately, if any.
func (c *Channel[T]) Flush() {
	c.mu.Lock()
	if c.closed || !c.pending {
		c.mu.Unlock()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	v := c.value
	c.pending = false
	c.mu.Unlock()

	c.commit(v)
}

// Close cancels the pending timer. No commit fires after Close returns.
func (c *Channel[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.pending {
		c.opts.log.Debug("pending commit cancelled", "channel", c.id)
	}
	c.pending = false
}

func (c *Channel[T]) fire(gen uint64) {
	c.opts.dispatch(func() {
		c.mu.Lock()
		if c.closed || gen != c.gen || !c.pending {
			c.mu.Unlock()
			c.opts.log.Debug("stale commit dropped", "channel", c.id)
			return
		}
		v := c.value
		c.pending = false
		c.timer = nil
		c.mu.Unlock()

		c.commit(v)
	})
}
