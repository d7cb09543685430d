package visibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/optionkit/internal/clock/clocktest"
)

type flips struct{ log []bool }

func (f *flips) record(r bool) { f.log = append(f.log, r) }

func TestGuard_ShortShowHonoursOriginalWindow(t *testing.T) {
	clk := clocktest.NewManual()
	f := &flips{}
	g := New(500*time.Millisecond, f.record, WithClock(clk))

	g.Set(true)
	assert.True(t, g.Rendered())

	clk.Advance(100 * time.Millisecond)
	g.Set(false)
	assert.True(t, g.Rendered(), "hide is deferred")
	assert.Equal(t, State{DesiredVisible: false, Rendered: true, MinTimeElapsed: false}, g.State())

	clk.Advance(399 * time.Millisecond)
	assert.True(t, g.Rendered())

	clk.Advance(time.Millisecond)
	assert.False(t, g.Rendered(), "hidden at 500ms from the show, not 600ms")
	assert.Equal(t, []bool{true, false}, f.log)
}

func TestGuard_HideAfterWindowIsImmediate(t *testing.T) {
	clk := clocktest.NewManual()
	f := &flips{}
	g := New(500*time.Millisecond, f.record, WithClock(clk))

	g.Set(true)
	clk.Advance(time.Second)
	assert.True(t, g.State().MinTimeElapsed)
	assert.True(t, g.Rendered())

	g.Set(false)
	assert.False(t, g.Rendered())
	assert.Equal(t, []bool{true, false}, f.log)
}

func TestGuard_ReentryRestartsCycle(t *testing.T) {
	clk := clocktest.NewManual()
	f := &flips{}
	g := New(500*time.Millisecond, f.record, WithClock(clk))

	g.Set(true)
	clk.Advance(100 * time.Millisecond)
	g.Set(false)
	clk.Advance(200 * time.Millisecond)
	g.Set(true)

	// The first window would have closed at 500ms.
	clk.Advance(250 * time.Millisecond)
	g.Set(false)
	assert.True(t, g.Rendered())

	clk.Advance(249 * time.Millisecond)
	assert.True(t, g.Rendered())
	clk.Advance(time.Millisecond)
	assert.False(t, g.Rendered())
	assert.Equal(t, []bool{true, false}, f.log, "never flickers off in between")
}

func TestGuard_RepeatedSetIsNoop(t *testing.T) {
	clk := clocktest.NewManual()
	g := New(time.Second, nil, WithClock(clk))

	g.Set(false)
	assert.False(t, g.Rendered())
	assert.Zero(t, clk.Pending())

	g.Set(true)
	clk.Advance(600 * time.Millisecond)
	g.Set(true)
	clk.Advance(400 * time.Millisecond)
	assert.True(t, g.State().MinTimeElapsed, "second true did not restart the timer")
}

func TestGuard_InitialVisible(t *testing.T) {
	clk := clocktest.NewManual()
	g := New(300*time.Millisecond, nil, WithClock(clk), WithInitial(true))
	assert.True(t, g.Rendered())

	g.Set(false)
	assert.True(t, g.Rendered())
	clk.Advance(300 * time.Millisecond)
	assert.False(t, g.Rendered())
}

func TestGuard_CloseCancelsTimer(t *testing.T) {
	clk := clocktest.NewManual()
	f := &flips{}
	g := New(500*time.Millisecond, f.record, WithClock(clk))

	g.Set(true)
	g.Set(false)
	g.Close()
	clk.Advance(time.Second)

	assert.True(t, g.Rendered())
	assert.Equal(t, []bool{true}, f.log)
	assert.Zero(t, clk.Pending())

	g.Set(true)
	assert.Equal(t, []bool{true}, f.log)
}

func TestGuard_ZeroDuration(t *testing.T) {
	clk := clocktest.NewManual()
	g := New(0, nil, WithClock(clk))
	g.Set(true)
	clk.Advance(0)
	g.Set(false)
	assert.False(t, g.Rendered())
}
