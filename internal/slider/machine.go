package slider

import "sync"

// Phase is the state of a drag session.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Release removes a pointer capture.
type Release func()

// Capturer installs window-wide pointer move and release handlers and returns
// the function that removes them. Handlers stay installed when the pointer
// leaves the track.
type Capturer func(onMove func(x float32), onRelease func()) Release

// Machine is the Idle/Dragging state machine for one slider instance. Capture
// registration happens only on Begin and removal only on End, so a session
// never holds more than one capture.
type Machine struct {
	mapper Mapper

	// OnValue receives every snapped value produced while dragging.
	OnValue func(float64)

	mu       sync.Mutex
	phase    Phase
	geometry Geometry
	release  Release
	value    float64
	captures int
}

// NewMachine returns an idle machine.
func NewMachine(m Mapper, onValue func(float64)) *Machine {
	return &Machine{mapper: m, OnValue: onValue}
}

// Mapper returns the mapper used for value conversion.
func (s *Machine) Mapper() Mapper { return s.mapper }

// Phase returns the current state.
func (s *Machine) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Value returns the last value produced by Move.
func (s *Machine) Value() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Captures returns the number of captures currently installed. It is 1 while
// dragging and 0 otherwise.
func (s *Machine) Captures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captures
}

// Begin starts a session with the geometry measured at pointer-down. A stale
// session is ended first.
func (s *Machine) Begin(g Geometry, capture Capturer) {
	s.End()

	s.mu.Lock()
	s.phase = Dragging
	s.geometry = g
	s.mu.Unlock()

	var rel Release
	if capture != nil {
		rel = capture(s.Move, s.End)
	}

	s.mu.Lock()
	if s.phase != Dragging {
		// Released during installation.
		s.mu.Unlock()
		if rel != nil {
			rel()
		}
		return
	}
	s.release = rel
	if rel != nil {
		s.captures++
	}
	s.mu.Unlock()
}

// Move maps x to a snapped value and reports it. It is ignored when idle.
func (s *Machine) Move(x float32) {
	s.mu.Lock()
	if s.phase != Dragging {
		s.mu.Unlock()
		return
	}
	v := s.mapper.ValueAt(x, s.geometry)
	s.value = v
	cb := s.OnValue
	s.mu.Unlock()

	if cb != nil {
		cb(v)
	}
}

// Resize replaces the geometry of the active session.
func (s *Machine) Resize(g Geometry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geometry = g
}

// End releases the capture and returns to Idle. Calling End when idle is a
// no-op.
func (s *Machine) End() {
	s.mu.Lock()
	if s.phase != Dragging {
		s.mu.Unlock()
		return
	}
	s.phase = Idle
	rel := s.release
	s.release = nil
	if rel != nil {
		s.captures--
	}
	s.mu.Unlock()

	if rel != nil {
		rel()
	}
}

// Teardown ends any active session when the owning widget is destroyed.
func (s *Machine) Teardown() { s.End() }
