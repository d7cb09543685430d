package debounce

import (
	"sync"

	"github.com/google/uuid"
)

// Closer is anything owning a timer that must be cancelled on teardown.
type Closer interface {
	Close()
}

// Arena owns the timers of every mounted control, keyed by control instance,
// so a page can destroy them deterministically when it is rebuilt or closed.
type Arena struct {
	mu      sync.Mutex
	entries map[uuid.UUID]Closer
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{entries: make(map[uuid.UUID]Closer)}
}

// Track registers c under id, closing any previous owner of the same id.
func (a *Arena) Track(id uuid.UUID, c Closer) {
	a.mu.Lock()
	prev := a.entries[id]
	a.entries[id] = c
	a.mu.Unlock()

	if prev != nil && prev != c {
		prev.Close()
	}
}

// Release closes and forgets the entry for id.
func (a *Arena) Release(id uuid.UUID) {
	a.mu.Lock()
	c, ok := a.entries[id]
	delete(a.entries, id)
	a.mu.Unlock()

	if ok {
		c.Close()
	}
}

// CloseAll closes every tracked entry and empties the arena.
func (a *Arena) CloseAll() {
	a.mu.Lock()
	entries := a.entries
	a.entries = make(map[uuid.UUID]Closer)
	a.mu.Unlock()

	for _, c := range entries {
		c.Close()
	}
}

// Len returns the number of tracked entries.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}
