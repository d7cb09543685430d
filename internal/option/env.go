package option

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/optionkit/internal/clock"
	"github.com/ytget/optionkit/internal/debounce"
)

// Path label limits, in terminal cells.
const (
	FileLabelWidth       = 32
	AttachmentLabelWidth = 24
)

// Env carries the collaborators shared by every control on a page.
type Env struct {
	Picker Picker
	Clock  clock.Clock
	// Dispatch runs timer callbacks on the UI goroutine. Defaults to fyne.Do.
	Dispatch func(func())
	// Quiet is the slider commit delay. Defaults to debounce.DefaultQuiet.
	Quiet time.Duration
	// Arena owns slider commit timers. A private arena is used when nil.
	Arena  *debounce.Arena
	Logger *slog.Logger
}

func (e Env) withDefaults() Env {
	if e.Clock == nil {
		e.Clock = clock.Real()
	}
	if e.Dispatch == nil {
		e.Dispatch = fyne.Do
	}
	if e.Quiet <= 0 {
		e.Quiet = debounce.DefaultQuiet
	}
	if e.Arena == nil {
		e.Arena = debounce.NewArena()
	}
	if e.Logger == nil {
		e.Logger = slog.Default()
	}
	return e
}
