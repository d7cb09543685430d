package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconError   = "❌"
	IconPlay    = "▶"
	IconStopped = "⏹"
	IconPending = "⏳"
	IconOffline = "⚠"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Layout sizing
const (
	StatusLabelWidth  float32 = 110
	PercentLabelWidth float32 = 48

	RowMinWidth  float32 = 360
	RowMinHeight float32 = 56

	WindowWidth  float32 = 1100
	WindowHeight float32 = 720

	WelcomeEntryWidth float32 = 280
)

// Connection probe
const (
	ProbeInterval = 15 * time.Second
)

// Dialog sizing
const (
	PreferencesDialogWidth  float32 = 460
	PreferencesDialogHeight float32 = 360
)
