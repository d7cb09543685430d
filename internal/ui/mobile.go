package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/optionkit/internal/drawer"
)

// MobileUI adapts the shell to small touch devices
type MobileUI struct {
	isMobile func() bool
}

// NewMobileUI creates a helper that asks the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{isMobile: func() bool { return fyne.CurrentDevice().IsMobile() }}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.isMobile != nil && m.isMobile()
}

// DrawerMode narrows an expanded drawer to icons on mobile devices, where
// the labelled drawer would take most of the screen
func (m *MobileUI) DrawerMode(mode drawer.Mode) drawer.Mode {
	if mode == drawer.Expanded && m.IsMobileDevice() {
		return drawer.Collapsed
	}
	return mode
}
