package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/optionkit/internal/logger"
	"github.com/ytget/optionkit/internal/platform"
)

// Settings keys for Fyne preferences. The drawer keys are shared with the
// option manifest so toggling them on the settings page re-projects the drawer.
const (
	KeyDisableDrawer = "disable_drawer"
	KeyWideDrawer    = "wide_drawer"
	KeyInstallDir    = "install_directory"
	KeyLanguage      = "app_language"
	KeyCommitDelay   = "commit_delay_ms"
	KeyMinVisible    = "min_visible_ms"
	KeyDeveloperMode = "developer_mode"
	KeyDisplayName   = "display_name"
	KeyAccentColour  = "accent_colour"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultCommitDelayMs = 100
	DefaultMinVisibleMs  = 500
	DefaultWideDrawer    = true
	DefaultAccentColour  = "#3b82f6"
)

// Limits
const (
	MinCommitDelayMs = 50
	MaxCommitDelayMs = 2000
	MaxMinVisibleMs  = 5000
)

// Settings manages the launcher's own configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// Store exposes the same preferences to the option controls.
func (s *Settings) Store() *Store {
	return NewStore(s.app.Preferences())
}

// DrawerDisabled reports whether the navigation drawer is hidden entirely
func (s *Settings) DrawerDisabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyDisableDrawer, false)
}

// SetDrawerDisabled sets whether the navigation drawer is hidden entirely
func (s *Settings) SetDrawerDisabled(disabled bool) {
	s.app.Preferences().SetBool(KeyDisableDrawer, disabled)
}

// WideDrawer reports whether the drawer shows labels
func (s *Settings) WideDrawer() bool {
	return s.app.Preferences().BoolWithFallback(KeyWideDrawer, DefaultWideDrawer)
}

// SetWideDrawer sets whether the drawer shows labels
func (s *Settings) SetWideDrawer(wide bool) {
	s.app.Preferences().SetBool(KeyWideDrawer, wide)
}

// GetInstallDirectory returns the configured install directory
func (s *Settings) GetInstallDirectory() string {
	dir := s.app.Preferences().String(KeyInstallDir)
	if dir == "" {
		defaultDir, err := platform.DefaultInstallDir()
		if err != nil {
			logger.Warn("install directory fallback", "error", err)
			defaultDir = platform.FallbackInstallDir
		}
		s.SetInstallDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetInstallDirectory sets the install directory
func (s *Settings) SetInstallDirectory(dir string) {
	s.app.Preferences().SetString(KeyInstallDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
	}
}

// CommitDelay returns the slider quiet period
func (s *Settings) CommitDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyCommitDelay, DefaultCommitDelayMs)
	return time.Duration(clampInt(KeyCommitDelay, ms, MinCommitDelayMs, MaxCommitDelayMs)) * time.Millisecond
}

// SetCommitDelay sets the slider quiet period, clamped to the supported range
func (s *Settings) SetCommitDelay(d time.Duration) {
	ms := clampInt(KeyCommitDelay, int(d/time.Millisecond), MinCommitDelayMs, MaxCommitDelayMs)
	s.app.Preferences().SetInt(KeyCommitDelay, ms)
}

// MinVisible returns how long the connection indicator stays up once shown
func (s *Settings) MinVisible() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyMinVisible, DefaultMinVisibleMs)
	return time.Duration(clampInt(KeyMinVisible, ms, 0, MaxMinVisibleMs)) * time.Millisecond
}

// SetMinVisible sets the indicator's minimum visible time
func (s *Settings) SetMinVisible(d time.Duration) {
	ms := clampInt(KeyMinVisible, int(d/time.Millisecond), 0, MaxMinVisibleMs)
	s.app.Preferences().SetInt(KeyMinVisible, ms)
}

// DeveloperMode reports whether developer entries are shown
func (s *Settings) DeveloperMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyDeveloperMode, false)
}

// SetDeveloperMode toggles developer entries
func (s *Settings) SetDeveloperMode(on bool) {
	s.app.Preferences().SetBool(KeyDeveloperMode, on)
}

// DisplayName returns the signed-in name; empty means anonymous
func (s *Settings) DisplayName() string {
	return s.app.Preferences().String(KeyDisplayName)
}

// SetDisplayName sets the signed-in name
func (s *Settings) SetDisplayName(name string) {
	s.app.Preferences().SetString(KeyDisplayName, name)
}

// AccentColour returns the theme accent token
func (s *Settings) AccentColour() string {
	return s.app.Preferences().StringWithFallback(KeyAccentColour, DefaultAccentColour)
}

func clampInt(key string, v, lo, hi int) int {
	switch {
	case v < lo:
		logger.Warn("setting clamped", "key", key, "value", v, "min", lo)
		return lo
	case v > hi:
		logger.Warn("setting clamped", "key", key, "value", v, "max", hi)
		return hi
	}
	return v
}
