package config

import (
	"fyne.io/fyne/v2"
)

// Store is the key/value contract the option controls read from and write to.
// Reads take a fallback for keys that were never written; writes are fire and
// forget and become visible on the next read.
type Store struct {
	prefs fyne.Preferences
}

// NewStore wraps app preferences.
func NewStore(prefs fyne.Preferences) *Store {
	return &Store{prefs: prefs}
}

// Bool returns the stored boolean or fallback.
func (s *Store) Bool(key string, fallback bool) bool {
	return s.prefs.BoolWithFallback(key, fallback)
}

// String returns the stored string or fallback.
func (s *Store) String(key, fallback string) string {
	return s.prefs.StringWithFallback(key, fallback)
}

// Float returns the stored number or fallback.
func (s *Store) Float(key string, fallback float64) float64 {
	return s.prefs.FloatWithFallback(key, fallback)
}

// SetBool writes a boolean.
func (s *Store) SetBool(key string, v bool) {
	s.prefs.SetBool(key, v)
}

// SetString writes a string.
func (s *Store) SetString(key, v string) {
	s.prefs.SetString(key, v)
}

// SetFloat writes a number.
func (s *Store) SetFloat(key string, v float64) {
	s.prefs.SetFloat(key, v)
}

// Remove forgets key so the next read returns the fallback.
func (s *Store) Remove(key string) {
	s.prefs.RemoveValue(key)
}

// OnChange registers fn to run after any write.
func (s *Store) OnChange(fn func()) {
	s.prefs.AddChangeListener(fn)
}
