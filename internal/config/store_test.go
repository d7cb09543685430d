package config

import (
	"sync/atomic"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestStoreFallbacks(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())

	if !store.Bool("missing", true) {
		t.Error("Bool should return fallback for an unwritten key")
	}
	if got := store.String("missing", "x"); got != "x" {
		t.Errorf("String fallback = %q, want x", got)
	}
	if got := store.Float("missing", 2.5); got != 2.5 {
		t.Errorf("Float fallback = %v, want 2.5", got)
	}

	store.SetFloat("blur", 1.25)
	if got := store.Float("blur", 0); got != 1.25 {
		t.Errorf("Float = %v, want 1.25", got)
	}
	store.Remove("blur")
	if got := store.Float("blur", 3); got != 3 {
		t.Errorf("Float after Remove = %v, want fallback 3", got)
	}
}

func TestStoreOnChange(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())

	var calls atomic.Int32
	store.OnChange(func() { calls.Add(1) })

	store.SetBool(KeyWideDrawer, false)
	store.SetString(KeyDisplayName, "player")

	if calls.Load() < 2 {
		t.Errorf("Expected a change notification per write, got %d", calls.Load())
	}
}
