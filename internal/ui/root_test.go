package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/optionkit/internal/clock/clocktest"
	"github.com/ytget/optionkit/internal/config"
	"github.com/ytget/optionkit/internal/drawer"
	"github.com/ytget/optionkit/internal/model"
	"github.com/ytget/optionkit/internal/option"
	"github.com/ytget/optionkit/internal/transfer"
)

type probeStub struct {
	err   error
	calls int
}

func (p *probeStub) probe(context.Context, string) error {
	p.calls++
	return p.err
}

type rootFixture struct {
	app      fyne.App
	root     *Root
	settings *config.Settings
	tracker  *transfer.Tracker
	clock    *clocktest.Manual
	probe    *probeStub
}

func newRootFixture(t *testing.T, signedIn bool, mutate ...func(*Deps)) *rootFixture {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetInstallDirectory(t.TempDir())
	if signedIn {
		settings.SetDisplayName("player")
	}

	f := &rootFixture{
		app:      app,
		settings: settings,
		clock:    clocktest.NewManual(),
		probe:    &probeStub{},
	}
	f.tracker = transfer.NewTracker(f.clock, nil)

	deps := Deps{
		App:       app,
		Window:    app.NewWindow("test"),
		Settings:  settings,
		Manifest:  config.DefaultManifest(),
		Transfers: f.tracker,
		CheckURL:  "http://probe.invalid",
		Probe:     f.probe.probe,
		Clock:     f.clock,
		Dispatch:  func(fn func()) { fn() },
		Mobile:    &MobileUI{},
	}
	for _, m := range mutate {
		m(&deps)
	}
	f.root = NewRoot(deps)
	t.Cleanup(f.root.Close)
	return f
}

func TestRoot_AnonymousStartsOnWelcome(t *testing.T) {
	f := newRootFixture(t, false)

	assert.Equal(t, drawer.RouteWelcome, f.root.Route())
	assert.False(t, f.root.Drawer().Visible())
	assert.Equal(t, drawer.Disabled, f.root.Drawer().Mode())
}

func TestRoot_SignIn(t *testing.T) {
	f := newRootFixture(t, false)

	f.root.SignIn("   ")
	assert.Equal(t, drawer.RouteWelcome, f.root.Route(), "blank names are ignored")

	f.root.SignIn("player")
	assert.Equal(t, drawer.RouteHome, f.root.Route())
	assert.Equal(t, "player", f.settings.DisplayName())
	require.True(t, f.root.Drawer().Visible())
	assert.Equal(t, drawer.Expanded, f.root.Drawer().Mode())
	assert.Contains(t, f.root.Drawer().Labels(), "Home")

	f.root.SignOut()
	assert.Equal(t, drawer.RouteWelcome, f.root.Route())
	assert.False(t, f.root.Drawer().Visible())
}

func TestRoot_DrawerFollowsPreferences(t *testing.T) {
	f := newRootFixture(t, true)
	store := f.settings.Store()

	store.SetBool(config.KeyWideDrawer, false)
	assert.Equal(t, drawer.Collapsed, f.root.Drawer().Mode())

	store.SetBool(config.KeyDisableDrawer, true)
	assert.Equal(t, drawer.Disabled, f.root.Drawer().Mode())
	assert.False(t, f.root.Drawer().Visible())

	store.SetBool(config.KeyDisableDrawer, false)
	store.SetBool(config.KeyWideDrawer, true)
	assert.Equal(t, drawer.Expanded, f.root.Drawer().Mode())
}

func TestRoot_MobileCollapsesDrawer(t *testing.T) {
	f := newRootFixture(t, true, func(d *Deps) {
		d.Mobile = &MobileUI{isMobile: func() bool { return true }}
	})
	assert.Equal(t, drawer.Collapsed, f.root.Drawer().Mode())
}

func TestRoot_UpdateHidesDrawer(t *testing.T) {
	f := newRootFixture(t, true)

	f.root.SetUpdateAvailable(true)
	assert.False(t, f.root.Drawer().Visible())

	f.root.SetUpdateAvailable(false)
	assert.True(t, f.root.Drawer().Visible())
}

func TestRoot_DrawerNavigation(t *testing.T) {
	f := newRootFixture(t, true)

	require.True(t, f.root.Drawer().Select("Settings"))
	assert.Equal(t, drawer.RouteSettings, f.root.Route())

	require.True(t, f.root.Drawer().Select("Competitive"))
	assert.Equal(t, drawer.RouteCompetitive, f.root.Route())
}

func TestRoot_TransferBadge(t *testing.T) {
	f := newRootFixture(t, true)

	tr, err := f.tracker.Add("Season 4", t.TempDir())
	require.NoError(t, err)
	assert.NotContains(t, f.root.Drawer().Badges(), "Downloads", "pending transfers are not counted")

	require.NoError(t, f.tracker.SetStatus(tr.ID, model.TaskStatusTransferring))
	assert.Equal(t, 1, f.root.Drawer().Badges()["Downloads"])

	f.root.Navigate(drawer.RouteDownloads)
	require.Len(t, f.root.Downloads().Items(), 1)
	assert.Contains(t, f.root.Downloads().Header(), "1 active")

	require.NoError(t, f.tracker.Complete(tr.ID))
	assert.NotContains(t, f.root.Drawer().Badges(), "Downloads")
	assert.Equal(t, model.TaskStatusCompleted, f.root.Downloads().Items()[0].Status)
}

func TestRoot_ManifestReload(t *testing.T) {
	f := newRootFixture(t, true)

	_, ok := f.root.SettingsPage().Control("volume")
	require.False(t, ok)

	m, err := config.ParseManifest([]byte("version: 1\ngroups:\n  - title: Audio\n    options:\n      - {key: volume, title: Volume, kind: slider}\n"))
	require.NoError(t, err)
	f.root.OnManifestChange(m, nil)

	_, ok = f.root.SettingsPage().Control("volume")
	assert.True(t, ok)

	f.root.OnManifestChange(nil, errors.New("broken yaml"))
	_, ok = f.root.SettingsPage().Control("volume")
	assert.True(t, ok, "a failed reload keeps the current page")
}

func TestRoot_OptionCommitReprojects(t *testing.T) {
	f := newRootFixture(t, true)
	f.root.Navigate(drawer.RouteSettings)

	ctrl, ok := f.root.SettingsPage().Control(config.KeyDisableDrawer)
	require.True(t, ok)
	require.Equal(t, option.KindBoolean, ctrl.Kind())

	var binding option.BooleanBinding
	for _, s := range config.Sections(config.DefaultManifest(), f.settings.Store()) {
		for _, opt := range s.Options {
			if opt.ID == config.KeyDisableDrawer {
				binding = opt.Binding.(option.BooleanBinding)
			}
		}
	}
	require.NotNil(t, binding.Commit)
	binding.Set(true)

	assert.True(t, f.settings.DrawerDisabled())
	assert.Equal(t, drawer.Disabled, f.root.Drawer().Mode())
}

func TestRoot_ResetOptions(t *testing.T) {
	f := newRootFixture(t, true)
	f.settings.SetWideDrawer(false)
	require.Equal(t, drawer.Collapsed, f.root.Drawer().Mode())

	f.root.ResetOptions()
	assert.True(t, f.settings.WideDrawer())
	assert.Equal(t, "player", f.settings.DisplayName())
	assert.Equal(t, drawer.RouteHome, f.root.Route())
	assert.Equal(t, drawer.Expanded, f.root.Drawer().Mode())
}

func TestRoot_ConnectionIndicator(t *testing.T) {
	f := newRootFixture(t, true)
	ctx := context.Background()
	require.False(t, f.root.Status().Showing())

	f.probe.err = errors.New("unreachable")
	f.root.probeOnce(ctx)
	assert.True(t, f.root.Status().Showing())

	// Recovery right away still keeps the warning up for the minimum time
	f.probe.err = nil
	f.root.probeOnce(ctx)
	assert.True(t, f.root.Status().Showing())

	f.clock.Advance(f.settings.MinVisible())
	assert.False(t, f.root.Status().Showing())
	assert.Equal(t, 2, f.probe.calls)
}

func TestRoot_CloseCancelsPendingCommits(t *testing.T) {
	f := newRootFixture(t, true)
	require.Positive(t, f.root.SettingsPage().TrackedTimers())

	f.root.Close()
	assert.Zero(t, f.root.SettingsPage().TrackedTimers())

	// Late events are ignored after close
	f.settings.SetWideDrawer(false)
	assert.Equal(t, drawer.Expanded, f.root.Drawer().Mode())
}

func TestRoot_PreferencesRebuildOnNewDelay(t *testing.T) {
	f := newRootFixture(t, true)
	before := f.root.SettingsPage()

	f.settings.SetCommitDelay(400 * time.Millisecond)
	f.root.onPreferencesSaved()

	assert.NotSame(t, before, f.root.SettingsPage())
	assert.Zero(t, before.TrackedTimers())
	assert.Positive(t, f.root.SettingsPage().TrackedTimers())
}
