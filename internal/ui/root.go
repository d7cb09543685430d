package ui

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/optionkit/internal/clock"
	"github.com/ytget/optionkit/internal/config"
	"github.com/ytget/optionkit/internal/debounce"
	"github.com/ytget/optionkit/internal/drawer"
	"github.com/ytget/optionkit/internal/model"
	"github.com/ytget/optionkit/internal/option"
	"github.com/ytget/optionkit/internal/platform"
	"github.com/ytget/optionkit/internal/transfer"
	"github.com/ytget/optionkit/internal/visibility"
)

// Deps are the collaborators of the launcher shell
type Deps struct {
	App       fyne.App
	Window    fyne.Window
	Settings  *config.Settings
	Manifest  *config.Manifest
	Transfers transfer.Store
	Sessions  drawer.SessionCounter

	// CheckURL is probed for the connection indicator; empty disables probing.
	CheckURL string
	Probe    func(ctx context.Context, url string) error

	Clock    clock.Clock
	Dispatch func(func())
	Mobile   *MobileUI
	Logger   *slog.Logger
}

// Root represents the main UI structure
type Root struct {
	deps         Deps
	settings     *config.Settings
	store        *config.Store
	manifest     *config.Manifest
	localization *Localization
	log          *slog.Logger
	env          option.Env

	drawer       *drawer.View
	pageArea     *fyne.Container
	settingsPage *option.Page
	settingsView *fyne.Container
	downloads    *DownloadsPage
	welcome      fyne.CanvasObject
	nameEntry    *widget.Entry
	placeholder  *widget.Label
	status       *visibility.Indicator
	prefsDialog  *SettingsDialog
	content      fyne.CanvasObject

	route           string
	accent          string
	updateAvailable bool
	closed          bool
	cancel          context.CancelFunc
}

// NewRoot creates and initializes the main UI
func NewRoot(d Deps) *Root {
	if d.Clock == nil {
		d.Clock = clock.Real()
	}
	if d.Dispatch == nil {
		d.Dispatch = fyne.Do
	}
	if d.Probe == nil {
		d.Probe = platform.CheckReachable
	}
	if d.Mobile == nil {
		d.Mobile = NewMobileUI()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Manifest == nil {
		d.Manifest = config.DefaultManifest()
	}

	r := &Root{
		deps:         d,
		settings:     d.Settings,
		store:        d.Settings.Store(),
		manifest:     d.Manifest,
		localization: NewLocalization(),
		log:          d.Logger,
	}
	r.localization.SetLanguage(r.settings.GetLanguage())

	installDir := r.settings.GetInstallDirectory()
	if err := platform.CreateDirectoryIfNotExists(installDir); err != nil {
		r.log.Warn("create install directory", "dir", installDir, "error", err)
	}

	r.env = option.Env{
		Picker:   option.NewDialogPicker(d.Window, r.log),
		Clock:    d.Clock,
		Dispatch: d.Dispatch,
		Quiet:    r.settings.CommitDelay(),
		Arena:    debounce.NewArena(),
		Logger:   r.log.With("component", "options"),
	}

	r.setupUI()
	r.applyAccent()

	r.store.OnChange(func() { r.deps.Dispatch(r.refresh) })
	d.Transfers.SetUpdateCallback(func(*model.Transfer) { r.deps.Dispatch(r.onTransfersChanged) })

	if r.settings.DisplayName() != "" {
		r.Navigate(drawer.RouteHome)
	} else {
		r.Navigate(drawer.RouteWelcome)
	}
	return r
}

// setupUI creates and arranges all UI components
func (r *Root) setupUI() {
	r.drawer = drawer.NewView(r.onDrawerSelect)
	r.pageArea = container.NewStack()

	// Settings page with its own toolbar
	r.settingsPage = option.NewPage(config.Sections(r.manifest, r.store), r.env)
	prefsBtn := widget.NewButtonWithIcon(r.localization.GetText(KeyPreferences), theme.SettingsIcon(), r.ShowPreferences)
	resetBtn := widget.NewButtonWithIcon(r.localization.GetText(KeyResetDefaults), theme.HistoryIcon(), r.confirmReset)
	resetBtn.Importance = widget.LowImportance
	r.settingsView = container.NewBorder(container.NewHBox(prefsBtn, resetBtn), nil, nil, nil, r.settingsPage)

	r.downloads = NewDownloadsPage(r.deps.Transfers, r.localization, platform.OpenFolder, r.log)

	// Welcome screen doubles as sign-in
	r.nameEntry = widget.NewEntry()
	r.nameEntry.SetPlaceHolder(r.localization.GetText(KeyDisplayName))
	r.nameEntry.OnSubmitted = r.SignIn
	continueBtn := widget.NewButton(r.localization.GetText(KeyContinue), func() { r.SignIn(r.nameEntry.Text) })
	continueBtn.Importance = widget.HighImportance
	title := widget.NewLabelWithStyle(r.localization.GetText(KeyWelcome), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	r.welcome = container.NewCenter(container.NewVBox(
		title,
		container.NewGridWrap(fyne.NewSize(WelcomeEntryWidth, r.nameEntry.MinSize().Height), r.nameEntry),
		continueBtn,
	))

	r.placeholder = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	// Connection indicator along the bottom edge
	offline := container.NewHBox(widget.NewIcon(theme.WarningIcon()), widget.NewLabel(r.localization.GetText(KeyOffline)))
	r.status = visibility.NewIndicator(offline, r.settings.MinVisible(),
		visibility.WithClock(r.deps.Clock),
		visibility.WithDispatcher(r.deps.Dispatch),
	)

	r.content = container.NewBorder(nil, r.status, r.drawer, nil, r.pageArea)

	if r.deps.Window != nil {
		r.deps.Window.SetTitle(r.localization.GetText(KeyAppTitle))
		r.prefsDialog = NewSettingsDialog(r.settings, r.localization, r.deps.Window, r.onPreferencesSaved)
		r.createMenu()
	}
}

// createMenu creates the application menu
func (r *Root) createMenu() {
	prefsItem := fyne.NewMenuItem(r.localization.GetText(KeyPreferences), r.ShowPreferences)
	signOutItem := fyne.NewMenuItem(r.localization.GetText(KeySignOut), r.SignOut)

	languageMenu := fyne.NewMenu(r.localization.GetText(KeyLanguage))
	for code, name := range r.localization.GetAvailableLanguages() {
		langCode := code
		item := fyne.NewMenuItem(name, func() { r.onLanguageChange(langCode) })
		item.Checked = r.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	r.deps.Window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(r.localization.GetText(KeyFile), prefsItem, fyne.NewMenuItemSeparator(), signOutItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (r *Root) onLanguageChange(langCode string) {
	r.localization.SetLanguage(langCode)
	r.settings.SetLanguage(langCode)
	r.createMenu()
}

// Content returns the window content
func (r *Root) Content() fyne.CanvasObject { return r.content }

// Route returns the current location
func (r *Root) Route() string { return r.route }

// Drawer returns the navigation drawer
func (r *Root) Drawer() *drawer.View { return r.drawer }

// SettingsPage returns the option page
func (r *Root) SettingsPage() *option.Page { return r.settingsPage }

// Downloads returns the downloads page
func (r *Root) Downloads() *DownloadsPage { return r.downloads }

// Status returns the connection indicator
func (r *Root) Status() *visibility.Indicator { return r.status }

// Navigate shows the page for route and re-projects the drawer
func (r *Root) Navigate(route string) {
	if r.closed {
		return
	}
	r.route = route

	var page fyne.CanvasObject
	switch route {
	case drawer.RouteWelcome:
		page = r.welcome
	case drawer.RouteSettings:
		page = r.settingsView
	case drawer.RouteDownloads:
		r.downloads.Reload()
		page = r.downloads
	default:
		r.placeholder.SetText(r.localization.GetText(KeyComingSoon) + MiddleDotSeparator + route)
		page = r.placeholder
	}
	r.pageArea.Objects = []fyne.CanvasObject{page}
	r.pageArea.Refresh()
	r.project()
}

// project recomputes the drawer from settings, route and transfer counts
func (r *Root) project() {
	ctx := drawer.Context{
		Authenticated:   r.settings.DisplayName() != "",
		Developer:       r.settings.DeveloperMode(),
		UpdateAvailable: r.updateAvailable,
		Route:           r.route,
		Counts:          drawer.CountsFrom(r.deps.Sessions, r.deps.Transfers),
		OpenHelp:        r.openHelp,
	}
	mode := r.deps.Mobile.DrawerMode(drawer.ModeFor(r.settings.DrawerDisabled(), r.settings.WideDrawer()))
	r.drawer.Apply(ctx, mode)
}

func (r *Root) onDrawerSelect(e drawer.Entry) {
	if e.Action.Kind == drawer.ActionFunc {
		if e.Action.Fn != nil {
			e.Action.Fn()
		}
		return
	}
	r.Navigate(e.Action.Href)
}

func (r *Root) openHelp() {
	u, err := url.Parse(drawer.HelpURL)
	if err != nil || r.deps.App == nil {
		return
	}
	if err := r.deps.App.OpenURL(u); err != nil {
		r.log.Warn("open help", "error", err)
	}
}

// SignIn stores the display name and opens the home page
func (r *Root) SignIn(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	r.settings.SetDisplayName(name)
	r.Navigate(drawer.RouteHome)
}

// SignOut forgets the display name and returns to the welcome page
func (r *Root) SignOut() {
	r.settings.SetDisplayName("")
	r.Navigate(drawer.RouteWelcome)
}

// SetUpdateAvailable toggles the update entry; the drawer hides while an
// update is pending
func (r *Root) SetUpdateAvailable(available bool) {
	r.updateAvailable = available
	r.project()
}

// refresh runs after any preference write
func (r *Root) refresh() {
	if r.closed {
		return
	}
	r.settingsPage.Rebind(config.Sections(r.manifest, r.store))
	r.applyAccent()
	if r.settings.DisplayName() == "" && r.route != drawer.RouteWelcome {
		r.Navigate(drawer.RouteWelcome)
		return
	}
	r.project()
}

func (r *Root) applyAccent() {
	accent := r.settings.AccentColour()
	if accent == r.accent || r.deps.App == nil {
		return
	}
	r.accent = accent
	r.deps.App.Settings().SetTheme(NewCompactTheme(accent))
}

func (r *Root) onTransfersChanged() {
	if r.closed {
		return
	}
	if r.route == drawer.RouteDownloads {
		r.downloads.Reload()
	}
	r.project()
}

// OnManifestChange applies a reloaded manifest. A failed reload keeps the
// current page.
func (r *Root) OnManifestChange(m *config.Manifest, err error) {
	r.deps.Dispatch(func() {
		if err != nil {
			r.log.Warn("keeping previous options", "error", err)
			return
		}
		r.SetManifest(m)
	})
}

// SetManifest re-renders the settings page for m
func (r *Root) SetManifest(m *config.Manifest) {
	if r.closed || m == nil {
		return
	}
	r.manifest = m
	r.settingsPage.Rebind(config.Sections(m, r.store))
}

// ShowPreferences opens the launcher preferences dialog
func (r *Root) ShowPreferences() {
	if r.prefsDialog != nil {
		r.prefsDialog.Show()
	}
}

func (r *Root) confirmReset() {
	dialog.ShowConfirm(r.localization.GetText(KeyResetDefaults), r.localization.GetText(KeyResetConfirm), func(ok bool) {
		if ok {
			r.ResetOptions()
		}
	}, r.deps.Window)
}

// ResetOptions restores every manifest option to its default
func (r *Root) ResetOptions() {
	config.Reset(r.manifest, r.store)
	r.refresh()
}

// onPreferencesSaved rebuilds the settings page so a new commit delay applies
func (r *Root) onPreferencesSaved() {
	if r.closed {
		return
	}
	quiet := r.settings.CommitDelay()
	if quiet != r.env.Quiet {
		r.env.Quiet = quiet
		r.settingsPage.Destroy()
		r.env.Arena = debounce.NewArena()
		r.settingsPage = option.NewPage(config.Sections(r.manifest, r.store), r.env)
		r.settingsView.Objects[0] = r.settingsPage
		r.settingsView.Refresh()
	}
	r.refresh()
}

// Start begins probing CheckURL until ctx is cancelled or Close is called
func (r *Root) Start(ctx context.Context) {
	if r.deps.CheckURL == "" {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	go r.probeLoop(ctx)
}

func (r *Root) probeLoop(ctx context.Context) {
	ticker := time.NewTicker(ProbeInterval)
	defer ticker.Stop()

	r.probeOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.probeOnce(ctx)
		}
	}
}

// probeOnce checks reachability and raises the indicator on failure
func (r *Root) probeOnce(ctx context.Context) {
	err := r.deps.Probe(ctx, r.deps.CheckURL)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		r.log.Debug("connection probe failed", "error", err)
	}
	offline := err != nil
	r.deps.Dispatch(func() {
		if !r.closed {
			r.status.SetActive(offline)
		}
	})
}

// Close stops probing and cancels every pending option commit
func (r *Root) Close() {
	if r.closed {
		return
	}
	r.closed = true
	if r.cancel != nil {
		r.cancel()
	}
	r.deps.Transfers.SetUpdateCallback(nil)
	r.settingsPage.Destroy()
	r.status.Close()
}
