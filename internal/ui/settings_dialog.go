package ui

import (
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/optionkit/internal/config"
)

// SettingsDialog edits the launcher settings that are not part of the option
// manifest
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect    *widget.Select
	commitDelayEntry  *widget.Entry
	minVisibleEntry   *widget.Entry
	developerCheck    *widget.Check
	displayNameEntry  *widget.Entry
	languageCodeByTag map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a save.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection shows display names, stores codes
	sd.languageCodeByTag = make(map[string]string)
	var languageOptions []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodeByTag[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.commitDelayEntry = widget.NewEntry()
	sd.commitDelayEntry.SetPlaceHolder(strconv.Itoa(config.MinCommitDelayMs) + "-" + strconv.Itoa(config.MaxCommitDelayMs))

	sd.minVisibleEntry = widget.NewEntry()
	sd.minVisibleEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxMinVisibleMs))

	sd.developerCheck = widget.NewCheck(sd.localization.GetText(KeyDeveloperMode), nil)
	sd.displayNameEntry = widget.NewEntry()

	form := widget.NewForm(
		widget.NewFormItem(sd.localization.GetText(KeyDisplayName), sd.displayNameEntry),
		widget.NewFormItem(sd.localization.GetText(KeyLanguage), sd.languageSelect),
		widget.NewFormItem(sd.localization.GetText(KeyCommitDelay), sd.commitDelayEntry),
		widget.NewFormItem(sd.localization.GetText(KeyMinVisible), sd.minVisibleEntry),
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeyPreferences),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		container.NewVBox(form, sd.developerCheck),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(PreferencesDialogWidth, PreferencesDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	lang := sd.settings.GetLanguage()
	for name, code := range sd.languageCodeByTag {
		if code == lang {
			sd.languageSelect.SetSelected(name)
		}
	}
	sd.commitDelayEntry.SetText(strconv.Itoa(int(sd.settings.CommitDelay() / time.Millisecond)))
	sd.minVisibleEntry.SetText(strconv.Itoa(int(sd.settings.MinVisible() / time.Millisecond)))
	sd.developerCheck.SetChecked(sd.settings.DeveloperMode())
	sd.displayNameEntry.SetText(sd.settings.DisplayName())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save writes the form back; unparsable durations keep the stored value
func (sd *SettingsDialog) save() {
	if code, ok := sd.languageCodeByTag[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	if ms, err := strconv.Atoi(sd.commitDelayEntry.Text); err == nil {
		sd.settings.SetCommitDelay(time.Duration(ms) * time.Millisecond)
	}
	if ms, err := strconv.Atoi(sd.minVisibleEntry.Text); err == nil {
		sd.settings.SetMinVisible(time.Duration(ms) * time.Millisecond)
	}
	sd.settings.SetDeveloperMode(sd.developerCheck.Checked)
	sd.settings.SetDisplayName(sd.displayNameEntry.Text)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
