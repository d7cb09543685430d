package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyPreferences      = "preferences"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyStop             = "stop"
	KeyRemove           = "remove"
	KeyOpenFolder       = "open_folder"
	KeyDownloads        = "downloads"
	KeyActiveDownloads  = "active_downloads"
	KeyNoDownloads      = "no_downloads"
	KeyWelcome          = "welcome"
	KeyDisplayName      = "display_name"
	KeyContinue         = "continue"
	KeySignOut          = "sign_out"
	KeyResetDefaults    = "reset_defaults"
	KeyResetConfirm     = "reset_confirm"
	KeyOffline          = "offline"
	KeyComingSoon       = "coming_soon"
	KeyCommitDelay      = "commit_delay"
	KeyMinVisible       = "min_visible"
	KeyDeveloperMode    = "developer_mode"
	KeySettingsSaved    = "settings_saved"
	KeyErrorOpeningDir  = "error_opening_dir"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Launcher",
		KeySettings:         "Settings",
		KeyPreferences:      "Preferences",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyStop:             "Stop",
		KeyRemove:           "Remove",
		KeyOpenFolder:       "Open folder",
		KeyDownloads:        "Downloads",
		KeyActiveDownloads:  "%d active",
		KeyNoDownloads:      "Nothing is downloading",
		KeyWelcome:          "Welcome",
		KeyDisplayName:      "Display name",
		KeyContinue:         "Continue",
		KeySignOut:          "Sign out",
		KeyResetDefaults:    "Reset to defaults",
		KeyResetConfirm:     "Restore every option on this page to its default?",
		KeyOffline:          "Connection lost, retrying",
		KeyComingSoon:       "Coming soon",
		KeyCommitDelay:      "Slider commit delay (ms)",
		KeyMinVisible:       "Status minimum visible time (ms)",
		KeyDeveloperMode:    "Developer mode",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyErrorOpeningDir:  "Error opening folder",
	}
}
