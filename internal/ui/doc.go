package ui

// Package ui contains the Fyne-based launcher shell: the navigation drawer,
// the manifest-driven settings page, the downloads list and the connection
// indicator. All fixed UI strings are localized via Localization.
