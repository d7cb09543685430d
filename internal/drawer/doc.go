package drawer

// Package drawer derives the navigation drawer from application state: its
// visual mode from two preferences, and its entries and badges from the
// session and the counts reported by external collaborators. View renders
// the projection with Fyne.
