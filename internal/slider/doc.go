package slider

// Package slider maps pointer positions on a track to snapped values and
// tracks the lifetime of a drag session.
