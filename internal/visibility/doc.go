package visibility

// Package visibility keeps transient indicators on screen for a minimum
// duration once shown, regardless of how quickly the underlying condition
// flips back.
