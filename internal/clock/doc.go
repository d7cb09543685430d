package clock

// Package clock abstracts scheduling of delayed callbacks so that debounce and
// visibility timing can be driven by a manual clock in tests.
