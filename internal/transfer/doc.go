package transfer

// Package transfer tracks build transfers and reports how many are active.
// The drawer reads the count for its downloads badge; the downloads page
// lists the records. Fetching bytes is the caller's job: it reports progress
// and outcome through the Tracker.
