package debounce

// Package debounce implements the commit channel used by option controls: a
// rapidly changing local value is forwarded to an external setter only after a
// quiet period, collapsing bursts into one write.
