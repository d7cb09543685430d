package platform

// Package platform contains OS integration glue: install directory defaults,
// opening folders in the system file manager and the reachability probe
// behind the connection indicator.
