package platform

// Package platform contains OS integration: a network interface watcher that
// feeds the connectivity monitor.
