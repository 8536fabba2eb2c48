package infobar

// Package infobar implements the banner visibility state machine: which banner
// is current, whether it is on screen, the FIFO queue of timed banners drained
// by a single loop, the indefinite-banner override, and dismiss notification.
// Rendering lives in package ui; this package has no widget dependencies.
