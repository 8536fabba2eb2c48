package model

import (
	"errors"
	"fmt"
)

var ErrUnknownDuration = errors.New("unknown banner duration")

// Duration is the symbolic display time of a banner
type Duration string

const (
	// DurationShort keeps the banner on screen for the short budget
	DurationShort Duration = "Short"

	// DurationLong keeps the banner on screen for the long budget
	DurationLong Duration = "Long"

	// DurationIndefinite keeps the banner until it is dismissed explicitly
	DurationIndefinite Duration = "Indefinite"
)

// String returns the string representation of Duration
func (d Duration) String() string {
	return string(d)
}

// IsIndefinite returns true if no automatic timer applies
func (d Duration) IsIndefinite() bool {
	return d == DurationIndefinite
}

// ParseDuration converts a stored or user supplied name into a Duration
func ParseDuration(s string) (Duration, error) {
	switch Duration(s) {
	case DurationShort, DurationLong, DurationIndefinite:
		return Duration(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDuration, s)
}

// Durations lists every symbolic duration in display order
func Durations() []Duration {
	return []Duration{DurationShort, DurationLong, DurationIndefinite}
}

// VisibilityState drives the enter/exit transition of the primary banner
type VisibilityState string

const (
	// VisibilityHidden means no banner is on screen
	VisibilityHidden VisibilityState = "Hidden"

	// VisibilityVisible means the current banner is on screen
	VisibilityVisible VisibilityState = "Visible"
)

// String returns the string representation of VisibilityState
func (v VisibilityState) String() string {
	return string(v)
}

// IsVisible returns true for VisibilityVisible
func (v VisibilityState) IsVisible() bool {
	return v == VisibilityVisible
}

// Direction is the screen edge a banner enters from
type Direction string

const (
	DirectionTop    Direction = "Top"
	DirectionBottom Direction = "Bottom"
)

// String returns the string representation of Direction
func (d Direction) String() string {
	return string(d)
}

// Sign returns -1 for Top and +1 for Bottom, the sign of the off-screen offset
func (d Direction) Sign() float32 {
	if d == DirectionBottom {
		return 1
	}
	return -1
}

// ParseDirection converts a stored name into a Direction, defaulting to Top
func ParseDirection(s string) Direction {
	if Direction(s) == DirectionBottom {
		return DirectionBottom
	}
	return DirectionTop
}

// ScrollDirection is the coarse classification of content scrolling
type ScrollDirection string

const (
	// ScrollSettledAtTop is the initial state, before any committed scroll
	ScrollSettledAtTop ScrollDirection = "SettledAtTop"

	// ScrollSettleAfterUpScroll means the last committed movement was upward
	ScrollSettleAfterUpScroll ScrollDirection = "SettleAfterUpScroll"

	// ScrollSettledAfterDownScroll means the last committed movement was downward
	ScrollSettledAfterDownScroll ScrollDirection = "SettledAfterDownScroll"
)

// String returns the string representation of ScrollDirection
func (s ScrollDirection) String() string {
	return string(s)
}

// AllowsBanner returns true if a visible banner may stay on screen
func (s ScrollDirection) AllowsBanner() bool {
	return s == ScrollSettledAtTop || s == ScrollSettleAfterUpScroll
}
