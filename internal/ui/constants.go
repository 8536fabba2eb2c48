package ui

import "time"

// Banner sizing
const (
	BannerHeight       float32 = 80
	BannerCornerRadius float32 = 12
	BannerIconSize     float32 = 34
	BannerPaddingH     float32 = 16
	BannerPaddingV     float32 = 8

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Banner text
const (
	TitleMaxLines       = 2
	DescriptionMaxLines = 2
	Ellipsis            = "…"
)

// Swipe to dismiss
const (
	// SwipeDismissFraction of the banner width a drag must pass to dismiss
	SwipeDismissFraction float32 = 0.35
	SwipeResetDuration           = 200 * time.Millisecond
)

// Fade levels below which banner content is hidden
const (
	ContentHiddenAlpha float32 = 0.35
)
