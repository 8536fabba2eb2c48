package ui

// Package ui contains the Fyne widgets: the InfoBar banner, its themed
// variants, swipe gestures and the InfoHost that lays banners over content.
