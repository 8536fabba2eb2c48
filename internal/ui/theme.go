package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/infobar/internal/model"
)

// BannerTheme is the default theme with the banner palette
type BannerTheme struct{}

// NewBannerTheme creates a new banner theme
func NewBannerTheme() fyne.Theme {
	return &BannerTheme{}
}

// Color returns theme colors
func (t *BannerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 237, G: 108, B: 2, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameForegroundOnSuccess,
		theme.ColorNameForegroundOnError,
		theme.ColorNameForegroundOnWarning,
		theme.ColorNameForegroundOnPrimary:
		return color.White
	case ColorNameOffline:
		if variant == theme.VariantDark {
			return color.RGBA{R: 66, G: 66, B: 66, A: 255}
		}
		return color.RGBA{R: 97, G: 97, B: 97, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *BannerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *BannerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *BannerTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// ColorNameOffline is the background of the offline banner
const ColorNameOffline fyne.ThemeColorName = "infobarOffline"

// Palette is the colors and icon of one banner style
type Palette struct {
	Background fyne.ThemeColorName
	Foreground fyne.ThemeColorName
	Icon       fyne.Resource
}

// PaletteFor returns the palette of a banner style
func PaletteFor(style model.BannerStyle) Palette {
	switch style {
	case model.StyleSuccess:
		return Palette{theme.ColorNameSuccess, theme.ColorNameForegroundOnSuccess, theme.ConfirmIcon()}
	case model.StyleWarning:
		return Palette{theme.ColorNameWarning, theme.ColorNameForegroundOnWarning, theme.WarningIcon()}
	case model.StyleError:
		return Palette{theme.ColorNameError, theme.ColorNameForegroundOnError, theme.ErrorIcon()}
	case model.StyleOffline:
		return Palette{ColorNameOffline, theme.ColorNameForegroundOnPrimary, theme.VisibilityOffIcon()}
	}
	return Palette{theme.ColorNamePrimary, theme.ColorNameForegroundOnPrimary, theme.InfoIcon()}
}
