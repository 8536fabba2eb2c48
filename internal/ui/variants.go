package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/infobar/internal/model"
)

// BannerRequest is what the host asks a renderer to draw
type BannerRequest struct {
	Data      model.BannerData
	Direction model.Direction
	Infinite  bool
	OnClose   func()
}

// Renderer draws a banner. The returned object may implement SetAlpha(float32)
// to take part in fade transitions.
type Renderer func(BannerRequest) fyne.CanvasObject

// DefaultRenderer draws an InfoBar themed by the banner style
func DefaultRenderer(req BannerRequest) fyne.CanvasObject {
	return NewInfoBar(req.Data, req.Direction, req.Infinite, req.OnClose)
}

// NewSuccessInfoBar creates a green success banner
func NewSuccessInfoBar(data model.BannerData, dir model.Direction, infinite bool, onClose func()) *InfoBar {
	return NewInfoBar(data.WithStyle(model.StyleSuccess), dir, infinite, onClose)
}

// NewWarningInfoBar creates an orange warning banner
func NewWarningInfoBar(data model.BannerData, dir model.Direction, infinite bool, onClose func()) *InfoBar {
	return NewInfoBar(data.WithStyle(model.StyleWarning), dir, infinite, onClose)
}

// NewErrorInfoBar creates a red error banner
func NewErrorInfoBar(data model.BannerData, dir model.Direction, infinite bool, onClose func()) *InfoBar {
	return NewInfoBar(data.WithStyle(model.StyleError), dir, infinite, onClose)
}

// NewOfflineInfoBar creates the offline banner. It has square corners and no close button.
func NewOfflineInfoBar(data model.BannerData, dir model.Direction) *InfoBar {
	b := NewInfoBar(data.WithStyle(model.StyleOffline), dir, false, nil)
	b.Square = true
	return b
}

// DefaultOfflineBanner is the payload shown when no custom offline banner is set
func DefaultOfflineBanner(l *Localization) model.BannerData {
	return model.NewBannerData(l.GetText(KeyOfflineTitle), l.GetText(KeyOfflineDescription)).
		WithStyle(model.StyleOffline)
}
