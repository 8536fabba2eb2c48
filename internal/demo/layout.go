package demo

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/infobar/internal/ui"
)

// RowHeight is the height of one row of the demo list
const RowHeight = ui.MinTouchTargetSize

// Layout provides device-adaptive layout helpers for the demo screen
type Layout struct {
	device fyne.Device
}

// NewLayout creates a layout helper for device
func NewLayout(device fyne.Device) *Layout {
	return &Layout{device: device}
}

// IsMobileDevice checks if the app is running on a mobile device
func (l *Layout) IsMobileDevice() bool {
	return l.device != nil && l.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (l *Layout) IsLandscape() bool {
	if l.device == nil {
		return false
	}
	o := l.device.Orientation()
	return o == fyne.OrientationHorizontalLeft || o == fyne.OrientationHorizontalRight
}

// Columns returns the number of button columns for the current device
func (l *Layout) Columns() int {
	if !l.IsMobileDevice() {
		return 2
	}
	if l.IsLandscape() {
		return 2
	}
	return 1
}

// ButtonGrid arranges buttons in an adaptive grid
func (l *Layout) ButtonGrid(objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewAdaptiveGrid(l.Columns(), objects...)
}

// Button creates a button sized for touch on mobile devices
func (l *Layout) Button(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	if l.IsMobileDevice() {
		btn.Importance = widget.HighImportance
	}
	return btn
}

// Spacing returns appropriate spacing for the device
func (l *Layout) Spacing() float32 {
	if l.IsMobileDevice() {
		return 16
	}
	return 8
}

// Row wraps obj so it takes at least one list row
func (l *Layout) Row(obj fyne.CanvasObject) fyne.CanvasObject {
	return container.New(&rowLayout{height: RowHeight}, obj)
}

// rowLayout stretches its objects across a row of fixed minimum height
type rowLayout struct {
	height float32
}

func (r *rowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
}

func (r *rowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, r.height)
	for _, o := range objects {
		minSize = minSize.Max(o.MinSize())
	}
	return minSize
}
