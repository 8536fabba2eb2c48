package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/infobar/internal/model"
)

// Slide to perform action
const (
	// SlideCompleteFraction of the track the knob must pass to complete
	SlideCompleteFraction float32 = 0.5
	SlideCompleteDelay            = 1200 * time.Millisecond
	SlideResetDuration            = 200 * time.Millisecond
)

// SlideInfoBar is a banner whose action is performed by dragging a knob
// across it. The banner title is the action text; once the knob reaches the
// end, DoneText replaces it and OnSlideComplete fires after CompleteDelay.
type SlideInfoBar struct {
	widget.BaseWidget

	Data      model.BannerData
	Direction model.Direction
	DoneText  model.TextType
	// KnobIcon defaults to a right chevron
	KnobIcon        fyne.Resource
	OnSlideComplete func()
	CompleteDelay   time.Duration

	knob  *Swipeable
	knobX float32
	done  bool
	reset *fyne.Animation
	alpha float32
}

// NewSlideInfoBar creates a slide to perform action banner
func NewSlideInfoBar(data model.BannerData, doneText model.TextType, dir model.Direction, onSlideComplete func()) *SlideInfoBar {
	b := &SlideInfoBar{
		Data:            data,
		Direction:       dir,
		DoneText:        doneText,
		KnobIcon:        theme.NavigateNextIcon(),
		OnSlideComplete: onSlideComplete,
		CompleteDelay:   SlideCompleteDelay,
		alpha:           1,
	}
	b.knob = NewSwipeable(nil, nil)
	b.knob.SetEnabled(true)
	b.knob.OnDrag = b.dragKnob
	b.knob.OnRelease = b.releaseKnob
	b.ExtendBaseWidget(b)
	return b
}

// Done returns true once the knob reached the end of the track
func (b *SlideInfoBar) Done() bool {
	return b.done
}

// KnobOffset returns how far the knob has travelled
func (b *SlideInfoBar) KnobOffset() float32 {
	return b.knobX
}

// Knob returns the draggable knob
func (b *SlideInfoBar) Knob() *Swipeable {
	return b.knob
}

// SetAlpha fades the banner; used by the fade transition
func (b *SlideInfoBar) SetAlpha(alpha float32) {
	if alpha == b.alpha {
		return
	}
	b.alpha = alpha
	b.Refresh()
}

func (b *SlideInfoBar) knobSize() float32 {
	return b.Size().Height - 2*BannerPaddingV
}

// track is the distance the knob can travel
func (b *SlideInfoBar) track() float32 {
	t := b.Size().Width - b.knobSize() - 2*BannerPaddingV
	if t < 0 {
		return 0
	}
	return t
}

func (b *SlideInfoBar) dragKnob(dx float32) {
	if b.done {
		return
	}
	if b.reset != nil {
		b.reset.Stop()
		b.reset = nil
	}
	b.knobX = clamp32(dx, 0, b.track())
	b.Refresh()
}

func (b *SlideInfoBar) releaseKnob(dx float32) {
	if b.done {
		return
	}
	track := b.track()
	if track > 0 && clamp32(dx, 0, track) >= track*SlideCompleteFraction {
		b.complete(track)
		return
	}

	from := b.knobX
	b.reset = fyne.NewAnimation(SlideResetDuration, func(p float32) {
		if b.done {
			return
		}
		b.knobX = from * (1 - p)
		b.Refresh()
	})
	b.reset.Curve = fyne.AnimationEaseOut
	b.reset.Start()
}

func (b *SlideInfoBar) complete(track float32) {
	b.knobX = track
	b.done = true
	b.knob.SetEnabled(false)
	b.Refresh()

	cb := b.OnSlideComplete
	if cb == nil {
		return
	}
	if b.CompleteDelay <= 0 {
		cb()
		return
	}
	time.AfterFunc(b.CompleteDelay, func() { fyne.Do(cb) })
}

// CreateRenderer implements fyne.Widget
func (b *SlideInfoBar) CreateRenderer() fyne.WidgetRenderer {
	r := &slideRenderer{
		bar:        b,
		background: canvas.NewRectangle(color.Transparent),
		fill:       canvas.NewRectangle(color.Transparent),
		action:     widget.NewRichText(),
		doneText:   widget.NewRichText(),
		knobBack:   canvas.NewCircle(color.Transparent),
		knobIcon:   widget.NewIcon(nil),
	}
	r.background.CornerRadius = BannerCornerRadius
	r.fill.CornerRadius = BannerCornerRadius
	b.knob.SetContent(container.NewStack(r.knobBack, container.NewPadded(r.knobIcon)))
	r.actionBox = container.NewCenter(r.action)
	r.doneBox = container.NewCenter(r.doneText)

	r.Refresh()
	return r
}

type slideRenderer struct {
	bar *SlideInfoBar

	background *canvas.Rectangle
	fill       *canvas.Rectangle
	action     *widget.RichText
	doneText   *widget.RichText
	actionBox  *fyne.Container
	doneBox    *fyne.Container
	knobBack   *canvas.Circle
	knobIcon   *widget.Icon
}

func (r *slideRenderer) Layout(size fyne.Size) {
	b := r.bar
	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(size)

	knob := size.Height - 2*BannerPaddingV
	if knob < 0 {
		knob = 0
	}
	r.fill.Move(fyne.NewPos(0, 0))
	r.fill.Resize(fyne.NewSize(b.knobX+knob+2*BannerPaddingV, size.Height))

	b.knob.Move(fyne.NewPos(BannerPaddingV+b.knobX, BannerPaddingV))
	b.knob.Resize(fyne.NewSquareSize(knob))

	r.actionBox.Move(fyne.NewPos(0, 0))
	r.actionBox.Resize(size)
	r.doneBox.Move(fyne.NewPos(0, 0))
	r.doneBox.Resize(size)
}

func (r *slideRenderer) MinSize() fyne.Size {
	knob := BannerHeight - 2*BannerPaddingV
	text := r.action.MinSize().Max(r.doneText.MinSize())
	return fyne.NewSize(text.Width+2*knob+4*BannerPaddingV, BannerHeight)
}

func (r *slideRenderer) Refresh() {
	b := r.bar
	palette := PaletteFor(b.Data.Style)

	r.background.FillColor = withAlpha(theme.ColorForWidget(palette.Background, b), b.alpha)
	r.fill.FillColor = withAlpha(theme.ColorForWidget(theme.ColorNameHover, b), b.alpha)
	r.knobBack.FillColor = withAlpha(theme.ColorForWidget(palette.Foreground, b), b.alpha)

	icon := b.KnobIcon
	if icon == nil {
		icon = theme.NavigateNextIcon()
	}
	r.knobIcon.SetResource(theme.NewColoredResource(icon, palette.Background))

	setRichText(r.action, b.Data.Title, palette.Foreground, theme.SizeNameSubHeadingText, true, TitleMaxLines)
	setRichText(r.doneText, b.DoneText, palette.Foreground, theme.SizeNameSubHeadingText, true, TitleMaxLines)

	hidden := b.alpha < ContentHiddenAlpha
	if b.done {
		r.actionBox.Hide()
		b.knob.Hide()
		if hidden {
			r.doneBox.Hide()
		} else {
			r.doneBox.Show()
		}
	} else {
		r.doneBox.Hide()
		if hidden {
			r.actionBox.Hide()
			b.knob.Hide()
		} else {
			r.actionBox.Show()
			b.knob.Show()
		}
	}

	r.background.Refresh()
	r.fill.Refresh()
	r.knobBack.Refresh()
	r.Layout(b.Size())
}

func (r *slideRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.fill, r.actionBox, r.doneBox, r.bar.knob}
}

func (r *slideRenderer) Destroy() {
	if r.bar.reset != nil {
		r.bar.reset.Stop()
	}
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
