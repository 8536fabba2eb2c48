package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold float32 = 50.0
	DefaultTapDuration            = 300 * time.Millisecond
)

// GestureHandler turns touch down/up pairs into taps and swipes
type GestureHandler struct {
	onGesture func(GestureType)

	touchStartTime time.Time
	touchStartPos  fyne.Position

	swipeThreshold float32
	tapDuration    time.Duration
	now            func() time.Time
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:      onGesture,
		swipeThreshold: DefaultSwipeThreshold,
		tapDuration:    DefaultTapDuration,
		now:            time.Now,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	duration := gh.now().Sub(gh.touchStartTime)
	gh.touchStartTime = time.Time{}

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	distance := float32(math.Hypot(float64(dx), float64(dy)))

	if distance >= gh.swipeThreshold {
		gh.triggerGesture(SwipeDirection(dx, dy))
		return
	}
	if duration < gh.tapDuration {
		gh.triggerGesture(GestureTap)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// SwipeDirection classifies a movement by its dominant axis
func SwipeDirection(dx, dy float32) GestureType {
	if abs32(dx) > abs32(dy) {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// SwipeDismisses returns true if a horizontal drag of dx dismisses a banner of the given width
func SwipeDismisses(dx, width float32) bool {
	if width <= 0 {
		return abs32(dx) >= DefaultSwipeThreshold
	}
	return abs32(dx) > width*SwipeDismissFraction
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// Swipeable wraps a banner and reports horizontal drags and touch swipes.
// It only reacts while enabled.
type Swipeable struct {
	widget.BaseWidget

	content        fyne.CanvasObject
	gestureHandler *GestureHandler
	enabled        bool
	dragX          float32

	OnDrag    func(dx float32)
	OnRelease func(dx float32)
}

// NewSwipeable creates a new swipeable wrapper
func NewSwipeable(content fyne.CanvasObject, onGesture func(GestureType)) *Swipeable {
	s := &Swipeable{content: content}
	s.gestureHandler = NewGestureHandler(func(g GestureType) {
		if s.enabled && onGesture != nil {
			onGesture(g)
		}
	})
	s.ExtendBaseWidget(s)
	return s
}

// SetEnabled turns swipe handling on or off
func (s *Swipeable) SetEnabled(enabled bool) {
	s.enabled = enabled
	if !enabled {
		s.dragX = 0
	}
}

// Enabled returns true while swipes are handled
func (s *Swipeable) Enabled() bool {
	return s.enabled
}

// SetContent replaces the wrapped object
func (s *Swipeable) SetContent(content fyne.CanvasObject) {
	s.content = content
	s.Refresh()
}

// SetAlpha forwards fade frames to the wrapped banner
func (s *Swipeable) SetAlpha(alpha float32) {
	if a, ok := s.content.(alphaSetter); ok {
		a.SetAlpha(alpha)
	}
}

// CreateRenderer implements fyne.Widget
func (s *Swipeable) CreateRenderer() fyne.WidgetRenderer {
	return &swipeableRenderer{s: s}
}

// Dragged implements fyne.Draggable
func (s *Swipeable) Dragged(event *fyne.DragEvent) {
	if !s.enabled {
		return
	}
	s.dragX += event.Dragged.DX
	if s.OnDrag != nil {
		s.OnDrag(s.dragX)
	}
}

// DragEnd implements fyne.Draggable
func (s *Swipeable) DragEnd() {
	if !s.enabled {
		return
	}
	dx := s.dragX
	s.dragX = 0
	if s.OnRelease != nil {
		s.OnRelease(dx)
	}
}

// TouchDown implements mobile.Touchable
func (s *Swipeable) TouchDown(event *mobile.TouchEvent) {
	s.gestureHandler.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (s *Swipeable) TouchUp(event *mobile.TouchEvent) {
	s.gestureHandler.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (s *Swipeable) TouchCancel(event *mobile.TouchEvent) {
	s.gestureHandler.TouchCancel(event)
}

type swipeableRenderer struct {
	s *Swipeable
}

func (r *swipeableRenderer) Layout(size fyne.Size) {
	if r.s.content != nil {
		r.s.content.Move(fyne.NewPos(0, 0))
		r.s.content.Resize(size)
	}
}

func (r *swipeableRenderer) MinSize() fyne.Size {
	if r.s.content == nil {
		return fyne.NewSize(0, 0)
	}
	return r.s.content.MinSize()
}

func (r *swipeableRenderer) Refresh() {
	if r.s.content != nil {
		r.Layout(r.s.Size())
		r.s.content.Refresh()
	}
}

func (r *swipeableRenderer) Objects() []fyne.CanvasObject {
	if r.s.content == nil {
		return nil
	}
	return []fyne.CanvasObject{r.s.content}
}

func (r *swipeableRenderer) Destroy() {}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
