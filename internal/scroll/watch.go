package scroll

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/infobar/internal/model"
)

// SettleDelay is how long after the last scroll event a scroll is considered finished
const SettleDelay = 150 * time.Millisecond

// Watcher adapts a Fyne scroll container to a Tracker. Fyne reports a raw
// content offset, so rows of a fixed height are used to derive the first
// visible item and its offset.
type Watcher struct {
	tracker   *Tracker
	rowHeight float32
	onChange  func(model.ScrollDirection)

	mu        sync.Mutex
	last      model.ScrollDirection
	scrolling bool
	settle    *time.Timer
}

// NewWatcher creates a watcher reporting direction changes to onChange
func NewWatcher(tracker *Tracker, rowHeight float32, onChange func(model.ScrollDirection)) *Watcher {
	if rowHeight <= 0 {
		rowHeight = 1
	}
	return &Watcher{
		tracker:   tracker,
		rowHeight: rowHeight,
		onChange:  onChange,
		last:      tracker.Direction(),
	}
}

// Attach chains the watcher into the scroll container's OnScrolled callback
func (w *Watcher) Attach(scroll *container.Scroll) {
	previous := scroll.OnScrolled
	scroll.OnScrolled = func(offset fyne.Position) {
		if previous != nil {
			previous(offset)
		}
		w.Observe(offset)
	}
}

// Observe handles one scroll offset event
func (w *Watcher) Observe(offset fyne.Position) {
	w.mu.Lock()
	w.scrolling = true
	if w.settle != nil {
		w.settle.Stop()
	}
	w.settle = time.AfterFunc(SettleDelay, w.settled)
	w.mu.Unlock()

	w.report(w.tracker.Update(w.position(offset)))
}

// Scrolling returns true between the first scroll event and the settle delay
func (w *Watcher) Scrolling() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrolling
}

// Stop cancels a pending settle timer
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.settle != nil {
		w.settle.Stop()
		w.settle = nil
	}
	w.scrolling = false
}

func (w *Watcher) position(offset fyne.Position) Position {
	y := offset.Y
	if y < 0 {
		y = 0
	}
	index := int(y / w.rowHeight)
	return Position{
		FirstVisibleItemIndex:        index,
		FirstVisibleItemScrollOffset: int(y - float32(index)*w.rowHeight),
		InProgress:                   true,
	}
}

func (w *Watcher) settled() {
	w.mu.Lock()
	w.scrolling = false
	w.settle = nil
	w.mu.Unlock()
	w.report(w.tracker.Update(Position{}))
}

func (w *Watcher) report(direction model.ScrollDirection) {
	w.mu.Lock()
	changed := direction != w.last
	w.last = direction
	w.mu.Unlock()
	if changed && w.onChange != nil {
		w.onChange(direction)
	}
}
