// Package scroll classifies content scrolling into coarse directions used to
// hide and reveal banners.
package scroll

import (
	"sync"

	"github.com/ytget/infobar/internal/model"
)

// DefaultThreshold is the offset change, in pixels, needed to commit a direction
const DefaultThreshold = 50

// Position is a snapshot of a scrollable list
type Position struct {
	FirstVisibleItemIndex        int
	FirstVisibleItemScrollOffset int
	InProgress                   bool
}

// Tracker turns position snapshots into a committed ScrollDirection.
// Within one item, movement below the threshold is ignored; crossing an item
// boundary commits immediately.
type Tracker struct {
	mu         sync.Mutex
	threshold  int
	lastIndex  int
	lastOffset int
	direction  model.ScrollDirection
}

// NewTracker creates a tracker settled at the top. threshold <= 0 uses DefaultThreshold.
func NewTracker(threshold int, initial Position) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Tracker{
		threshold:  threshold,
		lastIndex:  initial.FirstVisibleItemIndex,
		lastOffset: initial.FirstVisibleItemScrollOffset,
		direction:  model.ScrollSettledAtTop,
	}
}

// Update feeds a new position and returns the committed direction
func (t *Tracker) Update(p Position) model.ScrollDirection {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !p.InProgress {
		return t.direction
	}

	if p.FirstVisibleItemIndex == t.lastIndex {
		delta := p.FirstVisibleItemScrollOffset - t.lastOffset
		if abs(delta) > t.threshold {
			if delta > 0 {
				t.direction = model.ScrollSettledAfterDownScroll
			} else {
				t.direction = model.ScrollSettleAfterUpScroll
			}
			t.lastOffset = p.FirstVisibleItemScrollOffset
		}
		return t.direction
	}

	if p.FirstVisibleItemIndex > t.lastIndex {
		t.direction = model.ScrollSettledAfterDownScroll
	} else {
		t.direction = model.ScrollSettleAfterUpScroll
	}
	t.lastIndex = p.FirstVisibleItemIndex
	t.lastOffset = p.FirstVisibleItemScrollOffset
	return t.direction
}

// Direction returns the last committed direction
func (t *Tracker) Direction() model.ScrollDirection {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.direction
}

// SetThreshold changes the commit threshold; values <= 0 are ignored
func (t *Tracker) SetThreshold(threshold int) {
	if threshold <= 0 {
		return
	}
	t.mu.Lock()
	t.threshold = threshold
	t.mu.Unlock()
}

// Threshold returns the current commit threshold
func (t *Tracker) Threshold() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.threshold
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
