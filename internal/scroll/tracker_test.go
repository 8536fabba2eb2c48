package scroll

import (
	"testing"

	"github.com/ytget/infobar/internal/model"
)

func TestTracker_Update(t *testing.T) {
	type step struct {
		pos      Position
		expected model.ScrollDirection
	}

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "not in progress keeps initial direction",
			steps: []step{
				{Position{0, 500, false}, model.ScrollSettledAtTop},
			},
		},
		{
			name: "below threshold is ignored",
			steps: []step{
				{Position{0, 50, true}, model.ScrollSettledAtTop},
				{Position{0, 30, true}, model.ScrollSettledAtTop},
			},
		},
		{
			name: "down then up within one item",
			steps: []step{
				{Position{0, 51, true}, model.ScrollSettledAfterDownScroll},
				{Position{0, 80, true}, model.ScrollSettledAfterDownScroll},
				{Position{0, 20, true}, model.ScrollSettledAfterDownScroll},
				{Position{0, 0, true}, model.ScrollSettleAfterUpScroll},
			},
		},
		{
			name: "index change commits regardless of threshold",
			steps: []step{
				{Position{1, 0, true}, model.ScrollSettledAfterDownScroll},
				{Position{0, 95, true}, model.ScrollSettleAfterUpScroll},
			},
		},
		{
			name: "offset resyncs on index change",
			steps: []step{
				{Position{2, 100, true}, model.ScrollSettledAfterDownScroll},
				{Position{2, 60, true}, model.ScrollSettledAfterDownScroll},
				{Position{2, 49, true}, model.ScrollSettleAfterUpScroll},
			},
		},
		{
			name: "settled scroll returns committed direction",
			steps: []step{
				{Position{3, 0, true}, model.ScrollSettledAfterDownScroll},
				{Position{0, 0, false}, model.ScrollSettledAfterDownScroll},
			},
		},
	}

	for _, test := range tests {
		tracker := NewTracker(DefaultThreshold, Position{})
		for i, s := range test.steps {
			if got := tracker.Update(s.pos); got != s.expected {
				t.Errorf("%s: step %d: Update(%+v) = %s, expected %s", test.name, i, s.pos, got, s.expected)
			}
		}
	}
}

func TestTracker_SetThreshold(t *testing.T) {
	tracker := NewTracker(0, Position{})
	if tracker.Threshold() != DefaultThreshold {
		t.Errorf("Expected default threshold %d, got %d", DefaultThreshold, tracker.Threshold())
	}

	tracker.SetThreshold(10)
	if got := tracker.Update(Position{0, 11, true}); got != model.ScrollSettledAfterDownScroll {
		t.Errorf("Expected down scroll after threshold change, got %s", got)
	}

	tracker.SetThreshold(-5)
	if tracker.Threshold() != 10 {
		t.Errorf("Expected threshold to stay 10, got %d", tracker.Threshold())
	}
}

func TestTracker_InitialPosition(t *testing.T) {
	tracker := NewTracker(DefaultThreshold, Position{FirstVisibleItemIndex: 4, FirstVisibleItemScrollOffset: 10})
	if got := tracker.Update(Position{4, 40, true}); got != model.ScrollSettledAtTop {
		t.Errorf("Expected SettledAtTop, got %s", got)
	}
}
