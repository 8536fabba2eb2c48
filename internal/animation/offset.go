package animation

import (
	"sync"

	"fyne.io/fyne/v2"

	"github.com/ytget/infobar/internal/model"
)

// TargetOffset returns the vertical offset of the banner layer: 0 when it
// should be visible, one banner height past its edge otherwise.
func TargetOffset(shouldBeVisible bool, dir model.Direction, height float32) float32 {
	if shouldBeVisible {
		return 0
	}
	if height <= 0 {
		height = DefaultBannerHeight
	}
	return dir.Sign() * height
}

// OffsetAnimator tweens a vertical offset towards a target, restarting from
// the current value when the target changes mid-flight.
type OffsetAnimator struct {
	mu      sync.Mutex
	current float32
	target  float32
	anim    *fyne.Animation
	apply   func(offset float32)
}

// NewOffsetAnimator creates an animator at rest at offset 0
func NewOffsetAnimator(apply func(offset float32)) *OffsetAnimator {
	return &OffsetAnimator{apply: apply}
}

// AnimateTo moves towards target over DefaultHidingDuration
func (a *OffsetAnimator) AnimateTo(target float32) {
	a.mu.Lock()
	if target == a.target && (a.anim != nil || a.current == target) {
		a.mu.Unlock()
		return
	}
	if a.anim != nil {
		a.anim.Stop()
	}
	from := a.current
	a.target = target

	anim := fyne.NewAnimation(DefaultHidingDuration, func(p float32) {
		a.mu.Lock()
		a.current = from + (target-from)*p
		value := a.current
		if p >= 1 {
			a.anim = nil
		}
		a.mu.Unlock()
		if a.apply != nil {
			a.apply(value)
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	a.anim = anim
	a.mu.Unlock()

	anim.Start()
}

// SnapTo jumps to value without animating
func (a *OffsetAnimator) SnapTo(value float32) {
	a.mu.Lock()
	if a.anim != nil {
		a.anim.Stop()
		a.anim = nil
	}
	a.current, a.target = value, value
	a.mu.Unlock()
	if a.apply != nil {
		a.apply(value)
	}
}

// Value returns the current offset
func (a *OffsetAnimator) Value() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Target returns the offset being animated towards
func (a *OffsetAnimator) Target() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.target
}

// Stop halts a running animation at its current value
func (a *OffsetAnimator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.anim != nil {
		a.anim.Stop()
		a.anim = nil
	}
}
