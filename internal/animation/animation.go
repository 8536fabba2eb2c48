// Package animation provides the enter/exit transitions of a banner and the
// scroll-to-hide offset animation.
package animation

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/infobar/internal/model"
)

// Type selects the enter/exit transition
type Type string

const (
	SlideVertically        Type = "SlideVertically"
	SlideHorizontally      Type = "SlideHorizontally"
	Fade                   Type = "Fade"
	Scale                  Type = "Scale"
	ScaleVertically        Type = "ScaleVertically"
	ExpandShrinkVertically Type = "ExpandShrinkVertically"
)

// Animation timings
const (
	DefaultDuration       = 300 * time.Millisecond
	DefaultHidingDuration = 300 * time.Millisecond
)

// DefaultBannerHeight is the off-screen distance used when hiding on scroll
const DefaultBannerHeight float32 = 80

// Types lists every transition in display order
func Types() []Type {
	return []Type{SlideVertically, SlideHorizontally, Fade, Scale, ScaleVertically, ExpandShrinkVertically}
}

// String returns the string representation of Type
func (t Type) String() string {
	return string(t)
}

// ParseType converts a stored name into a Type
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if string(t) == s {
			return t, nil
		}
	}
	return SlideVertically, fmt.Errorf("unknown animation type %q", s)
}

// Phase is the direction a transition runs in
type Phase int

const (
	Enter Phase = iota
	Exit
)

// Transform is the geometry of a banner at one point of a transition.
// Offset is relative to the resting position and already accounts for the
// scale anchor.
type Transform struct {
	Offset fyne.Position
	ScaleX float32
	ScaleY float32
	Alpha  float32
}

// Identity is the resting transform
var Identity = Transform{ScaleX: 1, ScaleY: 1, Alpha: 1}

// Frame computes the transform of a banner of the given size. progress runs
// from 0 to 1 in both phases.
func Frame(t Type, dir model.Direction, phase Phase, progress float32, size fyne.Size) Transform {
	shown := clamp(progress)
	if phase == Exit {
		shown = 1 - shown
	}
	hidden := 1 - shown

	tr := Identity
	switch t {
	case SlideHorizontally:
		tr.Offset.X = -size.Width * hidden
	case Fade:
		tr.Alpha = shown
	case Scale:
		tr.ScaleX, tr.ScaleY = shown, shown
		tr.Offset = centered(size, shown, shown)
	case ScaleVertically:
		tr.ScaleX, tr.ScaleY = shown, shown
		tr.Offset = centered(size, shown, shown)
		tr.Offset.Y += dir.Sign() * size.Height * hidden
	case ExpandShrinkVertically:
		tr.ScaleY = shown
		if dir == model.DirectionBottom {
			tr.Offset.Y = size.Height * hidden
		}
	default:
		tr.Offset.Y = dir.Sign() * size.Height * hidden
	}
	return tr
}

// Apply moves and resizes obj from its resting geometry
func (tr Transform) Apply(obj fyne.CanvasObject, rest fyne.Position, size fyne.Size) {
	obj.Move(rest.Add(tr.Offset))
	obj.Resize(fyne.NewSize(size.Width*tr.ScaleX, size.Height*tr.ScaleY))
}

// Transition is an enter/exit animation for one edge
type Transition struct {
	Type      Type
	Direction model.Direction
	Duration  time.Duration
}

// NewTransition creates a transition with the default duration
func NewTransition(t Type, dir model.Direction) Transition {
	return Transition{Type: t, Direction: dir, Duration: DefaultDuration}
}

// ExitDuration is the time a banner needs to leave the screen
func (tr Transition) ExitDuration() time.Duration {
	if tr.Duration <= 0 {
		return DefaultDuration
	}
	return tr.Duration
}

// Animatable receives transition frames
type Animatable interface {
	SetTransform(Transform)
	Size() fyne.Size
}

// Run starts the phase on target. done, if set, runs once on the last frame.
func (tr Transition) Run(target Animatable, phase Phase, done func()) *fyne.Animation {
	size := target.Size()
	finished := false
	anim := fyne.NewAnimation(tr.ExitDuration(), func(p float32) {
		target.SetTransform(Frame(tr.Type, tr.Direction, phase, p, size))
		if p >= 1 && !finished {
			finished = true
			if done != nil {
				done()
			}
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()
	return anim
}

func centered(size fyne.Size, sx, sy float32) fyne.Position {
	return fyne.NewPos(size.Width*(1-sx)/2, size.Height*(1-sy)/2)
}

func clamp(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
