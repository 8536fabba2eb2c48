package infobar

import "time"

// Clock is the source of timer channels for the drain loop
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Strategy is the enter/exit animation the host renders with. The state machine
// only needs the exit duration to space consecutive banners.
type Strategy interface {
	ExitDuration() time.Duration
}

// DefaultExitDuration matches the default 300ms exit transition
const DefaultExitDuration = 300 * time.Millisecond

// ExtraDelayForNewBanner separates one banner's exit from the next one's entrance
const ExtraDelayForNewBanner = 100 * time.Millisecond

type fixedStrategy time.Duration

func (f fixedStrategy) ExitDuration() time.Duration {
	return time.Duration(f)
}
