package infobar

import (
	"time"

	"github.com/ytget/infobar/internal/model"
)

// Display budgets for the symbolic durations
const (
	ShortBudget = 4000 * time.Millisecond
	LongBudget  = 10000 * time.Millisecond
)

// DurationPolicy maps symbolic durations to display budgets.
// Zero fields fall back to ShortBudget / LongBudget.
type DurationPolicy struct {
	Short time.Duration
	Long  time.Duration
}

// DefaultDurationPolicy returns the 4s / 10s policy
func DefaultDurationPolicy() DurationPolicy {
	return DurationPolicy{Short: ShortBudget, Long: LongBudget}
}

// Budget returns the display time for d. ok is false for Indefinite, which
// schedules no timer at all.
func (p DurationPolicy) Budget(d model.Duration) (budget time.Duration, ok bool) {
	switch d {
	case model.DurationShort:
		if p.Short > 0 {
			return p.Short, true
		}
		return ShortBudget, true
	case model.DurationLong:
		if p.Long > 0 {
			return p.Long, true
		}
		return LongBudget, true
	}
	return 0, false
}
