package infobar

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/infobar/internal/model"
)

type manualClock struct {
	mu      sync.Mutex
	now     time.Duration
	waiters []waiter
}

type waiter struct {
	at time.Duration
	ch chan time.Time
}

func (c *manualClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan time.Time, 1)
	c.waiters = append(c.waiters, waiter{at: c.now + d, ch: ch})
	return ch
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
	kept := c.waiters[:0]
	for _, w := range c.waiters {
		if w.at <= c.now {
			w.ch <- time.Unix(0, int64(c.now))
			continue
		}
		kept = append(kept, w)
	}
	c.waiters = kept
}

func (c *manualClock) Waiters() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

type shownRecorder struct {
	mu     sync.Mutex
	last   uuid.UUID
	titles []string
}

func (r *shownRecorder) record(snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !snap.Visibility.IsVisible() || snap.Current == nil || snap.SessionID == r.last {
		return
	}
	r.last = snap.SessionID
	r.titles = append(r.titles, snap.Current.Title.String())
}

func (r *shownRecorder) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.titles...)
}

const (
	waitFor = time.Second
	tick    = time.Millisecond
)

func newTestState(t *testing.T) (*HostState, *manualClock) {
	t.Helper()
	clock := &manualClock{}
	state := NewHostState(WithClock(clock))
	t.Cleanup(state.Close)
	return state, clock
}

func awaitWaiter(t *testing.T, clock *manualClock) {
	t.Helper()
	require.Eventually(t, func() bool { return clock.Waiters() == 1 }, waitFor, tick)
}

func banner(title string) model.BannerData {
	return model.NewBannerData(title, "")
}

func TestHostState_ShowTimedEndToEnd(t *testing.T) {
	state, clock := newTestState(t)

	accepted, err := state.Show(banner("A"), model.DurationShort)
	require.NoError(t, err)
	assert.True(t, accepted)

	awaitWaiter(t, clock)
	assert.True(t, state.IsVisible())
	current, ok := state.Current()
	require.True(t, ok)
	assert.Equal(t, "A", current.Title.String())

	clock.Advance(3999 * time.Millisecond)
	assert.True(t, state.IsVisible())

	clock.Advance(time.Millisecond)
	require.Eventually(t, func() bool { return !state.IsVisible() }, waitFor, tick)
	assert.Equal(t, 0, state.Pending())

	awaitWaiter(t, clock)
	clock.Advance(DefaultExitDuration + ExtraDelayForNewBanner)
	require.Eventually(t, func() bool { return !state.IsDraining() }, waitFor, tick)
}

func TestHostState_FIFOOrder(t *testing.T) {
	state, clock := newTestState(t)
	recorder := &shownRecorder{}
	state.SetOnChange(recorder.record)

	for _, title := range []string{"p1", "p2", "p3"} {
		accepted, err := state.Show(banner(title), model.DurationShort)
		require.NoError(t, err)
		require.True(t, accepted)
	}

	for i := 0; i < 3; i++ {
		awaitWaiter(t, clock)
		clock.Advance(ShortBudget)
		awaitWaiter(t, clock)
		clock.Advance(DefaultExitDuration + ExtraDelayForNewBanner)
	}

	require.Eventually(t, func() bool { return !state.IsDraining() }, waitFor, tick)
	assert.Equal(t, []string{"p1", "p2", "p3"}, recorder.Titles())
}

func TestHostState_DuplicatesAreShownTwice(t *testing.T) {
	state, clock := newTestState(t)
	recorder := &shownRecorder{}
	state.SetOnChange(recorder.record)

	_, _ = state.Show(banner("same"), model.DurationShort)
	_, _ = state.Show(banner("same"), model.DurationShort)

	for i := 0; i < 2; i++ {
		awaitWaiter(t, clock)
		clock.Advance(ShortBudget)
		awaitWaiter(t, clock)
		clock.Advance(DefaultExitDuration + ExtraDelayForNewBanner)
	}

	require.Eventually(t, func() bool { return !state.IsDraining() }, waitFor, tick)
	assert.Equal(t, []string{"same", "same"}, recorder.Titles())
}

func TestHostState_IndefiniteExclusivity(t *testing.T) {
	state, clock := newTestState(t)

	accepted, err := state.Show(banner("sticky"), model.DurationIndefinite)
	require.NoError(t, err)
	require.True(t, accepted)
	assert.True(t, state.IsVisible())
	assert.True(t, state.IsInfinite())

	accepted, err = state.Show(banner("timed"), model.DurationShort)
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Equal(t, 0, state.Pending())
	assert.False(t, state.IsDraining())
	assert.Equal(t, 0, clock.Waiters())

	accepted, err = state.Show(banner("second sticky"), model.DurationIndefinite)
	require.NoError(t, err)
	assert.False(t, accepted)

	current, _ := state.Current()
	assert.Equal(t, "sticky", current.Title.String())

	state.Dismiss()
	assert.False(t, state.IsInfinite())

	accepted, err = state.Show(banner("timed"), model.DurationShort)
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestHostState_IndefiniteDroppedWhileTimedVisible(t *testing.T) {
	state, clock := newTestState(t)

	_, _ = state.Show(banner("timed"), model.DurationLong)
	awaitWaiter(t, clock)

	accepted, err := state.Show(banner("sticky"), model.DurationIndefinite)
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.False(t, state.IsInfinite())
}

func TestHostState_DismissCallback(t *testing.T) {
	state, _ := newTestState(t)

	var calls atomic.Int32
	var infiniteDuringCallback atomic.Bool
	state.SetOnDismiss(func() {
		calls.Add(1)
		infiniteDuringCallback.Store(state.IsInfinite())
	})

	_, err := state.Show(banner("sticky"), model.DurationIndefinite)
	require.NoError(t, err)

	state.Dismiss()
	state.Dismiss()

	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, infiniteDuringCallback.Load())
	assert.False(t, state.IsInfinite())
	assert.False(t, state.IsVisible())
}

func TestHostState_DismissWhenHiddenIsNoop(t *testing.T) {
	state, _ := newTestState(t)

	var calls atomic.Int32
	state.SetOnDismiss(func() { calls.Add(1) })

	state.Dismiss()
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, model.VisibilityHidden, state.Visibility())
}

func TestHostState_TimerHidesFireDismissCallback(t *testing.T) {
	state, clock := newTestState(t)

	var calls atomic.Int32
	state.SetOnDismiss(func() { calls.Add(1) })

	_, _ = state.Show(banner("A"), model.DurationShort)
	awaitWaiter(t, clock)
	clock.Advance(ShortBudget)

	require.Eventually(t, func() bool { return calls.Load() == 1 }, waitFor, tick)
}

func TestHostState_QueuePausesWhileIndefinite(t *testing.T) {
	state, clock := newTestState(t)

	_, _ = state.Show(banner("A"), model.DurationShort)
	_, _ = state.Show(banner("C"), model.DurationShort)
	awaitWaiter(t, clock)

	state.Dismiss()
	accepted, err := state.Show(banner("B"), model.DurationIndefinite)
	require.NoError(t, err)
	require.True(t, accepted)

	// the stale timer for A must not hide B
	clock.Advance(ShortBudget)
	awaitWaiter(t, clock)
	assert.True(t, state.IsVisible())

	clock.Advance(DefaultExitDuration + ExtraDelayForNewBanner)
	require.Eventually(t, func() bool { return clock.Waiters() == 0 }, waitFor, tick)
	current, _ := state.Current()
	assert.Equal(t, "B", current.Title.String())
	assert.Equal(t, 1, state.Pending())

	state.Dismiss()
	awaitWaiter(t, clock)
	current, _ = state.Current()
	assert.Equal(t, "C", current.Title.String())
	assert.True(t, state.IsVisible())
}

func TestHostState_ChainedIndefiniteKeepsQueueAlive(t *testing.T) {
	state, clock := newTestState(t)

	_, _ = state.Show(banner("A"), model.DurationShort)
	_, _ = state.Show(banner("C"), model.DurationShort)
	awaitWaiter(t, clock)
	clock.Advance(ShortBudget)
	awaitWaiter(t, clock)

	// I1 lands in the exit gap after A, so the drain parks on it
	accepted, err := state.Show(banner("I1"), model.DurationIndefinite)
	require.NoError(t, err)
	require.True(t, accepted)
	clock.Advance(DefaultExitDuration + ExtraDelayForNewBanner)
	require.Eventually(t, func() bool { return clock.Waiters() == 0 }, waitFor, tick)

	var chained atomic.Int32
	state.SetOnDismiss(func() {
		if chained.Add(1) == 1 {
			_, _ = state.Show(banner("I2"), model.DurationIndefinite)
		}
	})

	state.Dismiss()
	current, _ := state.Current()
	assert.Equal(t, "I2", current.Title.String())
	assert.True(t, state.IsVisible())
	assert.True(t, state.IsInfinite())
	assert.Equal(t, 1, state.Pending())

	state.Dismiss()
	require.Eventually(t, func() bool {
		current, _ := state.Current()
		return current.Title.String() == "C" && state.IsVisible()
	}, waitFor, tick)
	awaitWaiter(t, clock)
	assert.True(t, state.IsDraining())
}

func TestHostState_ShowValidation(t *testing.T) {
	state, _ := newTestState(t)

	accepted, err := state.Show(model.BannerData{}, model.DurationShort)
	assert.ErrorIs(t, err, model.ErrMissingTitle)
	assert.False(t, accepted)

	accepted, err = state.Show(banner("x"), model.Duration("Forever"))
	assert.ErrorIs(t, err, model.ErrUnknownDuration)
	assert.False(t, accepted)
}

func TestHostState_Close(t *testing.T) {
	state, clock := newTestState(t)

	_, _ = state.Show(banner("A"), model.DurationShort)
	awaitWaiter(t, clock)

	state.Close()
	state.Close()

	require.Eventually(t, func() bool { return !state.IsDraining() }, waitFor, tick)
	clock.Advance(ShortBudget)
	assert.True(t, state.IsVisible())

	accepted, err := state.Show(banner("B"), model.DurationShort)
	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, accepted)

	state.Dismiss()
	assert.True(t, state.IsVisible())
}

type recordingTracker struct{ threshold int }

func (r *recordingTracker) SetThreshold(threshold int) { r.threshold = threshold }

func TestHostState_ScrollThreshold(t *testing.T) {
	state, _ := newTestState(t)
	tracker := &recordingTracker{}

	state.SetScrollThreshold(120)
	state.AttachTracker(tracker)
	assert.Equal(t, 120, tracker.threshold)

	state.SetScrollThreshold(30)
	assert.Equal(t, 30, tracker.threshold)

	state.SetScrollThreshold(0)
	assert.Equal(t, 30, state.ScrollThreshold())
}

func TestHostState_OfflineBanner(t *testing.T) {
	state, _ := newTestState(t)

	_, ok := state.OfflineBanner()
	assert.False(t, ok)

	require.NoError(t, state.SetOfflineBanner(banner("No connection")))
	data, ok := state.OfflineBanner()
	require.True(t, ok)
	assert.Equal(t, "No connection", data.Title.String())
	assert.Equal(t, model.StyleOffline, data.Style)

	assert.ErrorIs(t, state.SetOfflineBanner(model.BannerData{}), model.ErrMissingTitle)
}

func TestHostState_ExitDelayUsesStrategy(t *testing.T) {
	clock := &manualClock{}
	state := NewHostState(WithClock(clock), WithStrategy(fixedStrategy(time.Second)), WithExitBuffer(0))
	t.Cleanup(state.Close)

	_, _ = state.Show(banner("A"), model.DurationShort)
	_, _ = state.Show(banner("B"), model.DurationShort)
	awaitWaiter(t, clock)
	clock.Advance(ShortBudget)
	awaitWaiter(t, clock)

	clock.Advance(999 * time.Millisecond)
	current, _ := state.Current()
	assert.Equal(t, "A", current.Title.String())

	clock.Advance(time.Millisecond)
	require.Eventually(t, func() bool {
		c, _ := state.Current()
		return c.Title.String() == "B"
	}, waitFor, tick)
}
