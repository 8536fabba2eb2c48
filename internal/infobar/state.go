package infobar

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/infobar/internal/logger"
	"github.com/ytget/infobar/internal/model"
)

var ErrClosed = errors.New("infobar host is closed")

// ThresholdSetter receives scroll threshold changes
type ThresholdSetter interface {
	SetThreshold(threshold int)
}

// Snapshot is a consistent view of the host state passed to change listeners
type Snapshot struct {
	Visibility model.VisibilityState
	Infinite   bool
	Current    *model.BannerData
	SessionID  uuid.UUID
	Pending    int
}

type session struct {
	id       uuid.UUID
	data     model.BannerData
	duration model.Duration
}

// HostState owns the banner queue and the visibility of the primary banner.
// All methods are safe for concurrent use. Callbacks run without the lock
// held, so they may call back into the state.
type HostState struct {
	mu sync.Mutex

	clock      Clock
	policy     DurationPolicy
	strategy   Strategy
	exitBuffer time.Duration
	log        *zap.Logger

	queue           []session
	draining        bool
	visibility      model.VisibilityState
	infinite        bool
	infiniteCleared chan struct{}
	current         *session

	direction       model.Direction
	offline         *model.BannerData
	scrollThreshold int
	tracker         ThresholdSetter

	onDismiss func()
	onChange  func(Snapshot)

	done   chan struct{}
	closed bool
}

// Option configures a HostState
type Option func(*HostState)

// WithClock replaces the wall clock used by the drain loop
func WithClock(c Clock) Option {
	return func(s *HostState) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithDurationPolicy sets the Short/Long budgets
func WithDurationPolicy(p DurationPolicy) Option {
	return func(s *HostState) { s.policy = p }
}

// WithStrategy sets the transition whose exit duration spaces banners
func WithStrategy(st Strategy) Option {
	return func(s *HostState) {
		if st != nil {
			s.strategy = st
		}
	}
}

// WithExitBuffer sets the gap added after the exit transition
func WithExitBuffer(d time.Duration) Option {
	return func(s *HostState) {
		if d >= 0 {
			s.exitBuffer = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(s *HostState) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDirection sets the edge banners enter from
func WithDirection(d model.Direction) Option {
	return func(s *HostState) { s.direction = d }
}

// NewHostState creates a hidden, empty state
func NewHostState(opts ...Option) *HostState {
	s := &HostState{
		clock:      realClock{},
		policy:     DefaultDurationPolicy(),
		strategy:   fixedStrategy(DefaultExitDuration),
		exitBuffer: ExtraDelayForNewBanner,
		log:        logger.Named("infobar"),
		visibility: model.VisibilityHidden,
		direction:  model.DirectionTop,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Show requests that data be displayed for duration.
//
// Timed banners are queued and shown one at a time in FIFO order. An
// indefinite banner replaces nothing: it is shown immediately if no banner is
// visible and dropped otherwise. While an indefinite banner is active, timed
// requests are dropped. accepted reports whether the request was queued or
// displayed; err is returned only for misuse.
func (s *HostState) Show(data model.BannerData, duration model.Duration) (accepted bool, err error) {
	if err := data.Validate(); err != nil {
		return false, fmt.Errorf("show banner: %w", err)
	}
	if _, err := model.ParseDuration(string(duration)); err != nil {
		return false, fmt.Errorf("show banner: %w", err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, ErrClosed
	}

	sess := session{id: uuid.New(), data: data, duration: duration}

	if duration.IsIndefinite() {
		if s.visibility.IsVisible() {
			s.mu.Unlock()
			s.log.Debug("Dropped indefinite banner, another banner is visible",
				zap.String("title", data.GetDisplayTitle()))
			return false, nil
		}
		s.current = &sess
		s.infinite = true
		// An indefinite banner chained from a dismiss callback keeps the
		// channel the drain loop may already be waiting on.
		if s.infiniteCleared == nil {
			s.infiniteCleared = make(chan struct{})
		}
		s.visibility = model.VisibilityVisible
		snap, cb := s.snapshotLocked()
		s.mu.Unlock()

		s.log.Debug("Showing indefinite banner",
			zap.String("session", sess.id.String()),
			zap.String("title", data.GetDisplayTitle()))
		notify(cb, snap)
		return true, nil
	}

	if s.infinite {
		s.mu.Unlock()
		s.log.Debug("Dropped timed banner, indefinite banner is active",
			zap.String("title", data.GetDisplayTitle()))
		return false, nil
	}

	s.queue = append(s.queue, sess)
	start := !s.draining
	if start {
		s.draining = true
	}
	snap, cb := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Debug("Queued banner",
		zap.String("session", sess.id.String()),
		zap.String("duration", duration.String()),
		zap.Int("pending", snap.Pending))

	if start {
		go s.drain()
	}
	notify(cb, snap)
	return true, nil
}

// Dismiss hides the current banner. It is a no-op when nothing is visible.
func (s *HostState) Dismiss() {
	s.hide(uuid.Nil)
}

// SetOnDismiss registers the callback fired on every Visible to Hidden
// transition. A later registration replaces an earlier one; nil clears it.
func (s *HostState) SetOnDismiss(cb func()) {
	s.mu.Lock()
	s.onDismiss = cb
	s.mu.Unlock()
}

// SetOnChange registers the listener notified after every state change
func (s *HostState) SetOnChange(cb func(Snapshot)) {
	s.mu.Lock()
	s.onChange = cb
	s.mu.Unlock()
}

// SetStrategy changes the transition used to space consecutive banners
func (s *HostState) SetStrategy(st Strategy) {
	if st == nil {
		return
	}
	s.mu.Lock()
	s.strategy = st
	s.mu.Unlock()
}

// IsVisible returns true while the current banner is on screen
func (s *HostState) IsVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibility.IsVisible()
}

// IsInfinite returns true while an indefinite banner is active
func (s *HostState) IsInfinite() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.infinite
}

// IsDraining returns true while the queue loop is running
func (s *HostState) IsDraining() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draining
}

// Visibility returns the current visibility
func (s *HostState) Visibility() model.VisibilityState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibility
}

// Current returns the last banner shown. It stays set after hiding so the
// exit transition can still render it.
func (s *HostState) Current() (model.BannerData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.BannerData{}, false
	}
	return s.current.data, true
}

// Pending returns the number of queued timed banners
func (s *HostState) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Snapshot returns a consistent copy of the state
func (s *HostState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, _ := s.snapshotLocked()
	return snap
}

// Direction returns the edge banners enter from
func (s *HostState) Direction() model.Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.direction
}

// SetDirection is called by the host when it is configured
func (s *HostState) SetDirection(d model.Direction) {
	s.mu.Lock()
	s.direction = d
	s.mu.Unlock()
}

// SetOfflineBanner replaces the payload of the offline overlay
func (s *HostState) SetOfflineBanner(data model.BannerData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("set offline banner: %w", err)
	}
	data.Style = model.StyleOffline
	s.mu.Lock()
	s.offline = &data
	snap, cb := s.snapshotLocked()
	s.mu.Unlock()
	notify(cb, snap)
	return nil
}

// OfflineBanner returns the custom offline payload, if one was set
func (s *HostState) OfflineBanner() (model.BannerData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offline == nil {
		return model.BannerData{}, false
	}
	return *s.offline, true
}

// AttachTracker connects the scroll tracker that SetScrollThreshold forwards to
func (s *HostState) AttachTracker(t ThresholdSetter) {
	s.mu.Lock()
	s.tracker = t
	threshold := s.scrollThreshold
	s.mu.Unlock()
	if t != nil && threshold > 0 {
		t.SetThreshold(threshold)
	}
}

// SetScrollThreshold changes the scroll distance that commits a direction
func (s *HostState) SetScrollThreshold(threshold int) {
	if threshold <= 0 {
		return
	}
	s.mu.Lock()
	s.scrollThreshold = threshold
	t := s.tracker
	s.mu.Unlock()
	if t != nil {
		t.SetThreshold(threshold)
	}
}

// ScrollThreshold returns the last threshold set, or 0 if none was
func (s *HostState) ScrollThreshold() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrollThreshold
}

// Close stops the drain loop and rejects further requests. It is idempotent.
func (s *HostState) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.queue = nil
	close(s.done)
	s.log.Debug("Host state closed")
}

// drain shows queued banners one at a time until the queue is empty
func (s *HostState) drain() {
	for {
		s.mu.Lock()
		if s.closed {
			s.draining = false
			s.mu.Unlock()
			return
		}
		if s.infinite {
			wait := s.infiniteCleared
			s.mu.Unlock()
			select {
			case <-wait:
				continue
			case <-s.done:
				s.stopDraining()
				return
			}
		}
		if len(s.queue) == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}

		sess := s.queue[0]
		s.queue = s.queue[1:]
		s.current = &sess
		s.visibility = model.VisibilityVisible
		snap, cb := s.snapshotLocked()
		s.mu.Unlock()

		s.log.Debug("Showing banner",
			zap.String("session", sess.id.String()),
			zap.String("title", sess.data.GetDisplayTitle()))
		notify(cb, snap)

		budget, _ := s.policy.Budget(sess.duration)
		if !s.sleep(budget) {
			s.stopDraining()
			return
		}
		s.hide(sess.id)

		if !s.sleep(s.exitDelay()) {
			s.stopDraining()
			return
		}
	}
}

// hide moves the state to Hidden. A non-nil id hides only that session, so a
// stale timer never hides a banner it did not show.
func (s *HostState) hide(id uuid.UUID) {
	s.mu.Lock()
	if s.closed || !s.visibility.IsVisible() || s.current == nil {
		s.mu.Unlock()
		return
	}
	if id != uuid.Nil && s.current.id != id {
		s.mu.Unlock()
		return
	}
	hidden := s.current.id
	s.visibility = model.VisibilityHidden
	dismissCb := s.onDismiss
	snap, cb := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Debug("Hiding banner", zap.String("session", hidden.String()))
	notify(cb, snap)
	if dismissCb != nil {
		dismissCb()
	}

	s.mu.Lock()
	if !s.infinite || s.visibility.IsVisible() || s.current == nil || s.current.id != hidden {
		s.mu.Unlock()
		return
	}
	s.infinite = false
	close(s.infiniteCleared)
	s.infiniteCleared = nil
	snap, cb = s.snapshotLocked()
	s.mu.Unlock()
	notify(cb, snap)
}

func (s *HostState) exitDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strategy.ExitDuration() + s.exitBuffer
}

func (s *HostState) sleep(d time.Duration) bool {
	if d <= 0 {
		select {
		case <-s.done:
			return false
		default:
			return true
		}
	}
	select {
	case <-s.clock.After(d):
		return true
	case <-s.done:
		return false
	}
}

func (s *HostState) stopDraining() {
	s.mu.Lock()
	s.draining = false
	s.mu.Unlock()
}

func (s *HostState) snapshotLocked() (Snapshot, func(Snapshot)) {
	snap := Snapshot{
		Visibility: s.visibility,
		Infinite:   s.infinite,
		Pending:    len(s.queue),
	}
	if s.current != nil {
		data := s.current.data
		snap.Current = &data
		snap.SessionID = s.current.id
	}
	return snap, s.onChange
}

func notify(cb func(Snapshot), snap Snapshot) {
	if cb != nil {
		cb(snap)
	}
}
