// Package connectivity turns platform network events into a deduplicated
// online/offline signal.
package connectivity

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/infobar/internal/logger"
)

var ErrUnavailable = errors.New("connectivity service unavailable")

// Event reports one network handle becoming available or being lost
type Event struct {
	Handle    string
	Available bool
}

// Platform is the operating system side of connectivity monitoring
type Platform interface {
	// Probe reports whether any usable network is currently up
	Probe(ctx context.Context) (bool, error)

	// Register starts delivering events until unregister is called.
	// It returns ErrUnavailable when the service is missing.
	Register(onEvent func(Event)) (unregister func(), err error)
}

type subscriber struct {
	ch   chan bool
	sent bool
	last bool
}

// deliver sends v unless it repeats the last value; a full buffer is replaced
// by the newer value. Called with Monitor.mu held.
func (s *subscriber) deliver(v bool, force bool) {
	if s.sent && s.last == v && !force {
		return
	}
	s.sent, s.last = true, v

	select {
	case s.ch <- v:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- v:
	default:
	}
}

// Monitor shares one platform listener between all subscribers. The listener
// is registered with the first subscriber and released with the last.
type Monitor struct {
	platform Platform
	log      *zap.Logger

	// listenerMu serializes acquire and release of the platform listener
	listenerMu sync.Mutex
	unregister func()

	mu          sync.Mutex
	subscribers map[uuid.UUID]*subscriber
	networks    map[string]struct{}
	online      bool
	// generation identifies the live listener; events from a released one are dropped
	generation uint64
}

// NewMonitor creates a monitor over platform. A nil platform is treated as unavailable.
func NewMonitor(platform Platform) *Monitor {
	return &Monitor{
		platform:    platform,
		log:         logger.Named("connectivity"),
		subscribers: make(map[uuid.UUID]*subscriber),
		networks:    make(map[string]struct{}),
	}
}

// Subscribe returns a channel of online states. The first value is the
// current probe result; later values are changes only. The channel is closed
// when ctx is done, or right after a single false if the platform is unavailable.
func (m *Monitor) Subscribe(ctx context.Context) <-chan bool {
	sub := &subscriber{ch: make(chan bool, 1)}

	if m.platform == nil {
		m.log.Warn("No connectivity platform, reporting offline")
		sub.ch <- false
		close(sub.ch)
		return sub.ch
	}

	id := uuid.New()

	m.listenerMu.Lock()
	m.mu.Lock()
	first := len(m.subscribers) == 0
	m.subscribers[id] = sub
	count := len(m.subscribers)
	if first {
		m.generation++
	}
	gen := m.generation
	m.mu.Unlock()

	if first {
		unregister, err := m.platform.Register(func(ev Event) { m.handle(gen, ev) })
		if err != nil {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
			m.listenerMu.Unlock()

			m.log.Warn("Connectivity listener unavailable, reporting offline", zap.Error(err))
			sub.ch <- false
			close(sub.ch)
			return sub.ch
		}
		m.unregister = unregister
		m.log.Debug("Connectivity listener registered")
	}
	m.listenerMu.Unlock()

	m.log.Debug("Connectivity subscriber added",
		zap.String("subscriber", id.String()),
		zap.Int("subscribers", count))

	go func() {
		<-ctx.Done()
		m.unsubscribe(id)
	}()

	online, err := m.platform.Probe(ctx)
	if err != nil {
		m.log.Debug("Connectivity probe failed", zap.Error(err))
		online = false
	}

	m.mu.Lock()
	if s, ok := m.subscribers[id]; ok {
		s.deliver(online, true)
	}
	m.mu.Unlock()

	return sub.ch
}

// Online returns the state derived from the current network set
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribers returns the number of active subscribers
func (m *Monitor) Subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscribers)
}

func (m *Monitor) handle(gen uint64, ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation || len(m.subscribers) == 0 {
		return
	}

	if ev.Available {
		m.networks[ev.Handle] = struct{}{}
		m.online = true
	} else {
		delete(m.networks, ev.Handle)
		m.online = len(m.networks) > 0
	}

	m.log.Debug("Network event",
		zap.String("handle", ev.Handle),
		zap.Bool("available", ev.Available),
		zap.Bool("online", m.online))

	for _, sub := range m.subscribers {
		sub.deliver(m.online, false)
	}
}

func (m *Monitor) unsubscribe(id uuid.UUID) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()

	m.mu.Lock()
	sub, ok := m.subscribers[id]
	if !ok {
		m.mu.Unlock()
		return
	}
	delete(m.subscribers, id)
	close(sub.ch)
	last := len(m.subscribers) == 0
	var unregister func()
	if last {
		unregister = m.unregister
		m.unregister = nil
		m.generation++
		m.networks = make(map[string]struct{})
		m.online = false
	}
	m.mu.Unlock()

	if unregister != nil {
		unregister()
		m.log.Debug("Connectivity listener released")
	}
}
