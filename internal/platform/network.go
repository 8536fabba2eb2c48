package platform

import (
	"context"
	"fmt"
	"net"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/infobar/internal/connectivity"
	"github.com/ytget/infobar/internal/logger"
)

// DefaultProbeInterval is how often network interfaces are polled
const DefaultProbeInterval = 2 * time.Second

// Interface is the part of a network interface used to decide availability
type Interface struct {
	Name     string
	Up       bool
	Loopback bool
	Addrs    int
}

// Usable returns true for an up, non-loopback interface with an address
func (i Interface) Usable() bool {
	return i.Up && !i.Loopback && i.Addrs > 0
}

// InterfaceLister returns the current interfaces
type InterfaceLister func() ([]Interface, error)

// SystemInterfaces lists interfaces through the operating system
func SystemInterfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}

	result := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		result = append(result, Interface{
			Name:     iface.Name,
			Up:       iface.Flags&net.FlagUp != 0,
			Loopback: iface.Flags&net.FlagLoopback != 0,
			Addrs:    len(addrs),
		})
	}
	return result, nil
}

// InterfaceWatcher implements connectivity.Platform by polling network
// interfaces and reporting each usable interface as a network handle.
type InterfaceWatcher struct {
	list     InterfaceLister
	interval time.Duration
	log      *zap.Logger
}

// NewInterfaceWatcher creates a watcher. A nil lister uses SystemInterfaces.
func NewInterfaceWatcher(list InterfaceLister, interval time.Duration) *InterfaceWatcher {
	if list == nil {
		list = SystemInterfaces
	}
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &InterfaceWatcher{
		list:     list,
		interval: interval,
		log:      logger.Named("platform.network"),
	}
}

// Probe reports whether any usable interface exists right now
func (w *InterfaceWatcher) Probe(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	usable, err := w.usable()
	if err != nil {
		return false, err
	}
	return len(usable) > 0, nil
}

// Register polls until unregister is called. Interfaces present on the first
// poll are reported as available, like a fresh platform callback would.
func (w *InterfaceWatcher) Register(onEvent func(connectivity.Event)) (func(), error) {
	if _, err := w.list(); err != nil {
		return nil, fmt.Errorf("%w: %v", connectivity.ErrUnavailable, err)
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		known := map[string]bool{}
		for {
			w.poll(known, onEvent)
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
		})
	}, nil
}

func (w *InterfaceWatcher) poll(known map[string]bool, onEvent func(connectivity.Event)) {
	usable, err := w.usable()
	if err != nil {
		w.log.Debug("Interface poll failed", zap.Error(err))
		return
	}

	current := make(map[string]bool, len(usable))
	for _, name := range usable {
		current[name] = true
		if !known[name] {
			known[name] = true
			onEvent(connectivity.Event{Handle: name, Available: true})
		}
	}

	lost := make([]string, 0)
	for name := range known {
		if !current[name] {
			lost = append(lost, name)
		}
	}
	sort.Strings(lost)
	for _, name := range lost {
		delete(known, name)
		onEvent(connectivity.Event{Handle: name, Available: false})
	}
}

func (w *InterfaceWatcher) usable() ([]string, error) {
	ifaces, err := w.list()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		if iface.Usable() {
			names = append(names, iface.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}
