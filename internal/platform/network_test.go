package platform

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/infobar/internal/connectivity"
)

type fakeInterfaces struct {
	mu     sync.Mutex
	ifaces []Interface
	err    error
}

func (f *fakeInterfaces) set(ifaces ...Interface) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ifaces = ifaces
}

func (f *fakeInterfaces) list() ([]Interface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]Interface(nil), f.ifaces...), nil
}

type eventLog struct {
	mu     sync.Mutex
	events []connectivity.Event
}

func (l *eventLog) add(ev connectivity.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) snapshot() []connectivity.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]connectivity.Event(nil), l.events...)
}

var (
	wifi     = Interface{Name: "wlan0", Up: true, Addrs: 1}
	ethernet = Interface{Name: "eth0", Up: true, Addrs: 2}
	loopback = Interface{Name: "lo", Up: true, Loopback: true, Addrs: 1}
	down     = Interface{Name: "eth1", Up: false, Addrs: 1}
)

func TestInterface_Usable(t *testing.T) {
	tests := []struct {
		iface    Interface
		expected bool
	}{
		{wifi, true},
		{loopback, false},
		{down, false},
		{Interface{Name: "tun0", Up: true}, false},
	}

	for _, test := range tests {
		if got := test.iface.Usable(); got != test.expected {
			t.Errorf("Usable(%s) = %v, expected %v", test.iface.Name, got, test.expected)
		}
	}
}

func TestInterfaceWatcher_Probe(t *testing.T) {
	fake := &fakeInterfaces{}
	watcher := NewInterfaceWatcher(fake.list, time.Millisecond)

	fake.set(loopback, down)
	online, err := watcher.Probe(context.Background())
	require.NoError(t, err)
	assert.False(t, online)

	fake.set(loopback, wifi)
	online, err = watcher.Probe(context.Background())
	require.NoError(t, err)
	assert.True(t, online)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = watcher.Probe(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInterfaceWatcher_RegisterEmitsDiffs(t *testing.T) {
	fake := &fakeInterfaces{}
	fake.set(wifi, loopback)
	watcher := NewInterfaceWatcher(fake.list, 5*time.Millisecond)

	events := &eventLog{}
	unregister, err := watcher.Register(events.add)
	require.NoError(t, err)
	defer unregister()

	require.Eventually(t, func() bool { return len(events.snapshot()) == 1 }, time.Second, time.Millisecond)

	fake.set(ethernet, loopback)
	require.Eventually(t, func() bool { return len(events.snapshot()) == 3 }, time.Second, time.Millisecond)

	assert.Equal(t, []connectivity.Event{
		{Handle: "wlan0", Available: true},
		{Handle: "eth0", Available: true},
		{Handle: "wlan0", Available: false},
	}, events.snapshot())
}

func TestInterfaceWatcher_UnregisterStopsPolling(t *testing.T) {
	fake := &fakeInterfaces{}
	fake.set(wifi)
	watcher := NewInterfaceWatcher(fake.list, 2*time.Millisecond)

	events := &eventLog{}
	unregister, err := watcher.Register(events.add)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(events.snapshot()) == 1 }, time.Second, time.Millisecond)

	unregister()
	unregister()

	fake.set()
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, events.snapshot(), 1)
}

func TestInterfaceWatcher_RegisterUnavailable(t *testing.T) {
	fake := &fakeInterfaces{err: errors.New("no netlink")}
	watcher := NewInterfaceWatcher(fake.list, time.Millisecond)

	unregister, err := watcher.Register(func(connectivity.Event) {})
	assert.ErrorIs(t, err, connectivity.ErrUnavailable)
	assert.Nil(t, unregister)
}

func TestInterfaceWatcher_WithMonitor(t *testing.T) {
	fake := &fakeInterfaces{}
	fake.set(wifi)
	monitor := connectivity.NewMonitor(NewInterfaceWatcher(fake.list, 2*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := monitor.Subscribe(ctx)

	assert.True(t, <-ch)

	fake.set(loopback)
	select {
	case online := <-ch:
		assert.False(t, online)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for offline")
	}
}
