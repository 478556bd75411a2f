package offline

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Probe answers whether the backend is reachable right now.
type Probe func(ctx context.Context) bool

// HTTPProbe reports reachability by issuing a HEAD request against the
// backend base URL. Any response at all counts as online; only transport
// failure counts as offline.
func HTTPProbe(baseURL string, timeout time.Duration) Probe {
	client := &http.Client{Timeout: timeout}
	return func(ctx context.Context) bool {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, baseURL, nil)
		if err != nil {
			return false
		}
		resp, err := client.Do(req)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	}
}

// Monitor tracks backend reachability and fires callbacks on every
// transition. Transitions are reported immediately, without debounce, so
// a flapping link produces a callback per flap.
type Monitor struct {
	probe     Probe
	interval  time.Duration
	onOnline  []func()
	onOffline []func()

	mu     sync.RWMutex
	online bool
	known  bool
}

func NewMonitor(probe Probe, interval time.Duration) *Monitor {
	return &Monitor{probe: probe, interval: interval}
}

// OnOnline registers a callback fired on each offline-to-online
// transition. Register before calling Watch.
func (m *Monitor) OnOnline(fn func()) {
	m.onOnline = append(m.onOnline, fn)
}

// OnOffline registers a callback fired on each online-to-offline
// transition. Register before calling Watch.
func (m *Monitor) OnOffline(fn func()) {
	m.onOffline = append(m.onOffline, fn)
}

// Online returns the last observed state. Before the first poll it
// reports false.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Poll probes once, updates the state and fires transition callbacks.
// The very first poll fires a callback for whichever state it lands in.
func (m *Monitor) Poll(ctx context.Context) bool {
	online := m.probe(ctx)

	m.mu.Lock()
	changed := !m.known || online != m.online
	m.online = online
	m.known = true
	m.mu.Unlock()

	if changed {
		if online {
			for _, fn := range m.onOnline {
				fn()
			}
		} else {
			for _, fn := range m.onOffline {
				fn()
			}
		}
	}
	return online
}

// Watch polls at the configured interval until ctx is cancelled.
func (m *Monitor) Watch(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Poll(ctx)
		}
	}
}
