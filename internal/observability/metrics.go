package observability

import (
	"sync"
	"time"
)

// RouteStats accumulates counters for one path/method pair.
type RouteStats struct {
	Requests    int64            `json:"requests"`
	Errors      map[string]int64 `json:"errors,omitempty"`
	TotalMillis int64            `json:"total_ms"`
}

// Metrics provides basic in-memory request counters, exposed through the
// health endpoints.
type Metrics struct {
	mu     sync.Mutex
	routes map[string]*RouteStats
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{routes: make(map[string]*RouteStats)}
}

// RecordRequest counts a completed request.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.route(path, method)
	stats.Requests++
	stats.TotalMillis += duration.Milliseconds()
}

// RecordError counts a request that failed with the given error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.route(path, method)
	if stats.Errors == nil {
		stats.Errors = make(map[string]int64)
	}
	stats.Errors[code]++
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() map[string]RouteStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]RouteStats, len(m.routes))
	for key, stats := range m.routes {
		copied := *stats
		if stats.Errors != nil {
			copied.Errors = make(map[string]int64, len(stats.Errors))
			for code, n := range stats.Errors {
				copied.Errors[code] = n
			}
		}
		out[key] = copied
	}
	return out
}

func (m *Metrics) route(path, method string) *RouteStats {
	key := method + " " + path
	stats, ok := m.routes[key]
	if !ok {
		stats = &RouteStats{}
		m.routes[key] = stats
	}
	return stats
}
