package authcore

import "sync/atomic"

// MetricID identifies a specific counter in the in-process metrics system.
type MetricID uint16

const (
	// MetricLoginSuccess counts successful logins.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts rejected logins (any failure kind).
	MetricLoginFailure
	// MetricLoginRateLimited counts throttled login attempts.
	MetricLoginRateLimited
	// MetricSessionCreated counts session records written on login.
	MetricSessionCreated
	// MetricSessionInvalidated counts session records removed on logout.
	MetricSessionInvalidated
	// MetricLogout counts logout calls that completed.
	MetricLogout
	// MetricAuthorizeSuccess counts guard checks that resolved an identity.
	MetricAuthorizeSuccess
	// MetricAuthorizeDenied counts guard checks rejected as unauthorized.
	MetricAuthorizeDenied
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds lock-free counters for engine operations. When disabled,
// every operation is a no-op.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

func newMetrics(cfg MetricsConfig) *Metrics {
	if !cfg.Enabled {
		return nil
	}
	return &Metrics{enabled: true}
}

// Inc atomically increments the counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Get returns the current value of the counter.
func (m *Metrics) Get(id MetricID) uint64 {
	if m == nil || !m.enabled || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// MetricsSnapshot is a point-in-time deep copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot returns a consistent-enough copy for reporting; individual loads
// are atomic but the map is not a single atomic view.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, int(metricIDCount))}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snap.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return snap
}
