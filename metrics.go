package soilauth

import "sync/atomic"

// MetricID defines a public type used by soilauth APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricLoginSuccess is an exported constant or variable used by the session engine.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure is an exported constant or variable used by the session engine.
	MetricLoginFailure
	// MetricSignUpSuccess is an exported constant or variable used by the session engine.
	MetricSignUpSuccess
	// MetricSignUpFailure is an exported constant or variable used by the session engine.
	MetricSignUpFailure
	// MetricLogout is an exported constant or variable used by the session engine.
	MetricLogout
	// MetricCheckAuthAuthenticated is an exported constant or variable used by the session engine.
	MetricCheckAuthAuthenticated
	// MetricCheckAuthUnauthenticated is an exported constant or variable used by the session engine.
	MetricCheckAuthUnauthenticated
	// MetricResetRequested is an exported constant or variable used by the session engine.
	MetricResetRequested
	// MetricResetConfirmed is an exported constant or variable used by the session engine.
	MetricResetConfirmed
	// MetricResetFailed is an exported constant or variable used by the session engine.
	MetricResetFailed
	// MetricVerificationRequested is an exported constant or variable used by the session engine.
	MetricVerificationRequested
	// MetricVerificationConfirmed is an exported constant or variable used by the session engine.
	MetricVerificationConfirmed
	// MetricVerificationFailed is an exported constant or variable used by the session engine.
	MetricVerificationFailed
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds atomic counters for engine operations. A nil or disabled
// Metrics is a no-op on the write path.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot is a point-in-time deep copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics creates a new [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled: cfg.Enabled,
	}
}

// Enabled reports whether the instance records increments.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc atomically increments the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value reads the current count for id.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot returns a consistent-enough copy of all counters. Counters are
// read individually; a snapshot taken during concurrent increments may mix
// before/after values across IDs.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}

	s := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, int(metricIDCount)),
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return s
}
