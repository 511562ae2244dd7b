package observability

import (
	"sync/atomic"
	"time"
)

// RunMetrics counts host-event runs in process. Safe for concurrent use.
type RunMetrics struct {
	planned    atomic.Uint64
	dispatched atomic.Uint64
	failed     atomic.Uint64
	invited    atomic.Uint64

	durationCount atomic.Uint64
	durationTotal atomic.Int64
	durationMax   atomic.Int64
}

func NewRunMetrics() *RunMetrics {
	return &RunMetrics{}
}

func (m *RunMetrics) IncPlanned() {
	m.planned.Add(1)
}

func (m *RunMetrics) IncDispatched() {
	m.dispatched.Add(1)
}

func (m *RunMetrics) IncFailed() {
	m.failed.Add(1)
}

// AddInvited records how many partner invitations a dispatched payload carried.
func (m *RunMetrics) AddInvited(n int) {
	if n > 0 {
		m.invited.Add(uint64(n))
	}
}

func (m *RunMetrics) ObserveDuration(d time.Duration) {
	ns := d.Nanoseconds()
	m.durationCount.Add(1)
	m.durationTotal.Add(ns)

	for {
		curr := m.durationMax.Load()
		if ns <= curr {
			return
		}
		if m.durationMax.CompareAndSwap(curr, ns) {
			return
		}
	}
}

// RunMetricsSnapshot is a point-in-time copy of RunMetrics.
// swagger:model RunMetricsSnapshot
type RunMetricsSnapshot struct {
	Planned         uint64        `json:"planned"`
	Dispatched      uint64        `json:"dispatched"`
	Failed          uint64        `json:"failed"`
	Invited         uint64        `json:"invited"`
	AverageDuration time.Duration `json:"average_duration_ns"`
	MaxDuration     time.Duration `json:"max_duration_ns"`
}

func (m *RunMetrics) Snapshot() RunMetricsSnapshot {
	count := m.durationCount.Load()
	var avg time.Duration
	if count > 0 {
		avg = time.Duration(m.durationTotal.Load() / int64(count))
	}
	return RunMetricsSnapshot{
		Planned:         m.planned.Load(),
		Dispatched:      m.dispatched.Load(),
		Failed:          m.failed.Load(),
		Invited:         m.invited.Load(),
		AverageDuration: avg,
		MaxDuration:     time.Duration(m.durationMax.Load()),
	}
}
