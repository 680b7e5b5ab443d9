package app

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics tracks editor activity for the debug log.
// Counters are atomic so a snapshot can be taken from any goroutine.
type Metrics struct {
	commands     atomic.Uint64
	unmapped     atomic.Uint64
	saves        atomic.Uint64
	saveFailures atomic.Uint64

	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64
	renderMaxNs   atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordCommand counts an executed command.
func (m *Metrics) RecordCommand() {
	m.commands.Add(1)
}

// RecordUnmapped counts a key event with no command.
func (m *Metrics) RecordUnmapped() {
	m.unmapped.Add(1)
}

// RecordSave counts a save attempt.
func (m *Metrics) RecordSave(err error) {
	if err != nil {
		m.saveFailures.Add(1)
		return
	}
	m.saves.Add(1)
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.renderCount.Add(1)
	m.renderTotalNs.Add(ns)

	// Update max (atomic compare-and-swap loop)
	for {
		old := m.renderMaxNs.Load()
		if ns <= old {
			break
		}
		if m.renderMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Commands     uint64
	Unmapped     uint64
	Saves        uint64
	SaveFailures uint64
	Renders      uint64
	RenderAvg    time.Duration
	RenderMax    time.Duration
	Uptime       time.Duration
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Commands:     m.commands.Load(),
		Unmapped:     m.unmapped.Load(),
		Saves:        m.saves.Load(),
		SaveFailures: m.saveFailures.Load(),
		Renders:      m.renderCount.Load(),
		RenderMax:    time.Duration(m.renderMaxNs.Load()),
		Uptime:       time.Since(m.startTime),
	}
	if s.Renders > 0 {
		s.RenderAvg = time.Duration(m.renderTotalNs.Load() / int64(s.Renders))
	}
	return s
}

// String formats the snapshot for a log line.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("commands=%d unmapped=%d saves=%d save_failures=%d renders=%d render_avg=%s render_max=%s uptime=%s",
		s.Commands, s.Unmapped, s.Saves, s.SaveFailures, s.Renders, s.RenderAvg, s.RenderMax, s.Uptime.Round(time.Millisecond))
}
