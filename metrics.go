package fragsearch

import (
	"sync/atomic"
	"time"
)

// MetricsCollector collects operational metrics for an Index. Implement
// this to integrate with monitoring systems; see metrics/prometheus for a
// ready-made Prometheus-backed implementation.
type MetricsCollector interface {
	// RecordRegister is called after each AddItem/AddItemKeywords call.
	RecordRegister(duration time.Duration, keywordCount int)

	// RecordDeregister is called after each RemoveItem call.
	RecordDeregister(duration time.Duration, removed bool)

	// RecordFind is called after each Find/FindItems/FindAugmented call.
	RecordFind(duration time.Duration, queryKeywordCount, resultsFound int)
}

// NoopMetricsCollector discards every recorded metric.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRegister(time.Duration, int)    {}
func (NoopMetricsCollector) RecordDeregister(time.Duration, bool) {}
func (NoopMetricsCollector) RecordFind(time.Duration, int, int)   {}

// BasicMetricsCollector provides simple in-memory metrics collection
// without any external dependency, useful for debugging.
type BasicMetricsCollector struct {
	RegisterCount      atomic.Int64
	RegisterTotalNanos atomic.Int64
	DeregisterCount    atomic.Int64
	DeregisterMisses   atomic.Int64
	FindCount          atomic.Int64
	FindTotalNanos     atomic.Int64
	FindEmptyCount     atomic.Int64
}

// RecordRegister implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRegister(duration time.Duration, keywordCount int) {
	b.RegisterCount.Add(1)
	b.RegisterTotalNanos.Add(duration.Nanoseconds())
}

// RecordDeregister implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDeregister(duration time.Duration, removed bool) {
	b.DeregisterCount.Add(1)
	if !removed {
		b.DeregisterMisses.Add(1)
	}
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(duration time.Duration, queryKeywordCount, resultsFound int) {
	b.FindCount.Add(1)
	b.FindTotalNanos.Add(duration.Nanoseconds())
	if resultsFound == 0 {
		b.FindEmptyCount.Add(1)
	}
}

// Snapshot returns a point-in-time copy of the collected counters.
func (b *BasicMetricsCollector) Snapshot() BasicMetricsSnapshot {
	findCount := b.FindCount.Load()
	registerCount := b.RegisterCount.Load()

	snap := BasicMetricsSnapshot{
		RegisterCount:    registerCount,
		DeregisterCount:  b.DeregisterCount.Load(),
		DeregisterMisses: b.DeregisterMisses.Load(),
		FindCount:        findCount,
		FindEmptyCount:   b.FindEmptyCount.Load(),
	}
	if registerCount > 0 {
		snap.RegisterAvgNanos = b.RegisterTotalNanos.Load() / registerCount
	}
	if findCount > 0 {
		snap.FindAvgNanos = b.FindTotalNanos.Load() / findCount
	}
	return snap
}

// BasicMetricsSnapshot is a snapshot of BasicMetricsCollector state.
type BasicMetricsSnapshot struct {
	RegisterCount    int64
	RegisterAvgNanos int64
	DeregisterCount  int64
	DeregisterMisses int64
	FindCount        int64
	FindAvgNanos     int64
	FindEmptyCount   int64
}
