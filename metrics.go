package rosterdb

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    insertCounter   prometheus.Counter
//	    lookupHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordInsert(duration time.Duration, err error) {
//	    p.insertCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordInsert is called after each insert attempt.
	// duration is the time taken, err is nil if the record was stored.
	RecordInsert(duration time.Duration, err error)

	// RecordLookup is called after each identity lookup.
	// found reports whether the ID was live.
	RecordLookup(duration time.Duration, found bool)

	// RecordSort is called after each full GPA sort.
	// n is the number of records ordered.
	RecordSort(duration time.Duration, n int)

	// RecordTopK is called after each top-k selection.
	// k is the number of records requested, duration is the time taken.
	RecordTopK(k int, duration time.Duration)

	// RecordRemove is called after each remove attempt.
	RecordRemove(removed bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error) {}
func (NoopMetricsCollector) RecordLookup(time.Duration, bool)  {}
func (NoopMetricsCollector) RecordSort(time.Duration, int)     {}
func (NoopMetricsCollector) RecordTopK(int, time.Duration)     {}
func (NoopMetricsCollector) RecordRemove(bool)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	LookupCount      atomic.Int64
	LookupMisses     atomic.Int64
	LookupTotalNanos atomic.Int64
	SortCount        atomic.Int64
	SortTotalNanos   atomic.Int64
	TopKCount        atomic.Int64
	TopKTotalNanos   atomic.Int64
	RemoveCount      atomic.Int64
	RemoveMisses     atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, found bool) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.LookupMisses.Add(1)
	}
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(duration time.Duration, n int) {
	b.SortCount.Add(1)
	b.SortTotalNanos.Add(duration.Nanoseconds())
}

// RecordTopK implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTopK(k int, duration time.Duration) {
	b.TopKCount.Add(1)
	b.TopKTotalNanos.Add(duration.Nanoseconds())
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(removed bool) {
	b.RemoveCount.Add(1)
	if !removed {
		b.RemoveMisses.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	InsertCount    int64
	InsertErrors   int64
	InsertAvgNanos int64
	LookupCount    int64
	LookupMisses   int64
	LookupAvgNanos int64
	SortCount      int64
	TopKCount      int64
	RemoveCount    int64
	RemoveMisses   int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:    b.InsertCount.Load(),
		InsertErrors:   b.InsertErrors.Load(),
		InsertAvgNanos: avgNanos(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		LookupCount:    b.LookupCount.Load(),
		LookupMisses:   b.LookupMisses.Load(),
		LookupAvgNanos: avgNanos(b.LookupTotalNanos.Load(), b.LookupCount.Load()),
		SortCount:      b.SortCount.Load(),
		TopKCount:      b.TopKCount.Load(),
		RemoveCount:    b.RemoveCount.Load(),
		RemoveMisses:   b.RemoveMisses.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}
