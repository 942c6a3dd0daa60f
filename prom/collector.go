// Package prom adapts a rosterdb.MetricsCollector to Prometheus.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/rosterdb"
)

// Compile time check to ensure Collector satisfies the interface.
var _ rosterdb.MetricsCollector = (*Collector)(nil)

// Collector implements rosterdb.MetricsCollector backed by Prometheus
// metrics. Register it on a store with rosterdb.WithMetricsCollector.
type Collector struct {
	inserts        prometheus.Counter
	insertErrors   prometheus.Counter
	lookups        prometheus.Counter
	lookupMisses   prometheus.Counter
	lookupDuration prometheus.Histogram
	sorts          prometheus.Counter
	sortDuration   prometheus.Histogram
	topKs          prometheus.Counter
	topKDuration   prometheus.Histogram
	removes        prometheus.Counter
	removeMisses   prometheus.Counter
}

// New creates a Collector and registers its metrics on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterdb_inserts_total",
			Help: "Successful record inserts.",
		}),
		insertErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterdb_insert_errors_total",
			Help: "Rejected record inserts.",
		}),
		lookups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterdb_lookups_total",
			Help: "Identity lookups, hits and misses alike.",
		}),
		lookupMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterdb_lookup_misses_total",
			Help: "Identity lookups that found no record.",
		}),
		lookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterdb_lookup_duration_seconds",
			Help:    "Wall-clock duration of identity lookups.",
			Buckets: prometheus.ExponentialBuckets(1e-8, 10, 8),
		}),
		sorts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterdb_sorts_total",
			Help: "Full GPA sorts.",
		}),
		sortDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterdb_sort_duration_seconds",
			Help:    "Wall-clock duration of full GPA sorts.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
		}),
		topKs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterdb_topk_total",
			Help: "Top-k selections.",
		}),
		topKDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterdb_topk_duration_seconds",
			Help:    "Wall-clock duration of top-k selections.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
		}),
		removes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterdb_removes_total",
			Help: "Remove attempts.",
		}),
		removeMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterdb_remove_misses_total",
			Help: "Remove attempts on absent IDs.",
		}),
	}

	for _, m := range []prometheus.Collector{
		c.inserts, c.insertErrors,
		c.lookups, c.lookupMisses, c.lookupDuration,
		c.sorts, c.sortDuration,
		c.topKs, c.topKDuration,
		c.removes, c.removeMisses,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordInsert implements rosterdb.MetricsCollector.
func (c *Collector) RecordInsert(duration time.Duration, err error) {
	if err != nil {
		c.insertErrors.Inc()
		return
	}
	c.inserts.Inc()
}

// RecordLookup implements rosterdb.MetricsCollector.
func (c *Collector) RecordLookup(duration time.Duration, found bool) {
	c.lookups.Inc()
	c.lookupDuration.Observe(duration.Seconds())
	if !found {
		c.lookupMisses.Inc()
	}
}

// RecordSort implements rosterdb.MetricsCollector.
func (c *Collector) RecordSort(duration time.Duration, n int) {
	c.sorts.Inc()
	c.sortDuration.Observe(duration.Seconds())
}

// RecordTopK implements rosterdb.MetricsCollector.
func (c *Collector) RecordTopK(k int, duration time.Duration) {
	c.topKs.Inc()
	c.topKDuration.Observe(duration.Seconds())
}

// RecordRemove implements rosterdb.MetricsCollector.
func (c *Collector) RecordRemove(removed bool) {
	c.removes.Inc()
	if !removed {
		c.removeMisses.Inc()
	}
}
