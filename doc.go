// Package rosterdb provides an embedded in-memory store for student
// records, keyed by student ID.
//
// The store keeps records in a hash map so identity lookups are O(1),
// produces GPA orderings with a guaranteed O(n log n) comparison sort,
// and selects the top-k students with a k-bounded heap in O(n log k)
// without ordering the remainder.
//
// # Quick Start
//
//	store := rosterdb.New()
//
//	err := store.Insert(rosterdb.Record{ID: 1, Name: "Alice Smith", GPA: 3.5, Major: "Computer Science"})
//	rec, ok := store.Get(1)
//	top := store.TopK(3)
//	stats := store.Stats()
//
// # Observability
//
// Every store tracks an operation-counter block (insert, lookup and
// sort counts plus the wall-clock duration of the most recent lookup,
// sort and top-k selection), returned by value from Stats. An optional
// MetricsCollector receives per-operation callbacks for integration
// with external monitoring systems.
//
// # Concurrency
//
// A Store performs no internal locking and is not safe for concurrent
// use. Callers that share a store across goroutines must serialize all
// operations that mutate records or the counter block; see the Store
// documentation.
package rosterdb
