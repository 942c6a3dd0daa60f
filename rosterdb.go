package rosterdb

import (
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/rosterdb/internal/queue"
)

// Stats is a read-only snapshot of a store's operation counters.
// Counts are monotonically non-decreasing; the Last* durations are
// overwritten on each corresponding operation.
type Stats struct {
	// Records is the number of live records at snapshot time.
	Records int

	// Inserts counts successful inserts.
	Inserts uint64

	// Lookups counts identity lookups, hits and misses alike.
	Lookups uint64

	// Sorts counts full GPA sorts.
	Sorts uint64

	// LastLookup is the wall-clock duration of the most recent
	// identity lookup.
	LastLookup time.Duration

	// LastSort is the wall-clock duration of the most recent full sort.
	LastSort time.Duration

	// LastTopK is the wall-clock duration of the most recent top-k
	// selection.
	LastTopK time.Duration
}

// Store is an in-memory collection of student records keyed by ID.
//
// Orderings are computed on demand, never maintained incrementally: an
// insert is O(1) and SortedByGPA pays its O(n log n) when called.
//
// A Store performs no internal locking and is not safe for concurrent
// use. Callers sharing a store across goroutines must treat the whole
// structure (records plus counters) as a single unit of mutual
// exclusion: Insert and Remove, and every operation that touches the
// counter block (Get, SortedByGPA, TopK), must be serialized.
type Store struct {
	records map[int64]Record
	stats   Stats
	logger  *Logger
	metrics MetricsCollector
	opts    Options
}

// New creates a new empty store.
func New(optFns ...func(o *Options)) *Store {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger()
	}

	metrics := opts.MetricsCollector
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	capacity := opts.Capacity
	if capacity < 0 {
		capacity = 0
	}

	return &Store{
		records: make(map[int64]Record, capacity),
		logger:  logger,
		metrics: metrics,
		opts:    opts,
	}
}

// Insert adds a record to the store.
//
// Preconditions are checked in order: the ID must not already be live
// (*ErrDuplicateID), the GPA must lie in [MinGPA, MaxGPA]
// (*ErrGPAOutOfRange), and the name must be non-empty after trimming
// surrounding whitespace (ErrEmptyName). A rejected insert leaves the
// store unchanged. Name and major are stored verbatim.
func (s *Store) Insert(rec Record) error {
	start := time.Now()

	err := s.validate(rec)
	if err == nil {
		s.records[rec.ID] = rec
		s.stats.Inserts++
	}

	s.metrics.RecordInsert(time.Since(start), err)

	if err != nil {
		s.logger.Debug("insert rejected", "id", rec.ID, "error", err)
		return err
	}

	s.logger.Debug("insert completed", "id", rec.ID, "gpa", rec.GPA)
	return nil
}

func (s *Store) validate(rec Record) error {
	if _, exists := s.records[rec.ID]; exists {
		return &ErrDuplicateID{ID: rec.ID}
	}
	if rec.GPA < MinGPA || rec.GPA > MaxGPA {
		return &ErrGPAOutOfRange{GPA: rec.GPA}
	}
	if strings.TrimSpace(rec.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Get returns the record with the given ID via a direct O(1) map
// access. Every call, hit or miss, increments the lookup counter and
// records the elapsed access time.
func (s *Store) Get(id int64) (Record, bool) {
	start := time.Now()
	rec, ok := s.records[id]
	elapsed := time.Since(start)

	s.stats.Lookups++
	s.stats.LastLookup = elapsed
	s.metrics.RecordLookup(elapsed, ok)

	return rec, ok
}

// SearchByName returns every record whose name contains the query,
// compared case-insensitively. Result order is unspecified. An empty
// or whitespace-only query matches nothing.
func (s *Store) SearchByName(query string) []Record {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	q := strings.ToLower(query)

	var out []Record
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.Name), q) {
			out = append(out, rec)
		}
	}

	s.logger.Debug("name search completed", "query", query, "results", len(out))
	return out
}

// SortedByGPA returns a new slice of all records ordered by ascending
// GPA. The store is not mutated. The comparison sort has a guaranteed
// O(n log n) worst case; ties appear in unspecified relative order.
func (s *Store) SortedByGPA() []Record {
	start := time.Now()

	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}

	slices.SortFunc(out, func(a, b Record) int {
		switch {
		case a.GPA < b.GPA:
			return -1
		case a.GPA > b.GPA:
			return 1
		default:
			return 0
		}
	})

	elapsed := time.Since(start)
	s.stats.Sorts++
	s.stats.LastSort = elapsed
	s.metrics.RecordSort(elapsed, len(out))

	return out
}

// TopK returns the k highest-GPA records in descending order, without
// ordering the remainder. The selection runs in O(n log k) via a
// k-bounded min-heap. Returns min(k, Len()) records; k <= 0 yields an
// empty result. Ties are broken in unspecified order.
func (s *Store) TopK(k int) []Record {
	if k <= 0 {
		return nil
	}

	start := time.Now()

	h := queue.NewBounded[Record](k)
	for _, rec := range s.records {
		h.Push(rec.GPA, rec)
	}

	items := h.Drain()
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item.Value
	}

	elapsed := time.Since(start)
	s.stats.LastTopK = elapsed
	s.metrics.RecordTopK(k, elapsed)

	return out
}

// FilterByMajor returns every record whose major equals the given
// label, compared case-insensitively (exact match, not substring).
// Result order is unspecified.
func (s *Store) FilterByMajor(major string) []Record {
	var out []Record
	for _, rec := range s.records {
		if strings.EqualFold(rec.Major, major) {
			out = append(out, rec)
		}
	}
	return out
}

// Remove deletes the record with the given ID. It reports whether a
// record was removed, so it is safe to call speculatively.
func (s *Store) Remove(id int64) bool {
	_, ok := s.records[id]
	if ok {
		delete(s.records, id)
	}

	s.metrics.RecordRemove(ok)
	s.logger.Debug("remove completed", "id", id, "removed", ok)

	return ok
}

// AverageGPA returns the arithmetic mean GPA across all live records,
// or 0.0 for an empty store.
func (s *Store) AverageGPA() float64 {
	if len(s.records) == 0 {
		return 0.0
	}

	var total float64
	for _, rec := range s.records {
		total += rec.GPA
	}
	return total / float64(len(s.records))
}

// Len returns the number of live records.
func (s *Store) Len() int {
	return len(s.records)
}

// All returns an iterator over all live records in unspecified order.
// The store must not be mutated during iteration.
func (s *Store) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, rec := range s.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Stats returns a copy of the store's counter block. Mutating the
// returned value has no effect on the store.
func (s *Store) Stats() Stats {
	stats := s.stats
	stats.Records = len(s.records)
	return stats
}
