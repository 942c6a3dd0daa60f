package rosterdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInsert(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		store := New()

		rec := Record{ID: 1, Name: "Alice Smith", GPA: 3.5, Major: "Computer Science"}
		require.NoError(t, store.Insert(rec))

		got, ok := store.Get(1)
		require.True(t, ok)
		assert.Equal(t, rec, got)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("DuplicateID", func(t *testing.T) {
		store := New()

		original := Record{ID: 1, Name: "Alice Smith", GPA: 3.5, Major: "Computer Science"}
		require.NoError(t, store.Insert(original))

		err := store.Insert(Record{ID: 1, Name: "Bob Jones", GPA: 2.0, Major: "Mathematics"})
		var dup *ErrDuplicateID
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, int64(1), dup.ID)

		// Rejected insert leaves the store unchanged.
		assert.Equal(t, 1, store.Len())
		got, ok := store.Get(1)
		require.True(t, ok)
		assert.Equal(t, original, got)
	})

	t.Run("GPAOutOfRange", func(t *testing.T) {
		store := New()

		for _, gpa := range []float64{4.5, -0.1} {
			err := store.Insert(Record{ID: 1, Name: "Alice Smith", GPA: gpa, Major: "Physics"})
			var oor *ErrGPAOutOfRange
			require.ErrorAs(t, err, &oor)
			assert.Equal(t, gpa, oor.GPA)
			assert.Equal(t, 0, store.Len())
		}
	})

	t.Run("GPABoundsInclusive", func(t *testing.T) {
		store := New()

		require.NoError(t, store.Insert(Record{ID: 1, Name: "Alice", GPA: 0.0, Major: "Physics"}))
		require.NoError(t, store.Insert(Record{ID: 2, Name: "Bob", GPA: 4.0, Major: "Physics"}))
	})

	t.Run("EmptyName", func(t *testing.T) {
		store := New()

		for _, name := range []string{"", "   ", "\t\n"} {
			err := store.Insert(Record{ID: 1, Name: name, GPA: 3.0, Major: "Physics"})
			require.ErrorIs(t, err, ErrEmptyName)
			assert.Equal(t, 0, store.Len())
		}
	})

	t.Run("PreconditionOrder", func(t *testing.T) {
		store := New()
		require.NoError(t, store.Insert(Record{ID: 1, Name: "Alice", GPA: 3.0, Major: "Physics"}))

		// Duplicate ID is checked before the GPA range.
		err := store.Insert(Record{ID: 1, Name: "", GPA: 9.9, Major: ""})
		var dup *ErrDuplicateID
		assert.ErrorAs(t, err, &dup)

		// GPA range is checked before the name.
		err = store.Insert(Record{ID: 2, Name: "", GPA: 9.9, Major: ""})
		var oor *ErrGPAOutOfRange
		assert.ErrorAs(t, err, &oor)
	})

	t.Run("NameStoredVerbatim", func(t *testing.T) {
		store := New()

		require.NoError(t, store.Insert(Record{ID: 1, Name: "  Alice  ", GPA: 3.0, Major: "Physics"}))
		got, ok := store.Get(1)
		require.True(t, ok)
		assert.Equal(t, "  Alice  ", got.Name)
	})
}

func TestStoreSortedByGPA(t *testing.T) {
	store := New()
	seedRoster(t, store)

	sorted := store.SortedByGPA()
	require.Len(t, sorted, store.Len())

	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].GPA, sorted[i].GPA)
	}

	assert.ElementsMatch(t, idsOf(collect(store)), idsOf(sorted))

	// The store itself is untouched.
	assert.Equal(t, 10, store.Len())
}

func TestStoreTopK(t *testing.T) {
	t.Run("MatchesReversedSort", func(t *testing.T) {
		store := New()
		seedRoster(t, store)
		require.Equal(t, 10, store.Len())

		sorted := store.SortedByGPA()
		top := store.TopK(3)
		require.Len(t, top, 3)

		for i, rec := range top {
			assert.Equal(t, sorted[len(sorted)-1-i].GPA, rec.GPA)
		}
		for i := 1; i < len(top); i++ {
			assert.GreaterOrEqual(t, top[i-1].GPA, top[i].GPA)
		}
	})

	t.Run("NonPositiveK", func(t *testing.T) {
		store := New()
		seedRoster(t, store)

		assert.Empty(t, store.TopK(0))
		assert.Empty(t, store.TopK(-5))
	})

	t.Run("KLargerThanStore", func(t *testing.T) {
		store := New()
		seedRoster(t, store)

		top := store.TopK(100)
		assert.Len(t, top, store.Len())
		for i := 1; i < len(top); i++ {
			assert.GreaterOrEqual(t, top[i-1].GPA, top[i].GPA)
		}
	})

	t.Run("EmptyStore", func(t *testing.T) {
		store := New()
		assert.Empty(t, store.TopK(3))
	})
}

func TestStoreSearchByName(t *testing.T) {
	store := New()
	require.NoError(t, store.Insert(Record{ID: 1, Name: "Alice Smith", GPA: 3.5, Major: "CS"}))
	require.NoError(t, store.Insert(Record{ID: 2, Name: "Bob Smith", GPA: 2.1, Major: "Math"}))
	require.NoError(t, store.Insert(Record{ID: 3, Name: "Cara Jones", GPA: 3.9, Major: "CS"}))

	t.Run("CaseInsensitiveSubstring", func(t *testing.T) {
		results := store.SearchByName("sMiTh")
		assert.ElementsMatch(t, []int64{1, 2}, idsOf(results))

		results = store.SearchByName("alice")
		assert.ElementsMatch(t, []int64{1}, idsOf(results))
	})

	t.Run("NoMatch", func(t *testing.T) {
		assert.Empty(t, store.SearchByName("zelda"))
	})

	t.Run("BlankQueryMatchesNothing", func(t *testing.T) {
		assert.Empty(t, store.SearchByName(""))
		assert.Empty(t, store.SearchByName("   "))
	})
}

func TestStoreScenario(t *testing.T) {
	store := New()

	require.NoError(t, store.Insert(Record{ID: 1, Name: "Alice", GPA: 3.5, Major: "CS"}))
	require.NoError(t, store.Insert(Record{ID: 2, Name: "Bob", GPA: 2.1, Major: "Math"}))
	require.NoError(t, store.Insert(Record{ID: 3, Name: "Cara", GPA: 3.9, Major: "CS"}))

	assert.InDelta(t, 3.1666667, store.AverageGPA(), 1e-6)

	top := store.TopK(2)
	require.Len(t, top, 2)
	assert.Equal(t, "Cara", top[0].Name)
	assert.Equal(t, "Alice", top[1].Name)

	cs := store.FilterByMajor("cs")
	assert.ElementsMatch(t, []int64{1, 3}, idsOf(cs))

	assert.True(t, store.Remove(2))
	_, ok := store.Get(2)
	assert.False(t, ok)
	assert.False(t, store.Remove(2))
	assert.Equal(t, 2, store.Len())
}

func TestStoreFilterByMajor(t *testing.T) {
	store := New()
	require.NoError(t, store.Insert(Record{ID: 1, Name: "Alice", GPA: 3.5, Major: "Computer Science"}))
	require.NoError(t, store.Insert(Record{ID: 2, Name: "Bob", GPA: 2.1, Major: "Math"}))

	// Exact match, not substring.
	assert.Empty(t, store.FilterByMajor("Computer"))
	assert.ElementsMatch(t, []int64{1}, idsOf(store.FilterByMajor("computer science")))
}

func TestStoreAverageGPA(t *testing.T) {
	store := New()
	assert.Equal(t, 0.0, store.AverageGPA())

	require.NoError(t, store.Insert(Record{ID: 1, Name: "Alice", GPA: 3.0, Major: "CS"}))
	require.NoError(t, store.Insert(Record{ID: 2, Name: "Bob", GPA: 4.0, Major: "CS"}))
	assert.InDelta(t, 3.5, store.AverageGPA(), 1e-9)
}

func TestStoreAll(t *testing.T) {
	store := New()
	seedRoster(t, store)

	seen := make(map[int64]bool)
	for rec := range store.All() {
		seen[rec.ID] = true
	}
	assert.Len(t, seen, 10)

	// Early break is honored.
	count := 0
	for range store.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestStoreStats(t *testing.T) {
	t.Run("Counters", func(t *testing.T) {
		store := New()
		seedRoster(t, store)

		store.Get(1)
		store.Get(999) // miss still counts and is timed
		store.SortedByGPA()
		store.TopK(3)

		stats := store.Stats()
		assert.Equal(t, 10, stats.Records)
		assert.Equal(t, uint64(10), stats.Inserts)
		assert.Equal(t, uint64(2), stats.Lookups)
		assert.Equal(t, uint64(1), stats.Sorts)
		assert.NotZero(t, stats.LastSort)
		assert.NotZero(t, stats.LastTopK)
	})

	t.Run("RejectedInsertNotCounted", func(t *testing.T) {
		store := New()
		require.NoError(t, store.Insert(Record{ID: 1, Name: "Alice", GPA: 3.0, Major: "CS"}))
		require.Error(t, store.Insert(Record{ID: 1, Name: "Bob", GPA: 3.0, Major: "CS"}))

		assert.Equal(t, uint64(1), store.Stats().Inserts)
	})

	t.Run("SnapshotIsolation", func(t *testing.T) {
		store := New()
		require.NoError(t, store.Insert(Record{ID: 1, Name: "Alice", GPA: 3.0, Major: "CS"}))

		stats := store.Stats()
		stats.Inserts = 999
		stats.Records = 999

		assert.Equal(t, uint64(1), store.Stats().Inserts)
		assert.Equal(t, 1, store.Stats().Records)
	})
}

func TestStoreMetricsCollector(t *testing.T) {
	collector := &BasicMetricsCollector{}
	store := New(WithMetricsCollector(collector))

	require.NoError(t, store.Insert(Record{ID: 1, Name: "Alice", GPA: 3.0, Major: "CS"}))
	require.Error(t, store.Insert(Record{ID: 1, Name: "Bob", GPA: 3.0, Major: "CS"}))
	store.Get(1)
	store.Get(2)
	store.SortedByGPA()
	store.TopK(1)
	store.Remove(1)
	store.Remove(1)

	stats := collector.GetStats()
	assert.Equal(t, int64(2), stats.InsertCount)
	assert.Equal(t, int64(1), stats.InsertErrors)
	assert.Equal(t, int64(2), stats.LookupCount)
	assert.Equal(t, int64(1), stats.LookupMisses)
	assert.Equal(t, int64(1), stats.SortCount)
	assert.Equal(t, int64(1), stats.TopKCount)
	assert.Equal(t, int64(2), stats.RemoveCount)
	assert.Equal(t, int64(1), stats.RemoveMisses)
}

func TestStoreWithCapacity(t *testing.T) {
	store := New(WithCapacity(100))
	assert.Equal(t, 0, store.Len())

	store = New(WithCapacity(-1))
	require.NoError(t, store.Insert(Record{ID: 1, Name: "Alice", GPA: 3.0, Major: "CS"}))
	assert.Equal(t, 1, store.Len())
}

// seedRoster inserts ten records with distinct GPAs.
func seedRoster(t *testing.T, store *Store) {
	t.Helper()

	names := []string{"Alice", "Bob", "Cara", "David", "Emma", "Frank", "Grace", "Henry", "Iris", "Jack"}
	for i, name := range names {
		err := store.Insert(Record{
			ID:    int64(i + 1),
			Name:  name,
			GPA:   float64(i) * 0.4, // 0.0 .. 3.6
			Major: "Physics",
		})
		require.NoError(t, err)
	}
}

func collect(store *Store) []Record {
	var out []Record
	for rec := range store.All() {
		out = append(out, rec)
	}
	return out
}

func idsOf(recs []Record) []int64 {
	out := make([]int64, len(recs))
	for i, rec := range recs {
		out[i] = rec.ID
	}
	return out
}
