// Package sample generates random student records for demos and
// benchmarks.
package sample

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/hupe1980/rosterdb"
)

var majors = []string{
	"Computer Science", "Mathematics", "Engineering", "Physics", "Chemistry",
}

var firstNames = []string{
	"Alice", "Bob", "Charlie", "David", "Emma", "Frank", "Grace",
	"Henry", "Iris", "Jack", "Kate", "Liam", "Maya", "Noah", "Olivia",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
	"Miller", "Davis", "Rodriguez", "Martinez",
}

// Options contains configuration options for sample generation.
type Options struct {
	// Seed seeds the random number generator. Equal seeds produce
	// equal record sequences.
	Seed int64

	// BaseID is the first generated student ID; subsequent records
	// use consecutive IDs.
	BaseID int64
}

// DefaultOptions contains the default configuration options for
// sample generation.
var DefaultOptions = Options{
	Seed:   1,
	BaseID: 1000,
}

// WithSeed sets the generator seed.
func WithSeed(seed int64) func(*Options) {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithBaseID sets the first generated student ID.
func WithBaseID(base int64) func(*Options) {
	return func(o *Options) {
		o.BaseID = base
	}
}

// Generate inserts n random records into the store and returns how
// many were actually inserted. Names combine a random first and last
// name, GPAs are uniform in [2.0, 4.0] rounded to two decimals, and
// majors are drawn from a fixed pool. Inserts rejected for a
// duplicate ID are skipped silently; any other rejection is returned.
func Generate(store *rosterdb.Store, n int, optFns ...func(o *Options)) (int, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	inserted := 0
	for i := 0; i < n; i++ {
		rec := rosterdb.Record{
			ID:    opts.BaseID + int64(i),
			Name:  fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))]),
			GPA:   math.Round((2.0+rng.Float64()*2.0)*100) / 100,
			Major: majors[rng.Intn(len(majors))],
		}

		err := store.Insert(rec)
		if err != nil {
			var dup *rosterdb.ErrDuplicateID
			if errors.As(err, &dup) {
				continue
			}
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}
