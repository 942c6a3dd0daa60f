package rosterdb

import "fmt"

// GPA bounds enforced by Insert.
const (
	MinGPA = 0.0
	MaxGPA = 4.0
)

// Record is a single student record. Records are stored and returned
// by value; mutating a returned Record never affects the store.
type Record struct {
	// ID is the caller-assigned unique student identifier.
	ID int64

	// Name is the student's display name. Must be non-empty after
	// trimming surrounding whitespace; stored verbatim.
	Name string

	// GPA is the grade point average, constrained to [MinGPA, MaxGPA].
	GPA float64

	// Major is a free-text program label. Stored verbatim and compared
	// case-insensitively by FilterByMajor.
	Major string
}

// String implements fmt.Stringer for debug output.
func (r Record) String() string {
	return fmt.Sprintf("Record(%d, %s, %.2f, %s)", r.ID, r.Name, r.GPA, r.Major)
}
