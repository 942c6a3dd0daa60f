package rosterdb

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a record's name is empty or
	// whitespace-only.
	ErrEmptyName = errors.New("name must not be empty")
)

// ErrDuplicateID indicates an insert with an ID that is already live.
type ErrDuplicateID struct {
	ID int64
}

func (e *ErrDuplicateID) Error() string {
	return fmt.Sprintf("duplicate id: %d already exists", e.ID)
}

// ErrGPAOutOfRange indicates a GPA outside [MinGPA, MaxGPA].
type ErrGPAOutOfRange struct {
	GPA float64
}

func (e *ErrGPAOutOfRange) Error() string {
	return fmt.Sprintf("gpa out of range: %g not in [%g, %g]", e.GPA, MinGPA, MaxGPA)
}
