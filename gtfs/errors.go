package gtfs

import (
	"fmt"
)

// NotFoundError reports a missing archive or a missing table within it.
// A missing static dataset is a configuration problem, so this surfaces
// to the caller instead of being swallowed.
type NotFoundError struct {
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gtfs: %s not found: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("gtfs: %s not found", e.Name)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// FormatError reports a table that is present but missing a required column.
type FormatError struct {
	Table  string
	Column string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("gtfs: %s is missing required column %s", e.Table, e.Column)
}
