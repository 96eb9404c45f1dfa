package models

import "time"

// CancellationMode narrows a view by booking status.
type CancellationMode string

const (
	CancellationAll       CancellationMode = "all"
	CancellationCancelled CancellationMode = "cancelled"
	CancellationCompleted CancellationMode = "completed"
)

// FilterCriteria is the conjunction of predicates a user has selected.
// A fresh value is built per interaction; it carries no identity.
//
// Both ranges are inclusive on both ends. An empty RoomTypes or Months
// set selects nothing, and an inverted range selects nothing — neither
// is an error. A zero CheckinFrom/CheckinTo leaves that end unbounded.
type FilterCriteria struct {
	RoomTypes    []string
	Months       []int
	LeadTimeMin  int
	LeadTimeMax  int
	CheckinFrom  time.Time
	CheckinTo    time.Time
	Cancellation CancellationMode
}
