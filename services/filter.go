package services

import (
	"time"

	"hotel-revenue-dashboard/models"
)

// ApplyFilter returns the bookings satisfying every active predicate of
// the criteria: room type membership, booking month membership, lead-time
// range, check-in date range and cancellation status. Pure function;
// source order is preserved.
//
// Empty room-type or month sets match nothing, and an inverted range
// matches nothing. Both yield an empty view rather than an error.
func ApplyFilter(records []models.Booking, c models.FilterCriteria) []models.Booking {
	rooms := toStringSet(c.RoomTypes)
	months := toIntSet(c.Months)

	view := make([]models.Booking, 0, len(records))
	for _, b := range records {
		if !rooms[b.RoomType] {
			continue
		}
		if !months[b.BookingMonth] {
			continue
		}
		if b.BookingLeadTime < c.LeadTimeMin || b.BookingLeadTime > c.LeadTimeMax {
			continue
		}
		if !checkinInRange(b.CheckinDate, c.CheckinFrom, c.CheckinTo) {
			continue
		}
		if !matchesCancellation(b, c.Cancellation) {
			continue
		}
		view = append(view, b)
	}
	return view
}

// checkinInRange tests d against an inclusive [from, to] range. A zero
// bound leaves that end open.
func checkinInRange(d, from, to time.Time) bool {
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}

func matchesCancellation(b models.Booking, mode models.CancellationMode) bool {
	switch mode {
	case models.CancellationCancelled:
		return b.Cancelled()
	case models.CancellationCompleted:
		return !b.Cancelled()
	default:
		// CancellationAll and the zero value impose no restriction.
		return true
	}
}

func toStringSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func toIntSet(items []int) map[int]bool {
	set := make(map[int]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
