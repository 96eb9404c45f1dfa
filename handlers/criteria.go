package handlers

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-revenue-dashboard/models"
)

const dateLayout = "2006-01-02"

// parseCriteria builds filter criteria from query parameters, defaulting
// every absent selector to the full range present in the table — the
// same behavior as dashboard widgets initialized from the data.
//
// Recognized parameters: room_type (repeated), month (repeated),
// lead_min, lead_max, from, to, status=all|cancelled|completed.
func parseCriteria(c *gin.Context, records []models.Booking) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		RoomTypes:    distinctRoomTypes(records),
		Months:       distinctMonths(records),
		Cancellation: models.CancellationAll,
	}
	criteria.LeadTimeMin, criteria.LeadTimeMax = leadTimeBounds(records)

	if rooms := c.QueryArray("room_type"); len(rooms) > 0 {
		criteria.RoomTypes = rooms
	}
	if months := c.QueryArray("month"); len(months) > 0 {
		criteria.Months = criteria.Months[:0]
		for _, raw := range months {
			m, err := strconv.Atoi(raw)
			if err != nil {
				return criteria, fmt.Errorf("invalid month %q", raw)
			}
			criteria.Months = append(criteria.Months, m)
		}
	}

	var err error
	if criteria.LeadTimeMin, err = intParam(c, "lead_min", criteria.LeadTimeMin); err != nil {
		return criteria, err
	}
	if criteria.LeadTimeMax, err = intParam(c, "lead_max", criteria.LeadTimeMax); err != nil {
		return criteria, err
	}
	if criteria.CheckinFrom, err = dateParam(c, "from"); err != nil {
		return criteria, err
	}
	if criteria.CheckinTo, err = dateParam(c, "to"); err != nil {
		return criteria, err
	}

	switch status := c.DefaultQuery("status", string(models.CancellationAll)); status {
	case string(models.CancellationAll), string(models.CancellationCancelled), string(models.CancellationCompleted):
		criteria.Cancellation = models.CancellationMode(status)
	default:
		return criteria, fmt.Errorf("invalid status %q", status)
	}

	return criteria, nil
}

func intParam(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

// dateParam parses a date bound; absent means unbounded on that side.
func dateParam(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, want YYYY-MM-DD", name, raw)
	}
	return t, nil
}

func distinctRoomTypes(records []models.Booking) []string {
	seen := make(map[string]bool)
	var out []string
	for _, b := range records {
		if !seen[b.RoomType] {
			seen[b.RoomType] = true
			out = append(out, b.RoomType)
		}
	}
	sort.Strings(out)
	return out
}

func distinctMonths(records []models.Booking) []int {
	seen := make(map[int]bool)
	var out []int
	for _, b := range records {
		if !seen[b.BookingMonth] {
			seen[b.BookingMonth] = true
			out = append(out, b.BookingMonth)
		}
	}
	sort.Ints(out)
	return out
}

func leadTimeBounds(records []models.Booking) (int, int) {
	if len(records) == 0 {
		return 0, 0
	}
	min, max := records[0].BookingLeadTime, records[0].BookingLeadTime
	for _, b := range records[1:] {
		if b.BookingLeadTime < min {
			min = b.BookingLeadTime
		}
		if b.BookingLeadTime > max {
			max = b.BookingLeadTime
		}
	}
	return min, max
}

func checkinBounds(records []models.Booking) (time.Time, time.Time) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}
	}
	min, max := records[0].CheckinDate, records[0].CheckinDate
	for _, b := range records[1:] {
		if b.CheckinDate.Before(min) {
			min = b.CheckinDate
		}
		if b.CheckinDate.After(max) {
			max = b.CheckinDate
		}
	}
	return min, max
}
