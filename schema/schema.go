// Package schema is the single source of truth for the predictor's input
// encoding. The code tables and column order below must match what the
// revenue model was trained on; both the feature builder and the model
// loader validate against this package so the two cannot drift apart.
package schema

import (
	"fmt"
	"sort"
)

// Version identifies the encoding revision. Bump it whenever a code table
// or the column order changes, and retrain the model artifact to match.
const Version = 1

// Categorical code tables. Values are the integer codes used at training time.
var (
	RoomTypes = map[string]int{
		"Deluxe": 0,
		"Double": 1,
		"Single": 2,
		"Suite":  3,
	}

	CustomerSegments = map[string]int{
		"Business": 0,
		"Group":    1,
		"Leisure":  2,
		"Solo":     3,
	}

	PaymentMethods = map[string]int{
		"Cash":        0,
		"Online":      1,
		"Credit Card": 2,
	}

	Seasons = map[string]int{
		"Spring": 0,
		"Summer": 1,
		"Autumn": 2,
		"Winter": 3,
	}

	DaysOfWeek = map[string]int{
		"Monday":    0,
		"Tuesday":   1,
		"Wednesday": 2,
		"Thursday":  3,
		"Friday":    4,
		"Saturday":  5,
		"Sunday":    6,
	}

	EventTypes = map[string]int{
		"None":       0,
		"Conference": 1,
		"Festival":   2,
		"Exhibition": 3,
	}

	FeedbackLevels = map[string]int{
		"Negative": 0,
		"Neutral":  1,
		"Positive": 2,
	}

	// ExtraServices is the one table with a negative code: "None" was
	// encoded as -1 at training time.
	ExtraServices = map[string]int{
		"None":      -1,
		"Spa":       0,
		"Breakfast": 1,
		"Dinner":    2,
		"All":       3,
	}
)

// FeatureColumns is the exact column order the model expects. Reordering,
// renaming or dropping an entry breaks every existing model artifact.
var FeatureColumns = []string{
	"room_type",
	"customer_segment",
	"nights_stayed",
	"booking_lead_time",
	"occupancy_rate",
	"room_price",
	"discount_applied",
	"season",
	"day_of_week",
	"event_type",
	"competitor_price",
	"demand_index",
	"cancellation_flag",
	"payment_method",
	"customer_rating",
	"extra_services",
	"holiday_season",
	"final_price",
	"marketing_spend",
	"customer_feedback",
	"special_event",
	"booking_month",
	"avg_daily_rate",
}

// code looks up a categorical value, failing loudly on anything outside
// the table. Silent defaulting here would feed the model garbage.
func code(table map[string]int, field, value string) (float64, error) {
	c, ok := table[value]
	if !ok {
		return 0, fmt.Errorf("unknown %s %q", field, value)
	}
	return float64(c), nil
}

func RoomTypeCode(v string) (float64, error)        { return code(RoomTypes, "room type", v) }
func CustomerSegmentCode(v string) (float64, error) { return code(CustomerSegments, "customer segment", v) }
func PaymentMethodCode(v string) (float64, error)   { return code(PaymentMethods, "payment method", v) }
func SeasonCode(v string) (float64, error)          { return code(Seasons, "season", v) }
func DayOfWeekCode(v string) (float64, error)       { return code(DaysOfWeek, "day of week", v) }
func EventTypeCode(v string) (float64, error)       { return code(EventTypes, "event type", v) }
func FeedbackCode(v string) (float64, error)        { return code(FeedbackLevels, "customer feedback", v) }
func ExtraServicesCode(v string) (float64, error)   { return code(ExtraServices, "extra services", v) }

// Options returns a table's labels ordered by their codes, for building
// selection lists that match the training-time ordering.
func Options(table map[string]int) []string {
	labels := make([]string, 0, len(table))
	for label := range table {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return table[labels[i]] < table[labels[j]]
	})
	return labels
}
