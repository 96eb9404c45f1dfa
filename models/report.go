package models

// KPIReport holds the scalar metrics shown on the dashboard cards.
// AvgDailyRate is nil when the view is empty — "no data", not zero.
type KPIReport struct {
	TotalBookings int      `json:"total_bookings"`
	TotalRevenue  float64  `json:"total_revenue"`
	AvgDailyRate  *float64 `json:"avg_daily_rate"`
}

// MonthlyPoint is one calendar-month bucket of a time series.
// Month is formatted "2006-01" so lexical order is chronological order.
type MonthlyPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// MonthlySeries is a named monthly series; parallel series share buckets.
type MonthlySeries struct {
	Name   string         `json:"name"`
	Points []MonthlyPoint `json:"points"`
}

// CategoryValue maps one group label to an aggregate value.
type CategoryValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// MonthValue is an aggregate keyed by booking month (1-12).
type MonthValue struct {
	Month int     `json:"month"`
	Value float64 `json:"value"`
}

// HistogramBin is a half-open count bucket [From, To), except the last
// bin which includes its upper bound.
type HistogramBin struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
}

// ScatterPoint is one booking plotted as price vs occupancy.
type ScatterPoint struct {
	RoomPrice     float64 `json:"room_price"`
	OccupancyRate float64 `json:"occupancy_rate"`
	RoomType      string  `json:"room_type"`
}

// BoxSummary is a five-number summary of a value distribution per group.
type BoxSummary struct {
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// FilterOptions describes the ranges present in the loaded table, used
// by the presentation layer to initialize its filter widgets.
type FilterOptions struct {
	RoomTypes   []string `json:"room_types"`
	Months      []int    `json:"months"`
	LeadTimeMin int      `json:"lead_time_min"`
	LeadTimeMax int      `json:"lead_time_max"`
	CheckinMin  string   `json:"checkin_min"`
	CheckinMax  string   `json:"checkin_max"`
}
