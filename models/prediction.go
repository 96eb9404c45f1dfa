package models

// PredictionInput is the bundle of user-entered values for a hypothetical
// booking. Categorical fields carry their display labels; encoding to
// model codes happens in the feature builder.
type PredictionInput struct {
	RoomType         string  `json:"room_type"`
	CustomerSegment  string  `json:"customer_segment"`
	NightsStayed     int     `json:"nights_stayed"`
	BookingLeadTime  int     `json:"booking_lead_time"`
	OccupancyRate    float64 `json:"occupancy_rate"`
	RoomPrice        float64 `json:"room_price"`
	DiscountApplied  float64 `json:"discount_applied"`
	Season           string  `json:"season"`
	DayOfWeek        string  `json:"day_of_week"`
	EventType        string  `json:"event_type"`
	CompetitorPrice  float64 `json:"competitor_price"`
	CancellationFlag bool    `json:"cancellation_flag"`
	PaymentMethod    string  `json:"payment_method"`
	CustomerRating   float64 `json:"customer_rating"`
	ExtraServices    string  `json:"extra_services"`
	HolidaySeason    bool    `json:"holiday_season"`
	MarketingSpend   float64 `json:"marketing_spend"`
	CustomerFeedback string  `json:"customer_feedback"`
	SpecialEvent     bool    `json:"special_event"`
	BookingMonth     int     `json:"booking_month"`
	AvgDailyRate     float64 `json:"avg_daily_rate"`
}

// FeatureVector is a single-row, ordered numeric input for the revenue
// model. Columns and Values are index-aligned; the order must match the
// model's training schema exactly.
type FeatureVector struct {
	Columns []string  `json:"columns"`
	Values  []float64 `json:"values"`
}
