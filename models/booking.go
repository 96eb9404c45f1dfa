package models

import "time"

// Booking is one historical reservation row from the hotel_data table.
// The table is read-only for the lifetime of the process; records are
// never mutated after load.
type Booking struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	RoomType         string    `json:"room_type"`
	CustomerSegment  string    `json:"customer_segment"`
	NightsStayed     int       `json:"nights_stayed"`
	BookingMonth     int       `json:"booking_month"`
	BookingLeadTime  int       `json:"booking_lead_time"`
	CheckinDateRaw   string    `gorm:"column:checkin_date" json:"-"`
	CheckinDate      time.Time `gorm:"-" json:"checkin_date"`
	OccupancyRate    float64   `json:"occupancy_rate"`
	RoomPrice        float64   `json:"room_price"`
	CompetitorPrice  float64   `json:"competitor_price"`
	AvgDailyRate     float64   `json:"avg_daily_rate"`
	TotalRevenue     float64   `json:"total_revenue"`
	DiscountApplied  float64   `json:"discount_applied"`
	DemandIndex      float64   `json:"demand_index"`
	Season           string    `json:"season"`
	DayOfWeek        string    `json:"day_of_week"`
	EventType        string    `json:"event_type"`
	PaymentMethod    string    `json:"payment_method"`
	CustomerRating   float64   `json:"customer_rating"`
	ExtraServices    string    `json:"extra_services"`
	HolidaySeason    int       `json:"holiday_season"`
	MarketingSpend   float64   `json:"marketing_spend"`
	CustomerFeedback string    `json:"customer_feedback"`
	SpecialEvent     int       `json:"special_event"`
	CancellationFlag int       `json:"cancellation_flag"`
}

// TableName maps Booking onto the pre-existing hotel_data table.
func (Booking) TableName() string { return "hotel_data" }

// Cancelled reports whether the booking was cancelled.
func (b Booking) Cancelled() bool { return b.CancellationFlag == 1 }
