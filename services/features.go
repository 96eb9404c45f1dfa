package services

import (
	"fmt"

	"hotel-revenue-dashboard/models"
	"hotel-revenue-dashboard/schema"
)

// demandIndex is not collected from the user; the training pipeline fed
// the model a constant placeholder and the runtime must match it.
const demandIndex = 1.0

// BuildFeatureVector validates user input, encodes categoricals through
// the shared schema tables and assembles the single-row vector in the
// exact column order the revenue model was trained on. Out-of-table
// categorical values and out-of-range numerics are rejected, never
// silently coerced.
func BuildFeatureVector(in models.PredictionInput) (models.FeatureVector, error) {
	if err := validateRanges(in); err != nil {
		return models.FeatureVector{}, err
	}

	roomType, err := schema.RoomTypeCode(in.RoomType)
	if err != nil {
		return models.FeatureVector{}, err
	}
	segment, err := schema.CustomerSegmentCode(in.CustomerSegment)
	if err != nil {
		return models.FeatureVector{}, err
	}
	season, err := schema.SeasonCode(in.Season)
	if err != nil {
		return models.FeatureVector{}, err
	}
	dayOfWeek, err := schema.DayOfWeekCode(in.DayOfWeek)
	if err != nil {
		return models.FeatureVector{}, err
	}
	eventType, err := schema.EventTypeCode(in.EventType)
	if err != nil {
		return models.FeatureVector{}, err
	}
	payment, err := schema.PaymentMethodCode(in.PaymentMethod)
	if err != nil {
		return models.FeatureVector{}, err
	}
	services, err := schema.ExtraServicesCode(in.ExtraServices)
	if err != nil {
		return models.FeatureVector{}, err
	}
	feedback, err := schema.FeedbackCode(in.CustomerFeedback)
	if err != nil {
		return models.FeatureVector{}, err
	}

	finalPrice := in.RoomPrice * (in.OccupancyRate / 100)

	byName := map[string]float64{
		"room_type":         roomType,
		"customer_segment":  segment,
		"nights_stayed":     float64(in.NightsStayed),
		"booking_lead_time": float64(in.BookingLeadTime),
		"occupancy_rate":    in.OccupancyRate,
		"room_price":        in.RoomPrice,
		"discount_applied":  in.DiscountApplied,
		"season":            season,
		"day_of_week":       dayOfWeek,
		"event_type":        eventType,
		"competitor_price":  in.CompetitorPrice,
		"demand_index":      demandIndex,
		"cancellation_flag": boolFlag(in.CancellationFlag),
		"payment_method":    payment,
		"customer_rating":   in.CustomerRating,
		"extra_services":    services,
		"holiday_season":    boolFlag(in.HolidaySeason),
		"final_price":       finalPrice,
		"marketing_spend":   in.MarketingSpend,
		"customer_feedback": feedback,
		"special_event":     boolFlag(in.SpecialEvent),
		"booking_month":     float64(in.BookingMonth),
		"avg_daily_rate":    in.AvgDailyRate,
	}

	// The schema's column list is the one place the order lives; assemble
	// by walking it so this function cannot reorder the vector on its own.
	columns := append([]string(nil), schema.FeatureColumns...)
	values := make([]float64, len(columns))
	for i, col := range columns {
		v, ok := byName[col]
		if !ok {
			return models.FeatureVector{}, fmt.Errorf("feature %q has no assembled value", col)
		}
		values[i] = v
	}

	return models.FeatureVector{Columns: columns, Values: values}, nil
}

func validateRanges(in models.PredictionInput) error {
	checks := []struct {
		name     string
		value    float64
		min, max float64
	}{
		{"nights_stayed", float64(in.NightsStayed), 1, 30},
		{"booking_lead_time", float64(in.BookingLeadTime), 0, 365},
		{"occupancy_rate", in.OccupancyRate, 0, 100},
		{"room_price", in.RoomPrice, 50, 1000},
		{"discount_applied", in.DiscountApplied, 0, 500},
		{"competitor_price", in.CompetitorPrice, 50, 1000},
		{"customer_rating", in.CustomerRating, 1.0, 5.0},
		{"marketing_spend", in.MarketingSpend, 0, 10000},
		{"booking_month", float64(in.BookingMonth), 1, 12},
		{"avg_daily_rate", in.AvgDailyRate, 50, 1000},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return fmt.Errorf("%s %v out of range [%v, %v]", c.name, c.value, c.min, c.max)
		}
	}
	return nil
}

func boolFlag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
