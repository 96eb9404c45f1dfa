package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"hotel-revenue-dashboard/models"
	"hotel-revenue-dashboard/utils"
)

// exportHeader mirrors the hotel_data column layout so an exported file
// can be re-imported or diffed against the source table.
var exportHeader = []string{
	"id", "room_type", "customer_segment", "nights_stayed", "booking_month",
	"checkin_date", "booking_lead_time", "occupancy_rate", "room_price",
	"competitor_price", "avg_daily_rate", "total_revenue", "discount_applied",
	"demand_index", "season", "day_of_week", "event_type", "payment_method",
	"customer_rating", "extra_services", "holiday_season", "marketing_spend",
	"customer_feedback", "special_event", "cancellation_flag",
}

// CSVWriter serializes booking views as delimited text, for the
// dashboard's download action or for file export.
type CSVWriter struct {
	logger *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(logger *utils.Logger) *CSVWriter {
	return &CSVWriter{logger: logger}
}

// Export writes a booking view to w as CSV, header first.
func (cw *CSVWriter) Export(w io.Writer, bookings []models.Booking) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, b := range bookings {
		if err := writer.Write(bookingRow(b)); err != nil {
			return fmt.Errorf("failed to write CSV row for booking id=%d: %w", b.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportFile writes a booking view to a file path, creating parent
// directories as needed.
func (cw *CSVWriter) ExportFile(path string, bookings []models.Booking) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := cw.Export(file, bookings); err != nil {
		return err
	}

	cw.logger.Info("Filtered view written to: %s (%d rows)", path, len(bookings))
	return nil
}

func bookingRow(b models.Booking) []string {
	return []string{
		strconv.FormatUint(uint64(b.ID), 10),
		b.RoomType,
		b.CustomerSegment,
		strconv.Itoa(b.NightsStayed),
		strconv.Itoa(b.BookingMonth),
		b.CheckinDate.Format("2006-01-02"),
		strconv.Itoa(b.BookingLeadTime),
		formatFloat(b.OccupancyRate),
		formatFloat(b.RoomPrice),
		formatFloat(b.CompetitorPrice),
		formatFloat(b.AvgDailyRate),
		formatFloat(b.TotalRevenue),
		formatFloat(b.DiscountApplied),
		formatFloat(b.DemandIndex),
		b.Season,
		b.DayOfWeek,
		b.EventType,
		b.PaymentMethod,
		formatFloat(b.CustomerRating),
		b.ExtraServices,
		strconv.Itoa(b.HolidaySeason),
		formatFloat(b.MarketingSpend),
		b.CustomerFeedback,
		strconv.Itoa(b.SpecialEvent),
		strconv.Itoa(b.CancellationFlag),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
