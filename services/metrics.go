package services

import (
	"sort"

	"hotel-revenue-dashboard/models"
)

// Measure reads one numeric field off a booking. The aggregation
// functions below are generic over measures so each chart picks its own.
type Measure func(models.Booking) float64

// Common measures used by the dashboard charts.
var (
	TotalRevenue    Measure = func(b models.Booking) float64 { return b.TotalRevenue }
	RoomPrice       Measure = func(b models.Booking) float64 { return b.RoomPrice }
	CompetitorPrice Measure = func(b models.Booking) float64 { return b.CompetitorPrice }
	AvgDailyRate    Measure = func(b models.Booking) float64 { return b.AvgDailyRate }
	CancellationFlg Measure = func(b models.Booking) float64 { return float64(b.CancellationFlag) }
)

// Summarize computes the KPI card values over a view. An empty view
// yields zero counts and sums and a nil average — "no data", never a
// division by zero.
func Summarize(view []models.Booking) models.KPIReport {
	report := models.KPIReport{TotalBookings: len(view)}
	if len(view) == 0 {
		return report
	}

	var adrSum float64
	for _, b := range view {
		report.TotalRevenue += b.TotalRevenue
		adrSum += b.AvgDailyRate
	}
	adr := adrSum / float64(len(view))
	report.AvgDailyRate = &adr
	return report
}

// monthKey formats a check-in date as its calendar-month bucket.
// Lexical order on "2006-01" keys is chronological order.
func monthKey(b models.Booking) string {
	return b.CheckinDate.Format("2006-01")
}

// MonthlySum groups records by calendar month of check-in date and sums
// the measure per bucket. Buckets cover exactly the months present and
// come back chronologically sorted.
func MonthlySum(records []models.Booking, m Measure) []models.MonthlyPoint {
	sums := make(map[string]float64)
	for _, b := range records {
		sums[monthKey(b)] += m(b)
	}

	points := make([]models.MonthlyPoint, 0, len(sums))
	for month, sum := range sums {
		points = append(points, models.MonthlyPoint{Month: month, Value: sum})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points
}

// MonthlyMeans computes one mean-per-month series for each named measure,
// all sharing the same chronological buckets. Used for the hotel vs
// competitor price comparison.
func MonthlyMeans(records []models.Booking, names []string, measures []Measure) []models.MonthlySeries {
	type bucket struct {
		sums  []float64
		count int
	}
	buckets := make(map[string]*bucket)
	for _, b := range records {
		key := monthKey(b)
		bk, ok := buckets[key]
		if !ok {
			bk = &bucket{sums: make([]float64, len(measures))}
			buckets[key] = bk
		}
		for i, m := range measures {
			bk.sums[i] += m(b)
		}
		bk.count++
	}

	months := make([]string, 0, len(buckets))
	for key := range buckets {
		months = append(months, key)
	}
	sort.Strings(months)

	series := make([]models.MonthlySeries, len(measures))
	for i, name := range names {
		points := make([]models.MonthlyPoint, 0, len(months))
		for _, month := range months {
			bk := buckets[month]
			points = append(points, models.MonthlyPoint{
				Month: month,
				Value: bk.sums[i] / float64(bk.count),
			})
		}
		series[i] = models.MonthlySeries{Name: name, Points: points}
	}
	return series
}

// Dimension reads one grouping label off a booking.
type Dimension func(models.Booking) string

var (
	ByCustomerSegment Dimension = func(b models.Booking) string { return b.CustomerSegment }
	ByRoomType        Dimension = func(b models.Booking) string { return b.RoomType }
)

// GroupMean computes the mean of a measure per distinct dimension value,
// sorted by label. Taking the mean of the 0/1 cancellation flag per
// segment yields the cancellation fraction.
func GroupMean(records []models.Booking, dim Dimension, m Measure) []models.CategoryValue {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, b := range records {
		key := dim(b)
		sums[key] += m(b)
		counts[key]++
	}
	return sortedCategories(sums, counts, true)
}

// GroupSum computes the total of a measure per distinct dimension value,
// sorted by label. Used for the revenue share pie.
func GroupSum(records []models.Booking, dim Dimension, m Measure) []models.CategoryValue {
	sums := make(map[string]float64)
	for _, b := range records {
		sums[dim(b)] += m(b)
	}
	return sortedCategories(sums, nil, false)
}

func sortedCategories(sums map[string]float64, counts map[string]int, mean bool) []models.CategoryValue {
	out := make([]models.CategoryValue, 0, len(sums))
	for key, sum := range sums {
		v := sum
		if mean {
			v = sum / float64(counts[key])
		}
		out = append(out, models.CategoryValue{Label: key, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// MeanByBookingMonth computes the mean of a measure per booking month,
// sorted by month number. Backs the "ADR by month" bar chart.
func MeanByBookingMonth(records []models.Booking, m Measure) []models.MonthValue {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, b := range records {
		sums[b.BookingMonth] += m(b)
		counts[b.BookingMonth]++
	}

	out := make([]models.MonthValue, 0, len(sums))
	for month, sum := range sums {
		out = append(out, models.MonthValue{Month: month, Value: sum / float64(counts[month])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// LeadTimeHistogram counts bookings into fixed-width lead-time bins,
// covering the contiguous range between the smallest and largest values.
func LeadTimeHistogram(records []models.Booking, binWidth int) []models.HistogramBin {
	if len(records) == 0 || binWidth <= 0 {
		return nil
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

	first := (min / binWidth) * binWidth
	last := (max / binWidth) * binWidth
	nbins := (last-first)/binWidth + 1

	bins := make([]models.HistogramBin, nbins)
	for i := range bins {
		from := first + i*binWidth
		bins[i] = models.HistogramBin{From: from, To: from + binWidth}
	}
	for _, b := range records {
		bins[(b.BookingLeadTime-first)/binWidth].Count++
	}
	return bins
}

// PriceOccupancyPoints projects records onto the price vs occupancy
// scatter, keeping the room type for per-series coloring.
func PriceOccupancyPoints(records []models.Booking) []models.ScatterPoint {
	points := make([]models.ScatterPoint, 0, len(records))
	for _, b := range records {
		points = append(points, models.ScatterPoint{
			RoomPrice:     b.RoomPrice,
			OccupancyRate: b.OccupancyRate,
			RoomType:      b.RoomType,
		})
	}
	return points
}

// GroupBoxSummaries computes a five-number summary of a measure per
// dimension value, sorted by label. Backs the revenue-by-segment box plot.
func GroupBoxSummaries(records []models.Booking, dim Dimension, m Measure) []models.BoxSummary {
	values := make(map[string][]float64)
	for _, b := range records {
		key := dim(b)
		values[key] = append(values[key], m(b))
	}

	labels := make([]string, 0, len(values))
	for key := range values {
		labels = append(labels, key)
	}
	sort.Strings(labels)

	out := make([]models.BoxSummary, 0, len(labels))
	for _, label := range labels {
		vs := values[label]
		sort.Float64s(vs)
		out = append(out, models.BoxSummary{
			Label:  label,
			Count:  len(vs),
			Min:    vs[0],
			Q1:     quantile(vs, 0.25),
			Median: quantile(vs, 0.5),
			Q3:     quantile(vs, 0.75),
			Max:    vs[len(vs)-1],
		})
	}
	return out
}

// quantile interpolates linearly between order statistics; vs must be sorted.
func quantile(vs []float64, p float64) float64 {
	if len(vs) == 1 {
		return vs[0]
	}
	pos := p * float64(len(vs)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(vs) {
		return vs[lo]
	}
	frac := pos - float64(lo)
	return vs[lo]*(1-frac) + vs[hi]*frac
}
