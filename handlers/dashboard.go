// Package handlers exposes the dashboard's data plane over HTTP JSON.
// KPI cards, the data preview and the export run over the filtered view;
// trend charts deliberately read the full table, matching the dashboard's
// chart semantics.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-revenue-dashboard/models"
	"hotel-revenue-dashboard/predictor"
	"hotel-revenue-dashboard/services"
	"hotel-revenue-dashboard/storage"
	"hotel-revenue-dashboard/utils"
)

// Dashboard wires the booking source, exporter and predictor into HTTP
// handlers.
type Dashboard struct {
	source   storage.BookingSource
	exporter *storage.CSVWriter
	model    predictor.Predictor
	logger   *utils.Logger
}

// NewDashboard creates a new Dashboard handler set
func NewDashboard(source storage.BookingSource, exporter *storage.CSVWriter, model predictor.Predictor, logger *utils.Logger) *Dashboard {
	return &Dashboard{source: source, exporter: exporter, model: model, logger: logger}
}

// Register mounts all dashboard routes on the router.
func (h *Dashboard) Register(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/filters/options", h.FilterOptions)
		api.GET("/metrics", h.Metrics)
		api.GET("/bookings", h.Bookings)
		api.GET("/bookings/export", h.Export)
		api.GET("/predict/options", h.PredictOptions)
		api.POST("/predict", h.Predict)

		charts := api.Group("/charts")
		{
			charts.GET("/revenue-trend", h.RevenueTrend)
			charts.GET("/price-comparison", h.PriceComparison)
			charts.GET("/segment-revenue", h.SegmentRevenue)
			charts.GET("/price-occupancy", h.PriceOccupancy)
			charts.GET("/adr-by-month", h.ADRByMonth)
			charts.GET("/revenue-by-room-type", h.RevenueByRoomType)
			charts.GET("/lead-time-distribution", h.LeadTimeDistribution)
			charts.GET("/cancellation-by-segment", h.CancellationBySegment)
		}
	}
}

// Health reports service liveness
func (h *Dashboard) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// table loads the cached booking table, responding 500 on failure.
func (h *Dashboard) table(c *gin.Context) ([]models.Booking, bool) {
	records, err := h.source.Load()
	if err != nil {
		h.logger.Error("Booking table unavailable: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking data unavailable"})
		return nil, false
	}
	return records, true
}

// filteredView loads the table and applies the request's filter criteria.
func (h *Dashboard) filteredView(c *gin.Context) ([]models.Booking, bool) {
	records, ok := h.table(c)
	if !ok {
		return nil, false
	}
	criteria, err := parseCriteria(c, records)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return services.ApplyFilter(records, criteria), true
}

// FilterOptions returns the selectable ranges present in the table, for
// initializing filter widgets.
func (h *Dashboard) FilterOptions(c *gin.Context) {
	records, ok := h.table(c)
	if !ok {
		return
	}

	opts := models.FilterOptions{
		RoomTypes: distinctRoomTypes(records),
		Months:    distinctMonths(records),
	}
	opts.LeadTimeMin, opts.LeadTimeMax = leadTimeBounds(records)
	if from, to := checkinBounds(records); !from.IsZero() {
		opts.CheckinMin = from.Format(dateLayout)
		opts.CheckinMax = to.Format(dateLayout)
	}

	c.JSON(http.StatusOK, opts)
}

// Metrics returns the KPI card values over the filtered view.
func (h *Dashboard) Metrics(c *gin.Context) {
	view, ok := h.filteredView(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.Summarize(view))
}

// Bookings returns the filtered view for the data preview, capped by the
// limit parameter (default 100, 0 for all).
func (h *Dashboard) Bookings(c *gin.Context) {
	view, ok := h.filteredView(c)
	if !ok {
		return
	}

	limit, err := intParam(c, "limit", 100)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total := len(view)
	if limit > 0 && total > limit {
		view = view[:limit]
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "bookings": view})
}

// Export streams the filtered view as a CSV download.
func (h *Dashboard) Export(c *gin.Context) {
	view, ok := h.filteredView(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("filtered_data_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.exporter.Export(c.Writer, view); err != nil {
		h.logger.Error("CSV export failed: %v", err)
	}
}

// RevenueTrend returns monthly revenue totals over the full table.
func (h *Dashboard) RevenueTrend(c *gin.Context) {
	records, ok := h.table(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"points": services.MonthlySum(records, services.TotalRevenue),
	})
}

// PriceComparison returns parallel monthly mean series for the hotel's
// room price and the competitor price.
func (h *Dashboard) PriceComparison(c *gin.Context) {
	records, ok := h.table(c)
	if !ok {
		return
	}
	series := services.MonthlyMeans(records,
		[]string{"room_price", "competitor_price"},
		[]services.Measure{services.RoomPrice, services.CompetitorPrice},
	)
	c.JSON(http.StatusOK, gin.H{"series": series})
}

// SegmentRevenue returns revenue distribution summaries per customer segment.
func (h *Dashboard) SegmentRevenue(c *gin.Context) {
	records, ok := h.table(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summaries": services.GroupBoxSummaries(records, services.ByCustomerSegment, services.TotalRevenue),
	})
}

// PriceOccupancy returns the room price vs occupancy scatter points.
func (h *Dashboard) PriceOccupancy(c *gin.Context) {
	records, ok := h.table(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": services.PriceOccupancyPoints(records)})
}

// ADRByMonth returns the mean average daily rate per booking month.
func (h *Dashboard) ADRByMonth(c *gin.Context) {
	records, ok := h.table(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"points": services.MeanByBookingMonth(records, services.AvgDailyRate),
	})
}

// RevenueByRoomType returns each room type's total revenue contribution.
func (h *Dashboard) RevenueByRoomType(c *gin.Context) {
	records, ok := h.table(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slices": services.GroupSum(records, services.ByRoomType, services.TotalRevenue),
	})
}

// LeadTimeDistribution returns the lead-time histogram. Bin width is
// adjustable via bin_width (days).
func (h *Dashboard) LeadTimeDistribution(c *gin.Context) {
	records, ok := h.table(c)
	if !ok {
		return
	}

	binWidth, err := intParam(c, "bin_width", 30)
	if err != nil || binWidth <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bin_width must be a positive integer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bins": services.LeadTimeHistogram(records, binWidth)})
}

// CancellationBySegment returns the cancellation fraction per segment.
func (h *Dashboard) CancellationBySegment(c *gin.Context) {
	records, ok := h.table(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rates": services.GroupMean(records, services.ByCustomerSegment, services.CancellationFlg),
	})
}
