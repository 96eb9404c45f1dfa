package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-revenue-dashboard/models"
	"hotel-revenue-dashboard/predictor"
	"hotel-revenue-dashboard/schema"
	"hotel-revenue-dashboard/storage"
	"hotel-revenue-dashboard/utils"
)

type stubSource struct {
	records []models.Booking
	err     error
}

func (s stubSource) Load() ([]models.Booking, error) { return s.records, s.err }

func testTable() []models.Booking {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rooms := []string{"Deluxe", "Double", "Single", "Suite"}
	var records []models.Booking
	for i := 0; i < 40; i++ {
		records = append(records, models.Booking{
			ID:               uint(i + 1),
			RoomType:         rooms[i%4],
			CustomerSegment:  "Business",
			BookingMonth:     i%12 + 1,
			BookingLeadTime:  i * 5,
			CheckinDate:      base.AddDate(0, 0, i*7),
			TotalRevenue:     100,
			AvgDailyRate:     80,
			CancellationFlag: i % 2,
		})
	}
	return records
}

func testModelPath(t *testing.T) string {
	t.Helper()
	artifact := map[string]interface{}{
		"schema_version": schema.Version,
		"columns":        schema.FeatureColumns,
		"weights":        make([]float64, len(schema.FeatureColumns)),
		"intercept":      750.0,
	}
	data, err := json.Marshal(artifact)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testRouter(t *testing.T, source storage.BookingSource, modelPath string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := utils.NewLogger(false)
	d := NewDashboard(source, storage.NewCSVWriter(logger), predictor.NewService(modelPath, logger), logger)
	r := gin.New()
	d.Register(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMetricsFilteredByRoomType(t *testing.T) {
	r := testRouter(t, stubSource{records: testTable()}, testModelPath(t))

	w := doRequest(t, r, http.MethodGet, "/api/metrics?room_type=Suite", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var report models.KPIReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if report.TotalBookings != 10 {
		t.Errorf("total_bookings = %d, want 10", report.TotalBookings)
	}
	if report.TotalRevenue != 1000 {
		t.Errorf("total_revenue = %v, want 1000", report.TotalRevenue)
	}
	if report.AvgDailyRate == nil || *report.AvgDailyRate != 80 {
		t.Errorf("avg_daily_rate = %v, want 80", report.AvgDailyRate)
	}
}

func TestMetricsEmptyViewReportsNoData(t *testing.T) {
	r := testRouter(t, stubSource{records: testTable()}, testModelPath(t))

	// Inverted lead range selects nothing but is not an error.
	w := doRequest(t, r, http.MethodGet, "/api/metrics?lead_min=100&lead_max=10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var report models.KPIReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if report.TotalBookings != 0 || report.TotalRevenue != 0 {
		t.Errorf("empty view KPIs = %+v, want zeros", report)
	}
	if report.AvgDailyRate != nil {
		t.Errorf("avg_daily_rate = %v, want null (no data)", *report.AvgDailyRate)
	}
}

func TestMetricsRejectsBadParams(t *testing.T) {
	r := testRouter(t, stubSource{records: testTable()}, testModelPath(t))

	for _, path := range []string{
		"/api/metrics?month=abc",
		"/api/metrics?lead_min=ten",
		"/api/metrics?from=01-02-2024",
		"/api/metrics?status=maybe",
	} {
		if w := doRequest(t, r, http.MethodGet, path, ""); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
	}
}

func TestSourceFailureIs500(t *testing.T) {
	r := testRouter(t, stubSource{err: errors.New("store down")}, testModelPath(t))

	if w := doRequest(t, r, http.MethodGet, "/api/metrics", ""); w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestRevenueTrendUsesFullTable(t *testing.T) {
	r := testRouter(t, stubSource{records: testTable()}, testModelPath(t))

	// Filter params are irrelevant to trend charts; they read the full table.
	w := doRequest(t, r, http.MethodGet, "/api/charts/revenue-trend?room_type=Suite", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Points []models.MonthlyPoint `json:"points"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	var sum float64
	for i, p := range resp.Points {
		sum += p.Value
		if i > 0 && resp.Points[i-1].Month >= p.Month {
			t.Errorf("buckets not chronological: %q before %q", resp.Points[i-1].Month, p.Month)
		}
	}
	if sum != 4000 {
		t.Errorf("trend total = %v, want 4000 (full table, not the Suite view)", sum)
	}
}

func TestFilterOptionsReflectTable(t *testing.T) {
	r := testRouter(t, stubSource{records: testTable()}, testModelPath(t))

	w := doRequest(t, r, http.MethodGet, "/api/filters/options", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var opts models.FilterOptions
	if err := json.Unmarshal(w.Body.Bytes(), &opts); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(opts.RoomTypes) != 4 || len(opts.Months) != 12 {
		t.Errorf("options = %+v, want 4 room types and 12 months", opts)
	}
	if opts.CheckinMin != "2024-01-01" {
		t.Errorf("checkin_min = %q, want 2024-01-01", opts.CheckinMin)
	}
}

func TestExportStreamsCSV(t *testing.T) {
	r := testRouter(t, stubSource{records: testTable()}, testModelPath(t))

	w := doRequest(t, r, http.MethodGet, "/api/bookings/export?room_type=Suite", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", cd)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 11 {
		t.Errorf("export has %d lines, want header + 10 Suite rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,room_type,") {
		t.Errorf("header = %q", lines[0])
	}
}

func TestPredictEndToEnd(t *testing.T) {
	r := testRouter(t, stubSource{records: testTable()}, testModelPath(t))

	body := `{
		"room_type": "Deluxe", "customer_segment": "Business",
		"nights_stayed": 2, "booking_lead_time": 30,
		"occupancy_rate": 75, "room_price": 200, "discount_applied": 20,
		"season": "Summer", "day_of_week": "Friday", "event_type": "None",
		"competitor_price": 180, "cancellation_flag": false,
		"payment_method": "Credit Card", "customer_rating": 4.5,
		"extra_services": "Breakfast", "holiday_season": true,
		"marketing_spend": 200, "customer_feedback": "Positive",
		"special_event": false, "booking_month": 6, "avg_daily_rate": 150
	}`

	w := doRequest(t, r, http.MethodPost, "/api/predict", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		PredictedRevenue float64              `json:"predicted_revenue"`
		Features         models.FeatureVector `json:"features"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	// All-zero weights: the score is the intercept.
	if resp.PredictedRevenue != 750 {
		t.Errorf("predicted_revenue = %v, want 750", resp.PredictedRevenue)
	}
	if len(resp.Features.Columns) != 23 {
		t.Errorf("echoed vector has %d columns, want 23", len(resp.Features.Columns))
	}
}

func TestPredictRejectsUnknownCategorical(t *testing.T) {
	r := testRouter(t, stubSource{records: testTable()}, testModelPath(t))

	body := `{
		"room_type": "Penthouse", "customer_segment": "Business",
		"nights_stayed": 2, "booking_lead_time": 30,
		"occupancy_rate": 75, "room_price": 200, "discount_applied": 20,
		"season": "Summer", "day_of_week": "Friday", "event_type": "None",
		"competitor_price": 180, "cancellation_flag": false,
		"payment_method": "Credit Card", "customer_rating": 4.5,
		"extra_services": "Breakfast", "holiday_season": true,
		"marketing_spend": 200, "customer_feedback": "Positive",
		"special_event": false, "booking_month": 6, "avg_daily_rate": 150
	}`

	w := doRequest(t, r, http.MethodPost, "/api/predict", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "room type") {
		t.Errorf("error should name the offending field: %s", w.Body.String())
	}
}

func TestPredictMissingArtifactIs500(t *testing.T) {
	r := testRouter(t, stubSource{records: testTable()}, filepath.Join(t.TempDir(), "missing.json"))

	body := `{
		"room_type": "Deluxe", "customer_segment": "Business",
		"nights_stayed": 2, "booking_lead_time": 30,
		"occupancy_rate": 75, "room_price": 200, "discount_applied": 20,
		"season": "Summer", "day_of_week": "Friday", "event_type": "None",
		"competitor_price": 180, "cancellation_flag": false,
		"payment_method": "Credit Card", "customer_rating": 4.5,
		"extra_services": "Breakfast", "holiday_season": true,
		"marketing_spend": 200, "customer_feedback": "Positive",
		"special_event": false, "booking_month": 6, "avg_daily_rate": 150
	}`

	if w := doRequest(t, r, http.MethodPost, "/api/predict", body); w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	// Chart endpoints keep working with a broken predictor.
	if w := doRequest(t, r, http.MethodGet, "/api/charts/revenue-trend", ""); w.Code != http.StatusOK {
		t.Errorf("charts should survive a broken predictor, got %d", w.Code)
	}
}

func TestBookingsPreviewLimit(t *testing.T) {
	r := testRouter(t, stubSource{records: testTable()}, testModelPath(t))

	w := doRequest(t, r, http.MethodGet, "/api/bookings?limit=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Total    int              `json:"total"`
		Bookings []models.Booking `json:"bookings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 40 {
		t.Errorf("total = %d, want 40", resp.Total)
	}
	if len(resp.Bookings) != 5 {
		t.Errorf("preview has %d rows, want 5", len(resp.Bookings))
	}
}
