package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-revenue-dashboard/models"
	"hotel-revenue-dashboard/utils"
)

// checkin_date layouts accepted from the backing table, tried in order.
var checkinLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// BookingStore reads the historical booking table into memory. The table
// is loaded at most once per process; Invalidate forces a reload on the
// next Load call.
type BookingStore struct {
	db  *gorm.DB
	log *utils.Logger

	mu      sync.Mutex
	loaded  bool
	cache   []models.Booking
	migrate sync.Once
}

// NewBookingStore opens the backing store and verifies the booking table
// exists. The DSN selects the driver: postgres:// URLs use the postgres
// driver, anything else is treated as a sqlite file path.
func NewBookingStore(dsn string, log *utils.Logger) (*BookingStore, error) {
	var db *gorm.DB
	err := utils.RetryWithBackoff(3, func() error {
		var openErr error
		db, openErr = gorm.Open(openDialector(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		return openErr
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open booking store: %w", err)
	}

	if !db.Migrator().HasTable(&models.Booking{}) {
		return nil, fmt.Errorf("booking table %q not found in store", models.Booking{}.TableName())
	}

	log.Info("Connected to booking store (%s)", dsn)
	return &BookingStore{db: db, log: log}, nil
}

func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// Load returns the full booking table, reading it from the store on the
// first call and serving the in-memory copy afterwards. Malformed
// check-in dates fail the load; partial data is worse than no data.
func (s *BookingStore) Load() ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.cache, nil
	}

	var bookings []models.Booking
	if err := s.db.Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to read booking table: %w", err)
	}

	for i := range bookings {
		parsed, err := parseCheckinDate(bookings[i].CheckinDateRaw)
		if err != nil {
			return nil, fmt.Errorf("booking id=%d: %w", bookings[i].ID, err)
		}
		bookings[i].CheckinDate = parsed
	}

	s.cache = bookings
	s.loaded = true
	s.log.Info("Loaded %d bookings into memory", len(bookings))
	return s.cache, nil
}

// Invalidate drops the cached table so the next Load re-reads the store.
func (s *BookingStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.cache = nil
}

// SaveRates inserts competitor rate observations in a single transaction,
// skipping rows whose URL was already recorded.
func (s *BookingStore) SaveRates(rates []*models.CompetitorRate) error {
	if len(rates) == 0 {
		return nil
	}

	var migrateErr error
	s.migrate.Do(func() {
		migrateErr = s.db.AutoMigrate(&models.CompetitorRate{})
	})
	if migrateErr != nil {
		return fmt.Errorf("failed to prepare competitor_rates table: %w", migrateErr)
	}

	inserted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, r := range rates {
			res := tx.Where("url = ?", r.URL).FirstOrCreate(r)
			if res.Error != nil {
				s.log.Warn("Skipping rate for '%s': %v", r.Title, res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save competitor rates: %w", err)
	}

	s.log.Info("Inserted %d/%d competitor rates", inserted, len(rates))
	return nil
}

// Close releases the underlying database connection.
func (s *BookingStore) Close() {
	if s.db == nil {
		return
	}
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func parseCheckinDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range checkinLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("malformed checkin_date %q", raw)
}
