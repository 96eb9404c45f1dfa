package storage

import "hotel-revenue-dashboard/models"

// BookingSource provides the loaded, read-only booking table.
type BookingSource interface {
	Load() ([]models.Booking, error)
}

// RateSink persists normalized competitor rate observations.
type RateSink interface {
	SaveRates(rates []*models.CompetitorRate) error
}
