package models

import "time"

// RawRate is an unprocessed price observation scraped from a competitor
// listings page, e.g. RawPrice "$142 for 2 nights".
type RawRate struct {
	Source    string
	Title     string
	RawPrice  string
	URL       string
	ScrapedAt time.Time
}

// CompetitorRate is a normalized per-night competitor rate, persisted so
// the booking table's competitor_price column has a refresh source.
type CompetitorRate struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	NightlyRate float64   `json:"nightly_rate"`
	URL         string    `gorm:"uniqueIndex" json:"url"`
	ScrapedAt   time.Time `json:"scraped_at"`
}

// TableName keeps rate observations separate from the read-only booking table.
func (CompetitorRate) TableName() string { return "competitor_rates" }
