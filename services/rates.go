package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"hotel-revenue-dashboard/models"
	"hotel-revenue-dashboard/utils"
)

var (
	priceRegex  = regexp.MustCompile(`\$?([\d,]+(?:\.\d{2})?)`)
	nightsRegex = regexp.MustCompile(`for\s+(\d+)\s+night`)
)

// RateNormalizer turns raw scraped price strings into per-night
// competitor rates ready for storage.
type RateNormalizer struct {
	logger *utils.Logger
}

// NewRateNormalizer creates a new RateNormalizer
func NewRateNormalizer(logger *utils.Logger) *RateNormalizer {
	return &RateNormalizer{logger: logger}
}

// Normalize converts raw observations to CompetitorRate rows, dropping
// entries whose price string cannot be parsed and deduplicating by URL.
func (n *RateNormalizer) Normalize(raw []*models.RawRate) []*models.CompetitorRate {
	tracker := utils.NewURLTracker()
	var rates []*models.CompetitorRate

	for _, r := range raw {
		if strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.URL) == "" {
			n.logger.Debug("Skipping observation with no title or URL")
			continue
		}

		key := strings.TrimSpace(r.URL)
		if key == "" {
			key = strings.TrimSpace(r.Title)
		}
		if !tracker.Add(key) {
			n.logger.Debug("Skipping duplicate: %s", r.Title)
			continue
		}

		nightly := ParseNightlyRate(r.RawPrice)
		if nightly <= 0 {
			n.logger.Debug("Skipping unparseable price %q for '%s'", r.RawPrice, r.Title)
			continue
		}

		rate := &models.CompetitorRate{
			Source:      strings.TrimSpace(r.Source),
			Title:       strings.TrimSpace(r.Title),
			NightlyRate: nightly,
			URL:         strings.TrimSpace(r.URL),
			ScrapedAt:   r.ScrapedAt,
		}
		if rate.ScrapedAt.IsZero() {
			rate.ScrapedAt = time.Now()
		}
		rates = append(rates, rate)
	}

	n.logger.Info("Normalized %d rates from %d raw observations", len(rates), len(raw))
	return rates
}

// ParseNightlyRate extracts a per-night price from a raw string like
// "$71 for 2 nights". Returns 0 when no price can be found.
func ParseNightlyRate(raw string) float64 {
	if raw == "" {
		return 0
	}
	cleaned := strings.ReplaceAll(raw, ",", "")

	matches := priceRegex.FindStringSubmatch(cleaned)
	if len(matches) < 2 {
		return 0
	}
	val, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0
	}

	if m := nightsRegex.FindStringSubmatch(cleaned); len(m) >= 2 {
		nights, err := strconv.ParseFloat(m[1], 64)
		if err == nil && nights > 0 {
			return val / nights
		}
	}
	return val
}
