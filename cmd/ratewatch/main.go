package main

import (
	"fmt"
	"os"

	"hotel-revenue-dashboard/config"
	"hotel-revenue-dashboard/scraper/rates"
	"hotel-revenue-dashboard/services"
	"hotel-revenue-dashboard/storage"
	"hotel-revenue-dashboard/utils"
)

func main() {
	// ================== Bootstrap ====================
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Verbose)

	logger.Info("Competitor Rate Watcher")
	logger.Info("Source: %s | Sample size: %d | Rate delay: %dms | Retries: %d",
		cfg.CompetitorURL, cfg.RatesPerRun, cfg.RateLimitDelay, cfg.MaxRetries)

	// =================== Store ====================
	store, err := storage.NewBookingStore(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Error("Cannot open store: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	// =============== Scraping ===================
	scraper := rates.NewRateScraper(cfg, logger)
	raw, err := scraper.Scrape()
	if err != nil {
		logger.Error("Scrape failed: %v", err)
		os.Exit(1)
	}
	if len(raw) == 0 {
		logger.Warn("No rates observed — check the network or the competitor page structure")
		os.Exit(0)
	}

	// =========== Normalize & store ======================
	normalizer := services.NewRateNormalizer(logger)
	normalized := normalizer.Normalize(raw)

	if err := store.SaveRates(normalized); err != nil {
		logger.Error("Failed to store rates: %v", err)
		os.Exit(1)
	}

	// ==== Summary ============================
	services.PrintRateReport(cfg.CompetitorURL, normalized)
	fmt.Println(" Done! Rates stored in table: competitor_rates")
}
