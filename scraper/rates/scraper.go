// Package rates scrapes nightly prices from a competitor listings page.
// Output feeds the competitor_rates table, the refresh source behind the
// booking table's competitor_price column.
package rates

import (
	"context"
	"fmt"
	"time"

	"hotel-revenue-dashboard/config"
	"hotel-revenue-dashboard/models"
	"hotel-revenue-dashboard/utils"

	"github.com/chromedp/chromedp"
)

// RateScraper collects raw price observations from the competitor site
type RateScraper struct {
	cfg         *config.Config
	logger      *utils.Logger
	rateLimiter *utils.RateLimiter
	tracker     *utils.URLTracker
}

// NewRateScraper creates a new RateScraper
func NewRateScraper(cfg *config.Config, logger *utils.Logger) *RateScraper {
	return &RateScraper{
		cfg:         cfg,
		logger:      logger,
		rateLimiter: utils.NewRateLimiter(time.Duration(cfg.RateLimitDelay) * time.Millisecond),
		tracker:     utils.NewURLTracker(),
	}
}

// newContext creates a fresh chromedp context (one browser, one tab)
func (s *RateScraper) newContext() (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("log-level", "3"),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		chromedp.WindowSize(1280, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// Scrape loads the competitor listings page and extracts up to
// cfg.RatesPerRun raw price observations, paginating as needed.
func (s *RateScraper) Scrape() ([]*models.RawRate, error) {
	s.logger.Info("Starting competitor rate scrape: %s", s.cfg.CompetitorURL)

	ctx, cancel := s.newContext()
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, 10*time.Minute)
	defer cancelTimeout()

	var observations []*models.RawRate
	currentURL := s.cfg.CompetitorURL
	page := 1

	for len(observations) < s.cfg.RatesPerRun && currentURL != "" {
		s.rateLimiter.Wait()
		s.logger.Info("  page %d (have %d/%d)...", page, len(observations), s.cfg.RatesPerRun)

		cards, nextURL, err := s.scrapePage(ctx, currentURL)
		if err != nil {
			s.logger.Error("  page %d failed: %v", page, err)
			break
		}
		if len(cards) == 0 {
			s.logger.Warn("  no listing cards found on page %d", page)
			break
		}

		for _, obs := range cards {
			if len(observations) >= s.cfg.RatesPerRun {
				break
			}
			if obs.URL != "" && !s.tracker.Add(obs.URL) {
				continue
			}
			observations = append(observations, obs)
		}

		currentURL = nextURL
		page++
	}

	s.logger.Info("Scrape complete. Raw observations: %d", len(observations))
	return observations, nil
}

// scrapePage navigates to one results page and extracts listing cards
func (s *RateScraper) scrapePage(ctx context.Context, pageURL string) ([]*models.RawRate, string, error) {
	var observations []*models.RawRate
	var nextURL string

	err := utils.RetryWithBackoff(s.cfg.MaxRetries, func() error {
		err := chromedp.Run(ctx,
			chromedp.Navigate(pageURL),
			chromedp.Sleep(4*time.Second), // wait for JS render
		)
		if err != nil {
			return fmt.Errorf("navigate failed: %w", err)
		}

		type cardData struct {
			Title string `json:"title"`
			Price string `json:"price"`
			URL   string `json:"url"`
		}
		var cards []cardData

		jsErr := chromedp.Run(ctx, chromedp.Evaluate(`
			(function() {
				var cards = [];

				var containers = document.querySelectorAll('[data-testid="card-container"]');
				if (containers.length === 0) {
					containers = document.querySelectorAll('[itemprop="itemListElement"]');
				}
				if (containers.length === 0) {
					var links = document.querySelectorAll('a[href*="/rooms/"]');
					var parents = new Set();
					links.forEach(function(a) {
						var p = a.closest('div[class]');
						if (p) parents.add(p);
					});
					containers = Array.from(parents);
				}

				containers.forEach(function(card) {
					var titleEl = card.querySelector('[data-testid="listing-card-title"]') ||
					              card.querySelector('[itemprop="name"]') ||
					              card.querySelector('h3');
					var title = titleEl ? titleEl.innerText.trim() : '';

					var price = '';
					var spans = card.querySelectorAll('span');
					for (var i = 0; i < spans.length; i++) {
						var t = spans[i].innerText.trim();
						if (t.startsWith('$') && t.length < 40) {
							price = t;
							break;
						}
					}
					if (!price) {
						var priceEl = card.querySelector('[aria-label*="per night"]') ||
						              card.querySelector('[class*="price"]');
						if (priceEl) price = priceEl.innerText.trim();
					}

					var linkEl = card.querySelector('a[href*="/rooms/"]');
					var url = linkEl ? linkEl.href : '';

					if (price && (title || url)) {
						cards.push({title: title, price: price, url: url});
					}
				});

				return cards;
			})()
		`, &cards))
		if jsErr != nil {
			return fmt.Errorf("card extraction failed: %w", jsErr)
		}

		observations = nil
		now := time.Now()
		for _, c := range cards {
			observations = append(observations, &models.RawRate{
				Source:    s.cfg.CompetitorURL,
				Title:     c.Title,
				RawPrice:  c.Price,
				URL:       c.URL,
				ScrapedAt: now,
			})
		}

		var next string
		_ = chromedp.Run(ctx, chromedp.Evaluate(`
			(function() {
				var btn = document.querySelector('a[aria-label="Next"]') ||
				          document.querySelector('[data-testid="pagination-next-btn"]') ||
				          document.querySelector('a[href*="items_offset"]');
				return btn ? btn.href : '';
			})()
		`, &next))
		nextURL = next
		return nil
	}, s.logger)

	return observations, nextURL, err
}
