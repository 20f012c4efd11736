package scraper

import (
	"context"

	"fugitives/internal/config"
	"fugitives/internal/logger"
	"fugitives/internal/storage"
)

// ScrapeService walks the paginated listing, fetches every profile page it
// finds, and stores the extracted raw profiles.
type ScrapeService struct {
	db     *storage.DB
	client *Client
	cfg    config.Config
}

func NewScrapeService(db *storage.DB, cfg config.Config) *ScrapeService {
	return &ScrapeService{db: db, client: NewClient(cfg), cfg: cfg}
}

type ScrapeResult struct {
	Pages   int
	Found   int
	Stored  int
	Skipped int
}

// ScrapeAll fetches the given number of listing pages and every profile
// they link to. A failed fetch or parse skips that page or profile and
// continues; only storage errors abort the run.
func (s *ScrapeService) ScrapeAll(ctx context.Context, pages int) (ScrapeResult, error) {
	l := logger.WithComponent("scraper")
	result := ScrapeResult{}

	profileURLs := []string{}
	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		pageURL := ListingURL(s.cfg.ListingBaseURL, page)
		html, err := s.client.Get(ctx, pageURL)
		if err != nil {
			l.Warn().Err(err).Int("page", page).Msg("listing fetch failed, skipping page")
			continue
		}

		found := ExtractProfileURLs(html)
		l.Info().Int("page", page).Int("profiles", len(found)).Msg("listing page scraped")
		profileURLs = append(profileURLs, found...)
		result.Pages++
	}
	result.Found = len(profileURLs)

	for _, profileURL := range profileURLs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		html, err := s.client.Get(ctx, profileURL)
		if err != nil {
			result.Skipped++
			l.Warn().Err(err).Str("url", profileURL).Msg("profile fetch failed, skipping")
			continue
		}

		profile, err := ExtractProfile(html, profileURL)
		if err != nil {
			result.Skipped++
			l.Warn().Err(err).Str("url", profileURL).Msg("profile parse failed, skipping")
			continue
		}

		if err := s.db.UpsertProfile(profile); err != nil {
			return result, err
		}
		result.Stored++
		l.Debug().Str("url", profileURL).Msg("profile stored")
	}

	l.Info().Int("found", result.Found).Int("stored", result.Stored).Int("skipped", result.Skipped).Msg("scrape finished")
	return result, nil
}
