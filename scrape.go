package msigdump

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// DefaultDelay is the pacing pause inserted after each detail-page record.
const DefaultDelay = 500 * time.Millisecond

// ScrapeConfig configures one pipeline run. The zero value is not usable;
// callers must at least set ListingURL.
type ScrapeConfig struct {
	// ListingURL is the catalog page enumerating gene sets by letter or
	// search term.
	ListingURL string
	// Delay is slept after each record to bound request rate. Zero skips
	// the pause entirely (used by tests).
	Delay time.Duration
	// SkipErrors controls per-record fetch failures: false aborts the run
	// on the first failure, true logs a warning and moves on.
	SkipErrors bool
	// Dedupe drops duplicate detail links, keeping the first occurrence.
	// Off by default: duplicates in the catalog table pass through.
	Dedupe bool
	// Progress renders a progress bar on stderr while scraping.
	Progress bool
}

// Result is the outcome of a pipeline run. Records are in detail-link
// encounter order; Skipped counts records dropped under SkipErrors.
type Result struct {
	Records []Record
	Skipped int
}

// Scraper walks the catalog sequentially: listing page, then each detail
// page and its membership payload.
type Scraper struct {
	fetcher Fetcher
	config  ScrapeConfig
}

// NewScraper creates a scraper using the given fetcher.
func NewScraper(fetcher Fetcher, config ScrapeConfig) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		config:  config,
	}
}

// Run fetches the listing page, then visits every detail page in order,
// producing one Record per link. Failures fetching the listing page or a
// missing catalog table abort the run; per-record failures follow the
// SkipErrors policy. Cancellation is honored between records.
func (s *Scraper) Run(ctx context.Context) (*Result, error) {
	doc, err := s.fetcher.Document(ctx, s.config.ListingURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing page: %w", err)
	}

	links, err := CollectDetailLinks(doc)
	if err != nil {
		return nil, err
	}
	if s.config.Dedupe {
		links = dedupeLinks(links)
	}
	log.Printf("Found %d gene-set links on the listing page", len(links))

	var bar *progressbar.ProgressBar
	if s.config.Progress {
		bar = newProgressBar(len(links))
	}

	result := &Result{}
	for _, link := range links {
		rec, err := s.scrapeOne(ctx, link)
		if err != nil {
			if !s.config.SkipErrors {
				return nil, fmt.Errorf("failed to scrape %s: %w", link, err)
			}
			log.Printf("WARNING: skipping %s: %v", link, err)
			result.Skipped++
		} else {
			result.Records = append(result.Records, rec)
		}

		if bar != nil {
			bar.Add(1)
		}

		if err := s.pause(ctx); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// scrapeOne produces the Record for a single detail page. A missing
// attribute table or membership link degrades to empty fields; only
// transport failures return an error.
func (s *Scraper) scrapeOne(ctx context.Context, detailURL string) (Record, error) {
	doc, err := s.fetcher.Document(ctx, detailURL)
	if err != nil {
		return Record{}, fmt.Errorf("failed to fetch detail page: %w", err)
	}

	rec := ExtractRecord(doc, detailURL)

	tsvURL, ok := ResolveMembershipURL(doc)
	if !ok {
		log.Printf("WARNING: no TSV link on %s, gene members left empty", detailURL)
		return rec, nil
	}

	text, err := s.fetcher.Text(ctx, tsvURL)
	if err != nil {
		return Record{}, fmt.Errorf("failed to fetch membership TSV: %w", err)
	}

	membership := ParseMembership(text)
	rec.GeneSymbols = membership.GeneSymbols
	rec.SourceMembers = membership.SourceMembers

	return rec, nil
}

// pause sleeps the configured pacing delay, returning early on cancellation.
func (s *Scraper) pause(ctx context.Context) error {
	if s.config.Delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.config.Delay):
		return nil
	}
}

// dedupeLinks removes duplicate links, preserving first-occurrence order.
func dedupeLinks(links []string) []string {
	seen := make(map[string]bool, len(links))
	deduped := make([]string, 0, len(links))
	for _, link := range links {
		if seen[link] {
			continue
		}
		seen[link] = true
		deduped = append(deduped, link)
	}
	return deduped
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("gene sets"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
