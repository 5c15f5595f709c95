package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/pevans/msigdump"
	"github.com/pevans/msigdump/config"
)

// Listing-page URL templates for the two browse modes the site offers.
const (
	letterURLTemplate = "https://www.gsea-msigdb.org/gsea/msigdb/human/genesets.jsp?letter=%s"
	searchURLTemplate = "https://www.gsea-msigdb.org/gsea/msigdb/human/genesets.jsp?geneSetName=%s&Search=Search"
)

func handleScrapeCommand(args []string) {
	fs := flag.NewFlagSet("scrape", flag.ExitOnError)
	listingURL := fs.String("url", "", "Listing page URL (overrides -letter and -search)")
	letter := fs.String("letter", "", "Browse gene sets starting with this letter")
	search := fs.String("search", "", "Search gene sets by name")
	output := fs.String("o", "", "Output TSV path")
	delay := fs.Float64("delay", -1, "Pacing delay in seconds between detail pages")
	skipErrors := fs.Bool("skip-errors", false, "Skip gene sets whose pages fail to fetch instead of aborting")
	dedupe := fs.Bool("dedupe", false, "Drop duplicate detail links from the listing table")
	quiet := fs.Bool("quiet", false, "Suppress the progress bar")
	fs.Parse(args)

	// Load file config; flags override it, it overrides the defaults.
	fileCfg, err := config.LoadConfigFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if fileCfg == nil {
		fileCfg = &config.FileConfig{}
	}

	scrapeCfg := msigdump.ScrapeConfig{
		ListingURL: resolveListingURL(*listingURL, *letter, *search, fileCfg),
		Delay:      resolveDelay(*delay, fileCfg),
		SkipErrors: *skipErrors || fileCfg.SkipErrors,
		Dedupe:     *dedupe || fileCfg.Dedupe,
		Progress:   !*quiet,
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = getEnv("MSIGDUMP_OUTPUT", fileCfg.Output)
	}
	if outputPath == "" {
		outputPath = config.DefaultOutput
	}

	dbPath := getEnv("MSIGDUMP_DB", fileCfg.Database)
	if dbPath == "" {
		dbPath = config.DefaultDatabase
	}

	ledger, err := msigdump.NewRunStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open run ledger: %v\n", err)
		os.Exit(1)
	}
	defer ledger.Close()

	startedAt := time.Now()
	scraper := msigdump.NewScraper(msigdump.NewHTTPFetcher(), scrapeCfg)
	result, err := scraper.Run(context.Background())
	if err != nil {
		recordRun(ledger, scrapeCfg.ListingURL, outputPath, nil, startedAt, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := msigdump.WriteTSVFile(outputPath, result.Records); err != nil {
		recordRun(ledger, scrapeCfg.ListingURL, outputPath, result, startedAt, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	recordRun(ledger, scrapeCfg.ListingURL, outputPath, result, startedAt, nil)

	fmt.Printf("✓ Collected %d gene sets", len(result.Records))
	if result.Skipped > 0 {
		fmt.Printf(" (%d skipped)", result.Skipped)
	}
	fmt.Printf(". Results in: %s\n", outputPath)
}

// resolveListingURL picks the listing page: explicit URL, then letter, then
// search term, then the config file, then the default.
func resolveListingURL(explicit, letter, search string, fileCfg *config.FileConfig) string {
	switch {
	case explicit != "":
		return explicit
	case letter != "":
		return fmt.Sprintf(letterURLTemplate, url.QueryEscape(letter))
	case search != "":
		return fmt.Sprintf(searchURLTemplate, url.QueryEscape(search))
	case fileCfg.ListingURL != "":
		return fileCfg.ListingURL
	default:
		return config.DefaultListingURL
	}
}

// resolveDelay converts the -delay flag (seconds, negative means unset) into
// a duration, falling back to the config file and then the default.
func resolveDelay(flagSeconds float64, fileCfg *config.FileConfig) time.Duration {
	seconds := flagSeconds
	if seconds < 0 {
		if fileCfg.DelaySeconds != nil {
			seconds = *fileCfg.DelaySeconds
		} else {
			seconds = config.DefaultDelaySeconds
		}
	}
	return time.Duration(seconds * float64(time.Second))
}

func recordRun(ledger *msigdump.RunStore, listingURL, outputPath string, result *msigdump.Result, startedAt time.Time, runErr error) {
	run := msigdump.Run{
		ListingURL: listingURL,
		OutputPath: outputPath,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}
	if result != nil {
		run.RecordCount = len(result.Records)
		run.Skipped = result.Skipped
	}
	if runErr != nil {
		msg := runErr.Error()
		run.LastError = &msg
	}

	if err := ledger.RecordRun(&run); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record run: %v\n", err)
	}
}
