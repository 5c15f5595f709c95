package main

import (
	"fmt"
	"os"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	subcommand := os.Args[1]

	switch subcommand {
	case "scrape":
		handleScrapeCommand(os.Args[2:])
	case "runs":
		if len(os.Args) < 3 {
			printRunsUsage()
			os.Exit(1)
		}
		handleRunsCommand(os.Args[2], os.Args[3:])
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("msigdump - MSigDB gene-set catalog scraper")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  msigdump <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scrape     Scrape a gene-set listing page into a TSV file")
	fmt.Println("  runs       Inspect the scrape-run ledger")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  MSIGDUMP_DB      Path to the run-ledger database (default: msigdump.db)")
	fmt.Println("  MSIGDUMP_OUTPUT  Default output TSV path (default: msigdb_genesets.tsv)")
}
