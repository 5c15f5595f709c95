package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pevans/msigdump"
	"github.com/pevans/msigdump/config"
)

func handleRunsCommand(action string, args []string) {
	switch action {
	case "list":
		handleRunsList(args)
	case "help", "--help", "-h":
		printRunsUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown runs command: %s\n\n", action)
		printRunsUsage()
		os.Exit(1)
	}
}

func printRunsUsage() {
	fmt.Println("msigdump runs - Inspect the scrape-run ledger")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  msigdump runs <action>")
	fmt.Println()
	fmt.Println("Actions:")
	fmt.Println("  list       List recorded scrape runs")
	fmt.Println("  help       Show this help message")
}

func handleRunsList(args []string) {
	fs := flag.NewFlagSet("runs list", flag.ExitOnError)
	fs.Parse(args)

	dbPath := getEnv("MSIGDUMP_DB", config.DefaultDatabase)
	ledger, err := msigdump.NewRunStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open run ledger: %v\n", err)
		os.Exit(1)
	}
	defer ledger.Close()

	runs, err := ledger.ListRuns()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to list runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return
	}

	// Print table header
	fmt.Printf("%-36s %-20s %8s %8s %-30s %s\n", "ID", "FINISHED", "RECORDS", "SKIPPED", "OUTPUT", "STATUS")
	fmt.Println("--------------------------------------------------------------------------------------------------------------")

	for _, run := range runs {
		status := "ok"
		if run.LastError != nil {
			status = "error: " + *run.LastError
			if len(status) > 40 {
				status = status[:37] + "..."
			}
		}

		output := run.OutputPath
		if len(output) > 30 {
			output = output[:27] + "..."
		}

		fmt.Printf("%-36s %-20s %8d %8d %-30s %s\n",
			run.RunID.String(),
			run.FinishedAt.Format(time.DateTime),
			run.RecordCount,
			run.Skipped,
			output,
			status,
		)
	}
}
