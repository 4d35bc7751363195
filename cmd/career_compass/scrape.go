package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordan/career-compass/internal/fetch"
	"github.com/jordan/career-compass/internal/observability"
	"github.com/jordan/career-compass/internal/scraping"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape a career-fair employer page into a company profile",
	Long:  "Fetch a career-fair employer page, extract its sections and structured fields, and print or save the company profile as JSON.",
	RunE:  runScrape,
}

var (
	scrapeURL        string
	scrapeOutputFile string
	scrapeUseBrowser bool
	scrapeTimeout    int
	scrapeVerbose    bool
)

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeURL, "url", "u", "", "Employer page URL (required)")
	scrapeCmd.Flags().StringVarP(&scrapeOutputFile, "out", "o", "", "Path to output JSON file (default: print to stdout)")
	scrapeCmd.Flags().BoolVar(&scrapeUseBrowser, "use-browser", false, "Use headless browser for JS-rendered pages (requires Chrome)")
	scrapeCmd.Flags().IntVar(&scrapeTimeout, "timeout", 0, "Fetch timeout in seconds")
	scrapeCmd.Flags().BoolVarP(&scrapeVerbose, "verbose", "v", false, "Print the scraped profile summary")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(_ *cobra.Command, _ []string) error {
	if scrapeURL == "" {
		return fmt.Errorf("--url is required")
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = scrapeUseBrowser
	if scrapeTimeout > 0 {
		opts.Timeout = time.Duration(scrapeTimeout) * time.Second
	}

	employer, err := scraping.Scrape(context.Background(), scrapeURL, opts)
	if err != nil {
		return fmt.Errorf("failed to scrape employer page: %w", err)
	}

	if scrapeVerbose {
		observability.NewPrinter(os.Stdout).PrintEmployer(employer)
	}

	jsonBytes, err := json.MarshalIndent(employer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if scrapeOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(scrapeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", scrapeOutputFile)
	return nil
}
