// Package scraping extracts structured employer profiles from career-fair
// pages. It works over already-fetched HTML so the fetch strategy (plain
// HTTP or headless browser) stays a caller concern.
package scraping

import "fmt"

// ScrapeError represents a failure while building an employer profile.
type ScrapeError struct {
	URL     string
	Message string
	Cause   error
}

func (e *ScrapeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scrape error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("scrape error for %s: %s", e.URL, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Cause
}
