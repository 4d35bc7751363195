package scraping

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/jordan/career-compass/internal/fetch"
	"github.com/jordan/career-compass/internal/types"
)

// companyNameSelectors is tried in order; the first selector whose first
// match carries non-empty text wins.
var companyNameSelectors = []string{
	"h3", "h1", ".company-name", ".employer-name", ".flex-auto",
}

// Scrape fetches an employer page and builds its profile. JS-heavy pages
// get a headless-browser render via the fetch package's fallback.
func Scrape(ctx context.Context, pageURL string, opts *fetch.Options) (*types.EmployerProfile, error) {
	res, err := fetch.Page(ctx, pageURL, opts)
	if err != nil {
		return nil, &ScrapeError{URL: pageURL, Message: "failed to fetch page", Cause: err}
	}

	log.Debug().
		Str("url", pageURL).
		Bool("rendered", res.Rendered).
		Int("html_bytes", len(res.HTML)).
		Msg("fetched employer page")

	return BuildProfile(res.HTML, pageURL)
}

// BuildProfile extracts an employer profile from already-fetched HTML.
func BuildProfile(htmlContent, pageURL string) (*types.EmployerProfile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ScrapeError{URL: pageURL, Message: "failed to parse HTML", Cause: err}
	}

	profile := &types.EmployerProfile{
		URL:       pageURL,
		ScrapedAt: time.Now().UTC(),
	}

	profile.CompanyName = companyName(doc)

	sections := extractSections(doc)
	if len(sections) < minSections {
		log.Debug().
			Str("url", pageURL).
			Int("sections", len(sections)).
			Msg("few sections found, trying container extraction")
		for title, content := range extractSectionsAlternative(doc) {
			if _, ok := sections[title]; !ok {
				sections[title] = content
			}
		}
	}

	classifySections(sections, profile)
	applyStructuredFields(doc, profile)

	profile.AllSections = sections
	profile.AllTextContent = blockText(doc.Find("body"))

	if profile.CompanyName == "" && len(sections) == 0 {
		return profile, &ScrapeError{
			URL:     pageURL,
			Message: fmt.Sprintf("no recognizable employer content in %d bytes of HTML", len(htmlContent)),
		}
	}
	return profile, nil
}

func companyName(doc *goquery.Document) string {
	for _, selector := range companyNameSelectors {
		if name := strings.TrimSpace(blockText(doc.Find(selector).First())); name != "" {
			return name
		}
	}
	return ""
}

// classifySections routes well-known section titles into the profile's
// named fields. Unrecognized sections remain available via AllSections.
func classifySections(sections map[string]string, profile *types.EmployerProfile) {
	for title, content := range sections {
		lower := strings.ToLower(title)
		switch {
		case strings.Contains(lower, "about") && !strings.Contains(lower, "looking"):
			profile.About = content
		case strings.Contains(lower, "looking for"):
			profile.WeAreLookingFor = content
		case strings.Contains(lower, "organization profile"), strings.Contains(lower, "company profile"):
			profile.OrganizationProfile = parseProfileSection(content)
		case strings.Contains(lower, "event"), strings.Contains(lower, "booth"):
			profile.EventDetails = parseProfileSection(content)
		case strings.Contains(lower, "contact"):
			if profile.ContactInfo == nil {
				profile.ContactInfo = make(map[string]string)
			}
			for k, v := range parseProfileSection(content) {
				profile.ContactInfo[k] = v
			}
		}
	}
}
