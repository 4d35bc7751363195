package scraping

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jordan/career-compass/internal/types"
)

// parseProfileSection splits section content into key/value pairs on the
// first colon of each line. Lines without a colon are collected under the
// "content" key so no text is lost.
func parseProfileSection(content string) map[string]string {
	profile := make(map[string]string)
	if content == "" {
		return profile
	}

	var loose []string
	for _, line := range strings.Split(content, "\n") {
		if key, value, ok := strings.Cut(line, ":"); ok {
			profile[strings.TrimSpace(key)] = strings.TrimSpace(value)
			continue
		}
		if line = strings.TrimSpace(line); line != "" {
			loose = append(loose, line)
		}
	}
	if len(loose) > 0 {
		profile["content"] = strings.Join(loose, "\n")
	}
	return profile
}

// parseListField splits a field value on commas, falling back to
// newlines, falling back to treating the whole value as one item.
func parseListField(value string) []string {
	if value == "" {
		return nil
	}
	sep := "\n"
	if strings.Contains(value, ",") {
		sep = ","
	}
	var items []string
	for _, item := range strings.Split(value, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// applyStructuredFields scans labeled fields (labels, definition terms,
// bold text) and maps the recognized ones onto the profile.
func applyStructuredFields(doc *goquery.Document, profile *types.EmployerProfile) {
	doc.Find("label, .label, .field-label, dt, strong, b").Each(func(_ int, label *goquery.Selection) {
		labelText := strings.ToLower(strings.TrimSpace(blockText(label)))
		labelText = strings.ReplaceAll(labelText, ":", "")
		if labelText == "" {
			return
		}

		value := valueForLabel(label)
		if value == "" {
			return
		}

		switch {
		case strings.Contains(labelText, "industr"):
			profile.Industry = value
		case strings.Contains(labelText, "website") || strings.Contains(labelText, "url"):
			profile.Website = value
		case strings.Contains(labelText, "position") && strings.Contains(labelText, "type"):
			profile.PositionTypes = parseListField(value)
		case strings.Contains(labelText, "major") && strings.Contains(labelText, "recruit"):
			profile.MajorsRecruited = parseListField(value)
		case strings.Contains(labelText, "class") && strings.Contains(labelText, "year"):
			profile.DesiredClassYears = parseListField(value)
		case strings.Contains(labelText, "booth") && strings.Contains(labelText, "location"):
			profile.BoothLocation = value
		case strings.Contains(labelText, "email"),
			strings.Contains(labelText, "phone"),
			strings.Contains(labelText, "contact"):
			if profile.ContactInfo == nil {
				profile.ContactInfo = make(map[string]string)
			}
			profile.ContactInfo[labelText] = value
		}
	})
}

// valueForLabel resolves the value element for a label: the label's next
// sibling, then its parent's next sibling, then a following dd.
func valueForLabel(label *goquery.Selection) string {
	if next := label.Next(); next.Length() > 0 {
		if text := blockText(next); text != "" {
			return text
		}
	}
	if next := label.Parent().Next(); next.Length() > 0 {
		if text := blockText(next); text != "" {
			return text
		}
	}
	if dd := label.NextAllFiltered("dd").First(); dd.Length() > 0 {
		return blockText(dd)
	}
	return ""
}
