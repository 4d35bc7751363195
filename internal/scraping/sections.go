package scraping

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minSections is the point below which the heading-driven pass is
// considered to have missed the page layout and the container-driven
// fallback kicks in.
const minSections = 3

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true,
}

// extractSections pairs page headings with the content that follows them.
// Career-fair pages mark section titles with h2 or an fg-title class.
func extractSections(doc *goquery.Document) map[string]string {
	sections := make(map[string]string)

	doc.Find("h2, .fg-title").Each(func(_ int, heading *goquery.Selection) {
		title := strings.TrimSpace(blockText(heading))
		if title == "" {
			return
		}
		if _, ok := sections[title]; ok {
			return
		}
		if content := contentAfterHeading(heading); content != "" {
			sections[title] = content
		}
	})

	return sections
}

// contentAfterHeading walks the heading's following siblings until the
// next heading or a list-border divider, accumulating their text. When
// the heading has no content siblings of its own, the walk retries from
// the heading's parent, which covers layouts that wrap each title in its
// own element.
func contentAfterHeading(heading *goquery.Selection) string {
	if parts := siblingContent(heading); len(parts) > 0 {
		return strings.Join(parts, "\n")
	}
	if parts := siblingContent(heading.Parent()); len(parts) > 0 {
		return strings.Join(parts, "\n")
	}
	return ""
}

func siblingContent(start *goquery.Selection) []string {
	var parts []string
	for cur := start.Next(); cur.Length() > 0; cur = cur.Next() {
		cls, _ := cur.Attr("class")
		if strings.Contains(cls, "list-border") {
			break
		}
		if headingTags[goquery.NodeName(cur)] {
			break
		}
		if strings.Contains(cls, "title") || strings.Contains(cls, "heading") {
			break
		}
		if text := blockText(cur); text != "" {
			parts = append(parts, text)
		}
	}
	return parts
}

// extractSectionsAlternative looks for self-contained section containers
// that carry both a title and their content. It is used when the heading
// walk finds fewer than minSections sections.
func extractSectionsAlternative(doc *goquery.Document) map[string]string {
	sections := make(map[string]string)

	selectors := []string{
		"section",
		"div.section",
		`div[class*="section"]`,
		`div[class*="panel"]`,
		`div[class*="card"]`,
		`div[class*="box"]`,
	}

	for _, selector := range selectors {
		doc.Find(selector).Each(func(_ int, container *goquery.Selection) {
			titleElem := container.Find(`h2, h3, h4, .title, .heading, [class*="title"]`).First()
			if titleElem.Length() == 0 {
				return
			}
			title := strings.TrimSpace(blockText(titleElem))
			if title == "" {
				return
			}
			if _, ok := sections[title]; ok {
				return
			}
			content := blockText(container)
			content = strings.TrimSpace(strings.TrimPrefix(content, title))
			if content != "" {
				sections[title] = content
			}
		})
	}

	return sections
}
