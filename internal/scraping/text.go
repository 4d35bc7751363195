package scraping

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockTags are elements whose closing boundary implies a line break in
// the rendered page. Collapsing them to newlines lets the profile parsers
// split on lines the way a browser's visible text would.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"dl": true, "dt": true, "dd": true, "table": true, "tr": true,
	"section": true, "article": true, "header": true, "footer": true,
	"blockquote": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true,
}

func appendNodeText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "br":
			b.WriteString("\n")
			return
		case "script", "style":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendNodeText(c, b)
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		b.WriteString("\n")
	}
}

// blockText renders the selection's text content with newlines at block
// element boundaries, each line trimmed and blank lines dropped.
func blockText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		appendNodeText(n, &b)
	}
	lines := make([]string, 0, 8)
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
