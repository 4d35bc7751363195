// Package pdftext extracts the embedded text layer from PDF files.
//
// Only vector text is read; scanned (image-only) PDFs come back empty and
// would need OCR, which is out of scope here.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Source decodes résumé PDFs into plain text plus a page count. It
// satisfies the parser's text-source contract.
type Source struct{}

// NewSource returns a PDF text source.
func NewSource() *Source {
	return &Source{}
}

// Extract reads the text layer of every page and returns the joined text
// and the page count. A file that cannot be opened or decoded is a fatal
// error for the caller; there is no partial result.
func (s *Source) Extract(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	numPages := r.NumPage()
	fonts := make(map[string]*pdf.Font)
	var pages []string

	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			return "", 0, fmt.Errorf("read pdf page %d of %s: %w", i, path, pageErr)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), numPages, nil
}
