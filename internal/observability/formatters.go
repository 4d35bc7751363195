// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jordan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the parsed résumé.
func (p *Printer) PrintResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orNone(resume.Contact.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orNone(resume.Contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orNone(resume.Contact.Phone)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orNone(resume.Contact.Location)))
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", resume.PageCount))
	sb.WriteString("\n")

	if len(resume.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(resume.Skills)))
		count := min(len(resume.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Skills[i]))
		}
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, edu := range resume.Education {
			sb.WriteString(fmt.Sprintf("  • %s\n", edu.Degree))
			sb.WriteString(fmt.Sprintf("    %s", edu.Institution))
			if edu.Year != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", edu.Year))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(resume.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d entries):\n", len(resume.Experience)))
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			sb.WriteString("\n")
			if exp.Duration != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", exp.Duration))
			}
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEmployer outputs a human-readable summary of a scraped employer profile.
func (p *Printer) PrintEmployer(employer *types.EmployerProfile) {
	if employer == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", orNone(employer.CompanyName)))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", orNone(employer.Industry)))
	sb.WriteString(fmt.Sprintf("Website:  %s\n", orNone(employer.Website)))

	if len(employer.PositionTypes) > 0 {
		sb.WriteString(fmt.Sprintf("Hiring:   %s\n", strings.Join(employer.PositionTypes, ", ")))
	}
	if len(employer.MajorsRecruited) > 0 {
		sb.WriteString(fmt.Sprintf("Majors:   %s\n", strings.Join(employer.MajorsRecruited, ", ")))
	}

	if len(employer.AllSections) > 0 {
		sb.WriteString(fmt.Sprintf("\nSections found (%d):\n", len(employer.AllSections)))
		shown := 0
		for title := range employer.AllSections {
			if shown >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(employer.AllSections)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", title))
			shown++
		}
	}

	p.printBox("EMPLOYER PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the model's career-fit advice.
func (p *Printer) PrintAnalysis(text string) {
	if text == "" {
		return
	}
	p.printBox("CAREER FIT ANALYSIS", strings.TrimSpace(text))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
