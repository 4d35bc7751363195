package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordan/career-compass/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ParsedResume{
		Contact: types.ContactInfo{
			Name:  "Jordan Smith",
			Email: "jordan@example.com",
		},
		Skills: []string{"Go", "Python", "SQL", "Docker", "Postgres", "Redis"},
		Education: []types.EducationEntry{
			{Degree: "BS: Computer Science", Institution: "Texas A&M University", Year: "May 2025"},
		},
		Experience: []types.ExperienceEntry{
			{Title: "Intern", Company: "Acme", Duration: "May 2024 - August 2024"},
		},
		PageCount: 2,
	}

	p.PrintResume(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jordan Smith")
	assert.Contains(t, output, "jordan@example.com")
	assert.Contains(t, output, "(none)") // phone not found
	assert.Contains(t, output, "BS: Computer Science")
	assert.Contains(t, output, "Intern @ Acme")
	assert.Contains(t, output, "... and 1 more") // sixth skill truncated
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintEmployer(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	employer := &types.EmployerProfile{
		CompanyName:   "Acme Robotics",
		Industry:      "Robotics",
		PositionTypes: []string{"Internship", "Full-Time"},
		AllSections: map[string]string{
			"About Us": "Acme builds robots.",
		},
	}

	p.PrintEmployer(employer)
	output := buf.String()

	assert.Contains(t, output, "EMPLOYER PROFILE")
	assert.Contains(t, output, "Acme Robotics")
	assert.Contains(t, output, "Internship, Full-Time")
	assert.Contains(t, output, "About Us")
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis("## Fit Summary\nStrong match.")
	output := buf.String()

	assert.Contains(t, output, "CAREER FIT ANALYSIS")
	assert.Contains(t, output, "Strong match.")

	buf.Reset()
	p.PrintAnalysis("")
	assert.Empty(t, buf.String())
}
