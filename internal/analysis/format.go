package analysis

import (
	"fmt"
	"strings"

	"github.com/jordan/career-compass/internal/types"
)

// maxBulletsPerRole caps how many description bullets per role make it
// into the model input.
const maxBulletsPerRole = 3

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// FormatResume renders a parsed résumé as the plain-text block fed to
// the model.
func FormatResume(resume *types.ParsedResume) string {
	var b strings.Builder
	b.WriteString("RESUME INFORMATION\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	contact := resume.Contact
	fmt.Fprintf(&b, "Name: %s\n", valueOr(contact.Name, "N/A"))
	fmt.Fprintf(&b, "Email: %s\n", valueOr(contact.Email, "N/A"))
	fmt.Fprintf(&b, "Phone: %s\n", valueOr(contact.Phone, "N/A"))
	fmt.Fprintf(&b, "Location: %s\n", valueOr(contact.Location, "N/A"))
	if contact.LinkedIn != "" {
		fmt.Fprintf(&b, "LinkedIn: %s\n", contact.LinkedIn)
	}
	if contact.GitHub != "" {
		fmt.Fprintf(&b, "GitHub: %s\n", contact.GitHub)
	}
	b.WriteString("\n")

	if len(resume.Skills) > 0 {
		b.WriteString("SKILLS:\n")
		b.WriteString(strings.Join(resume.Skills, ", ") + "\n\n")
	}

	if len(resume.Education) > 0 {
		b.WriteString("EDUCATION:\n")
		for _, edu := range resume.Education {
			fmt.Fprintf(&b, "- %s\n", valueOr(edu.Degree, "N/A"))
			fmt.Fprintf(&b, "  %s\n", valueOr(edu.Institution, "N/A"))
			if edu.Year != "" {
				fmt.Fprintf(&b, "  %s\n", edu.Year)
			}
			b.WriteString("\n")
		}
	}

	if len(resume.Experience) > 0 {
		b.WriteString("EXPERIENCE:\n")
		for _, exp := range resume.Experience {
			fmt.Fprintf(&b, "- %s at %s\n", valueOr(exp.Title, "N/A"), valueOr(exp.Company, "N/A"))
			if exp.Duration != "" {
				fmt.Fprintf(&b, "  %s\n", exp.Duration)
			}
			for i, desc := range exp.Description {
				if i >= maxBulletsPerRole {
					break
				}
				fmt.Fprintf(&b, "  • %s\n", desc)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FormatCompany renders an employer profile as the plain-text block fed
// to the model.
func FormatCompany(employer *types.EmployerProfile) string {
	var b strings.Builder
	b.WriteString("COMPANY INFORMATION\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "Company Name: %s\n\n", valueOr(employer.CompanyName, "N/A"))

	if employer.About != "" {
		fmt.Fprintf(&b, "About:\n%s\n\n", employer.About)
	}
	if employer.WeAreLookingFor != "" {
		fmt.Fprintf(&b, "We Are Looking For:\n%s\n\n", employer.WeAreLookingFor)
	}
	if employer.Industry != "" {
		fmt.Fprintf(&b, "Industry: %s\n\n", employer.Industry)
	}
	if employer.Website != "" {
		fmt.Fprintf(&b, "Website: %s\n\n", employer.Website)
	}
	if len(employer.PositionTypes) > 0 {
		fmt.Fprintf(&b, "Position Types: %s\n\n", strings.Join(employer.PositionTypes, ", "))
	}
	if len(employer.MajorsRecruited) > 0 {
		fmt.Fprintf(&b, "Majors Recruited: %s\n\n", strings.Join(employer.MajorsRecruited, ", "))
	}

	return b.String()
}
