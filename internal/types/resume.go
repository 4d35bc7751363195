// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds contact details extracted from a résumé.
// Every field is optional; an empty string means the heuristic found nothing.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Location string `json:"location,omitempty"`
}

// EducationEntry is a single education record. Degree and Institution are
// required for the entry to exist; the rest is best-effort.
type EducationEntry struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Year           string `json:"year,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// ExperienceEntry is a single work/activity/project record. An entry is
// created whenever Title or Company is non-empty.
type ExperienceEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration,omitempty"`
	Description []string `json:"description"`
}

// ParsedResume is the aggregate result of one parse call. Sub-lists are
// always non-nil; a section the engine could not locate yields an empty
// list, never an error.
type ParsedResume struct {
	Contact    ContactInfo       `json:"contact"`
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	RawText    string            `json:"rawText,omitempty"`
	PageCount  int               `json:"pageCount"`
}

// ToRecord converts the parsed résumé into a key/value tree suitable for
// interchange serialization. Raw text is deliberately excluded; it is kept
// on the struct for downstream formatting only.
func (r *ParsedResume) ToRecord() map[string]any {
	contact := map[string]any{
		"name":     r.Contact.Name,
		"email":    r.Contact.Email,
		"phone":    r.Contact.Phone,
		"linkedin": r.Contact.LinkedIn,
		"github":   r.Contact.GitHub,
		"location": r.Contact.Location,
	}

	education := make([]map[string]any, 0, len(r.Education))
	for _, e := range r.Education {
		education = append(education, map[string]any{
			"degree":         e.Degree,
			"institution":    e.Institution,
			"year":           e.Year,
			"gpa":            e.GPA,
			"additionalInfo": e.AdditionalInfo,
		})
	}

	experience := make([]map[string]any, 0, len(r.Experience))
	for _, e := range r.Experience {
		desc := e.Description
		if desc == nil {
			desc = []string{}
		}
		experience = append(experience, map[string]any{
			"title":       e.Title,
			"company":     e.Company,
			"duration":    e.Duration,
			"description": desc,
		})
	}

	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}

	return map[string]any{
		"contact":    contact,
		"skills":     skills,
		"education":  education,
		"experience": experience,
		"pageCount":  r.PageCount,
	}
}
