// Package parsing converts unstructured résumé text into a structured
// document model using positional and lexical heuristics. Résumés have no
// fixed grammar, so every extractor here is best-effort: a heuristic that
// finds nothing yields an empty field, never an error.
package parsing

// Keywords holds the literal token tables the extractors match against.
// It is passed explicitly to each extractor rather than living in package
// globals so tests can substitute custom sets.
type Keywords struct {
	// Header spellings per section kind.
	Education  []string
	Experience []string
	Activities []string
	Projects   []string
	Skills     []string

	// Terminators is the master list of all recognized section headers.
	// Any of them bounds the current section, even one the caller is not
	// extracting at the moment.
	Terminators []string

	// DegreeIndicators are fragments that mark a line as a degree.
	DegreeIndicators []string

	// HonorKeywords mark a trailing line as honors/GPA additional info.
	HonorKeywords []string
}

// DefaultKeywords returns the token tables covering the commonly seen
// résumé conventions this engine targets.
func DefaultKeywords() Keywords {
	return Keywords{
		Education:  []string{"EDUCATION", "ACADEMIC BACKGROUND"},
		Experience: []string{"EXPERIENCE", "WORK EXPERIENCE", "PROFESSIONAL EXPERIENCE"},
		Activities: []string{"ACTIVITIES"},
		Projects:   []string{"PROJECTS"},
		Skills:     []string{"TECHNICAL SKILLS", "SKILLS"},
		Terminators: []string{
			"EDUCATION", "EXPERIENCE", "SKILLS", "TECHNICAL SKILLS",
			"ACTIVITIES", "PROJECTS", "AWARDS", "SUMMARY", "CERTIFICATIONS",
			"PUBLICATIONS", "HONORS", "REFERENCES", "OBJECTIVE",
		},
		DegreeIndicators: []string{
			"BS:", "BA:", "MS:", "MA:", "PhD:", "B.S.", "M.S.",
			"Bachelor", "Master", "Associate", "B.E.", "M.E.",
		},
		HonorKeywords: []string{"honor", "gpa", "distinction", "dean", "scholarship"},
	}
}
