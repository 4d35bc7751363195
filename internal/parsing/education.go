package parsing

import (
	"regexp"
	"strings"

	"github.com/jordan/career-compass/internal/types"
)

// yearRe matches graduation year tokens: an optional "Expected in"
// qualifier, an optional month, a 4-digit year, and an optional
// dash-separated second month/year forming a range.
var yearRe = regexp.MustCompile(
	`(?i)(?:Expected\s+in\s+)?(?:May|June|August|December|Jan|Feb|Mar|Apr|Jul|Sep|Oct|Nov)?\s*\d{4}` +
		`(?:\s*[-–]\s*(?:May|June|August|December|Jan|Feb|Mar|Apr|Jul|Sep|Oct|Nov)?\s*\d{4})?`)

// yearWindowAfterDegree is how many lines past the degree line the year
// search extends. A year token further out belongs to another entry.
const yearWindowAfterDegree = 4

// institutionMarkers disqualify a line from being consumed as
// additional info, since it likely starts a new entry instead.
var institutionMarkers = []string{"University", "College", "Institute", "School"}

// ExtractEducation parses the education section into degree/institution
// entries. The layout this targets is institution on one line with the
// degree immediately below; an institution line not followed by a
// recognized degree token is dropped and the cursor moves on.
func ExtractEducation(text string, kw Keywords) []types.EducationEntry {
	entries := []types.EducationEntry{}

	lines := splitLines(text)
	start, end, ok := locateSection(lines, kw.Education, kw)
	if !ok {
		return entries
	}

	section := sectionLines(lines, start, end)

	i := 0
	for i < len(section) {
		line := section[i].text
		if strings.HasPrefix(line, "●") || strings.HasPrefix(line, "•") {
			i++
			continue
		}

		if i+1 >= len(section) {
			break
		}

		next := section[i+1].text
		if !containsAny(next, kw.DegreeIndicators) {
			i++
			continue
		}

		entry := types.EducationEntry{
			Institution: line,
			Degree:      next,
			Year:        findYear(section, i, i+1),
		}

		// One more line may carry honors/GPA info, unless it looks like
		// the start of the next entry.
		consumed := 2
		if i+2 < len(section) {
			if info := additionalInfo(section[i+2].text, kw); info != "" {
				entry.AdditionalInfo = info
				consumed = 3
			}
		}

		entries = append(entries, entry)
		i += consumed
	}

	return entries
}

// findYear searches the entry's line window for a year token, preserving
// the "Expected in" qualifier when it precedes the matched text.
func findYear(section []numberedLine, entryStart, degreeIdx int) string {
	limit := degreeIdx + yearWindowAfterDegree + 1
	if limit > len(section) {
		limit = len(section)
	}
	for j := entryStart; j < limit; j++ {
		line := section[j].text
		loc := yearRe.FindStringIndex(line)
		if loc == nil {
			continue
		}
		match := strings.TrimSpace(line[loc[0]:loc[1]])
		before := strings.ToLower(line[:loc[0]])
		if strings.Contains(before, "expected") {
			return "Expected in " + match
		}
		return match
	}
	return ""
}

// additionalInfo returns the line when it reads as honors/GPA detail for
// the current entry, and empty otherwise.
func additionalInfo(line string, kw Keywords) string {
	if containsAny(line, institutionMarkers) {
		return ""
	}
	for _, deg := range kw.DegreeIndicators {
		if strings.HasPrefix(line, deg) {
			return ""
		}
	}
	lower := strings.ToLower(line)
	for _, honor := range kw.HonorKeywords {
		if strings.Contains(lower, honor) {
			return line
		}
	}
	return ""
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
