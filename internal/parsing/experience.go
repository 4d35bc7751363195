package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jordan/career-compass/internal/types"
)

const months = `January|February|March|April|May|June|July|August|September|October|November|December|` +
	`Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

// durationRe matches "Month Year - Month Year" style ranges, with an open
// "Present" end or a bare closing year also accepted.
var durationRe = regexp.MustCompile(
	`(?:` + months + `)\s+\d{4}\s*[-–—]\s*(?:Present|present|(?:` + months + `)(?:\s+\d{4})?|\d{4})`)

const bulletGlyphs = "●•-"

// expState names the sub-states of the experience scan. The cursor moves
// through entries one lookahead at a time; the states make the exit
// branches explicit.
type expState int

const (
	awaitEntryStart expState = iota
	awaitTitleOrBullet
	collectingDescription
)

// ExtractExperience parses experience-like sections into
// title/company/duration/description entries. Work history, activities,
// and projects share the same entry shape, so all three section kinds are
// located independently and merged back into document order before
// scanning; downstream consumers want one chronological list, not three.
func ExtractExperience(text string, kw Keywords) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}

	lines := splitLines(text)
	merged := mergeExperienceSections(lines, kw)
	if len(merged) == 0 {
		return entries
	}

	var (
		state   = awaitEntryStart
		company string
		title   string
		dur     string
		desc    []string
	)

	emit := func() {
		if company != "" || title != "" {
			if desc == nil {
				desc = []string{}
			}
			entries = append(entries, types.ExperienceEntry{
				Title:       title,
				Company:     company,
				Duration:    dur,
				Description: desc,
			})
		}
		company, title, dur, desc = "", "", "", nil
		state = awaitEntryStart
	}

	i := 0
	for i < len(merged) {
		line := merged[i].text

		switch state {
		case awaitEntryStart:
			// Bullet lines and orphaned date lines at entry level carry no
			// company to attach to.
			if isBulletLine(line) || durationRe.MatchString(line) {
				i++
				continue
			}
			company = line
			state = awaitTitleOrBullet
			i++

		case awaitTitleOrBullet:
			if isBulletLine(line) {
				// No title line at all: a company-only entry whose bullets
				// start immediately.
				state = collectingDescription
				continue
			}
			if loc := durationRe.FindStringIndex(line); loc != nil {
				dur = strings.TrimSpace(line[loc[0]:loc[1]])
				title = strings.Trim(line[:loc[0]], "-–— \t")
				i++
				state = collectingDescription
				continue
			}
			title = line
			i++
			// A standalone duration line may follow the title.
			if i < len(merged) && !isBulletLine(merged[i].text) && durationRe.MatchString(merged[i].text) {
				dur = strings.TrimSpace(merged[i].text)
				i++
			}
			state = collectingDescription

		case collectingDescription:
			if isBulletLine(line) {
				if bullet := stripBullet(line); bullet != "" {
					desc = append(desc, bullet)
				}
				i++
				continue
			}
			emit()
		}
	}

	// Flush the entry in progress when the section ends mid-state.
	emit()

	return entries
}

// mergeExperienceSections locates the experience, activities, and projects
// sections independently, tags their non-empty lines with original line
// indices, and re-sorts across sections so document order survives.
func mergeExperienceSections(lines []string, kw Keywords) []numberedLine {
	groups := [][]string{kw.Experience, kw.Activities, kw.Projects}

	var merged []numberedLine
	for _, spellings := range groups {
		if start, end, ok := locateSection(lines, spellings, kw); ok {
			merged = append(merged, sectionLines(lines, start, end)...)
		}
	}

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].index < merged[b].index
	})
	return merged
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "●") ||
		strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "-")
}

func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, bulletGlyphs))
}
