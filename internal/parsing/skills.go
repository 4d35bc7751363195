package parsing

import "strings"

// maxBareSkillLen bounds a line treated as one skill token; anything
// longer is prose, not a skill.
const maxBareSkillLen = 100

// ExtractSkills parses the skills section into a flat token list.
// Category lines ("Languages: Java, Python") contribute the comma-split
// remainder; plain comma lists split directly; a short bare line is one
// token. Order of appearance is preserved and nothing is deduplicated.
func ExtractSkills(text string, kw Keywords) []string {
	skills := []string{}

	lines := splitLines(text)
	start, end, ok := locateSection(lines, kw.Skills, kw)
	if !ok {
		return skills
	}

	for _, nl := range sectionLines(lines, start, end) {
		line := stripBullet(nl.text)
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, ":"):
			_, rest, _ := strings.Cut(line, ":")
			skills = appendTokens(skills, rest)
		case strings.Contains(line, ","):
			skills = appendTokens(skills, line)
		case len(line) < maxBareSkillLen:
			skills = append(skills, line)
		}
	}

	return skills
}

func appendTokens(skills []string, csv string) []string {
	for _, token := range strings.Split(csv, ",") {
		if token = strings.TrimSpace(token); token != "" {
			skills = append(skills, token)
		}
	}
	return skills
}
