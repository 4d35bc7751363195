package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jordan/career-compass/internal/types"
)

// Sentinel values distinguishing "platform referenced but link unparsable"
// from "not mentioned at all". Downstream consumers use them to decide
// whether to prompt the user for a link.
const (
	LinkedInMentioned = "LinkedIn profile mentioned"
	GitHubMentioned   = "GitHub profile mentioned"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`\+?\(?\d[\d()\-. ]{8,}\d`)
	phoneRunRe = regexp.MustCompile(`\d{3}[-.\s]?\d{3}`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+`)
	locationRe = regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z]{2})\b`)
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
	headLineCount  = 5
)

// ExtractContact derives contact information from the whole document.
// Contact blocks rarely carry a reliable header, so this scans raw text
// rather than a located section. Every field is best-effort.
func ExtractContact(text string) types.ContactInfo {
	contact := types.ContactInfo{}
	head := headLines(text)

	contact.Name = extractName(head)
	contact.Email = emailRe.FindString(text)
	contact.Phone = extractPhone(text)
	contact.LinkedIn = extractProfile(text, linkedinRe, "linkedin", LinkedInMentioned)
	contact.GitHub = extractProfile(text, githubRe, "github", GitHubMentioned)
	contact.Location = extractLocation(head)

	return contact
}

// headLines returns the first few non-empty trimmed lines of the text,
// where names and locations conventionally live.
func headLines(text string) []string {
	var head []string
	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		head = append(head, trimmed)
		if len(head) == headLineCount {
			break
		}
	}
	return head
}

// extractName accepts the first head line whose 2-4 whitespace-split
// tokens are all alphabetic after stripping periods and commas, skipping
// lines that carry an email or a phone-like digit run. Falls back to the
// first line when nothing qualifies.
func extractName(head []string) string {
	for _, line := range head {
		if strings.Contains(line, "@") || phoneRunRe.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allAlphabetic(words) {
			return line
		}
	}
	if len(head) > 0 {
		return head[0]
	}
	return ""
}

func allAlphabetic(words []string) bool {
	for _, w := range words {
		stripped := strings.NewReplacer(".", "", ",", "").Replace(w)
		if stripped == "" {
			return false
		}
		for _, r := range stripped {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

// extractPhone scans liberal digit/punctuation candidates and accepts the
// first whose digit count lands in the plausible phone range.
func extractPhone(text string) string {
	for _, candidate := range phoneRe.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= minPhoneDigits && digits <= maxPhoneDigits {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// extractProfile returns the first matching profile URL, or the sentinel
// when the platform is mentioned without a parsable link.
func extractProfile(text string, re *regexp.Regexp, word, sentinel string) string {
	if match := re.FindString(text); match != "" {
		return match
	}
	if strings.Contains(strings.ToLower(text), word) {
		return sentinel
	}
	return ""
}

// extractLocation looks for a "City, ST" pattern in the head lines.
func extractLocation(head []string) string {
	for _, line := range head {
		if m := locationRe.FindStringSubmatch(line); m != nil {
			return m[1] + ", " + m[2]
		}
	}
	return ""
}
