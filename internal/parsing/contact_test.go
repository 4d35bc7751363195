package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact_BasicHeader(t *testing.T) {
	text := "Jane Doe\njane@x.com\n(512) 555-0187\nAustin, TX\n"

	contact := ExtractContact(text)
	assert.Equal(t, "Jane Doe", contact.Name)
	assert.Equal(t, "jane@x.com", contact.Email)
	assert.Equal(t, "(512) 555-0187", contact.Phone)
	assert.Equal(t, "Austin, TX", contact.Location)
}

func TestExtractContact_NameSkipsEmailAndPhoneLines(t *testing.T) {
	text := "jane@x.com\n512-555-0187\nJane Ann Doe\n"
	assert.Equal(t, "Jane Ann Doe", ExtractContact(text).Name)
}

func TestExtractContact_NameAllowsPunctuatedTokens(t *testing.T) {
	assert.Equal(t, "Dr. Jane Q. Doe", ExtractContact("Dr. Jane Q. Doe\n").Name)
}

func TestExtractContact_NameFallsBackToFirstLine(t *testing.T) {
	// One token only, so the 2-4 word heuristic never matches.
	text := "Cher\nsinger and actress from a long biography line\n"
	assert.Equal(t, "Cher", ExtractContact(text).Name)
}

func TestExtractContact_NameRejectsNonAlphabeticTokens(t *testing.T) {
	// "123 Main" fails the alphabetic check; the next candidate wins.
	text := "123 Main\nJane Doe\n"
	assert.Equal(t, "Jane Doe", ExtractContact(text).Name)
}

func TestExtractContact_PhoneDigitCountBounds(t *testing.T) {
	// 9 digits: too short to be a phone number.
	assert.Empty(t, ExtractContact("call 123-456-789 now").Phone)

	// 10 digits qualifies.
	assert.Equal(t, "123-456-7890", ExtractContact("call 123-456-7890 now").Phone)

	// International format with country code.
	assert.Equal(t, "+1 (512) 555-0187", ExtractContact("+1 (512) 555-0187").Phone)
}

func TestExtractContact_ProfileURLs(t *testing.T) {
	text := "https://www.linkedin.com/in/jane-doe\ngithub.com/janedoe\n"

	contact := ExtractContact(text)
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe", contact.LinkedIn)
	assert.Equal(t, "github.com/janedoe", contact.GitHub)
}

func TestExtractContact_MentionWithoutURLSetsSentinel(t *testing.T) {
	// Scenario D: the platform is referenced but no link is parsable.
	contact := ExtractContact("Find me on LinkedIn and GitHub\n")
	assert.Equal(t, LinkedInMentioned, contact.LinkedIn)
	assert.Equal(t, GitHubMentioned, contact.GitHub)
}

func TestExtractContact_NoMentionLeavesFieldsEmpty(t *testing.T) {
	contact := ExtractContact("Jane Doe\njane@x.com\n")
	assert.Empty(t, contact.LinkedIn)
	assert.Empty(t, contact.GitHub)
}

func TestExtractContact_MultiWordCityLocation(t *testing.T) {
	assert.Equal(t, "College Station, TX", ExtractContact("Jane Doe\nCollege Station, TX\n").Location)
}

func TestExtractContact_EmptyTextYieldsEmptyContact(t *testing.T) {
	contact := ExtractContact("")
	assert.Empty(t, contact.Name)
	assert.Empty(t, contact.Email)
	assert.Empty(t, contact.Phone)
	assert.Empty(t, contact.Location)
}
