package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateSection_ExactHeader(t *testing.T) {
	kw := DefaultKeywords()
	lines := splitLines("John Smith\nEDUCATION\nMIT\nBS: Math\nSKILLS\nGo")

	start, end, ok := locateSection(lines, kw.Education, kw)
	require.True(t, ok)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)
}

func TestLocateSection_RangeCoversExactlyTheSectionBody(t *testing.T) {
	// A header line followed by N lines before the next recognized header
	// must yield a range of exactly N lines.
	kw := DefaultKeywords()
	body := []string{"line one", "line two", "line three", "line four"}
	text := "SKILLS\n" + strings.Join(body, "\n") + "\nEDUCATION\nMIT"

	start, end, ok := locateSection(splitLines(text), kw.Skills, kw)
	require.True(t, ok)
	assert.Equal(t, len(body), end-start)
}

func TestLocateSection_NoHeaderReturnsNotFound(t *testing.T) {
	kw := DefaultKeywords()
	_, _, ok := locateSection(splitLines("just some text\nnothing here"), kw.Education, kw)
	assert.False(t, ok)
}

func TestLocateSection_RejectsMidSentenceMention(t *testing.T) {
	kw := DefaultKeywords()
	// The word appears mid-sentence, not as a header.
	lines := splitLines("I value education above all, it matters\nunrelated")
	_, _, ok := locateSection(lines, kw.Education, kw)
	assert.False(t, ok)
}

func TestLocateSection_AcceptsPrefixAndSuffixForms(t *testing.T) {
	kw := DefaultKeywords()

	start, _, ok := locateSection(splitLines("Education:\nMIT"), kw.Education, kw)
	require.True(t, ok)
	assert.Equal(t, 1, start)

	start, _, ok = locateSection(splitLines("My Education\nMIT"), kw.Education, kw)
	require.True(t, ok)
	assert.Equal(t, 1, start)
}

func TestLocateSection_CaseInsensitive(t *testing.T) {
	kw := DefaultKeywords()
	start, end, ok := locateSection(splitLines("education\nMIT\nskills\nGo"), kw.Education, kw)
	require.True(t, ok)
	assert.Equal(t, 1, start)
	assert.Equal(t, 2, end)
}

func TestLocateSection_LongLineIsNotAHeader(t *testing.T) {
	kw := DefaultKeywords()
	long := "EDUCATION " + strings.Repeat("x", 60)
	_, _, ok := locateSection(splitLines(long+"\nMIT"), kw.Education, kw)
	assert.False(t, ok)
}

func TestLocateSection_AnyRecognizedHeaderTerminates(t *testing.T) {
	// AWARDS is not a section the caller extracts, but it still bounds the
	// education section.
	kw := DefaultKeywords()
	lines := splitLines("EDUCATION\nMIT\nBS: Math\nAWARDS\nDean's List")

	start, end, ok := locateSection(lines, kw.Education, kw)
	require.True(t, ok)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)
}

func TestLocateSection_NoTerminatorRunsToEndOfText(t *testing.T) {
	kw := DefaultKeywords()
	lines := splitLines("EDUCATION\nMIT\nBS: Math\nMay 2020")

	_, end, ok := locateSection(lines, kw.Education, kw)
	require.True(t, ok)
	assert.Equal(t, len(lines), end)
}

func TestSectionLines_TagsOriginalIndices(t *testing.T) {
	lines := splitLines("a\n\n  b \nc")
	got := sectionLines(lines, 0, len(lines))

	require.Len(t, got, 3)
	assert.Equal(t, numberedLine{index: 0, text: "a"}, got[0])
	assert.Equal(t, numberedLine{index: 2, text: "b"}, got[1])
	assert.Equal(t, numberedLine{index: 3, text: "c"}, got[2])
}

func TestSplitLines_HandlesCRLF(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb"))
}
