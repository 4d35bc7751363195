package parsing

import "strings"

// maxHeaderLen is the longest a trimmed line can be and still count as a
// section header.
const maxHeaderLen = 50

// shortTerminatorLen bounds terminator lines that merely contain a header
// token without equalling it.
const shortTerminatorLen = 30

// numberedLine pairs a trimmed line with its index in the original text,
// so independently located sections can be re-merged in document order.
type numberedLine struct {
	index int
	text  string
}

// isHeaderLine reports whether a line introduces a section named by one of
// the given spellings. The triple equals/prefix/suffix check rejects
// headers that are merely mentioned mid-sentence.
func isHeaderLine(line string, spellings []string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= maxHeaderLen {
		return false
	}
	upper := strings.ToUpper(trimmed)
	for _, spelling := range spellings {
		spellingUpper := strings.ToUpper(spelling)
		if !strings.Contains(upper, spellingUpper) {
			continue
		}
		if upper == spellingUpper ||
			strings.HasPrefix(upper, spellingUpper) ||
			strings.HasSuffix(upper, spellingUpper) {
			return true
		}
	}
	return false
}

// isTerminatorLine reports whether a line ends the current section: a
// short line containing any recognized header token, either exactly or
// within a line under shortTerminatorLen characters.
func isTerminatorLine(line string, terminators []string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= maxHeaderLen {
		return false
	}
	upper := strings.ToUpper(trimmed)
	for _, term := range terminators {
		if strings.Contains(upper, term) && (upper == term || len(upper) < shortTerminatorLen) {
			return true
		}
	}
	return false
}

// locateSection finds the line range belonging to the section introduced
// by one of the given header spellings. The returned range starts at the
// line after the header and ends (exclusive) at the next recognized
// section header of any kind, or at the end of the text. ok is false when
// no header matches; the caller treats the section as absent.
func locateSection(lines []string, spellings []string, kw Keywords) (start, end int, ok bool) {
	start = -1
	for i, line := range lines {
		if isHeaderLine(line, spellings) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}

	end = len(lines)
	for i := start; i < len(lines); i++ {
		if isTerminatorLine(lines[i], kw.Terminators) {
			end = i
			break
		}
	}
	return start, end, true
}

// sectionLines returns the trimmed non-empty lines within [start, end),
// each tagged with its original line index.
func sectionLines(lines []string, start, end int) []numberedLine {
	var out []numberedLine
	for i := start; i < end && i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed != "" {
			out = append(out, numberedLine{index: i, text: trimmed})
		}
	}
	return out
}

// splitLines splits raw text into lines, tolerating both \n and \r\n.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
