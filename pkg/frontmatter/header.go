// Package frontmatter extracts the small, fixed set of metadata fields that
// SKILL.md files carry in their leading "---" delimited header block.
// The default extraction is a line scanner that understands single-line
// scalars, folded/literal block scalars and inline lists; a YAML backed
// extractor is available behind the same Extractor interface.
package frontmatter

import "strings"

const delimiter = "---"

// Header returns the text between the opening "---" line and the next "---"
// line. The opening delimiter must be the first line of the document. When
// there is no opening or no closing delimiter the header is reported as not found.
func Header(content string) (string, bool) {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := splitLines(content)

	if len(lines) == 0 || !isDelimiter(lines[0]) {
		return "", false
	}

	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			return strings.Join(lines[1:i], "\n"), true
		}
	}

	return "", false
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t") == delimiter
}

// splitLines splits on "\n" and drops the "\r" of CRLF line endings.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
