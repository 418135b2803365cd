package frontmatter

import "strings"

// blockIndicators introduce a multi-line value on the following indented lines.
// All of them fold to a single space separated line.
var blockIndicators = map[string]bool{
	">-": true,
	">":  true,
	"|":  true,
}

// Scalar returns the value of a top-level key in the header block.
//
// "key: value" yields value with one layer of matching quotes removed.
// "key: >-", "key: >" and "key: |" collect every following line up to the
// next non-blank line that starts in column zero, joining the non-blank
// lines with single spaces. A key with nothing after the colon, or a key
// that is absent, yields "".
func Scalar(header, key string) string {
	lines := splitLines(header)

	for i, line := range lines {
		indent, value, ok := keyValue(line, key)
		if !ok || indent > 0 {
			continue
		}

		if blockIndicators[value] {
			return foldBlock(lines[i+1:], indent)
		}
		return unquote(value)
	}

	return ""
}

// IndentedScalar is like Scalar but falls back to the key nested one level
// under a bare "metadata:" parent. A non-empty top-level value always wins.
// Lines inside a block scalar and keys nested deeper than one level are
// never matched.
func IndentedScalar(header, key string) string {
	if value := Scalar(header, key); value != "" {
		return value
	}

	lines := splitLines(header)
	inParent := false
	childIndent := -1

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := indentOf(line)
		if indent == 0 {
			inParent = strings.TrimSpace(line) == nestedKey+":"
			childIndent = -1
			continue
		}
		if !inParent {
			continue
		}

		if childIndent < 0 {
			childIndent = indent
		}
		if indent != childIndent {
			continue
		}

		_, value, ok := keyValue(line, key)
		if !ok {
			continue
		}
		if blockIndicators[value] {
			return foldBlock(lines[i+1:], indent)
		}
		return unquote(value)
	}

	return ""
}

// foldBlock joins the continuation lines of a block scalar whose key sits at
// column keyIndent. Accumulation stops at the first non-blank line that is
// not indented deeper than the key.
func foldBlock(lines []string, keyIndent int) string {
	var parts []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if indentOf(line) <= keyIndent {
			break
		}
		parts = append(parts, trimmed)
	}

	return strings.Join(parts, " ")
}

// keyValue reports whether line declares key, returning the column the key
// starts at and the trimmed text after the colon.
func keyValue(line, key string) (int, string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, key+":") {
		return 0, "", false
	}

	return len(line) - len(trimmed), strings.TrimSpace(trimmed[len(key)+1:]), true
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// unquote strips one layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	first, last := s[0], s[len(s)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return s[1 : len(s)-1]
	}

	return s
}
