package frontmatter

import "strings"

// List parses an inline list such as "tags: [a, "b c", 'd']" into its items.
// Items are trimmed and lose one layer of quotes; empty items are dropped.
// An absent key or a value that is not in bracket form yields an empty slice.
func List(header, key string) []string {
	items := []string{}

	for _, line := range splitLines(header) {
		indent, value, ok := keyValue(line, key)
		if !ok || indent > 0 {
			continue
		}

		if !strings.HasPrefix(value, "[") || !strings.HasSuffix(value, "]") {
			return items
		}

		for _, item := range strings.Split(value[1:len(value)-1], ",") {
			item = unquote(strings.TrimSpace(item))
			if item != "" {
				items = append(items, item)
			}
		}
		return items
	}

	return items
}
