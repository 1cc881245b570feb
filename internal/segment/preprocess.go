package segment

import (
	"strings"
	"unicode"
)

// DefaultPrefixLabel is the boilerplate label the analysis service puts in
// front of the enhanced text.
const DefaultPrefixLabel = "Improved Resume Text:"

// Preprocess strips the prefix label when the text starts with it, trims the
// result and collapses runs of three or more newlines to exactly two.
func Preprocess(raw, prefixLabel string) string {
	text := strings.TrimLeftFunc(raw, unicode.IsSpace)
	if prefixLabel != "" {
		text = strings.TrimPrefix(text, prefixLabel)
	}
	text = strings.TrimSpace(text)
	return CollapseBlankLines(text)
}

// CollapseBlankLines replaces every run of three or more consecutive newlines
// with two, leaving at most one fully blank line between blocks.
func CollapseBlankLines(text string) string {
	if !strings.Contains(text, "\n\n\n") {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	run := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			run++
			if run > 2 {
				continue
			}
		} else {
			run = 0
		}
		sb.WriteByte(c)
	}

	return sb.String()
}
