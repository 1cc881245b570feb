// Package segment splits free-form enhanced resume text into titled sections.
package segment

import "strings"

// Section is one titled block of content lines, in source order.
type Section struct {
	Title string
	Lines []string
}

// Segmenter splits raw enhancement text into sections.
type Segmenter struct {
	// PrefixLabel is stripped from the start of the text before splitting.
	// An empty label disables stripping.
	PrefixLabel string
}

// New returns a Segmenter that strips the default prefix label.
func New() *Segmenter {
	return &Segmenter{PrefixLabel: DefaultPrefixLabel}
}

// Segment splits raw using the default Segmenter.
func Segment(raw string) []Section {
	return New().Segment(raw)
}

// Segment returns the sections of raw in header discovery order.
//
// Titles are unique in the result. When a title repeats, the later body
// replaces the earlier one but the section keeps its first position. Text
// before the first header is discarded, as are sections with no non-empty
// body line. Segment never fails; malformed input yields fewer sections.
func (s *Segmenter) Segment(raw string) []Section {
	text := Preprocess(raw, s.PrefixLabel)
	if text == "" {
		return []Section{}
	}

	var (
		order   []string
		bodies  = make(map[string][]string)
		current string
		open    bool
		lines   []string
	)

	flush := func() {
		if !open {
			return
		}
		if _, seen := bodies[current]; !seen {
			order = append(order, current)
		}
		bodies[current] = lines
	}

	for _, line := range strings.Split(text, "\n") {
		if title, ok := IsHeader(line); ok {
			flush()
			current = title
			open = true
			lines = nil
			continue
		}
		if !open {
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	flush()

	result := make([]Section, 0, len(order))
	for _, title := range order {
		if len(bodies[title]) == 0 {
			continue
		}
		result = append(result, Section{Title: title, Lines: bodies[title]})
	}
	return result
}

// Lookup returns the lines of the section with the given title.
func Lookup(sections []Section, title string) ([]string, bool) {
	for _, s := range sections {
		if s.Title == title {
			return s.Lines, true
		}
	}
	return nil, false
}
