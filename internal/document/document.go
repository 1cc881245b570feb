// Package document holds the editable in-memory model built from segmented
// resume text.
//
// A Document is not safe for concurrent use. Callers that accept edits from
// more than one source serialize them (see package session).
package document

import (
	"strings"

	"github.com/jonathan/resume-enhancer/internal/segment"
)

// Options configures which section titles get special structuring.
type Options struct {
	// EntrySection is the title whose lines are grouped into entries.
	EntrySection string
	// EntryDelimiter marks an entry header line.
	EntryDelimiter string
	// ContactSection is the title rendered as key/value pairs.
	ContactSection string
	// TagSections are titles rendered as token grids.
	TagSections []string
}

// DefaultOptions returns the section titles produced by the analysis service.
func DefaultOptions() Options {
	return Options{
		EntrySection:   "Experience",
		EntryDelimiter: DefaultEntryDelimiter,
		ContactSection: "Contact Information",
		TagSections:    []string{"Skills"},
	}
}

// Section is a titled, ordered sequence of fragments.
type Section struct {
	Title     string
	Kind      Kind
	Fragments []string
}

// Document is the editable model of one enhanced resume.
type Document struct {
	opts     Options
	sections []*Section
	index    map[string]int
}

// Build creates a Document from segmented sections. The entry section is
// grouped into entries; every other section keeps one fragment per line.
func Build(sections []segment.Section, opts Options) *Document {
	doc := &Document{
		opts:     opts,
		sections: make([]*Section, 0, len(sections)),
		index:    make(map[string]int, len(sections)),
	}

	for _, s := range sections {
		kind := opts.KindOf(s.Title)

		var fragments []string
		if kind == KindEntries {
			fragments = GroupEntries(s.Lines, opts.EntryDelimiter)
		} else {
			fragments = append([]string(nil), s.Lines...)
		}

		if i, ok := doc.index[s.Title]; ok {
			doc.sections[i].Fragments = fragments
			continue
		}
		doc.index[s.Title] = len(doc.sections)
		doc.sections = append(doc.sections, &Section{Title: s.Title, Kind: kind, Fragments: fragments})
	}

	return doc
}

// Parse segments raw text and builds a Document from it.
func Parse(raw string, opts Options) *Document {
	return Build(segment.Segment(raw), opts)
}

// Options returns the options the document was built with.
func (d *Document) Options() Options {
	return d.opts
}

// Titles returns section titles in discovery order.
func (d *Document) Titles() []string {
	titles := make([]string, len(d.sections))
	for i, s := range d.sections {
		titles[i] = s.Title
	}
	return titles
}

// Sections returns a copy of every section in discovery order.
func (d *Document) Sections() []Section {
	out := make([]Section, len(d.sections))
	for i, s := range d.sections {
		out[i] = copySection(s)
	}
	return out
}

// Section returns a copy of the section with the given title.
func (d *Document) Section(title string) (Section, bool) {
	i, ok := d.index[title]
	if !ok {
		return Section{}, false
	}
	return copySection(d.sections[i]), true
}

// Len returns the number of fragments in a section, or 0 when absent.
func (d *Document) Len(title string) int {
	if i, ok := d.index[title]; ok {
		return len(d.sections[i].Fragments)
	}
	return 0
}

// Fragment returns the fragment stored at (title, position).
func (d *Document) Fragment(title string, position int) (string, error) {
	s, err := d.lookup(title, position)
	if err != nil {
		return "", err
	}
	return s.Fragments[position], nil
}

// ApplyEdit replaces the fragment at (title, position) with value. Every
// other address and the section length are unchanged. When the address does
// not exist an *AddressError is returned and nothing is modified.
func (d *Document) ApplyEdit(title string, position int, value string) error {
	s, err := d.lookup(title, position)
	if err != nil {
		return err
	}
	s.Fragments[position] = value
	return nil
}

// EditEntryHeader replaces only the header sub-line of the entry at
// (title, position), keeping its detail sub-lines.
func (d *Document) EditEntryHeader(title string, position int, header string) error {
	s, err := d.lookup(title, position)
	if err != nil {
		return err
	}
	entry := SplitEntry(s.Fragments[position])
	entry.Header = header
	s.Fragments[position] = entry.String()
	return nil
}

// EditEntryDetail replaces one detail sub-line of the entry at
// (title, position), keeping the header and the other details.
func (d *Document) EditEntryDetail(title string, position, detail int, value string) error {
	s, err := d.lookup(title, position)
	if err != nil {
		return err
	}
	entry := SplitEntry(s.Fragments[position])
	if detail < 0 || detail >= len(entry.Details) {
		return &AddressError{
			Title:    title,
			Position: position,
			Detail:   detail,
			Reason:   "detail out of range",
		}
	}
	entry.Details[detail] = value
	s.Fragments[position] = entry.String()
	return nil
}

// EditContactValue replaces the value half of the contact fragment at
// (title, position) and recomposes "key: value".
func (d *Document) EditContactValue(title string, position int, value string) error {
	s, err := d.lookup(title, position)
	if err != nil {
		return err
	}
	s.Fragments[position] = ParseContactField(s.Fragments[position]).WithValue(value)
	return nil
}

// Text reconstructs displayable text: each section as a "Title:" line
// followed by its fragments, with a blank line between sections.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, s := range d.sections {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(s.Title)
		sb.WriteString(":")
		for _, f := range s.Fragments {
			sb.WriteString("\n")
			sb.WriteString(f)
		}
	}
	return sb.String()
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	clone := &Document{
		opts:     d.opts,
		sections: make([]*Section, len(d.sections)),
		index:    make(map[string]int, len(d.index)),
	}
	for i, s := range d.sections {
		c := copySection(s)
		clone.sections[i] = &c
		clone.index[s.Title] = i
	}
	clone.opts.TagSections = append([]string(nil), d.opts.TagSections...)
	return clone
}

func (d *Document) lookup(title string, position int) (*Section, error) {
	i, ok := d.index[title]
	if !ok {
		return nil, unknownSection(title, position)
	}
	s := d.sections[i]
	if position < 0 || position >= len(s.Fragments) {
		return nil, positionOutOfRange(title, position, len(s.Fragments))
	}
	return s, nil
}

func copySection(s *Section) Section {
	return Section{
		Title:     s.Title,
		Kind:      s.Kind,
		Fragments: append([]string(nil), s.Fragments...),
	}
}
