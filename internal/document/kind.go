package document

// Kind selects how a section's fragments are displayed and edited.
type Kind int

const (
	// KindDefault renders each fragment as an editable block of text with
	// whitespace preserved.
	KindDefault Kind = iota
	// KindContact renders each fragment as a "key: value" pair where only the
	// value is editable.
	KindContact
	// KindEntries renders each fragment as a grouped entry with a header
	// sub-line and detail sub-lines.
	KindEntries
	// KindTags renders each fragment as a short token in a grid.
	KindTags
)

// String returns the lowercase name used in the JSON read model.
func (k Kind) String() string {
	switch k {
	case KindContact:
		return "contact"
	case KindEntries:
		return "entries"
	case KindTags:
		return "tags"
	default:
		return "default"
	}
}

// KindOf returns the dispatch kind for a section title.
func (o Options) KindOf(title string) Kind {
	switch {
	case title == o.ContactSection:
		return KindContact
	case title == o.EntrySection:
		return KindEntries
	}
	for _, t := range o.TagSections {
		if title == t {
			return KindTags
		}
	}
	return KindDefault
}
