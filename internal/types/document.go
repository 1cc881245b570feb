// Package types provides type definitions for structured data used throughout the resume-enhancer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentState is the lifecycle state of the single editable document.
type DocumentState string

const (
	// StateUnloaded means no enhancement text has been received yet.
	StateUnloaded DocumentState = "unloaded"
	// StateLoaded means text has been segmented and built into a document.
	StateLoaded DocumentState = "loaded"
)

// DocumentView is the read model handed to the rendering layer.
type DocumentView struct {
	ID       string        `json:"id"`
	State    DocumentState `json:"state"`
	Score    *float64      `json:"score,omitempty"`
	Hash     string        `json:"hash,omitempty"`     // SHA256 of the normalized source text
	LoadedAt string        `json:"loaded_at,omitempty"` // RFC3339
	Edits    int           `json:"edits"`
	Sections []SectionView `json:"sections"`
}

// SectionView is one section with its fragments in position order.
type SectionView struct {
	Title     string         `json:"title"`
	Kind      string         `json:"kind"` // default, contact, entries, tags
	Fragments []FragmentView `json:"fragments"`
}

// FragmentView is one editable fragment. Contact and Entry are set only for
// sections of the matching kind.
type FragmentView struct {
	Position int          `json:"position"`
	Value    string       `json:"value"`
	Contact  *ContactView `json:"contact,omitempty"`
	Entry    *EntryView   `json:"entry,omitempty"`
}

// ContactView is a contact fragment split into key and value.
type ContactView struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Hint  string `json:"hint"` // email, phone, github, linkedin, location, none
}

// EntryView is an entry fragment split into header and detail sub-lines.
type EntryView struct {
	Header  string   `json:"header"`
	Details []string `json:"details"`
}
