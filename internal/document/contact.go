package document

import "strings"

// ContactHint is the presentation hint attached to a contact field key.
type ContactHint int

const (
	// HintNone is used for keys outside the recognised set.
	HintNone ContactHint = iota
	HintEmail
	HintPhone
	// HintCodeHost marks a code-hosting handle (GitHub).
	HintCodeHost
	// HintProfessionalNetwork marks a professional-network handle (LinkedIn).
	HintProfessionalNetwork
	HintLocation
)

// contactKeySeparator separates the key from the value in a contact line.
const contactKeySeparator = ": "

// String returns the hint name used by the rendering layer.
func (h ContactHint) String() string {
	switch h {
	case HintEmail:
		return "email"
	case HintPhone:
		return "phone"
	case HintCodeHost:
		return "github"
	case HintProfessionalNetwork:
		return "linkedin"
	case HintLocation:
		return "location"
	default:
		return "none"
	}
}

// HintFor maps a contact key to its hint. Matching is exact.
func HintFor(key string) ContactHint {
	switch key {
	case "Email":
		return HintEmail
	case "Phone":
		return HintPhone
	case "GitHub":
		return HintCodeHost
	case "LinkedIn":
		return HintProfessionalNetwork
	case "Location":
		return HintLocation
	default:
		return HintNone
	}
}

// ContactField is a contact fragment split into its key and value halves.
type ContactField struct {
	Key   string
	Value string
	Hint  ContactHint
}

// ParseContactField splits a contact line on the first ": ". A line without
// the separator is treated as a key with an empty value.
func ParseContactField(line string) ContactField {
	key, value, _ := strings.Cut(line, contactKeySeparator)
	key = strings.TrimSpace(key)
	return ContactField{
		Key:   key,
		Value: strings.TrimSpace(value),
		Hint:  HintFor(key),
	}
}

// WithValue returns the fragment text for the field with its value replaced.
func (f ContactField) WithValue(value string) string {
	return f.Key + contactKeySeparator + value
}

// String recomposes the fragment text.
func (f ContactField) String() string {
	return f.WithValue(f.Value)
}
