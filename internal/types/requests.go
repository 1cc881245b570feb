//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Input formats accepted for enhancement text.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// MaxFragmentLength bounds a single edited value.
const MaxFragmentLength = 20000

// LoadRequest carries new enhancement text and replaces the current document.
type LoadRequest struct {
	Text   string `json:"text" validate:"required"`
	Format string `json:"format,omitempty" validate:"omitempty,oneof=text markdown html"`
}

// AnalysisResponse is the payload returned by the resume analysis service.
type AnalysisResponse struct {
	ATSScore *ResumeScore `json:"atsScore" validate:"required"`
}

// ResumeScore holds the numeric assessment and the enhanced resume text.
type ResumeScore struct {
	Score            float64 `json:"score" validate:"gte=0"`
	EnhancedSections string  `json:"enhancedSections" validate:"required"`
}

// EditRequest replaces one fragment, or one part of it. An empty value is
// allowed; DocumentID, when set, must match the loaded document.
type EditRequest struct {
	Value      string `json:"value" validate:"max=20000"`
	DocumentID string `json:"document_id,omitempty" validate:"omitempty,uuid"`
}

// Validate validates the LoadRequest using the validator.
func (r *LoadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalysisResponse using the validator.
func (r *AnalysisResponse) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EditRequest using the validator.
func (r *EditRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FormatOrDefault returns the request format, defaulting to plain text.
func (r *LoadRequest) FormatOrDefault() string {
	if r.Format == "" {
		return FormatText
	}
	return r.Format
}
