package ingestion

import "fmt"

// FormatError is returned for an unsupported input format.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported input format: %q", e.Format)
}

// ConversionError represents a failure converting markdown or HTML to text.
type ConversionError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s conversion failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s conversion failed: %s", e.Format, e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
