package document

import (
	"errors"
	"fmt"
)

// AddressError is returned when an edit or read targets a fragment that does
// not exist in the current document. The document is left unchanged.
type AddressError struct {
	Title    string
	Position int
	// Detail is the detail sub-line index for entry edits, or -1.
	Detail int
	Reason string
}

func (e *AddressError) Error() string {
	if e.Detail >= 0 {
		return fmt.Sprintf("address error: %q[%d] detail %d: %s", e.Title, e.Position, e.Detail, e.Reason)
	}
	return fmt.Sprintf("address error: %q[%d]: %s", e.Title, e.Position, e.Reason)
}

// IsAddressError reports whether err is or wraps an *AddressError.
func IsAddressError(err error) bool {
	var addrErr *AddressError
	return errors.As(err, &addrErr)
}

func unknownSection(title string, position int) *AddressError {
	return &AddressError{Title: title, Position: position, Detail: -1, Reason: "section not found"}
}

func positionOutOfRange(title string, position, length int) *AddressError {
	return &AddressError{
		Title:    title,
		Position: position,
		Detail:   -1,
		Reason:   fmt.Sprintf("position out of range (section has %d fragments)", length),
	}
}
