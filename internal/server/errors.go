package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-enhancer/internal/document"
	"github.com/jonathan/resume-enhancer/internal/ingestion"
	"github.com/jonathan/resume-enhancer/internal/schemas"
	"github.com/jonathan/resume-enhancer/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		addressErr    *document.AddressError
		staleErr      *session.StaleDocumentError
		validationErr *ErrValidation
		fieldErrs     validator.ValidationErrors
		schemaErr     *schemas.ValidationError
		formatErr     *ingestion.FormatError
		conversionErr *ingestion.ConversionError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &addressErr):
		return http.StatusNotFound
	case errors.Is(err, session.ErrNotLoaded), errors.As(err, &staleErr):
		return http.StatusConflict
	case errors.As(err, &validationErr), errors.As(err, &fieldErrs),
		errors.As(err, &schemaErr), errors.As(err, &formatErr):
		return http.StatusBadRequest
	case errors.As(err, &conversionErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		// Return first validation error for simplicity
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
