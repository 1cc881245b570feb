package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-enhancer/internal/ingestion"
	"github.com/jonathan/resume-enhancer/internal/rendering"
	"github.com/jonathan/resume-enhancer/internal/schemas"
	"github.com/jonathan/resume-enhancer/internal/session"
	"github.com/jonathan/resume-enhancer/internal/types"
	schemafiles "github.com/jonathan/resume-enhancer/schemas"
)

// handleLoadDocument replaces the current document with new enhancement text
func (s *Server) handleLoadDocument(w http.ResponseWriter, r *http.Request) {
	var req types.LoadRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	format := req.FormatOrDefault()
	text, err := ingestion.Normalize(req.Text, format)
	if err != nil {
		s.errorFor(w, err)
		return
	}

	s.session.Load(text, ingestion.NewMetadata(text, "request", format))
	s.respondLoaded(w, format)
}

// handleLoadAnalysis loads the enhanced text carried by an analysis response
func (s *Server) handleLoadAnalysis(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var resp types.AnalysisResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := schemas.ValidateEmbedded(schemafiles.Analysis, body); err != nil {
		s.errorFor(w, err)
		return
	}
	if err := resp.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	s.session.LoadAnalysis(&resp, "analysis")
	s.respondLoaded(w, "analysis")
}

func (s *Server) respondLoaded(w http.ResponseWriter, source string) {
	doc, info, err := s.session.View()
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.metrics.observeLoad(source, len(doc.Titles()))
	s.jsonResponse(w, http.StatusCreated, rendering.BuildSessionView(doc, info))
}

// handleGetDocument returns the read model, or the unloaded state
func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	doc, info, err := s.session.View()
	if errors.Is(err, session.ErrNotLoaded) {
		s.jsonResponse(w, http.StatusOK, rendering.UnloadedView())
		return
	}
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rendering.BuildSessionView(doc, info))
}

// handleGetDocumentText returns the document reconstructed as plain text
func (s *Server) handleGetDocumentText(w http.ResponseWriter, _ *http.Request) {
	doc, _, err := s.session.View()
	if err != nil {
		s.errorFor(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, doc.Text()) //nolint:errcheck
}

// handleGetDocumentHTML returns the editable HTML markup
func (s *Server) handleGetDocumentHTML(w http.ResponseWriter, _ *http.Request) {
	doc, info, err := s.session.View()
	if err != nil {
		s.errorFor(w, err)
		return
	}
	html, err := rendering.RenderHTML(rendering.BuildSessionView(doc, info))
	if err != nil {
		s.errorFor(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, html) //nolint:errcheck
}

// handleEditFragment replaces a whole fragment
func (s *Server) handleEditFragment(w http.ResponseWriter, r *http.Request) {
	e, ok := s.parseEdit(w, r)
	if !ok {
		return
	}
	s.applyEdit(w, "fragment", func() error { return s.session.Apply(e) })
}

// handleEditEntryHeader replaces the header line of an entry
func (s *Server) handleEditEntryHeader(w http.ResponseWriter, r *http.Request) {
	e, ok := s.parseEdit(w, r)
	if !ok {
		return
	}
	s.applyEdit(w, "entry-header", func() error { return s.session.ApplyEntryHeader(e) })
}

// handleEditEntryDetail replaces one detail line of an entry
func (s *Server) handleEditEntryDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := strconv.Atoi(r.PathValue("detail"))
	if err != nil {
		s.errorFor(w, &ErrValidation{Field: "detail", Message: "must be an integer"})
		return
	}
	e, ok := s.parseEdit(w, r)
	if !ok {
		return
	}
	s.applyEdit(w, "entry-detail", func() error { return s.session.ApplyEntryDetail(e, detail) })
}

// handleEditContactValue replaces the value of a contact field
func (s *Server) handleEditContactValue(w http.ResponseWriter, r *http.Request) {
	e, ok := s.parseEdit(w, r)
	if !ok {
		return
	}
	s.applyEdit(w, "contact-value", func() error { return s.session.ApplyContactValue(e) })
}

// parseEdit reads the edit address from the path and the value from the body.
// It writes the error response itself and reports false on failure.
func (s *Server) parseEdit(w http.ResponseWriter, r *http.Request) (session.Edit, bool) {
	position, err := strconv.Atoi(r.PathValue("position"))
	if err != nil {
		s.errorFor(w, &ErrValidation{Field: "position", Message: "must be an integer"})
		return session.Edit{}, false
	}

	var req types.EditRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return session.Edit{}, false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return session.Edit{}, false
	}

	return session.Edit{
		DocumentID: req.DocumentID,
		Title:      r.PathValue("title"),
		Position:   position,
		Value:      req.Value,
	}, true
}

func (s *Server) applyEdit(w http.ResponseWriter, kind string, apply func() error) {
	err := apply()
	s.metrics.observeEdit(kind, err)
	if err != nil {
		s.errorFor(w, fmt.Errorf("%s edit: %w", kind, err))
		return
	}

	doc, info, err := s.session.View()
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rendering.BuildSessionView(doc, info))
}
