// Package session owns the single editable document of one analysis result
// and serializes edits to it.
package session

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-enhancer/internal/document"
	"github.com/jonathan/resume-enhancer/internal/ingestion"
	"github.com/jonathan/resume-enhancer/internal/segment"
	"github.com/jonathan/resume-enhancer/internal/types"
)

// ErrNotLoaded is returned by edits and reads before any text was loaded.
var ErrNotLoaded = errors.New("no document loaded")

// StaleDocumentError is returned when an edit names a document that has
// since been replaced.
type StaleDocumentError struct {
	Requested string
	Current   string
}

func (e *StaleDocumentError) Error() string {
	return fmt.Sprintf("stale document: edit targets %s, current document is %s", e.Requested, e.Current)
}

// Session holds one document through its Unloaded → Loaded lifecycle.
// All methods are safe for concurrent use; edits are applied one at a time
// and the last write to an address wins.
type Session struct {
	mu        sync.RWMutex
	segmenter *segment.Segmenter
	opts      document.Options

	doc   *document.Document
	id    uuid.UUID
	score *float64
	meta  *ingestion.Metadata
	edits int
}

// New returns an Unloaded session.
func New(segmenter *segment.Segmenter, opts document.Options) *Session {
	if segmenter == nil {
		segmenter = segment.New()
	}
	return &Session{segmenter: segmenter, opts: opts}
}

// State reports the lifecycle state.
func (s *Session) State() types.DocumentState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return types.StateUnloaded
	}
	return types.StateLoaded
}

// Load segments and builds text, replacing any current document. The text
// must already be normalized (see ingestion.Normalize).
func (s *Session) Load(text string, meta *ingestion.Metadata) uuid.UUID {
	return s.load(text, meta, nil)
}

// LoadAnalysis loads the enhanced text of an analysis response and keeps its
// score alongside the document.
func (s *Session) LoadAnalysis(resp *types.AnalysisResponse, source string) uuid.UUID {
	text := ingestion.NormalizeText(resp.ATSScore.EnhancedSections)
	score := resp.ATSScore.Score
	return s.load(text, ingestion.NewMetadata(text, source, types.FormatText), &score)
}

func (s *Session) load(text string, meta *ingestion.Metadata, score *float64) uuid.UUID {
	doc := document.Build(s.segmenter.Segment(text), s.opts)
	id := uuid.New()

	s.mu.Lock()
	s.doc = doc
	s.id = id
	s.meta = meta
	s.score = score
	s.edits = 0
	s.mu.Unlock()

	log.Printf("[load] document %s: %d sections", id, len(doc.Titles()))
	return id
}

// ID returns the current document ID, or uuid.Nil when Unloaded.
func (s *Session) ID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Snapshot returns a deep copy of the current document.
func (s *Session) Snapshot() (*document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return nil, ErrNotLoaded
	}
	return s.doc.Clone(), nil
}

// Info describes the loaded document for the read model.
type Info struct {
	ID    uuid.UUID
	Score *float64
	Meta  *ingestion.Metadata
	Edits int
}

// View returns a copy of the document together with its Info.
func (s *Session) View() (*document.Document, Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return nil, Info{}, ErrNotLoaded
	}
	return s.doc.Clone(), Info{ID: s.id, Score: s.score, Meta: s.meta, Edits: s.edits}, nil
}

// Edit is one fragment mutation addressed by section title and position.
type Edit struct {
	// DocumentID, when non-empty, must match the loaded document.
	DocumentID string
	Title      string
	Position   int
	Value      string
}

// Apply replaces the fragment at the edit's address.
func (s *Session) Apply(e Edit) error {
	return s.mutate(e, "fragment", func(d *document.Document) error {
		return d.ApplyEdit(e.Title, e.Position, e.Value)
	})
}

// ApplyEntryHeader replaces only the header sub-line of an entry.
func (s *Session) ApplyEntryHeader(e Edit) error {
	return s.mutate(e, "entry-header", func(d *document.Document) error {
		return d.EditEntryHeader(e.Title, e.Position, e.Value)
	})
}

// ApplyEntryDetail replaces one detail sub-line of an entry.
func (s *Session) ApplyEntryDetail(e Edit, detail int) error {
	return s.mutate(e, "entry-detail", func(d *document.Document) error {
		return d.EditEntryDetail(e.Title, e.Position, detail, e.Value)
	})
}

// ApplyContactValue replaces only the value half of a contact field.
func (s *Session) ApplyContactValue(e Edit) error {
	return s.mutate(e, "contact-value", func(d *document.Document) error {
		return d.EditContactValue(e.Title, e.Position, e.Value)
	})
}

func (s *Session) mutate(e Edit, kind string, apply func(*document.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return ErrNotLoaded
	}
	if e.DocumentID != "" && e.DocumentID != s.id.String() {
		return &StaleDocumentError{Requested: e.DocumentID, Current: s.id.String()}
	}

	if err := apply(s.doc); err != nil {
		if document.IsAddressError(err) {
			log.Printf("[edit] rejected %s edit: %v", kind, err)
		}
		return err
	}
	s.edits++
	return nil
}
