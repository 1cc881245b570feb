package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-enhancer/internal/document"
	"github.com/jonathan/resume-enhancer/internal/server/ratelimit"
	"github.com/jonathan/resume-enhancer/internal/session"
	"github.com/jonathan/resume-enhancer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enhancedText = `Improved Resume Text:
Contact Information:
Email: a@x.com
Phone: 555-1234

Experience:
Engineer | Acme | 2020
Built X
Led Y
2018 Intern | Beta

Skills:
Go
Rust`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{
		Session:   session.New(nil, document.DefaultOptions()),
		RateLimit: &ratelimit.Config{Enabled: false},
	})
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) types.DocumentView {
	t.Helper()
	var view types.DocumentView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view), w.Body.String())
	return view
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func loadSample(t *testing.T, s *Server) types.DocumentView {
	t.Helper()
	body, err := json.Marshal(types.LoadRequest{Text: enhancedText})
	require.NoError(t, err)
	w := do(t, s, http.MethodPost, "/document", string(body))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeView(t, w)
}

func editPath(title string, position int, suffix string) string {
	p := "/document/sections/" + url.PathEscape(title) + "/fragments/" + strconv.Itoa(position)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

func TestNew_RequiresSession(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "unloaded", resp["state"])
}

func TestGetDocument_Unloaded(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/document", "")

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Equal(t, types.StateUnloaded, view.State)
	assert.Empty(t, view.Sections)

	assert.Equal(t, http.StatusConflict, do(t, s, http.MethodGet, "/document/text", "").Code)
	assert.Equal(t, http.StatusConflict, do(t, s, http.MethodGet, "/document/html", "").Code)
}

func TestEdit_Unloaded(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPut, editPath("Skills", 0, ""), `{"value": "Go"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, decodeError(t, w), "no document loaded")
}

func TestLoadDocument(t *testing.T) {
	s := newTestServer(t)

	view := loadSample(t, s)

	assert.Equal(t, types.StateLoaded, view.State)
	assert.NotEmpty(t, view.ID)
	assert.Len(t, view.Hash, 64)
	require.Len(t, view.Sections, 3)
	assert.Equal(t, "Contact Information", view.Sections[0].Title)
	assert.Equal(t, "email", view.Sections[0].Fragments[0].Contact.Hint)
	assert.Equal(t, "Engineer | Acme | 2020\nBuilt X\nLed Y", view.Sections[1].Fragments[0].Value)
	assert.Equal(t, "2018 Intern | Beta", view.Sections[1].Fragments[1].Value)
	assert.Equal(t, "tags", view.Sections[2].Kind)
}

func TestLoadDocument_Markdown(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/document", `{"text": "## Skills\n- Go\n- Rust\n", "format": "markdown"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	view := decodeView(t, w)
	require.Len(t, view.Sections, 1)
	assert.Equal(t, "Skills", view.Sections[0].Title)
	assert.Len(t, view.Sections[0].Fragments, 2)
}

func TestLoadDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"text": `},
		{name: "missing text", body: `{"format": "text"}`},
		{name: "unknown format", body: `{"text": "Skills:\nGo", "format": "pdf"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := do(t, s, http.MethodPost, "/document", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeError(t, w))
		})
	}
}

func TestLoadAnalysis(t *testing.T) {
	s := newTestServer(t)
	payload, err := json.Marshal(map[string]any{
		"atsScore": map[string]any{"score": 81, "enhancedSections": enhancedText},
	})
	require.NoError(t, err)

	w := do(t, s, http.MethodPost, "/analysis", string(payload))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	view := decodeView(t, w)
	require.NotNil(t, view.Score)
	assert.Equal(t, 81.0, *view.Score)
	assert.Len(t, view.Sections, 3)
}

func TestLoadAnalysis_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "missing atsScore", body: `{}`},
		{name: "missing enhanced text", body: `{"atsScore": {"score": 10}}`},
		{name: "negative score", body: `{"atsScore": {"score": -1, "enhancedSections": "Skills:\nGo"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := do(t, s, http.MethodPost, "/analysis", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, types.StateUnloaded, s.session.State())
		})
	}
}

func TestEditFragment(t *testing.T) {
	s := newTestServer(t)
	loaded := loadSample(t, s)

	w := do(t, s, http.MethodPut, editPath("Skills", 1, ""), `{"value": "Python", "document_id": "`+loaded.ID+`"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view := decodeView(t, w)
	assert.Equal(t, 1, view.Edits)
	assert.Equal(t, "Go", view.Sections[2].Fragments[0].Value)
	assert.Equal(t, "Python", view.Sections[2].Fragments[1].Value)
}

func TestEditFragment_AddressError(t *testing.T) {
	s := newTestServer(t)
	loadSample(t, s)

	w := do(t, s, http.MethodPut, editPath("Skills", 99, ""), `{"value": "X"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeError(t, w), "position out of range")

	w = do(t, s, http.MethodPut, editPath("Hobbies", 0, ""), `{"value": "X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Document unchanged
	view := decodeView(t, do(t, s, http.MethodGet, "/document", ""))
	assert.Equal(t, 0, view.Edits)
	assert.Equal(t, "Rust", view.Sections[2].Fragments[1].Value)
}

func TestEditFragment_BadRequests(t *testing.T) {
	s := newTestServer(t)
	loadSample(t, s)

	w := do(t, s, http.MethodPut, "/document/sections/Skills/fragments/first", `{"value": "X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPut, editPath("Skills", 0, ""), `{"value": "X", "document_id": "not-a-uuid"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPut, editPath("Skills", 0, ""), `nope`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditFragment_StaleDocument(t *testing.T) {
	s := newTestServer(t)
	first := loadSample(t, s)
	loadSample(t, s)

	w := do(t, s, http.MethodPut, editPath("Skills", 0, ""), `{"value": "X", "document_id": "`+first.ID+`"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, decodeError(t, w), "stale document")
}

func TestEditEntryParts(t *testing.T) {
	s := newTestServer(t)
	loadSample(t, s)

	w := do(t, s, http.MethodPut, editPath("Experience", 0, "details/0"), `{"value": "Built Z"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, s, http.MethodPut, editPath("Experience", 0, "header"), `{"value": "Staff Engineer | Acme | 2020"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	view := decodeView(t, w)
	entry := view.Sections[1].Fragments[0]
	assert.Equal(t, "Staff Engineer | Acme | 2020\nBuilt Z\nLed Y", entry.Value)
	assert.Equal(t, []string{"Built Z", "Led Y"}, entry.Entry.Details)
	assert.Equal(t, 2, view.Edits)

	w = do(t, s, http.MethodPut, editPath("Experience", 1, "details/0"), `{"value": "X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeError(t, w), "detail out of range")

	w = do(t, s, http.MethodPut, editPath("Experience", 0, "details/x"), `{"value": "X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditContactValue(t *testing.T) {
	s := newTestServer(t)
	loadSample(t, s)

	w := do(t, s, http.MethodPut, editPath("Contact Information", 1, "contact-value"), `{"value": "555-9999"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view := decodeView(t, w)
	fragment := view.Sections[0].Fragments[1]
	assert.Equal(t, "Phone: 555-9999", fragment.Value)
	assert.Equal(t, "phone", fragment.Contact.Hint)
}

func TestGetDocumentText(t *testing.T) {
	s := newTestServer(t)
	loadSample(t, s)

	w := do(t, s, http.MethodGet, "/document/text", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.True(t, strings.HasPrefix(w.Body.String(), "Contact Information:\nEmail: a@x.com"))
	assert.Contains(t, w.Body.String(), "\n\nSkills:\nGo\nRust")
}

func TestGetDocumentHTML(t *testing.T) {
	s := newTestServer(t)
	loaded := loadSample(t, s)

	w := do(t, s, http.MethodGet, "/document/html", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `data-document-id="`+loaded.ID+`"`)
	assert.Contains(t, w.Body.String(), `data-title="Experience"`)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodOptions, "/document", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestRateLimit(t *testing.T) {
	s, err := New(Config{
		Session: session.New(nil, document.DefaultOptions()),
		RateLimit: &ratelimit.Config{
			Enabled:       true,
			DefaultLimit:  2,
			DefaultWindow: time.Hour,
		},
	})
	require.NoError(t, err)
	defer s.rateLimiter.Stop()

	for i := 0; i < 2; i++ {
		w := do(t, s, http.MethodGet, "/document", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := do(t, s, http.MethodGet, "/document", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rate_limit_exceeded", resp["error"])

	// Health stays unlimited
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/health", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	loadSample(t, s)
	do(t, s, http.MethodPut, editPath("Skills", 0, ""), `{"value": "Go 1.24"}`)
	do(t, s, http.MethodPut, editPath("Skills", 9, ""), `{"value": "X"}`)

	w := do(t, s, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `resume_enhancer_document_loads_total{source="text"} 1`)
	assert.Contains(t, body, `resume_enhancer_fragment_edits_total{kind="fragment",outcome="applied"} 1`)
	assert.Contains(t, body, `resume_enhancer_fragment_edits_total{kind="fragment",outcome="rejected"} 1`)
	assert.Contains(t, body, "resume_enhancer_document_sections 3")
	assert.Contains(t, body, "resume_enhancer_http_requests_total")
}
