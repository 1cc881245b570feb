package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-enhancer/internal/document"
	"github.com/jonathan/resume-enhancer/internal/session"
	"github.com/jonathan/resume-enhancer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `Contact Information:
Email: a@x.com
Phone: 555-1234
Website: a.dev

Summary:
Builds   reliable <systems>.

Experience:
Engineer | Acme | 2020
Built X
Led Y
2019 Intern | Beta

Skills:
Go
Rust`

func renderSample(t *testing.T) *goquery.Document {
	t.Helper()
	doc := document.Parse(sampleText, document.DefaultOptions())
	html, err := RenderHTML(BuildView(doc, "doc-1"))
	require.NoError(t, err)

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return parsed
}

func TestBuildSections(t *testing.T) {
	doc := document.Parse(sampleText, document.DefaultOptions())

	sections := BuildSections(doc)

	require.Len(t, sections, 4)
	assert.Equal(t, "contact", sections[0].Kind)
	assert.Equal(t, &types.ContactView{Key: "Email", Value: "a@x.com", Hint: "email"}, sections[0].Fragments[0].Contact)
	assert.Equal(t, "none", sections[0].Fragments[2].Contact.Hint)
	assert.Nil(t, sections[0].Fragments[0].Entry)

	assert.Equal(t, "default", sections[1].Kind)
	assert.Nil(t, sections[1].Fragments[0].Contact)

	assert.Equal(t, "entries", sections[2].Kind)
	require.Len(t, sections[2].Fragments, 2)
	assert.Equal(t, &types.EntryView{Header: "Engineer | Acme | 2020", Details: []string{"Built X", "Led Y"}}, sections[2].Fragments[0].Entry)
	assert.Equal(t, []string{}, sections[2].Fragments[1].Entry.Details)

	assert.Equal(t, "tags", sections[3].Kind)
	assert.Equal(t, 1, sections[3].Fragments[1].Position)
}

func TestRenderHTML_SectionsInOrder(t *testing.T) {
	parsed := renderSample(t)

	var titles []string
	parsed.Find("section").Each(func(_ int, s *goquery.Selection) {
		title, _ := s.Attr("data-title")
		titles = append(titles, title)
	})
	assert.Equal(t, []string{"Contact Information", "Summary", "Experience", "Skills"}, titles)

	id, _ := parsed.Find("article").Attr("data-document-id")
	assert.Equal(t, "doc-1", id)
}

func TestRenderHTML_ContactHints(t *testing.T) {
	parsed := renderSample(t)

	fields := parsed.Find(`section[data-kind="contact"] .contact-field`)
	require.Equal(t, 3, fields.Length())
	assert.Equal(t, 1, fields.Eq(0).Find(".hint-email").Length())
	assert.Equal(t, 1, fields.Eq(1).Find(".hint-phone").Length())
	assert.Equal(t, 0, fields.Eq(2).Find(".hint").Length(), "unrecognised key renders without hint")
	assert.Equal(t, "a.dev", fields.Eq(2).Find(".value").Text())
	edit, _ := fields.Eq(0).Find(".value").Attr("data-edit")
	assert.Equal(t, "contact-value", edit)
}

func TestRenderHTML_Entries(t *testing.T) {
	parsed := renderSample(t)

	entries := parsed.Find(".entry")
	require.Equal(t, 2, entries.Length())
	assert.Equal(t, "Engineer | Acme | 2020", entries.Eq(0).Find(".entry-header").Text())
	details := entries.Eq(0).Find(".entry-detail")
	require.Equal(t, 2, details.Length())
	idx, _ := details.Eq(1).Attr("data-detail")
	assert.Equal(t, "1", idx)
	assert.Equal(t, "Led Y", details.Eq(1).Text())
	assert.Equal(t, 0, entries.Eq(1).Find(".entry-detail").Length())
}

func TestRenderHTML_TagsAndDefaultBlocks(t *testing.T) {
	parsed := renderSample(t)

	tags := parsed.Find(".tags .tag")
	require.Equal(t, 2, tags.Length())
	assert.Equal(t, "Rust", tags.Eq(1).Text())

	block := parsed.Find(`section[data-kind="default"] .block`)
	require.Equal(t, 1, block.Length())
	assert.Equal(t, "Builds   reliable <systems>.", block.Text(), "text is escaped and spacing kept")
	style, _ := block.Attr("style")
	assert.Contains(t, style, "pre-wrap")
}

func TestRenderHTML_MissingContactView(t *testing.T) {
	view := types.DocumentView{
		ID: "doc-1",
		Sections: []types.SectionView{{
			Title:     "Contact Information",
			Kind:      "contact",
			Fragments: []types.FragmentView{{Position: 0, Value: "Email: a@x.com"}},
		}},
	}

	_, err := RenderHTML(view)

	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
}

func TestBuildSessionView(t *testing.T) {
	sess := session.New(nil, document.DefaultOptions())
	id := sess.LoadAnalysis(&types.AnalysisResponse{
		ATSScore: &types.ResumeScore{Score: 72.5, EnhancedSections: sampleText},
	}, "analysis.json")
	require.NoError(t, sess.Apply(session.Edit{Title: "Skills", Position: 0, Value: "Golang"}))

	doc, info, err := sess.View()
	require.NoError(t, err)
	view := BuildSessionView(doc, info)

	assert.Equal(t, id.String(), view.ID)
	assert.Equal(t, types.StateLoaded, view.State)
	require.NotNil(t, view.Score)
	assert.Equal(t, 72.5, *view.Score)
	assert.Equal(t, 1, view.Edits)
	assert.Len(t, view.Hash, 64)
	assert.NotEmpty(t, view.LoadedAt)
	assert.Equal(t, "Golang", view.Sections[3].Fragments[0].Value)
}

func TestUnloadedView(t *testing.T) {
	view := UnloadedView()

	assert.Equal(t, types.StateUnloaded, view.State)
	assert.NotNil(t, view.Sections)
	assert.Empty(t, view.Sections)
}
