package rendering

import (
	"github.com/jonathan/resume-enhancer/internal/document"
	"github.com/jonathan/resume-enhancer/internal/session"
	"github.com/jonathan/resume-enhancer/internal/types"
)

// BuildSections converts the document into section views in discovery
// order, splitting contact and entry fragments for their kinds.
func BuildSections(doc *document.Document) []types.SectionView {
	sections := doc.Sections()
	views := make([]types.SectionView, 0, len(sections))

	for _, s := range sections {
		view := types.SectionView{
			Title:     s.Title,
			Kind:      s.Kind.String(),
			Fragments: make([]types.FragmentView, 0, len(s.Fragments)),
		}
		for pos, value := range s.Fragments {
			view.Fragments = append(view.Fragments, buildFragment(s.Kind, pos, value))
		}
		views = append(views, view)
	}

	return views
}

// BuildView builds a Loaded read model for doc.
func BuildView(doc *document.Document, id string) types.DocumentView {
	return types.DocumentView{
		ID:       id,
		State:    types.StateLoaded,
		Sections: BuildSections(doc),
	}
}

// BuildSessionView builds the read model of a session document, carrying
// its score, edit count and source metadata.
func BuildSessionView(doc *document.Document, info session.Info) types.DocumentView {
	view := BuildView(doc, info.ID.String())
	view.Score = info.Score
	view.Edits = info.Edits
	if info.Meta != nil {
		view.Hash = info.Meta.Hash
		view.LoadedAt = info.Meta.Timestamp
	}
	return view
}

// UnloadedView is the read model of a session with no document.
func UnloadedView() types.DocumentView {
	return types.DocumentView{State: types.StateUnloaded, Sections: []types.SectionView{}}
}

func buildFragment(kind document.Kind, pos int, value string) types.FragmentView {
	f := types.FragmentView{Position: pos, Value: value}

	switch kind {
	case document.KindContact:
		field := document.ParseContactField(value)
		f.Contact = &types.ContactView{
			Key:   field.Key,
			Value: field.Value,
			Hint:  field.Hint.String(),
		}
	case document.KindEntries:
		entry := document.SplitEntry(value)
		f.Entry = &types.EntryView{Header: entry.Header, Details: entry.Details}
	}

	return f
}
