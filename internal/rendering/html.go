package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-enhancer/internal/types"
)

// documentTemplate renders each section by kind. Every editable element
// carries its edit address: data-title on the section, data-position on the
// fragment and data-detail on entry detail lines.
const documentTemplate = `<article class="resume" data-document-id="{{.ID}}">
{{- range .Sections}}
<section class="section section-{{.Kind}}" data-title="{{.Title}}" data-kind="{{.Kind}}">
<h2>{{.Title}}</h2>
{{- if eq .Kind "contact"}}
<div class="contact">
{{- range .Fragments}}
<div class="contact-field" data-position="{{.Position}}" data-key="{{.Contact.Key}}">
{{- if hasHint .Contact.Hint}}<span class="hint hint-{{.Contact.Hint}}" aria-label="{{.Contact.Key}}"></span>{{end -}}
<span class="value" contenteditable="true" data-edit="contact-value">{{.Contact.Value}}</span></div>
{{- end}}
</div>
{{- else if eq .Kind "entries"}}
{{- range .Fragments}}
<div class="entry" data-position="{{.Position}}">
<div class="entry-header" contenteditable="true" data-edit="header">{{.Entry.Header}}</div>
{{- range $i, $d := .Entry.Details}}
<div class="entry-detail" contenteditable="true" data-edit="detail" data-detail="{{$i}}">{{$d}}</div>
{{- end}}
</div>
{{- end}}
{{- else if eq .Kind "tags"}}
<div class="tags">
{{- range .Fragments}}
<div class="tag" contenteditable="true" data-edit="fragment" data-position="{{.Position}}">{{.Value}}</div>
{{- end}}
</div>
{{- else}}
{{- range .Fragments}}
<div class="block" style="white-space: pre-wrap" contenteditable="true" data-edit="fragment" data-position="{{.Position}}">{{.Value}}</div>
{{- end}}
{{- end}}
</section>
{{- end}}
</article>
`

var htmlTemplate = template.Must(template.New("document").Funcs(template.FuncMap{
	"hasHint": func(hint string) bool { return hint != "" && hint != "none" },
}).Parse(documentTemplate))

// RenderHTML renders the read model as editable HTML markup.
func RenderHTML(view types.DocumentView) (string, error) {
	var result strings.Builder
	if err := htmlTemplate.Execute(&result, view); err != nil {
		return "", &TemplateError{
			Message: "failed to execute document template",
			Cause:   err,
		}
	}
	return result.String(), nil
}
