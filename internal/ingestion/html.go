package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockElements end the current line before and after their content.
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"section": true, "article": true, "header": true, "footer": true,
	"tr": true, "table": true, "tbody": true, "pre": true, "blockquote": true,
	"dd": true, "dt": true, "dl": true,
}

var headingElements = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "head": true, "template": true,
}

// HTMLToText flattens HTML enhancement text. Headings become "Title:"
// header lines, block elements and <br> end lines, scripts and styles are
// dropped.
func HTMLToText(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", &ConversionError{Format: "html", Message: "failed to parse HTML", Cause: err}
	}

	w := &lineWriter{}
	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}
	writeHTMLNodes(w, root.Contents())

	return w.String(), nil
}

func writeHTMLNodes(w *lineWriter, nodes *goquery.Selection) {
	nodes.Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		switch {
		case name == "#text":
			w.write(collapseSpaces(s.Text()))
		case name == "br":
			w.newline()
		case skippedElements[name]:
		case headingElements[name]:
			w.heading(s.Text())
			w.newline()
		case blockElements[name]:
			w.newline()
			writeHTMLNodes(w, s.Contents())
			w.newline()
		default:
			writeHTMLNodes(w, s.Contents())
		}
	})
}

// collapseSpaces applies HTML whitespace folding to a text node.
func collapseSpaces(s string) string {
	if strings.TrimSpace(s) == "" {
		if s == "" {
			return ""
		}
		return " "
	}
	lead := ""
	if s[0] == ' ' || s[0] == '\n' || s[0] == '\t' {
		lead = " "
	}
	trail := ""
	if last := s[len(s)-1]; last == ' ' || last == '\n' || last == '\t' {
		trail = " "
	}
	return lead + strings.Join(strings.Fields(s), " ") + trail
}
