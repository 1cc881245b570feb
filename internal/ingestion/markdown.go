package ingestion

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownToText flattens markdown enhancement text. Headings become
// "Title:" header lines, list items and paragraph lines become content lines
// and inline markup is dropped.
func MarkdownToText(content string) (string, error) {
	src := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	if doc == nil {
		return "", &ConversionError{Format: "markdown", Message: "parser returned no document"}
	}

	w := &lineWriter{}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		writeMarkdownBlock(w, n, src)
		w.block()
	}

	return w.String(), nil
}

func writeMarkdownBlock(w *lineWriter, n ast.Node, src []byte) {
	switch node := n.(type) {
	case *ast.Heading:
		w.heading(markdownInline(node, src))
	case *ast.Paragraph, *ast.TextBlock:
		writeMarkdownInlines(w, node, src)
		w.newline()
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			w.write(string(seg.Value(src)))
			w.newline()
		}
	case *ast.ThematicBreak:
	default:
		// Lists, list items and block quotes
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			writeMarkdownBlock(w, c, src)
		}
	}
}

// writeMarkdownInlines writes the inline children of n, ending a line at
// every soft or hard break.
func writeMarkdownInlines(w *lineWriter, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			w.write(string(node.Segment.Value(src)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				w.newline()
			}
		case *ast.String:
			w.write(string(node.Value))
		case *ast.AutoLink:
			w.write(string(node.Label(src)))
		default:
			writeMarkdownInlines(w, c, src)
		}
	}
}

// markdownInline returns the inline text of n on a single line.
func markdownInline(n ast.Node, src []byte) string {
	w := &lineWriter{}
	writeMarkdownInlines(w, n, src)
	w.newline()
	return strings.Join(w.lines, " ")
}
