package ingestion

import "strings"

// lineWriter accumulates converted text as lines with blank lines between
// blocks.
type lineWriter struct {
	lines   []string
	current strings.Builder
}

// write appends inline text to the current line.
func (w *lineWriter) write(s string) {
	w.current.WriteString(s)
}

// newline ends the current line if it holds any text.
func (w *lineWriter) newline() {
	line := strings.TrimSpace(w.current.String())
	w.current.Reset()
	if line != "" {
		w.lines = append(w.lines, line)
	}
}

// block ends the current line and separates the next block with a blank line.
func (w *lineWriter) block() {
	w.newline()
	if n := len(w.lines); n > 0 && w.lines[n-1] != "" {
		w.lines = append(w.lines, "")
	}
}

// heading emits title as a section header line.
func (w *lineWriter) heading(title string) {
	w.block()
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return
	}
	if !strings.HasSuffix(title, ":") {
		title += ":"
	}
	w.lines = append(w.lines, title)
}

func (w *lineWriter) String() string {
	w.newline()
	return strings.TrimSpace(strings.Join(w.lines, "\n"))
}
