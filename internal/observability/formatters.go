// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-enhancer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintDocument outputs a summary of the loaded document: its ID, score and
// each section with its kind and fragment count.
func (p *Printer) PrintDocument(view *types.DocumentView) {
	if view == nil {
		return
	}

	if view.State != types.StateLoaded {
		p.printBox("DOCUMENT", "No document loaded")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:       %s\n", view.ID))
	if view.Score != nil {
		sb.WriteString(fmt.Sprintf("Score:    %.1f\n", *view.Score))
	}
	sb.WriteString(fmt.Sprintf("Edits:    %d\n", view.Edits))
	sb.WriteString("\n")

	if len(view.Sections) == 0 {
		sb.WriteString("No sections found\n")
	}
	for _, section := range view.Sections {
		sb.WriteString(fmt.Sprintf("%s [%s] %d\n", section.Title, section.Kind, len(section.Fragments)))
		count := min(len(section.Fragments), 3)
		for i := 0; i < count; i++ {
			first, _, _ := strings.Cut(section.Fragments[i].Value, "\n")
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(first, 45)))
		}
		if len(section.Fragments) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.Fragments)-3))
		}
	}

	p.printBox("PARSED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEntries outputs the grouped entries of every entries section.
func (p *Printer) PrintEntries(view *types.DocumentView) {
	if view == nil {
		return
	}

	for _, section := range view.Sections {
		if section.Kind != "entries" || len(section.Fragments) == 0 {
			continue
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Grouped %d entries:\n\n", len(section.Fragments)))

		count := min(len(section.Fragments), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := section.Fragments[i].Entry
			if entry == nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("#%d  %s\n", i, entry.Header))
			for _, detail := range entry.Details {
				sb.WriteString(fmt.Sprintf("    - %s\n", detail))
			}
			if i < count-1 {
				sb.WriteString("\n")
			}
		}

		if len(section.Fragments) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(section.Fragments)-maxItemsToShow))
		}

		p.printBox(strings.ToUpper(section.Title), strings.TrimSuffix(sb.String(), "\n"))
	}
}

// EditOutcome is the result of one requested edit for PrintEdits.
type EditOutcome struct {
	Address string
	Err     error
}

// PrintEdits outputs which edits were applied and which were rejected.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintEdits(outcomes []EditOutcome) {
	if len(outcomes) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO EDITS REQUESTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	applied := 0
	for _, o := range outcomes {
		if o.Err == nil {
			applied++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Applied %d of %d edits:\n\n", applied, len(outcomes)))
	for _, o := range outcomes {
		if o.Err == nil {
			sb.WriteString(fmt.Sprintf("✓ %s\n", o.Address))
			continue
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", o.Address))
		sb.WriteString(fmt.Sprintf("  %s\n", o.Err))
	}

	p.printBox("EDITS", strings.TrimSuffix(sb.String(), "\n"))
}
