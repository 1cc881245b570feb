// Package ingestion normalizes enhancement text received from the analysis
// service into the plain line-oriented form the segmenter expects.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-enhancer/internal/types"
)

// NormalizeText normalizes line endings, strips a leading byte order mark and
// turns non-breaking spaces into plain spaces. Runs of spaces are kept since
// section titles are spacing sensitive.
func NormalizeText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.TrimPrefix(content, "\ufeff")

	// CRLF → LF, then lone CR → LF
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// Non-breaking spaces are common in copied rich text
	content = strings.ReplaceAll(content, "\u00a0", " ")

	return content
}

// Normalize converts content in the given format to plain enhancement text.
func Normalize(content, format string) (string, error) {
	switch format {
	case "", types.FormatText:
		return NormalizeText(content), nil
	case types.FormatMarkdown:
		return MarkdownToText(NormalizeText(content))
	case types.FormatHTML:
		return HTMLToText(NormalizeText(content))
	default:
		return "", &FormatError{Format: format}
	}
}

// FormatForFile picks the input format from a file extension.
func FormatForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return types.FormatMarkdown
	case ".html", ".htm":
		return types.FormatHTML
	default:
		return types.FormatText
	}
}

// IngestFromFile reads a file, normalizes it according to format (detected
// from the extension when empty) and returns the text with metadata.
func IngestFromFile(path, format string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	if format == "" {
		format = FormatForFile(path)
	}

	text, err := Normalize(string(content), format)
	if err != nil {
		return "", nil, err
	}

	return text, NewMetadata(text, path, format), nil
}
