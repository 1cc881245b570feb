package document

import "strings"

// DefaultEntryDelimiter separates role, company and date fields in an entry
// header line.
const DefaultEntryDelimiter = "|"

// GroupEntries binds lines into entries. A line opens a new entry when it
// contains delimiter or begins with a four-digit year; any other line is
// appended to the open entry. The first line always opens an entry.
//
// Multi-line input values are split first, so grouping an already grouped
// sequence returns it unchanged.
func GroupEntries(lines []string, delimiter string) []string {
	entries := make([]string, 0, len(lines))
	var current []string

	for _, value := range lines {
		for _, line := range strings.Split(value, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if len(current) > 0 && startsEntry(line, delimiter) {
				entries = append(entries, strings.Join(current, "\n"))
				current = nil
			}
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		entries = append(entries, strings.Join(current, "\n"))
	}

	return entries
}

func startsEntry(line, delimiter string) bool {
	if delimiter != "" && strings.Contains(line, delimiter) {
		return true
	}
	return startsWithYear(line)
}

func startsWithYear(line string) bool {
	if len(line) < 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if line[i] < '0' || line[i] > '9' {
			return false
		}
	}
	return true
}

// Entry is a grouped fragment split into its header and detail sub-lines.
type Entry struct {
	Header  string
	Details []string
}

// SplitEntry splits an entry fragment on newlines.
func SplitEntry(value string) Entry {
	parts := strings.Split(value, "\n")
	entry := Entry{Header: parts[0], Details: []string{}}
	if len(parts) > 1 {
		entry.Details = append(entry.Details, parts[1:]...)
	}
	return entry
}

// String reassembles the entry into its newline-joined fragment value.
func (e Entry) String() string {
	if len(e.Details) == 0 {
		return e.Header
	}
	return e.Header + "\n" + strings.Join(e.Details, "\n")
}
