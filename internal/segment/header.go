package segment

import "strings"

// IsHeader reports whether line is a section header and returns its title.
//
// A header is a line made only of ASCII letters and blanks, containing at least
// one letter, terminated by a single colon with nothing after it. Surrounding
// whitespace is ignored. The rule is deliberately permissive: a detail line such
// as "Team Lead:" inside a section body is classified as a header too.
func IsHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 || trimmed[len(trimmed)-1] != ':' {
		return "", false
	}

	body := trimmed[:len(trimmed)-1]
	hasLetter := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case isASCIILetter(c):
			hasLetter = true
		case c == ' ' || c == '\t':
		default:
			return "", false
		}
	}
	if !hasLetter {
		return "", false
	}

	return strings.TrimSpace(body), true
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
