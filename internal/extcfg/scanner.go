package extcfg

import (
	"regexp"
	"strings"
)

// Precompiled directive patterns. The directive is case-insensitive and the
// separator between "required" and "extensions" is any single character, so
// both "Required-Extensions:" and "required extensions:" match.
var (
	directiveRe = regexp.MustCompile(`(?i)required.extensions:\s*(.+)`)
	tokenRe     = regexp.MustCompile(`(?i)[a-z0-9_.]+(?:\([^)]+\))?`)
)

// DocumentExtensions extracts the extension tokens declared on the first
// line of text. Tokens are identifiers optionally followed by a
// parenthesized argument list; the arguments are opaque here and parsed
// later by Parse. A missing directive yields nil, never an error.
func DocumentExtensions(text string) []string {
	firstLine, _, _ := strings.Cut(text, "\n")
	m := directiveRe.FindStringSubmatch(firstLine)
	if m == nil {
		return nil
	}
	return tokenRe.FindAllString(m[1], -1)
}
