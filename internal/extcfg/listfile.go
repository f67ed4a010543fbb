package extcfg

import (
	"os"
	"strings"
)

// LoadList reads an extension list file: one token per line, lines starting
// with '#' ignored. A missing or unreadable file is an empty contribution,
// not an error.
func LoadList(path string) []string {
	data, err := os.ReadFile(path) // #nosec G304 -- list path comes from the caller's configuration
	if err != nil {
		return nil
	}
	var tokens []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, line)
	}
	return tokens
}
