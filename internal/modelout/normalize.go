package modelout

import (
	"regexp"
	"strings"
)

var (
	// markdownLinkRe rewrites [label](url) to just the label.
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// blankRunRe collapses runs of blank lines down to one.
	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans raw model output for plain text files. Local models emit
// literal escape sequences, stray code fences, markdown links, and placeholder
// lines despite being told not to; all of that is scrubbed here.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := raw
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\u0022`, `"`)
	s = strings.ReplaceAll(s, "```", "")
	s = markdownLinkRe.ReplaceAllString(s, "$1")

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "...") {
			continue
		}
		if strings.Contains(strings.ToLower(stripped), "continued") && strings.Contains(stripped, "...") {
			continue
		}
		kept = append(kept, line)
	}
	s = strings.Join(kept, "\n")

	s = blankRunRe.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
