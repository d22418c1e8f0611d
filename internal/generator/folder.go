package generator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const timestampLayout = "20060102_150405"

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	invalidRe    = regexp.MustCompile(`[^a-z0-9_]`)
)

// sanitizePart makes a company or title safe for a folder name: lower-case,
// whitespace runs become single underscores, everything outside [a-z0-9_] is
// dropped. An input that sanitizes to nothing yields the fallback token.
func sanitizePart(text, fallback string) string {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return fallback
	}
	cleaned = whitespaceRe.ReplaceAllString(strings.ToLower(cleaned), "_")
	cleaned = invalidRe.ReplaceAllString(cleaned, "")
	if cleaned == "" {
		return fallback
	}
	return cleaned
}

// folderName builds the unique per-submission directory name. The timestamp
// gives reverse-chronological ordering under a plain name sort; the short
// uuid suffix keeps two submissions for the same company and title within the
// same second from colliding.
func folderName(company, title string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s_%s",
		sanitizePart(company, "company"),
		sanitizePart(title, "title"),
		now.Format(timestampLayout),
		uuid.NewString()[:8],
	)
}
