package modelout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Result holds the structured fields extracted from one tagged model response.
type Result struct {
	FitScore     float64
	Reasoning    string
	CoverLetter  string
	Resume       string
	ShortAnswers [3]string
}

// ParseError reports a response that could not be parsed. Snippet carries the
// head of the raw text for diagnosis.
type ParseError struct {
	Missing string
	Snippet string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not find %s in model output. Snippet: %s", e.Missing, e.Snippet)
}

const snippetLen = 300

var (
	fitScoreRe = regexp.MustCompile(`FIT_SCORE:\s*([0-9]+(?:\.[0-9]+)?)`)

	// enumeratorRe strips "1)", "2.", "3 -", "4:" style prefixes off answers.
	enumeratorRe = regexp.MustCompile(`^[0-9]+\s*[\).\-\:]\s*`)
)

// Parse extracts the tagged plain text format:
//
//	FIT_SCORE: <number>
//	REASONING:
//	...
//	COVER_LETTER:
//	...
//	END_COVER_LETTER
//	RESUME:
//	...
//	END_RESUME
//	SHORT_ANSWERS:
//	...
//	END_SHORT_ANSWERS
//
// A missing FIT_SCORE is the one fatal condition; every other section degrades
// to an empty string.
func Parse(raw string) (*Result, error) {
	m := fitScoreRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, &ParseError{Missing: "FIT_SCORE", Snippet: snippet(raw)}
	}
	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, &ParseError{Missing: "FIT_SCORE", Snippet: snippet(raw)}
	}

	res := &Result{
		FitScore:    score,
		Reasoning:   Normalize(extractBlock(raw, "REASONING:", "COVER_LETTER:")),
		CoverLetter: Normalize(extractBlock(raw, "COVER_LETTER:", "END_COVER_LETTER")),
		Resume:      Normalize(extractBlock(raw, "RESUME:", "END_RESUME")),
	}
	res.ShortAnswers = splitShortAnswers(Normalize(extractBlock(raw, "SHORT_ANSWERS:", "END_SHORT_ANSWERS")))

	return res, nil
}

// extractBlock slices the text between startTag and endTag. The tag followed
// by a newline is preferred so a "RESUME:" mention inside a sentence does not
// shadow the real section anchor. A missing end tag takes the remainder.
func extractBlock(text, startTag, endTag string) string {
	for _, tag := range []string{startTag + "\n", startTag} {
		start := strings.Index(text, tag)
		if start == -1 {
			continue
		}
		start += len(tag)
		end := strings.Index(text[start:], endTag)
		if end == -1 {
			return strings.TrimSpace(text[start:])
		}
		return strings.TrimSpace(text[start : start+end])
	}
	return ""
}

// splitShortAnswers turns the SHORT_ANSWERS block into exactly three entries:
// enumerator prefixes stripped, extra answers dropped, missing ones padded
// with empty strings.
func splitShortAnswers(block string) [3]string {
	var answers [3]string
	n := 0
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if n == len(answers) {
			break
		}
		answers[n] = enumeratorRe.ReplaceAllString(line, "")
		n++
	}
	return answers
}

func snippet(s string) string {
	if len(s) <= snippetLen {
		return s
	}
	// Back up to a rune boundary so the snippet stays valid UTF-8.
	end := snippetLen
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end]
}
