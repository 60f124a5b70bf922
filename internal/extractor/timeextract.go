package extractor

import (
	"regexp"
	"strings"
)

// dateTimePatterns cover the date/time shapes banks embed in their
// messages: dash-separated date with time, slash-separated date with time,
// textual-month date optionally joined to the time by "at", and a bare
// dash-separated textual-month date. Tried in order, first match wins.
var dateTimePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{2,4})\s+(\d{1,2}:\d{1,2}(?::\d{1,2})?)`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2,4})\s+(\d{1,2}:\d{1,2}(?::\d{1,2})?)`),
	regexp.MustCompile(`(?i)(\d{1,2}\s+[a-zA-Z]{3}\s+\d{2,4})(?:\s+at\s+|\s+)(\d{1,2}:\d{1,2}(?::\d{1,2})?)`),
	regexp.MustCompile(`(?i)(\d{1,2}-[a-zA-Z]{3}-\d{2,4})`),
}

// ExtractTransactionTime finds an embedded transaction date/time in body
// and returns it as free-form text, captured groups joined with a single
// space. The source formats vary too much across banks to normalize to a
// real timestamp, so callers fall back to the message receipt time when
// this returns the empty string.
func ExtractTransactionTime(body string) string {
	for _, pattern := range dateTimePatterns {
		matches := pattern.FindStringSubmatch(body)
		if len(matches) < 2 {
			continue
		}
		parts := make([]string, 0, len(matches)-1)
		for _, group := range matches[1:] {
			if group != "" {
				parts = append(parts, group)
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}
