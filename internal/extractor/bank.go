package extractor

import (
	"regexp"
	"strings"
)

// bankEntry maps a short code appearing in SMS text to the canonical bank
// name reported in extracted records.
type bankEntry struct {
	code string
	name string
	word *regexp.Regexp // short code as a whole word
}

func entry(code, name string) bankEntry {
	return bankEntry{
		code: code,
		name: name,
		word: regexp.MustCompile(`(?i)\b` + code + `\b`),
	}
}

// bankTable is evaluated top to bottom; when a message could match more
// than one entry, the earlier entry wins. Kept as a slice so the order is
// deterministic.
var bankTable = []bankEntry{
	entry("SBI", "State Bank of India"),
	entry("HDFC", "HDFC Bank"),
	entry("ICICI", "ICICI Bank"),
	entry("AXIS", "Axis Bank"),
	entry("PNB", "Punjab National Bank"),
	entry("BOB", "Bank of Baroda"),
	entry("CANARA", "Canara Bank"),
	entry("IDBI", "IDBI Bank"),
	entry("KOTAK", "Kotak Mahindra Bank"),
	entry("YES", "Yes Bank"),
	entry("IndusInd", "IndusInd Bank"),
	entry("INDIAN", "Indian Bank"),
	entry("IOB", "Indian Overseas Bank"),
}

// IdentifyBank maps message content to a canonical bank name. For each
// table entry it checks, in order: short code followed by a period anywhere
// in the text, message ending with the short code, message ending with the
// full name, full name contained anywhere, and finally the short code as a
// standalone word (banks routinely drop the trailing period mid-sentence).
// All checks are case-insensitive. No match yields the empty string, never
// a guessed value.
func IdentifyBank(body string) string {
	lower := strings.ToLower(body)
	for _, e := range bankTable {
		code := strings.ToLower(e.code)
		name := strings.ToLower(e.name)
		if strings.Contains(lower, code+".") ||
			strings.HasSuffix(lower, code) ||
			strings.HasSuffix(lower, name) ||
			strings.Contains(lower, name) ||
			e.word.MatchString(body) {
			return e.name
		}
	}
	return ""
}
