package extractor

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPatterns are tried in order; the first match wins. Each pattern
// anchors on a currency marker (Rs., Rs or INR) and captures a
// comma-grouped number, from the most general form down to a bare integer.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:Rs\.?|INR)\s*(\d+(?:,\d+)*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?:Rs\.?|INR)\s*([0-9,]+\.[0-9]{2})`),
	regexp.MustCompile(`(?:Rs\.?|INR)\s*([0-9,]+)`),
}

// ExtractAmount locates the monetary amount in body and parses it to a
// decimal. The second return value is false when no pattern matches or the
// captured text does not survive parsing; malformed numerics are treated
// the same as not-found, never as a fatal fault.
func ExtractAmount(body string) (decimal.Decimal, bool) {
	for _, pattern := range amountPatterns {
		matches := pattern.FindStringSubmatch(body)
		if len(matches) < 2 {
			continue
		}
		raw := strings.ReplaceAll(matches[1], ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		return amount, true
	}
	return decimal.Zero, false
}
