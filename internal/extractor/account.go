package extractor

import (
	"regexp"
	"strings"

	"github.com/yog-singh/expense-tracker/internal/models"
)

// accountTypeRule maps a keyword pair to an account type label. Rules are
// checked in order; the first hit wins.
type accountTypeRule struct {
	keywords []string
	label    string
}

var accountTypeRules = []accountTypeRule{
	{[]string{"sb", "saving"}, models.AccountTypeSavings},
	{[]string{"ca", "current"}, models.AccountTypeCurrent},
	{[]string{"card"}, models.AccountTypeCard},
	{[]string{"loan"}, models.AccountTypeLoan},
	{[]string{"fd"}, models.AccountTypeFixedDeposit},
}

// accountNumberPatterns capture the trailing digit run of a masked account
// number. Mask characters (x/X/*) sit outside the capture group, so the
// captured text is digits-only by construction. Tried in order.
var accountNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:a/c|ac|acct|account|card)(?:\s+no\.?|\s+number|\s+ending|\s+)(?:\s+with)?\s+(?:xx|x{2,}|[*]{2,})?([0-9]{4,})`),
	regexp.MustCompile(`(?i)(?:xx|x{2,}|[*]{2,})([0-9]{4,})`),
	regexp.MustCompile(`(?i)(?:sb|ca|card|loan)-(?:xx|x{2,}|[*]{2,})?([0-9]{4,})`),
}

// ExtractAccountInfo derives the account type and masked account number
// from body. The two sub-extractions are independent; either may come back
// empty without affecting the other.
func ExtractAccountInfo(body string) models.AccountInfo {
	var info models.AccountInfo

	lower := strings.ToLower(body)
	for _, rule := range accountTypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				info.Type = rule.label
				break
			}
		}
		if info.Type != "" {
			break
		}
	}

	for _, pattern := range accountNumberPatterns {
		matches := pattern.FindStringSubmatch(body)
		if len(matches) > 1 {
			info.Number = matches[1]
			break
		}
	}

	return info
}
