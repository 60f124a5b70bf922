package extractor

import "strings"

// expenseKeywords classify a message as a debit. The fixed order is the
// tie-break for messages that mention both directions: classification
// follows keyword-list order, not textual proximity to the amount. That is
// deliberately preserved behavior, not an oversight to fix here.
var expenseKeywords = []string{"debited", "spent", "withdrawal"}

// IsExpense reports whether body describes money leaving the account.
// Absence of every expense keyword classifies the message as a credit.
func IsExpense(body string) bool {
	lower := strings.ToLower(body)
	for _, kw := range expenseKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
