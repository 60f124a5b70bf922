package categorizer

import (
	"strings"

	"github.com/yog-singh/expense-tracker/internal/models"
)

// fallbackRules classify by transaction type when no merchant matched.
// Fixed order, first hit wins.
var fallbackRules = []models.CategoryRule{
	{Tag: models.TagIncome, Keywords: []string{"salary", "credited"}},
	{Tag: models.TagCash, Keywords: []string{"atm", "cash"}},
	{Tag: models.TagHousing, Keywords: []string{"rent", "house"}},
	{Tag: models.TagFood, Keywords: []string{"food", "restaurant"}},
	{Tag: models.TagEntertainment, Keywords: []string{"movie", "theatre"}},
	{Tag: models.TagTransport, Keywords: []string{"petrol", "fuel"}},
	{Tag: models.TagHealthcare, Keywords: []string{"medical", "hospital"}},
	{Tag: models.TagEducation, Keywords: []string{"school", "college"}},
}

// FallbackStrategy applies the generic transaction-type rules. It runs
// after MerchantStrategy in the default chain.
type FallbackStrategy struct{}

// NewFallbackStrategy creates the strategy.
func NewFallbackStrategy() *FallbackStrategy {
	return &FallbackStrategy{}
}

// Name returns the strategy name for logging.
func (s *FallbackStrategy) Name() string {
	return "Fallback"
}

// Tag scans the lower-cased body against the generic rules in order.
func (s *FallbackStrategy) Tag(body string) (string, bool) {
	lower := strings.ToLower(body)
	for _, rule := range fallbackRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Tag, true
			}
		}
	}
	return "", false
}
