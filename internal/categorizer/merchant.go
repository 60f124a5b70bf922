package categorizer

import (
	"strings"

	"github.com/yog-singh/expense-tracker/internal/models"
)

// builtinMerchantRules is the default merchant keyword table. It is a slice
// of single-keyword rules rather than a map: when a message mentions two
// merchants, the earlier entry is the tie-break, and that ordering is part
// of the contract.
var builtinMerchantRules = []models.CategoryRule{
	{Tag: models.TagFood, Keywords: []string{"swiggy", "zomato"}},
	{Tag: models.TagTransport, Keywords: []string{"uber", "ola"}},
	{Tag: models.TagShopping, Keywords: []string{"amazon", "flipkart", "myntra"}},
	{Tag: models.TagEntertainment, Keywords: []string{"netflix", "hotstar", "prime", "spotify"}},
	{Tag: models.TagBills, Keywords: []string{"airtel", "jio", "vi", "vodafone", "electricity", "water", "gas"}},
	{Tag: models.TagHousing, Keywords: []string{"rent"}},
	{Tag: models.TagIncome, Keywords: []string{"salary"}},
	{Tag: models.TagCash, Keywords: []string{"atm"}},
	{Tag: models.TagTransfer, Keywords: []string{"upi"}},
}

// MerchantStrategy tags messages by merchant and service keywords. User
// rules loaded from the category store are appended after the built-in
// table, so the built-in ordering remains the tie-break.
type MerchantStrategy struct {
	rules []models.CategoryRule
}

// NewMerchantStrategy creates the strategy with the built-in table plus any
// extra user-defined rules.
func NewMerchantStrategy(extraRules []models.CategoryRule) *MerchantStrategy {
	rules := make([]models.CategoryRule, 0, len(builtinMerchantRules)+len(extraRules))
	rules = append(rules, builtinMerchantRules...)
	rules = append(rules, extraRules...)
	return &MerchantStrategy{rules: rules}
}

// Name returns the strategy name for logging.
func (s *MerchantStrategy) Name() string {
	return "Merchant"
}

// Tag scans the lower-cased body against each rule's keywords in table
// order and returns the first matching rule's tag.
func (s *MerchantStrategy) Tag(body string) (string, bool) {
	lower := strings.ToLower(body)
	for _, rule := range s.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Tag, true
			}
		}
	}
	return "", false
}
