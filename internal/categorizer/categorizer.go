package categorizer

import (
	"github.com/yog-singh/expense-tracker/internal/logging"
	"github.com/yog-singh/expense-tracker/internal/models"
)

// Categorizer runs a fixed chain of strategies over a message body and
// returns the first tag produced. With no hit in any strategy the message
// stays untagged (empty string) and a human may tag it later.
type Categorizer struct {
	strategies []Strategy
	logger     logging.Logger
}

// New creates a Categorizer with the default chain: merchant keywords
// first, generic fallback rules second. extraRules extends the merchant
// table with user-defined rules; nil is fine.
func New(extraRules []models.CategoryRule, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Categorizer{
		strategies: []Strategy{
			NewMerchantStrategy(extraRules),
			NewFallbackStrategy(),
		},
		logger: logger,
	}
}

// NewWithStrategies creates a Categorizer with an explicit strategy chain,
// mainly for tests.
func NewWithStrategies(logger logging.Logger, strategies ...Strategy) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Categorizer{strategies: strategies, logger: logger}
}

// Tag categorizes body. The boolean reports whether any strategy matched.
func (c *Categorizer) Tag(body string) (string, bool) {
	for _, strategy := range c.strategies {
		if tag, ok := strategy.Tag(body); ok {
			c.logger.Debug("Message categorized",
				logging.Field{Key: "strategy", Value: strategy.Name()},
				logging.Field{Key: "tag", Value: tag})
			return tag, true
		}
	}
	return "", false
}
