package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yog-singh/expense-tracker/internal/logging"
	"github.com/yog-singh/expense-tracker/internal/models"
)

func TestMerchantStrategy(t *testing.T) {
	s := NewMerchantStrategy(nil)

	tests := []struct {
		name     string
		body     string
		expected string
		found    bool
	}{
		{"Swiggy", "Rs. 250 spent at Swiggy", models.TagFood, true},
		{"Zomato", "zomato order payment", models.TagFood, true},
		{"Uber", "UBER ride Rs 150", models.TagTransport, true},
		{"Amazon", "Amazon.in purchase Rs 1200", models.TagShopping, true},
		{"Netflix", "Netflix subscription renewed", models.TagEntertainment, true},
		{"Electricity", "electricity bill paid", models.TagBills, true},
		{"Rent", "rent transferred to landlord", models.TagHousing, true},
		{"Salary", "salary credited", models.TagIncome, true},
		{"ATM", "ATM cash Rs 2000", models.TagCash, true},
		{"UPI", "UPI payment to merchant", models.TagTransfer, true},
		{"No merchant", "Rs. 100 debited", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tag, found := s.Tag(tc.body)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.expected, tag)
		})
	}
}

func TestMerchantStrategyTableOrder(t *testing.T) {
	s := NewMerchantStrategy(nil)

	// Two merchants in one message: the earlier table entry wins.
	tag, found := s.Tag("swiggy order paid via uber wallet")
	require.True(t, found)
	assert.Equal(t, models.TagFood, tag)
}

func TestMerchantStrategyUserRulesAppended(t *testing.T) {
	extra := []models.CategoryRule{
		{Tag: "Pets", Keywords: []string{"petstore"}},
		// A user rule that collides with a built-in keyword must lose to it.
		{Tag: "Custom", Keywords: []string{"swiggy"}},
	}
	s := NewMerchantStrategy(extra)

	tag, found := s.Tag("petstore purchase Rs 300")
	require.True(t, found)
	assert.Equal(t, "Pets", tag)

	tag, found = s.Tag("swiggy order")
	require.True(t, found)
	assert.Equal(t, models.TagFood, tag)
}

func TestFallbackStrategy(t *testing.T) {
	s := NewFallbackStrategy()

	tests := []struct {
		name     string
		body     string
		expected string
		found    bool
	}{
		{"Credited", "INR 500 credited to your account", models.TagIncome, true},
		{"Cash", "cash deposit done", models.TagCash, true},
		{"House", "house maintenance paid", models.TagHousing, true},
		{"Restaurant", "dinner at restaurant", models.TagFood, true},
		{"Movie", "movie ticket booked", models.TagEntertainment, true},
		{"Fuel", "fuel purchase Rs 800", models.TagTransport, true},
		{"Hospital", "hospital bill settled", models.TagHealthcare, true},
		{"College", "college fees paid", models.TagEducation, true},
		{"Nothing", "Rs. 100 debited from A/C", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tag, found := s.Tag(tc.body)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.expected, tag)
		})
	}
}

func TestCategorizerPhaseOrder(t *testing.T) {
	logger := logging.NewMockLogger()
	c := New(nil, logger)

	// "swiggy" (merchant phase) must win over "credited" (fallback phase).
	tag, found := c.Tag("Rs 300 credited back by swiggy")
	require.True(t, found)
	assert.Equal(t, models.TagFood, tag)

	// Fallback fires only when no merchant matched.
	tag, found = c.Tag("petrol pump payment")
	require.True(t, found)
	assert.Equal(t, models.TagTransport, tag)

	// No match in either phase stays untagged.
	tag, found = c.Tag("Rs. 100 debited from A/C")
	assert.False(t, found)
	assert.Empty(t, tag)
}

type fixedStrategy struct {
	name string
	tag  string
}

func (s fixedStrategy) Name() string { return s.name }

func (s fixedStrategy) Tag(body string) (string, bool) {
	if s.tag == "" {
		return "", false
	}
	return s.tag, true
}

func TestCategorizerStrategyOrder(t *testing.T) {
	c := NewWithStrategies(logging.NewMockLogger(),
		fixedStrategy{name: "first", tag: ""},
		fixedStrategy{name: "second", tag: "Second"},
		fixedStrategy{name: "third", tag: "Third"},
	)

	tag, found := c.Tag("anything")
	require.True(t, found)
	assert.Equal(t, "Second", tag)
}

func TestCategorizerLogsMatches(t *testing.T) {
	logger := logging.NewMockLogger()
	c := New(nil, logger)

	_, found := c.Tag("swiggy order")
	require.True(t, found)
	assert.True(t, logger.HasEntry("DEBUG", "Message categorized"))
}
