package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifyBank(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"Short code with period", "Rs. 100 debited. SBI. Balance Rs 900", "State Bank of India"},
		{"Message ends with code", "Rs. 99 spent at Uber HDFC", "HDFC Bank"},
		{"Full name contained", "Transaction alert from ICICI Bank for Rs 50", "ICICI Bank"},
		{"Message ends with full name", "Rs 500 credited - Kotak Mahindra Bank", "Kotak Mahindra Bank"},
		{"Case insensitive code", "payment alert from hdfc.", "HDFC Bank"},
		{"Axis", "Rs. 300 debited AXIS", "Axis Bank"},
		{"Punjab National", "INR 250 spent, Punjab National Bank", "Punjab National Bank"},
		{"No bank", "Rs. 100 debited from your account", ""},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IdentifyBank(tc.body))
		})
	}
}

func TestIdentifyBankTableOrderTieBreak(t *testing.T) {
	// Two banks in one message: the earlier table entry wins. Documented,
	// order-dependent behavior.
	assert.Equal(t, "State Bank of India", IdentifyBank("transfer from SBI. to HDFC."))
}
