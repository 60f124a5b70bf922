// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RawMessage is a bank notification as delivered by the ingestion source.
// The body is the untouched SMS text; ReceivedAt is the best-effort receipt
// time, used as a display fallback when no transaction time is embedded in
// the text itself.
type RawMessage struct {
	Body       string
	ReceivedAt time.Time
}

// ExtractedTransaction is the structured record produced from a single
// candidate message. Amount is always a non-negative magnitude; direction
// is carried separately in IsExpense. Every field other than Amount is
// best-effort and may be empty.
type ExtractedTransaction struct {
	Amount          decimal.Decimal `csv:"Amount"`
	IsExpense       bool            `csv:"IsExpense"`
	Bank            string          `csv:"Bank"`            // Canonical bank name or empty
	AccountType     string          `csv:"AccountType"`     // One of the AccountType* constants or empty
	AccountNumber   string          `csv:"AccountNumber"`   // Trailing digits only, mask characters stripped
	TransactionTime string          `csv:"TransactionTime"` // Free-form text as it appeared in the message
	Tag             string          `csv:"Tag"`             // Spending category or empty
	SourceBody      string          `csv:"SourceBody"`      // Original message, kept for audit and manual correction
	ReceivedAt      time.Time       `csv:"ReceivedAt"`
}

// AccountInfo holds the two independent account sub-extractions. Either
// field may be empty; absence is a normal outcome, not a failure.
type AccountInfo struct {
	Type   string
	Number string
}

// StoredTransaction is an ExtractedTransaction as persisted by the store,
// with an assigned identity and user-editable tagging state.
type StoredTransaction struct {
	ID              string          `csv:"ID"`
	Amount          decimal.Decimal `csv:"Amount"`
	IsExpense       bool            `csv:"IsExpense"`
	Bank            string          `csv:"Bank"`
	AccountType     string          `csv:"AccountType"`
	AccountNumber   string          `csv:"AccountNumber"`
	TransactionTime string          `csv:"TransactionTime"`
	Tag             string          `csv:"Tag"`
	SourceBody      string          `csv:"SourceBody"`
	Date            time.Time       `csv:"Date"`
	CustomTags      CustomTagList   `csv:"CustomTags"`
}

// CustomTagList is a list of free-form user labels. It round-trips through
// CSV as a single pipe-delimited field.
type CustomTagList []string

// MarshalCSV implements gocsv marshaling for the custom tag list.
func (l CustomTagList) MarshalCSV() (string, error) {
	return strings.Join(l, "|"), nil
}

// UnmarshalCSV implements gocsv unmarshaling for the custom tag list.
func (l *CustomTagList) UnmarshalCSV(csv string) error {
	if csv == "" {
		*l = nil
		return nil
	}
	parts := strings.Split(csv, "|")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tags = append(tags, p)
		}
	}
	*l = tags
	return nil
}

// CategoryRule maps a set of keywords to a spending category. Rules are
// evaluated in declaration order; the order is the tie-break when more than
// one rule could match.
type CategoryRule struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

// CategoryRulesConfig is the structure of the category rules YAML file.
type CategoryRulesConfig struct {
	Rules []CategoryRule `yaml:"rules"`
}
