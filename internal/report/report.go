// Package report aggregates stored transactions into monthly spending
// summaries: total expense and income, plus per-tag expense totals with
// their share of the month.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yog-singh/expense-tracker/internal/models"
)

// TagTotal is one tag's slice of a month's expenses.
type TagTotal struct {
	Tag     string
	Total   decimal.Decimal
	Percent decimal.Decimal // share of the month's expenses, 0-100
}

// MonthlySummary aggregates one calendar month.
type MonthlySummary struct {
	Month        time.Time // first instant of the month
	TotalExpense decimal.Decimal
	TotalIncome  decimal.Decimal
	ByTag        []TagTotal // expense totals, largest first
	Count        int        // transactions considered
}

// Summarize aggregates the given transactions for the calendar month
// containing month. Untagged expenses are bucketed under "Untagged".
// Income transactions count toward TotalIncome only.
func Summarize(txs []models.StoredTransaction, month time.Time) MonthlySummary {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	end := start.AddDate(0, 1, 0)

	summary := MonthlySummary{
		Month:        start,
		TotalExpense: decimal.Zero,
		TotalIncome:  decimal.Zero,
	}

	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Date.Before(start) || !tx.Date.Before(end) {
			continue
		}
		summary.Count++

		if !tx.IsExpense {
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
			continue
		}

		summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
		tag := tx.Tag
		if tag == "" {
			tag = models.TagUntagged
		}
		totals[tag] = totals[tag].Add(tx.Amount)
	}

	for tag, total := range totals {
		tt := TagTotal{Tag: tag, Total: total, Percent: decimal.Zero}
		if summary.TotalExpense.IsPositive() {
			tt.Percent = total.Div(summary.TotalExpense).Mul(decimal.NewFromInt(100)).Round(1)
		}
		summary.ByTag = append(summary.ByTag, tt)
	}
	sort.Slice(summary.ByTag, func(i, j int) bool {
		if !summary.ByTag[i].Total.Equal(summary.ByTag[j].Total) {
			return summary.ByTag[i].Total.GreaterThan(summary.ByTag[j].Total)
		}
		return summary.ByTag[i].Tag < summary.ByTag[j].Tag
	})

	return summary
}

// Render formats a summary for terminal output.
func Render(s MonthlySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Month: %s\n", s.Month.Format("January 2006"))
	fmt.Fprintf(&b, "Transactions: %d\n", s.Count)
	fmt.Fprintf(&b, "Total expenses: %s\n", s.TotalExpense.StringFixed(2))
	fmt.Fprintf(&b, "Total income:   %s\n", s.TotalIncome.StringFixed(2))
	if len(s.ByTag) > 0 {
		b.WriteString("Expenses by tag:\n")
		for _, tt := range s.ByTag {
			fmt.Fprintf(&b, "  %-15s %12s  %5s%%\n", tt.Tag, tt.Total.StringFixed(2), tt.Percent.String())
		}
	}
	return b.String()
}
