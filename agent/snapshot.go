package agent

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/retxed/ithub"
)

// Snapshot is the financial summary handed to the summarizer: totals over
// the last 30 days plus a truncated per-category expense breakdown.
type Snapshot struct {
	TotalSales    ithub.Money // revenue generated (totalAmount)
	TotalPaid     ithub.Money // cash collected (amountPaid)
	TotalExpenses ithub.Money
	Receivables   ithub.Money // totalSales - totalPaid
	Breakdown     string      // "Utilities: 1500, Supplies: 1200", capped
}

// breakdownLimit caps the expense breakdown embedded in the prompt.
const breakdownLimit = 300

// NewSnapshot filters the ledger to the last 30 days and computes the
// prompt figures.
func NewSnapshot(txs []ithub.Transaction, expenses []ithub.Expense) Snapshot {
	return snapshotAt(txs, expenses, time.Now())
}

func snapshotAt(txs []ithub.Transaction, expenses []ithub.Expense, now time.Time) Snapshot {
	cutoff := now.Add(-30 * 24 * time.Hour)

	var s Snapshot
	for _, t := range txs {
		if t.Date.Before(cutoff) {
			continue
		}
		s.TotalSales = s.TotalSales.Add(t.TotalAmount)
		s.TotalPaid = s.TotalPaid.Add(t.AmountPaid)
	}

	var parts []string
	for _, e := range expenses {
		if e.Date.Before(cutoff) {
			continue
		}
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
		parts = append(parts, fmt.Sprintf("%s: %v", e.Category, e.Amount.AsFloat()))
	}
	s.Receivables = s.TotalSales.Sub(s.TotalPaid)

	s.Breakdown = truncate(strings.Join(parts, ", "), breakdownLimit)
	return s
}

// truncate caps s at limit bytes without splitting a rune: categories are
// free text and may not be ASCII.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// NetProfit is the cash-basis profit of the snapshot window.
func (s Snapshot) NetProfit() ithub.Money { return s.TotalPaid.Sub(s.TotalExpenses) }

// Prompt formats the natural-language request embedding the snapshot
// figures.
func Prompt(s Snapshot) string {
	return fmt.Sprintf(`Act as a senior financial analyst for a small IT Service and Printing Shop.
Analyze the following financial summary for the last 30 days:

- Total Revenue Generated: %s
- Cash Collected: %s
- Accounts Receivable (Collectibles): %s
- Total Expenses: %s
- Net Profit (Cash Basis): %s

Expense Breakdown: %s...

Provide a concise, professional executive summary. Highlight 2 key strengths and 2 risks/recommendations.
Focus on cash flow, collectibles management, and profitability.
Format the response in Markdown with bullet points.
`, s.TotalSales, s.TotalPaid, s.Receivables, s.TotalExpenses, s.NetProfit(), s.Breakdown)
}
