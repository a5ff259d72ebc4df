package ithub

import (
	"time"

	"github.com/retxed/ithub/date"
)

// This file holds the read-side derivations consumed by the reporting
// surfaces. None of them mutate the aggregate.

// DailySales sums totalAmount over transactions dated on the given
// calendar day (local time).
func DailySales(txs []Transaction, on date.Date) Money {
	var total Money
	for _, t := range txs {
		if date.Of(t.Date) == on {
			total = total.Add(t.TotalAmount)
		}
	}
	return total
}

// TotalReceivable sums the outstanding balance over all transactions not
// yet fully paid. It is zero once every transaction is PAID.
func TotalReceivable(txs []Transaction) Money {
	var total Money
	for _, t := range txs {
		if t.PaymentStatus != Paid {
			total = total.Add(t.Balance())
		}
	}
	return total
}

// RevenueSplit separates cash collected from amounts still owed, over all
// transactions.
type RevenueSplit struct {
	Paid   Money // sum of amountPaid
	Unpaid Money // sum of totalAmount - amountPaid
}

// SplitRevenue computes the revenue-vs-receivables split.
func SplitRevenue(txs []Transaction) RevenueSplit {
	var split RevenueSplit
	for _, t := range txs {
		split.Paid = split.Paid.Add(t.AmountPaid)
		split.Unpaid = split.Unpaid.Add(t.Balance())
	}
	return split
}

// Profit is the all-time cash-basis profit: cash collected minus
// expenses. Unpaid balances are not counted until settled.
func Profit(txs []Transaction, expenses []Expense) Money {
	var total Money
	for _, t := range txs {
		total = total.Add(t.AmountPaid)
	}
	for _, e := range expenses {
		total = total.Sub(e.Amount)
	}
	return total
}

// Bucket is one slot of a time-bucketed revenue/expense series. Sales is
// cash collected (amountPaid), matching the chart the shop watches.
type Bucket struct {
	Label    string
	Sales    Money
	Expenses Money
}

// WeeklySeries produces exactly 7 buckets labeled by weekday
// abbreviation, covering the last 7 calendar days ending today inclusive.
// Days with no activity sum to zero.
func WeeklySeries(txs []Transaction, expenses []Expense, today date.Date) []Bucket {
	buckets := make([]Bucket, 7)
	index := make(map[date.Date]int, 7)
	for i := 0; i < 7; i++ {
		d := today.Add(i - 6)
		buckets[i].Label = d.Weekday().String()[:3]
		index[d] = i
	}
	for _, t := range txs {
		if i, ok := index[date.Of(t.Date)]; ok {
			buckets[i].Sales = buckets[i].Sales.Add(t.AmountPaid)
		}
	}
	for _, e := range expenses {
		if i, ok := index[date.Of(e.Date)]; ok {
			buckets[i].Expenses = buckets[i].Expenses.Add(e.Amount)
		}
	}
	return buckets
}

// MonthlySeries produces 12 buckets (Jan through Dec) for the given
// calendar year only.
func MonthlySeries(txs []Transaction, expenses []Expense, year int) []Bucket {
	buckets := make([]Bucket, 12)
	for i := range buckets {
		buckets[i].Label = time.Month(i + 1).String()[:3]
	}
	for _, t := range txs {
		if on := date.Of(t.Date); on.Year() == year {
			i := int(on.Month()) - 1
			buckets[i].Sales = buckets[i].Sales.Add(t.AmountPaid)
		}
	}
	for _, e := range expenses {
		if on := date.Of(e.Date); on.Year() == year {
			i := int(on.Month()) - 1
			buckets[i].Expenses = buckets[i].Expenses.Add(e.Amount)
		}
	}
	return buckets
}

// Dashboard gathers the headline figures shown when the tool starts.
type Dashboard struct {
	Date          date.Date
	DailySales    Money // totalAmount of today's transactions
	Receivable    Money
	TotalRevenue  Money // all-time cash collected
	TotalExpenses Money
	Recent        []Transaction // five most recent transactions
}

// NewDashboard derives the dashboard from the aggregate.
func NewDashboard(data *AppData, today date.Date) *Dashboard {
	d := &Dashboard{Date: today}
	d.DailySales = DailySales(data.Transactions, today)
	d.Receivable = TotalReceivable(data.Transactions)
	d.TotalRevenue = SplitRevenue(data.Transactions).Paid
	for _, e := range data.Expenses {
		d.TotalExpenses = d.TotalExpenses.Add(e.Amount)
	}
	d.Recent = data.Transactions
	if len(d.Recent) > 5 {
		d.Recent = d.Recent[:5]
	}
	return d
}
