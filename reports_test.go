package ithub

import (
	"testing"
	"time"

	"github.com/retxed/ithub/date"
)

// at returns an instant on the given day, in UTC like the rest of the
// reporting fixtures.
func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestDailySales(t *testing.T) {
	txs := []Transaction{
		{Date: at(2025, 3, 10), TotalAmount: M(300), AmountPaid: M(300)},
		{Date: at(2025, 3, 10), TotalAmount: M(2400), AmountPaid: M(1000)},
		{Date: at(2025, 3, 9), TotalAmount: M(999), AmountPaid: M(999)},
	}

	// Daily sales count invoiced totals, not cash collected.
	got := DailySales(txs, date.New(2025, 3, 10))
	if !got.Equal(M(2700)) {
		t.Errorf("DailySales = %s, want %s", got, M(2700))
	}
	if got := DailySales(txs, date.New(2025, 3, 11)); !got.IsZero() {
		t.Errorf("DailySales on an empty day = %s, want zero", got)
	}
}

func TestTotalReceivable(t *testing.T) {
	txs := []Transaction{
		{TotalAmount: M(300), AmountPaid: M(300), PaymentStatus: Paid},
		{TotalAmount: M(2400), AmountPaid: M(1000), PaymentStatus: Partial},
		{TotalAmount: M(500), AmountPaid: M(0), PaymentStatus: Unpaid},
	}
	if got := TotalReceivable(txs); !got.Equal(M(1900)) {
		t.Errorf("TotalReceivable = %s, want %s", got, M(1900))
	}
	if got := TotalReceivable(nil); !got.IsZero() {
		t.Errorf("TotalReceivable(nil) = %s, want zero", got)
	}
}

func TestSplitRevenue(t *testing.T) {
	txs := []Transaction{
		{TotalAmount: M(300), AmountPaid: M(300)},
		{TotalAmount: M(2400), AmountPaid: M(1000)},
	}
	split := SplitRevenue(txs)
	if !split.Paid.Equal(M(1300)) {
		t.Errorf("Paid = %s, want %s", split.Paid, M(1300))
	}
	if !split.Unpaid.Equal(M(1400)) {
		t.Errorf("Unpaid = %s, want %s", split.Unpaid, M(1400))
	}
}

func TestProfit(t *testing.T) {
	txs := []Transaction{
		{TotalAmount: M(2400), AmountPaid: M(1000)},
		{TotalAmount: M(300), AmountPaid: M(300)},
	}
	expenses := []Expense{
		{Amount: M(1500)},
	}
	// Cash basis: only collected money counts, the 1400 balance does not.
	if got := Profit(txs, expenses); !got.Equal(M(-200)) {
		t.Errorf("Profit = %s, want %s", got, M(-200))
	}
}

func TestWeeklySeries(t *testing.T) {
	today := date.New(2025, 3, 10) // a Monday

	txs := []Transaction{
		{Date: at(2025, 3, 10), TotalAmount: M(500), AmountPaid: M(100)},
		{Date: at(2025, 3, 4), TotalAmount: M(50), AmountPaid: M(50)},
		{Date: at(2025, 3, 3), TotalAmount: M(999), AmountPaid: M(999)}, // 7 days ago, out
	}
	expenses := []Expense{
		{Date: at(2025, 3, 7), Amount: M(80)},
		{Date: at(2025, 2, 1), Amount: M(999)}, // out of window
	}

	buckets := WeeklySeries(txs, expenses, today)
	if len(buckets) != 7 {
		t.Fatalf("got %d buckets, want 7", len(buckets))
	}

	// Oldest bucket first, today last, labeled by weekday.
	if buckets[0].Label != "Tue" || buckets[6].Label != "Mon" {
		t.Errorf("labels = %q..%q, want Tue..Mon", buckets[0].Label, buckets[6].Label)
	}

	// Sales count cash collected, not invoiced totals.
	if !buckets[6].Sales.Equal(M(100)) {
		t.Errorf("today's sales = %s, want %s", buckets[6].Sales, M(100))
	}
	if !buckets[0].Sales.Equal(M(50)) {
		t.Errorf("oldest bucket sales = %s, want %s", buckets[0].Sales, M(50))
	}
	if !buckets[3].Expenses.Equal(M(80)) {
		t.Errorf("friday expenses = %s, want %s", buckets[3].Expenses, M(80))
	}

	var total Money
	for _, b := range buckets {
		total = total.Add(b.Sales)
	}
	if !total.Equal(M(150)) {
		t.Errorf("window total = %s, want %s (the 7-day-old sale excluded)", total, M(150))
	}
}

func TestMonthlySeries(t *testing.T) {
	txs := []Transaction{
		{Date: at(2025, 1, 15), TotalAmount: M(500), AmountPaid: M(500)},
		{Date: at(2025, 1, 20), TotalAmount: M(300), AmountPaid: M(100)},
		{Date: at(2025, 12, 31), TotalAmount: M(42), AmountPaid: M(42)},
		{Date: at(2024, 12, 31), TotalAmount: M(999), AmountPaid: M(999)}, // other year
	}
	expenses := []Expense{
		{Date: at(2025, 6, 1), Amount: M(700)},
	}

	buckets := MonthlySeries(txs, expenses, 2025)
	if len(buckets) != 12 {
		t.Fatalf("got %d buckets, want 12", len(buckets))
	}
	if buckets[0].Label != "Jan" || buckets[11].Label != "Dec" {
		t.Errorf("labels = %q..%q, want Jan..Dec", buckets[0].Label, buckets[11].Label)
	}
	if !buckets[0].Sales.Equal(M(600)) {
		t.Errorf("Jan sales = %s, want %s", buckets[0].Sales, M(600))
	}
	if !buckets[11].Sales.Equal(M(42)) {
		t.Errorf("Dec sales = %s, want %s (2024 excluded)", buckets[11].Sales, M(42))
	}
	if !buckets[5].Expenses.Equal(M(700)) {
		t.Errorf("Jun expenses = %s, want %s", buckets[5].Expenses, M(700))
	}
}

func TestNewDashboard(t *testing.T) {
	today := date.New(2025, 3, 10)

	data := &AppData{
		Expenses: []Expense{
			{Date: at(2025, 3, 8), Amount: M(1500)},
			{Date: at(2024, 1, 1), Amount: M(500)},
		},
	}
	// Seven transactions, newest first; two of them today.
	for i := 0; i < 7; i++ {
		data.Transactions = append(data.Transactions, Transaction{
			ID:          string(rune('a' + i)),
			Date:        at(2025, 3, 10-i),
			TotalAmount: M(100),
			AmountPaid:  M(60),
		})
	}
	data.Transactions[0].Date = at(2025, 3, 10)
	data.Transactions[1].Date = at(2025, 3, 10)

	d := NewDashboard(data, today)

	if !d.DailySales.Equal(M(200)) {
		t.Errorf("DailySales = %s, want %s", d.DailySales, M(200))
	}
	if !d.Receivable.Equal(M(280)) {
		t.Errorf("Receivable = %s, want %s", d.Receivable, M(280))
	}
	if !d.TotalRevenue.Equal(M(420)) {
		t.Errorf("TotalRevenue = %s, want %s", d.TotalRevenue, M(420))
	}
	if !d.TotalExpenses.Equal(M(2000)) {
		t.Errorf("TotalExpenses = %s, want %s", d.TotalExpenses, M(2000))
	}
	if len(d.Recent) != 5 || d.Recent[0].ID != "a" {
		t.Errorf("Recent = %d transactions starting %q, want 5 starting a", len(d.Recent), d.Recent[0].ID)
	}
}
