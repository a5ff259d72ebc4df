package ithub

import "testing"

func TestPaymentStatusFor(t *testing.T) {
	testCases := []struct {
		name  string
		paid  float64
		total float64
		want  PaymentStatus
	}{
		{name: "nothing paid", paid: 0, total: 100, want: Unpaid},
		{name: "partially paid", paid: 50, total: 100, want: Partial},
		{name: "exactly paid", paid: 100, total: 100, want: Paid},
		{name: "overpaid", paid: 150, total: 100, want: Paid},
		{name: "zero total, nothing paid", paid: 0, total: 0, want: Unpaid},
		{name: "zero total, something paid", paid: 10, total: 0, want: Paid},
		{name: "one centavo short", paid: 99.99, total: 100, want: Partial},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PaymentStatusFor(M(tc.paid), M(tc.total))
			if got != tc.want {
				t.Errorf("PaymentStatusFor(%v, %v) = %q, want %q", tc.paid, tc.total, got, tc.want)
			}
		})
	}
}

func TestTransactionBalance(t *testing.T) {
	tx := Transaction{TotalAmount: M(2400), AmountPaid: M(1000)}
	if got := tx.Balance(); !got.Equal(M(1400)) {
		t.Errorf("Balance() = %s, want %s", got, M(1400))
	}
}

func TestCartItemExtension(t *testing.T) {
	it := CartItem{Price: M(550), Quantity: 3}
	if got := it.Extension(); !got.Equal(M(1650)) {
		t.Errorf("Extension() = %s, want %s", got, M(1650))
	}
}

func TestAppDataFinders(t *testing.T) {
	data := seedData(fixedNow())

	if p := data.Product("p1"); p == nil || p.Name != "Kingston 8GB DDR4 RAM" {
		t.Errorf("Product(p1) = %v, want the seeded RAM stick", p)
	}
	if s := data.Service("s1"); s == nil || s.Unit != "per sq ft" {
		t.Errorf("Service(s1) = %v, want the seeded tarpaulin service", s)
	}
	if tx := data.Transaction("t2"); tx == nil || tx.PaymentStatus != Partial {
		t.Errorf("Transaction(t2) = %v, want the seeded partial sale", tx)
	}
	if tk := data.Ticket("tk1"); tk == nil || tk.TicketNumber != "T-1001" {
		t.Errorf("Ticket(tk1) = %v, want the seeded laptop ticket", tk)
	}
	if u := data.User("u1"); u == nil || u.Role != RoleAdmin {
		t.Errorf("User(u1) = %v, want the seeded admin", u)
	}
	if got := data.Product("nope"); got != nil {
		t.Errorf("Product(nope) = %v, want nil", got)
	}
}
