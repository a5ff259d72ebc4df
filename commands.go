package ithub

import (
	"fmt"
	"strings"
	"time"
)

// This file holds the store's command methods. Each one is a single
// load-modify-save unit over the aggregate.

// SaleInput carries the checkout fields entered alongside a cart.
type SaleInput struct {
	CustomerName  string
	AmountPaid    Money
	PaymentMethod PaymentMethod
	Notes         string
	ProcessedBy   string
}

// RecordSale commits a cart as a transaction. It validates the cart and
// customer name, computes the total from the line extensions, derives the
// payment status, prepends the transaction (most-recent-first), and
// decrements stock for every product line, all persisted as one unit.
// On any validation failure nothing is persisted.
func (s *Store) RecordSale(cart *Cart, in SaleInput) (Transaction, error) {
	if cart.Len() == 0 {
		return Transaction{}, ErrEmptyCart
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return Transaction{}, ErrNoCustomer
	}
	if in.AmountPaid.IsNegative() {
		return Transaction{}, ErrNegativeAmount
	}

	data, err := s.Load()
	if err != nil {
		return Transaction{}, err
	}

	// Re-validate stock against the loaded aggregate before committing:
	// the cart was built against an earlier read.
	wanted := make(map[string]int)
	for _, it := range cart.Items() {
		if it.Type == ItemProduct {
			wanted[it.ID] += it.Quantity
		}
	}
	for id, qty := range wanted {
		p := data.Product(id)
		if p == nil {
			return Transaction{}, fmt.Errorf("product %q: %w", id, ErrNotFound)
		}
		if qty > p.Stock {
			return Transaction{}, fmt.Errorf("%s: %w", p.Name, ErrInsufficientStock)
		}
	}

	total := cart.Total()
	tx := Transaction{
		ID:            NewID(),
		Date:          time.Now(),
		CustomerName:  in.CustomerName,
		Items:         cart.Items(),
		TotalAmount:   total,
		AmountPaid:    in.AmountPaid,
		PaymentStatus: PaymentStatusFor(in.AmountPaid, total),
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		ProcessedBy:   in.ProcessedBy,
	}

	// One decrement per product line: stock side effects and the new
	// transaction land in the same snapshot write.
	for _, it := range cart.Items() {
		if it.Type == ItemProduct {
			data.Product(it.ID).Stock -= it.Quantity
		}
	}
	data.Transactions = append([]Transaction{tx}, data.Transactions...)

	if err := s.Save(data); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// settledMarker is appended to the notes of a settled transaction.
const settledMarker = "[Settled Full Payment]"

// Settle closes out the outstanding balance of a transaction: amountPaid
// is raised to totalAmount, the status becomes PAID, and an audit marker
// is appended to the notes. Settling a transaction with no outstanding
// balance is a no-op success, so repeating the command cannot double the
// marker. The balance check, not the stored status, gates the no-op: a
// zero-total sale is UNPAID yet has nothing to settle.
func (s *Store) Settle(transactionID string) (Transaction, error) {
	data, err := s.Load()
	if err != nil {
		return Transaction{}, err
	}
	tx := data.Transaction(transactionID)
	if tx == nil {
		return Transaction{}, fmt.Errorf("transaction %q: %w", transactionID, ErrNotFound)
	}
	if !tx.Balance().IsPositive() {
		return *tx, nil
	}

	tx.AmountPaid = tx.TotalAmount
	tx.PaymentStatus = PaymentStatusFor(tx.AmountPaid, tx.TotalAmount)
	tx.Notes = strings.TrimSpace(tx.Notes + " " + settledMarker)

	if err := s.Save(data); err != nil {
		return Transaction{}, err
	}
	return *tx, nil
}

// AdjustStock applies stock += delta to the named product. No floor at
// zero is enforced here; callers own any business-rule clamping.
func (s *Store) AdjustStock(productID string, delta int) (Product, error) {
	data, err := s.Load()
	if err != nil {
		return Product{}, err
	}
	p := data.Product(productID)
	if p == nil {
		return Product{}, fmt.Errorf("product %q: %w", productID, ErrNotFound)
	}
	p.Stock += delta
	if err := s.Save(data); err != nil {
		return Product{}, err
	}
	return *p, nil
}

// RecordExpense appends a new expense (most-recent-first).
func (s *Store) RecordExpense(category, description string, amount Money, recordedBy string) (Expense, error) {
	if amount.IsNegative() {
		return Expense{}, ErrNegativeAmount
	}
	data, err := s.Load()
	if err != nil {
		return Expense{}, err
	}
	e := Expense{
		ID:          NewID(),
		Date:        time.Now(),
		Category:    category,
		Description: description,
		Amount:      amount,
		RecordedBy:  recordedBy,
	}
	data.Expenses = append([]Expense{e}, data.Expenses...)
	if err := s.Save(data); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// OpenTicket creates a new repair ticket. The id, display number and
// timestamps are assigned here; the display number comes from the
// aggregate's durable counter. Status defaults to OPEN and priority to
// MEDIUM when left empty. New tickets go to the front of the board.
func (s *Store) OpenTicket(t Ticket) (Ticket, error) {
	data, err := s.Load()
	if err != nil {
		return Ticket{}, err
	}

	now := time.Now()
	data.TicketSeq++
	t.ID = NewID()
	t.TicketNumber = ticketNumber(data.TicketSeq)
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = Open
	}
	if t.Priority == "" {
		t.Priority = Medium
	}

	data.Tickets = append([]Ticket{t}, data.Tickets...)
	if err := s.Save(data); err != nil {
		return Ticket{}, err
	}
	return t, nil
}

// UpdateTicket replaces the stored ticket with the same id. The creation
// timestamp and display number are preserved from the stored record, and
// UpdatedAt is refreshed. A missing id is reported as ErrNotFound.
func (s *Store) UpdateTicket(t Ticket) (Ticket, error) {
	data, err := s.Load()
	if err != nil {
		return Ticket{}, err
	}
	stored := data.Ticket(t.ID)
	if stored == nil {
		return Ticket{}, fmt.Errorf("ticket %q: %w", t.ID, ErrNotFound)
	}

	t.TicketNumber = stored.TicketNumber
	t.CreatedAt = stored.CreatedAt
	t.UpdatedAt = time.Now()
	*stored = t

	if err := s.Save(data); err != nil {
		return Ticket{}, err
	}
	return t, nil
}
