package ithub

import (
	"time"
)

// Role is the role of a user of the shop system.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// User is a person operating the system. Users are reference data: the
// core never creates or edits them, and the `processedBy`/`recordedBy`
// fields on transactions and expenses are unchecked user identifiers.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// ProductCategory classifies a stocked product.
type ProductCategory string

const (
	ComputerParts     ProductCategory = "COMPUTER_PARTS"
	LaptopAccessories ProductCategory = "LAPTOP_ACCESSORIES"
	PrinterParts      ProductCategory = "PRINTER_PARTS"
	OtherProduct      ProductCategory = "OTHER"
)

// Product is a stocked item sold over the counter.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category ProductCategory `json:"category"`
	Price    Money           `json:"price"`
	Stock    int             `json:"stock"`
}

// ServiceCategory classifies a catalog service.
type ServiceCategory string

const (
	Printing     ServiceCategory = "PRINTING"
	Repair       ServiceCategory = "REPAIR"
	Design       ServiceCategory = "DESIGN"
	OtherService ServiceCategory = "OTHER"
)

// Service is a catalog entry for work the shop performs. Unit is a
// free-form designator ("per sq ft", "per page", "pc"); a unit mentioning
// "sq ft" selects area-based pricing, anything else is priced flat.
type Service struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  ServiceCategory `json:"category"`
	BasePrice Money           `json:"basePrice"`
	Unit      string          `json:"unit,omitempty"`
}

// ItemType distinguishes product and service cart lines.
type ItemType string

const (
	ItemProduct ItemType = "PRODUCT"
	ItemService ItemType = "SERVICE"
)

// CartItem is one line of a sale. For products the ID is the product id;
// for services it is synthesized per line so that two configurations of
// the same service can coexist in one cart.
type CartItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	Price    Money    `json:"price"`
	Quantity int      `json:"quantity"`
	Details  string   `json:"details,omitempty"`
}

// Extension returns the line total (price times quantity).
func (i CartItem) Extension() Money { return i.Price.MulInt(i.Quantity) }

// PaymentStatus reflects how much of a transaction has been paid.
// It is always a pure function of (amountPaid, totalAmount); it is stored
// in the snapshot for compatibility but recomputed on every write path.
type PaymentStatus string

const (
	Paid    PaymentStatus = "PAID"
	Unpaid  PaymentStatus = "UNPAID"
	Partial PaymentStatus = "PARTIAL"
)

// PaymentStatusFor derives the status from the amount paid so far and the
// transaction total: zero paid is UNPAID (even on a zero-total sale),
// paid >= total is PAID, everything else is PARTIAL.
func PaymentStatusFor(paid, total Money) PaymentStatus {
	switch {
	case paid.IsZero():
		return Unpaid
	case paid.GreaterThanOrEqual(total):
		return Paid
	default:
		return Partial
	}
}

// PaymentMethod is how a customer paid.
type PaymentMethod string

const (
	Cash         PaymentMethod = "CASH"
	GCash        PaymentMethod = "GCASH"
	BankTransfer PaymentMethod = "BANK_TRANSFER"
	Credit       PaymentMethod = "CREDIT"
)

// Transaction is a committed sale.
type Transaction struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	CustomerName  string        `json:"customerName"`
	Items         []CartItem    `json:"items"`
	TotalAmount   Money         `json:"totalAmount"`
	AmountPaid    Money         `json:"amountPaid"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Notes         string        `json:"notes,omitempty"`
	ProcessedBy   string        `json:"processedBy"`
}

// Balance returns the amount still owed on the transaction.
func (t Transaction) Balance() Money { return t.TotalAmount.Sub(t.AmountPaid) }

// Expense is money spent by the shop. Category is free text.
type Expense struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      Money     `json:"amount"`
	RecordedBy  string    `json:"recordedBy"`
}

// AppData is the aggregate root: the unit of persistence. All reads and
// writes operate on the full aggregate, there is no per-entity
// persistence granularity.
type AppData struct {
	Users        []User        `json:"users"`
	Products     []Product     `json:"products"`
	Services     []Service     `json:"services"`
	Transactions []Transaction `json:"transactions"`
	Expenses     []Expense     `json:"expenses"`
	Tickets      []Ticket      `json:"tickets"`

	// TicketSeq is the durable monotonic counter behind ticket display
	// numbers. Snapshots written before the field existed get it
	// backfilled on load.
	TicketSeq int `json:"ticketSeq,omitempty"`
}

// Product returns the product with this id, or nil if unknown.
func (d *AppData) Product(id string) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// Service returns the catalog service with this id, or nil if unknown.
func (d *AppData) Service(id string) *Service {
	for i := range d.Services {
		if d.Services[i].ID == id {
			return &d.Services[i]
		}
	}
	return nil
}

// Transaction returns the transaction with this id, or nil if unknown.
func (d *AppData) Transaction(id string) *Transaction {
	for i := range d.Transactions {
		if d.Transactions[i].ID == id {
			return &d.Transactions[i]
		}
	}
	return nil
}

// Ticket returns the ticket with this id, or nil if unknown.
func (d *AppData) Ticket(id string) *Ticket {
	for i := range d.Tickets {
		if d.Tickets[i].ID == id {
			return &d.Tickets[i]
		}
	}
	return nil
}

// User returns the user with this id, or nil if unknown.
func (d *AppData) User(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}
