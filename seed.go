package ithub

import "time"

// seedData is the fixed dataset written on first-ever use, so the tool is
// demonstrable out of the box. The relative dates keep the seeded
// transactions inside the dashboard and report windows.
func seedData(now time.Time) *AppData {
	day := 24 * time.Hour
	return &AppData{
		Users: []User{
			{ID: "u1", Username: "admin", Role: RoleAdmin, Name: "System Admin"},
			{ID: "u2", Username: "staff", Role: RoleStaff, Name: "John Doe"},
		},
		Products: []Product{
			{ID: "p1", Name: "Kingston 8GB DDR4 RAM", Category: ComputerParts, Price: M(1200), Stock: 10},
			{ID: "p2", Name: "Logitech Wireless Mouse", Category: LaptopAccessories, Price: M(550), Stock: 25},
			{ID: "p3", Name: "Epson L3110 Printhead", Category: PrinterParts, Price: M(2500), Stock: 3},
			{ID: "p4", Name: "1TB SSD Samsung", Category: ComputerParts, Price: M(3500), Stock: 5},
			{ID: "p5", Name: "USB-C Hub", Category: LaptopAccessories, Price: M(800), Stock: 15},
		},
		Services: []Service{
			{ID: "s1", Name: "Tarpaulin Printing", Category: Printing, BasePrice: M(15), Unit: "per sq ft"},
			{ID: "s2", Name: "Document Printing (B&W)", Category: Printing, BasePrice: M(2), Unit: "per page"},
			{ID: "s3", Name: "Document Printing (Color)", Category: Printing, BasePrice: M(5), Unit: "per page"},
			{ID: "s4", Name: "Mug Printing", Category: Printing, BasePrice: M(150), Unit: "pc"},
			{ID: "s5", Name: "T-Shirt Printing (Heat Press)", Category: Printing, BasePrice: M(250), Unit: "pc"},
			{ID: "s6", Name: "Laptop Reformat", Category: Repair, BasePrice: M(500), Unit: "service"},
			{ID: "s7", Name: "Printer Reset", Category: Repair, BasePrice: M(300), Unit: "service"},
		},
		Transactions: []Transaction{
			{
				ID:           "t1",
				Date:         now.Add(-2 * day),
				CustomerName: "Alice Smith",
				Items: []CartItem{
					{ID: "s1", Name: "Tarpaulin Printing", Type: ItemService, Price: M(300), Quantity: 1, Details: "4x5 ft"},
				},
				TotalAmount:   M(300),
				AmountPaid:    M(300),
				PaymentStatus: Paid,
				PaymentMethod: Cash,
				ProcessedBy:   "u2",
			},
			{
				ID:           "t2",
				Date:         now.Add(-1 * day),
				CustomerName: "Bob Jones",
				Items: []CartItem{
					{ID: "p1", Name: "Kingston 8GB DDR4 RAM", Type: ItemProduct, Price: M(1200), Quantity: 2},
				},
				TotalAmount:   M(2400),
				AmountPaid:    M(1000),
				PaymentStatus: Partial,
				PaymentMethod: Cash,
				Notes:         "Will pay balance next week",
				ProcessedBy:   "u2",
			},
		},
		Expenses: []Expense{
			{ID: "e1", Date: now.Add(-5 * day), Category: "Utilities", Description: "Internet Bill", Amount: M(1500), RecordedBy: "u1"},
			{ID: "e2", Date: now.Add(-2 * day), Category: "Supplies", Description: "Ink Bottles (Black, Cyan)", Amount: M(1200), RecordedBy: "u1"},
		},
		Tickets: []Ticket{
			{
				ID:               "tk1",
				TicketNumber:     "T-1001",
				CustomerName:     "Sarah Connor",
				ContactNumber:    "0917-123-4567",
				DeviceType:       "Laptop",
				DeviceModel:      "Dell Inspiron 15",
				IssueDescription: "Blue screen loop upon startup.",
				Status:           InProgress,
				Priority:         High,
				CreatedAt:        now.Add(-3 * day),
				UpdatedAt:        now.Add(-1 * day),
				Diagnosis:        "Suspected HDD failure.",
				EstimatedCost:    M(3500),
			},
			{
				ID:               "tk2",
				TicketNumber:     "T-1002",
				CustomerName:     "Kyle Reese",
				ContactNumber:    "0918-987-6543",
				DeviceType:       "Printer",
				DeviceModel:      "Epson L360",
				IssueDescription: "Paper jam error even without paper.",
				Status:           Open,
				Priority:         Medium,
				CreatedAt:        now.Add(-time.Hour),
				UpdatedAt:        now.Add(-time.Hour),
			},
		},
		TicketSeq: 1002,
	}
}
