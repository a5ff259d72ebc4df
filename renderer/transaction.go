package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/retxed/ithub"
)

// ReceiptMarkdown renders a committed transaction as a receipt.
func ReceiptMarkdown(t ithub.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Receipt %s", t.ID))
	doc.PlainText(fmt.Sprintf("%s — %s", day(t.Date), t.CustomerName))

	rows := make([][]string, 0, len(t.Items))
	for _, it := range t.Items {
		name := it.Name
		if it.Details != "" {
			name += " (" + it.Details + ")"
		}
		rows = append(rows, []string{
			name, fmt.Sprintf("%d", it.Quantity), it.Price.String(), it.Extension().String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Item", "Qty", "Price", "Amount"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Total: %s — Paid: %s (%s, %s)",
		t.TotalAmount, t.AmountPaid, t.PaymentStatus, t.PaymentMethod))
	if balance := t.Balance(); balance.IsPositive() {
		doc.PlainText(fmt.Sprintf("Balance of %s recorded as collectible.", balance))
	}

	doc.Build()
	return buf.String()
}

// LogMarkdown renders the transaction log, most recent first.
func LogMarkdown(txs []ithub.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	if len(txs) == 0 {
		doc.PlainText("No transactions yet.")
	} else {
		rows := make([][]string, 0, len(txs))
		for _, t := range txs {
			rows = append(rows, []string{
				t.ID,
				day(t.Date),
				t.CustomerName,
				fmt.Sprintf("%d items", len(t.Items)),
				t.TotalAmount.String(),
				t.AmountPaid.String(),
				string(t.PaymentStatus),
				string(t.PaymentMethod),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"ID", "Date", "Customer", "Items", "Total", "Paid", "Status", "Method"},
			Rows:   rows,
		})
	}

	doc.Build()
	return buf.String()
}
