package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/retxed/ithub"
)

// ReceivablesMarkdown renders the collectibles table: every transaction
// not yet fully paid, with its outstanding balance, and the total owed.
func ReceivablesMarkdown(txs []ithub.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Collectibles")

	var rows [][]string
	for _, t := range txs {
		if t.PaymentStatus == ithub.Paid {
			continue
		}
		names := make([]string, 0, len(t.Items))
		for _, it := range t.Items {
			names = append(names, it.Name)
		}
		rows = append(rows, []string{
			t.ID,
			day(t.Date),
			t.CustomerName,
			strings.Join(names, ", "),
			t.TotalAmount.String(),
			t.AmountPaid.String(),
			t.Balance().String(),
			string(t.PaymentStatus),
		})
	}

	if len(rows) == 0 {
		doc.PlainText("No pending collectibles found. Great job!")
	} else {
		doc.Table(md.TableSet{
			Header: []string{"ID", "Date", "Customer", "Items", "Total", "Paid", "Balance", "Status"},
			Rows:   rows,
		})
		doc.PlainText(fmt.Sprintf("Total pending: %s", ithub.TotalReceivable(txs)))
	}

	doc.Build()
	return buf.String()
}
