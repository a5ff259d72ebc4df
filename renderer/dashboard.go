package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/retxed/ithub"
)

// DashboardMarkdown renders the headline figures and the recent
// transactions table.
func DashboardMarkdown(d *ithub.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard — %s", d.Date))

	doc.Table(md.TableSet{
		Header: []string{"Sales Today", "Receivables", "Revenue (all-time)", "Expenses (all-time)"},
		Rows: [][]string{{
			d.DailySales.String(),
			d.Receivable.String(),
			d.TotalRevenue.String(),
			d.TotalExpenses.String(),
		}},
	})

	doc.H2("Recent Transactions")
	if len(d.Recent) == 0 {
		doc.PlainText("No transactions yet.")
	} else {
		rows := make([][]string, 0, len(d.Recent))
		for _, t := range d.Recent {
			rows = append(rows, []string{
				day(t.Date), t.CustomerName, t.TotalAmount.String(), string(t.PaymentStatus),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Customer", "Total", "Status"},
			Rows:   rows,
		})
	}

	doc.Build()
	return buf.String()
}
