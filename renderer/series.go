package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/retxed/ithub"
)

// SeriesMarkdown renders a time-bucketed revenue/expense series with its
// totals row.
func SeriesMarkdown(title string, buckets []ithub.Bucket) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	var sales, expenses ithub.Money
	rows := make([][]string, 0, len(buckets)+1)
	for _, b := range buckets {
		rows = append(rows, []string{b.Label, b.Sales.String(), b.Expenses.String()})
		sales = sales.Add(b.Sales)
		expenses = expenses.Add(b.Expenses)
	}
	rows = append(rows, []string{"Total", sales.String(), expenses.String()})

	doc.Table(md.TableSet{
		Header: []string{"Period", "Sales (collected)", "Expenses"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}
