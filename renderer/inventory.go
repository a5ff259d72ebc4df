package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/retxed/ithub"
)

// lowStock marks products running out on the inventory listing.
const lowStock = 5

// InventoryMarkdown renders the product list with stock levels.
func InventoryMarkdown(products []ithub.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		stock := fmt.Sprintf("%d units", p.Stock)
		if p.Stock < lowStock {
			stock += " (low)"
		}
		rows = append(rows, []string{p.ID, p.Name, string(p.Category), p.Price.String(), stock})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Category", "Price", "Stock"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}

// ServicesMarkdown renders the service catalog with base prices.
func ServicesMarkdown(services []ithub.Service) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Services")

	rows := make([][]string, 0, len(services))
	for _, s := range services {
		rows = append(rows, []string{s.ID, s.Name, string(s.Category), s.BasePrice.String(), s.Unit})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Category", "Base Price", "Unit"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}
