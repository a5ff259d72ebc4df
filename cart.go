package ithub

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cart accumulates uncommitted sale lines. It is ephemeral: stock is only
// touched when the cart is committed through Store.RecordSale.
type Cart struct {
	items []CartItem
}

// Items returns the cart lines in order.
func (c *Cart) Items() []CartItem { return c.items }

// Len returns the number of lines in the cart.
func (c *Cart) Len() int { return len(c.items) }

// Total returns the sum of all line extensions.
func (c *Cart) Total() Money {
	var total Money
	for _, it := range c.items {
		total = total.Add(it.Extension())
	}
	return total
}

// AddProduct adds one unit of the product, merging into an existing line
// when the product is already in the cart. It returns ErrOutOfStock for a
// product with no stock on hand, and ErrInsufficientStock when the line
// quantity has reached the stock on hand.
func (c *Cart) AddProduct(p Product) error {
	if p.Stock <= 0 {
		return fmt.Errorf("%s: %w", p.Name, ErrOutOfStock)
	}
	for i, it := range c.items {
		if it.ID == p.ID && it.Type == ItemProduct {
			if it.Quantity >= p.Stock {
				return fmt.Errorf("%s: %w", p.Name, ErrInsufficientStock)
			}
			c.items[i].Quantity++
			return nil
		}
	}
	c.items = append(c.items, CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Type:     ItemProduct,
		Price:    p.Price,
		Quantity: 1,
	})
	return nil
}

// ServiceConfig captures the operator's input when a catalog service is
// added to a cart: dimensions for area-priced work, a quantity, and
// free-form notes.
type ServiceConfig struct {
	Width    float64
	Height   float64
	Quantity int
	Notes    string
}

// AddService prices the service from its base price and the given
// configuration and appends it as a new line. A unit designator
// mentioning "sq ft" selects area pricing (base price times width times
// height); any other unit is flat per piece. The line gets an identity of
// its own, distinct from the catalog id, so two configurations of the
// same service can coexist in one cart.
func (c *Cart) AddService(svc Service, cfg ServiceConfig) CartItem {
	price := svc.BasePrice
	details := cfg.Notes
	if strings.Contains(svc.Unit, "sq ft") {
		area := cfg.Width * cfg.Height
		price = svc.BasePrice.Mul(decimal.NewFromFloat(area))
		details = fmt.Sprintf("%sx%s ft (%s sq ft) - %s",
			formatDim(cfg.Width), formatDim(cfg.Height), formatDim(area), cfg.Notes)
	}
	qty := cfg.Quantity
	if qty < 1 {
		qty = 1
	}
	item := CartItem{
		ID:       svc.ID + NewID(),
		Name:     svc.Name,
		Type:     ItemService,
		Price:    price,
		Quantity: qty,
		Details:  details,
	}
	c.items = append(c.items, item)
	return item
}

// Remove removes the line at the given position. Out-of-range positions
// are ignored.
func (c *Cart) Remove(i int) {
	if i < 0 || i >= len(c.items) {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// formatDim renders a dimension without trailing zeros ("4", "4.5").
func formatDim(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
