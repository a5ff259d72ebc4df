package ithub

import (
	"errors"
	"testing"
)

func TestCart_AddProduct(t *testing.T) {
	mouse := Product{ID: "p2", Name: "Logitech Wireless Mouse", Price: M(550), Stock: 2}

	var cart Cart
	if err := cart.AddProduct(mouse); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := cart.AddProduct(mouse); err != nil {
		t.Fatalf("second add: %v", err)
	}
	if cart.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 merged line", cart.Len())
	}
	if got := cart.Items()[0].Quantity; got != 2 {
		t.Errorf("Quantity = %d, want 2", got)
	}

	// The line has reached the stock on hand.
	if err := cart.AddProduct(mouse); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("third add err = %v, want ErrInsufficientStock", err)
	}
}

func TestCart_AddProductOutOfStock(t *testing.T) {
	var cart Cart
	err := cart.AddProduct(Product{ID: "p9", Name: "Gone", Stock: 0})
	if !errors.Is(err, ErrOutOfStock) {
		t.Errorf("err = %v, want ErrOutOfStock", err)
	}
	if cart.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cart.Len())
	}
}

func TestCart_AddServiceAreaPricing(t *testing.T) {
	tarp := Service{ID: "s1", Name: "Tarpaulin Printing", BasePrice: M(25), Unit: "per sq ft"}

	var cart Cart
	item := cart.AddService(tarp, ServiceConfig{Width: 4, Height: 5, Quantity: 1, Notes: "Birthday banner"})

	if !item.Price.Equal(M(500)) {
		t.Errorf("Price = %s, want %s", item.Price, M(500))
	}
	if want := "4x5 ft (20 sq ft) - Birthday banner"; item.Details != want {
		t.Errorf("Details = %q, want %q", item.Details, want)
	}
	if item.ID == tarp.ID {
		t.Errorf("line id %q must differ from the catalog id", item.ID)
	}
}

func TestCart_AddServiceFractionalDimensions(t *testing.T) {
	tarp := Service{ID: "s1", Name: "Tarpaulin Printing", BasePrice: M(10), Unit: "per sq ft"}

	var cart Cart
	item := cart.AddService(tarp, ServiceConfig{Width: 2.5, Height: 4, Quantity: 2})

	if !item.Price.Equal(M(100)) {
		t.Errorf("Price = %s, want %s", item.Price, M(100))
	}
	if want := "2.5x4 ft (10 sq ft) - "; item.Details != want {
		t.Errorf("Details = %q, want %q", item.Details, want)
	}
	// Quantity multiplies whole prints, not square feet.
	if !item.Extension().Equal(M(200)) {
		t.Errorf("Extension() = %s, want %s", item.Extension(), M(200))
	}
}

func TestCart_AddServiceFlatPricing(t *testing.T) {
	reformat := Service{ID: "s6", Name: "Laptop Reformat", BasePrice: M(500), Unit: "service"}

	var cart Cart
	item := cart.AddService(reformat, ServiceConfig{Notes: "Backup first"})

	if !item.Price.Equal(M(500)) {
		t.Errorf("Price = %s, want %s", item.Price, M(500))
	}
	if item.Quantity != 1 {
		t.Errorf("Quantity = %d, want default 1", item.Quantity)
	}
	if item.Details != "Backup first" {
		t.Errorf("Details = %q, want the notes verbatim", item.Details)
	}
}

func TestCart_SameServiceTwice(t *testing.T) {
	mug := Service{ID: "s4", Name: "Mug Printing", BasePrice: M(150), Unit: "pc"}

	var cart Cart
	a := cart.AddService(mug, ServiceConfig{Quantity: 1})
	b := cart.AddService(mug, ServiceConfig{Quantity: 3})

	if cart.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 distinct lines", cart.Len())
	}
	if a.ID == b.ID {
		t.Errorf("both lines share id %q", a.ID)
	}
	if !cart.Total().Equal(M(600)) {
		t.Errorf("Total() = %s, want %s", cart.Total(), M(600))
	}
}

func TestCart_Remove(t *testing.T) {
	var cart Cart
	if err := cart.AddProduct(Product{ID: "p1", Name: "RAM", Price: M(1200), Stock: 10}); err != nil {
		t.Fatal(err)
	}
	cart.AddService(Service{ID: "s4", Name: "Mug Printing", BasePrice: M(150)}, ServiceConfig{})

	cart.Remove(5) // out of range, ignored
	if cart.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cart.Len())
	}
	cart.Remove(0)
	if cart.Len() != 1 || cart.Items()[0].Name != "Mug Printing" {
		t.Errorf("after Remove(0): %v, want only the mug line", cart.Items())
	}
}
