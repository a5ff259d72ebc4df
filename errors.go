package ithub

import "errors"

// Validation and lookup errors surfaced by the store and the cart.
// Nothing is persisted when any of them is returned.
var (
	// ErrEmptyCart rejects a checkout with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoCustomer rejects a checkout without a customer name.
	ErrNoCustomer = errors.New("customer name is required")
	// ErrOutOfStock rejects adding a product with no stock on hand.
	ErrOutOfStock = errors.New("out of stock")
	// ErrInsufficientStock rejects a quantity beyond the stock on hand.
	ErrInsufficientStock = errors.New("not enough stock")
	// ErrNotFound reports an id absent from its collection.
	ErrNotFound = errors.New("not found")
	// ErrNegativeAmount rejects a negative monetary input.
	ErrNegativeAmount = errors.New("amount must not be negative")
)
