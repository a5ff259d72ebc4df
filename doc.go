// Package ithub provides the ledger and inventory model for a small IT
// repair and printing shop. It is designed to be local-first: the whole
// shop state (users, products, services, transactions, expenses, repair
// tickets) lives in a single JSON snapshot on disk, loaded and saved as
// one unit.
//
// The core functionalities include:
//   - Ledger Store: owning the canonical collections and applying
//     mutations (record a sale, settle a debt, adjust stock, open or
//     update a ticket, record an expense) while preserving the invariants
//     that relate money fields and stock counts.
//   - Sale Builder: converting a shopping cart of products and configured
//     services into a committed transaction, including area-based service
//     pricing and stock-availability checks.
//   - Reporting: read-side aggregations (daily sales, receivables,
//     revenue-vs-expense series, cash-basis profit) consumed by the
//     command-line surfaces.
//
// This package serves as the foundational logic for the `ithub`
// command-line tool.
package ithub
