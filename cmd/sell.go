package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/retxed/ithub"
	"github.com/retxed/ithub/renderer"
)

type sellCmd struct {
	customer string
	paid     float64
	method   string
	notes    string
	by       string

	// service configuration, applied to service items in this sale
	width   float64
	height  float64
	details string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a point-of-sale transaction" }
func (*sellCmd) Usage() string {
	return `ithub sell -c <customer> [-paid <amount>] [-m <method>] [-n <notes>] <item>...

  Records a sale. Each <item> is "<id>[:qty]" where <id> is a product or
  catalog-service id (see 'ithub inventory'). Area-priced services take
  their dimensions from -w and -h.

Usage Examples:
# Two sticks of RAM, fully paid in cash.
$ ithub sell -c "Bob Jones" -paid 2400 p1:2

# A 4x5 ft tarpaulin, unpaid (recorded as collectible).
$ ithub sell -c "Alice Smith" -w 4 -h 5 s1
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer name (required)")
	f.Float64Var(&c.paid, "paid", 0, "Amount paid now (0 records the sale as unpaid)")
	f.StringVar(&c.method, "m", string(ithub.Cash), "Payment method (CASH, GCASH, BANK_TRANSFER, CREDIT)")
	f.StringVar(&c.notes, "n", "", "Notes on the transaction")
	f.StringVar(&c.by, "by", "", "Id of the user processing the sale")
	f.Float64Var(&c.width, "w", 0, "Width in ft, for area-priced services")
	f.Float64Var(&c.height, "h", 0, "Height in ft, for area-priced services")
	f.StringVar(&c.details, "d", "", "Details for service items (e.g. paper type)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no items given")
		return subcommands.ExitUsageError
	}

	store := openStore()
	data, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var cart ithub.Cart
	for _, arg := range f.Args() {
		id, qty, err := parseItem(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		switch {
		case data.Product(id) != nil:
			for i := 0; i < qty; i++ {
				if err := cart.AddProduct(*data.Product(id)); err != nil {
					fmt.Fprintln(os.Stderr, "Error:", err)
					return subcommands.ExitFailure
				}
			}
		case data.Service(id) != nil:
			cart.AddService(*data.Service(id), ithub.ServiceConfig{
				Width:    c.width,
				Height:   c.height,
				Quantity: qty,
				Notes:    c.details,
			})
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown item id %q\n", id)
			return subcommands.ExitFailure
		}
	}

	tx, err := store.RecordSale(&cart, ithub.SaleInput{
		CustomerName:  c.customer,
		AmountPaid:    ithub.M(c.paid),
		PaymentMethod: ithub.PaymentMethod(c.method),
		Notes:         c.notes,
		ProcessedBy:   c.by,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReceiptMarkdown(tx))
	return subcommands.ExitSuccess
}

// parseItem splits "<id>[:qty]".
func parseItem(arg string) (id string, qty int, err error) {
	id, rest, found := strings.Cut(arg, ":")
	if id == "" {
		return "", 0, fmt.Errorf("invalid item %q", arg)
	}
	if !found {
		return id, 1, nil
	}
	qty, err = strconv.Atoi(rest)
	if err != nil || qty < 1 {
		return "", 0, fmt.Errorf("invalid quantity in item %q", arg)
	}
	return id, qty, nil
}
