package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type stockCmd struct {
	set int
	add int
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "adjust the stock level of a product" }
func (*stockCmd) Usage() string {
	return `ithub stock [-set <n> | -add <n>] <product-id>

  Corrects the on-hand stock of a product. -set enters the counted
  absolute quantity (converted to a delta against the current level);
  -add applies a signed delta directly.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.set, "set", -1, "New absolute stock quantity")
	f.IntVar(&c.add, "add", 0, "Signed stock delta")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product id")
		return subcommands.ExitUsageError
	}
	if c.set >= 0 && c.add != 0 {
		fmt.Fprintln(os.Stderr, "Error: -set and -add cannot be used together")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	store := openStore()
	delta := c.add
	if c.set >= 0 {
		data, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		p := data.Product(id)
		if p == nil {
			fmt.Fprintf(os.Stderr, "Error: no product %q\n", id)
			return subcommands.ExitFailure
		}
		delta = c.set - p.Stock
	}

	p, err := store.AdjustStock(id, delta)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s now at %d units.\n", p.Name, p.Stock)
	return subcommands.ExitSuccess
}
