package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/retxed/ithub/renderer"
)

type inventoryCmd struct {
	services bool
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list products and stock levels" }
func (*inventoryCmd) Usage() string {
	return `ithub inventory [-services]

  Lists the product catalog with stock levels, or the service catalog
  with base prices when -services is given.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.services, "services", false, "List the service catalog instead of products")
}

func (c *inventoryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if c.services {
		printMarkdown(renderer.ServicesMarkdown(data.Services))
	} else {
		printMarkdown(renderer.InventoryMarkdown(data.Products))
	}
	return subcommands.ExitSuccess
}
