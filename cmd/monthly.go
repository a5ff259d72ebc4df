package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/retxed/ithub"
	"github.com/retxed/ithub/renderer"
)

type monthlyCmd struct {
	year int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "sales vs expenses per month" }
func (*monthlyCmd) Usage() string {
	return `ithub monthly [-y <year>]

  Shows cash collected and expenses per month for one calendar year
  (the current year by default).
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", time.Now().Year(), "Calendar year to report on")
}

func (c *monthlyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	buckets := ithub.MonthlySeries(data.Transactions, data.Expenses, c.year)
	printMarkdown(renderer.SeriesMarkdown(fmt.Sprintf("Monthly %d", c.year), buckets))
	return subcommands.ExitSuccess
}
