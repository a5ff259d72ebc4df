package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/retxed/ithub"
	"github.com/retxed/ithub/date"
	"github.com/retxed/ithub/renderer"
)

type dailyCmd struct{}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "sales vs expenses over the last 7 days" }
func (*dailyCmd) Usage() string {
	return `ithub daily

  Shows cash collected and expenses per day over the last 7 calendar
  days, ending today.
`
}

func (*dailyCmd) SetFlags(_ *flag.FlagSet) {}

func (*dailyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	buckets := ithub.WeeklySeries(data.Transactions, data.Expenses, date.Today())
	printMarkdown(renderer.SeriesMarkdown("Last 7 Days", buckets))
	return subcommands.ExitSuccess
}
