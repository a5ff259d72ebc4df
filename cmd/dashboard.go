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

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show today's headline figures" }
func (*dashboardCmd) Usage() string {
	return `ithub dashboard

  Shows today's sales, outstanding collectibles, all-time revenue and
  expenses, and the five most recent transactions.
`
}

func (*dashboardCmd) SetFlags(_ *flag.FlagSet) {}

func (*dashboardCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(ithub.NewDashboard(data, date.Today())))
	return subcommands.ExitSuccess
}
