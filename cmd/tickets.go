package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/retxed/ithub/renderer"
)

type ticketsCmd struct{}

func (*ticketsCmd) Name() string     { return "tickets" }
func (*ticketsCmd) Synopsis() string { return "show the service-desk board" }
func (*ticketsCmd) Usage() string {
	return `ithub tickets

  Shows all repair tickets grouped by status.
`
}

func (*ticketsCmd) SetFlags(_ *flag.FlagSet) {}

func (*ticketsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TicketBoardMarkdown(data.Tickets))
	return subcommands.ExitSuccess
}
