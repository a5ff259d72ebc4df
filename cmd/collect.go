package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/retxed/ithub/renderer"
)

type collectCmd struct{}

func (*collectCmd) Name() string     { return "collect" }
func (*collectCmd) Synopsis() string { return "list unpaid debts and accounts receivable" }
func (*collectCmd) Usage() string {
	return `ithub collect

  Lists every transaction with an outstanding balance and the total
  amount pending. Use 'ithub settle <id>' to mark one as paid.
`
}

func (*collectCmd) SetFlags(_ *flag.FlagSet) {}

func (*collectCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ReceivablesMarkdown(data.Transactions))
	return subcommands.ExitSuccess
}
