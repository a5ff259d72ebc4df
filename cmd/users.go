package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/retxed/ithub/renderer"
)

type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list the shop's users" }
func (*usersCmd) Usage() string {
	return `ithub users

  Lists the users referenced by the -by flags of other commands. Users
  are reference data; this tool does not create or edit them.
`
}

func (*usersCmd) SetFlags(_ *flag.FlagSet) {}

func (*usersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.UsersMarkdown(data.Users))
	return subcommands.ExitSuccess
}
