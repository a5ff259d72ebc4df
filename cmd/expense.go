package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/retxed/ithub"
)

type expenseCmd struct {
	category    string
	description string
	amount      float64
	by          string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record a shop expense" }
func (*expenseCmd) Usage() string {
	return `ithub expense -c <category> -d <description> -a <amount> [-by <user>]

Usage Examples:
$ ithub expense -c Utilities -d "Internet Bill" -a 1500
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Expense category (free text)")
	f.StringVar(&c.description, "d", "", "What the money was spent on")
	f.Float64Var(&c.amount, "a", 0, "Amount spent")
	f.StringVar(&c.by, "by", "", "Id of the user recording the expense")
}

func (c *expenseCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" || c.description == "" {
		fmt.Fprintln(os.Stderr, "Error: -c and -d are required")
		return subcommands.ExitUsageError
	}
	e, err := openStore().RecordExpense(c.category, c.description, ithub.M(c.amount), c.by)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded expense %s: %s %s (%s)\n", e.ID, e.Category, e.Amount, e.Description)
	return subcommands.ExitSuccess
}
