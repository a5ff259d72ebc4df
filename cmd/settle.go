package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type settleCmd struct {
	yes bool
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "mark a collectible transaction as fully paid" }
func (*settleCmd) Usage() string {
	return `ithub settle [-y] <transaction-id>

  Settles the outstanding balance of a transaction in full: amount paid
  is raised to the total and the status becomes PAID. There is no partial
  settlement. Asks for confirmation unless -y is given.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	store := openStore()
	data, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	tx := data.Transaction(id)
	if tx == nil {
		fmt.Fprintf(os.Stderr, "Error: no transaction %q\n", id)
		return subcommands.ExitFailure
	}
	if balance := tx.Balance(); !balance.IsPositive() {
		fmt.Printf("Transaction %s is already settled.\n", id)
		return subcommands.ExitSuccess
	}

	if !c.yes {
		fmt.Printf("Mark remainder %s as paid for %s? [y/N] ", tx.Balance(), tx.CustomerName)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	settled, err := store.Settle(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Settled %s for %s, paid %s.\n", settled.ID, settled.CustomerName, settled.AmountPaid)
	return subcommands.ExitSuccess
}
