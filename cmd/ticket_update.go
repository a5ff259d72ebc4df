package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/retxed/ithub"
	"github.com/retxed/ithub/renderer"
)

type ticketUpdateCmd struct {
	status    string
	priority  string
	assign    string
	notes     string
	diagnosis string
	cost      float64
}

func (*ticketUpdateCmd) Name() string     { return "ticket-update" }
func (*ticketUpdateCmd) Synopsis() string { return "update an existing repair ticket" }
func (*ticketUpdateCmd) Usage() string {
	return `ithub ticket-update [-s <status>] [-p <priority>] [-assign <user>] [-notes <text>] [-diagnosis <text>] [-cost <amount>] <ticket-id>

  Updates fields of a ticket. Statuses are labels, not an enforced
  workflow: any status may move to any other. Fields not given keep
  their stored value; the updated-at timestamp is always refreshed.
`
}

func (c *ticketUpdateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "s", "", "New status (OPEN, IN_PROGRESS, WAITING_FOR_PARTS, RESOLVED, CLOSED)")
	f.StringVar(&c.priority, "p", "", "New priority (LOW, MEDIUM, HIGH, CRITICAL)")
	f.StringVar(&c.assign, "assign", "", "Id of the assigned user")
	f.StringVar(&c.notes, "notes", "", "Internal tech notes")
	f.StringVar(&c.diagnosis, "diagnosis", "", "Diagnosis")
	f.Float64Var(&c.cost, "cost", -1, "Estimated repair cost")
}

func (c *ticketUpdateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one ticket id")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	store := openStore()
	data, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	stored := data.Ticket(id)
	if stored == nil {
		fmt.Fprintf(os.Stderr, "Error: no ticket %q\n", id)
		return subcommands.ExitFailure
	}

	t := *stored
	if c.status != "" {
		status, err := ithub.ParseTicketStatus(c.status)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		t.Status = status
	}
	if c.priority != "" {
		priority, err := ithub.ParseTicketPriority(c.priority)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		t.Priority = priority
	}
	if c.assign != "" {
		t.AssignedTo = c.assign
	}
	if c.notes != "" {
		t.Notes = c.notes
	}
	if c.diagnosis != "" {
		t.Diagnosis = c.diagnosis
	}
	if c.cost >= 0 {
		t.EstimatedCost = ithub.M(c.cost)
	}

	updated, err := store.UpdateTicket(t)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TicketMarkdown(updated))
	return subcommands.ExitSuccess
}
