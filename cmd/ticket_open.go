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

type ticketOpenCmd struct {
	customer string
	contact  string
	device   string
	model    string
	issue    string
	priority string
	assign   string
}

func (*ticketOpenCmd) Name() string     { return "ticket-open" }
func (*ticketOpenCmd) Synopsis() string { return "open a new repair ticket" }
func (*ticketOpenCmd) Usage() string {
	return `ithub ticket-open -c <customer> -contact <number> -device <type> -model <model> -issue <description> [-p <priority>] [-assign <user>]

Usage Examples:
$ ithub ticket-open -c "Sarah Connor" -contact 0917-123-4567 -device Laptop -model "Dell Inspiron 15" -issue "Blue screen loop" -p HIGH
`
}

func (c *ticketOpenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer name (required)")
	f.StringVar(&c.contact, "contact", "", "Customer contact number")
	f.StringVar(&c.device, "device", "", "Device type (Laptop, Printer, ...)")
	f.StringVar(&c.model, "model", "", "Device model")
	f.StringVar(&c.issue, "issue", "", "Issue description (required)")
	f.StringVar(&c.priority, "p", string(ithub.Medium), "Priority (LOW, MEDIUM, HIGH, CRITICAL)")
	f.StringVar(&c.assign, "assign", "", "Id of the assigned user")
}

func (c *ticketOpenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.customer == "" || c.issue == "" {
		fmt.Fprintln(os.Stderr, "Error: -c and -issue are required")
		return subcommands.ExitUsageError
	}
	priority, err := ithub.ParseTicketPriority(c.priority)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	t, err := openStore().OpenTicket(ithub.Ticket{
		CustomerName:     c.customer,
		ContactNumber:    c.contact,
		DeviceType:       c.device,
		DeviceModel:      c.model,
		IssueDescription: c.issue,
		Priority:         priority,
		AssignedTo:       c.assign,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TicketMarkdown(t))
	return subcommands.ExitSuccess
}
