// Package cmd implements the CLI application to manage the shop ledger.
package cmd

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/retxed/ithub"
)

// As a CLI application, it has a very short-lived lifecycle, so it is ok
// to use a global flag for the data file location.

var dataFile = flag.String("data-file", defaultDataFile(), "Path to the shop data file (JSON)")

func defaultDataFile() string {
	if v := os.Getenv("ITHUB_DATA"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ithub.json"
	}
	return filepath.Join(home, ".ithub", "data.json")
}

// openStore returns the store backed by the configured data file.
func openStore() *ithub.Store { return ithub.NewStore(*dataFile) }

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&dashboardCmd{},
	&sellCmd{},
	&txCmd{},
	&collectCmd{},
	&settleCmd{},
	&expenseCmd{},
	&inventoryCmd{},
	&stockCmd{},
	&ticketOpenCmd{},
	&ticketUpdateCmd{},
	&ticketsCmd{},
	&usersCmd{},
	&dailyCmd{},
	&monthlyCmd{},
	&insightCmd{},
	&topicCmd{},
}
