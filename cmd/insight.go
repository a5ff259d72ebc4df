package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/retxed/ithub/agent"
)

type insightCmd struct{}

func (*insightCmd) Name() string     { return "insight" }
func (*insightCmd) Synopsis() string { return "ask the AI analyst about the last 30 days" }
func (*insightCmd) Usage() string {
	return `ithub insight

  Summarizes the last 30 days of sales and expenses through the Gemini
  API. Requires GEMINI_API_KEY (or GOOGLE_API_KEY) in the environment.
`
}

func (*insightCmd) SetFlags(_ *flag.FlagSet) {}

func (*insightCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(agent.BusinessInsight(ctx, data))
	return subcommands.ExitSuccess
}
