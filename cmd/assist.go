package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/stash/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `fifo assist [<prompt>]

  Starts an interactive session with an assistant that can read the ledger
  states, the open lots and the Form 8949. The optional <prompt> is asked first.
  The Gemini API key is read from GOOGLE_API_KEY (or GEMINI_API_KEY).
`
}
func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	s, err := loadStash()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		printErrorf("cannot initialize Gemini's client: %v", err)
		return subcommands.ExitFailure
	}

	a := agent.New(out, os.Stdin, agent.NewAccountant(s), agent.NewTaxAdvisor())
	a.Print = func(w io.Writer, answer string) { fmt.Fprintln(w, renderMarkdown(w, answer)) }

	if err := a.Run(ctx, client, prompts...); err != nil {
		printErrorf("assistant failed: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
