package cmd

import (
	"context"
	"errors"
	"flag"

	"github.com/etnz/stash"
	"github.com/etnz/stash/renderer"
	"github.com/google/subcommands"
)

type statesCmd struct {
	start  string
	end    string
	json   bool
	strict bool
}

func (*statesCmd) Name() string     { return "states" }
func (*statesCmd) Synopsis() string { return "show the ledger after each transaction" }
func (*statesCmd) Usage() string {
	return `fifo states [-s <start_date>] [-d <end_date>] [-json] [-strict]

  Shows, for every enabled transaction in time order, the balance, the lots it
  affected and the capital gains it realized, followed by the anomalies.
  -json dumps every state instead, whatever the dates.
  -strict fails when the ledger has anomalies.
`
}

func (c *statesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "First day to show.")
	f.StringVar(&c.end, "d", "", "Last day to show.")
	f.BoolVar(&c.json, "json", false, "Dump the states as JSON.")
	f.BoolVar(&c.strict, "strict", false, "Exit with a failure if any disposition overdraws the ledger.")
}

func (c *statesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.start, c.end)
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitUsageError
	}
	s, err := loadStash()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := stash.EncodeStates(out, s); err != nil {
			printErrorf("%v", err)
			return subcommands.ExitFailure
		}
	} else {
		printMarkdown(renderer.States(s, r))
	}

	if c.strict {
		var errs []error
		for _, a := range s.Anomalies() {
			errs = append(errs, a)
		}
		if err := errors.Join(errs...); err != nil {
			printErrorf("%v", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
