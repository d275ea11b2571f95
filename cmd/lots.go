package cmd

import (
	"context"
	"flag"

	"github.com/etnz/stash/date"
	"github.com/etnz/stash/renderer"
	"github.com/google/subcommands"
)

type lotsCmd struct {
	date string
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "show the open lots" }
func (*lotsCmd) Usage() string {
	return `fifo lots [-d <date>]

  Shows the lots still holding some asset after the last transaction, with their
  holding period on <date> (today by default).
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Day the holding periods are computed on.")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitUsageError
	}
	s, err := loadStash()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Lots(s, endOfDay(on)))
	return subcommands.ExitSuccess
}
