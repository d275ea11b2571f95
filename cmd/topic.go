package cmd

import (
	"context"
	"flag"

	"github.com/etnz/stash/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `fifo topic [<topic>...]

  Shows the documentation of the given topics, the overview by default.
  "*" shows every topic.
`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// topics returns every topic name, for completion.
func topics() []string {
	all, err := docs.GetAllTopics()
	if err != nil {
		return []string{"readme"}
	}
	return append([]string{"readme", "*"}, all...)
}
