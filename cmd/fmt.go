package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fifo fmt

  Validates and formats the ledger file. This command reads all transactions,
  validates them, sorts them by time, and writes them back in the canonical
  form: stable key order, two spaces indentation.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStash()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	if err := saveStash(s); err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	printSuccessf("formatted %s", *ledgerFile)
	return subcommands.ExitSuccess
}
