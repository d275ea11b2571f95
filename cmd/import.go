package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/stash"
	"github.com/etnz/stash/logger"
	"github.com/google/subcommands"
)

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge other ledger files of the same asset" }
func (*importCmd) Usage() string {
	return `fifo import [-y] <file>...

  Appends every transaction of each <file> to the ledger. Files holding another
  asset are rejected. Transactions that look identical (same kind, time, amount,
  price and fees) are reported as possible duplicates, they are not removed.
  Each import is confirmed interactively unless -y is set.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

// confirm asks a yes or no question, on a terminal only.
func confirm(question string) (bool, error) {
	if !isTerminal(os.Stdin) {
		return false, fmt.Errorf("cannot ask %q: stdin is not a terminal", question)
	}
	var ok bool
	err := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}
	return ok, nil
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		printErrorf("import expects at least one file")
		return subcommands.ExitUsageError
	}
	s, err := loadStash()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}

	imported := 0
	for _, path := range f.Args() {
		if !c.yes {
			ok, err := confirm(fmt.Sprintf("Import %s into the %s ledger?", path, s.Asset))
			if err != nil {
				printErrorf("%v, use -y to import without confirmation", err)
				return subcommands.ExitFailure
			}
			if !ok {
				printInfof("skipped %s", path)
				continue
			}
		}
		o, err := stash.ImportStash(s, path)
		if err != nil {
			printErrorf("%v", err)
			return subcommands.ExitFailure
		}
		imported++
		logger.Get().Infow("ledger merged", "file", path, "acquisitions", len(o.Acquisitions), "dispositions", len(o.Dispositions))
		printInfof("imported %d acquisitions and %d dispositions from %s", len(o.Acquisitions), len(o.Dispositions), path)
	}
	if imported == 0 {
		return subcommands.ExitSuccess
	}

	for _, group := range s.Duplicates() {
		tx := group[0]
		printWarnf("possible duplicate: %d identical %ss on %s", len(group), tx.Kind(), tx.When())
	}
	printAnomalies(s)
	if err := saveStash(s); err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	printSuccessf("saved %s, balance is now %s %s", *ledgerFile, s.Balance(), s.Asset)
	return subcommands.ExitSuccess
}
