package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stash"
	"github.com/etnz/stash/renderer"
	"github.com/google/subcommands"
)

// txRef designates a stored transaction on the command line.
type txRef struct {
	kind  string
	index int
}

func (r *txRef) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.kind, "kind", "", "Kind of transaction: acq or disp.")
	f.IntVar(&r.index, "i", 0, "Index of the transaction, 1-based, as listed by 'fifo tx'.")
}

// resolve returns the kind and the 0-based index of the transaction.
func (r *txRef) resolve() (stash.Kind, int, error) {
	kind, err := stash.ParseKind(r.kind)
	if err != nil {
		return kind, 0, err
	}
	if r.index < 1 {
		return kind, 0, fmt.Errorf("-i must be a positive index, got %d", r.index)
	}
	return kind, r.index - 1, nil
}

// toggleCmd disables or re-enables a transaction.
type toggleCmd struct {
	txRef
	disable bool
}

func (c *toggleCmd) Name() string {
	if c.disable {
		return "disable"
	}
	return "enable"
}

func (c *toggleCmd) Synopsis() string {
	if c.disable {
		return "exclude a transaction from the computation, without deleting it"
	}
	return "include a disabled transaction back in the computation"
}

func (c *toggleCmd) Usage() string {
	return fmt.Sprintf(`fifo %s -kind acq|disp -i <index>

  %s. Lots are renumbered accordingly.

Usage Examples:
$ fifo %s -kind acq -i 2
`, c.Name(), c.Synopsis(), c.Name())
}

func (c *toggleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, i, err := c.resolve()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitUsageError
	}
	s, err := loadStash()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	if err := s.SetDisabled(kind, i, c.disable); err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	s.Update()
	if err := saveStash(s); err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	printAnomalies(s)
	printSuccessf("%sd %s #%d, balance is now %s", c.Name(), kind, c.index, s.Balance())
	return subcommands.ExitSuccess
}

type rmCmd struct{ txRef }

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction" }
func (*rmCmd) Usage() string {
	return `fifo rm -kind acq|disp -i <index>

  Deletes a transaction from the ledger. Following transactions of the same
  kind shift down by one index. See 'fifo disable' to keep it around.
`
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, i, err := c.resolve()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitUsageError
	}
	s, err := loadStash()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	if err := s.Remove(kind, i); err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	s.Update()
	if err := saveStash(s); err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	printAnomalies(s)
	printSuccessf("removed %s #%d, balance is now %s", kind, c.index, s.Balance())
	return subcommands.ExitSuccess
}

type listCmd struct{}

func (*listCmd) Name() string     { return "tx" }
func (*listCmd) Synopsis() string { return "list the transactions as stored in the ledger" }
func (*listCmd) Usage() string {
	return `fifo tx

  Lists acquisitions and dispositions with the index used by enable, disable and rm.
`
}
func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStash()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Transactions(s))
	return subcommands.ExitSuccess
}
