package cmd

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/stash"
	"github.com/google/subcommands"
)

type initCmd struct {
	asset    string
	title    string
	currency string
	force    bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create an empty ledger file" }
func (*initCmd) Usage() string {
	return `fifo init -asset <asset> [-title <title>] [-currency <code>] [-force]

  Creates an empty ledger of <asset> in the ledger file. An existing file is
  never overwritten unless -force is set.

Usage Examples:
$ fifo -ledger-file coinbase.json init -asset BTC -title Coinbase -currency USD
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Asset held in the ledger, for instance BTC.")
	f.StringVar(&c.title, "title", "", "Free text title of the ledger.")
	f.StringVar(&c.currency, "currency", "", "ISO 4217 code of the currency prices are expressed in, for reports only.")
	f.BoolVar(&c.force, "force", false, "Overwrite an existing ledger file.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.asset = strings.TrimSpace(c.asset)
	if c.asset == "" {
		printErrorf("-asset is required")
		return subcommands.ExitUsageError
	}
	if c.currency != "" && money.GetCurrency(c.currency) == nil {
		printErrorf("unknown currency %q", c.currency)
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(*ledgerFile); !c.force && !errors.Is(err, fs.ErrNotExist) {
		printErrorf("ledger file %q already exists, use -force to overwrite it", *ledgerFile)
		return subcommands.ExitFailure
	}

	s := stash.New(c.asset, c.title)
	s.Currency = c.currency
	if err := saveStash(s); err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	printSuccessf("created the %s ledger %s", s.Asset, *ledgerFile)
	return subcommands.ExitSuccess
}
