package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stash"
	"github.com/google/subcommands"
)

// txCmd appends an acquisition or a disposition to the ledger.
type txCmd struct {
	kind      stash.Kind
	date      string
	amount    string
	price     string
	fees      string
	reference string
	comment   string
	disabled  bool
}

func (c *txCmd) Name() string {
	if c.kind == stash.KindDisposition {
		return "dispose"
	}
	return "acquire"
}

func (c *txCmd) Synopsis() string {
	if c.kind == stash.KindDisposition {
		return "record a sale, consuming lots first in first out"
	}
	return "record a purchase, opening a new lot"
}

func (c *txCmd) Usage() string {
	return fmt.Sprintf(`fifo %s -d <time> -amount <quantity> -price <unit price> [-fees <fees>] [-ref <reference>] [-comment <text>]

  Appends a %s to the ledger, recomputes every state and saves the ledger.
  <time> is seconds since the epoch (from 100000000), a date, or a date and
  a time, in UTC.
  Fees may be negative (a rebate).

Usage Examples:
$ fifo %s -d "2015-10-22 14:33:00" -amount 75.51075 -price 274.18
`, c.Name(), c.kind, c.Name())
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Time of the transaction.")
	f.StringVar(&c.amount, "amount", "", "Quantity of asset, strictly positive.")
	f.StringVar(&c.price, "price", "", "Unit price, strictly positive.")
	f.StringVar(&c.fees, "fees", "0", "Fees paid.")
	f.StringVar(&c.reference, "ref", "", "External reference, for instance the exchange order id.")
	f.StringVar(&c.comment, "comment", "", "Free text comment.")
	f.BoolVar(&c.disabled, "disabled", false, "Record the transaction disabled.")
}

// transaction builds the transaction out of the flags.
func (c *txCmd) transaction(asset string) (stash.Transaction, error) {
	ts, err := parseTimestamp(c.date)
	if err != nil {
		return nil, err
	}
	amount, err := stash.ParseQuantity(c.amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", c.amount, err)
	}
	price, err := stash.ParseMoney(c.price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", c.price, err)
	}
	fees, err := stash.ParseMoney(c.fees)
	if err != nil {
		return nil, fmt.Errorf("invalid fees %q: %w", c.fees, err)
	}

	if c.kind == stash.KindDisposition {
		d, err := stash.NewDisposition(ts, asset, amount, price, fees, c.reference, c.comment)
		if err != nil {
			return nil, err
		}
		d.Disabled = c.disabled
		return d, nil
	}
	a, err := stash.NewAcquisition(ts, asset, amount, price, fees, c.reference, c.comment)
	if err != nil {
		return nil, err
	}
	a.Disabled = c.disabled
	return a, nil
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStash()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	tx, err := c.transaction(s.Asset)
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitUsageError
	}
	if err := s.Add(tx); err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	s.Update()
	if err := saveStash(s); err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	printAnomalies(s)
	printSuccessf("recorded %s of %s %s on %s, balance is now %s", tx.Kind(), c.amount, s.Asset, tx.When(), s.Balance())
	return subcommands.ExitSuccess
}
