package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/stash"
	"github.com/etnz/stash/renderer"
	"github.com/google/subcommands"
)

type form8949Cmd struct {
	years  string
	totals bool
	html   string
}

func (*form8949Cmd) Name() string     { return "form8949" }
func (*form8949Cmd) Synopsis() string { return "IRS Form 8949 entries and totals" }
func (*form8949Cmd) Usage() string {
	return `fifo form8949 [-year <year>[,<year>...]] [-totals] [-html <file>]

  Lists one entry per lot consumed by each disposition sold in the selected
  years (all years by default), followed by short term, long term and overall
  totals. -html also writes the report as an HTML page.

Usage Examples:
$ fifo form8949 -year 2016
$ fifo form8949 -year 2016,2017 -html 8949.html
`
}

func (c *form8949Cmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.years, "year", "", "Comma separated years of sale.")
	f.BoolVar(&c.totals, "totals", false, "Only show the totals.")
	f.StringVar(&c.html, "html", "", "Also write the report to this HTML file.")
}

func parseYears(s string) ([]int, error) {
	var years []int
	for _, y := range strings.Split(s, ",") {
		if y = strings.TrimSpace(y); y == "" {
			continue
		}
		n, err := strconv.Atoi(y)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", y)
		}
		years = append(years, n)
	}
	return years, nil
}

func (c *form8949Cmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	years, err := parseYears(c.years)
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitUsageError
	}
	s, err := loadStash()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	printAnomalies(s)

	form := stash.NewForm8949(s)
	form.FilterByYear(years...)
	md := renderer.Form8949(s, form, renderer.Form8949Options{SkipEntries: c.totals})
	printMarkdown(md)

	if c.html != "" {
		html, err := renderer.HTML(md)
		if err != nil {
			printErrorf("%v", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.html, []byte(html), 0644); err != nil {
			printErrorf("could not write %q: %v", c.html, err)
			return subcommands.ExitFailure
		}
		printSuccessf("wrote %s", c.html)
	}
	return subcommands.ExitSuccess
}
