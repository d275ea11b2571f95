package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stash"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the states" }
func (*queryCmd) Usage() string {
	return `fifo query <jsonpath>

  Evaluates a JSONPath expression over the document printed by 'fifo states -json'
  and prints the result as JSON.

Usage Examples:
$ fifo query '$.balance'
$ fifo query '$.states[?(@.overdraw > 0)].index'
`
}
func (*queryCmd) SetFlags(f *flag.FlagSet) {}

// query evaluates expr over the states of s.
func query(s *stash.Stash, expr string) (any, error) {
	var buf bytes.Buffer
	if err := stash.EncodeStates(&buf, s); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, err
	}
	return jsonpath.Get(expr, doc)
}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		printErrorf("query expects exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	s, err := loadStash()
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	result, err := query(s, f.Arg(0))
	if err != nil {
		printErrorf("invalid query %q: %v", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
