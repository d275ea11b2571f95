package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors of flags whose values are known, other flags accept anything.
var predictors = map[string]complete.Predictor{
	"ledger-file": predict.Files("*.json"),
	"fees":        predict.Set{"per-lot", "pro-rata"},
	"kind":        predict.Set{"acq", "disp"},
	"html":        predict.Files("*.html"),
}

func predictor(f *flag.Flag) complete.Predictor {
	if p, ok := predictors[f.Name]; ok {
		return p
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}

// Completion returns the shell completion of every command registered in c.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	c.VisitAll(func(f *flag.Flag) { root.Flags[f.Name] = predictor(f) })

	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = predictor(f) })
		switch cmd.Name() {
		case "import":
			sub.Args = predict.Files("*.json")
		case "topic":
			sub.Args = predict.Set(topics())
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}
