// Command fifo keeps the tax-lot ledger of a single asset.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"slices"

	"github.com/etnz/stash/cmd"
	"github.com/etnz/stash/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	cmd.Completion(commander).Complete("fifo")

	if err := cmd.SetFlagsFromEnv(flag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	flag.Parse()
	logger.Init(*cmd.Verbose)

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			logger.Sync()
			os.Exit(code)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	logger.Sync()
	os.Exit(int(status))
}

// registered reports whether name is a command of c.
func registered(c *subcommands.Commander, name string) bool {
	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) { names = append(names, cmd.Name()) })
	return slices.Contains(names, name)
}
