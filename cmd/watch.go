package cmd

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/etnz/stash/logger"
	"github.com/etnz/stash/renderer"
	"github.com/fsnotify/fsnotify"
	"github.com/google/subcommands"
)

// debounceDelay groups the events of editors writing files in multiple steps.
const debounceDelay = 100 * time.Millisecond

type watchCmd struct {
	start string
	end   string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "show the states again whenever the ledger file changes" }
func (*watchCmd) Usage() string {
	return `fifo watch [-s <start_date>] [-d <end_date>]

  Shows the states like 'fifo states', then again every time the ledger file is
  saved, until interrupted.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "First day to show.")
	f.StringVar(&c.end, "d", "", "Last day to show.")
}

// newLedgerWatcher watches the directory of path, atomic saves replace the file itself.
func newLedgerWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return watcher, nil
}

// runWatcher sends on changed once the events about path settle, until ctx is done.
// changed is never blocked on, a pending notification covers later changes.
func runWatcher(ctx context.Context, watcher *fsnotify.Watcher, path string, delay time.Duration, changed chan<- struct{}) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	path = filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(delay, func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Get().Warnw("file watcher error", "error", err)
		}
	}
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.start, c.end)
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitUsageError
	}
	render := func() {
		s, err := loadStash()
		if err != nil {
			// the file may be half written, the next save fixes it.
			printErrorf("%v", err)
			return
		}
		printMarkdown(renderer.States(s, r))
		printInfof("%s loaded at %s, watching for changes", *ledgerFile, time.Now().Format(time.TimeOnly))
	}

	watcher, err := newLedgerWatcher(*ledgerFile)
	if err != nil {
		printErrorf("%v", err)
		return subcommands.ExitFailure
	}
	changed := make(chan struct{}, 1)
	go runWatcher(ctx, watcher, *ledgerFile, debounceDelay, changed)

	render()
	for {
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-changed:
			render()
		}
	}
}
