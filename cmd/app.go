// Package cmd implements the subcommands of the fifo tool.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/stash"
	"github.com/etnz/stash/date"
	"github.com/etnz/stash/logger"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")

	c.Register(&txCmd{kind: stash.KindAcquisition}, "transactions")
	c.Register(&txCmd{kind: stash.KindDisposition}, "transactions")
	c.Register(&toggleCmd{disable: true}, "transactions")
	c.Register(&toggleCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&listCmd{}, "transactions")

	c.Register(&statesCmd{}, "reports")
	c.Register(&lotsCmd{}, "reports")
	c.Register(&form8949Cmd{}, "reports")
	c.Register(&queryCmd{}, "reports")
	c.Register(&watchCmd{}, "reports")

	c.Register(&assistCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// Environment variables overriding the global flags, they are also passed on to extensions.
const (
	EnvLedgerFile = "FIFO_LEDGER_FILE"
	EnvVerbose    = "FIFO_VERBOSE"
	EnvFees       = "FIFO_FEES"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile    = flag.String("ledger-file", "stash.json", "Path to the ledger file. Env "+EnvLedgerFile)
	Verbose       = flag.Bool("v", false, "Verbose logging to stderr. Env "+EnvVerbose)
	feeAllocation stash.FeeAllocation
)

func init() {
	flag.Var(&feeAllocation, "fees", "How disposition fees are charged to the lots they consume (per-lot, pro-rata). Env "+EnvFees)
}

// env maps global flags to their environment variable.
var env = map[string]string{
	"ledger-file": EnvLedgerFile,
	"v":           EnvVerbose,
	"fees":        EnvFees,
}

// SetFlagsFromEnv sets the global flags of fs from the environment.
// It must be called before parsing the command line, that takes precedence.
func SetFlagsFromEnv(fs *flag.FlagSet) error {
	var errs []error
	for name, key := range env {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			continue
		}
		if err := fs.Set(name, v); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s=%q: %w", key, v, err))
		}
	}
	return errors.Join(errs...)
}

// out and errOut are the command outputs, swapped in tests.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// loadStash loads the ledger file with the fee allocation selected on the command line.
func loadStash() (*stash.Stash, error) {
	s, err := stash.LoadStash(*ledgerFile)
	if err != nil {
		return nil, err
	}
	if s.Fees != feeAllocation {
		s.Fees = feeAllocation
		s.Update()
	}
	logger.Get().Debugw("ledger loaded",
		"file", *ledgerFile,
		"asset", s.Asset,
		"acquisitions", len(s.Acquisitions),
		"dispositions", len(s.Dispositions),
		"fees", s.Fees.String(),
		"anomalies", len(s.Anomalies()),
	)
	return s, nil
}

// saveStash writes the ledger file.
func saveStash(s *stash.Stash) error {
	if err := stash.SaveStash(*ledgerFile, s); err != nil {
		return err
	}
	logger.Get().Debugw("ledger saved", "file", *ledgerFile, "balance", s.Balance().String())
	return nil
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD75F"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
)

func printSuccessf(format string, args ...any) {
	fmt.Fprintf(errOut, "%s %s\n", successStyle.Render("✓"), fmt.Sprintf(format, args...))
}

func printErrorf(format string, args ...any) {
	fmt.Fprintf(errOut, "%s %s\n", errorStyle.Render("✗"), errorStyle.Render(fmt.Sprintf(format, args...)))
}

func printWarnf(format string, args ...any) {
	fmt.Fprintf(errOut, "%s %s\n", warnStyle.Render("!"), fmt.Sprintf(format, args...))
}

func printInfof(format string, args ...any) {
	fmt.Fprintf(errOut, "%s %s\n", infoStyle.Render("→"), fmt.Sprintf(format, args...))
}

// printAnomalies warns about every overdraw of s.
func printAnomalies(s *stash.Stash) {
	for _, a := range s.Anomalies() {
		logger.Get().Debugw("overdraw", "index", a.Index, "timestamp", a.Timestamp.String(), "requested", a.Requested.String(), "remaining", a.Remaining.String())
		printWarnf("%v", a)
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printMarkdown writes md to out, rendered for the terminal when out is one.
func printMarkdown(md string) {
	fmt.Fprint(out, renderMarkdown(out, md))
}

func renderMarkdown(w io.Writer, md string) string {
	if !isTerminal(w) {
		return md
	}
	rendered, err := glamour.Render(md, "auto")
	if err != nil {
		logger.Get().Debugw("cannot render markdown", "error", err)
		return md
	}
	return rendered
}

// timestampLayouts are the accepted formats of a transaction time, in UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// minEpochSeconds is the smallest number accepted as seconds since the epoch
// (1973-03-03). Smaller numbers are rejected as a likely mistyped year.
const minEpochSeconds = 1e8

// parseTimestamp parses a transaction time: seconds since the epoch, a date,
// or a date and a time.
func parseTimestamp(s string) (stash.Timestamp, error) {
	s = strings.TrimSpace(s)
	if sec, err := stash.ParseQuantity(s); err == nil {
		f, _ := sec.Decimal().Float64()
		if f < minEpochSeconds {
			return 0, fmt.Errorf("invalid time %q, seconds since the epoch must be at least %.0f", s, float64(minEpochSeconds))
		}
		return stash.Timestamp(f), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return stash.TimestampOf(t), nil
		}
	}
	d, err := date.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, want seconds since the epoch, a date or a date and time", s)
	}
	return stash.Timestamp(d.Unix()), nil
}

// parseRange parses the optional -s and -d flags of reports.
func parseRange(start, end string) (r date.Range, err error) {
	if start != "" {
		if r.From, err = date.Parse(start); err != nil {
			return r, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if end != "" {
		if r.To, err = date.Parse(end); err != nil {
			return r, fmt.Errorf("invalid end date: %w", err)
		}
	}
	return r, nil
}

// endOfDay returns the last second of d.
func endOfDay(d date.Date) stash.Timestamp { return stash.Timestamp(d.Add(1).Unix() - 1) }
