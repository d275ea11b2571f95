package cmd

import (
	"errors"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/stash/logger"
)

// RunExtension attempts to find and execute an external fifo-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The global flags are passed on as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "fifo-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Get().Debugw("extension not found", "command", name, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = out
	cmd.Stderr = errOut

	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+*ledgerFile,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
		EnvFees+"="+feeAllocation.String(),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		printErrorf("cannot execute %q: %v", name, err)
		return true, 1
	}
	return true, 0
}
