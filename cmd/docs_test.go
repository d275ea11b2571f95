package cmd

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// This file runs the examples of the documentation.
//
// To add a testable example to a topic:
//
//  1. Add the command, wrapped in a ```bash ... ``` block.
//  2. Add its expected output right after, wrapped in a ```console ... ``` block.
//
// Every topic starts with an empty ledger file, examples run in order.

// example holds a command and its expected output.
type example struct {
	Cmd      string
	Expected string
}

var exampleRE = regexp.MustCompile("(?m)```bash\\n(fifo.*?)\\n```\\n\\n```console\\n((.|\\n)*?)```")

// parseExamples extracts the examples of a markdown file.
func parseExamples(t *testing.T, file string) []example {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	var examples []example
	for _, match := range exampleRE.FindAllStringSubmatch(string(content), -1) {
		examples = append(examples, example{Cmd: match[1], Expected: match[2]})
	}
	return examples
}

func TestDocumentation(t *testing.T) {
	files, err := filepath.Glob("../docs/*.md")
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			useLedger(t)
			for _, ex := range parseExamples(t, file) {
				total++
				args := strings.Fields(ex.Cmd)
				status, got, stderr := run(t, args[1:]...)
				if status != subcommands.ExitSuccess {
					t.Fatalf("%s failed: %s", ex.Cmd, stderr)
				}
				if got != ex.Expected {
					t.Errorf("%s\nexpected output:\n%q\nbut got:\n%q", ex.Cmd, ex.Expected, got)
				}
			}
		})
	}
	if total == 0 {
		t.Error("no example found in the documentation")
	}
}
