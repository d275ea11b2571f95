// Package agent implements the interactive assistant of the fifo tool.
//
// A Facilitator chat drives the conversation and asks questions to experts,
// each expert being a chat of its own, possibly with tools over the ledger.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
	// Print writes the answers, it defaults to a plain write on w.
	Print func(w io.Writer, answer string)
}

// New creates a new Agent answering on w the questions read from r.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
		Print:       func(w io.Writer, answer string) { fmt.Fprintln(w, answer) },
	}
}

// Start creates the chats of the facilitator and every expert.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive session. prompts are asked first, as if typed by the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Ask anything about your ledger. Type 'bye' to exit.")

	for {
		input, err := a.next(&prompts)
		if err == io.EOF {
			return nil // Clean exit on Ctrl+D
		}
		if err != nil {
			return err
		}
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.Print(a.w, content.Parts[0].Text)
	}
}

// next prints the prompt and returns the next user input, pending prompts first.
func (a *Agent) next(prompts *[]string) (string, error) {
	fmt.Fprint(a.w, prompt)
	if len(*prompts) > 0 {
		input := strings.TrimSpace((*prompts)[0])
		*prompts = (*prompts)[1:]
		fmt.Fprintln(a.w, input)
		return input, nil
	}
	input, err := a.r.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
