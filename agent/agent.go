// Package agent implements the conversational assistant grounded in an
// analyzed financial statement, on top of the Gemini API.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Agent is the interactive REPL around an Assistant session.
type Agent struct {
	w         io.Writer
	r         *bufio.Reader
	Assistant *Assistant
}

// NewAgent creates the REPL. It takes an io.Writer for the agent's output
// (e.g., os.Stdout) and an io.Reader for user input (e.g., os.Stdin).
func NewAgent(w io.Writer, r io.Reader, assistant *Assistant) *Agent {
	return &Agent{
		w:         w,
		r:         bufio.NewReader(r),
		Assistant: assistant,
	}
}

const prompt = "ask> "

// Run starts the interactive session for the agent, grounded in the given
// dataset snapshot. Initial prompts are consumed before reading the user.
func (a *Agent) Run(ctx context.Context, grounding string, prompts ...string) error {
	if !a.Assistant.Active() {
		if err := a.Assistant.Start(ctx, grounding); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.w, Greeting)
	fmt.Fprintln(a.w, "Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		reply, err := a.Assistant.Send(ctx, input)
		if err != nil {
			// A failed turn is a warning, the session is still usable.
			var remote *RemoteCallError
			if errors.As(err, &remote) {
				fmt.Fprintf(a.w, "warning: %v\n", remote)
				continue
			}
			return err
		}
		fmt.Fprintln(a.w, reply)
	}
}
