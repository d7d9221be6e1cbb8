package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/statement/agent"
	"github.com/etnz/statement/renderer"
	"github.com/google/subcommands"
)

type chatCmd struct {
	file   string
	strict bool
}

func (*chatCmd) Name() string { return "chat" }
func (*chatCmd) Synopsis() string {
	return "start an interactive AI session grounded in an analyzed statement"
}
func (*chatCmd) Usage() string {
	return `fsa chat -f <statement-file> [initial question]

  Analyzes the statement, then opens a chat session with the AI assistant
  grounded in the analyzed data. The assistant answers follow-up questions
  from the computed table, falling back to general financial knowledge.
  Requires GEMINI_API_KEY (read from the environment or a .env file).

  Type 'bye' to exit the session.

Usage Examples:
$ fsa chat -f balance_sheet.xlsx
$ fsa chat -f balance_sheet.xlsx how did liquidity evolve?
`
}

func (p *chatCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Statement file to ground the session in (.xlsx, .xls or .csv).")
	f.BoolVar(&p.strict, "strict", false, "Fail when several rows match a well-known label instead of taking the first.")
}

func (p *chatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <statement-file> is required")
		return subcommands.ExitUsageError
	}
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	s, _, warn, err := loadAnalysis(p.file, p.strict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %q: %v\n", p.file, err)
		return subcommands.ExitFailure
	}
	if warn != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", warn)
	}

	client, err := newClient(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	assistant := agent.New(client, *model, *lang)
	repl := agent.NewAgent(os.Stdout, os.Stdin, assistant)

	grounding := renderer.StatementMarkdown(s)
	if err := repl.Run(ctx, grounding, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
