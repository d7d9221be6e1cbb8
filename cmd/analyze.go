package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/statement/agent"
	"github.com/etnz/statement/renderer"
	"github.com/google/subcommands"
)

type analyzeCmd struct {
	file   string
	ai     bool
	strict bool
}

func (*analyzeCmd) Name() string { return "analyze" }
func (*analyzeCmd) Synopsis() string {
	return "compute growth, asset composition and liquidity metrics from a statement file"
}
func (*analyzeCmd) Usage() string {
	return `fsa analyze -f <statement-file> [-ai] [-strict]

  Reads a two-period statement (.xlsx, .xls or .csv with columns
  label | prior | current), computes the growth rate, the weight of each
  line over total assets for both periods, and the current ratio, then
  renders the analysis as a report.

  With -ai, an automated commentary on the metrics is requested from
  Gemini and appended to the report (requires GEMINI_API_KEY).

Usage Examples:
# Analyze a balance sheet and print the report.
$ fsa analyze -f balance_sheet.xlsx

# Same, with an AI commentary at the end.
$ fsa analyze -f balance_sheet.xlsx -ai
`
}

func (p *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Statement file to analyze (.xlsx, .xls or .csv).")
	f.BoolVar(&p.ai, "ai", false, "Request an AI commentary on the computed metrics.")
	f.BoolVar(&p.strict, "strict", false, "Fail when several rows match a well-known label instead of taking the first.")
}

func (p *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <statement-file> is required")
		return subcommands.ExitUsageError
	}

	s, l, warn, err := loadAnalysis(p.file, p.strict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %q: %v\n", p.file, err)
		return subcommands.ExitFailure
	}
	if warn != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", warn)
	}

	view := renderer.NewAnalysis(s, l, warn)
	if p.ai {
		client, err := newClient(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		view.Commentary = agent.Commentary(ctx, client, *model, *lang, renderer.Summary(s, l))
	}

	printMarkdown(renderer.RenderAnalysis(view))
	return subcommands.ExitSuccess
}
