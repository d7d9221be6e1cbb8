// Package cmd implements the CLI application to analyze financial statements.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/statement"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&chatCmd{}, "analysis")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var model = flag.String("model", "", "Gemini model to use for AI features (defaults to "+defaultModelHelp+")")
var lang = flag.String("lang", "English", "Language the assistant answers in")

const defaultModelHelp = "gemini-2.5-flash"

// newClient creates the Gemini client from the GEMINI_API_KEY credential.
//
// The key is read from the environment, with a .env file loaded first when
// present. A missing key returns a nil client: AI features are disabled,
// the metrics computation is not.
func newClient(ctx context.Context) (*genai.Client, error) {
	godotenv.Load() // no .env file is fine, the environment rules
	if os.Getenv("GEMINI_API_KEY") == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing Gemini client: %w", err)
	}
	return client, nil
}

// loadAnalysis reads and analyzes the statement file. The liquidity report
// is best-effort: it comes back nil with a warning error when the
// short-term rows are missing.
func loadAnalysis(path string, strict bool) (*statement.Statement, *statement.LiquidityReport, error, error) {
	raw, err := statement.ReadStatement(path)
	if err != nil {
		return nil, nil, nil, err
	}
	labels := statement.DefaultLabels()
	labels.Strict = strict

	s, err := statement.Analyze(raw, labels)
	if err != nil {
		return nil, nil, nil, err
	}
	l, lerr := statement.Liquidity(s, labels)
	return s, l, lerr, nil
}
