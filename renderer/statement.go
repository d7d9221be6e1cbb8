package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/statement"
)

// StatementMarkdown renders the analyzed statement as a compact markdown
// table. This is the textual snapshot handed to the assistant as grounding
// context, and it must carry every derived column so the model can answer
// without recomputing anything.
func StatementMarkdown(s *statement.Statement) string {
	var b strings.Builder
	WriteStatement(&b, s)
	return b.String()
}

// WriteStatement writes the statement table to w.
func WriteStatement(w io.Writer, s *statement.Statement) {
	fmt.Fprintln(w, "| Item | Prior | Current | Growth (%) | Prior Weight (%) | Current Weight (%) |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|---:|---:|")
	for _, r := range s.Rows {
		fmt.Fprintf(w, "| %s | %.0f | %.0f | %.2f | %.2f | %.2f |\n",
			r.Label, r.Prior, r.Current,
			float64(r.Growth), float64(r.PriorWeight), float64(r.CurrentWeight))
	}
}

// Summary renders the condensed metrics block embedded into the one-shot
// commentary prompt: the full table plus the liquidity figures.
func Summary(s *statement.Statement, l *statement.LiquidityReport) string {
	var b strings.Builder
	WriteStatement(&b, s)
	b.WriteString("\n")
	if l == nil {
		b.WriteString("Current ratio: not available (missing short-term rows)\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Current ratio (prior): %.2f\n", l.Prior)
	fmt.Fprintf(&b, "Current ratio (current): %.2f\n", l.Current)
	fmt.Fprintf(&b, "Current ratio delta: %+.2f\n", l.Delta())
	return b.String()
}
