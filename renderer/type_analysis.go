package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/statement"
)

// Analysis is the view of an analyzed statement prepared for rendering.
type Analysis struct {
	Rows []AnalysisRow

	// Liquidity is nil when the short-term rows were missing; the template
	// then renders the warning in LiquidityNote instead of the metrics.
	Liquidity     *LiquidityView
	LiquidityNote string

	// Commentary is the optional AI commentary block, already in markdown.
	Commentary string
}

// AnalysisRow is a single line of the five-column line-item table.
type AnalysisRow struct {
	Label         string
	Prior         string
	Current       string
	Growth        statement.Percent
	PriorWeight   statement.Percent
	CurrentWeight statement.Percent
}

// LiquidityView holds the formatted current-ratio metrics.
type LiquidityView struct {
	Prior   string
	Current string
	Delta   string
}

// NewAnalysis builds the renderable view from the analyzed statement and
// its liquidity report. liquidityErr is the warning to display when the
// report is unavailable.
func NewAnalysis(s *statement.Statement, l *statement.LiquidityReport, liquidityErr error) *Analysis {
	a := &Analysis{}
	for _, r := range s.Rows {
		a.Rows = append(a.Rows, AnalysisRow{
			Label:         r.Label,
			Prior:         groupDigits(r.Prior),
			Current:       groupDigits(r.Current),
			Growth:        r.Growth,
			PriorWeight:   r.PriorWeight,
			CurrentWeight: r.CurrentWeight,
		})
	}
	if l != nil {
		a.Liquidity = &LiquidityView{
			Prior:   fmt.Sprintf("%.2f", l.Prior),
			Current: fmt.Sprintf("%.2f", l.Current),
			Delta:   fmt.Sprintf("%+.2f", l.Delta()),
		}
	} else if liquidityErr != nil {
		a.LiquidityNote = liquidityErr.Error()
	}
	return a
}

// groupDigits renders a statement value with thousands separators and no
// decimals, the way the line items are printed on the source reports.
func groupDigits(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
