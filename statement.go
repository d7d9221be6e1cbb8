package statement

import (
	"fmt"
	"strings"
)

// Row is one analyzed line item of the statement.
type Row struct {
	Label   string
	Prior   float64
	Current float64

	// Derived once by Analyze, in display order.
	Growth        Percent // period over period growth rate
	PriorWeight   Percent // share of prior period total assets
	CurrentWeight Percent // share of current period total assets
}

// Statement is the analyzed two-period statement.
//
// It is created once per successful upload, never mutated afterwards, and
// replaced wholesale when a new file is analyzed. Row order is the upload
// order and is significant for display.
type Statement struct {
	Rows []Row

	TotalAssetsPrior   float64
	TotalAssetsCurrent float64
}

// Analyze computes the derived metrics for every line of the raw table.
//
// It is a pure function of its input: calling it twice on the same table
// yields identical statements, so results can be memoized on the raw
// content. It fails with ErrMissingTotalAssets when no row matches the
// total assets label; no partial statement is returned in that case.
func Analyze(raw RawTable, labels Labels) (*Statement, error) {
	i, err := raw.findRow(labels.TotalAssets, labels.Strict)
	if err != nil {
		return nil, err
	}
	if i < 0 {
		return nil, fmt.Errorf("%w (keyword %q)", ErrMissingTotalAssets, labels.TotalAssets)
	}

	s := &Statement{
		Rows:               make([]Row, 0, len(raw)),
		TotalAssetsPrior:   CoerceNumeric(raw[i].Prior),
		TotalAssetsCurrent: CoerceNumeric(raw[i].Current),
	}

	priorTotal := nonZero(s.TotalAssetsPrior)
	currentTotal := nonZero(s.TotalAssetsCurrent)

	for _, rc := range raw {
		prior := CoerceNumeric(rc.Prior)
		current := CoerceNumeric(rc.Current)
		s.Rows = append(s.Rows, Row{
			Label:         rc.Label,
			Prior:         prior,
			Current:       current,
			Growth:        Percent((current - prior) / nonZero(prior) * 100),
			PriorWeight:   Percent(prior / priorTotal * 100),
			CurrentWeight: Percent(current / currentTotal * 100),
		})
	}
	return s, nil
}

// nonZero substitutes Epsilon for a zero denominator.
func nonZero(v float64) float64 {
	if v == 0 {
		return Epsilon
	}
	return v
}

// Row returns the first row whose label contains keyword, or false.
func (s *Statement) Row(keyword string) (Row, bool) {
	keyword = strings.ToUpper(keyword)
	for _, r := range s.Rows {
		if strings.Contains(strings.ToUpper(r.Label), keyword) {
			return r, true
		}
	}
	return Row{}, false
}

// row is like Row but honors strict matching.
func (s *Statement) row(keyword string, strict bool) (Row, bool, error) {
	upper := strings.ToUpper(keyword)
	found := -1
	for i, r := range s.Rows {
		if !strings.Contains(strings.ToUpper(r.Label), upper) {
			continue
		}
		if found >= 0 {
			if strict {
				return Row{}, false, fmt.Errorf("%w: %q matches rows %d and %d", ErrAmbiguousLabel, keyword, found, i)
			}
			return s.Rows[found], true, nil
		}
		found = i
	}
	if found < 0 {
		return Row{}, false, nil
	}
	return s.Rows[found], true, nil
}
