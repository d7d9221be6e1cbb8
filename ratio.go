package statement

import "fmt"

// LiquidityReport holds the current ratio for both periods.
//
// The current ratio (short-term assets over short-term liabilities) is the
// liquidity indicator reported alongside the growth and weight table.
type LiquidityReport struct {
	Prior   float64
	Current float64
}

// Delta is the change of the current ratio between the two periods.
func (l LiquidityReport) Delta() float64 { return l.Current - l.Prior }

// Liquidity computes the current ratio for both periods of the statement.
//
// It is best-effort: a statement without a short-term assets or short-term
// liabilities row yields ErrMissingLiquidityRow, which callers report as a
// warning while the rest of the analysis stands.
func Liquidity(s *Statement, labels Labels) (*LiquidityReport, error) {
	assets, ok, err := s.row(labels.ShortTermAssets, labels.Strict)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w (keyword %q)", ErrMissingLiquidityRow, labels.ShortTermAssets)
	}
	liabilities, ok, err := s.row(labels.ShortTermLiabilities, labels.Strict)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w (keyword %q)", ErrMissingLiquidityRow, labels.ShortTermLiabilities)
	}
	return &LiquidityReport{
		Prior:   assets.Prior / nonZero(liabilities.Prior),
		Current: assets.Current / nonZero(liabilities.Current),
	}, nil
}
