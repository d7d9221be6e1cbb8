package statement

import "errors"

var (
	// ErrBadShape reports an uploaded table that does not resolve to the
	// three expected columns. The upload is rejected as a whole.
	ErrBadShape = errors.New("statement: table must have at least three columns (label, prior, current)")

	// ErrMissingTotalAssets reports a table with no row matching the total
	// assets label. Weights cannot be computed without it.
	ErrMissingTotalAssets = errors.New("statement: no row matches the total assets label")

	// ErrMissingLiquidityRow reports a table missing the short-term assets
	// or short-term liabilities row. The current ratio is unavailable but
	// the rest of the analysis proceeds.
	ErrMissingLiquidityRow = errors.New("statement: short-term assets or liabilities row not found")

	// ErrAmbiguousLabel reports multiple rows matching a well-known label
	// when strict matching is requested.
	ErrAmbiguousLabel = errors.New("statement: multiple rows match the label")
)
