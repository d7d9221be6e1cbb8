package statement

import (
	"fmt"
	"strconv"
	"strings"
)

// Epsilon replaces a zero denominator in every ratio of this package.
//
// This is a deliberate approximation, not exact zero-handling: a ratio over
// a zero base comes out as a very large finite number instead of "undefined",
// and keeps the sign of the numerator.
const Epsilon = 1e-9

// RawCells is one line of the uploaded table before any interpretation:
// the line-item caption and the two period cells as raw text.
type RawCells struct {
	Label   string
	Prior   string
	Current string
}

// RawTable is the uploaded statement after header normalization: the header
// row has been dropped and column meaning is positional (label, prior
// period, current period). Extra columns were ignored by the loader.
type RawTable []RawCells

// CoerceNumeric converts a spreadsheet cell to a number.
//
// Any cell that does not parse as a number becomes 0. This silent-zero
// policy is part of the data model: malformed cells are cleaned, not
// reported, and downstream ratios are computed over the cleaned values.
// Thousands separators and surrounding spaces are tolerated.
func CoerceNumeric(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0
	}
	// Accountant notation: (123) means -123.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Labels holds the keywords used to locate the well-known rows of a
// statement. Matching is case-insensitive substring containment, so the
// defaults tolerate numbering prefixes and formatting variants
// ("A. TOTAL ASSETS" still matches).
type Labels struct {
	TotalAssets          string
	ShortTermAssets      string
	ShortTermLiabilities string

	// Strict upgrades an ambiguous match (several rows containing the same
	// keyword) to ErrAmbiguousLabel. When false the first row in table
	// order wins, like the spreadsheets this tool grew up on.
	Strict bool
}

// DefaultLabels are the keywords for statements with English captions.
func DefaultLabels() Labels {
	return Labels{
		TotalAssets:          "TOTAL ASSETS",
		ShortTermAssets:      "SHORT-TERM ASSETS",
		ShortTermLiabilities: "SHORT-TERM LIABILITIES",
	}
}

// findRow returns the index of the first row whose label contains keyword,
// case-insensitively. It returns -1 when no row matches.
func (t RawTable) findRow(keyword string, strict bool) (int, error) {
	keyword = strings.ToUpper(keyword)
	found := -1
	for i, r := range t {
		if !strings.Contains(strings.ToUpper(r.Label), keyword) {
			continue
		}
		if found >= 0 {
			if strict {
				return -1, fmt.Errorf("%w: %q matches rows %d and %d", ErrAmbiguousLabel, keyword, found, i)
			}
			// first match wins
			return found, nil
		}
		found = i
	}
	if found < 0 {
		return -1, nil
	}
	return found, nil
}
