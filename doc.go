// Package statement provides the types and computations to analyze a
// two-period financial statement: a table of line items with a prior and a
// current period value.
//
// The core functionalities include:
//   - Spreadsheet Ingestion: Reading the raw three-column table (label,
//     prior, current) from .xlsx, .xls or .csv files, with a named
//     silent-zero coercion policy for malformed numeric cells.
//   - Metrics Engine: A pure, idempotent transformation from the raw table
//     to an analyzed statement carrying growth rates and asset-composition
//     weights for every line item.
//   - Liquidity Ratios: Best-effort computation of the current ratio for
//     both periods from the short-term assets and liabilities rows.
//
// This package serves as the foundational logic for the `fsa` command-line
// tool; the conversational assistant built on top of the analyzed data
// lives in the agent package.
package statement
