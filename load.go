package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ReadStatement reads the two-period statement from path.
//
// The format is picked from the file extension: .xlsx (first sheet), legacy
// .xls (first sheet), or .csv. Whatever the source headers say, the first
// row is dropped and the remaining rows are read positionally as
// (label, prior period, current period); extra columns are ignored. A
// header with fewer than three columns fails the whole upload with
// ErrBadShape.
func ReadStatement(path string) (RawTable, error) {
	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".xls":
		rows, err = readXLS(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported statement format %q (want .xlsx, .xls or .csv)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return normalize(rows)
}

// normalize drops the header row and maps the sheet rows to the fixed
// three-column layout.
//
// The shape is checked on the header: the file must carry at least the
// three expected columns, extras are ignored. Sheet readers trim trailing
// empty cells per row, so a short data row (a section caption with no
// figures) is padded with empty cells that coerce to zero.
func normalize(rows [][]string) (RawTable, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrBadShape)
	}
	if len(rows[0]) < 3 {
		return nil, fmt.Errorf("%w: header has %d", ErrBadShape, len(rows[0]))
	}
	rows = rows[1:] // header text from the file is discarded

	table := make(RawTable, 0, len(rows))
	for _, cells := range rows {
		if blank(cells) {
			continue
		}
		for len(cells) < 3 {
			cells = append(cells, "")
		}
		table = append(table, RawCells{
			Label:   strings.TrimSpace(cells[0]),
			Prior:   cells[1],
			Current: cells[2],
		})
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrBadShape)
	}
	return table, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in %q", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readXLS(path string) ([][]string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("no sheets found in %q", path)
	}
	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // shape is checked in normalize
	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		rows = append(rows, record)
	}
}
