package statement

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeCSV writes a statement file in the temp dir and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}

func TestReadStatement_CSV(t *testing.T) {
	path := writeCSV(t, "Item,2023,2024\nTOTAL ASSETS,100,200\nSHORT-TERM ASSETS,40,90\n")

	raw, err := ReadStatement(path)
	if err != nil {
		t.Fatalf("ReadStatement() failed: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("got %d rows, want 2 (header dropped)", len(raw))
	}
	want := RawCells{Label: "TOTAL ASSETS", Prior: "100", Current: "200"}
	if raw[0] != want {
		t.Errorf("first row = %+v, want %+v", raw[0], want)
	}
}

func TestReadStatement_ExtraColumnsIgnored(t *testing.T) {
	path := writeCSV(t, "Item,2023,2024,Note\nTOTAL ASSETS,100,200,audited\n")

	raw, err := ReadStatement(path)
	if err != nil {
		t.Fatalf("ReadStatement() failed: %v", err)
	}
	if raw[0].Current != "200" {
		t.Errorf("current cell = %q, want %q", raw[0].Current, "200")
	}
}

func TestReadStatement_ShortRowPadded(t *testing.T) {
	path := writeCSV(t, "Item,2023,2024\nA. ASSETS\nTOTAL ASSETS,100,200\n")

	raw, err := ReadStatement(path)
	if err != nil {
		t.Fatalf("ReadStatement() failed: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("got %d rows, want 2", len(raw))
	}
	// The caption row keeps its label, the missing cells coerce to zero.
	if raw[0].Label != "A. ASSETS" || raw[0].Prior != "" {
		t.Errorf("caption row = %+v, want empty period cells", raw[0])
	}
}

func TestReadStatement_BadShape(t *testing.T) {
	path := writeCSV(t, "Item,2023\nTOTAL ASSETS,100\n")

	if _, err := ReadStatement(path); !errors.Is(err, ErrBadShape) {
		t.Errorf("ReadStatement() error = %v, want ErrBadShape", err)
	}
}

func TestReadStatement_EmptyFile(t *testing.T) {
	path := writeCSV(t, "Item,2023,2024\n")

	if _, err := ReadStatement(path); !errors.Is(err, ErrBadShape) {
		t.Errorf("ReadStatement() error = %v, want ErrBadShape", err)
	}
}

func TestReadStatement_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.pdf")
	if err := os.WriteFile(path, []byte("%PDF"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadStatement(path); err == nil {
		t.Error("ReadStatement() accepted an unsupported format")
	}
}
