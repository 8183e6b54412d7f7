package fixture

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLargeDatasetGenerate(t *testing.T) {
	dir := t.TempDir()
	path, err := (&LargeDataset{}).Generate(Options{Dir: dir, Rows: 12, Cols: 5})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got := filepath.Base(path); got != "large_12x5.xlsx" {
		t.Errorf("Generate() path = %q, want large_12x5.xlsx", got)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen fixture: %v", err)
	}
	defer f.Close()

	const sheet = "Large Dataset"
	cells := map[string]string{
		"A1":  "Column 1",
		"E1":  "Column 5",
		"A2":  "1",
		"B2":  "Row 1",
		"A13": "12",
		"B13": "Row 12",
	}
	for ref, want := range cells {
		got, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error: %v", ref, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", ref, got, want)
		}
	}

	// No data beyond the requested dimensions.
	if got, _ := f.GetCellValue(sheet, "A14"); got != "" {
		t.Errorf("cell A14 = %q, want empty", got)
	}
	if got, _ := f.GetCellValue(sheet, "F1"); got != "" {
		t.Errorf("cell F1 = %q, want empty", got)
	}

	panes, err := f.GetPanes(sheet)
	if err != nil {
		t.Fatalf("GetPanes() error: %v", err)
	}
	if !panes.Freeze || panes.TopLeftCell != "A2" {
		t.Errorf("panes = %+v, want frozen header at A2", panes)
	}
}

func TestLargeDatasetDeterministic(t *testing.T) {
	read := func() string {
		dir := t.TempDir()
		path, err := (&LargeDataset{}).Generate(Options{Dir: dir, Rows: 8, Cols: 4})
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("failed to reopen fixture: %v", err)
		}
		defer f.Close()
		v, err := f.GetCellValue("Large Dataset", "C3")
		if err != nil {
			t.Fatalf("GetCellValue() error: %v", err)
		}
		return v
	}

	first, second := read(), read()
	if first != second {
		t.Errorf("seeded data differs between runs: %q vs %q", first, second)
	}
}
