package fixture

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// fontColourOf reads back the resolved font colour of a cell. The stored
// value may carry an alpha prefix, so callers compare suffixes.
func fontColourOf(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	idx, err := f.GetCellStyle(sheet, ref)
	if err != nil {
		t.Fatalf("GetCellStyle(%s) error: %v", ref, err)
	}
	style, err := f.GetStyle(idx)
	if err != nil {
		t.Fatalf("GetStyle(%d) error: %v", idx, err)
	}
	if style.Font == nil {
		t.Fatalf("cell %s has no font", ref)
	}
	return strings.ToUpper(style.Font.Color)
}

func TestColorsGenerate(t *testing.T) {
	dir := t.TempDir()
	path, err := (&Colors{}).Generate(Options{Dir: dir})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen fixture: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Colors" {
		t.Fatalf("sheet list = %v, want [Colors]", got)
	}

	// Grayscale ramp labels run from black to white across row 7.
	for ref, want := range map[string]string{"A7": "#000000", "J7": "#FFFFFF"} {
		got, err := f.GetCellValue("Colors", ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error: %v", ref, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", ref, got, want)
		}
	}

	// Text over the black end of the ramp flips to white; over the white
	// end it stays black.
	tests := []struct {
		ref  string
		want string
	}{
		{"A7", "FFFFFF"},  // black fill
		{"J7", "000000"},  // white fill
		{"B9", "FFFFFF"},  // theme black
		{"A9", "000000"},  // theme white
		{"E9", "FFFFFF"},  // 4472C4, dark blue
		{"A10", "000000"}, // D0CECE, light grey
	}
	for _, tt := range tests {
		colour := fontColourOf(t, f, "Colors", tt.ref)
		if !strings.HasSuffix(colour, tt.want) {
			t.Errorf("cell %s font colour = %q, want suffix %q", tt.ref, colour, tt.want)
		}
	}
}
