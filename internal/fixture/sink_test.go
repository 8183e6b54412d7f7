package fixture

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestFullCatalogGenerate(t *testing.T) {
	dir := t.TempDir()
	path, err := (&FullCatalog{}).Generate(Options{Dir: dir})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got := filepath.Base(path); got != "kitchen_sink_full.xlsx" {
		t.Errorf("Generate() path = %q, want kitchen_sink_full.xlsx", got)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen fixture: %v", err)
	}
	defer f.Close()

	wantSheets := []string{
		"Pattern Fills", "Border Styles", "Conditional Formatting",
		"Charts", "Data Validation", "Fonts & Rich Text", "Alignment",
		"Comments & Links", "Number Formats", "Layout Features",
		"Images", "Protection", "Edge Cases", "Empty Sheet", "Hidden Sheet",
	}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, wantSheets) {
		t.Fatalf("sheet list = %v, want %v", got, wantSheets)
	}

	t.Run("hidden sheet", func(t *testing.T) {
		visible, err := f.GetSheetVisible("Hidden Sheet")
		if err != nil {
			t.Fatalf("GetSheetVisible() error: %v", err)
		}
		if visible {
			t.Error("Hidden Sheet should not be visible")
		}
	})

	t.Run("pattern fills", func(t *testing.T) {
		first, err := f.GetCellValue("Pattern Fills", "A4")
		if err != nil {
			t.Fatalf("GetCellValue() error: %v", err)
		}
		if first != "none" {
			t.Errorf("first pattern = %q, want none", first)
		}
		last, err := f.GetCellValue("Pattern Fills", "A22")
		if err != nil {
			t.Fatalf("GetCellValue() error: %v", err)
		}
		if last != "gray0625" {
			t.Errorf("last pattern = %q, want gray0625", last)
		}
	})

	t.Run("layout merges", func(t *testing.T) {
		merges, err := f.GetMergeCells("Layout Features")
		if err != nil {
			t.Fatalf("GetMergeCells() error: %v", err)
		}
		wantAreas := map[string]bool{"A3:C3": true, "A5:A7": true, "E5:F6": true}
		for _, m := range merges {
			delete(wantAreas, m.GetStartAxis()+":"+m.GetEndAxis())
		}
		if len(wantAreas) != 0 {
			t.Errorf("missing merged areas: %v", wantAreas)
		}
	})

	t.Run("frozen panes", func(t *testing.T) {
		panes, err := f.GetPanes("Layout Features")
		if err != nil {
			t.Fatalf("GetPanes() error: %v", err)
		}
		if !panes.Freeze || panes.TopLeftCell != "B2" {
			t.Errorf("panes = %+v, want frozen at B2", panes)
		}
	})

	t.Run("data validations", func(t *testing.T) {
		dvs, err := f.GetDataValidations("Data Validation")
		if err != nil {
			t.Fatalf("GetDataValidations() error: %v", err)
		}
		if len(dvs) != 7 {
			t.Errorf("got %d data validations, want 7", len(dvs))
		}
	})

	t.Run("comments", func(t *testing.T) {
		comments, err := f.GetComments("Comments & Links")
		if err != nil {
			t.Fatalf("GetComments() error: %v", err)
		}
		if len(comments) != 3 {
			t.Errorf("got %d comments, want 3", len(comments))
		}
	})

	t.Run("hyperlinks", func(t *testing.T) {
		hasLink, target, err := f.GetCellHyperLink("Comments & Links", "A8")
		if err != nil {
			t.Fatalf("GetCellHyperLink() error: %v", err)
		}
		if !hasLink || target != "https://www.google.com" {
			t.Errorf("hyperlink = (%v, %q), want external google link", hasLink, target)
		}
	})

	t.Run("images", func(t *testing.T) {
		pics, err := f.GetPictures("Images", "B3")
		if err != nil {
			t.Fatalf("GetPictures() error: %v", err)
		}
		if len(pics) != 1 {
			t.Errorf("got %d pictures at B3, want 1", len(pics))
		}
	})

	t.Run("named ranges", func(t *testing.T) {
		names := map[string]bool{}
		for _, dn := range f.GetDefinedName() {
			names[dn.Name] = true
		}
		for _, want := range []string{"TestRange", "ChartData"} {
			if !names[want] {
				t.Errorf("defined name %q missing", want)
			}
		}
	})

	t.Run("unicode", func(t *testing.T) {
		got, err := f.GetCellValue("Edge Cases", "B4")
		if err != nil {
			t.Fatalf("GetCellValue() error: %v", err)
		}
		if got != "你好，世界" {
			t.Errorf("unicode cell = %q", got)
		}
	})

	t.Run("hidden row and column", func(t *testing.T) {
		rowVisible, err := f.GetRowVisible("Layout Features", 19)
		if err != nil {
			t.Fatalf("GetRowVisible() error: %v", err)
		}
		if rowVisible {
			t.Error("row 19 should be hidden")
		}
		colVisible, err := f.GetColVisible("Layout Features", "G")
		if err != nil {
			t.Fatalf("GetColVisible() error: %v", err)
		}
		if colVisible {
			t.Error("column G should be hidden")
		}
	})
}
