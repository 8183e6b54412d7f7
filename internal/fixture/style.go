package fixture

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/xlview/xlgen/internal/colour"
)

// workbook wraps an excelize file with error-deferring helpers so the
// generators can stay linear sequences of cell and style operations.
// The first error is kept and every later call becomes a no-op; Generate
// checks it once before saving.
type workbook struct {
	f   *excelize.File
	err error
}

func newWorkbook() *workbook {
	return &workbook{f: excelize.NewFile()}
}

// fail records the first error encountered.
func (w *workbook) fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// addSheet creates a sheet and returns its index.
func (w *workbook) addSheet(name string) int {
	if w.err != nil {
		return -1
	}
	idx, err := w.f.NewSheet(name)
	w.fail(err)
	return idx
}

// renameActive renames the default first sheet.
func (w *workbook) renameActive(name string) {
	if w.err != nil {
		return
	}
	w.fail(w.f.SetSheetName("Sheet1", name))
}

func (w *workbook) setCell(sheet, cell string, value interface{}) {
	if w.err != nil {
		return
	}
	w.fail(w.f.SetCellValue(sheet, cell, value))
}

// style registers a style and returns its ID. Callers use the ID with
// setStyle; a failed registration yields ID 0 (the default style) and
// records the error.
func (w *workbook) style(s *excelize.Style) int {
	if w.err != nil {
		return 0
	}
	id, err := w.f.NewStyle(s)
	w.fail(err)
	return id
}

func (w *workbook) setStyle(sheet, topLeft, bottomRight string, styleID int) {
	if w.err != nil {
		return
	}
	w.fail(w.f.SetCellStyle(sheet, topLeft, bottomRight, styleID))
}

func (w *workbook) merge(sheet, topLeft, bottomRight string) {
	if w.err != nil {
		return
	}
	w.fail(w.f.MergeCell(sheet, topLeft, bottomRight))
}

func (w *workbook) colWidth(sheet, from, to string, width float64) {
	if w.err != nil {
		return
	}
	w.fail(w.f.SetColWidth(sheet, from, to, width))
}

func (w *workbook) rowHeight(sheet string, row int, height float64) {
	if w.err != nil {
		return
	}
	w.fail(w.f.SetRowHeight(sheet, row, height))
}

// tabColour sets the sheet tab colour.
func (w *workbook) tabColour(sheet, hex string) {
	if w.err != nil {
		return
	}
	w.fail(w.f.SetSheetProps(sheet, &excelize.SheetPropsOptions{
		TabColorRGB: &hex,
	}))
}

// freeze freezes panes above and left of topLeftCell.
func (w *workbook) freeze(sheet string, xSplit, ySplit int, topLeftCell, activePane string) {
	if w.err != nil {
		return
	}
	w.fail(w.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      xSplit,
		YSplit:      ySplit,
		TopLeftCell: topLeftCell,
		ActivePane:  activePane,
	}))
}

// save validates deferred errors, writes the file, and closes it.
func (w *workbook) save(path string) error {
	if w.err != nil {
		w.f.Close()
		return fmt.Errorf("failed to build workbook: %w", w.err)
	}
	if err := w.f.SaveAs(path); err != nil {
		w.f.Close()
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return w.f.Close()
}

// solidFill builds a solid pattern fill style for the given background.
// When font carries no explicit colour, the contrast selector picks black
// or white against the fill at the moment the style is built, so no
// corrective pass over finished cells is ever needed.
func solidFill(background string, font *excelize.Font) *excelize.Style {
	if font == nil {
		font = &excelize.Font{}
	}
	if font.Color == "" {
		font.Color = colour.TextColourFor(background)
	}
	return &excelize.Style{
		Font: font,
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{background},
		},
	}
}

// fontStyle builds a font-only style, defaulting the colour to black so
// cells never inherit a theme colour that could render invisibly.
func fontStyle(font *excelize.Font) *excelize.Style {
	if font.Color == "" {
		font.Color = colour.Black
	}
	return &excelize.Style{Font: font}
}

// cell builds an A1 reference from one-based column and row numbers.
// Coordinates inside the generators are constants, so conversion errors
// cannot occur in practice; a failure falls back to "A1".
func cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "A1"
	}
	return name
}

// columnName converts a one-based column number to its letter name.
func columnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "A"
	}
	return name
}
