package fixture

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// patternNumber maps ECMA-376 pattern fill names to excelize pattern IDs.
var patternNumber = map[string]int{
	"none":            0,
	"solid":           1,
	"mediumGray":      2,
	"darkGray":        3,
	"lightGray":       4,
	"darkHorizontal":  5,
	"darkVertical":    6,
	"darkDown":        7,
	"darkUp":          8,
	"darkGrid":        9,
	"darkTrellis":     10,
	"lightHorizontal": 11,
	"lightVertical":   12,
	"lightDown":       13,
	"lightUp":         14,
	"lightGrid":       15,
	"lightTrellis":    16,
	"gray125":         17,
	"gray0625":        18,
}

// borderNumber maps ECMA-376 border style names to excelize border IDs.
var borderNumber = map[string]int{
	"thin":             1,
	"medium":           2,
	"dashed":           3,
	"dotted":           4,
	"thick":            5,
	"double":           6,
	"hair":             7,
	"mediumDashed":     8,
	"dashDot":          9,
	"mediumDashDot":    10,
	"dashDotDot":       11,
	"mediumDashDotDot": 12,
	"slantDashDot":     13,
}

// boxBorder builds a four-sided border of the given style and colour.
func boxBorder(style int, hex string) []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: style, Color: hex},
		{Type: "right", Style: style, Color: hex},
		{Type: "top", Style: style, Color: hex},
		{Type: "bottom", Style: style, Color: hex},
	}
}

// KitchenSink builds the baseline multi-sheet fixture covering fonts,
// fills, borders, alignment, number formats, and special features.
type KitchenSink struct{}

// Name returns the generator's selector name.
func (g *KitchenSink) Name() string { return "kitchen" }

// Description returns a human-readable description of the fixture.
func (g *KitchenSink) Description() string {
	return "Baseline formatting coverage: fonts, fills, borders, alignment, number formats, hyperlink, comment, frozen panes, hidden sheet"
}

// Generate writes kitchen_sink.xlsx into opts.Dir.
func (g *KitchenSink) Generate(opts Options) (string, error) {
	w := newWorkbook()

	g.fontsAndColors(w)
	g.borders(w)
	g.alignment(w)
	g.numbers(w)
	g.special(w)
	g.hidden(w)

	path := filepath.Join(opts.Dir, "kitchen_sink.xlsx")
	if err := w.save(path); err != nil {
		return "", err
	}
	opts.logger().Info("created fixture", "path", path)
	return path, nil
}

func (g *KitchenSink) fontsAndColors(w *workbook) {
	const sheet = "Fonts & Colors"
	w.renameActive(sheet)
	w.tabColour(sheet, "FF6B6B")

	w.setCell(sheet, "A1", "Font & Color Tests")
	w.setStyle(sheet, "A1", "A1", w.style(fontStyle(&excelize.Font{Size: 16, Bold: true})))
	w.merge(sheet, "A1", "E1")

	// Font faces.
	faces := []struct {
		name string
		size float64
	}{
		{"Calibri", 11}, {"Arial", 12}, {"Times New Roman", 11},
		{"Verdana", 10}, {"Courier New", 11}, {"Georgia", 11},
	}
	for i, f := range faces {
		ref := cell(1, i+3)
		w.setCell(sheet, ref, fmt.Sprintf("%s %gpt", f.name, f.size))
		w.setStyle(sheet, ref, ref, w.style(fontStyle(&excelize.Font{Family: f.name, Size: f.size})))
	}

	// Font styles.
	styles := []struct {
		label string
		font  excelize.Font
	}{
		{"Bold", excelize.Font{Bold: true}},
		{"Italic", excelize.Font{Italic: true}},
		{"Underline", excelize.Font{Underline: "single"}},
		{"Double Underline", excelize.Font{Underline: "double"}},
		{"Strikethrough", excelize.Font{Strike: true}},
		{"Bold Italic", excelize.Font{Bold: true, Italic: true}},
	}
	for i, s := range styles {
		ref := cell(3, i+3)
		font := s.font
		w.setCell(sheet, ref, s.label)
		w.setStyle(sheet, ref, ref, w.style(fontStyle(&font)))
	}

	// Font colours.
	colours := []struct {
		hex, name string
	}{
		{"FF0000", "Red"}, {"00FF00", "Green"}, {"0000FF", "Blue"},
		{"FF00FF", "Magenta"}, {"00FFFF", "Cyan"}, {"FFA500", "Orange"},
	}
	for i, c := range colours {
		ref := cell(5, i+3)
		w.setCell(sheet, ref, c.name)
		w.setStyle(sheet, ref, ref, w.style(fontStyle(&excelize.Font{Color: c.hex})))
	}

	// Solid background fills; font colour comes from the contrast selector.
	w.setCell(sheet, "A11", "Background Fills:")
	bold := w.style(fontStyle(&excelize.Font{Bold: true}))
	w.setStyle(sheet, "A11", "A11", bold)
	fills := []string{"FFFF00", "90EE90", "ADD8E6", "FFB6C1", "DDA0DD", "F0E68C"}
	for i, hex := range fills {
		ref := cell(i+1, 12)
		w.setCell(sheet, ref, fmt.Sprintf("Fill %d", i+1))
		w.setStyle(sheet, ref, ref, w.style(solidFill(hex, nil)))
	}

	// Pattern fills.
	w.setCell(sheet, "A14", "Pattern Fills:")
	w.setStyle(sheet, "A14", "A14", bold)
	patterns := []string{"gray125", "gray0625", "darkGray", "mediumGray", "lightGray", "darkHorizontal"}
	for i, pattern := range patterns {
		ref := cell(i+1, 15)
		w.setCell(sheet, ref, pattern)
		w.setStyle(sheet, ref, ref, w.style(&excelize.Style{
			Font: &excelize.Font{Color: "000000"},
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: patternNumber[pattern],
				Color:   []string{"000000"},
			},
		}))
	}

	w.colWidth(sheet, "A", "A", 20)
	w.colWidth(sheet, "C", "C", 18)
	w.colWidth(sheet, "E", "E", 12)
}

func (g *KitchenSink) borders(w *workbook) {
	const sheet = "Borders"
	w.addSheet(sheet)
	w.tabColour(sheet, "4ECDC4")

	w.setCell(sheet, "A1", "Border Tests")
	w.setStyle(sheet, "A1", "A1", w.style(fontStyle(&excelize.Font{Size: 16, Bold: true})))
	w.merge(sheet, "A1", "E1")

	for i, style := range []string{"thin", "medium", "thick", "double", "dotted", "dashed"} {
		ref := cell(2, i+3)
		w.setCell(sheet, ref, style)
		w.setStyle(sheet, ref, ref, w.style(&excelize.Style{
			Font:   &excelize.Font{Color: "000000"},
			Border: boxBorder(borderNumber[style], "000000"),
		}))
	}

	w.setCell(sheet, "D3", "Red Border")
	w.setStyle(sheet, "D3", "D3", w.style(&excelize.Style{
		Font:   &excelize.Font{Color: "000000"},
		Border: boxBorder(borderNumber["medium"], "FF0000"),
	}))

	w.setCell(sheet, "D5", "Mixed")
	w.setStyle(sheet, "D5", "D5", w.style(&excelize.Style{
		Font: &excelize.Font{Color: "000000"},
		Border: []excelize.Border{
			{Type: "left", Style: borderNumber["thick"], Color: "FF0000"},
			{Type: "right", Style: borderNumber["thick"], Color: "00FF00"},
			{Type: "top", Style: borderNumber["thick"], Color: "0000FF"},
			{Type: "bottom", Style: borderNumber["thick"], Color: "FF00FF"},
		},
	}))

	// Partial borders.
	partials := []struct {
		ref   string
		label string
		sides []excelize.Border
	}{
		{"D7", "Top only", []excelize.Border{{Type: "top", Style: 2, Color: "000000"}}},
		{"D8", "Bottom only", []excelize.Border{{Type: "bottom", Style: 2, Color: "000000"}}},
		{"D9", "Left+Right", []excelize.Border{
			{Type: "left", Style: 2, Color: "000000"},
			{Type: "right", Style: 2, Color: "000000"},
		}},
	}
	for _, p := range partials {
		w.setCell(sheet, p.ref, p.label)
		w.setStyle(sheet, p.ref, p.ref, w.style(&excelize.Style{
			Font:   &excelize.Font{Color: "000000"},
			Border: p.sides,
		}))
	}

	w.colWidth(sheet, "B", "B", 15)
	w.colWidth(sheet, "D", "D", 15)
}

func (g *KitchenSink) alignment(w *workbook) {
	const sheet = "Alignment"
	w.addSheet(sheet)
	w.tabColour(sheet, "45B7D1")

	w.setCell(sheet, "A1", "Alignment & Sizing")
	w.setStyle(sheet, "A1", "A1", w.style(fontStyle(&excelize.Font{Size: 16, Bold: true})))
	w.merge(sheet, "A1", "E1")

	for i, align := range []string{"left", "center", "right", "justify"} {
		ref := cell(i+1, 3)
		w.setCell(sheet, ref, "H: "+align)
		w.setStyle(sheet, ref, ref, w.style(&excelize.Style{
			Font:      &excelize.Font{Color: "000000"},
			Alignment: &excelize.Alignment{Horizontal: align},
		}))
	}

	w.rowHeight(sheet, 5, 40)
	for i, align := range []string{"top", "center", "bottom"} {
		ref := cell(i+1, 5)
		w.setCell(sheet, ref, "V: "+align)
		w.setStyle(sheet, ref, ref, w.style(&excelize.Style{
			Font:      &excelize.Font{Color: "000000"},
			Alignment: &excelize.Alignment{Vertical: align},
		}))
	}

	// Wrapped text.
	w.setCell(sheet, "A7", "This is a long text that should wrap to multiple lines in the cell")
	w.setStyle(sheet, "A7", "A7", w.style(&excelize.Style{
		Font:      &excelize.Font{Color: "000000"},
		Alignment: &excelize.Alignment{WrapText: true},
	}))
	w.rowHeight(sheet, 7, 45)

	// Rotated text. Excel stores counter-clockwise 45 as -45.
	rotations := []struct {
		ref      string
		label    string
		rotation int
	}{
		{"C7", "45 degrees", 45},
		{"D7", "90 degrees", 90},
		{"E7", "-45 degrees", -45},
	}
	for _, r := range rotations {
		w.setCell(sheet, r.ref, r.label)
		w.setStyle(sheet, r.ref, r.ref, w.style(&excelize.Style{
			Font:      &excelize.Font{Color: "000000"},
			Alignment: &excelize.Alignment{TextRotation: r.rotation},
		}))
	}

	// Centred merged block with a light fill.
	w.setCell(sheet, "A10", "This is a merged cell region")
	merged := solidFill("E8E8E8", nil)
	merged.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	w.setStyle(sheet, "A10", "A10", w.style(merged))
	w.merge(sheet, "A10", "C12")

	for i, height := range []float64{15, 25, 35, 45} {
		row := i + 14
		w.rowHeight(sheet, row, height)
		w.setCell(sheet, cell(1, row), fmt.Sprintf("Height: %gpt", height))
	}

	for i, width := range []float64{8, 15, 25, 35} {
		name := columnName(i + 1)
		w.colWidth(sheet, name, name, width)
	}
}

func (g *KitchenSink) numbers(w *workbook) {
	const sheet = "Numbers"
	w.addSheet(sheet)
	w.tabColour(sheet, "96CEB4")

	w.setCell(sheet, "A1", "Number Formats")
	w.setStyle(sheet, "A1", "A1", w.style(fontStyle(&excelize.Font{Size: 16, Bold: true})))
	w.merge(sheet, "A1", "D1")

	bold := w.style(fontStyle(&excelize.Font{Bold: true}))
	w.setCell(sheet, "A3", "Value")
	w.setCell(sheet, "B3", "Format")
	w.setCell(sheet, "C3", "Result")
	w.setStyle(sheet, "A3", "C3", bold)

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	stamp := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	formats := []struct {
		value  interface{}
		format string
		label  string
	}{
		{1234.567, "General", "General"},
		{1234.567, "#,##0.00", "Thousands"},
		{0.4567, "0.00%", "Percent"},
		{1234.56, "$#,##0.00", "Currency"},
		{1234.56, `"$"#,##0.00_);[Red]("$"#,##0.00)`, "Accounting"},
		{0.5, "# ?/?", "Fraction"},
		{1234567, "0.00E+00", "Scientific"},
		{date, "yyyy-mm-dd", "Date ISO"},
		{date, "mm/dd/yyyy", "Date US"},
		{date, "dd-mmm-yyyy", "Date Long"},
		{stamp, "hh:mm:ss", "Time"},
		{stamp, "yyyy-mm-dd hh:mm", "DateTime"},
	}
	for i, f := range formats {
		row := i + 4
		display := fmt.Sprintf("%v", f.value)
		if ts, isTime := f.value.(time.Time); isTime {
			display = ts.Format(time.RFC3339)
		}
		w.setCell(sheet, cell(1, row), display)
		w.setCell(sheet, cell(2, row), f.label)
		ref := cell(3, row)
		w.setCell(sheet, ref, f.value)
		format := f.format
		w.setStyle(sheet, ref, ref, w.style(&excelize.Style{CustomNumFmt: &format}))
	}

	w.setCell(sheet, "A18", "Negative Numbers:")
	w.setStyle(sheet, "A18", "A18", bold)
	for i, format := range []string{"#,##0.00", "#,##0.00;[Red]-#,##0.00", "#,##0.00_);(#,##0.00)"} {
		ref := cell(i+1, 19)
		w.setCell(sheet, ref, -1234.56)
		format := format
		w.setStyle(sheet, ref, ref, w.style(&excelize.Style{CustomNumFmt: &format}))
	}

	w.colWidth(sheet, "A", "A", 20)
	w.colWidth(sheet, "B", "B", 15)
	w.colWidth(sheet, "C", "C", 20)
}

func (g *KitchenSink) special(w *workbook) {
	const sheet = "Special"
	w.addSheet(sheet)
	w.tabColour(sheet, "FFEAA7")

	w.setCell(sheet, "A1", "Special Features")
	w.setStyle(sheet, "A1", "A1", w.style(fontStyle(&excelize.Font{Size: 16, Bold: true})))
	w.merge(sheet, "A1", "D1")

	bold := w.style(fontStyle(&excelize.Font{Bold: true}))

	w.setCell(sheet, "A3", "Hyperlinks:")
	w.setStyle(sheet, "A3", "A3", bold)
	w.setCell(sheet, "A4", "Click me!")
	if w.err == nil {
		w.fail(w.f.SetCellHyperLink(sheet, "A4", "https://example.com", "External"))
	}
	w.setStyle(sheet, "A4", "A4", w.style(fontStyle(&excelize.Font{Color: "0563C1", Underline: "single"})))

	w.setCell(sheet, "A6", "Comments:")
	w.setStyle(sheet, "A6", "A6", bold)
	w.setCell(sheet, "A7", "Hover over me")
	if w.err == nil {
		w.fail(w.f.AddComment(sheet, excelize.Comment{
			Cell:   "A7",
			Author: "Test Author",
			Paragraph: []excelize.RichTextRun{
				{Text: "This is a comment!\nWith multiple lines."},
			},
		}))
	}

	w.setCell(sheet, "A9", "This sheet has frozen panes (row 1)")
	w.freeze(sheet, 0, 1, "A2", "bottomLeft")

	w.setCell(sheet, "A11", "Rich text:")
	w.setStyle(sheet, "A11", "A11", bold)
	if w.err == nil {
		w.fail(w.f.SetCellRichText(sheet, "B11", []excelize.RichTextRun{
			{Text: "bold ", Font: &excelize.Font{Bold: true, Color: "000000"}},
			{Text: "red ", Font: &excelize.Font{Color: "FF0000"}},
			{Text: "plain", Font: &excelize.Font{Color: "000000"}},
		}))
	}

	w.colWidth(sheet, "A", "A", 30)
}

func (g *KitchenSink) hidden(w *workbook) {
	const sheet = "Hidden Sheet"
	w.addSheet(sheet)
	w.setCell(sheet, "A1", "This sheet is hidden")
	if w.err == nil {
		w.fail(w.f.SetSheetVisible(sheet, false))
	}
}
