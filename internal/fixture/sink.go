package fixture

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/xlview/xlgen/internal/colour"
)

// FullCatalog builds the comprehensive fixture exercising every major
// workbook feature the viewer renders: all pattern fills and border
// styles, conditional formatting, charts, data validation, rich text,
// comments, hyperlinks, sparklines, images, protection, layout features,
// and edge cases.
type FullCatalog struct{}

// Name returns the generator's selector name.
func (g *FullCatalog) Name() string { return "sink" }

// Description returns a human-readable description of the fixture.
func (g *FullCatalog) Description() string {
	return "Comprehensive feature catalog: pattern fills, borders, conditional formatting, charts, validation, rich text, images, sparklines, protection, edge cases"
}

// Generate writes kitchen_sink_full.xlsx into opts.Dir.
func (g *FullCatalog) Generate(opts Options) (string, error) {
	w := newWorkbook()

	g.patternFills(w)
	g.borderStyles(w)
	g.conditionalFormatting(w)
	g.charts(w)
	g.dataValidation(w)
	g.fontsAndRichText(w)
	g.alignment(w)
	g.commentsAndLinks(w)
	g.numberFormats(w)
	g.layout(w)
	g.images(w)
	g.protection(w)
	g.edgeCases(w)
	g.emptyAndHidden(w)
	g.namedRanges(w)

	path := filepath.Join(opts.Dir, "kitchen_sink_full.xlsx")
	if err := w.save(path); err != nil {
		return "", err
	}
	opts.logger().Info("created fixture", "path", path)
	return path, nil
}

// titleRow writes the bold sheet title into A1 and merges it across span
// columns.
func (g *FullCatalog) titleRow(w *workbook, sheet, title string, span int) {
	w.setCell(sheet, "A1", title)
	w.setStyle(sheet, "A1", "A1", w.style(fontStyle(&excelize.Font{Bold: true, Size: 14})))
	if span > 1 {
		w.merge(sheet, "A1", cell(span, 1))
	}
}

// headerCells writes a bold header row starting at column 1.
func (g *FullCatalog) headerCells(w *workbook, sheet string, row int, labels ...string) {
	bold := w.style(fontStyle(&excelize.Font{Bold: true}))
	for i, label := range labels {
		ref := cell(i+1, row)
		w.setCell(sheet, ref, label)
		w.setStyle(sheet, ref, ref, bold)
	}
}

func (g *FullCatalog) patternFills(w *workbook) {
	const sheet = "Pattern Fills"
	w.renameActive(sheet)
	w.tabColour(sheet, "4472C4")
	g.titleRow(w, sheet, "All 19 ECMA-376 Pattern Fill Types", 3)
	g.headerCells(w, sheet, 3, "Pattern", "Sample", "Description")

	patterns := []struct {
		name string
		desc string
	}{
		{"none", "No fill"},
		{"solid", "Solid fill"},
		{"mediumGray", "Medium gray (50%)"},
		{"darkGray", "Dark gray (75%)"},
		{"lightGray", "Light gray (25%)"},
		{"darkHorizontal", "Dark horizontal lines"},
		{"darkVertical", "Dark vertical lines"},
		{"darkDown", "Dark diagonal down"},
		{"darkUp", "Dark diagonal up"},
		{"darkGrid", "Dark grid"},
		{"darkTrellis", "Dark trellis"},
		{"lightHorizontal", "Light horizontal lines"},
		{"lightVertical", "Light vertical lines"},
		{"lightDown", "Light diagonal down"},
		{"lightUp", "Light diagonal up"},
		{"lightGrid", "Light grid"},
		{"lightTrellis", "Light trellis"},
		{"gray125", "Gray 12.5%"},
		{"gray0625", "Gray 6.25%"},
	}
	black := w.style(fontStyle(&excelize.Font{}))
	for i, p := range patterns {
		row := i + 4
		w.setCell(sheet, cell(1, row), p.name)
		w.setStyle(sheet, cell(1, row), cell(1, row), black)
		sample := cell(2, row)
		w.setStyle(sheet, sample, sample, w.style(&excelize.Style{
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: patternNumber[p.name],
				Color:   []string{"4472C4"},
			},
		}))
		w.setCell(sheet, cell(3, row), p.desc)
		w.setStyle(sheet, cell(3, row), cell(3, row), black)
	}

	w.colWidth(sheet, "A", "A", 18)
	w.colWidth(sheet, "B", "B", 15)
	w.colWidth(sheet, "C", "C", 25)
}

func (g *FullCatalog) borderStyles(w *workbook) {
	const sheet = "Border Styles"
	w.addSheet(sheet)
	w.tabColour(sheet, "70AD47")
	g.titleRow(w, sheet, "All 13 ECMA-376 Border Styles", 3)
	g.headerCells(w, sheet, 3, "Style", "Sample", "Description")

	styles := []struct {
		name string
		desc string
	}{
		{"none", "No border"},
		{"thin", "Thin"},
		{"medium", "Medium"},
		{"dashed", "Dashed"},
		{"dotted", "Dotted"},
		{"thick", "Thick"},
		{"double", "Double"},
		{"hair", "Hair (very thin)"},
		{"mediumDashed", "Medium dashed"},
		{"dashDot", "Dash dot"},
		{"mediumDashDot", "Medium dash dot"},
		{"dashDotDot", "Dash dot dot"},
		{"mediumDashDotDot", "Medium dash dot dot"},
		{"slantDashDot", "Slant dash dot"},
	}
	black := w.style(fontStyle(&excelize.Font{}))
	for i, s := range styles {
		row := i + 4
		w.setCell(sheet, cell(1, row), s.name)
		w.setStyle(sheet, cell(1, row), cell(1, row), black)
		sample := cell(2, row)
		w.setCell(sheet, sample, "Sample")
		if s.name == "none" {
			w.setStyle(sheet, sample, sample, black)
		} else {
			w.setStyle(sheet, sample, sample, w.style(&excelize.Style{
				Font:   &excelize.Font{Color: "000000"},
				Border: boxBorder(borderNumber[s.name], "000000"),
			}))
		}
		w.setCell(sheet, cell(3, row), s.desc)
		w.setStyle(sheet, cell(3, row), cell(3, row), black)
	}

	w.setCell(sheet, "A20", "Colored Borders")
	w.setStyle(sheet, "A20", "A20", w.style(fontStyle(&excelize.Font{Bold: true})))
	coloured := []struct {
		hex, name string
	}{
		{"FF0000", "Red"}, {"00FF00", "Green"}, {"0000FF", "Blue"}, {"FFC000", "Orange"},
	}
	for i, c := range coloured {
		row := i + 21
		w.setCell(sheet, cell(1, row), c.name)
		w.setStyle(sheet, cell(1, row), cell(1, row), black)
		sample := cell(2, row)
		w.setCell(sheet, sample, "Color")
		w.setStyle(sheet, sample, sample, w.style(&excelize.Style{
			Font:   &excelize.Font{Color: "000000"},
			Border: boxBorder(borderNumber["thick"], c.hex),
		}))
	}

	w.colWidth(sheet, "A", "A", 20)
	w.colWidth(sheet, "B", "B", 15)
	w.colWidth(sheet, "C", "C", 25)
}

func (g *FullCatalog) conditionalFormatting(w *workbook) {
	const sheet = "Conditional Formatting"
	w.addSheet(sheet)
	w.tabColour(sheet, "ED7D31")
	g.titleRow(w, sheet, "All Conditional Formatting Types", 7)

	bold := w.style(fontStyle(&excelize.Font{Bold: true}))
	black := w.style(fontStyle(&excelize.Font{}))
	label := func(ref, text string) {
		w.setCell(sheet, ref, text)
		w.setStyle(sheet, ref, ref, bold)
	}
	fillColumn := func(col string, start int, values []int) {
		for i, v := range values {
			ref := fmt.Sprintf("%s%d", col, start+i)
			w.setCell(sheet, ref, v)
			w.setStyle(sheet, ref, ref, black)
		}
	}
	format := func(area string, rules []excelize.ConditionalFormatOptions) {
		if w.err == nil {
			w.fail(w.f.SetConditionalFormat(sheet, area, rules))
		}
	}

	// 2-colour scale.
	label("A3", "2-Color Scale")
	fillColumn("A", 4, []int{10, 30, 50, 70, 90})
	format("A4:A8", []excelize.ConditionalFormatOptions{{
		Type:     "2_color_scale",
		Criteria: "=",
		MinType:  "min", MinColor: "#FF0000",
		MaxType: "max", MaxColor: "#00FF00",
	}})

	// 3-colour scale.
	label("A10", "3-Color Scale")
	fillColumn("A", 11, []int{0, 25, 50, 75, 100})
	format("A11:A15", []excelize.ConditionalFormatOptions{{
		Type:     "3_color_scale",
		Criteria: "=",
		MinType:  "min", MinColor: "#F8696B",
		MidType: "percentile", MidValue: "50", MidColor: "#FFEB84",
		MaxType: "max", MaxColor: "#63BE7B",
	}})

	// Data bars.
	label("B3", "Data Bars")
	fillColumn("B", 4, []int{20, 40, 60, 80, 100})
	format("B4:B8", []excelize.ConditionalFormatOptions{{
		Type:     "data_bar",
		Criteria: "=",
		MinType:  "min",
		MaxType:  "max",
		BarColor: "#4472C4",
	}})

	label("B10", "Solid Data Bars")
	fillColumn("B", 11, []int{15, 45, 75, 95, 35})
	format("B11:B15", []excelize.ConditionalFormatOptions{{
		Type:     "data_bar",
		Criteria: "=",
		MinType:  "min",
		MaxType:  "max",
		BarColor: "#70AD47",
		BarSolid: true,
	}})

	// Icon sets.
	iconSets := []struct {
		col    string
		title  string
		style  string
		values []int
	}{
		{"C", "3 Arrows", "3Arrows", []int{10, 40, 70, 30, 90}},
		{"D", "3 Traffic Lights", "3TrafficLights1", []int{1, 2, 3, 2, 1}},
		{"E", "4 Arrows", "4Arrows", []int{15, 35, 65, 85, 50}},
		{"F", "5 Ratings", "5Rating", []int{1, 2, 3, 4, 5}},
	}
	for _, set := range iconSets {
		label(set.col+"3", set.title)
		fillColumn(set.col, 4, set.values)
		format(fmt.Sprintf("%s4:%s8", set.col, set.col), []excelize.ConditionalFormatOptions{{
			Type:      "icon_set",
			IconStyle: set.style,
		}})
	}

	// Cell-is rules: two rules stacked on one range.
	label("G3", "Cell Is Rules")
	fillColumn("G", 4, []int{10, 40, 60, 25, 80})
	green := w.style(solidFill("C6EFCE", nil))
	red := w.style(solidFill("FFC7CE", nil))
	format("G4:G8", []excelize.ConditionalFormatOptions{
		{Type: "cell", Criteria: ">", Value: "50", Format: &green},
		{Type: "cell", Criteria: "<", Value: "30", Format: &red},
	})

	label("A17", "More Cell Is Operators")
	w.merge(sheet, "A17", "E17")

	w.setCell(sheet, "A18", "Equal to 50")
	w.setStyle(sheet, "A18", "A18", black)
	fillColumn("A", 19, []int{30, 50, 50, 70, 50})
	yellow := w.style(solidFill("FFEB9C", nil))
	format("A19:A23", []excelize.ConditionalFormatOptions{
		{Type: "cell", Criteria: "==", Value: "50", Format: &yellow},
	})

	w.setCell(sheet, "B18", "Between 30-70")
	w.setStyle(sheet, "B18", "B18", black)
	fillColumn("B", 19, []int{20, 40, 60, 80, 35})
	blue := w.style(solidFill("BDD7EE", nil))
	format("B19:B23", []excelize.ConditionalFormatOptions{
		{Type: "cell", Criteria: "between", MinValue: "30", MaxValue: "70", Format: &blue},
	})
}

func (g *FullCatalog) charts(w *workbook) {
	const sheet = "Charts"
	w.addSheet(sheet)
	w.tabColour(sheet, "FFC000")

	// Category table feeding most charts.
	g.headerCells(w, sheet, 1, "Category", "Series 1", "Series 2", "Series 3")
	header := w.style(solidFill("4472C4", &excelize.Font{Bold: true}))
	w.setStyle(sheet, "A1", "D1", header)

	rows := []struct {
		cat        string
		d1, d2, d3 int
	}{
		{"Q1", 10, 20, 15},
		{"Q2", 25, 15, 30},
		{"Q3", 15, 25, 20},
		{"Q4", 30, 20, 25},
	}
	for i, r := range rows {
		row := i + 2
		w.setCell(sheet, cell(1, row), r.cat)
		w.setCell(sheet, cell(2, row), r.d1)
		w.setCell(sheet, cell(3, row), r.d2)
		w.setCell(sheet, cell(4, row), r.d3)
	}

	series := func() []excelize.ChartSeries {
		out := make([]excelize.ChartSeries, 0, 3)
		for col := 'B'; col <= 'D'; col++ {
			out = append(out, excelize.ChartSeries{
				Name:       fmt.Sprintf("Charts!$%c$1", col),
				Categories: "Charts!$A$2:$A$5",
				Values:     fmt.Sprintf("Charts!$%c$2:$%c$5", col, col),
			})
		}
		return out
	}

	addChart := func(anchor string, chartType excelize.ChartType, title string, s []excelize.ChartSeries) {
		if w.err != nil {
			return
		}
		w.fail(w.f.AddChart(sheet, anchor, &excelize.Chart{
			Type:   chartType,
			Series: s,
			Title:  []excelize.RichTextRun{{Text: title}},
		}))
	}

	addChart("F2", excelize.Col, "Clustered Bar Chart", series())
	addChart("P2", excelize.ColStacked, "Stacked Bar Chart", series())
	addChart("F17", excelize.Line, "Line Chart", series())
	addChart("P17", excelize.Area, "Area Chart", series())

	// Pie data.
	w.setCell(sheet, "G1", "Product")
	w.setCell(sheet, "H1", "Sales")
	pie := []struct {
		product string
		sales   int
	}{
		{"Widgets", 35}, {"Gadgets", 25}, {"Gizmos", 20}, {"Things", 20},
	}
	for i, p := range pie {
		row := i + 2
		w.setCell(sheet, cell(7, row), p.product)
		w.setCell(sheet, cell(8, row), p.sales)
	}
	pieSeries := []excelize.ChartSeries{{
		Categories: "Charts!$G$2:$G$5",
		Values:     "Charts!$H$2:$H$5",
	}}
	addChart("F32", excelize.Pie, "Pie Chart", pieSeries)
	addChart("P32", excelize.Doughnut, "Doughnut Chart", pieSeries)

	// Scatter data.
	w.setCell(sheet, "J1", "X")
	w.setCell(sheet, "K1", "Y")
	points := [][2]int{{1, 2}, {2, 5}, {3, 3}, {4, 7}, {5, 4}}
	for i, p := range points {
		row := i + 2
		w.setCell(sheet, cell(10, row), p[0])
		w.setCell(sheet, cell(11, row), p[1])
	}
	addChart("F47", excelize.Scatter, "Scatter Chart", []excelize.ChartSeries{{
		Categories: "Charts!$J$2:$J$6",
		Values:     "Charts!$K$2:$K$6",
	}})
	addChart("P47", excelize.Radar, "Radar Chart", series())

	// Sparklines next to the source table.
	w.setCell(sheet, "A8", "Sparklines:")
	w.setStyle(sheet, "A8", "A8", w.style(fontStyle(&excelize.Font{Bold: true})))
	if w.err == nil {
		w.fail(w.f.AddSparkline(sheet, &excelize.SparklineOptions{
			Location: []string{"B8", "B9"},
			Range:    []string{"Charts!B2:B5", "Charts!C2:C5"},
			Type:     "line",
			Markers:  true,
		}))
	}
	if w.err == nil {
		w.fail(w.f.AddSparkline(sheet, &excelize.SparklineOptions{
			Location: []string{"B10"},
			Range:    []string{"Charts!D2:D5"},
			Type:     "column",
		}))
	}
}

func (g *FullCatalog) dataValidation(w *workbook) {
	const sheet = "Data Validation"
	w.addSheet(sheet)
	w.tabColour(sheet, "9966FF")
	g.titleRow(w, sheet, "All Data Validation Types", 3)

	black := w.style(fontStyle(&excelize.Font{}))
	label := func(row int, text string) {
		ref := cell(1, row)
		w.setCell(sheet, ref, text)
		w.setStyle(sheet, ref, ref, black)
	}
	add := func(dv *excelize.DataValidation) {
		if w.err == nil {
			w.fail(w.f.AddDataValidation(sheet, dv))
		}
	}

	// List dropdown.
	label(3, "List (dropdown):")
	list := excelize.NewDataValidation(true)
	list.Sqref = "B3:B3"
	w.fail(list.SetDropList([]string{"Option A", "Option B", "Option C", "Option D"}))
	add(list)
	w.setCell(sheet, "B3", "Option A")

	// Whole number with an error alert.
	label(5, "Whole number (1-100):")
	whole := excelize.NewDataValidation(true)
	whole.Sqref = "B5:B5"
	w.fail(whole.SetRange(1, 100, excelize.DataValidationTypeWhole, excelize.DataValidationOperatorBetween))
	whole.SetError(excelize.DataValidationErrorStyleStop, "Invalid Input", "Please enter a number between 1 and 100")
	add(whole)
	w.setCell(sheet, "B5", 50)

	// Decimal.
	label(7, "Decimal (0.0-10.0):")
	decimal := excelize.NewDataValidation(true)
	decimal.Sqref = "B7:B7"
	w.fail(decimal.SetRange(0.0, 10.0, excelize.DataValidationTypeDecimal, excelize.DataValidationOperatorBetween))
	add(decimal)
	w.setCell(sheet, "B7", 5.5)

	// Date.
	label(9, "Date (2024+):")
	date := excelize.NewDataValidation(true)
	date.Sqref = "B9:B9"
	w.fail(date.SetRange("DATE(2024,1,1)", "DATE(2024,1,1)",
		excelize.DataValidationTypeDate, excelize.DataValidationOperatorGreaterThanOrEqual))
	add(date)
	w.setCell(sheet, "B9", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))

	// Text length.
	label(11, "Text length (max 20):")
	length := excelize.NewDataValidation(true)
	length.Sqref = "B11:B11"
	w.fail(length.SetRange(20, 20, excelize.DataValidationTypeTextLength, excelize.DataValidationOperatorLessThanOrEqual))
	add(length)
	w.setCell(sheet, "B11", "Short text")

	// Yes/No dropdown.
	label(13, "Yes/No:")
	yesNo := excelize.NewDataValidation(true)
	yesNo.Sqref = "B13:B13"
	w.fail(yesNo.SetDropList([]string{"Yes", "No"}))
	add(yesNo)
	w.setCell(sheet, "B13", "Yes")

	// Priority dropdown.
	label(15, "Priority:")
	priority := excelize.NewDataValidation(true)
	priority.Sqref = "B15:B15"
	w.fail(priority.SetDropList([]string{"Critical", "High", "Medium", "Low"}))
	add(priority)
	w.setCell(sheet, "B15", "Medium")

	w.colWidth(sheet, "A", "A", 25)
	w.colWidth(sheet, "B", "B", 20)
}

func (g *FullCatalog) fontsAndRichText(w *workbook) {
	const sheet = "Fonts & Rich Text"
	w.addSheet(sheet)
	w.tabColour(sheet, "FF6B6B")
	g.titleRow(w, sheet, "Font Styles and Rich Text", 3)

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
		{"Subscript", excelize.Font{VertAlign: "subscript"}},
		{"Superscript", excelize.Font{VertAlign: "superscript"}},
	}
	for i, s := range styles {
		ref := cell(1, i+3)
		font := s.font
		w.setCell(sheet, ref, s.label)
		w.setStyle(sheet, ref, ref, w.style(fontStyle(&font)))
	}

	for i, size := range []float64{8, 11, 14, 18, 24} {
		ref := cell(2, i+3)
		w.setCell(sheet, ref, fmt.Sprintf("Size %g", size))
		w.setStyle(sheet, ref, ref, w.style(fontStyle(&excelize.Font{Size: size})))
	}

	colours := []struct {
		name, hex string
	}{
		{"Red", "FF0000"}, {"Green", "00FF00"}, {"Blue", "0000FF"},
		{"Orange", "FFC000"}, {"Purple", "7030A0"},
	}
	for i, c := range colours {
		ref := cell(3, i+3)
		w.setCell(sheet, ref, c.name)
		w.setStyle(sheet, ref, ref, w.style(fontStyle(&excelize.Font{Color: c.hex})))
	}

	for i, face := range []string{"Arial", "Times New Roman", "Courier New", "Verdana", "Georgia"} {
		ref := cell(1, i+12)
		w.setCell(sheet, ref, face)
		w.setStyle(sheet, ref, ref, w.style(fontStyle(&excelize.Font{Family: face})))
	}

	// True rich text runs, one cell with mixed formatting.
	w.setCell(sheet, "A18", "Rich text runs:")
	w.setStyle(sheet, "A18", "A18", w.style(fontStyle(&excelize.Font{Bold: true})))
	if w.err == nil {
		w.fail(w.f.SetCellRichText(sheet, "B18", []excelize.RichTextRun{
			{Text: "bold", Font: &excelize.Font{Bold: true, Color: "000000"}},
			{Text: " and ", Font: &excelize.Font{Color: "000000"}},
			{Text: "italic red", Font: &excelize.Font{Italic: true, Color: "FF0000"}},
			{Text: " and ", Font: &excelize.Font{Color: "000000"}},
			{Text: "underlined blue", Font: &excelize.Font{Underline: "single", Color: "0000FF"}},
		}))
	}

	w.colWidth(sheet, "A", "A", 20)
	w.colWidth(sheet, "B", "B", 30)
	w.colWidth(sheet, "C", "C", 15)
}

func (g *FullCatalog) alignment(w *workbook) {
	const sheet = "Alignment"
	w.addSheet(sheet)
	w.tabColour(sheet, "00B0F0")
	g.titleRow(w, sheet, "Alignment Options", 4)

	bold := w.style(fontStyle(&excelize.Font{Bold: true}))
	aligned := func(ref, text string, alignment *excelize.Alignment) {
		w.setCell(sheet, ref, text)
		w.setStyle(sheet, ref, ref, w.style(&excelize.Style{
			Font:      &excelize.Font{Color: "000000"},
			Alignment: alignment,
		}))
	}

	w.setCell(sheet, "A3", "Horizontal:")
	w.setStyle(sheet, "A3", "A3", bold)
	for i, h := range []string{"left", "center", "right", "fill", "justify", "distributed"} {
		aligned(cell(1, i+4), "H: "+h, &excelize.Alignment{Horizontal: h})
	}

	w.setCell(sheet, "B3", "Vertical:")
	w.setStyle(sheet, "B3", "B3", bold)
	// Empty string is the default bottom anchoring.
	verticals := []struct {
		label, value string
	}{
		{"top", "top"}, {"center", "center"}, {"bottom", ""},
		{"justify", "justify"}, {"distributed", "distributed"},
	}
	for i, v := range verticals {
		row := i + 4
		aligned(cell(2, row), "V: "+v.label, &excelize.Alignment{Vertical: v.value})
		w.rowHeight(sheet, row, 40)
	}

	w.setCell(sheet, "C3", "Rotation:")
	w.setStyle(sheet, "C3", "C3", bold)
	for i, rot := range []int{0, 45, 90, -45, -90, 255} {
		aligned(cell(3, i+4), fmt.Sprintf("Rot: %d", rot), &excelize.Alignment{TextRotation: rot})
	}

	w.setCell(sheet, "D3", "Other:")
	w.setStyle(sheet, "D3", "D3", bold)
	aligned("D4", "This is a long text that should wrap to multiple lines in the cell",
		&excelize.Alignment{WrapText: true})
	for i := 1; i <= 3; i++ {
		aligned(cell(4, i+4), fmt.Sprintf("Indent %d", i), &excelize.Alignment{Indent: i})
	}
	aligned("D8", "Shrink to fit", &excelize.Alignment{ShrinkToFit: true})

	w.colWidth(sheet, "A", "A", 25)
	w.colWidth(sheet, "B", "B", 15)
	w.colWidth(sheet, "C", "C", 15)
	w.colWidth(sheet, "D", "D", 20)
}

func (g *FullCatalog) commentsAndLinks(w *workbook) {
	const sheet = "Comments & Links"
	w.addSheet(sheet)
	w.tabColour(sheet, "A5A5A5")
	g.titleRow(w, sheet, "Comments and Hyperlinks", 3)

	bold := w.style(fontStyle(&excelize.Font{Bold: true}))
	black := w.style(fontStyle(&excelize.Font{}))

	comments := []struct {
		ref    string
		label  string
		author string
		text   string
	}{
		{"A3", "Cell with comment", "Author Name", "This is a comment!\nLine 2 of comment."},
		{"A4", "Another comment", "Reviewer", "Important note here."},
		{"A5", "Long comment", "Documentation Team",
			"This is a much longer comment that contains multiple paragraphs.\n\n" +
				"Paragraph 2: More details about this cell.\n\n" +
				"Paragraph 3: Final notes."},
	}
	for _, c := range comments {
		w.setCell(sheet, c.ref, c.label)
		w.setStyle(sheet, c.ref, c.ref, black)
		if w.err == nil {
			w.fail(w.f.AddComment(sheet, excelize.Comment{
				Cell:      c.ref,
				Author:    c.author,
				Paragraph: []excelize.RichTextRun{{Text: c.text}},
			}))
		}
	}

	w.setCell(sheet, "A7", "External Links:")
	w.setStyle(sheet, "A7", "A7", bold)
	linkFont := w.style(fontStyle(&excelize.Font{Color: "0563C1", Underline: "single"}))
	external := []struct {
		ref, label, target string
	}{
		{"A8", "Google", "https://www.google.com"},
		{"A9", "GitHub", "https://github.com"},
		{"A10", "Email Link", "mailto:test@example.com"},
	}
	for _, l := range external {
		w.setCell(sheet, l.ref, l.label)
		if w.err == nil {
			w.fail(w.f.SetCellHyperLink(sheet, l.ref, l.target, "External"))
		}
		w.setStyle(sheet, l.ref, l.ref, linkFont)
	}

	w.setCell(sheet, "A12", "Internal Links:")
	w.setStyle(sheet, "A12", "A12", bold)
	internal := []struct {
		ref, label, target string
	}{
		{"A13", "Go to Charts", "Charts!A1"},
		{"A14", "Go to Pattern Fills", "'Pattern Fills'!A1"},
	}
	for _, l := range internal {
		w.setCell(sheet, l.ref, l.label)
		if w.err == nil {
			w.fail(w.f.SetCellHyperLink(sheet, l.ref, l.target, "Location"))
		}
		w.setStyle(sheet, l.ref, l.ref, linkFont)
	}

	w.colWidth(sheet, "A", "A", 25)
}

func (g *FullCatalog) numberFormats(w *workbook) {
	const sheet = "Number Formats"
	w.addSheet(sheet)
	w.tabColour(sheet, "CC99FF")
	g.titleRow(w, sheet, "Number Formats", 3)
	g.headerCells(w, sheet, 3, "Format", "Value", "Display")

	black := w.style(fontStyle(&excelize.Font{}))
	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	stamp := time.Date(2024, 12, 25, 10, 30, 0, 0, time.UTC)
	clock := time.Date(2024, 1, 1, 14, 30, 45, 0, time.UTC)

	formats := []struct {
		name   string
		value  interface{}
		format string
	}{
		{"General", 1234.5678, ""},
		{"Number (2 decimal)", 1234.5678, "0.00"},
		{"Number with comma", 1234567.89, "#,##0.00"},
		{"Currency $", 1234.56, "$#,##0.00"},
		{"Currency negative", -1234.56, "$#,##0.00_);[Red]($#,##0.00)"},
		{"Accounting", 1234.56, `_($* #,##0.00_);_($* (#,##0.00);_($* "-"??_);_(@_)`},
		{"Percentage", 0.756, "0.00%"},
		{"Scientific", 123456789, "0.00E+00"},
		{"Fraction", 0.5, "# ?/?"},
		{"Date", date, "yyyy-mm-dd"},
		{"Date long", date, "mmmm d, yyyy"},
		{"Time", clock, "hh:mm:ss"},
		{"DateTime", stamp, "yyyy-mm-dd hh:mm"},
		{"Text", 12345, "@"},
		{"Custom", 12345.67, "[Blue]#,##0.00"},
	}
	for i, f := range formats {
		row := i + 4
		w.setCell(sheet, cell(1, row), f.name)
		w.setStyle(sheet, cell(1, row), cell(1, row), black)
		w.setCell(sheet, cell(2, row), f.value)
		w.setStyle(sheet, cell(2, row), cell(2, row), black)
		ref := cell(3, row)
		w.setCell(sheet, ref, f.value)
		if f.format != "" {
			format := f.format
			w.setStyle(sheet, ref, ref, w.style(&excelize.Style{
				Font:         &excelize.Font{Color: "000000"},
				CustomNumFmt: &format,
			}))
		} else {
			w.setStyle(sheet, ref, ref, black)
		}
	}

	w.colWidth(sheet, "A", "A", 25)
	w.colWidth(sheet, "B", "B", 20)
	w.colWidth(sheet, "C", "C", 25)
}

func (g *FullCatalog) layout(w *workbook) {
	const sheet = "Layout Features"
	w.addSheet(sheet)
	w.tabColour(sheet, "66CCFF")

	w.freeze(sheet, 1, 1, "B2", "bottomRight")
	w.setCell(sheet, "A1", "Layout Features (Frozen B2)")
	w.setStyle(sheet, "A1", "A1", w.style(fontStyle(&excelize.Font{Bold: true, Size: 14})))

	bold := w.style(fontStyle(&excelize.Font{Bold: true}))
	black := w.style(fontStyle(&excelize.Font{}))

	merges := []struct {
		topLeft, bottomRight string
		label                string
		fill                 string
		alignment            *excelize.Alignment
	}{
		{"A3", "C3", "Merged 3x1", "4472C4", &excelize.Alignment{Horizontal: "center"}},
		{"A5", "A7", "Merged 1x3", "70AD47", &excelize.Alignment{Horizontal: "center", Vertical: "center"}},
		{"E5", "F6", "Merged 2x2", "ED7D31", &excelize.Alignment{Horizontal: "center", Vertical: "center"}},
	}
	for _, m := range merges {
		w.setCell(sheet, m.topLeft, m.label)
		s := solidFill(m.fill, &excelize.Font{Bold: true})
		s.Alignment = m.alignment
		w.setStyle(sheet, m.topLeft, m.topLeft, w.style(s))
		w.merge(sheet, m.topLeft, m.bottomRight)
	}

	w.setCell(sheet, "A10", "Column widths:")
	w.setStyle(sheet, "A10", "A10", bold)
	widths := map[string]float64{"A": 20, "B": 5, "C": 30, "D": 10, "E": 15, "F": 15}
	for col, width := range widths {
		w.colWidth(sheet, col, col, width)
	}
	w.setCell(sheet, "A11", "Width 20")
	w.setCell(sheet, "B11", "5")
	w.setCell(sheet, "C11", "Width 30 (wide column)")
	w.setStyle(sheet, "A11", "C11", black)

	w.setCell(sheet, "A13", "Row heights:")
	w.setStyle(sheet, "A13", "A13", bold)
	heights := []struct {
		row    int
		height float64
		label  string
	}{
		{14, 30, "Height 30"},
		{15, 50, "Height 50"},
		{16, 10, "Height 10 (short)"},
	}
	for _, h := range heights {
		ref := cell(1, h.row)
		w.setCell(sheet, ref, h.label)
		w.setStyle(sheet, ref, ref, black)
		w.rowHeight(sheet, h.row, h.height)
	}

	// Hidden row and column.
	w.setCell(sheet, "A18", "Hidden row below (19)")
	w.setCell(sheet, "A19", "This row is hidden")
	w.setStyle(sheet, "A18", "A19", black)
	w.setCell(sheet, "G1", "Hidden")
	if w.err == nil {
		w.fail(w.f.SetRowVisible(sheet, 19, false))
	}
	if w.err == nil {
		w.fail(w.f.SetColVisible(sheet, "G", false))
	}
}

func (g *FullCatalog) images(w *workbook) {
	const sheet = "Images"
	w.addSheet(sheet)
	w.tabColour(sheet, "FF99CC")
	w.setCell(sheet, "A1", "Embedded Images")
	w.setStyle(sheet, "A1", "A1", w.style(fontStyle(&excelize.Font{Bold: true, Size: 14})))

	black := w.style(fontStyle(&excelize.Font{}))
	swatches := []struct {
		rgb    colour.RGB
		anchor string
		name   string
	}{
		{colour.RGB{R: 255}, "B3", "Red"},
		{colour.RGB{G: 255}, "D3", "Green"},
		{colour.RGB{B: 255}, "F3", "Blue"},
		{colour.RGB{R: 255, G: 255}, "H3", "Yellow"},
		{colour.RGB{R: 255, B: 255}, "B8", "Magenta"},
		{colour.RGB{G: 255, B: 255}, "D8", "Cyan"},
	}
	for _, s := range swatches {
		if w.err != nil {
			return
		}
		data, err := swatchPNG(s.rgb, 60, s.name)
		if err != nil {
			w.fail(err)
			return
		}
		w.fail(w.f.AddPictureFromBytes(sheet, s.anchor, &excelize.Picture{
			Extension: ".png",
			File:      data,
			Format:    &excelize.GraphicOptions{},
		}))
		// Label above each swatch.
		ref := string(s.anchor[0]) + "2"
		w.setCell(sheet, ref, s.name)
		w.setStyle(sheet, ref, ref, black)
	}
}

func (g *FullCatalog) protection(w *workbook) {
	const sheet = "Protection"
	w.addSheet(sheet)
	w.tabColour(sheet, "C00000")
	g.titleRow(w, sheet, "Sheet Protection", 3)

	black := w.style(fontStyle(&excelize.Font{}))
	w.setCell(sheet, "A3", "Locked cell (default)")
	w.setStyle(sheet, "A3", "A3", black)

	w.setCell(sheet, "A5", "Unlocked cell:")
	w.setStyle(sheet, "A5", "A5", black)
	w.setCell(sheet, "B5", "Editable")
	w.setStyle(sheet, "B5", "B5", w.style(&excelize.Style{
		Font:       &excelize.Font{Color: "000000"},
		Protection: &excelize.Protection{Locked: false},
	}))

	w.setCell(sheet, "A7", "Hidden formula cell:")
	w.setStyle(sheet, "A7", "A7", black)
	w.setStyle(sheet, "B7", "B7", w.style(&excelize.Style{
		Font:       &excelize.Font{Color: "000000"},
		Protection: &excelize.Protection{Locked: true, Hidden: true},
	}))
	if w.err == nil {
		w.fail(w.f.SetCellFormula(sheet, "B7", "=1+1"))
	}

	if w.err == nil {
		w.fail(w.f.ProtectSheet(sheet, &excelize.SheetProtectionOptions{
			SelectLockedCells:   true,
			SelectUnlockedCells: true,
			EditScenarios:       true,
		}))
	}

	w.colWidth(sheet, "A", "A", 25)
}

func (g *FullCatalog) edgeCases(w *workbook) {
	const sheet = "Edge Cases"
	w.addSheet(sheet)
	w.tabColour(sheet, "808080")
	g.titleRow(w, sheet, "Edge Cases for Testing", 3)

	bold := w.style(fontStyle(&excelize.Font{Bold: true}))
	black := w.style(fontStyle(&excelize.Font{}))
	pair := func(row int, name string, value interface{}) {
		w.setCell(sheet, cell(1, row), name)
		w.setStyle(sheet, cell(1, row), cell(1, row), black)
		w.setCell(sheet, cell(2, row), value)
		w.setStyle(sheet, cell(2, row), cell(2, row), black)
	}

	w.setCell(sheet, "A3", "Unicode:")
	w.setStyle(sheet, "A3", "A3", bold)
	unicode := []struct {
		name, text string
	}{
		{"Chinese", "你好，世界"},
		{"Japanese", "こんにちは世界"},
		{"Korean", "안녕하세요 세계"},
		{"Arabic", "مرحبا بالعالم"},
		{"Hebrew", "שלום עולם"},
		{"Emoji", "📊 ✅ 🎉"},
		{"Math symbols", "∑ ∫ √ π ≈ ≠"},
	}
	for i, u := range unicode {
		pair(i+4, u.name, u.text)
	}

	w.setCell(sheet, "A12", "Long string:")
	w.setStyle(sheet, "A12", "A12", bold)
	w.setCell(sheet, "B12", strings.Repeat("A", 1000))
	w.setStyle(sheet, "B12", "B12", black)

	// Empty cells that carry only formatting.
	w.setCell(sheet, "A14", "Empty with style:")
	w.setStyle(sheet, "A14", "A14", bold)
	w.setStyle(sheet, "B14", "B14", w.style(solidFill("FFFF00", nil)))
	w.setStyle(sheet, "C14", "C14", w.style(&excelize.Style{
		Border: boxBorder(borderNumber["thin"], "000000"),
	}))

	w.setCell(sheet, "A16", "Number limits:")
	w.setStyle(sheet, "A16", "A16", bold)
	pair(17, "Very small", 0.000000001)
	pair(18, "Very large", 999999999999.99)
	pair(19, "Negative", -12345.67)
	pair(20, "Zero", 0)

	w.setCell(sheet, "A22", "Special chars:")
	w.setStyle(sheet, "A22", "A22", bold)
	special := []struct {
		name, text string
	}{
		{"Quotes", `Text with "quotes" inside`},
		{"Apostrophe", "It's a test"},
		{"Ampersand", "A & B"},
		{"Less/Greater", "<tag>value</tag>"},
		{"Newline", "Line1\nLine2"},
		{"Tab", "Col1\tCol2"},
	}
	for i, s := range special {
		pair(i+23, s.name, s.text)
	}

	w.colWidth(sheet, "A", "A", 20)
	w.colWidth(sheet, "B", "B", 40)
}

func (g *FullCatalog) emptyAndHidden(w *workbook) {
	w.addSheet("Empty Sheet")
	w.tabColour("Empty Sheet", "CCCCCC")

	w.addSheet("Hidden Sheet")
	w.setCell("Hidden Sheet", "A1", "This sheet is hidden")
	if w.err == nil {
		w.fail(w.f.SetSheetVisible("Hidden Sheet", false))
	}
}

// namedRanges registers workbook-scoped defined names. Registration
// failures are tolerated; a fixture without named ranges is still usable.
func (g *FullCatalog) namedRanges(w *workbook) {
	if w.err != nil {
		return
	}
	_ = w.f.SetDefinedName(&excelize.DefinedName{
		Name:     "TestRange",
		RefersTo: "'Pattern Fills'!$A$4:$C$22",
		Scope:    "Workbook",
	})
	_ = w.f.SetDefinedName(&excelize.DefinedName{
		Name:     "ChartData",
		RefersTo: "Charts!$A$1:$D$5",
		Scope:    "Workbook",
	})
}
