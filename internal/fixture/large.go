package fixture

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	// DefaultRows and DefaultCols size the bulk fixture when no
	// override is given.
	DefaultRows = 5000
	DefaultCols = 20
)

// LargeDataset builds a bulk-data fixture for load testing. Row and
// column counts come from Options, and the content is seeded so repeated
// runs produce identical files.
type LargeDataset struct{}

// Name returns the generator's selector name.
func (g *LargeDataset) Name() string { return "large" }

// Description returns a human-readable description of the fixture.
func (g *LargeDataset) Description() string {
	return "Bulk dataset for load testing: mixed value types, striped rows, frozen header, autofilter"
}

// Generate writes large_<rows>x<cols>.xlsx into opts.Dir.
func (g *LargeDataset) Generate(opts Options) (string, error) {
	rows, cols := opts.Rows, opts.Cols
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}

	log := opts.logger()
	w := newWorkbook()
	const sheet = "Large Dataset"
	w.renameActive(sheet)

	header := w.style(solidFill("4472C4", &excelize.Font{Bold: true}))
	for c := 1; c <= cols; c++ {
		ref := cell(c, 1)
		w.setCell(sheet, ref, fmt.Sprintf("Column %d", c))
		w.setStyle(sheet, ref, ref, header)
	}

	// Pre-register the style combinations so the cell loop only picks IDs.
	numberFmt := "#,##0.00"
	percentFmt := "0.00%"
	dateFmt := "yyyy-mm-dd"
	formats := map[string]*string{
		"":        nil,
		"number":  &numberFmt,
		"percent": &percentFmt,
		"date":    &dateFmt,
	}
	styles := make(map[string]int, len(formats)*4)
	for kind, format := range formats {
		for _, striped := range []bool{false, true} {
			for _, bold := range []bool{false, true} {
				s := &excelize.Style{
					Font:         &excelize.Font{Bold: bold, Color: "000000"},
					CustomNumFmt: format,
				}
				if striped {
					s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}}
				}
				styles[styleKey(kind, striped, bold)] = w.style(s)
			}
		}
	}

	rng := rand.New(rand.NewSource(42))
	for r := 2; r <= rows+1; r++ {
		striped := r%2 == 0
		bold := r%10 == 0
		for c := 1; c <= cols; c++ {
			ref := cell(c, r)
			var kind string
			switch {
			case c == 1:
				w.setCell(sheet, ref, r-1)
			case c == 2:
				w.setCell(sheet, ref, fmt.Sprintf("Row %d", r-1))
			case c%3 == 0:
				kind = "number"
				w.setCell(sheet, ref, rng.Float64()*10000)
			case c%3 == 1:
				kind = "percent"
				w.setCell(sheet, ref, rng.Float64())
			default:
				kind = "date"
				w.setCell(sheet, ref, time.Date(
					2020+rng.Intn(5),
					time.Month(1+rng.Intn(12)),
					1+rng.Intn(28),
					0, 0, 0, 0, time.UTC))
			}
			w.setStyle(sheet, ref, ref, styles[styleKey(kind, striped, bold)])
		}
		if (r-1)%1000 == 0 {
			log.Debug("generated rows", "done", r-1, "total", rows)
		}
	}

	w.freeze(sheet, 0, 1, "A2", "bottomLeft")
	if w.err == nil {
		w.fail(w.f.AutoFilter(sheet, fmt.Sprintf("A1:%s1", columnName(cols)), nil))
	}
	w.colWidth(sheet, "A", columnName(cols), 12)

	path := filepath.Join(opts.Dir, fmt.Sprintf("large_%dx%d.xlsx", rows, cols))
	if err := w.save(path); err != nil {
		return "", err
	}
	log.Info("created fixture", "path", path, "rows", rows, "cols", cols)
	return path, nil
}

// styleKey builds the lookup key for the pre-registered style matrix.
func styleKey(kind string, striped, bold bool) string {
	return fmt.Sprintf("%s/%t/%t", kind, striped, bold)
}
