package fixture

import (
	"fmt"
	"path/filepath"
)

// Colors builds a fixture focused on fill colours and the legibility of
// text placed over them.
type Colors struct{}

// Name returns the generator's selector name.
func (g *Colors) Name() string { return "colors" }

// Description returns a human-readable description of the fixture.
func (g *Colors) Description() string {
	return "Colour coverage: rainbow fills, grayscale ramp, and theme grid with contrast-selected text"
}

// Generate writes colors_test.xlsx into opts.Dir.
func (g *Colors) Generate(opts Options) (string, error) {
	const sheet = "Colors"
	w := newWorkbook()
	w.renameActive(sheet)

	// Rainbow columns, fill only.
	rainbow := []string{"FF0000", "FF7F00", "FFFF00", "00FF00", "0000FF", "4B0082", "9400D3"}
	for i, hex := range rainbow {
		id := w.style(solidFill(hex, nil))
		w.setStyle(sheet, cell(i+1, 1), cell(i+1, 5), id)
	}

	// Grayscale ramp with labels; the contrast selector flips the label
	// colour to white on the dark half of the ramp.
	for i := 0; i < 10; i++ {
		step := uint8(255 * i / 9)
		hex := fmt.Sprintf("%02X%02X%02X", step, step, step)
		ref := cell(i+1, 7)
		w.setCell(sheet, ref, "#"+hex)
		w.setStyle(sheet, ref, ref, w.style(solidFill(hex, nil)))
	}

	// Office-like theme colour grid.
	themeColours := [][]string{
		{"FFFFFF", "000000", "E7E6E6", "44546A", "4472C4", "ED7D31"},
		{"D0CECE", "7F7F7F", "AEAAAA", "8497B0", "8FAADC", "F4B183"},
		{"A5A5A5", "595959", "757171", "ACB9CA", "B4C6E7", "F8CBAD"},
	}
	for r, rowColours := range themeColours {
		for c, hex := range rowColours {
			ref := cell(c+1, r+9)
			w.setCell(sheet, ref, "#"+hex)
			w.setStyle(sheet, ref, ref, w.style(solidFill(hex, nil)))
		}
	}

	w.colWidth(sheet, "A", columnName(10), 10)

	path := filepath.Join(opts.Dir, "colors_test.xlsx")
	if err := w.save(path); err != nil {
		return "", err
	}
	opts.logger().Info("created fixture", "path", path)
	return path, nil
}
