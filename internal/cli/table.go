package cli

import (
	"strings"
)

// Table is a simple column-aligned text table with optional per-column
// width limits. Cells longer than the limit wrap onto extra lines.
type Table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int
}

// NewTable creates a table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		padding:   2,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth caps the width of one column; longer cells wrap.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AddRow appends a row, padding it out to the header count if short.
func (t *Table) AddRow(row []string) {
	if len(row) < len(t.headers) {
		padded := make([]string, len(t.headers))
		copy(padded, row)
		row = padded
	}
	t.rows = append(t.rows, row[:len(t.headers)])
}

// Render formats the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Wrap limited cells first so widths are measured on wrapped lines.
	wrapped := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		wrapped[r] = make([][]string, len(row))
		for c, cell := range row {
			if limit := t.maxWidths[c]; limit > 0 {
				wrapped[r][c] = wrapText(cell, limit)
			} else {
				wrapped[r][c] = []string{cell}
			}
		}
	}

	widths := make([]int, len(t.headers))
	for c, h := range t.headers {
		widths[c] = len(h)
	}
	for _, row := range wrapped {
		for c, lines := range row {
			for _, line := range lines {
				if len(line) > widths[c] {
					widths[c] = len(line)
				}
			}
		}
	}

	var b strings.Builder
	writeLine := func(cells []string) {
		for c, cell := range cells {
			b.WriteString(cell)
			if c < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[c]-len(cell)+t.padding))
			}
		}
		b.WriteByte('\n')
	}

	writeLine(t.headers)
	separators := make([]string, len(t.headers))
	for c := range t.headers {
		separators[c] = strings.Repeat("-", widths[c])
	}
	writeLine(separators)

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			if len(lines) > height {
				height = len(lines)
			}
		}
		for line := 0; line < height; line++ {
			cells := make([]string, len(row))
			for c, lines := range row {
				if line < len(lines) {
					cells[c] = lines[line]
				}
			}
			writeLine(cells)
		}
	}

	return b.String()
}

// wrapText splits text into lines no longer than width, breaking on
// spaces where possible.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
		// A single word longer than the width gets hard-broken.
		for len(current) > width {
			lines = append(lines, current[:width])
			current = current[width:]
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
