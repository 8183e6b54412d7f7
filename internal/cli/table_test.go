package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"NAME", "DESCRIPTION"})
	table.AddRow([]string{"kitchen", "Baseline coverage"})
	table.AddRow([]string{"large", "Bulk dataset"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("separator line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "kitchen") || !strings.Contains(lines[2], "Baseline coverage") {
		t.Errorf("row line = %q", lines[2])
	}
}

func TestTableShortRowPadded(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})
	table.AddRow([]string{"only"})

	out := table.Render()
	if !strings.Contains(out, "only") {
		t.Errorf("render dropped the short row:\n%s", out)
	}
}

func TestTableColumnWrap(t *testing.T) {
	table := NewTable([]string{"NAME", "DESCRIPTION"})
	table.SetColumnMaxWidth(1, 10)
	table.AddRow([]string{"x", "alpha beta gamma delta"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, and at least two wrapped lines.
	if len(lines) < 4 {
		t.Fatalf("expected wrapped output, got:\n%s", out)
	}
	for _, line := range lines[2:] {
		if len(strings.TrimRight(line, " ")) > 16 {
			t.Errorf("wrapped line too long: %q", line)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short", 10, []string{"short"}},
		{"no limit", "anything at all", 0, []string{"anything at all"}},
		{"word break", "one two three", 7, []string{"one two", "three"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"empty", "", 5, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapText(%q, %d) = %v, want %v", tt.text, tt.width, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
