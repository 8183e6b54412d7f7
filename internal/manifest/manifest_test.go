package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{name: "zero", size: 0, want: "0B"},
		{name: "bytes", size: 512, want: "512B"},
		{name: "exactly one thousand stays bytes", size: 1_000, want: "1000B"},
		{name: "kilobytes", size: 1_500, want: "1.5KB"},
		{name: "rounds to one decimal", size: 12_345, want: "12.3KB"},
		{name: "exactly one million stays KB", size: 1_000_000, want: "1000.0KB"},
		{name: "megabytes", size: 2_400_000, want: "2.4MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HumanSize(tt.size); got != tt.want {
				t.Errorf("HumanSize(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

func TestBuildListsOnlySpreadsheets(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "b.xlsx"), 10)
	writeFile(t, filepath.Join(dir, "a.xlsx"), 1_500)
	writeFile(t, filepath.Join(dir, "notes.txt"), 5)
	writeFile(t, filepath.Join(dir, FileName), 2)

	entries, err := Build(dir)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Build() returned %d entries, want 2", len(entries))
	}
	if entries[0].Name != "a.xlsx" || entries[1].Name != "b.xlsx" {
		t.Errorf("entries not sorted by name: %+v", entries)
	}
	if entries[0].Size != "1.5KB" {
		t.Errorf("entries[0].Size = %q, want %q", entries[0].Size, "1.5KB")
	}
	if entries[1].Size != "10B" {
		t.Errorf("entries[1].Size = %q, want %q", entries[1].Size, "10B")
	}
}

func TestWriteReplacesManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "old.xlsx"), 10)

	if _, err := Write(dir); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	// Replace the fixture set entirely; the manifest must not retain
	// entries for files that no longer exist.
	if err := os.Remove(filepath.Join(dir, "old.xlsx")); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "new.xlsx"), 20)

	if _, err := Write(dir); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("manifest has %d entries, want 1: %+v", len(entries), entries)
	}
	if entries[0].Name != "new.xlsx" {
		t.Errorf("entries[0].Name = %q, want %q", entries[0].Name, "new.xlsx")
	}
}

func TestBuildEmptyDirectory(t *testing.T) {
	entries, err := Build(t.TempDir())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Build() returned %d entries for empty dir, want 0", len(entries))
	}
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
