// Package manifest maintains the manifest.json index of generated
// fixture files and their human-readable sizes.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileName is the manifest file written alongside the fixtures.
const FileName = "manifest.json"

// Entry describes a single generated fixture file.
type Entry struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

// Build scans dir for .xlsx files and returns one entry per file,
// sorted by name.
func Build(dir string) ([]Entry, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan fixture directory: %w", err)
	}
	sort.Strings(matches)

	entries := make([]Entry, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		entries = append(entries, Entry{
			Name: filepath.Base(path),
			Size: HumanSize(info.Size()),
		})
	}
	return entries, nil
}

// Write rebuilds the manifest for dir and replaces manifest.json wholesale.
// The manifest is never merged incrementally; every invocation reflects
// exactly the files present at write time.
func Write(dir string) ([]Entry, error) {
	entries, err := Build(dir)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}
	return entries, nil
}

// HumanSize renders a byte count with a B, KB, or MB suffix using
// decimal thousands and one decimal place above the byte range.
func HumanSize(size int64) string {
	switch {
	case size > 1_000_000:
		return fmt.Sprintf("%.1fMB", float64(size)/1_000_000)
	case size > 1_000:
		return fmt.Sprintf("%.1fKB", float64(size)/1_000)
	default:
		return fmt.Sprintf("%dB", size)
	}
}
