package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xlview/xlgen/internal/cli"
	"github.com/xlview/xlgen/internal/manifest"
)

// run executes the CLI with the given args and returns captured stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fixtures")

	out, err := run(t, "generate", "--only", "colors", "--output-dir", dir)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out, "colors_test.xlsx") {
		t.Errorf("output missing fixture path: %q", out)
	}

	if _, err := os.Stat(filepath.Join(dir, "colors_test.xlsx")); err != nil {
		t.Errorf("fixture not written: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, manifest.FileName))
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	var entries []manifest.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "colors_test.xlsx" {
		t.Errorf("manifest entries = %+v", entries)
	}
}

func TestGenerateUnknownGenerator(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fixtures")

	_, err := run(t, "generate", "--only", "nonsense", "--output-dir", dir)
	if err == nil {
		t.Fatal("expected error for unknown generator")
	}
	if !strings.Contains(err.Error(), "unknown generator") {
		t.Errorf("error = %v", err)
	}
}

func TestGenerateManifestOnly(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "stale.xlsx"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "generate", "--manifest-only", "--output-dir", dir)
	if err != nil {
		t.Fatalf("generate --manifest-only failed: %v", err)
	}
	if strings.Contains(out, "created") {
		t.Errorf("manifest-only run generated fixtures: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); err != nil {
		t.Errorf("manifest not written: %v", err)
	}
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, name := range []string{"colors", "kitchen", "large", "sink"} {
		if !strings.Contains(out, name) {
			t.Errorf("list output missing %q:\n%s", name, out)
		}
	}
}

func TestBundleCommand(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.xlsx"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	archive := filepath.Join(t.TempDir(), "out.zip")

	out, err := run(t, "bundle", "--input-dir", dir, "--output", archive)
	if err != nil {
		t.Fatalf("bundle failed: %v", err)
	}
	if !strings.Contains(out, "bundled 1 files") {
		t.Errorf("bundle output = %q", out)
	}
	if _, err := os.Stat(archive); err != nil {
		t.Errorf("archive not written: %v", err)
	}
}

func TestBundleBadFormat(t *testing.T) {
	if _, err := run(t, "bundle", "--format", "rar"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "xlgen version") {
		t.Errorf("version output = %q", out)
	}
}
