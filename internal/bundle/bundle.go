// Package bundle archives a directory of generated fixtures into a
// single distributable file.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Format identifies a supported archive format.
type Format string

const (
	FormatZip   Format = "zip"
	FormatTarGz Format = "tgz"
	FormatTarXz Format = "txz"
)

// ParseFormat validates a format name from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatZip, FormatTarGz, FormatTarXz:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported bundle format %q (supported: zip, tgz, txz)", s)
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatTarGz:
		return ".tar.gz"
	case FormatTarXz:
		return ".tar.xz"
	default:
		return ".zip"
	}
}

// Create archives the regular files directly under srcDir into outPath
// and returns the number of files written. Subdirectories are skipped;
// fixture output is flat.
func Create(srcDir, outPath string, format Format) (int, error) {
	files, err := listFiles(srcDir)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no files to bundle in %s", srcDir)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create bundle: %w", err)
	}

	switch format {
	case FormatZip:
		err = writeZip(out, srcDir, files)
	case FormatTarGz:
		err = writeTarGz(out, srcDir, files)
	case FormatTarXz:
		err = writeTarXz(out, srcDir, files)
	default:
		err = fmt.Errorf("unsupported bundle format %q", format)
	}
	if err != nil {
		out.Close()
		os.Remove(outPath)
		return 0, err
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize bundle: %w", err)
	}
	return len(files), nil
}

// listFiles returns the sorted names of regular files directly under dir.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// open resolves a bundled file name against its source directory.
func open(srcDir, name string) (*os.File, os.FileInfo, error) {
	path := filepath.Join(srcDir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return f, info, nil
}
