package bundle

import (
	"archive/zip"
	"fmt"
	"io"
)

// writeZip writes the named files from srcDir into a zip archive.
func writeZip(w io.Writer, srcDir string, files []string) error {
	zw := zip.NewWriter(w)

	for _, name := range files {
		f, info, err := open(srcDir, name)
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to build zip header for %s: %w", name, err)
		}
		header.Name = name
		header.Method = zip.Deflate

		entry, err := zw.CreateHeader(header)
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to add %s to zip: %w", name, err)
		}
		if _, err := io.Copy(entry, f); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s to zip: %w", name, err)
		}
		f.Close()
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize zip: %w", err)
	}
	return nil
}
