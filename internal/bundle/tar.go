package bundle

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// writeTar writes the named files from srcDir into a tar stream.
func writeTar(w io.Writer, srcDir string, files []string) error {
	tw := tar.NewWriter(w)

	for _, name := range files {
		f, info, err := open(srcDir, name)
		if err != nil {
			return err
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to build tar header for %s: %w", name, err)
		}
		header.Name = name

		if err := tw.WriteHeader(header); err != nil {
			f.Close()
			return fmt.Errorf("failed to add %s to tar: %w", name, err)
		}
		if _, err := io.Copy(tw, f); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s to tar: %w", name, err)
		}
		f.Close()
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finalize tar: %w", err)
	}
	return nil
}

// writeTarGz writes a gzip-compressed tar archive.
func writeTarGz(w io.Writer, srcDir string, files []string) error {
	gw := gzip.NewWriter(w)
	if err := writeTar(gw, srcDir, files); err != nil {
		gw.Close()
		return err
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("failed to finalize gzip stream: %w", err)
	}
	return nil
}

// writeTarXz writes an xz-compressed tar archive.
func writeTarXz(w io.Writer, srcDir string, files []string) error {
	xw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz stream: %w", err)
	}
	if err := writeTar(xw, srcDir, files); err != nil {
		xw.Close()
		return err
	}
	if err := xw.Close(); err != nil {
		return fmt.Errorf("failed to finalize xz stream: %w", err)
	}
	return nil
}
