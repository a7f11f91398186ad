package payload

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
)

// Archive packages a directory into a .zip written next to it, and
// returns the archive path for re-resolution. Entries keep the
// directory's own name as their top level, which is the layout the
// Homebrew Channel expects for an app folder.
func Archive(dir string) (string, error) {
	dir = filepath.Clean(dir)
	out := dir + ".zip"

	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("payload: create archive %s: %w", out, err)
	}

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})

	base := filepath.Dir(dir)
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		_, err = io.Copy(w, src)
		return err
	})

	if walkErr != nil {
		zw.Close()
		f.Close()
		os.Remove(out)
		return "", fmt.Errorf("payload: archive %s: %w", dir, walkErr)
	}

	if err := zw.Close(); err != nil {
		f.Close()
		os.Remove(out)
		return "", fmt.Errorf("payload: finalize archive %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(out)
		return "", fmt.Errorf("payload: finalize archive %s: %w", out, err)
	}

	return out, nil
}
