package payload

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func TestCompressRoundTrip(t *testing.T) {
	// Repetitive content so the compressed stream is actually smaller.
	raw := bytes.Repeat([]byte("homebrew channel "), 4096)
	path := filepath.Join(t.TempDir(), "boot.dol")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Compress(path)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	if c.OriginalSize != len(raw) {
		t.Errorf("OriginalSize = %d, want %d", c.OriginalSize, len(raw))
	}
	if len(c.Data) >= len(raw) {
		t.Errorf("compressed %d bytes to %d, expected a reduction", len(raw), len(c.Data))
	}

	zr, err := zlib.NewReader(bytes.NewReader(c.Data))
	if err != nil {
		t.Fatalf("zlib reader: %v", err)
	}
	defer zr.Close()

	back, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(back, raw) {
		t.Errorf("round trip does not reproduce the payload")
	}
}

func TestCompressEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dol")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Compress(path)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if c.OriginalSize != 0 {
		t.Errorf("OriginalSize = %d, want 0", c.OriginalSize)
	}
	// An empty input still yields a valid (non-empty) zlib stream.
	if len(c.Data) == 0 {
		t.Errorf("expected a zlib stream for empty input")
	}
}

func TestCompressMissingFile(t *testing.T) {
	if _, err := Compress(filepath.Join(t.TempDir(), "nope.dol")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
