package payload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/klauspost/compress/zlib"
)

// CompressionLevel is the zlib level wiiload has always used. The
// receiver only needs an algorithm-compatible stream, but there is no
// reason to deviate.
const CompressionLevel = 6

// Compressed holds the result of the compression pass. OriginalSize is
// the pre-compression byte count and travels in the header verbatim;
// only Data goes on the wire.
type Compressed struct {
	OriginalSize int
	Data         []byte
}

// Compress reads the payload's full content and zlib compresses it.
func Compress(path string) (*Compressed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("payload: read %s: %w", path, err)
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, CompressionLevel)
	if err != nil {
		return nil, fmt.Errorf("payload: zlib writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, fmt.Errorf("payload: compress %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("payload: compress %s: %w", path, err)
	}

	return &Compressed{OriginalSize: len(raw), Data: buf.Bytes()}, nil
}
