package payload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Errors the resolver can report. ErrIsDirectory is a distinguishable
// case of ErrUnsupportedArtifact so callers can hand the path to the
// archive packager and try again.
var (
	ErrNotFound            = errors.New("payload: path does not exist")
	ErrUnsupportedArtifact = errors.New("payload: only .dol/.elf executables and .zip archives can be sent")
	ErrIsDirectory         = fmt.Errorf("%w: path is a directory", ErrUnsupportedArtifact)
)

// Kind is the artifact kind the wiiload listener can launch.
type Kind int

const (
	KindDOL Kind = iota
	KindELF
	KindZip
)

func (k Kind) String() string {
	switch k {
	case KindDOL:
		return "dol"
	case KindELF:
		return "elf"
	case KindZip:
		return "zip"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Payload is a validated, transferable artifact on disk.
type Payload struct {
	Path string
	Kind Kind
}

// Name returns the payload's display name, the first element of the
// launch argument block.
func (p Payload) Name() string {
	return filepath.Base(p.Path)
}

// Resolve validates that path points at something the loader can send.
// It never archives a directory itself; that is Archive's job, and the
// caller decides whether to invoke it.
func Resolve(path string) (Payload, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return Payload{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return Payload{}, fmt.Errorf("payload: stat %s: %w", path, err)
	}

	if info.IsDir() {
		return Payload{}, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".dol":
		return Payload{Path: path, Kind: KindDOL}, nil
	case ".elf":
		return Payload{Path: path, Kind: KindELF}, nil
	case ".zip":
		return Payload{Path: path, Kind: KindZip}, nil
	default:
		return Payload{}, fmt.Errorf("%w: %s", ErrUnsupportedArtifact, path)
	}
}
