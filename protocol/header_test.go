package protocol

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestHeaderEncodeLayout(t *testing.T) {
	h := Header{
		ArgsLen:       8,
		CompressedLen: 0x01020304,
		OriginalLen:   0x0a0b0c0d,
	}

	got, err := h.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := []byte{
		'H', 'A', 'X', 'X',
		0, 5,
		0x00, 0x08,
		0x01, 0x02, 0x03, 0x04,
		0x0a, 0x0b, 0x0c, 0x0d,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = % x, want % x", got, want)
	}
	if len(got) != HeaderSize {
		t.Errorf("len = %d, want %d", len(got), HeaderSize)
	}
}

func TestHeaderEncodeAppDolScenario(t *testing.T) {
	// wiiload send app.dol with no launch args: the argument block is
	// "app.dol\x00", 8 bytes.
	args := ArgBlock("app.dol", nil)
	h := Header{ArgsLen: len(args), CompressedLen: 100, OriginalLen: 200}

	got, err := h.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if string(got[0:4]) != Magic {
		t.Errorf("magic = %q, want %q", got[0:4], Magic)
	}
	if got[4] != VersionMajor || got[5] != VersionMinor {
		t.Errorf("version = %d.%d, want %d.%d", got[4], got[5], VersionMajor, VersionMinor)
	}
	if argsLen := int(got[6])<<8 | int(got[7]); argsLen != len("app.dol\x00") {
		t.Errorf("args length = %d, want %d", argsLen, len("app.dol\x00"))
	}
}

func TestHeaderEncodeOverflow(t *testing.T) {
	cases := []struct {
		name string
		h    Header
	}{
		{"args too long", Header{ArgsLen: math.MaxUint16 + 1}},
		{"negative args", Header{ArgsLen: -1}},
		{"compressed too long", Header{CompressedLen: math.MaxUint32 + 1}},
		{"original too long", Header{OriginalLen: math.MaxUint32 + 1}},
		{"negative original", Header{OriginalLen: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.h.Encode(); !errors.Is(err, ErrFieldOverflow) {
				t.Errorf("Encode err = %v, want ErrFieldOverflow", err)
			}
		})
	}
}
