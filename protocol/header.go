package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrFieldOverflow is returned when a length does not fit its
// fixed-width header field.
var ErrFieldOverflow = errors.New("protocol: length exceeds header field width")

// Header carries the three lengths the receiver needs to frame a
// transfer. It is built once per transfer and encoded exactly once.
type Header struct {
	ArgsLen       int
	CompressedLen int
	OriginalLen   int
}

// Encode emits the fixed wire layout: magic, version major/minor,
// big-endian uint16 argument block length, big-endian uint32
// compressed and original payload lengths. The receiver has no error
// recovery, so a value that cannot be represented fails here rather
// than truncating on the wire.
func (h Header) Encode() ([]byte, error) {
	if h.ArgsLen < 0 || h.ArgsLen > math.MaxUint16 {
		return nil, fmt.Errorf("%w: argument block is %d bytes", ErrFieldOverflow, h.ArgsLen)
	}
	if h.CompressedLen < 0 || int64(h.CompressedLen) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: compressed payload is %d bytes", ErrFieldOverflow, h.CompressedLen)
	}
	if h.OriginalLen < 0 || int64(h.OriginalLen) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload is %d bytes", ErrFieldOverflow, h.OriginalLen)
	}

	buf := make([]byte, HeaderSize)
	copy(buf[0:4], Magic)
	buf[4] = VersionMajor
	buf[5] = VersionMinor
	binary.BigEndian.PutUint16(buf[6:8], uint16(h.ArgsLen))
	binary.BigEndian.PutUint32(buf[8:12], uint32(h.CompressedLen))
	binary.BigEndian.PutUint32(buf[12:16], uint32(h.OriginalLen))

	return buf, nil
}
