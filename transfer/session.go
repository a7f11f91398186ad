// Package transfer owns the TCP leg of a wiiload run. A Session is
// single use: dial, send, close. The protocol is fire-and-forget, so
// nothing is ever read back from the socket and a hung receiver is not
// detected; the run blocks on whatever timeout the OS provides.
package transfer

import (
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
)

var (
	// ErrConnect wraps a failure to reach the Wii at all.
	ErrConnect = errors.New("transfer: cannot connect to the Wii")

	// ErrWrite wraps a socket write failure mid-transfer. The
	// receiver's framing assumes one uninterrupted stream, so the
	// rest of the sequence is abandoned.
	ErrWrite = errors.New("transfer: connection failed mid-send")
)

// Session holds exactly one TCP connection for exactly one transfer.
type Session struct {
	conn   net.Conn
	log    zerolog.Logger
	closed bool
}

// Dial connects to the wiiload listener. There is no retry; the
// protocol has no resumption semantics, so a failed connection fails
// the whole run.
func Dial(addr string, logger zerolog.Logger) (*Session, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	logger.Debug().Str("addr", addr).Msg("connected")

	return &Session{conn: conn, log: logger}, nil
}

// Send writes the transfer in the order the receiver's framing
// requires: the encoded header (magic included), every chunk in
// sequence, then the argument block. The first failed write aborts the
// remainder.
func (s *Session) Send(header []byte, chunks [][]byte, args []byte) error {
	if err := s.write(header); err != nil {
		return fmt.Errorf("header: %w", err)
	}

	for i, chunk := range chunks {
		if err := s.write(chunk); err != nil {
			return fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}
		s.log.Debug().Int("chunk", i+1).Int("total", len(chunks)).Msg("chunk sent")
	}

	if err := s.write(args); err != nil {
		return fmt.Errorf("argument block: %w", err)
	}

	return nil
}

// Close releases the connection. Safe to call more than once so both
// the deferred close and an error path close can run.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}

func (s *Session) write(b []byte) error {
	if _, err := s.conn.Write(b); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
