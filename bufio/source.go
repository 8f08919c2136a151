package bufio

import (
	"github.com/bearlytools/iobuf/buffer"
	"github.com/bearlytools/iobuf/ioerr"
	"github.com/bearlytools/iobuf/segment"
)

// BufferedSource wraps a RawSource with an internal Buffer and the full
// read operation set, pulling bytes in segment-sized increments.
type BufferedSource struct {
	raw    RawSource
	buf    *buffer.Buffer
	closed bool
}

// NewBufferedSource wraps raw.
func NewBufferedSource(raw RawSource) *BufferedSource {
	return &BufferedSource{raw: raw, buf: buffer.New()}
}

// Buffer exposes the internal buffer for operations this package
// doesn't wrap directly.
func (s *BufferedSource) Buffer() *buffer.Buffer { return s.buf }

// checkTimeout asks the raw collaborator's Timeout whether its deadline
// has already passed, raising an interruption error if so. It is
// called before every blocking call into raw.
func (s *BufferedSource) checkTimeout() error {
	if t := s.raw.TimeoutObj(); t != nil && t.HasExpired() {
		return ioerr.E(ioerr.TypeInterrupted, "bufio: read deadline exceeded")
	}
	return nil
}

// Request loads bytes into the internal buffer until it holds at least
// n or the underlying is exhausted, reporting whether the target was
// reached.
func (s *BufferedSource) Request(n int64) (bool, error) {
	if s.closed {
		return false, ioerr.Closed
	}
	for s.buf.Size() < n {
		if err := s.checkTimeout(); err != nil {
			return false, err
		}
		read, err := s.raw.Read(s.buf, segment.Size)
		if err != nil {
			return false, ioerr.Wrap(ioerr.TypeIO, err, "bufio: underlying read failed")
		}
		if read == -1 {
			return s.buf.Size() >= n, nil
		}
	}
	return true, nil
}

// Require is like Request but fails with EOF if the target isn't
// reached.
func (s *BufferedSource) Require(n int64) error {
	ok, err := s.Request(n)
	if err != nil {
		return err
	}
	if !ok {
		return ioerr.EOF
	}
	return nil
}

// Peek returns a forward-only snapshot of the currently buffered bytes
// that shares segments with, but does not consume from, the parent.
// Reads against the parent after Peek was taken are not reflected in
// the returned buffer.
func (s *BufferedSource) Peek() *buffer.Buffer {
	return s.buf.Copy()
}

// ReadByte consumes and returns a single byte.
func (s *BufferedSource) ReadByte() (byte, error) {
	if err := s.Require(1); err != nil {
		return 0, err
	}
	return s.buf.ReadByte()
}

// ReadShortBE consumes a big-endian int16.
func (s *BufferedSource) ReadShortBE() (int16, error) {
	if err := s.Require(2); err != nil {
		return 0, err
	}
	return s.buf.ReadShortBE()
}

// ReadShortLE consumes a little-endian int16.
func (s *BufferedSource) ReadShortLE() (int16, error) {
	if err := s.Require(2); err != nil {
		return 0, err
	}
	return s.buf.ReadShortLE()
}

// ReadIntBE consumes a big-endian int32.
func (s *BufferedSource) ReadIntBE() (int32, error) {
	if err := s.Require(4); err != nil {
		return 0, err
	}
	return s.buf.ReadIntBE()
}

// ReadIntLE consumes a little-endian int32.
func (s *BufferedSource) ReadIntLE() (int32, error) {
	if err := s.Require(4); err != nil {
		return 0, err
	}
	return s.buf.ReadIntLE()
}

// ReadLongBE consumes a big-endian int64.
func (s *BufferedSource) ReadLongBE() (int64, error) {
	if err := s.Require(8); err != nil {
		return 0, err
	}
	return s.buf.ReadLongBE()
}

// ReadLongLE consumes a little-endian int64.
func (s *BufferedSource) ReadLongLE() (int64, error) {
	if err := s.Require(8); err != nil {
		return 0, err
	}
	return s.buf.ReadLongLE()
}

// ReadBytes consumes and returns exactly n bytes.
func (s *BufferedSource) ReadBytes(n int64) ([]byte, error) {
	if err := s.Require(n); err != nil {
		return nil, err
	}
	return s.buf.ReadBytes(n)
}

// ReadDecimalLong buffers bytes until the decimal run ends (or the
// underlying is exhausted), then parses it. The buffer's own parse
// enforces the sign/digit/overflow rules and leaves the first rejected
// byte unconsumed.
func (s *BufferedSource) ReadDecimalLong() (int64, error) {
	if err := s.Require(1); err != nil {
		return 0, err
	}
	pos := int64(0)
	if c, _ := s.buf.Get(0); c == '-' {
		pos = 1
	}
	if err := s.requestWhile(pos, func(c byte) bool { return c >= '0' && c <= '9' }); err != nil {
		return 0, err
	}
	return s.buf.ReadDecimalLong()
}

// ReadHexadecimalUnsignedLong buffers bytes until the hex run ends (or
// the underlying is exhausted), then parses it.
func (s *BufferedSource) ReadHexadecimalUnsignedLong() (int64, error) {
	if err := s.Require(1); err != nil {
		return 0, err
	}
	if err := s.requestWhile(0, func(c byte) bool {
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}); err != nil {
		return 0, err
	}
	return s.buf.ReadHexadecimalUnsignedLong()
}

// requestWhile pulls bytes into the internal buffer one position at a
// time, starting at pos, for as long as valid accepts them, stopping at
// the first rejected byte or at end-of-stream.
func (s *BufferedSource) requestWhile(pos int64, valid func(byte) bool) error {
	for {
		ok, err := s.Request(pos + 1)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		c, _ := s.buf.Get(pos)
		if !valid(c) {
			return nil
		}
		pos++
	}
}

// ReadUTF8CodePoint decodes and consumes one UTF-8 code point,
// requesting up to the sequence's full length from the underlying. At
// true end-of-stream partway through a sequence it fails with EOF,
// leaving the leading byte unconsumed.
func (s *BufferedSource) ReadUTF8CodePoint() (rune, error) {
	if err := s.Require(1); err != nil {
		return 0, err
	}
	// A multi-byte lead needs its continuation bytes buffered before the
	// buffer-level decode can distinguish "malformed" from "not here yet".
	if c, _ := s.buf.Get(0); c&0x80 != 0 {
		need := int64(2)
		switch {
		case c&0xF0 == 0xE0:
			need = 3
		case c&0xF8 == 0xF0:
			need = 4
		}
		if _, err := s.Request(need); err != nil {
			return 0, err
		}
	}
	return s.buf.ReadUTF8CodePoint()
}

// ReadUTF8Line consumes one line, requesting more input as needed until
// a terminator is found or the underlying is exhausted.
func (s *BufferedSource) ReadUTF8Line() (string, error) {
	for {
		nl := s.buf.IndexOfByte('\n', 0, s.buf.Size())
		if nl >= 0 {
			return s.buf.ReadUTF8Line()
		}
		ok, err := s.Request(s.buf.Size() + 1)
		if err != nil {
			return "", err
		}
		if !ok {
			if s.buf.Size() == 0 {
				return "", ioerr.EOF
			}
			n := s.buf.Size()
			buf, err := s.buf.ReadBytes(n)
			if err != nil {
				return "", err
			}
			return string(buf), nil
		}
	}
}

// ReadAll drains the underlying into dst until end-of-stream, returning
// the total number of bytes transferred.
func (s *BufferedSource) ReadAll(dst *buffer.Buffer) (int64, error) {
	if s.closed {
		return 0, ioerr.Closed
	}
	var total int64
	for {
		if n := s.buf.Size(); n > 0 {
			if err := dst.WriteFrom(s.buf, n); err != nil {
				return total, err
			}
			total += n
		}
		if err := s.checkTimeout(); err != nil {
			return total, err
		}
		read, err := s.raw.Read(s.buf, segment.Size)
		if err != nil {
			return total, ioerr.Wrap(ioerr.TypeIO, err, "bufio: underlying read failed")
		}
		if read == -1 {
			return total, nil
		}
	}
}

// Close releases the underlying source. A second close is a no-op.
func (s *BufferedSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.raw.Close()
}
