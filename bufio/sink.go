package bufio

import (
	"github.com/bearlytools/iobuf/buffer"
	"github.com/bearlytools/iobuf/ioerr"
)

// BufferedSink wraps a RawSink with an internal Buffer and the full
// append operation set, eagerly emitting complete segments downstream.
type BufferedSink struct {
	raw    RawSink
	buf    *buffer.Buffer
	closed bool
}

// NewBufferedSink wraps raw.
func NewBufferedSink(raw RawSink) *BufferedSink {
	return &BufferedSink{raw: raw, buf: buffer.New()}
}

// Buffer exposes the internal buffer for operations this package
// doesn't wrap directly. Callers appending through it should follow up
// with EmitCompleteSegments, matching every wrapped append operation.
func (s *BufferedSink) Buffer() *buffer.Buffer { return s.buf }

// Write appends p and opportunistically emits complete segments.
func (s *BufferedSink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ioerr.Closed
	}
	n, _ := s.buf.Write(p)
	if err := s.EmitCompleteSegments(); err != nil {
		return n, err
	}
	return n, nil
}

// WriteUTF8 appends s's UTF-8 bytes and emits complete segments.
func (s *BufferedSink) WriteUTF8(str string) error {
	_, err := s.Write([]byte(str))
	return err
}

// WriteByte appends a single byte and emits complete segments.
func (s *BufferedSink) WriteByte(c byte) error {
	if s.closed {
		return ioerr.Closed
	}
	if err := s.buf.WriteByte(c); err != nil {
		return err
	}
	return s.EmitCompleteSegments()
}

// WriteShortBE appends v as two big-endian bytes and emits complete
// segments.
func (s *BufferedSink) WriteShortBE(v int16) error {
	return s.append(func(b *buffer.Buffer) { b.WriteShortBE(v) })
}

// WriteShortLE appends v as two little-endian bytes and emits complete
// segments.
func (s *BufferedSink) WriteShortLE(v int16) error {
	return s.append(func(b *buffer.Buffer) { b.WriteShortLE(v) })
}

// WriteIntBE appends v as four big-endian bytes and emits complete
// segments.
func (s *BufferedSink) WriteIntBE(v int32) error {
	return s.append(func(b *buffer.Buffer) { b.WriteIntBE(v) })
}

// WriteIntLE appends v as four little-endian bytes and emits complete
// segments.
func (s *BufferedSink) WriteIntLE(v int32) error {
	return s.append(func(b *buffer.Buffer) { b.WriteIntLE(v) })
}

// WriteLongBE appends v as eight big-endian bytes and emits complete
// segments.
func (s *BufferedSink) WriteLongBE(v int64) error {
	return s.append(func(b *buffer.Buffer) { b.WriteLongBE(v) })
}

// WriteLongLE appends v as eight little-endian bytes and emits complete
// segments.
func (s *BufferedSink) WriteLongLE(v int64) error {
	return s.append(func(b *buffer.Buffer) { b.WriteLongLE(v) })
}

// WriteDecimalLong appends v's ASCII decimal form and emits complete
// segments.
func (s *BufferedSink) WriteDecimalLong(v int64) error {
	return s.append(func(b *buffer.Buffer) { b.WriteDecimalLong(v) })
}

// WriteHexadecimalUnsignedLong appends v's lowercase ASCII hex form and
// emits complete segments.
func (s *BufferedSink) WriteHexadecimalUnsignedLong(v int64) error {
	return s.append(func(b *buffer.Buffer) { b.WriteHexadecimalUnsignedLong(v) })
}

// append runs one buffered append then applies the eager-flush strategy
// shared by every write operation on this type.
func (s *BufferedSink) append(fn func(b *buffer.Buffer)) error {
	if s.closed {
		return ioerr.Closed
	}
	fn(s.buf)
	return s.EmitCompleteSegments()
}

// checkTimeout asks the raw collaborator's Timeout whether its deadline
// has already passed, raising an interruption error if so. It is
// called before every blocking call into raw.
func (s *BufferedSink) checkTimeout() error {
	if t := s.raw.TimeoutObj(); t != nil && t.HasExpired() {
		return ioerr.E(ioerr.TypeInterrupted, "bufio: write deadline exceeded")
	}
	return nil
}

// EmitCompleteSegments writes only the full segments currently
// buffered, leaving any trailing partial segment in place. Every
// append operation on this type ends by calling this.
func (s *BufferedSink) EmitCompleteSegments() error {
	if s.closed {
		return ioerr.Closed
	}
	full := s.buf.CompleteSegmentByteCount()
	if full == 0 {
		return nil
	}
	if err := s.checkTimeout(); err != nil {
		return err
	}
	return s.raw.Write(s.buf, full)
}

// Emit writes every buffered byte to the underlying, including any
// trailing partial segment.
func (s *BufferedSink) Emit() error {
	if s.closed {
		return ioerr.Closed
	}
	n := s.buf.Size()
	if n == 0 {
		return nil
	}
	if err := s.checkTimeout(); err != nil {
		return err
	}
	return s.raw.Write(s.buf, n)
}

// Flush emits everything buffered, then flushes the underlying.
func (s *BufferedSink) Flush() error {
	if err := s.Emit(); err != nil {
		return err
	}
	return s.raw.Flush()
}

// Close emits everything buffered and closes the underlying. Both
// steps run even if the first fails; the first error seen is
// returned. A second close is a no-op.
func (s *BufferedSink) Close() error {
	if s.closed {
		return nil
	}

	var firstErr error
	if err := s.Emit(); err != nil {
		firstErr = err
	}
	s.closed = true
	if err := s.raw.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
