package buffer

import "github.com/bearlytools/iobuf/ioerr"

// WriteBytesRange appends count bytes of p starting at offset.
func (b *Buffer) WriteBytesRange(p []byte, offset, count int) error {
	if offset < 0 || count < 0 || offset+count > len(p) {
		return ioerr.E(ioerr.TypeArgument, "WriteBytesRange: range out of bounds")
	}
	b.Write(p[offset : offset+count])
	return nil
}

// Discard consumes and drops n bytes from the head without copying
// them out. It fails with EOF (consuming nothing) if fewer than n
// bytes are buffered.
func (b *Buffer) Discard(n int64) error {
	if err := b.checkAvailable(n); err != nil {
		return err
	}
	b.discard(n)
	return nil
}

// ReadBytes consumes and returns exactly n bytes from the head.
func (b *Buffer) ReadBytes(n int64) ([]byte, error) {
	if err := b.checkAvailable(n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	b.read(buf)
	return buf, nil
}

// PeekBytes returns a copy of n bytes starting at absolute offset
// without consuming them.
func (b *Buffer) PeekBytes(offset, n int64) ([]byte, error) {
	if offset < 0 || n < 0 || offset+n > b.size {
		return nil, ioerr.E(ioerr.TypeArgument, "PeekBytes: range out of bounds")
	}
	buf := make([]byte, n)
	for i := range buf {
		c, _ := b.byteAt(offset + int64(i))
		buf[i] = c
	}
	return buf, nil
}
