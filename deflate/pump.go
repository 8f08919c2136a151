package deflate

import (
	"io"

	"github.com/bearlytools/iobuf/buffer"
	"github.com/bearlytools/iobuf/bufio"
	"github.com/bearlytools/iobuf/ioerr"
	"github.com/bearlytools/iobuf/segment"
)

// FlushMode selects how the write pump drives the transformer at the
// end of a call: carry buffered-but-unwritten bytes forward, force
// them out without ending the stream, or end the stream entirely.
type FlushMode int

const (
	NoFlush FlushMode = iota
	SyncFlush
	Finish
)

// window records the byte counts moved by one pump call: how much of
// the source was consumed, filled in as each chunk is handed to the
// transformer and drained by the caller immediately after, the way the
// core's window cursors are never a durable part of the pump's state.
type window struct {
	consumed int64
}

// countingWriter tallies bytes actually written to w, used to track
// how many compressed bytes a DeflaterSink has produced so far.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// writeBytesFromSource drives w with up to byteCount bytes read from
// source, one segment-sized window at a time so a single call never
// holds more than one segment's worth of plaintext live at once, then
// applies mode. Bytes are consumed from source as they are handed to
// w, so a failure midway never loses or duplicates input.
func writeBytesFromSource(source *buffer.Buffer, byteCount int64, w FlushCloser, mode FlushMode) (window, error) {
	var win window
	remaining := byteCount
	for remaining > 0 {
		n := remaining
		if n > int64(segment.Size) {
			n = int64(segment.Size)
		}
		chunk, err := source.ReadBytes(n)
		if err != nil {
			return win, err
		}
		win.consumed += n
		remaining -= n
		if _, err := w.Write(chunk); err != nil {
			return win, ioerr.Wrap(ioerr.TypeProtocol, err, "deflate: write pump failed")
		}
	}

	var err error
	switch mode {
	case SyncFlush:
		err = w.Flush()
	case Finish:
		err = w.Close()
	}
	if err != nil {
		return win, ioerr.Wrap(ioerr.TypeProtocol, err, "deflate: flush failed")
	}
	return win, nil
}

// sourceReader adapts a bufio.BufferedSource to io.Reader for a
// Processor's NewReader, pulling at least one byte per call and
// returning whatever is immediately available beyond that.
type sourceReader struct {
	src *bufio.BufferedSource
}

func (r sourceReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	ok, err := r.src.Request(1)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, io.EOF
	}
	avail := r.src.Buffer().Size()
	n := int64(len(p))
	if n > avail {
		n = avail
	}
	b, err := r.src.ReadBytes(n)
	if err != nil {
		return 0, err
	}
	copy(p, b)
	return len(b), nil
}

// readBytesToTarget drives r for up to maxByteCount bytes, writing
// whatever it produces into target a segment at a time, stopping at
// end-of-stream or once maxByteCount bytes have been produced.
func readBytesToTarget(r io.Reader, maxByteCount int64, target *buffer.Buffer) (int64, error) {
	remaining := maxByteCount
	chunk := make([]byte, segment.Size)
	var total int64
	for remaining > 0 {
		n := int64(len(chunk))
		if n > remaining {
			n = remaining
		}
		got, err := r.Read(chunk[:n])
		if got > 0 {
			target.Write(chunk[:got])
			total += int64(got)
			remaining -= int64(got)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, ioerr.Wrap(ioerr.TypeProtocol, err, "deflate: read pump failed")
		}
		if got == 0 {
			break
		}
	}
	return total, nil
}
