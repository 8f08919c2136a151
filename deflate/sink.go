package deflate

import (
	"github.com/bearlytools/iobuf/buffer"
	"github.com/bearlytools/iobuf/bufio"
	"github.com/bearlytools/iobuf/ioerr"
)

type sinkState int

const (
	sinkOpen sinkState = iota
	sinkFinished
	sinkClosed
)

// DeflaterSink pumps written bytes through a Processor into an
// underlying BufferedSink. Its lifecycle is open -> finished ->
// closed; Close implies Finish, and both steps run even if the first
// fails, with the first error seen returned.
type DeflaterSink struct {
	sink     *bufio.BufferedSink
	w        FlushCloser
	produced *countingWriter
	consumed int64
	state    sinkState
}

// NewDeflaterSink wraps sink, compressing everything written to the
// returned DeflaterSink with proc before it reaches sink.
func NewDeflaterSink(sink *bufio.BufferedSink, proc Processor) (*DeflaterSink, error) {
	cw := &countingWriter{w: sink}
	w, err := proc.NewWriter(cw)
	if err != nil {
		return nil, ioerr.Wrap(ioerr.TypeProtocol, err, "deflate: opening writer failed")
	}
	return &DeflaterSink{sink: sink, w: w, produced: cw}, nil
}

// Write compresses p and pumps it into the underlying sink with no
// flush, so the transformer may hold bytes back until more arrive.
func (d *DeflaterSink) Write(p []byte) (int, error) {
	if d.state != sinkOpen {
		return 0, ioerr.Closed
	}
	src := buffer.New()
	src.Write(p)
	win, err := writeBytesFromSource(src, int64(len(p)), d.w, NoFlush)
	if err != nil {
		return 0, err
	}
	d.consumed += win.consumed
	return len(p), nil
}

// Stats returns the plaintext bytes written so far and the compressed
// bytes produced so far.
func (d *DeflaterSink) Stats() (consumed, produced int64) {
	return d.consumed, d.produced.n
}

// Flush forces every byte written so far out through the transformer
// and into the underlying sink without ending the compressed stream.
func (d *DeflaterSink) Flush() error {
	if d.state != sinkOpen {
		return ioerr.Closed
	}
	if err := d.w.Flush(); err != nil {
		return ioerr.Wrap(ioerr.TypeProtocol, err, "deflate: flush failed")
	}
	return d.sink.Flush()
}

// Finish ends the compressed stream without closing the underlying
// sink. A second call is a no-op.
func (d *DeflaterSink) Finish() error {
	if d.state == sinkClosed {
		return ioerr.Closed
	}
	if d.state == sinkFinished {
		return nil
	}
	d.state = sinkFinished
	if err := d.w.Close(); err != nil {
		return ioerr.Wrap(ioerr.TypeProtocol, err, "deflate: finish failed")
	}
	return nil
}

// Close finishes the compressed stream (if not already finished) and
// closes the underlying sink. Both steps run even if the first fails;
// the first error seen is returned. A second close is a no-op.
func (d *DeflaterSink) Close() error {
	if d.state == sinkClosed {
		return nil
	}
	var firstErr error
	if d.state != sinkFinished {
		if err := d.Finish(); err != nil {
			firstErr = err
		}
	}
	d.state = sinkClosed
	if err := d.sink.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
