// Package deflate bridges the segmented buffer core to an external
// byte-transformer (deflate or snappy), the way rpc/compress bridges
// the RPC wire format to gzip/snappy/zstd. Unlike that whole-buffer
// Compress/Decompress pair, the transformer here runs as a pump:
// bytes are shepherded through it a segment at a time so compression
// can overlap with I/O instead of requiring the full payload up front.
package deflate

import (
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
)

// FlushCloser is the write side of a Processor's stream: Write appends
// to the compressed stream, Flush forces out everything written so far
// without ending the stream, and Close ends it (a "finish").
type FlushCloser interface {
	io.Writer
	Flush() error
	Close() error
}

// Processor is the external transformer the pump drives. It knows
// nothing about segments or buffers, only how to wrap a plain
// io.Writer/io.Reader in its own codec.
type Processor interface {
	NewWriter(w io.Writer) (FlushCloser, error)
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// FlateProcessor is a Processor backed by klauspost/compress/flate in
// raw (nowrap) mode — a deflate stream with no zlib or gzip framing
// around it, matching the core's "bridges a zlib-style stream
// transformer" contract without taking on zlib's own header/checksum
// framing, which is out of scope here.
type FlateProcessor struct {
	// Level is the compression level, as in flate.NewWriter. Zero means
	// flate.DefaultCompression.
	Level int
}

// NewWriter returns a deflate compressor writing into w.
func (p FlateProcessor) NewWriter(w io.Writer) (FlushCloser, error) {
	level := p.Level
	if level == 0 {
		level = flate.DefaultCompression
	}
	return flate.NewWriter(w, level)
}

// NewReader returns a deflate decompressor reading from r.
func (p FlateProcessor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}

// SnappyProcessor is a Processor backed by golang/snappy's framed
// streaming format, offered as a second transformer alongside
// FlateProcessor since the pump's contract is transformer-agnostic.
type SnappyProcessor struct{}

// NewWriter returns a snappy compressor writing into w.
func (p SnappyProcessor) NewWriter(w io.Writer) (FlushCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}

// NewReader returns a snappy decompressor reading from r.
func (p SnappyProcessor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}
