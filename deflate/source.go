package deflate

import (
	"io"

	"github.com/bearlytools/iobuf/buffer"
	"github.com/bearlytools/iobuf/bufio"
	"github.com/bearlytools/iobuf/ioerr"
)

// InflaterSource pumps bytes read from a BufferedSource through a
// Processor. Closing it closes both the transformer and the
// underlying source, even if the first fails, returning the first
// error seen. A second close is a no-op.
type InflaterSource struct {
	source *bufio.BufferedSource
	r      io.ReadCloser
	closed bool
}

// NewInflaterSource wraps source, decompressing everything read
// through the returned InflaterSource with proc.
func NewInflaterSource(source *bufio.BufferedSource, proc Processor) (*InflaterSource, error) {
	r, err := proc.NewReader(sourceReader{src: source})
	if err != nil {
		return nil, ioerr.Wrap(ioerr.TypeProtocol, err, "deflate: opening reader failed")
	}
	return &InflaterSource{source: source, r: r}, nil
}

// ReadBytesToTarget decompresses up to maxByteCount bytes into target,
// stopping early at end-of-stream.
func (s *InflaterSource) ReadBytesToTarget(maxByteCount int64, target *buffer.Buffer) (int64, error) {
	if s.closed {
		return 0, ioerr.Closed
	}
	return readBytesToTarget(s.r, maxByteCount, target)
}

// ReadAll decompresses the entire remaining stream into target.
func (s *InflaterSource) ReadAll(target *buffer.Buffer) (int64, error) {
	if s.closed {
		return 0, ioerr.Closed
	}
	return readBytesToTarget(s.r, 1<<62, target)
}

// Close closes the transformer and the underlying source. Both steps
// run even if the first fails; the first error seen is returned.
func (s *InflaterSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var firstErr error
	if err := s.r.Close(); err != nil {
		firstErr = ioerr.Wrap(ioerr.TypeProtocol, err, "deflate: closing reader failed")
	}
	if err := s.source.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
